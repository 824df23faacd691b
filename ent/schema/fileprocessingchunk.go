package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FileProcessingChunk is a page-range or byte-range slice of a File, processed
// independently so oversized files never exceed the extraction memory envelope.
type FileProcessingChunk struct {
	ent.Schema
}

// Fields of the FileProcessingChunk.
func (FileProcessingChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chunk_id").
			Unique().
			Immutable(),
		field.String("file_key").
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.Int("chunk_index"),
		field.Int("total_chunks").
			Comment("Same value on every chunk of a file"),
		field.Int("page_start").
			Optional().
			Nillable().
			Comment("1-based inclusive; set for page-range chunks"),
		field.Int("page_end").
			Optional().
			Nillable(),
		field.Int64("byte_start").
			Optional().
			Nillable().
			Comment("Inclusive; set for byte-range chunks"),
		field.Int64("byte_end").
			Optional().
			Nillable().
			Comment("Exclusive"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Int("retry_count").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("vector_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the FileProcessingChunk.
func (FileProcessingChunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", File.Type).
			Ref("chunks").
			Field("file_key").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the FileProcessingChunk.
func (FileProcessingChunk) Indexes() []ent.Index {
	return []ent.Index{
		// At most one chunk per (file_key, chunk_index); makes planning idempotent.
		index.Fields("file_key", "chunk_index").
			Unique(),
		index.Fields("file_key", "status"),
	}
}
