package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// File is an uploaded resource. The blob-store key doubles as the primary key,
// so a row always points at exactly one object in staging or library storage.
type File struct {
	ent.Schema
}

// Fields of the File.
func (File) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("file_key").
			Unique().
			Immutable().
			Comment("Blob-store path, e.g. staging/<tenant>/<file_name>"),
		field.String("tenant").
			Immutable(),
		field.String("file_name"),
		field.String("content_type"),
		field.Int64("size").
			Comment("Declared size in bytes"),
		field.Enum("status").
			Values("uploaded", "processing", "chunked", "indexing", "completed", "error", "timeout").
			Default("uploaded"),
		field.String("error_message").
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

// Edges of the File.
func (File) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chunks", FileProcessingChunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the File.
func (File) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
		index.Fields("tenant", "status"),
		// Sweep query: files stuck in a non-terminal status too long.
		index.Fields("status", "updated_at"),
	}
}
