package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueMessage is one durable ingestion-queue message. Workers claim pending
// messages with FOR UPDATE SKIP LOCKED; unacknowledged claims whose heartbeat
// goes stale are redelivered. Messages that exhaust their retries become
// dead-lettered rows (status=dead) carrying the original body and error.
type QueueMessage struct {
	ent.Schema
}

// Fields of the QueueMessage.
func (QueueMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.Enum("kind").
			Values("file_processing", "entity_extraction", "graph_rebuild"),
		field.JSON("payload", map[string]string{}),
		field.Enum("status").
			Values("pending", "processing", "completed", "dead").
			Default("pending"),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries"),
		field.Time("next_retry_at").
			Default(time.Now).
			Comment("Message is invisible to workers before this time"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod id holding the claim"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable(),
		field.Time("dead_lettered_at").
			Optional().
			Nillable(),
		field.Int64("elapsed_ms").
			Optional().
			Nillable().
			Comment("Total time from enqueue to dead-letter"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the QueueMessage.
func (QueueMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_retry_at"),
		index.Fields("tenant", "status"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
