package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification is a user-addressed event row consumed by the UI.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.Enum("kind").
			Values("file_status_updated", "file_uploaded", "file_processed", "shard_generation", "rebuild_complete"),
		field.String("subject_id").
			Comment("file_key, campaign_id, or entity id the event is about"),
		field.Text("message"),
		field.JSON("metadata", map[string]string{}).
			Optional(),
		field.Bool("read").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant", "created_at"),
		index.Fields("tenant", "read"),
	}
}
