package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RebuildStatus tracks one graph rebuild run. At most one non-terminal
// rebuild may exist per campaign; enforced by a partial unique index created
// in pkg/database.
type RebuildStatus struct {
	ent.Schema
}

// Fields of the RebuildStatus.
func (RebuildStatus) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rebuild_id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.Enum("rebuild_type").
			Values("partial", "full"),
		field.Enum("status").
			Values("pending", "running", "succeeded", "failed").
			Default("pending"),
		field.JSON("affected_entity_ids", []string{}).
			Optional(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the RebuildStatus.
func (RebuildStatus) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("rebuilds").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RebuildStatus.
func (RebuildStatus) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "status"),
		index.Fields("campaign_id", "created_at"),
	}
}
