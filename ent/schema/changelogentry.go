package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/loresmith/loresmith/pkg/models"
)

// ChangelogEntry is one append-only world-state change record. Entries with
// applied_to_graph=false are the rebuild trigger's input. Rows are never
// updated except to flip applied_to_graph.
type ChangelogEntry struct {
	ent.Schema
}

// Fields of the ChangelogEntry.
func (ChangelogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("changelog_id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.JSON("payload", models.ChangelogPayload{}).
			Immutable(),
		field.Bool("applied_to_graph").
			Default(false),
	}
}

// Edges of the ChangelogEntry.
func (ChangelogEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("changelog_entries").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChangelogEntry.
func (ChangelogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "applied_to_graph"),
		index.Fields("campaign_id", "timestamp"),
		index.Fields("campaign_id", "session_id"),
	}
}
