package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityImportance is the derived per-entity importance row. It can be fully
// recomputed from the graph at any time.
type EntityImportance struct {
	ent.Schema
}

// Fields of the EntityImportance.
func (EntityImportance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.Float("pagerank"),
		field.Float("betweenness_centrality"),
		field.Int("hierarchy_level"),
		field.Float("composite_score"),
		field.Time("computed_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the EntityImportance.
func (EntityImportance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("importances").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EntityImportance.
func (EntityImportance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "composite_score"),
	}
}
