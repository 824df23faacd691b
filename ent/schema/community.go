package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Community is one node of the per-campaign community forest produced by
// community detection. level=0 is the top of the hierarchy.
type Community struct {
	ent.Schema
}

// Fields of the Community.
func (Community) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("community_id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.Int("level"),
		field.String("parent_community_id").
			Optional().
			Nillable(),
		field.JSON("entity_ids", []string{}),
		field.JSON("metadata", map[string]string{}).
			Optional().
			Comment("Carries algorithm name, seed, and summary text"),
	}
}

// Edges of the Community.
func (Community) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("communities").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Community.
func (Community) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "level"),
	}
}
