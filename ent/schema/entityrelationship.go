package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityRelationship is a directed, typed edge between two entities of the
// same campaign. (from, to, type) is unique within a campaign; self-relations
// are rejected at the service layer.
type EntityRelationship struct {
	ent.Schema
}

// Fields of the EntityRelationship.
func (EntityRelationship) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("relationship_id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.String("from_entity_id"),
		field.String("to_entity_id"),
		field.String("relationship_type"),
		field.Float("strength").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the EntityRelationship.
func (EntityRelationship) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("relationships").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EntityRelationship.
func (EntityRelationship) Indexes() []ent.Index {
	return []ent.Index{
		// Uniqueness invariant; makes relationship creation idempotent on retry.
		index.Fields("campaign_id", "from_entity_id", "to_entity_id", "relationship_type").
			Unique(),
		index.Fields("campaign_id", "from_entity_id"),
		index.Fields("campaign_id", "to_entity_id"),
	}
}
