package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/loresmith/loresmith/pkg/models"
)

// Entity is a typed knowledge-graph node. IDs are campaign-scoped: always
// prefixed with the campaign id. An entity whose metadata carries
// shard_status=approved is never overwritten by ingestion.
type Entity struct {
	ent.Schema
}

// Fields of the Entity.
func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.String("entity_type").
			Comment("e.g. character, location, faction, item, event"),
		field.String("name"),
		field.Text("content"),
		field.JSON("metadata", models.EntityMetadata{}),
		field.Float("confidence").
			Optional().
			Nillable(),
		field.String("source_type").
			Comment("Provenance kind: file, session, manual"),
		field.String("source_id"),
		field.String("embedding_id").
			Optional().
			Nillable().
			Comment("Vector id of the entity embedding"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Entity.
func (Entity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("entities").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Entity.
func (Entity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "entity_type"),
		index.Fields("campaign_id", "name"),
		index.Fields("campaign_id", "source_id"),
	}
}
