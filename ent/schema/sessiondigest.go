package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/loresmith/loresmith/pkg/models"
)

// SessionDigest holds the labelled text sections of one play session,
// searched by the planning-context service.
type SessionDigest struct {
	ent.Schema
}

// Fields of the SessionDigest.
func (SessionDigest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("digest_id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.Int("session_number"),
		field.Time("session_date").
			Optional().
			Nillable(),
		field.JSON("digest_data", models.DigestData{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SessionDigest.
func (SessionDigest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("digests").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SessionDigest.
func (SessionDigest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "session_number").
			Unique(),
	}
}
