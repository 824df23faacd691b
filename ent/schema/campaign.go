package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Campaign is a tenant-owned scope. All graph and vector data hangs off a
// campaign and is removed with it (cascade).
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("campaign_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable().
			Comment("Owning tenant identity (opaque string from auth)"),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("active", "archived").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("entities", Entity.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("relationships", EntityRelationship.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("communities", Community.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("importances", EntityImportance.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("digests", SessionDigest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("changelog_entries", ChangelogEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rebuilds", RebuildStatus.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
		index.Fields("tenant", "status"),
	}
}
