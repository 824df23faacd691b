// Code generated by ent, DO NOT EDIT.

package community

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loresmith/loresmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Community {
	return predicate.Community(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Community {
	return predicate.Community(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Community {
	return predicate.Community(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Community {
	return predicate.Community(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Community {
	return predicate.Community(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Community {
	return predicate.Community(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Community {
	return predicate.Community(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Community {
	return predicate.Community(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Community {
	return predicate.Community(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Community {
	return predicate.Community(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Community {
	return predicate.Community(sql.FieldContainsFold(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.Community {
	return predicate.Community(sql.FieldEQ(FieldCampaignID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.Community {
	return predicate.Community(sql.FieldEQ(FieldLevel, v))
}

// ParentCommunityID applies equality check predicate on the "parent_community_id" field. It's identical to ParentCommunityIDEQ.
func ParentCommunityID(v string) predicate.Community {
	return predicate.Community(sql.FieldEQ(FieldParentCommunityID, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.Community {
	return predicate.Community(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.Community {
	return predicate.Community(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.Community {
	return predicate.Community(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.Community {
	return predicate.Community(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.Community {
	return predicate.Community(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.Community {
	return predicate.Community(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.Community {
	return predicate.Community(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.Community {
	return predicate.Community(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.Community {
	return predicate.Community(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.Community {
	return predicate.Community(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.Community {
	return predicate.Community(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.Community {
	return predicate.Community(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.Community {
	return predicate.Community(sql.FieldContainsFold(FieldCampaignID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.Community {
	return predicate.Community(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.Community {
	return predicate.Community(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.Community {
	return predicate.Community(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.Community {
	return predicate.Community(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.Community {
	return predicate.Community(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.Community {
	return predicate.Community(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.Community {
	return predicate.Community(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.Community {
	return predicate.Community(sql.FieldLTE(FieldLevel, v))
}

// ParentCommunityIDEQ applies the EQ predicate on the "parent_community_id" field.
func ParentCommunityIDEQ(v string) predicate.Community {
	return predicate.Community(sql.FieldEQ(FieldParentCommunityID, v))
}

// ParentCommunityIDNEQ applies the NEQ predicate on the "parent_community_id" field.
func ParentCommunityIDNEQ(v string) predicate.Community {
	return predicate.Community(sql.FieldNEQ(FieldParentCommunityID, v))
}

// ParentCommunityIDIn applies the In predicate on the "parent_community_id" field.
func ParentCommunityIDIn(vs ...string) predicate.Community {
	return predicate.Community(sql.FieldIn(FieldParentCommunityID, vs...))
}

// ParentCommunityIDNotIn applies the NotIn predicate on the "parent_community_id" field.
func ParentCommunityIDNotIn(vs ...string) predicate.Community {
	return predicate.Community(sql.FieldNotIn(FieldParentCommunityID, vs...))
}

// ParentCommunityIDGT applies the GT predicate on the "parent_community_id" field.
func ParentCommunityIDGT(v string) predicate.Community {
	return predicate.Community(sql.FieldGT(FieldParentCommunityID, v))
}

// ParentCommunityIDGTE applies the GTE predicate on the "parent_community_id" field.
func ParentCommunityIDGTE(v string) predicate.Community {
	return predicate.Community(sql.FieldGTE(FieldParentCommunityID, v))
}

// ParentCommunityIDLT applies the LT predicate on the "parent_community_id" field.
func ParentCommunityIDLT(v string) predicate.Community {
	return predicate.Community(sql.FieldLT(FieldParentCommunityID, v))
}

// ParentCommunityIDLTE applies the LTE predicate on the "parent_community_id" field.
func ParentCommunityIDLTE(v string) predicate.Community {
	return predicate.Community(sql.FieldLTE(FieldParentCommunityID, v))
}

// ParentCommunityIDContains applies the Contains predicate on the "parent_community_id" field.
func ParentCommunityIDContains(v string) predicate.Community {
	return predicate.Community(sql.FieldContains(FieldParentCommunityID, v))
}

// ParentCommunityIDHasPrefix applies the HasPrefix predicate on the "parent_community_id" field.
func ParentCommunityIDHasPrefix(v string) predicate.Community {
	return predicate.Community(sql.FieldHasPrefix(FieldParentCommunityID, v))
}

// ParentCommunityIDHasSuffix applies the HasSuffix predicate on the "parent_community_id" field.
func ParentCommunityIDHasSuffix(v string) predicate.Community {
	return predicate.Community(sql.FieldHasSuffix(FieldParentCommunityID, v))
}

// ParentCommunityIDIsNil applies the IsNil predicate on the "parent_community_id" field.
func ParentCommunityIDIsNil() predicate.Community {
	return predicate.Community(sql.FieldIsNull(FieldParentCommunityID))
}

// ParentCommunityIDNotNil applies the NotNil predicate on the "parent_community_id" field.
func ParentCommunityIDNotNil() predicate.Community {
	return predicate.Community(sql.FieldNotNull(FieldParentCommunityID))
}

// ParentCommunityIDEqualFold applies the EqualFold predicate on the "parent_community_id" field.
func ParentCommunityIDEqualFold(v string) predicate.Community {
	return predicate.Community(sql.FieldEqualFold(FieldParentCommunityID, v))
}

// ParentCommunityIDContainsFold applies the ContainsFold predicate on the "parent_community_id" field.
func ParentCommunityIDContainsFold(v string) predicate.Community {
	return predicate.Community(sql.FieldContainsFold(FieldParentCommunityID, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Community {
	return predicate.Community(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Community {
	return predicate.Community(sql.FieldNotNull(FieldMetadata))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.Community {
	return predicate.Community(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.Community {
	return predicate.Community(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Community) predicate.Community {
	return predicate.Community(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Community) predicate.Community {
	return predicate.Community(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Community) predicate.Community {
	return predicate.Community(sql.NotPredicates(p))
}
