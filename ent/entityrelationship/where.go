// Code generated by ent, DO NOT EDIT.

package entityrelationship

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loresmith/loresmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContainsFold(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldCampaignID, v))
}

// FromEntityID applies equality check predicate on the "from_entity_id" field. It's identical to FromEntityIDEQ.
func FromEntityID(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldFromEntityID, v))
}

// ToEntityID applies equality check predicate on the "to_entity_id" field. It's identical to ToEntityIDEQ.
func ToEntityID(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldToEntityID, v))
}

// RelationshipType applies equality check predicate on the "relationship_type" field. It's identical to RelationshipTypeEQ.
func RelationshipType(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldRelationshipType, v))
}

// Strength applies equality check predicate on the "strength" field. It's identical to StrengthEQ.
func Strength(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldStrength, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldUpdatedAt, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContainsFold(FieldCampaignID, v))
}

// FromEntityIDEQ applies the EQ predicate on the "from_entity_id" field.
func FromEntityIDEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldFromEntityID, v))
}

// FromEntityIDNEQ applies the NEQ predicate on the "from_entity_id" field.
func FromEntityIDNEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldFromEntityID, v))
}

// FromEntityIDIn applies the In predicate on the "from_entity_id" field.
func FromEntityIDIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldFromEntityID, vs...))
}

// FromEntityIDNotIn applies the NotIn predicate on the "from_entity_id" field.
func FromEntityIDNotIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldFromEntityID, vs...))
}

// FromEntityIDGT applies the GT predicate on the "from_entity_id" field.
func FromEntityIDGT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldFromEntityID, v))
}

// FromEntityIDGTE applies the GTE predicate on the "from_entity_id" field.
func FromEntityIDGTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldFromEntityID, v))
}

// FromEntityIDLT applies the LT predicate on the "from_entity_id" field.
func FromEntityIDLT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldFromEntityID, v))
}

// FromEntityIDLTE applies the LTE predicate on the "from_entity_id" field.
func FromEntityIDLTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldFromEntityID, v))
}

// FromEntityIDContains applies the Contains predicate on the "from_entity_id" field.
func FromEntityIDContains(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContains(FieldFromEntityID, v))
}

// FromEntityIDHasPrefix applies the HasPrefix predicate on the "from_entity_id" field.
func FromEntityIDHasPrefix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasPrefix(FieldFromEntityID, v))
}

// FromEntityIDHasSuffix applies the HasSuffix predicate on the "from_entity_id" field.
func FromEntityIDHasSuffix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasSuffix(FieldFromEntityID, v))
}

// FromEntityIDEqualFold applies the EqualFold predicate on the "from_entity_id" field.
func FromEntityIDEqualFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEqualFold(FieldFromEntityID, v))
}

// FromEntityIDContainsFold applies the ContainsFold predicate on the "from_entity_id" field.
func FromEntityIDContainsFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContainsFold(FieldFromEntityID, v))
}

// ToEntityIDEQ applies the EQ predicate on the "to_entity_id" field.
func ToEntityIDEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldToEntityID, v))
}

// ToEntityIDNEQ applies the NEQ predicate on the "to_entity_id" field.
func ToEntityIDNEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldToEntityID, v))
}

// ToEntityIDIn applies the In predicate on the "to_entity_id" field.
func ToEntityIDIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldToEntityID, vs...))
}

// ToEntityIDNotIn applies the NotIn predicate on the "to_entity_id" field.
func ToEntityIDNotIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldToEntityID, vs...))
}

// ToEntityIDGT applies the GT predicate on the "to_entity_id" field.
func ToEntityIDGT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldToEntityID, v))
}

// ToEntityIDGTE applies the GTE predicate on the "to_entity_id" field.
func ToEntityIDGTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldToEntityID, v))
}

// ToEntityIDLT applies the LT predicate on the "to_entity_id" field.
func ToEntityIDLT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldToEntityID, v))
}

// ToEntityIDLTE applies the LTE predicate on the "to_entity_id" field.
func ToEntityIDLTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldToEntityID, v))
}

// ToEntityIDContains applies the Contains predicate on the "to_entity_id" field.
func ToEntityIDContains(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContains(FieldToEntityID, v))
}

// ToEntityIDHasPrefix applies the HasPrefix predicate on the "to_entity_id" field.
func ToEntityIDHasPrefix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasPrefix(FieldToEntityID, v))
}

// ToEntityIDHasSuffix applies the HasSuffix predicate on the "to_entity_id" field.
func ToEntityIDHasSuffix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasSuffix(FieldToEntityID, v))
}

// ToEntityIDEqualFold applies the EqualFold predicate on the "to_entity_id" field.
func ToEntityIDEqualFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEqualFold(FieldToEntityID, v))
}

// ToEntityIDContainsFold applies the ContainsFold predicate on the "to_entity_id" field.
func ToEntityIDContainsFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContainsFold(FieldToEntityID, v))
}

// RelationshipTypeEQ applies the EQ predicate on the "relationship_type" field.
func RelationshipTypeEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldRelationshipType, v))
}

// RelationshipTypeNEQ applies the NEQ predicate on the "relationship_type" field.
func RelationshipTypeNEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldRelationshipType, v))
}

// RelationshipTypeIn applies the In predicate on the "relationship_type" field.
func RelationshipTypeIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldRelationshipType, vs...))
}

// RelationshipTypeNotIn applies the NotIn predicate on the "relationship_type" field.
func RelationshipTypeNotIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldRelationshipType, vs...))
}

// RelationshipTypeGT applies the GT predicate on the "relationship_type" field.
func RelationshipTypeGT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldRelationshipType, v))
}

// RelationshipTypeGTE applies the GTE predicate on the "relationship_type" field.
func RelationshipTypeGTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldRelationshipType, v))
}

// RelationshipTypeLT applies the LT predicate on the "relationship_type" field.
func RelationshipTypeLT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldRelationshipType, v))
}

// RelationshipTypeLTE applies the LTE predicate on the "relationship_type" field.
func RelationshipTypeLTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldRelationshipType, v))
}

// RelationshipTypeContains applies the Contains predicate on the "relationship_type" field.
func RelationshipTypeContains(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContains(FieldRelationshipType, v))
}

// RelationshipTypeHasPrefix applies the HasPrefix predicate on the "relationship_type" field.
func RelationshipTypeHasPrefix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasPrefix(FieldRelationshipType, v))
}

// RelationshipTypeHasSuffix applies the HasSuffix predicate on the "relationship_type" field.
func RelationshipTypeHasSuffix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasSuffix(FieldRelationshipType, v))
}

// RelationshipTypeEqualFold applies the EqualFold predicate on the "relationship_type" field.
func RelationshipTypeEqualFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEqualFold(FieldRelationshipType, v))
}

// RelationshipTypeContainsFold applies the ContainsFold predicate on the "relationship_type" field.
func RelationshipTypeContainsFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContainsFold(FieldRelationshipType, v))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldStrength, vs...))
}

// StrengthGT applies the GT predicate on the "strength" field.
func StrengthGT(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldStrength, v))
}

// StrengthGTE applies the GTE predicate on the "strength" field.
func StrengthGTE(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldStrength, v))
}

// StrengthLT applies the LT predicate on the "strength" field.
func StrengthLT(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldStrength, v))
}

// StrengthLTE applies the LTE predicate on the "strength" field.
func StrengthLTE(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldStrength, v))
}

// StrengthIsNil applies the IsNil predicate on the "strength" field.
func StrengthIsNil() predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIsNull(FieldStrength))
}

// StrengthNotNil applies the NotNil predicate on the "strength" field.
func StrengthNotNil() predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotNull(FieldStrength))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.EntityRelationship {
	return predicate.EntityRelationship(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.EntityRelationship {
	return predicate.EntityRelationship(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityRelationship) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityRelationship) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityRelationship) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.NotPredicates(p))
}
