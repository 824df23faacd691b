// Code generated by ent, DO NOT EDIT.

package rebuildstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loresmith/loresmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldContainsFold(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldCampaignID, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldCompletedAt, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldContainsFold(FieldCampaignID, v))
}

// RebuildTypeEQ applies the EQ predicate on the "rebuild_type" field.
func RebuildTypeEQ(v RebuildType) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldRebuildType, v))
}

// RebuildTypeNEQ applies the NEQ predicate on the "rebuild_type" field.
func RebuildTypeNEQ(v RebuildType) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNEQ(FieldRebuildType, v))
}

// RebuildTypeIn applies the In predicate on the "rebuild_type" field.
func RebuildTypeIn(vs ...RebuildType) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldIn(FieldRebuildType, vs...))
}

// RebuildTypeNotIn applies the NotIn predicate on the "rebuild_type" field.
func RebuildTypeNotIn(vs ...RebuildType) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNotIn(FieldRebuildType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNotIn(FieldStatus, vs...))
}

// AffectedEntityIdsIsNil applies the IsNil predicate on the "affected_entity_ids" field.
func AffectedEntityIdsIsNil() predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldIsNull(FieldAffectedEntityIds))
}

// AffectedEntityIdsNotNil applies the NotNil predicate on the "affected_entity_ids" field.
func AffectedEntityIdsNotNil() predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNotNull(FieldAffectedEntityIds))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.FieldNotNull(FieldCompletedAt))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.RebuildStatus {
	return predicate.RebuildStatus(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.RebuildStatus {
	return predicate.RebuildStatus(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RebuildStatus) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RebuildStatus) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RebuildStatus) predicate.RebuildStatus {
	return predicate.RebuildStatus(sql.NotPredicates(p))
}
