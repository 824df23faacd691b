// Code generated by ent, DO NOT EDIT.

package sessiondigest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loresmith/loresmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldContainsFold(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldCampaignID, v))
}

// SessionNumber applies equality check predicate on the "session_number" field. It's identical to SessionNumberEQ.
func SessionNumber(v int) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldSessionNumber, v))
}

// SessionDate applies equality check predicate on the "session_date" field. It's identical to SessionDateEQ.
func SessionDate(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldSessionDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldUpdatedAt, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldContainsFold(FieldCampaignID, v))
}

// SessionNumberEQ applies the EQ predicate on the "session_number" field.
func SessionNumberEQ(v int) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldSessionNumber, v))
}

// SessionNumberNEQ applies the NEQ predicate on the "session_number" field.
func SessionNumberNEQ(v int) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNEQ(FieldSessionNumber, v))
}

// SessionNumberIn applies the In predicate on the "session_number" field.
func SessionNumberIn(vs ...int) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldIn(FieldSessionNumber, vs...))
}

// SessionNumberNotIn applies the NotIn predicate on the "session_number" field.
func SessionNumberNotIn(vs ...int) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNotIn(FieldSessionNumber, vs...))
}

// SessionNumberGT applies the GT predicate on the "session_number" field.
func SessionNumberGT(v int) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGT(FieldSessionNumber, v))
}

// SessionNumberGTE applies the GTE predicate on the "session_number" field.
func SessionNumberGTE(v int) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGTE(FieldSessionNumber, v))
}

// SessionNumberLT applies the LT predicate on the "session_number" field.
func SessionNumberLT(v int) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLT(FieldSessionNumber, v))
}

// SessionNumberLTE applies the LTE predicate on the "session_number" field.
func SessionNumberLTE(v int) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLTE(FieldSessionNumber, v))
}

// SessionDateEQ applies the EQ predicate on the "session_date" field.
func SessionDateEQ(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldSessionDate, v))
}

// SessionDateNEQ applies the NEQ predicate on the "session_date" field.
func SessionDateNEQ(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNEQ(FieldSessionDate, v))
}

// SessionDateIn applies the In predicate on the "session_date" field.
func SessionDateIn(vs ...time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldIn(FieldSessionDate, vs...))
}

// SessionDateNotIn applies the NotIn predicate on the "session_date" field.
func SessionDateNotIn(vs ...time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNotIn(FieldSessionDate, vs...))
}

// SessionDateGT applies the GT predicate on the "session_date" field.
func SessionDateGT(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGT(FieldSessionDate, v))
}

// SessionDateGTE applies the GTE predicate on the "session_date" field.
func SessionDateGTE(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGTE(FieldSessionDate, v))
}

// SessionDateLT applies the LT predicate on the "session_date" field.
func SessionDateLT(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLT(FieldSessionDate, v))
}

// SessionDateLTE applies the LTE predicate on the "session_date" field.
func SessionDateLTE(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLTE(FieldSessionDate, v))
}

// SessionDateIsNil applies the IsNil predicate on the "session_date" field.
func SessionDateIsNil() predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldIsNull(FieldSessionDate))
}

// SessionDateNotNil applies the NotNil predicate on the "session_date" field.
func SessionDateNotNil() predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNotNull(FieldSessionDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionDigest {
	return predicate.SessionDigest(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.SessionDigest {
	return predicate.SessionDigest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.SessionDigest {
	return predicate.SessionDigest(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionDigest) predicate.SessionDigest {
	return predicate.SessionDigest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionDigest) predicate.SessionDigest {
	return predicate.SessionDigest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionDigest) predicate.SessionDigest {
	return predicate.SessionDigest(sql.NotPredicates(p))
}
