// Code generated by ent, DO NOT EDIT.

package entityimportance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loresmith/loresmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldContainsFold(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldCampaignID, v))
}

// Pagerank applies equality check predicate on the "pagerank" field. It's identical to PagerankEQ.
func Pagerank(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldPagerank, v))
}

// BetweennessCentrality applies equality check predicate on the "betweenness_centrality" field. It's identical to BetweennessCentralityEQ.
func BetweennessCentrality(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldBetweennessCentrality, v))
}

// HierarchyLevel applies equality check predicate on the "hierarchy_level" field. It's identical to HierarchyLevelEQ.
func HierarchyLevel(v int) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldHierarchyLevel, v))
}

// CompositeScore applies equality check predicate on the "composite_score" field. It's identical to CompositeScoreEQ.
func CompositeScore(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldCompositeScore, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldComputedAt, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldContainsFold(FieldCampaignID, v))
}

// PagerankEQ applies the EQ predicate on the "pagerank" field.
func PagerankEQ(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldPagerank, v))
}

// PagerankNEQ applies the NEQ predicate on the "pagerank" field.
func PagerankNEQ(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNEQ(FieldPagerank, v))
}

// PagerankIn applies the In predicate on the "pagerank" field.
func PagerankIn(vs ...float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldIn(FieldPagerank, vs...))
}

// PagerankNotIn applies the NotIn predicate on the "pagerank" field.
func PagerankNotIn(vs ...float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNotIn(FieldPagerank, vs...))
}

// PagerankGT applies the GT predicate on the "pagerank" field.
func PagerankGT(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGT(FieldPagerank, v))
}

// PagerankGTE applies the GTE predicate on the "pagerank" field.
func PagerankGTE(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGTE(FieldPagerank, v))
}

// PagerankLT applies the LT predicate on the "pagerank" field.
func PagerankLT(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLT(FieldPagerank, v))
}

// PagerankLTE applies the LTE predicate on the "pagerank" field.
func PagerankLTE(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLTE(FieldPagerank, v))
}

// BetweennessCentralityEQ applies the EQ predicate on the "betweenness_centrality" field.
func BetweennessCentralityEQ(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldBetweennessCentrality, v))
}

// BetweennessCentralityNEQ applies the NEQ predicate on the "betweenness_centrality" field.
func BetweennessCentralityNEQ(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNEQ(FieldBetweennessCentrality, v))
}

// BetweennessCentralityIn applies the In predicate on the "betweenness_centrality" field.
func BetweennessCentralityIn(vs ...float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldIn(FieldBetweennessCentrality, vs...))
}

// BetweennessCentralityNotIn applies the NotIn predicate on the "betweenness_centrality" field.
func BetweennessCentralityNotIn(vs ...float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNotIn(FieldBetweennessCentrality, vs...))
}

// BetweennessCentralityGT applies the GT predicate on the "betweenness_centrality" field.
func BetweennessCentralityGT(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGT(FieldBetweennessCentrality, v))
}

// BetweennessCentralityGTE applies the GTE predicate on the "betweenness_centrality" field.
func BetweennessCentralityGTE(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGTE(FieldBetweennessCentrality, v))
}

// BetweennessCentralityLT applies the LT predicate on the "betweenness_centrality" field.
func BetweennessCentralityLT(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLT(FieldBetweennessCentrality, v))
}

// BetweennessCentralityLTE applies the LTE predicate on the "betweenness_centrality" field.
func BetweennessCentralityLTE(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLTE(FieldBetweennessCentrality, v))
}

// HierarchyLevelEQ applies the EQ predicate on the "hierarchy_level" field.
func HierarchyLevelEQ(v int) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldHierarchyLevel, v))
}

// HierarchyLevelNEQ applies the NEQ predicate on the "hierarchy_level" field.
func HierarchyLevelNEQ(v int) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNEQ(FieldHierarchyLevel, v))
}

// HierarchyLevelIn applies the In predicate on the "hierarchy_level" field.
func HierarchyLevelIn(vs ...int) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldIn(FieldHierarchyLevel, vs...))
}

// HierarchyLevelNotIn applies the NotIn predicate on the "hierarchy_level" field.
func HierarchyLevelNotIn(vs ...int) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNotIn(FieldHierarchyLevel, vs...))
}

// HierarchyLevelGT applies the GT predicate on the "hierarchy_level" field.
func HierarchyLevelGT(v int) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGT(FieldHierarchyLevel, v))
}

// HierarchyLevelGTE applies the GTE predicate on the "hierarchy_level" field.
func HierarchyLevelGTE(v int) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGTE(FieldHierarchyLevel, v))
}

// HierarchyLevelLT applies the LT predicate on the "hierarchy_level" field.
func HierarchyLevelLT(v int) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLT(FieldHierarchyLevel, v))
}

// HierarchyLevelLTE applies the LTE predicate on the "hierarchy_level" field.
func HierarchyLevelLTE(v int) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLTE(FieldHierarchyLevel, v))
}

// CompositeScoreEQ applies the EQ predicate on the "composite_score" field.
func CompositeScoreEQ(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldCompositeScore, v))
}

// CompositeScoreNEQ applies the NEQ predicate on the "composite_score" field.
func CompositeScoreNEQ(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNEQ(FieldCompositeScore, v))
}

// CompositeScoreIn applies the In predicate on the "composite_score" field.
func CompositeScoreIn(vs ...float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldIn(FieldCompositeScore, vs...))
}

// CompositeScoreNotIn applies the NotIn predicate on the "composite_score" field.
func CompositeScoreNotIn(vs ...float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNotIn(FieldCompositeScore, vs...))
}

// CompositeScoreGT applies the GT predicate on the "composite_score" field.
func CompositeScoreGT(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGT(FieldCompositeScore, v))
}

// CompositeScoreGTE applies the GTE predicate on the "composite_score" field.
func CompositeScoreGTE(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGTE(FieldCompositeScore, v))
}

// CompositeScoreLT applies the LT predicate on the "composite_score" field.
func CompositeScoreLT(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLT(FieldCompositeScore, v))
}

// CompositeScoreLTE applies the LTE predicate on the "composite_score" field.
func CompositeScoreLTE(v float64) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLTE(FieldCompositeScore, v))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.EntityImportance {
	return predicate.EntityImportance(sql.FieldLTE(FieldComputedAt, v))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.EntityImportance {
	return predicate.EntityImportance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.EntityImportance {
	return predicate.EntityImportance(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityImportance) predicate.EntityImportance {
	return predicate.EntityImportance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityImportance) predicate.EntityImportance {
	return predicate.EntityImportance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityImportance) predicate.EntityImportance {
	return predicate.EntityImportance(sql.NotPredicates(p))
}
