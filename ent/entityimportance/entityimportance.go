// Code generated by ent, DO NOT EDIT.

package entityimportance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the entityimportance type in the database.
	Label = "entity_importance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entity_id"
	// FieldCampaignID holds the string denoting the campaign_id field in the database.
	FieldCampaignID = "campaign_id"
	// FieldPagerank holds the string denoting the pagerank field in the database.
	FieldPagerank = "pagerank"
	// FieldBetweennessCentrality holds the string denoting the betweenness_centrality field in the database.
	FieldBetweennessCentrality = "betweenness_centrality"
	// FieldHierarchyLevel holds the string denoting the hierarchy_level field in the database.
	FieldHierarchyLevel = "hierarchy_level"
	// FieldCompositeScore holds the string denoting the composite_score field in the database.
	FieldCompositeScore = "composite_score"
	// FieldComputedAt holds the string denoting the computed_at field in the database.
	FieldComputedAt = "computed_at"
	// EdgeCampaign holds the string denoting the campaign edge name in mutations.
	EdgeCampaign = "campaign"
	// CampaignFieldID holds the string denoting the ID field of the Campaign.
	CampaignFieldID = "campaign_id"
	// Table holds the table name of the entityimportance in the database.
	Table = "entity_importances"
	// CampaignTable is the table that holds the campaign relation/edge.
	CampaignTable = "entity_importances"
	// CampaignInverseTable is the table name for the Campaign entity.
	// It exists in this package in order to avoid circular dependency with the "campaign" package.
	CampaignInverseTable = "campaigns"
	// CampaignColumn is the table column denoting the campaign relation/edge.
	CampaignColumn = "campaign_id"
)

// Columns holds all SQL columns for entityimportance fields.
var Columns = []string{
	FieldID,
	FieldCampaignID,
	FieldPagerank,
	FieldBetweennessCentrality,
	FieldHierarchyLevel,
	FieldCompositeScore,
	FieldComputedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultComputedAt holds the default value on creation for the "computed_at" field.
	DefaultComputedAt func() time.Time
	// UpdateDefaultComputedAt holds the default value on update for the "computed_at" field.
	UpdateDefaultComputedAt func() time.Time
)

// OrderOption defines the ordering options for the EntityImportance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCampaignID orders the results by the campaign_id field.
func ByCampaignID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignID, opts...).ToFunc()
}

// ByPagerank orders the results by the pagerank field.
func ByPagerank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPagerank, opts...).ToFunc()
}

// ByBetweennessCentrality orders the results by the betweenness_centrality field.
func ByBetweennessCentrality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBetweennessCentrality, opts...).ToFunc()
}

// ByHierarchyLevel orders the results by the hierarchy_level field.
func ByHierarchyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHierarchyLevel, opts...).ToFunc()
}

// ByCompositeScore orders the results by the composite_score field.
func ByCompositeScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompositeScore, opts...).ToFunc()
}

// ByComputedAt orders the results by the computed_at field.
func ByComputedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedAt, opts...).ToFunc()
}

// ByCampaignField orders the results by campaign field.
func ByCampaignField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCampaignStep(), sql.OrderByField(field, opts...))
	}
}
func newCampaignStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CampaignInverseTable, CampaignFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
	)
}
