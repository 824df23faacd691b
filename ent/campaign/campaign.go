// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the campaign type in the database.
	Label = "campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "campaign_id"
	// FieldTenant holds the string denoting the tenant field in the database.
	FieldTenant = "tenant"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEntities holds the string denoting the entities edge name in mutations.
	EdgeEntities = "entities"
	// EdgeRelationships holds the string denoting the relationships edge name in mutations.
	EdgeRelationships = "relationships"
	// EdgeCommunities holds the string denoting the communities edge name in mutations.
	EdgeCommunities = "communities"
	// EdgeImportances holds the string denoting the importances edge name in mutations.
	EdgeImportances = "importances"
	// EdgeDigests holds the string denoting the digests edge name in mutations.
	EdgeDigests = "digests"
	// EdgeChangelogEntries holds the string denoting the changelog_entries edge name in mutations.
	EdgeChangelogEntries = "changelog_entries"
	// EdgeRebuilds holds the string denoting the rebuilds edge name in mutations.
	EdgeRebuilds = "rebuilds"
	// EntityFieldID holds the string denoting the ID field of the Entity.
	EntityFieldID = "entity_id"
	// EntityRelationshipFieldID holds the string denoting the ID field of the EntityRelationship.
	EntityRelationshipFieldID = "relationship_id"
	// CommunityFieldID holds the string denoting the ID field of the Community.
	CommunityFieldID = "community_id"
	// EntityImportanceFieldID holds the string denoting the ID field of the EntityImportance.
	EntityImportanceFieldID = "entity_id"
	// SessionDigestFieldID holds the string denoting the ID field of the SessionDigest.
	SessionDigestFieldID = "digest_id"
	// ChangelogEntryFieldID holds the string denoting the ID field of the ChangelogEntry.
	ChangelogEntryFieldID = "changelog_id"
	// RebuildStatusFieldID holds the string denoting the ID field of the RebuildStatus.
	RebuildStatusFieldID = "rebuild_id"
	// Table holds the table name of the campaign in the database.
	Table = "campaigns"
	// EntitiesTable is the table that holds the entities relation/edge.
	EntitiesTable = "entities"
	// EntitiesInverseTable is the table name for the Entity entity.
	// It exists in this package in order to avoid circular dependency with the "entity" package.
	EntitiesInverseTable = "entities"
	// EntitiesColumn is the table column denoting the entities relation/edge.
	EntitiesColumn = "campaign_id"
	// RelationshipsTable is the table that holds the relationships relation/edge.
	RelationshipsTable = "entity_relationships"
	// RelationshipsInverseTable is the table name for the EntityRelationship entity.
	// It exists in this package in order to avoid circular dependency with the "entityrelationship" package.
	RelationshipsInverseTable = "entity_relationships"
	// RelationshipsColumn is the table column denoting the relationships relation/edge.
	RelationshipsColumn = "campaign_id"
	// CommunitiesTable is the table that holds the communities relation/edge.
	CommunitiesTable = "communities"
	// CommunitiesInverseTable is the table name for the Community entity.
	// It exists in this package in order to avoid circular dependency with the "community" package.
	CommunitiesInverseTable = "communities"
	// CommunitiesColumn is the table column denoting the communities relation/edge.
	CommunitiesColumn = "campaign_id"
	// ImportancesTable is the table that holds the importances relation/edge.
	ImportancesTable = "entity_importances"
	// ImportancesInverseTable is the table name for the EntityImportance entity.
	// It exists in this package in order to avoid circular dependency with the "entityimportance" package.
	ImportancesInverseTable = "entity_importances"
	// ImportancesColumn is the table column denoting the importances relation/edge.
	ImportancesColumn = "campaign_id"
	// DigestsTable is the table that holds the digests relation/edge.
	DigestsTable = "session_digests"
	// DigestsInverseTable is the table name for the SessionDigest entity.
	// It exists in this package in order to avoid circular dependency with the "sessiondigest" package.
	DigestsInverseTable = "session_digests"
	// DigestsColumn is the table column denoting the digests relation/edge.
	DigestsColumn = "campaign_id"
	// ChangelogEntriesTable is the table that holds the changelog_entries relation/edge.
	ChangelogEntriesTable = "changelog_entries"
	// ChangelogEntriesInverseTable is the table name for the ChangelogEntry entity.
	// It exists in this package in order to avoid circular dependency with the "changelogentry" package.
	ChangelogEntriesInverseTable = "changelog_entries"
	// ChangelogEntriesColumn is the table column denoting the changelog_entries relation/edge.
	ChangelogEntriesColumn = "campaign_id"
	// RebuildsTable is the table that holds the rebuilds relation/edge.
	RebuildsTable = "rebuild_status"
	// RebuildsInverseTable is the table name for the RebuildStatus entity.
	// It exists in this package in order to avoid circular dependency with the "rebuildstatus" package.
	RebuildsInverseTable = "rebuild_status"
	// RebuildsColumn is the table column denoting the rebuilds relation/edge.
	RebuildsColumn = "campaign_id"
)

// Columns holds all SQL columns for campaign fields.
var Columns = []string{
	FieldID,
	FieldTenant,
	FieldName,
	FieldDescription,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusArchived:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Campaign queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenant orders the results by the tenant field.
func ByTenant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenant, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEntitiesCount orders the results by entities count.
func ByEntitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEntitiesStep(), opts...)
	}
}

// ByEntities orders the results by entities terms.
func ByEntities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRelationshipsCount orders the results by relationships count.
func ByRelationshipsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRelationshipsStep(), opts...)
	}
}

// ByRelationships orders the results by relationships terms.
func ByRelationships(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRelationshipsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCommunitiesCount orders the results by communities count.
func ByCommunitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCommunitiesStep(), opts...)
	}
}

// ByCommunities orders the results by communities terms.
func ByCommunities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommunitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByImportancesCount orders the results by importances count.
func ByImportancesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImportancesStep(), opts...)
	}
}

// ByImportances orders the results by importances terms.
func ByImportances(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImportancesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDigestsCount orders the results by digests count.
func ByDigestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDigestsStep(), opts...)
	}
}

// ByDigests orders the results by digests terms.
func ByDigests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDigestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChangelogEntriesCount orders the results by changelog_entries count.
func ByChangelogEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChangelogEntriesStep(), opts...)
	}
}

// ByChangelogEntries orders the results by changelog_entries terms.
func ByChangelogEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChangelogEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRebuildsCount orders the results by rebuilds count.
func ByRebuildsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRebuildsStep(), opts...)
	}
}

// ByRebuilds orders the results by rebuilds terms.
func ByRebuilds(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRebuildsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEntitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntitiesInverseTable, EntityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EntitiesTable, EntitiesColumn),
	)
}
func newRelationshipsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RelationshipsInverseTable, EntityRelationshipFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RelationshipsTable, RelationshipsColumn),
	)
}
func newCommunitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommunitiesInverseTable, CommunityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CommunitiesTable, CommunitiesColumn),
	)
}
func newImportancesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImportancesInverseTable, EntityImportanceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImportancesTable, ImportancesColumn),
	)
}
func newDigestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DigestsInverseTable, SessionDigestFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DigestsTable, DigestsColumn),
	)
}
func newChangelogEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChangelogEntriesInverseTable, ChangelogEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChangelogEntriesTable, ChangelogEntriesColumn),
	)
}
func newRebuildsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RebuildsInverseTable, RebuildStatusFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RebuildsTable, RebuildsColumn),
	)
}
