// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loresmith/loresmith/ent/campaign"
	"github.com/loresmith/loresmith/ent/changelogentry"
	"github.com/loresmith/loresmith/ent/community"
	"github.com/loresmith/loresmith/ent/entity"
	"github.com/loresmith/loresmith/ent/entityimportance"
	"github.com/loresmith/loresmith/ent/entityrelationship"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/fileprocessingchunk"
	"github.com/loresmith/loresmith/ent/notification"
	"github.com/loresmith/loresmith/ent/predicate"
	"github.com/loresmith/loresmith/ent/queuemessage"
	"github.com/loresmith/loresmith/ent/rebuildstatus"
	"github.com/loresmith/loresmith/ent/sessiondigest"
	"github.com/loresmith/loresmith/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCampaign            = "Campaign"
	TypeChangelogEntry      = "ChangelogEntry"
	TypeCommunity           = "Community"
	TypeEntity              = "Entity"
	TypeEntityImportance    = "EntityImportance"
	TypeEntityRelationship  = "EntityRelationship"
	TypeFile                = "File"
	TypeFileProcessingChunk = "FileProcessingChunk"
	TypeNotification        = "Notification"
	TypeQueueMessage        = "QueueMessage"
	TypeRebuildStatus       = "RebuildStatus"
	TypeSessionDigest       = "SessionDigest"
)

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	tenant                   *string
	name                     *string
	description              *string
	status                   *campaign.Status
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	entities                 map[string]struct{}
	removedentities          map[string]struct{}
	clearedentities          bool
	relationships            map[string]struct{}
	removedrelationships     map[string]struct{}
	clearedrelationships     bool
	communities              map[string]struct{}
	removedcommunities       map[string]struct{}
	clearedcommunities       bool
	importances              map[string]struct{}
	removedimportances       map[string]struct{}
	clearedimportances       bool
	digests                  map[string]struct{}
	removeddigests           map[string]struct{}
	cleareddigests           bool
	changelog_entries        map[string]struct{}
	removedchangelog_entries map[string]struct{}
	clearedchangelog_entries bool
	rebuilds                 map[string]struct{}
	removedrebuilds          map[string]struct{}
	clearedrebuilds          bool
	done                     bool
	oldValue                 func(context.Context) (*Campaign, error)
	predicates               []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id string) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Campaign entities.
func (m *CampaignMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *CampaignMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *CampaignMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *CampaignMutation) ResetTenant() {
	m.tenant = nil
}

// SetName sets the "name" field.
func (m *CampaignMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CampaignMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CampaignMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CampaignMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CampaignMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CampaignMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[campaign.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CampaignMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[campaign.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CampaignMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, campaign.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *CampaignMutation) SetStatus(c campaign.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignMutation) Status() (r campaign.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStatus(ctx context.Context) (v campaign.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampaignMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampaignMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampaignMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddEntityIDs adds the "entities" edge to the Entity entity by ids.
func (m *CampaignMutation) AddEntityIDs(ids ...string) {
	if m.entities == nil {
		m.entities = make(map[string]struct{})
	}
	for i := range ids {
		m.entities[ids[i]] = struct{}{}
	}
}

// ClearEntities clears the "entities" edge to the Entity entity.
func (m *CampaignMutation) ClearEntities() {
	m.clearedentities = true
}

// EntitiesCleared reports if the "entities" edge to the Entity entity was cleared.
func (m *CampaignMutation) EntitiesCleared() bool {
	return m.clearedentities
}

// RemoveEntityIDs removes the "entities" edge to the Entity entity by IDs.
func (m *CampaignMutation) RemoveEntityIDs(ids ...string) {
	if m.removedentities == nil {
		m.removedentities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.entities, ids[i])
		m.removedentities[ids[i]] = struct{}{}
	}
}

// RemovedEntities returns the removed IDs of the "entities" edge to the Entity entity.
func (m *CampaignMutation) RemovedEntitiesIDs() (ids []string) {
	for id := range m.removedentities {
		ids = append(ids, id)
	}
	return
}

// EntitiesIDs returns the "entities" edge IDs in the mutation.
func (m *CampaignMutation) EntitiesIDs() (ids []string) {
	for id := range m.entities {
		ids = append(ids, id)
	}
	return
}

// ResetEntities resets all changes to the "entities" edge.
func (m *CampaignMutation) ResetEntities() {
	m.entities = nil
	m.clearedentities = false
	m.removedentities = nil
}

// AddRelationshipIDs adds the "relationships" edge to the EntityRelationship entity by ids.
func (m *CampaignMutation) AddRelationshipIDs(ids ...string) {
	if m.relationships == nil {
		m.relationships = make(map[string]struct{})
	}
	for i := range ids {
		m.relationships[ids[i]] = struct{}{}
	}
}

// ClearRelationships clears the "relationships" edge to the EntityRelationship entity.
func (m *CampaignMutation) ClearRelationships() {
	m.clearedrelationships = true
}

// RelationshipsCleared reports if the "relationships" edge to the EntityRelationship entity was cleared.
func (m *CampaignMutation) RelationshipsCleared() bool {
	return m.clearedrelationships
}

// RemoveRelationshipIDs removes the "relationships" edge to the EntityRelationship entity by IDs.
func (m *CampaignMutation) RemoveRelationshipIDs(ids ...string) {
	if m.removedrelationships == nil {
		m.removedrelationships = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.relationships, ids[i])
		m.removedrelationships[ids[i]] = struct{}{}
	}
}

// RemovedRelationships returns the removed IDs of the "relationships" edge to the EntityRelationship entity.
func (m *CampaignMutation) RemovedRelationshipsIDs() (ids []string) {
	for id := range m.removedrelationships {
		ids = append(ids, id)
	}
	return
}

// RelationshipsIDs returns the "relationships" edge IDs in the mutation.
func (m *CampaignMutation) RelationshipsIDs() (ids []string) {
	for id := range m.relationships {
		ids = append(ids, id)
	}
	return
}

// ResetRelationships resets all changes to the "relationships" edge.
func (m *CampaignMutation) ResetRelationships() {
	m.relationships = nil
	m.clearedrelationships = false
	m.removedrelationships = nil
}

// AddCommunityIDs adds the "communities" edge to the Community entity by ids.
func (m *CampaignMutation) AddCommunityIDs(ids ...string) {
	if m.communities == nil {
		m.communities = make(map[string]struct{})
	}
	for i := range ids {
		m.communities[ids[i]] = struct{}{}
	}
}

// ClearCommunities clears the "communities" edge to the Community entity.
func (m *CampaignMutation) ClearCommunities() {
	m.clearedcommunities = true
}

// CommunitiesCleared reports if the "communities" edge to the Community entity was cleared.
func (m *CampaignMutation) CommunitiesCleared() bool {
	return m.clearedcommunities
}

// RemoveCommunityIDs removes the "communities" edge to the Community entity by IDs.
func (m *CampaignMutation) RemoveCommunityIDs(ids ...string) {
	if m.removedcommunities == nil {
		m.removedcommunities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.communities, ids[i])
		m.removedcommunities[ids[i]] = struct{}{}
	}
}

// RemovedCommunities returns the removed IDs of the "communities" edge to the Community entity.
func (m *CampaignMutation) RemovedCommunitiesIDs() (ids []string) {
	for id := range m.removedcommunities {
		ids = append(ids, id)
	}
	return
}

// CommunitiesIDs returns the "communities" edge IDs in the mutation.
func (m *CampaignMutation) CommunitiesIDs() (ids []string) {
	for id := range m.communities {
		ids = append(ids, id)
	}
	return
}

// ResetCommunities resets all changes to the "communities" edge.
func (m *CampaignMutation) ResetCommunities() {
	m.communities = nil
	m.clearedcommunities = false
	m.removedcommunities = nil
}

// AddImportanceIDs adds the "importances" edge to the EntityImportance entity by ids.
func (m *CampaignMutation) AddImportanceIDs(ids ...string) {
	if m.importances == nil {
		m.importances = make(map[string]struct{})
	}
	for i := range ids {
		m.importances[ids[i]] = struct{}{}
	}
}

// ClearImportances clears the "importances" edge to the EntityImportance entity.
func (m *CampaignMutation) ClearImportances() {
	m.clearedimportances = true
}

// ImportancesCleared reports if the "importances" edge to the EntityImportance entity was cleared.
func (m *CampaignMutation) ImportancesCleared() bool {
	return m.clearedimportances
}

// RemoveImportanceIDs removes the "importances" edge to the EntityImportance entity by IDs.
func (m *CampaignMutation) RemoveImportanceIDs(ids ...string) {
	if m.removedimportances == nil {
		m.removedimportances = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.importances, ids[i])
		m.removedimportances[ids[i]] = struct{}{}
	}
}

// RemovedImportances returns the removed IDs of the "importances" edge to the EntityImportance entity.
func (m *CampaignMutation) RemovedImportancesIDs() (ids []string) {
	for id := range m.removedimportances {
		ids = append(ids, id)
	}
	return
}

// ImportancesIDs returns the "importances" edge IDs in the mutation.
func (m *CampaignMutation) ImportancesIDs() (ids []string) {
	for id := range m.importances {
		ids = append(ids, id)
	}
	return
}

// ResetImportances resets all changes to the "importances" edge.
func (m *CampaignMutation) ResetImportances() {
	m.importances = nil
	m.clearedimportances = false
	m.removedimportances = nil
}

// AddDigestIDs adds the "digests" edge to the SessionDigest entity by ids.
func (m *CampaignMutation) AddDigestIDs(ids ...string) {
	if m.digests == nil {
		m.digests = make(map[string]struct{})
	}
	for i := range ids {
		m.digests[ids[i]] = struct{}{}
	}
}

// ClearDigests clears the "digests" edge to the SessionDigest entity.
func (m *CampaignMutation) ClearDigests() {
	m.cleareddigests = true
}

// DigestsCleared reports if the "digests" edge to the SessionDigest entity was cleared.
func (m *CampaignMutation) DigestsCleared() bool {
	return m.cleareddigests
}

// RemoveDigestIDs removes the "digests" edge to the SessionDigest entity by IDs.
func (m *CampaignMutation) RemoveDigestIDs(ids ...string) {
	if m.removeddigests == nil {
		m.removeddigests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.digests, ids[i])
		m.removeddigests[ids[i]] = struct{}{}
	}
}

// RemovedDigests returns the removed IDs of the "digests" edge to the SessionDigest entity.
func (m *CampaignMutation) RemovedDigestsIDs() (ids []string) {
	for id := range m.removeddigests {
		ids = append(ids, id)
	}
	return
}

// DigestsIDs returns the "digests" edge IDs in the mutation.
func (m *CampaignMutation) DigestsIDs() (ids []string) {
	for id := range m.digests {
		ids = append(ids, id)
	}
	return
}

// ResetDigests resets all changes to the "digests" edge.
func (m *CampaignMutation) ResetDigests() {
	m.digests = nil
	m.cleareddigests = false
	m.removeddigests = nil
}

// AddChangelogEntryIDs adds the "changelog_entries" edge to the ChangelogEntry entity by ids.
func (m *CampaignMutation) AddChangelogEntryIDs(ids ...string) {
	if m.changelog_entries == nil {
		m.changelog_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.changelog_entries[ids[i]] = struct{}{}
	}
}

// ClearChangelogEntries clears the "changelog_entries" edge to the ChangelogEntry entity.
func (m *CampaignMutation) ClearChangelogEntries() {
	m.clearedchangelog_entries = true
}

// ChangelogEntriesCleared reports if the "changelog_entries" edge to the ChangelogEntry entity was cleared.
func (m *CampaignMutation) ChangelogEntriesCleared() bool {
	return m.clearedchangelog_entries
}

// RemoveChangelogEntryIDs removes the "changelog_entries" edge to the ChangelogEntry entity by IDs.
func (m *CampaignMutation) RemoveChangelogEntryIDs(ids ...string) {
	if m.removedchangelog_entries == nil {
		m.removedchangelog_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.changelog_entries, ids[i])
		m.removedchangelog_entries[ids[i]] = struct{}{}
	}
}

// RemovedChangelogEntries returns the removed IDs of the "changelog_entries" edge to the ChangelogEntry entity.
func (m *CampaignMutation) RemovedChangelogEntriesIDs() (ids []string) {
	for id := range m.removedchangelog_entries {
		ids = append(ids, id)
	}
	return
}

// ChangelogEntriesIDs returns the "changelog_entries" edge IDs in the mutation.
func (m *CampaignMutation) ChangelogEntriesIDs() (ids []string) {
	for id := range m.changelog_entries {
		ids = append(ids, id)
	}
	return
}

// ResetChangelogEntries resets all changes to the "changelog_entries" edge.
func (m *CampaignMutation) ResetChangelogEntries() {
	m.changelog_entries = nil
	m.clearedchangelog_entries = false
	m.removedchangelog_entries = nil
}

// AddRebuildIDs adds the "rebuilds" edge to the RebuildStatus entity by ids.
func (m *CampaignMutation) AddRebuildIDs(ids ...string) {
	if m.rebuilds == nil {
		m.rebuilds = make(map[string]struct{})
	}
	for i := range ids {
		m.rebuilds[ids[i]] = struct{}{}
	}
}

// ClearRebuilds clears the "rebuilds" edge to the RebuildStatus entity.
func (m *CampaignMutation) ClearRebuilds() {
	m.clearedrebuilds = true
}

// RebuildsCleared reports if the "rebuilds" edge to the RebuildStatus entity was cleared.
func (m *CampaignMutation) RebuildsCleared() bool {
	return m.clearedrebuilds
}

// RemoveRebuildIDs removes the "rebuilds" edge to the RebuildStatus entity by IDs.
func (m *CampaignMutation) RemoveRebuildIDs(ids ...string) {
	if m.removedrebuilds == nil {
		m.removedrebuilds = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rebuilds, ids[i])
		m.removedrebuilds[ids[i]] = struct{}{}
	}
}

// RemovedRebuilds returns the removed IDs of the "rebuilds" edge to the RebuildStatus entity.
func (m *CampaignMutation) RemovedRebuildsIDs() (ids []string) {
	for id := range m.removedrebuilds {
		ids = append(ids, id)
	}
	return
}

// RebuildsIDs returns the "rebuilds" edge IDs in the mutation.
func (m *CampaignMutation) RebuildsIDs() (ids []string) {
	for id := range m.rebuilds {
		ids = append(ids, id)
	}
	return
}

// ResetRebuilds resets all changes to the "rebuilds" edge.
func (m *CampaignMutation) ResetRebuilds() {
	m.rebuilds = nil
	m.clearedrebuilds = false
	m.removedrebuilds = nil
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant != nil {
		fields = append(fields, campaign.FieldTenant)
	}
	if m.name != nil {
		fields = append(fields, campaign.FieldName)
	}
	if m.description != nil {
		fields = append(fields, campaign.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, campaign.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campaign.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldTenant:
		return m.Tenant()
	case campaign.FieldName:
		return m.Name()
	case campaign.FieldDescription:
		return m.Description()
	case campaign.FieldStatus:
		return m.Status()
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldTenant:
		return m.OldTenant(ctx)
	case campaign.FieldName:
		return m.OldName(ctx)
	case campaign.FieldDescription:
		return m.OldDescription(ctx)
	case campaign.FieldStatus:
		return m.OldStatus(ctx)
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case campaign.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case campaign.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case campaign.FieldStatus:
		v, ok := value.(campaign.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaign.FieldDescription) {
		fields = append(fields, campaign.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	switch name {
	case campaign.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldTenant:
		m.ResetTenant()
		return nil
	case campaign.FieldName:
		m.ResetName()
		return nil
	case campaign.FieldDescription:
		m.ResetDescription()
		return nil
	case campaign.FieldStatus:
		m.ResetStatus()
		return nil
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.entities != nil {
		edges = append(edges, campaign.EdgeEntities)
	}
	if m.relationships != nil {
		edges = append(edges, campaign.EdgeRelationships)
	}
	if m.communities != nil {
		edges = append(edges, campaign.EdgeCommunities)
	}
	if m.importances != nil {
		edges = append(edges, campaign.EdgeImportances)
	}
	if m.digests != nil {
		edges = append(edges, campaign.EdgeDigests)
	}
	if m.changelog_entries != nil {
		edges = append(edges, campaign.EdgeChangelogEntries)
	}
	if m.rebuilds != nil {
		edges = append(edges, campaign.EdgeRebuilds)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.entities))
		for id := range m.entities {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeRelationships:
		ids := make([]ent.Value, 0, len(m.relationships))
		for id := range m.relationships {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeCommunities:
		ids := make([]ent.Value, 0, len(m.communities))
		for id := range m.communities {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeImportances:
		ids := make([]ent.Value, 0, len(m.importances))
		for id := range m.importances {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeDigests:
		ids := make([]ent.Value, 0, len(m.digests))
		for id := range m.digests {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeChangelogEntries:
		ids := make([]ent.Value, 0, len(m.changelog_entries))
		for id := range m.changelog_entries {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeRebuilds:
		ids := make([]ent.Value, 0, len(m.rebuilds))
		for id := range m.rebuilds {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedentities != nil {
		edges = append(edges, campaign.EdgeEntities)
	}
	if m.removedrelationships != nil {
		edges = append(edges, campaign.EdgeRelationships)
	}
	if m.removedcommunities != nil {
		edges = append(edges, campaign.EdgeCommunities)
	}
	if m.removedimportances != nil {
		edges = append(edges, campaign.EdgeImportances)
	}
	if m.removeddigests != nil {
		edges = append(edges, campaign.EdgeDigests)
	}
	if m.removedchangelog_entries != nil {
		edges = append(edges, campaign.EdgeChangelogEntries)
	}
	if m.removedrebuilds != nil {
		edges = append(edges, campaign.EdgeRebuilds)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.removedentities))
		for id := range m.removedentities {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeRelationships:
		ids := make([]ent.Value, 0, len(m.removedrelationships))
		for id := range m.removedrelationships {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeCommunities:
		ids := make([]ent.Value, 0, len(m.removedcommunities))
		for id := range m.removedcommunities {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeImportances:
		ids := make([]ent.Value, 0, len(m.removedimportances))
		for id := range m.removedimportances {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeDigests:
		ids := make([]ent.Value, 0, len(m.removeddigests))
		for id := range m.removeddigests {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeChangelogEntries:
		ids := make([]ent.Value, 0, len(m.removedchangelog_entries))
		for id := range m.removedchangelog_entries {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeRebuilds:
		ids := make([]ent.Value, 0, len(m.removedrebuilds))
		for id := range m.removedrebuilds {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedentities {
		edges = append(edges, campaign.EdgeEntities)
	}
	if m.clearedrelationships {
		edges = append(edges, campaign.EdgeRelationships)
	}
	if m.clearedcommunities {
		edges = append(edges, campaign.EdgeCommunities)
	}
	if m.clearedimportances {
		edges = append(edges, campaign.EdgeImportances)
	}
	if m.cleareddigests {
		edges = append(edges, campaign.EdgeDigests)
	}
	if m.clearedchangelog_entries {
		edges = append(edges, campaign.EdgeChangelogEntries)
	}
	if m.clearedrebuilds {
		edges = append(edges, campaign.EdgeRebuilds)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	switch name {
	case campaign.EdgeEntities:
		return m.clearedentities
	case campaign.EdgeRelationships:
		return m.clearedrelationships
	case campaign.EdgeCommunities:
		return m.clearedcommunities
	case campaign.EdgeImportances:
		return m.clearedimportances
	case campaign.EdgeDigests:
		return m.cleareddigests
	case campaign.EdgeChangelogEntries:
		return m.clearedchangelog_entries
	case campaign.EdgeRebuilds:
		return m.clearedrebuilds
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	switch name {
	case campaign.EdgeEntities:
		m.ResetEntities()
		return nil
	case campaign.EdgeRelationships:
		m.ResetRelationships()
		return nil
	case campaign.EdgeCommunities:
		m.ResetCommunities()
		return nil
	case campaign.EdgeImportances:
		m.ResetImportances()
		return nil
	case campaign.EdgeDigests:
		m.ResetDigests()
		return nil
	case campaign.EdgeChangelogEntries:
		m.ResetChangelogEntries()
		return nil
	case campaign.EdgeRebuilds:
		m.ResetRebuilds()
		return nil
	}
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// ChangelogEntryMutation represents an operation that mutates the ChangelogEntry nodes in the graph.
type ChangelogEntryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	session_id       *string
	timestamp        *time.Time
	payload          *models.ChangelogPayload
	applied_to_graph *bool
	clearedFields    map[string]struct{}
	campaign         *string
	clearedcampaign  bool
	done             bool
	oldValue         func(context.Context) (*ChangelogEntry, error)
	predicates       []predicate.ChangelogEntry
}

var _ ent.Mutation = (*ChangelogEntryMutation)(nil)

// changelogentryOption allows management of the mutation configuration using functional options.
type changelogentryOption func(*ChangelogEntryMutation)

// newChangelogEntryMutation creates new mutation for the ChangelogEntry entity.
func newChangelogEntryMutation(c config, op Op, opts ...changelogentryOption) *ChangelogEntryMutation {
	m := &ChangelogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeChangelogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChangelogEntryID sets the ID field of the mutation.
func withChangelogEntryID(id string) changelogentryOption {
	return func(m *ChangelogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ChangelogEntry
		)
		m.oldValue = func(ctx context.Context) (*ChangelogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChangelogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChangelogEntry sets the old ChangelogEntry of the mutation.
func withChangelogEntry(node *ChangelogEntry) changelogentryOption {
	return func(m *ChangelogEntryMutation) {
		m.oldValue = func(context.Context) (*ChangelogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChangelogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChangelogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChangelogEntry entities.
func (m *ChangelogEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChangelogEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChangelogEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChangelogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *ChangelogEntryMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *ChangelogEntryMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the ChangelogEntry entity.
// If the ChangelogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangelogEntryMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *ChangelogEntryMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetSessionID sets the "session_id" field.
func (m *ChangelogEntryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChangelogEntryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChangelogEntry entity.
// If the ChangelogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangelogEntryMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *ChangelogEntryMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[changelogentry.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *ChangelogEntryMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[changelogentry.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChangelogEntryMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, changelogentry.FieldSessionID)
}

// SetTimestamp sets the "timestamp" field.
func (m *ChangelogEntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ChangelogEntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ChangelogEntry entity.
// If the ChangelogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangelogEntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ChangelogEntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetPayload sets the "payload" field.
func (m *ChangelogEntryMutation) SetPayload(mp models.ChangelogPayload) {
	m.payload = &mp
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ChangelogEntryMutation) Payload() (r models.ChangelogPayload, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ChangelogEntry entity.
// If the ChangelogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangelogEntryMutation) OldPayload(ctx context.Context) (v models.ChangelogPayload, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ChangelogEntryMutation) ResetPayload() {
	m.payload = nil
}

// SetAppliedToGraph sets the "applied_to_graph" field.
func (m *ChangelogEntryMutation) SetAppliedToGraph(b bool) {
	m.applied_to_graph = &b
}

// AppliedToGraph returns the value of the "applied_to_graph" field in the mutation.
func (m *ChangelogEntryMutation) AppliedToGraph() (r bool, exists bool) {
	v := m.applied_to_graph
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedToGraph returns the old "applied_to_graph" field's value of the ChangelogEntry entity.
// If the ChangelogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangelogEntryMutation) OldAppliedToGraph(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedToGraph is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedToGraph requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedToGraph: %w", err)
	}
	return oldValue.AppliedToGraph, nil
}

// ResetAppliedToGraph resets all changes to the "applied_to_graph" field.
func (m *ChangelogEntryMutation) ResetAppliedToGraph() {
	m.applied_to_graph = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *ChangelogEntryMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[changelogentry.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *ChangelogEntryMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *ChangelogEntryMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *ChangelogEntryMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the ChangelogEntryMutation builder.
func (m *ChangelogEntryMutation) Where(ps ...predicate.ChangelogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChangelogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChangelogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChangelogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChangelogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChangelogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChangelogEntry).
func (m *ChangelogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChangelogEntryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.campaign != nil {
		fields = append(fields, changelogentry.FieldCampaignID)
	}
	if m.session_id != nil {
		fields = append(fields, changelogentry.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, changelogentry.FieldTimestamp)
	}
	if m.payload != nil {
		fields = append(fields, changelogentry.FieldPayload)
	}
	if m.applied_to_graph != nil {
		fields = append(fields, changelogentry.FieldAppliedToGraph)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChangelogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case changelogentry.FieldCampaignID:
		return m.CampaignID()
	case changelogentry.FieldSessionID:
		return m.SessionID()
	case changelogentry.FieldTimestamp:
		return m.Timestamp()
	case changelogentry.FieldPayload:
		return m.Payload()
	case changelogentry.FieldAppliedToGraph:
		return m.AppliedToGraph()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChangelogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case changelogentry.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case changelogentry.FieldSessionID:
		return m.OldSessionID(ctx)
	case changelogentry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case changelogentry.FieldPayload:
		return m.OldPayload(ctx)
	case changelogentry.FieldAppliedToGraph:
		return m.OldAppliedToGraph(ctx)
	}
	return nil, fmt.Errorf("unknown ChangelogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangelogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case changelogentry.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case changelogentry.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case changelogentry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case changelogentry.FieldPayload:
		v, ok := value.(models.ChangelogPayload)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case changelogentry.FieldAppliedToGraph:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedToGraph(v)
		return nil
	}
	return fmt.Errorf("unknown ChangelogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChangelogEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChangelogEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangelogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChangelogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChangelogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(changelogentry.FieldSessionID) {
		fields = append(fields, changelogentry.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChangelogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChangelogEntryMutation) ClearField(name string) error {
	switch name {
	case changelogentry.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown ChangelogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChangelogEntryMutation) ResetField(name string) error {
	switch name {
	case changelogentry.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case changelogentry.FieldSessionID:
		m.ResetSessionID()
		return nil
	case changelogentry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case changelogentry.FieldPayload:
		m.ResetPayload()
		return nil
	case changelogentry.FieldAppliedToGraph:
		m.ResetAppliedToGraph()
		return nil
	}
	return fmt.Errorf("unknown ChangelogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChangelogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaign != nil {
		edges = append(edges, changelogentry.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChangelogEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case changelogentry.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChangelogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChangelogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChangelogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaign {
		edges = append(edges, changelogentry.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChangelogEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case changelogentry.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChangelogEntryMutation) ClearEdge(name string) error {
	switch name {
	case changelogentry.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown ChangelogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChangelogEntryMutation) ResetEdge(name string) error {
	switch name {
	case changelogentry.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown ChangelogEntry edge %s", name)
}

// CommunityMutation represents an operation that mutates the Community nodes in the graph.
type CommunityMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	level               *int
	addlevel            *int
	parent_community_id *string
	entity_ids          *[]string
	appendentity_ids    []string
	metadata            *map[string]string
	clearedFields       map[string]struct{}
	campaign            *string
	clearedcampaign     bool
	done                bool
	oldValue            func(context.Context) (*Community, error)
	predicates          []predicate.Community
}

var _ ent.Mutation = (*CommunityMutation)(nil)

// communityOption allows management of the mutation configuration using functional options.
type communityOption func(*CommunityMutation)

// newCommunityMutation creates new mutation for the Community entity.
func newCommunityMutation(c config, op Op, opts ...communityOption) *CommunityMutation {
	m := &CommunityMutation{
		config:        c,
		op:            op,
		typ:           TypeCommunity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommunityID sets the ID field of the mutation.
func withCommunityID(id string) communityOption {
	return func(m *CommunityMutation) {
		var (
			err   error
			once  sync.Once
			value *Community
		)
		m.oldValue = func(ctx context.Context) (*Community, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Community.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommunity sets the old Community of the mutation.
func withCommunity(node *Community) communityOption {
	return func(m *CommunityMutation) {
		m.oldValue = func(context.Context) (*Community, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommunityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommunityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Community entities.
func (m *CommunityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommunityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommunityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Community.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *CommunityMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *CommunityMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *CommunityMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetLevel sets the "level" field.
func (m *CommunityMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *CommunityMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *CommunityMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *CommunityMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *CommunityMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetParentCommunityID sets the "parent_community_id" field.
func (m *CommunityMutation) SetParentCommunityID(s string) {
	m.parent_community_id = &s
}

// ParentCommunityID returns the value of the "parent_community_id" field in the mutation.
func (m *CommunityMutation) ParentCommunityID() (r string, exists bool) {
	v := m.parent_community_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentCommunityID returns the old "parent_community_id" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldParentCommunityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentCommunityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentCommunityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentCommunityID: %w", err)
	}
	return oldValue.ParentCommunityID, nil
}

// ClearParentCommunityID clears the value of the "parent_community_id" field.
func (m *CommunityMutation) ClearParentCommunityID() {
	m.parent_community_id = nil
	m.clearedFields[community.FieldParentCommunityID] = struct{}{}
}

// ParentCommunityIDCleared returns if the "parent_community_id" field was cleared in this mutation.
func (m *CommunityMutation) ParentCommunityIDCleared() bool {
	_, ok := m.clearedFields[community.FieldParentCommunityID]
	return ok
}

// ResetParentCommunityID resets all changes to the "parent_community_id" field.
func (m *CommunityMutation) ResetParentCommunityID() {
	m.parent_community_id = nil
	delete(m.clearedFields, community.FieldParentCommunityID)
}

// SetEntityIds sets the "entity_ids" field.
func (m *CommunityMutation) SetEntityIds(s []string) {
	m.entity_ids = &s
	m.appendentity_ids = nil
}

// EntityIds returns the value of the "entity_ids" field in the mutation.
func (m *CommunityMutation) EntityIds() (r []string, exists bool) {
	v := m.entity_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityIds returns the old "entity_ids" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldEntityIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityIds: %w", err)
	}
	return oldValue.EntityIds, nil
}

// AppendEntityIds adds s to the "entity_ids" field.
func (m *CommunityMutation) AppendEntityIds(s []string) {
	m.appendentity_ids = append(m.appendentity_ids, s...)
}

// AppendedEntityIds returns the list of values that were appended to the "entity_ids" field in this mutation.
func (m *CommunityMutation) AppendedEntityIds() ([]string, bool) {
	if len(m.appendentity_ids) == 0 {
		return nil, false
	}
	return m.appendentity_ids, true
}

// ResetEntityIds resets all changes to the "entity_ids" field.
func (m *CommunityMutation) ResetEntityIds() {
	m.entity_ids = nil
	m.appendentity_ids = nil
}

// SetMetadata sets the "metadata" field.
func (m *CommunityMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CommunityMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CommunityMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[community.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CommunityMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[community.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CommunityMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, community.FieldMetadata)
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *CommunityMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[community.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *CommunityMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *CommunityMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *CommunityMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the CommunityMutation builder.
func (m *CommunityMutation) Where(ps ...predicate.Community) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommunityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommunityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Community, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommunityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommunityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Community).
func (m *CommunityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommunityMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.campaign != nil {
		fields = append(fields, community.FieldCampaignID)
	}
	if m.level != nil {
		fields = append(fields, community.FieldLevel)
	}
	if m.parent_community_id != nil {
		fields = append(fields, community.FieldParentCommunityID)
	}
	if m.entity_ids != nil {
		fields = append(fields, community.FieldEntityIds)
	}
	if m.metadata != nil {
		fields = append(fields, community.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommunityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case community.FieldCampaignID:
		return m.CampaignID()
	case community.FieldLevel:
		return m.Level()
	case community.FieldParentCommunityID:
		return m.ParentCommunityID()
	case community.FieldEntityIds:
		return m.EntityIds()
	case community.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommunityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case community.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case community.FieldLevel:
		return m.OldLevel(ctx)
	case community.FieldParentCommunityID:
		return m.OldParentCommunityID(ctx)
	case community.FieldEntityIds:
		return m.OldEntityIds(ctx)
	case community.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown Community field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommunityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case community.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case community.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case community.FieldParentCommunityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentCommunityID(v)
		return nil
	case community.FieldEntityIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityIds(v)
		return nil
	case community.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown Community field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommunityMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, community.FieldLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommunityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case community.FieldLevel:
		return m.AddedLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommunityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case community.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Community numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommunityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(community.FieldParentCommunityID) {
		fields = append(fields, community.FieldParentCommunityID)
	}
	if m.FieldCleared(community.FieldMetadata) {
		fields = append(fields, community.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommunityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommunityMutation) ClearField(name string) error {
	switch name {
	case community.FieldParentCommunityID:
		m.ClearParentCommunityID()
		return nil
	case community.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Community nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommunityMutation) ResetField(name string) error {
	switch name {
	case community.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case community.FieldLevel:
		m.ResetLevel()
		return nil
	case community.FieldParentCommunityID:
		m.ResetParentCommunityID()
		return nil
	case community.FieldEntityIds:
		m.ResetEntityIds()
		return nil
	case community.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown Community field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommunityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaign != nil {
		edges = append(edges, community.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommunityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case community.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommunityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommunityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommunityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaign {
		edges = append(edges, community.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommunityMutation) EdgeCleared(name string) bool {
	switch name {
	case community.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommunityMutation) ClearEdge(name string) error {
	switch name {
	case community.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown Community unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommunityMutation) ResetEdge(name string) error {
	switch name {
	case community.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown Community edge %s", name)
}

// EntityMutation represents an operation that mutates the Entity nodes in the graph.
type EntityMutation struct {
	config
	op              Op
	typ             string
	id              *string
	entity_type     *string
	name            *string
	content         *string
	metadata        *models.EntityMetadata
	confidence      *float64
	addconfidence   *float64
	source_type     *string
	source_id       *string
	embedding_id    *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	campaign        *string
	clearedcampaign bool
	done            bool
	oldValue        func(context.Context) (*Entity, error)
	predicates      []predicate.Entity
}

var _ ent.Mutation = (*EntityMutation)(nil)

// entityOption allows management of the mutation configuration using functional options.
type entityOption func(*EntityMutation)

// newEntityMutation creates new mutation for the Entity entity.
func newEntityMutation(c config, op Op, opts ...entityOption) *EntityMutation {
	m := &EntityMutation{
		config:        c,
		op:            op,
		typ:           TypeEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityID sets the ID field of the mutation.
func withEntityID(id string) entityOption {
	return func(m *EntityMutation) {
		var (
			err   error
			once  sync.Once
			value *Entity
		)
		m.oldValue = func(ctx context.Context) (*Entity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Entity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntity sets the old Entity of the mutation.
func withEntity(node *Entity) entityOption {
	return func(m *EntityMutation) {
		m.oldValue = func(context.Context) (*Entity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Entity entities.
func (m *EntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Entity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *EntityMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *EntityMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *EntityMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntityMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntityMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntityMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetName sets the "name" field.
func (m *EntityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EntityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EntityMutation) ResetName() {
	m.name = nil
}

// SetContent sets the "content" field.
func (m *EntityMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *EntityMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *EntityMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *EntityMutation) SetMetadata(mm models.EntityMetadata) {
	m.metadata = &mm
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EntityMutation) Metadata() (r models.EntityMetadata, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldMetadata(ctx context.Context) (v models.EntityMetadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EntityMutation) ResetMetadata() {
	m.metadata = nil
}

// SetConfidence sets the "confidence" field.
func (m *EntityMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EntityMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EntityMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EntityMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *EntityMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[entity.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *EntityMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[entity.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EntityMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, entity.FieldConfidence)
}

// SetSourceType sets the "source_type" field.
func (m *EntityMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *EntityMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *EntityMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceID sets the "source_id" field.
func (m *EntityMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *EntityMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *EntityMutation) ResetSourceID() {
	m.source_id = nil
}

// SetEmbeddingID sets the "embedding_id" field.
func (m *EntityMutation) SetEmbeddingID(s string) {
	m.embedding_id = &s
}

// EmbeddingID returns the value of the "embedding_id" field in the mutation.
func (m *EntityMutation) EmbeddingID() (r string, exists bool) {
	v := m.embedding_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingID returns the old "embedding_id" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldEmbeddingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingID: %w", err)
	}
	return oldValue.EmbeddingID, nil
}

// ClearEmbeddingID clears the value of the "embedding_id" field.
func (m *EntityMutation) ClearEmbeddingID() {
	m.embedding_id = nil
	m.clearedFields[entity.FieldEmbeddingID] = struct{}{}
}

// EmbeddingIDCleared returns if the "embedding_id" field was cleared in this mutation.
func (m *EntityMutation) EmbeddingIDCleared() bool {
	_, ok := m.clearedFields[entity.FieldEmbeddingID]
	return ok
}

// ResetEmbeddingID resets all changes to the "embedding_id" field.
func (m *EntityMutation) ResetEmbeddingID() {
	m.embedding_id = nil
	delete(m.clearedFields, entity.FieldEmbeddingID)
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EntityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EntityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EntityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *EntityMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[entity.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *EntityMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *EntityMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *EntityMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the EntityMutation builder.
func (m *EntityMutation) Where(ps ...predicate.Entity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Entity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Entity).
func (m *EntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.campaign != nil {
		fields = append(fields, entity.FieldCampaignID)
	}
	if m.entity_type != nil {
		fields = append(fields, entity.FieldEntityType)
	}
	if m.name != nil {
		fields = append(fields, entity.FieldName)
	}
	if m.content != nil {
		fields = append(fields, entity.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, entity.FieldMetadata)
	}
	if m.confidence != nil {
		fields = append(fields, entity.FieldConfidence)
	}
	if m.source_type != nil {
		fields = append(fields, entity.FieldSourceType)
	}
	if m.source_id != nil {
		fields = append(fields, entity.FieldSourceID)
	}
	if m.embedding_id != nil {
		fields = append(fields, entity.FieldEmbeddingID)
	}
	if m.created_at != nil {
		fields = append(fields, entity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, entity.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldCampaignID:
		return m.CampaignID()
	case entity.FieldEntityType:
		return m.EntityType()
	case entity.FieldName:
		return m.Name()
	case entity.FieldContent:
		return m.Content()
	case entity.FieldMetadata:
		return m.Metadata()
	case entity.FieldConfidence:
		return m.Confidence()
	case entity.FieldSourceType:
		return m.SourceType()
	case entity.FieldSourceID:
		return m.SourceID()
	case entity.FieldEmbeddingID:
		return m.EmbeddingID()
	case entity.FieldCreatedAt:
		return m.CreatedAt()
	case entity.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entity.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case entity.FieldEntityType:
		return m.OldEntityType(ctx)
	case entity.FieldName:
		return m.OldName(ctx)
	case entity.FieldContent:
		return m.OldContent(ctx)
	case entity.FieldMetadata:
		return m.OldMetadata(ctx)
	case entity.FieldConfidence:
		return m.OldConfidence(ctx)
	case entity.FieldSourceType:
		return m.OldSourceType(ctx)
	case entity.FieldSourceID:
		return m.OldSourceID(ctx)
	case entity.FieldEmbeddingID:
		return m.OldEmbeddingID(ctx)
	case entity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Entity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entity.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case entity.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entity.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case entity.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case entity.FieldMetadata:
		v, ok := value.(models.EntityMetadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case entity.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case entity.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case entity.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case entity.FieldEmbeddingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingID(v)
		return nil
	case entity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, entity.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entity.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Entity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entity.FieldConfidence) {
		fields = append(fields, entity.FieldConfidence)
	}
	if m.FieldCleared(entity.FieldEmbeddingID) {
		fields = append(fields, entity.FieldEmbeddingID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMutation) ClearField(name string) error {
	switch name {
	case entity.FieldConfidence:
		m.ClearConfidence()
		return nil
	case entity.FieldEmbeddingID:
		m.ClearEmbeddingID()
		return nil
	}
	return fmt.Errorf("unknown Entity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMutation) ResetField(name string) error {
	switch name {
	case entity.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case entity.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entity.FieldName:
		m.ResetName()
		return nil
	case entity.FieldContent:
		m.ResetContent()
		return nil
	case entity.FieldMetadata:
		m.ResetMetadata()
		return nil
	case entity.FieldConfidence:
		m.ResetConfidence()
		return nil
	case entity.FieldSourceType:
		m.ResetSourceType()
		return nil
	case entity.FieldSourceID:
		m.ResetSourceID()
		return nil
	case entity.FieldEmbeddingID:
		m.ResetEmbeddingID()
		return nil
	case entity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaign != nil {
		edges = append(edges, entity.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaign {
		edges = append(edges, entity.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMutation) EdgeCleared(name string) bool {
	switch name {
	case entity.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMutation) ClearEdge(name string) error {
	switch name {
	case entity.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown Entity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMutation) ResetEdge(name string) error {
	switch name {
	case entity.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown Entity edge %s", name)
}

// EntityImportanceMutation represents an operation that mutates the EntityImportance nodes in the graph.
type EntityImportanceMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	pagerank                  *float64
	addpagerank               *float64
	betweenness_centrality    *float64
	addbetweenness_centrality *float64
	hierarchy_level           *int
	addhierarchy_level        *int
	composite_score           *float64
	addcomposite_score        *float64
	computed_at               *time.Time
	clearedFields             map[string]struct{}
	campaign                  *string
	clearedcampaign           bool
	done                      bool
	oldValue                  func(context.Context) (*EntityImportance, error)
	predicates                []predicate.EntityImportance
}

var _ ent.Mutation = (*EntityImportanceMutation)(nil)

// entityimportanceOption allows management of the mutation configuration using functional options.
type entityimportanceOption func(*EntityImportanceMutation)

// newEntityImportanceMutation creates new mutation for the EntityImportance entity.
func newEntityImportanceMutation(c config, op Op, opts ...entityimportanceOption) *EntityImportanceMutation {
	m := &EntityImportanceMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityImportance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityImportanceID sets the ID field of the mutation.
func withEntityImportanceID(id string) entityimportanceOption {
	return func(m *EntityImportanceMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityImportance
		)
		m.oldValue = func(ctx context.Context) (*EntityImportance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityImportance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityImportance sets the old EntityImportance of the mutation.
func withEntityImportance(node *EntityImportance) entityimportanceOption {
	return func(m *EntityImportanceMutation) {
		m.oldValue = func(context.Context) (*EntityImportance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityImportanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityImportanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityImportance entities.
func (m *EntityImportanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityImportanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityImportanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityImportance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *EntityImportanceMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *EntityImportanceMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the EntityImportance entity.
// If the EntityImportance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityImportanceMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *EntityImportanceMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetPagerank sets the "pagerank" field.
func (m *EntityImportanceMutation) SetPagerank(f float64) {
	m.pagerank = &f
	m.addpagerank = nil
}

// Pagerank returns the value of the "pagerank" field in the mutation.
func (m *EntityImportanceMutation) Pagerank() (r float64, exists bool) {
	v := m.pagerank
	if v == nil {
		return
	}
	return *v, true
}

// OldPagerank returns the old "pagerank" field's value of the EntityImportance entity.
// If the EntityImportance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityImportanceMutation) OldPagerank(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPagerank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPagerank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPagerank: %w", err)
	}
	return oldValue.Pagerank, nil
}

// AddPagerank adds f to the "pagerank" field.
func (m *EntityImportanceMutation) AddPagerank(f float64) {
	if m.addpagerank != nil {
		*m.addpagerank += f
	} else {
		m.addpagerank = &f
	}
}

// AddedPagerank returns the value that was added to the "pagerank" field in this mutation.
func (m *EntityImportanceMutation) AddedPagerank() (r float64, exists bool) {
	v := m.addpagerank
	if v == nil {
		return
	}
	return *v, true
}

// ResetPagerank resets all changes to the "pagerank" field.
func (m *EntityImportanceMutation) ResetPagerank() {
	m.pagerank = nil
	m.addpagerank = nil
}

// SetBetweennessCentrality sets the "betweenness_centrality" field.
func (m *EntityImportanceMutation) SetBetweennessCentrality(f float64) {
	m.betweenness_centrality = &f
	m.addbetweenness_centrality = nil
}

// BetweennessCentrality returns the value of the "betweenness_centrality" field in the mutation.
func (m *EntityImportanceMutation) BetweennessCentrality() (r float64, exists bool) {
	v := m.betweenness_centrality
	if v == nil {
		return
	}
	return *v, true
}

// OldBetweennessCentrality returns the old "betweenness_centrality" field's value of the EntityImportance entity.
// If the EntityImportance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityImportanceMutation) OldBetweennessCentrality(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBetweennessCentrality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBetweennessCentrality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBetweennessCentrality: %w", err)
	}
	return oldValue.BetweennessCentrality, nil
}

// AddBetweennessCentrality adds f to the "betweenness_centrality" field.
func (m *EntityImportanceMutation) AddBetweennessCentrality(f float64) {
	if m.addbetweenness_centrality != nil {
		*m.addbetweenness_centrality += f
	} else {
		m.addbetweenness_centrality = &f
	}
}

// AddedBetweennessCentrality returns the value that was added to the "betweenness_centrality" field in this mutation.
func (m *EntityImportanceMutation) AddedBetweennessCentrality() (r float64, exists bool) {
	v := m.addbetweenness_centrality
	if v == nil {
		return
	}
	return *v, true
}

// ResetBetweennessCentrality resets all changes to the "betweenness_centrality" field.
func (m *EntityImportanceMutation) ResetBetweennessCentrality() {
	m.betweenness_centrality = nil
	m.addbetweenness_centrality = nil
}

// SetHierarchyLevel sets the "hierarchy_level" field.
func (m *EntityImportanceMutation) SetHierarchyLevel(i int) {
	m.hierarchy_level = &i
	m.addhierarchy_level = nil
}

// HierarchyLevel returns the value of the "hierarchy_level" field in the mutation.
func (m *EntityImportanceMutation) HierarchyLevel() (r int, exists bool) {
	v := m.hierarchy_level
	if v == nil {
		return
	}
	return *v, true
}

// OldHierarchyLevel returns the old "hierarchy_level" field's value of the EntityImportance entity.
// If the EntityImportance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityImportanceMutation) OldHierarchyLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHierarchyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHierarchyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHierarchyLevel: %w", err)
	}
	return oldValue.HierarchyLevel, nil
}

// AddHierarchyLevel adds i to the "hierarchy_level" field.
func (m *EntityImportanceMutation) AddHierarchyLevel(i int) {
	if m.addhierarchy_level != nil {
		*m.addhierarchy_level += i
	} else {
		m.addhierarchy_level = &i
	}
}

// AddedHierarchyLevel returns the value that was added to the "hierarchy_level" field in this mutation.
func (m *EntityImportanceMutation) AddedHierarchyLevel() (r int, exists bool) {
	v := m.addhierarchy_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetHierarchyLevel resets all changes to the "hierarchy_level" field.
func (m *EntityImportanceMutation) ResetHierarchyLevel() {
	m.hierarchy_level = nil
	m.addhierarchy_level = nil
}

// SetCompositeScore sets the "composite_score" field.
func (m *EntityImportanceMutation) SetCompositeScore(f float64) {
	m.composite_score = &f
	m.addcomposite_score = nil
}

// CompositeScore returns the value of the "composite_score" field in the mutation.
func (m *EntityImportanceMutation) CompositeScore() (r float64, exists bool) {
	v := m.composite_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCompositeScore returns the old "composite_score" field's value of the EntityImportance entity.
// If the EntityImportance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityImportanceMutation) OldCompositeScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompositeScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompositeScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompositeScore: %w", err)
	}
	return oldValue.CompositeScore, nil
}

// AddCompositeScore adds f to the "composite_score" field.
func (m *EntityImportanceMutation) AddCompositeScore(f float64) {
	if m.addcomposite_score != nil {
		*m.addcomposite_score += f
	} else {
		m.addcomposite_score = &f
	}
}

// AddedCompositeScore returns the value that was added to the "composite_score" field in this mutation.
func (m *EntityImportanceMutation) AddedCompositeScore() (r float64, exists bool) {
	v := m.addcomposite_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompositeScore resets all changes to the "composite_score" field.
func (m *EntityImportanceMutation) ResetCompositeScore() {
	m.composite_score = nil
	m.addcomposite_score = nil
}

// SetComputedAt sets the "computed_at" field.
func (m *EntityImportanceMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *EntityImportanceMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the EntityImportance entity.
// If the EntityImportance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityImportanceMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *EntityImportanceMutation) ResetComputedAt() {
	m.computed_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *EntityImportanceMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[entityimportance.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *EntityImportanceMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *EntityImportanceMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *EntityImportanceMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the EntityImportanceMutation builder.
func (m *EntityImportanceMutation) Where(ps ...predicate.EntityImportance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityImportanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityImportanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityImportance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityImportanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityImportanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityImportance).
func (m *EntityImportanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityImportanceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.campaign != nil {
		fields = append(fields, entityimportance.FieldCampaignID)
	}
	if m.pagerank != nil {
		fields = append(fields, entityimportance.FieldPagerank)
	}
	if m.betweenness_centrality != nil {
		fields = append(fields, entityimportance.FieldBetweennessCentrality)
	}
	if m.hierarchy_level != nil {
		fields = append(fields, entityimportance.FieldHierarchyLevel)
	}
	if m.composite_score != nil {
		fields = append(fields, entityimportance.FieldCompositeScore)
	}
	if m.computed_at != nil {
		fields = append(fields, entityimportance.FieldComputedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityImportanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entityimportance.FieldCampaignID:
		return m.CampaignID()
	case entityimportance.FieldPagerank:
		return m.Pagerank()
	case entityimportance.FieldBetweennessCentrality:
		return m.BetweennessCentrality()
	case entityimportance.FieldHierarchyLevel:
		return m.HierarchyLevel()
	case entityimportance.FieldCompositeScore:
		return m.CompositeScore()
	case entityimportance.FieldComputedAt:
		return m.ComputedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityImportanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entityimportance.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case entityimportance.FieldPagerank:
		return m.OldPagerank(ctx)
	case entityimportance.FieldBetweennessCentrality:
		return m.OldBetweennessCentrality(ctx)
	case entityimportance.FieldHierarchyLevel:
		return m.OldHierarchyLevel(ctx)
	case entityimportance.FieldCompositeScore:
		return m.OldCompositeScore(ctx)
	case entityimportance.FieldComputedAt:
		return m.OldComputedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntityImportance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityImportanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entityimportance.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case entityimportance.FieldPagerank:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPagerank(v)
		return nil
	case entityimportance.FieldBetweennessCentrality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBetweennessCentrality(v)
		return nil
	case entityimportance.FieldHierarchyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHierarchyLevel(v)
		return nil
	case entityimportance.FieldCompositeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompositeScore(v)
		return nil
	case entityimportance.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntityImportance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityImportanceMutation) AddedFields() []string {
	var fields []string
	if m.addpagerank != nil {
		fields = append(fields, entityimportance.FieldPagerank)
	}
	if m.addbetweenness_centrality != nil {
		fields = append(fields, entityimportance.FieldBetweennessCentrality)
	}
	if m.addhierarchy_level != nil {
		fields = append(fields, entityimportance.FieldHierarchyLevel)
	}
	if m.addcomposite_score != nil {
		fields = append(fields, entityimportance.FieldCompositeScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityImportanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entityimportance.FieldPagerank:
		return m.AddedPagerank()
	case entityimportance.FieldBetweennessCentrality:
		return m.AddedBetweennessCentrality()
	case entityimportance.FieldHierarchyLevel:
		return m.AddedHierarchyLevel()
	case entityimportance.FieldCompositeScore:
		return m.AddedCompositeScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityImportanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entityimportance.FieldPagerank:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPagerank(v)
		return nil
	case entityimportance.FieldBetweennessCentrality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBetweennessCentrality(v)
		return nil
	case entityimportance.FieldHierarchyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHierarchyLevel(v)
		return nil
	case entityimportance.FieldCompositeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompositeScore(v)
		return nil
	}
	return fmt.Errorf("unknown EntityImportance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityImportanceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityImportanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityImportanceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EntityImportance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityImportanceMutation) ResetField(name string) error {
	switch name {
	case entityimportance.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case entityimportance.FieldPagerank:
		m.ResetPagerank()
		return nil
	case entityimportance.FieldBetweennessCentrality:
		m.ResetBetweennessCentrality()
		return nil
	case entityimportance.FieldHierarchyLevel:
		m.ResetHierarchyLevel()
		return nil
	case entityimportance.FieldCompositeScore:
		m.ResetCompositeScore()
		return nil
	case entityimportance.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityImportance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityImportanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaign != nil {
		edges = append(edges, entityimportance.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityImportanceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entityimportance.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityImportanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityImportanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityImportanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaign {
		edges = append(edges, entityimportance.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityImportanceMutation) EdgeCleared(name string) bool {
	switch name {
	case entityimportance.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityImportanceMutation) ClearEdge(name string) error {
	switch name {
	case entityimportance.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown EntityImportance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityImportanceMutation) ResetEdge(name string) error {
	switch name {
	case entityimportance.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown EntityImportance edge %s", name)
}

// EntityRelationshipMutation represents an operation that mutates the EntityRelationship nodes in the graph.
type EntityRelationshipMutation struct {
	config
	op                Op
	typ               string
	id                *string
	from_entity_id    *string
	to_entity_id      *string
	relationship_type *string
	strength          *float64
	addstrength       *float64
	metadata          *map[string]string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	campaign          *string
	clearedcampaign   bool
	done              bool
	oldValue          func(context.Context) (*EntityRelationship, error)
	predicates        []predicate.EntityRelationship
}

var _ ent.Mutation = (*EntityRelationshipMutation)(nil)

// entityrelationshipOption allows management of the mutation configuration using functional options.
type entityrelationshipOption func(*EntityRelationshipMutation)

// newEntityRelationshipMutation creates new mutation for the EntityRelationship entity.
func newEntityRelationshipMutation(c config, op Op, opts ...entityrelationshipOption) *EntityRelationshipMutation {
	m := &EntityRelationshipMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityRelationship,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityRelationshipID sets the ID field of the mutation.
func withEntityRelationshipID(id string) entityrelationshipOption {
	return func(m *EntityRelationshipMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityRelationship
		)
		m.oldValue = func(ctx context.Context) (*EntityRelationship, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityRelationship.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityRelationship sets the old EntityRelationship of the mutation.
func withEntityRelationship(node *EntityRelationship) entityrelationshipOption {
	return func(m *EntityRelationshipMutation) {
		m.oldValue = func(context.Context) (*EntityRelationship, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityRelationshipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityRelationshipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityRelationship entities.
func (m *EntityRelationshipMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityRelationshipMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityRelationshipMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityRelationship.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *EntityRelationshipMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *EntityRelationshipMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *EntityRelationshipMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetFromEntityID sets the "from_entity_id" field.
func (m *EntityRelationshipMutation) SetFromEntityID(s string) {
	m.from_entity_id = &s
}

// FromEntityID returns the value of the "from_entity_id" field in the mutation.
func (m *EntityRelationshipMutation) FromEntityID() (r string, exists bool) {
	v := m.from_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromEntityID returns the old "from_entity_id" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldFromEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromEntityID: %w", err)
	}
	return oldValue.FromEntityID, nil
}

// ResetFromEntityID resets all changes to the "from_entity_id" field.
func (m *EntityRelationshipMutation) ResetFromEntityID() {
	m.from_entity_id = nil
}

// SetToEntityID sets the "to_entity_id" field.
func (m *EntityRelationshipMutation) SetToEntityID(s string) {
	m.to_entity_id = &s
}

// ToEntityID returns the value of the "to_entity_id" field in the mutation.
func (m *EntityRelationshipMutation) ToEntityID() (r string, exists bool) {
	v := m.to_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToEntityID returns the old "to_entity_id" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldToEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToEntityID: %w", err)
	}
	return oldValue.ToEntityID, nil
}

// ResetToEntityID resets all changes to the "to_entity_id" field.
func (m *EntityRelationshipMutation) ResetToEntityID() {
	m.to_entity_id = nil
}

// SetRelationshipType sets the "relationship_type" field.
func (m *EntityRelationshipMutation) SetRelationshipType(s string) {
	m.relationship_type = &s
}

// RelationshipType returns the value of the "relationship_type" field in the mutation.
func (m *EntityRelationshipMutation) RelationshipType() (r string, exists bool) {
	v := m.relationship_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationshipType returns the old "relationship_type" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldRelationshipType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationshipType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationshipType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationshipType: %w", err)
	}
	return oldValue.RelationshipType, nil
}

// ResetRelationshipType resets all changes to the "relationship_type" field.
func (m *EntityRelationshipMutation) ResetRelationshipType() {
	m.relationship_type = nil
}

// SetStrength sets the "strength" field.
func (m *EntityRelationshipMutation) SetStrength(f float64) {
	m.strength = &f
	m.addstrength = nil
}

// Strength returns the value of the "strength" field in the mutation.
func (m *EntityRelationshipMutation) Strength() (r float64, exists bool) {
	v := m.strength
	if v == nil {
		return
	}
	return *v, true
}

// OldStrength returns the old "strength" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldStrength(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrength: %w", err)
	}
	return oldValue.Strength, nil
}

// AddStrength adds f to the "strength" field.
func (m *EntityRelationshipMutation) AddStrength(f float64) {
	if m.addstrength != nil {
		*m.addstrength += f
	} else {
		m.addstrength = &f
	}
}

// AddedStrength returns the value that was added to the "strength" field in this mutation.
func (m *EntityRelationshipMutation) AddedStrength() (r float64, exists bool) {
	v := m.addstrength
	if v == nil {
		return
	}
	return *v, true
}

// ClearStrength clears the value of the "strength" field.
func (m *EntityRelationshipMutation) ClearStrength() {
	m.strength = nil
	m.addstrength = nil
	m.clearedFields[entityrelationship.FieldStrength] = struct{}{}
}

// StrengthCleared returns if the "strength" field was cleared in this mutation.
func (m *EntityRelationshipMutation) StrengthCleared() bool {
	_, ok := m.clearedFields[entityrelationship.FieldStrength]
	return ok
}

// ResetStrength resets all changes to the "strength" field.
func (m *EntityRelationshipMutation) ResetStrength() {
	m.strength = nil
	m.addstrength = nil
	delete(m.clearedFields, entityrelationship.FieldStrength)
}

// SetMetadata sets the "metadata" field.
func (m *EntityRelationshipMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EntityRelationshipMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EntityRelationshipMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[entityrelationship.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EntityRelationshipMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[entityrelationship.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EntityRelationshipMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, entityrelationship.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityRelationshipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityRelationshipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityRelationshipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EntityRelationshipMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EntityRelationshipMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EntityRelationshipMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *EntityRelationshipMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[entityrelationship.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *EntityRelationshipMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *EntityRelationshipMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *EntityRelationshipMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the EntityRelationshipMutation builder.
func (m *EntityRelationshipMutation) Where(ps ...predicate.EntityRelationship) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityRelationshipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityRelationshipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityRelationship, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityRelationshipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityRelationshipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityRelationship).
func (m *EntityRelationshipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityRelationshipMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.campaign != nil {
		fields = append(fields, entityrelationship.FieldCampaignID)
	}
	if m.from_entity_id != nil {
		fields = append(fields, entityrelationship.FieldFromEntityID)
	}
	if m.to_entity_id != nil {
		fields = append(fields, entityrelationship.FieldToEntityID)
	}
	if m.relationship_type != nil {
		fields = append(fields, entityrelationship.FieldRelationshipType)
	}
	if m.strength != nil {
		fields = append(fields, entityrelationship.FieldStrength)
	}
	if m.metadata != nil {
		fields = append(fields, entityrelationship.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, entityrelationship.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, entityrelationship.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityRelationshipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entityrelationship.FieldCampaignID:
		return m.CampaignID()
	case entityrelationship.FieldFromEntityID:
		return m.FromEntityID()
	case entityrelationship.FieldToEntityID:
		return m.ToEntityID()
	case entityrelationship.FieldRelationshipType:
		return m.RelationshipType()
	case entityrelationship.FieldStrength:
		return m.Strength()
	case entityrelationship.FieldMetadata:
		return m.Metadata()
	case entityrelationship.FieldCreatedAt:
		return m.CreatedAt()
	case entityrelationship.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityRelationshipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entityrelationship.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case entityrelationship.FieldFromEntityID:
		return m.OldFromEntityID(ctx)
	case entityrelationship.FieldToEntityID:
		return m.OldToEntityID(ctx)
	case entityrelationship.FieldRelationshipType:
		return m.OldRelationshipType(ctx)
	case entityrelationship.FieldStrength:
		return m.OldStrength(ctx)
	case entityrelationship.FieldMetadata:
		return m.OldMetadata(ctx)
	case entityrelationship.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entityrelationship.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntityRelationship field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityRelationshipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entityrelationship.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case entityrelationship.FieldFromEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromEntityID(v)
		return nil
	case entityrelationship.FieldToEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToEntityID(v)
		return nil
	case entityrelationship.FieldRelationshipType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationshipType(v)
		return nil
	case entityrelationship.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrength(v)
		return nil
	case entityrelationship.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case entityrelationship.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entityrelationship.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntityRelationship field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityRelationshipMutation) AddedFields() []string {
	var fields []string
	if m.addstrength != nil {
		fields = append(fields, entityrelationship.FieldStrength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityRelationshipMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entityrelationship.FieldStrength:
		return m.AddedStrength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityRelationshipMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entityrelationship.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStrength(v)
		return nil
	}
	return fmt.Errorf("unknown EntityRelationship numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityRelationshipMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entityrelationship.FieldStrength) {
		fields = append(fields, entityrelationship.FieldStrength)
	}
	if m.FieldCleared(entityrelationship.FieldMetadata) {
		fields = append(fields, entityrelationship.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityRelationshipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityRelationshipMutation) ClearField(name string) error {
	switch name {
	case entityrelationship.FieldStrength:
		m.ClearStrength()
		return nil
	case entityrelationship.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown EntityRelationship nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityRelationshipMutation) ResetField(name string) error {
	switch name {
	case entityrelationship.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case entityrelationship.FieldFromEntityID:
		m.ResetFromEntityID()
		return nil
	case entityrelationship.FieldToEntityID:
		m.ResetToEntityID()
		return nil
	case entityrelationship.FieldRelationshipType:
		m.ResetRelationshipType()
		return nil
	case entityrelationship.FieldStrength:
		m.ResetStrength()
		return nil
	case entityrelationship.FieldMetadata:
		m.ResetMetadata()
		return nil
	case entityrelationship.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entityrelationship.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityRelationship field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityRelationshipMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaign != nil {
		edges = append(edges, entityrelationship.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityRelationshipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entityrelationship.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityRelationshipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityRelationshipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityRelationshipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaign {
		edges = append(edges, entityrelationship.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityRelationshipMutation) EdgeCleared(name string) bool {
	switch name {
	case entityrelationship.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityRelationshipMutation) ClearEdge(name string) error {
	switch name {
	case entityrelationship.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown EntityRelationship unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityRelationshipMutation) ResetEdge(name string) error {
	switch name {
	case entityrelationship.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown EntityRelationship edge %s", name)
}

// FileMutation represents an operation that mutates the File nodes in the graph.
type FileMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant        *string
	file_name     *string
	content_type  *string
	size          *int64
	addsize       *int64
	status        *file.Status
	error_message *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	chunks        map[string]struct{}
	removedchunks map[string]struct{}
	clearedchunks bool
	done          bool
	oldValue      func(context.Context) (*File, error)
	predicates    []predicate.File
}

var _ ent.Mutation = (*FileMutation)(nil)

// fileOption allows management of the mutation configuration using functional options.
type fileOption func(*FileMutation)

// newFileMutation creates new mutation for the File entity.
func newFileMutation(c config, op Op, opts ...fileOption) *FileMutation {
	m := &FileMutation{
		config:        c,
		op:            op,
		typ:           TypeFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileID sets the ID field of the mutation.
func withFileID(id string) fileOption {
	return func(m *FileMutation) {
		var (
			err   error
			once  sync.Once
			value *File
		)
		m.oldValue = func(ctx context.Context) (*File, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().File.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFile sets the old File of the mutation.
func withFile(node *File) fileOption {
	return func(m *FileMutation) {
		m.oldValue = func(context.Context) (*File, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of File entities.
func (m *FileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().File.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *FileMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *FileMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *FileMutation) ResetTenant() {
	m.tenant = nil
}

// SetFileName sets the "file_name" field.
func (m *FileMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *FileMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *FileMutation) ResetFileName() {
	m.file_name = nil
}

// SetContentType sets the "content_type" field.
func (m *FileMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *FileMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *FileMutation) ResetContentType() {
	m.content_type = nil
}

// SetSize sets the "size" field.
func (m *FileMutation) SetSize(i int64) {
	m.size = &i
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *FileMutation) Size() (r int64, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds i to the "size" field.
func (m *FileMutation) AddSize(i int64) {
	if m.addsize != nil {
		*m.addsize += i
	} else {
		m.addsize = &i
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *FileMutation) AddedSize() (r int64, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *FileMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetStatus sets the "status" field.
func (m *FileMutation) SetStatus(f file.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FileMutation) Status() (r file.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldStatus(ctx context.Context) (v file.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FileMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *FileMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FileMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *FileMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[file.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FileMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[file.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FileMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, file.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *FileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddChunkIDs adds the "chunks" edge to the FileProcessingChunk entity by ids.
func (m *FileMutation) AddChunkIDs(ids ...string) {
	if m.chunks == nil {
		m.chunks = make(map[string]struct{})
	}
	for i := range ids {
		m.chunks[ids[i]] = struct{}{}
	}
}

// ClearChunks clears the "chunks" edge to the FileProcessingChunk entity.
func (m *FileMutation) ClearChunks() {
	m.clearedchunks = true
}

// ChunksCleared reports if the "chunks" edge to the FileProcessingChunk entity was cleared.
func (m *FileMutation) ChunksCleared() bool {
	return m.clearedchunks
}

// RemoveChunkIDs removes the "chunks" edge to the FileProcessingChunk entity by IDs.
func (m *FileMutation) RemoveChunkIDs(ids ...string) {
	if m.removedchunks == nil {
		m.removedchunks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chunks, ids[i])
		m.removedchunks[ids[i]] = struct{}{}
	}
}

// RemovedChunks returns the removed IDs of the "chunks" edge to the FileProcessingChunk entity.
func (m *FileMutation) RemovedChunksIDs() (ids []string) {
	for id := range m.removedchunks {
		ids = append(ids, id)
	}
	return
}

// ChunksIDs returns the "chunks" edge IDs in the mutation.
func (m *FileMutation) ChunksIDs() (ids []string) {
	for id := range m.chunks {
		ids = append(ids, id)
	}
	return
}

// ResetChunks resets all changes to the "chunks" edge.
func (m *FileMutation) ResetChunks() {
	m.chunks = nil
	m.clearedchunks = false
	m.removedchunks = nil
}

// Where appends a list predicates to the FileMutation builder.
func (m *FileMutation) Where(ps ...predicate.File) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.File, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (File).
func (m *FileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant != nil {
		fields = append(fields, file.FieldTenant)
	}
	if m.file_name != nil {
		fields = append(fields, file.FieldFileName)
	}
	if m.content_type != nil {
		fields = append(fields, file.FieldContentType)
	}
	if m.size != nil {
		fields = append(fields, file.FieldSize)
	}
	if m.status != nil {
		fields = append(fields, file.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, file.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, file.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, file.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case file.FieldTenant:
		return m.Tenant()
	case file.FieldFileName:
		return m.FileName()
	case file.FieldContentType:
		return m.ContentType()
	case file.FieldSize:
		return m.Size()
	case file.FieldStatus:
		return m.Status()
	case file.FieldErrorMessage:
		return m.ErrorMessage()
	case file.FieldCreatedAt:
		return m.CreatedAt()
	case file.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case file.FieldTenant:
		return m.OldTenant(ctx)
	case file.FieldFileName:
		return m.OldFileName(ctx)
	case file.FieldContentType:
		return m.OldContentType(ctx)
	case file.FieldSize:
		return m.OldSize(ctx)
	case file.FieldStatus:
		return m.OldStatus(ctx)
	case file.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case file.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case file.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown File field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case file.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case file.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case file.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case file.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case file.FieldStatus:
		v, ok := value.(file.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case file.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case file.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case file.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown File field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileMutation) AddedFields() []string {
	var fields []string
	if m.addsize != nil {
		fields = append(fields, file.FieldSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case file.FieldSize:
		return m.AddedSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case file.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	}
	return fmt.Errorf("unknown File numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(file.FieldErrorMessage) {
		fields = append(fields, file.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileMutation) ClearField(name string) error {
	switch name {
	case file.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown File nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileMutation) ResetField(name string) error {
	switch name {
	case file.FieldTenant:
		m.ResetTenant()
		return nil
	case file.FieldFileName:
		m.ResetFileName()
		return nil
	case file.FieldContentType:
		m.ResetContentType()
		return nil
	case file.FieldSize:
		m.ResetSize()
		return nil
	case file.FieldStatus:
		m.ResetStatus()
		return nil
	case file.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case file.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case file.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown File field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chunks != nil {
		edges = append(edges, file.EdgeChunks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case file.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.chunks))
		for id := range m.chunks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedchunks != nil {
		edges = append(edges, file.EdgeChunks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case file.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.removedchunks))
		for id := range m.removedchunks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchunks {
		edges = append(edges, file.EdgeChunks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileMutation) EdgeCleared(name string) bool {
	switch name {
	case file.EdgeChunks:
		return m.clearedchunks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown File unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileMutation) ResetEdge(name string) error {
	switch name {
	case file.EdgeChunks:
		m.ResetChunks()
		return nil
	}
	return fmt.Errorf("unknown File edge %s", name)
}

// FileProcessingChunkMutation represents an operation that mutates the FileProcessingChunk nodes in the graph.
type FileProcessingChunkMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant          *string
	chunk_index     *int
	addchunk_index  *int
	total_chunks    *int
	addtotal_chunks *int
	page_start      *int
	addpage_start   *int
	page_end        *int
	addpage_end     *int
	byte_start      *int64
	addbyte_start   *int64
	byte_end        *int64
	addbyte_end     *int64
	status          *fileprocessingchunk.Status
	retry_count     *int
	addretry_count  *int
	error_message   *string
	vector_id       *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	file            *string
	clearedfile     bool
	done            bool
	oldValue        func(context.Context) (*FileProcessingChunk, error)
	predicates      []predicate.FileProcessingChunk
}

var _ ent.Mutation = (*FileProcessingChunkMutation)(nil)

// fileprocessingchunkOption allows management of the mutation configuration using functional options.
type fileprocessingchunkOption func(*FileProcessingChunkMutation)

// newFileProcessingChunkMutation creates new mutation for the FileProcessingChunk entity.
func newFileProcessingChunkMutation(c config, op Op, opts ...fileprocessingchunkOption) *FileProcessingChunkMutation {
	m := &FileProcessingChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeFileProcessingChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileProcessingChunkID sets the ID field of the mutation.
func withFileProcessingChunkID(id string) fileprocessingchunkOption {
	return func(m *FileProcessingChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *FileProcessingChunk
		)
		m.oldValue = func(ctx context.Context) (*FileProcessingChunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileProcessingChunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileProcessingChunk sets the old FileProcessingChunk of the mutation.
func withFileProcessingChunk(node *FileProcessingChunk) fileprocessingchunkOption {
	return func(m *FileProcessingChunkMutation) {
		m.oldValue = func(context.Context) (*FileProcessingChunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileProcessingChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileProcessingChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FileProcessingChunk entities.
func (m *FileProcessingChunkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileProcessingChunkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileProcessingChunkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileProcessingChunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileKey sets the "file_key" field.
func (m *FileProcessingChunkMutation) SetFileKey(s string) {
	m.file = &s
}

// FileKey returns the value of the "file_key" field in the mutation.
func (m *FileProcessingChunkMutation) FileKey() (r string, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileKey returns the old "file_key" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldFileKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileKey: %w", err)
	}
	return oldValue.FileKey, nil
}

// ResetFileKey resets all changes to the "file_key" field.
func (m *FileProcessingChunkMutation) ResetFileKey() {
	m.file = nil
}

// SetTenant sets the "tenant" field.
func (m *FileProcessingChunkMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *FileProcessingChunkMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *FileProcessingChunkMutation) ResetTenant() {
	m.tenant = nil
}

// SetChunkIndex sets the "chunk_index" field.
func (m *FileProcessingChunkMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *FileProcessingChunkMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *FileProcessingChunkMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *FileProcessingChunkMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *FileProcessingChunkMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetTotalChunks sets the "total_chunks" field.
func (m *FileProcessingChunkMutation) SetTotalChunks(i int) {
	m.total_chunks = &i
	m.addtotal_chunks = nil
}

// TotalChunks returns the value of the "total_chunks" field in the mutation.
func (m *FileProcessingChunkMutation) TotalChunks() (r int, exists bool) {
	v := m.total_chunks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalChunks returns the old "total_chunks" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldTotalChunks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalChunks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalChunks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalChunks: %w", err)
	}
	return oldValue.TotalChunks, nil
}

// AddTotalChunks adds i to the "total_chunks" field.
func (m *FileProcessingChunkMutation) AddTotalChunks(i int) {
	if m.addtotal_chunks != nil {
		*m.addtotal_chunks += i
	} else {
		m.addtotal_chunks = &i
	}
}

// AddedTotalChunks returns the value that was added to the "total_chunks" field in this mutation.
func (m *FileProcessingChunkMutation) AddedTotalChunks() (r int, exists bool) {
	v := m.addtotal_chunks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalChunks resets all changes to the "total_chunks" field.
func (m *FileProcessingChunkMutation) ResetTotalChunks() {
	m.total_chunks = nil
	m.addtotal_chunks = nil
}

// SetPageStart sets the "page_start" field.
func (m *FileProcessingChunkMutation) SetPageStart(i int) {
	m.page_start = &i
	m.addpage_start = nil
}

// PageStart returns the value of the "page_start" field in the mutation.
func (m *FileProcessingChunkMutation) PageStart() (r int, exists bool) {
	v := m.page_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPageStart returns the old "page_start" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldPageStart(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageStart: %w", err)
	}
	return oldValue.PageStart, nil
}

// AddPageStart adds i to the "page_start" field.
func (m *FileProcessingChunkMutation) AddPageStart(i int) {
	if m.addpage_start != nil {
		*m.addpage_start += i
	} else {
		m.addpage_start = &i
	}
}

// AddedPageStart returns the value that was added to the "page_start" field in this mutation.
func (m *FileProcessingChunkMutation) AddedPageStart() (r int, exists bool) {
	v := m.addpage_start
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageStart clears the value of the "page_start" field.
func (m *FileProcessingChunkMutation) ClearPageStart() {
	m.page_start = nil
	m.addpage_start = nil
	m.clearedFields[fileprocessingchunk.FieldPageStart] = struct{}{}
}

// PageStartCleared returns if the "page_start" field was cleared in this mutation.
func (m *FileProcessingChunkMutation) PageStartCleared() bool {
	_, ok := m.clearedFields[fileprocessingchunk.FieldPageStart]
	return ok
}

// ResetPageStart resets all changes to the "page_start" field.
func (m *FileProcessingChunkMutation) ResetPageStart() {
	m.page_start = nil
	m.addpage_start = nil
	delete(m.clearedFields, fileprocessingchunk.FieldPageStart)
}

// SetPageEnd sets the "page_end" field.
func (m *FileProcessingChunkMutation) SetPageEnd(i int) {
	m.page_end = &i
	m.addpage_end = nil
}

// PageEnd returns the value of the "page_end" field in the mutation.
func (m *FileProcessingChunkMutation) PageEnd() (r int, exists bool) {
	v := m.page_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPageEnd returns the old "page_end" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldPageEnd(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageEnd: %w", err)
	}
	return oldValue.PageEnd, nil
}

// AddPageEnd adds i to the "page_end" field.
func (m *FileProcessingChunkMutation) AddPageEnd(i int) {
	if m.addpage_end != nil {
		*m.addpage_end += i
	} else {
		m.addpage_end = &i
	}
}

// AddedPageEnd returns the value that was added to the "page_end" field in this mutation.
func (m *FileProcessingChunkMutation) AddedPageEnd() (r int, exists bool) {
	v := m.addpage_end
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageEnd clears the value of the "page_end" field.
func (m *FileProcessingChunkMutation) ClearPageEnd() {
	m.page_end = nil
	m.addpage_end = nil
	m.clearedFields[fileprocessingchunk.FieldPageEnd] = struct{}{}
}

// PageEndCleared returns if the "page_end" field was cleared in this mutation.
func (m *FileProcessingChunkMutation) PageEndCleared() bool {
	_, ok := m.clearedFields[fileprocessingchunk.FieldPageEnd]
	return ok
}

// ResetPageEnd resets all changes to the "page_end" field.
func (m *FileProcessingChunkMutation) ResetPageEnd() {
	m.page_end = nil
	m.addpage_end = nil
	delete(m.clearedFields, fileprocessingchunk.FieldPageEnd)
}

// SetByteStart sets the "byte_start" field.
func (m *FileProcessingChunkMutation) SetByteStart(i int64) {
	m.byte_start = &i
	m.addbyte_start = nil
}

// ByteStart returns the value of the "byte_start" field in the mutation.
func (m *FileProcessingChunkMutation) ByteStart() (r int64, exists bool) {
	v := m.byte_start
	if v == nil {
		return
	}
	return *v, true
}

// OldByteStart returns the old "byte_start" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldByteStart(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldByteStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldByteStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldByteStart: %w", err)
	}
	return oldValue.ByteStart, nil
}

// AddByteStart adds i to the "byte_start" field.
func (m *FileProcessingChunkMutation) AddByteStart(i int64) {
	if m.addbyte_start != nil {
		*m.addbyte_start += i
	} else {
		m.addbyte_start = &i
	}
}

// AddedByteStart returns the value that was added to the "byte_start" field in this mutation.
func (m *FileProcessingChunkMutation) AddedByteStart() (r int64, exists bool) {
	v := m.addbyte_start
	if v == nil {
		return
	}
	return *v, true
}

// ClearByteStart clears the value of the "byte_start" field.
func (m *FileProcessingChunkMutation) ClearByteStart() {
	m.byte_start = nil
	m.addbyte_start = nil
	m.clearedFields[fileprocessingchunk.FieldByteStart] = struct{}{}
}

// ByteStartCleared returns if the "byte_start" field was cleared in this mutation.
func (m *FileProcessingChunkMutation) ByteStartCleared() bool {
	_, ok := m.clearedFields[fileprocessingchunk.FieldByteStart]
	return ok
}

// ResetByteStart resets all changes to the "byte_start" field.
func (m *FileProcessingChunkMutation) ResetByteStart() {
	m.byte_start = nil
	m.addbyte_start = nil
	delete(m.clearedFields, fileprocessingchunk.FieldByteStart)
}

// SetByteEnd sets the "byte_end" field.
func (m *FileProcessingChunkMutation) SetByteEnd(i int64) {
	m.byte_end = &i
	m.addbyte_end = nil
}

// ByteEnd returns the value of the "byte_end" field in the mutation.
func (m *FileProcessingChunkMutation) ByteEnd() (r int64, exists bool) {
	v := m.byte_end
	if v == nil {
		return
	}
	return *v, true
}

// OldByteEnd returns the old "byte_end" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldByteEnd(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldByteEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldByteEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldByteEnd: %w", err)
	}
	return oldValue.ByteEnd, nil
}

// AddByteEnd adds i to the "byte_end" field.
func (m *FileProcessingChunkMutation) AddByteEnd(i int64) {
	if m.addbyte_end != nil {
		*m.addbyte_end += i
	} else {
		m.addbyte_end = &i
	}
}

// AddedByteEnd returns the value that was added to the "byte_end" field in this mutation.
func (m *FileProcessingChunkMutation) AddedByteEnd() (r int64, exists bool) {
	v := m.addbyte_end
	if v == nil {
		return
	}
	return *v, true
}

// ClearByteEnd clears the value of the "byte_end" field.
func (m *FileProcessingChunkMutation) ClearByteEnd() {
	m.byte_end = nil
	m.addbyte_end = nil
	m.clearedFields[fileprocessingchunk.FieldByteEnd] = struct{}{}
}

// ByteEndCleared returns if the "byte_end" field was cleared in this mutation.
func (m *FileProcessingChunkMutation) ByteEndCleared() bool {
	_, ok := m.clearedFields[fileprocessingchunk.FieldByteEnd]
	return ok
}

// ResetByteEnd resets all changes to the "byte_end" field.
func (m *FileProcessingChunkMutation) ResetByteEnd() {
	m.byte_end = nil
	m.addbyte_end = nil
	delete(m.clearedFields, fileprocessingchunk.FieldByteEnd)
}

// SetStatus sets the "status" field.
func (m *FileProcessingChunkMutation) SetStatus(f fileprocessingchunk.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FileProcessingChunkMutation) Status() (r fileprocessingchunk.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldStatus(ctx context.Context) (v fileprocessingchunk.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FileProcessingChunkMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *FileProcessingChunkMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *FileProcessingChunkMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *FileProcessingChunkMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *FileProcessingChunkMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *FileProcessingChunkMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *FileProcessingChunkMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FileProcessingChunkMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *FileProcessingChunkMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[fileprocessingchunk.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FileProcessingChunkMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[fileprocessingchunk.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FileProcessingChunkMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, fileprocessingchunk.FieldErrorMessage)
}

// SetVectorID sets the "vector_id" field.
func (m *FileProcessingChunkMutation) SetVectorID(s string) {
	m.vector_id = &s
}

// VectorID returns the value of the "vector_id" field in the mutation.
func (m *FileProcessingChunkMutation) VectorID() (r string, exists bool) {
	v := m.vector_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVectorID returns the old "vector_id" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldVectorID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVectorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVectorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVectorID: %w", err)
	}
	return oldValue.VectorID, nil
}

// ClearVectorID clears the value of the "vector_id" field.
func (m *FileProcessingChunkMutation) ClearVectorID() {
	m.vector_id = nil
	m.clearedFields[fileprocessingchunk.FieldVectorID] = struct{}{}
}

// VectorIDCleared returns if the "vector_id" field was cleared in this mutation.
func (m *FileProcessingChunkMutation) VectorIDCleared() bool {
	_, ok := m.clearedFields[fileprocessingchunk.FieldVectorID]
	return ok
}

// ResetVectorID resets all changes to the "vector_id" field.
func (m *FileProcessingChunkMutation) ResetVectorID() {
	m.vector_id = nil
	delete(m.clearedFields, fileprocessingchunk.FieldVectorID)
}

// SetCreatedAt sets the "created_at" field.
func (m *FileProcessingChunkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FileProcessingChunkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FileProcessingChunkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FileProcessingChunkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FileProcessingChunkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FileProcessingChunk entity.
// If the FileProcessingChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileProcessingChunkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FileProcessingChunkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFileID sets the "file" edge to the File entity by id.
func (m *FileProcessingChunkMutation) SetFileID(id string) {
	m.file = &id
}

// ClearFile clears the "file" edge to the File entity.
func (m *FileProcessingChunkMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[fileprocessingchunk.FieldFileKey] = struct{}{}
}

// FileCleared reports if the "file" edge to the File entity was cleared.
func (m *FileProcessingChunkMutation) FileCleared() bool {
	return m.clearedfile
}

// FileID returns the "file" edge ID in the mutation.
func (m *FileProcessingChunkMutation) FileID() (id string, exists bool) {
	if m.file != nil {
		return *m.file, true
	}
	return
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *FileProcessingChunkMutation) FileIDs() (ids []string) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *FileProcessingChunkMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the FileProcessingChunkMutation builder.
func (m *FileProcessingChunkMutation) Where(ps ...predicate.FileProcessingChunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileProcessingChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileProcessingChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileProcessingChunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileProcessingChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileProcessingChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileProcessingChunk).
func (m *FileProcessingChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileProcessingChunkMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.file != nil {
		fields = append(fields, fileprocessingchunk.FieldFileKey)
	}
	if m.tenant != nil {
		fields = append(fields, fileprocessingchunk.FieldTenant)
	}
	if m.chunk_index != nil {
		fields = append(fields, fileprocessingchunk.FieldChunkIndex)
	}
	if m.total_chunks != nil {
		fields = append(fields, fileprocessingchunk.FieldTotalChunks)
	}
	if m.page_start != nil {
		fields = append(fields, fileprocessingchunk.FieldPageStart)
	}
	if m.page_end != nil {
		fields = append(fields, fileprocessingchunk.FieldPageEnd)
	}
	if m.byte_start != nil {
		fields = append(fields, fileprocessingchunk.FieldByteStart)
	}
	if m.byte_end != nil {
		fields = append(fields, fileprocessingchunk.FieldByteEnd)
	}
	if m.status != nil {
		fields = append(fields, fileprocessingchunk.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, fileprocessingchunk.FieldRetryCount)
	}
	if m.error_message != nil {
		fields = append(fields, fileprocessingchunk.FieldErrorMessage)
	}
	if m.vector_id != nil {
		fields = append(fields, fileprocessingchunk.FieldVectorID)
	}
	if m.created_at != nil {
		fields = append(fields, fileprocessingchunk.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fileprocessingchunk.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileProcessingChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fileprocessingchunk.FieldFileKey:
		return m.FileKey()
	case fileprocessingchunk.FieldTenant:
		return m.Tenant()
	case fileprocessingchunk.FieldChunkIndex:
		return m.ChunkIndex()
	case fileprocessingchunk.FieldTotalChunks:
		return m.TotalChunks()
	case fileprocessingchunk.FieldPageStart:
		return m.PageStart()
	case fileprocessingchunk.FieldPageEnd:
		return m.PageEnd()
	case fileprocessingchunk.FieldByteStart:
		return m.ByteStart()
	case fileprocessingchunk.FieldByteEnd:
		return m.ByteEnd()
	case fileprocessingchunk.FieldStatus:
		return m.Status()
	case fileprocessingchunk.FieldRetryCount:
		return m.RetryCount()
	case fileprocessingchunk.FieldErrorMessage:
		return m.ErrorMessage()
	case fileprocessingchunk.FieldVectorID:
		return m.VectorID()
	case fileprocessingchunk.FieldCreatedAt:
		return m.CreatedAt()
	case fileprocessingchunk.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileProcessingChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fileprocessingchunk.FieldFileKey:
		return m.OldFileKey(ctx)
	case fileprocessingchunk.FieldTenant:
		return m.OldTenant(ctx)
	case fileprocessingchunk.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case fileprocessingchunk.FieldTotalChunks:
		return m.OldTotalChunks(ctx)
	case fileprocessingchunk.FieldPageStart:
		return m.OldPageStart(ctx)
	case fileprocessingchunk.FieldPageEnd:
		return m.OldPageEnd(ctx)
	case fileprocessingchunk.FieldByteStart:
		return m.OldByteStart(ctx)
	case fileprocessingchunk.FieldByteEnd:
		return m.OldByteEnd(ctx)
	case fileprocessingchunk.FieldStatus:
		return m.OldStatus(ctx)
	case fileprocessingchunk.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case fileprocessingchunk.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case fileprocessingchunk.FieldVectorID:
		return m.OldVectorID(ctx)
	case fileprocessingchunk.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fileprocessingchunk.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FileProcessingChunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileProcessingChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fileprocessingchunk.FieldFileKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileKey(v)
		return nil
	case fileprocessingchunk.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case fileprocessingchunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case fileprocessingchunk.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalChunks(v)
		return nil
	case fileprocessingchunk.FieldPageStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageStart(v)
		return nil
	case fileprocessingchunk.FieldPageEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageEnd(v)
		return nil
	case fileprocessingchunk.FieldByteStart:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetByteStart(v)
		return nil
	case fileprocessingchunk.FieldByteEnd:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetByteEnd(v)
		return nil
	case fileprocessingchunk.FieldStatus:
		v, ok := value.(fileprocessingchunk.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fileprocessingchunk.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case fileprocessingchunk.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case fileprocessingchunk.FieldVectorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVectorID(v)
		return nil
	case fileprocessingchunk.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fileprocessingchunk.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FileProcessingChunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileProcessingChunkMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_index != nil {
		fields = append(fields, fileprocessingchunk.FieldChunkIndex)
	}
	if m.addtotal_chunks != nil {
		fields = append(fields, fileprocessingchunk.FieldTotalChunks)
	}
	if m.addpage_start != nil {
		fields = append(fields, fileprocessingchunk.FieldPageStart)
	}
	if m.addpage_end != nil {
		fields = append(fields, fileprocessingchunk.FieldPageEnd)
	}
	if m.addbyte_start != nil {
		fields = append(fields, fileprocessingchunk.FieldByteStart)
	}
	if m.addbyte_end != nil {
		fields = append(fields, fileprocessingchunk.FieldByteEnd)
	}
	if m.addretry_count != nil {
		fields = append(fields, fileprocessingchunk.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileProcessingChunkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fileprocessingchunk.FieldChunkIndex:
		return m.AddedChunkIndex()
	case fileprocessingchunk.FieldTotalChunks:
		return m.AddedTotalChunks()
	case fileprocessingchunk.FieldPageStart:
		return m.AddedPageStart()
	case fileprocessingchunk.FieldPageEnd:
		return m.AddedPageEnd()
	case fileprocessingchunk.FieldByteStart:
		return m.AddedByteStart()
	case fileprocessingchunk.FieldByteEnd:
		return m.AddedByteEnd()
	case fileprocessingchunk.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileProcessingChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fileprocessingchunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	case fileprocessingchunk.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalChunks(v)
		return nil
	case fileprocessingchunk.FieldPageStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageStart(v)
		return nil
	case fileprocessingchunk.FieldPageEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageEnd(v)
		return nil
	case fileprocessingchunk.FieldByteStart:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddByteStart(v)
		return nil
	case fileprocessingchunk.FieldByteEnd:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddByteEnd(v)
		return nil
	case fileprocessingchunk.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown FileProcessingChunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileProcessingChunkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fileprocessingchunk.FieldPageStart) {
		fields = append(fields, fileprocessingchunk.FieldPageStart)
	}
	if m.FieldCleared(fileprocessingchunk.FieldPageEnd) {
		fields = append(fields, fileprocessingchunk.FieldPageEnd)
	}
	if m.FieldCleared(fileprocessingchunk.FieldByteStart) {
		fields = append(fields, fileprocessingchunk.FieldByteStart)
	}
	if m.FieldCleared(fileprocessingchunk.FieldByteEnd) {
		fields = append(fields, fileprocessingchunk.FieldByteEnd)
	}
	if m.FieldCleared(fileprocessingchunk.FieldErrorMessage) {
		fields = append(fields, fileprocessingchunk.FieldErrorMessage)
	}
	if m.FieldCleared(fileprocessingchunk.FieldVectorID) {
		fields = append(fields, fileprocessingchunk.FieldVectorID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileProcessingChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileProcessingChunkMutation) ClearField(name string) error {
	switch name {
	case fileprocessingchunk.FieldPageStart:
		m.ClearPageStart()
		return nil
	case fileprocessingchunk.FieldPageEnd:
		m.ClearPageEnd()
		return nil
	case fileprocessingchunk.FieldByteStart:
		m.ClearByteStart()
		return nil
	case fileprocessingchunk.FieldByteEnd:
		m.ClearByteEnd()
		return nil
	case fileprocessingchunk.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case fileprocessingchunk.FieldVectorID:
		m.ClearVectorID()
		return nil
	}
	return fmt.Errorf("unknown FileProcessingChunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileProcessingChunkMutation) ResetField(name string) error {
	switch name {
	case fileprocessingchunk.FieldFileKey:
		m.ResetFileKey()
		return nil
	case fileprocessingchunk.FieldTenant:
		m.ResetTenant()
		return nil
	case fileprocessingchunk.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case fileprocessingchunk.FieldTotalChunks:
		m.ResetTotalChunks()
		return nil
	case fileprocessingchunk.FieldPageStart:
		m.ResetPageStart()
		return nil
	case fileprocessingchunk.FieldPageEnd:
		m.ResetPageEnd()
		return nil
	case fileprocessingchunk.FieldByteStart:
		m.ResetByteStart()
		return nil
	case fileprocessingchunk.FieldByteEnd:
		m.ResetByteEnd()
		return nil
	case fileprocessingchunk.FieldStatus:
		m.ResetStatus()
		return nil
	case fileprocessingchunk.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case fileprocessingchunk.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case fileprocessingchunk.FieldVectorID:
		m.ResetVectorID()
		return nil
	case fileprocessingchunk.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fileprocessingchunk.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FileProcessingChunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileProcessingChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, fileprocessingchunk.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileProcessingChunkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fileprocessingchunk.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileProcessingChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileProcessingChunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileProcessingChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, fileprocessingchunk.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileProcessingChunkMutation) EdgeCleared(name string) bool {
	switch name {
	case fileprocessingchunk.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileProcessingChunkMutation) ClearEdge(name string) error {
	switch name {
	case fileprocessingchunk.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown FileProcessingChunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileProcessingChunkMutation) ResetEdge(name string) error {
	switch name {
	case fileprocessingchunk.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown FileProcessingChunk edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant        *string
	kind          *notification.Kind
	subject_id    *string
	message       *string
	metadata      *map[string]string
	read          *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *NotificationMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *NotificationMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *NotificationMutation) ResetTenant() {
	m.tenant = nil
}

// SetKind sets the "kind" field.
func (m *NotificationMutation) SetKind(n notification.Kind) {
	m.kind = &n
}

// Kind returns the value of the "kind" field in the mutation.
func (m *NotificationMutation) Kind() (r notification.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldKind(ctx context.Context) (v notification.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *NotificationMutation) ResetKind() {
	m.kind = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *NotificationMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *NotificationMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *NotificationMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
}

// SetMetadata sets the "metadata" field.
func (m *NotificationMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *NotificationMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *NotificationMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[notification.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *NotificationMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[notification.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *NotificationMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, notification.FieldMetadata)
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant != nil {
		fields = append(fields, notification.FieldTenant)
	}
	if m.kind != nil {
		fields = append(fields, notification.FieldKind)
	}
	if m.subject_id != nil {
		fields = append(fields, notification.FieldSubjectID)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.metadata != nil {
		fields = append(fields, notification.FieldMetadata)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldTenant:
		return m.Tenant()
	case notification.FieldKind:
		return m.Kind()
	case notification.FieldSubjectID:
		return m.SubjectID()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldMetadata:
		return m.Metadata()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldTenant:
		return m.OldTenant(ctx)
	case notification.FieldKind:
		return m.OldKind(ctx)
	case notification.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldMetadata:
		return m.OldMetadata(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case notification.FieldKind:
		v, ok := value.(notification.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case notification.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldMetadata) {
		fields = append(fields, notification.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldTenant:
		m.ResetTenant()
		return nil
	case notification.FieldKind:
		m.ResetKind()
		return nil
	case notification.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldMetadata:
		m.ResetMetadata()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// QueueMessageMutation represents an operation that mutates the QueueMessage nodes in the graph.
type QueueMessageMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant            *string
	kind              *queuemessage.Kind
	payload           *map[string]string
	status            *queuemessage.Status
	retry_count       *int
	addretry_count    *int
	max_retries       *int
	addmax_retries    *int
	next_retry_at     *time.Time
	last_error        *string
	claimed_by        *string
	claimed_at        *time.Time
	last_heartbeat_at *time.Time
	dead_lettered_at  *time.Time
	elapsed_ms        *int64
	addelapsed_ms     *int64
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*QueueMessage, error)
	predicates        []predicate.QueueMessage
}

var _ ent.Mutation = (*QueueMessageMutation)(nil)

// queuemessageOption allows management of the mutation configuration using functional options.
type queuemessageOption func(*QueueMessageMutation)

// newQueueMessageMutation creates new mutation for the QueueMessage entity.
func newQueueMessageMutation(c config, op Op, opts ...queuemessageOption) *QueueMessageMutation {
	m := &QueueMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueMessageID sets the ID field of the mutation.
func withQueueMessageID(id string) queuemessageOption {
	return func(m *QueueMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueMessage
		)
		m.oldValue = func(ctx context.Context) (*QueueMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueMessage sets the old QueueMessage of the mutation.
func withQueueMessage(node *QueueMessage) queuemessageOption {
	return func(m *QueueMessageMutation) {
		m.oldValue = func(context.Context) (*QueueMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueMessage entities.
func (m *QueueMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *QueueMessageMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *QueueMessageMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *QueueMessageMutation) ResetTenant() {
	m.tenant = nil
}

// SetKind sets the "kind" field.
func (m *QueueMessageMutation) SetKind(q queuemessage.Kind) {
	m.kind = &q
}

// Kind returns the value of the "kind" field in the mutation.
func (m *QueueMessageMutation) Kind() (r queuemessage.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldKind(ctx context.Context) (v queuemessage.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *QueueMessageMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *QueueMessageMutation) SetPayload(value map[string]string) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QueueMessageMutation) Payload() (r map[string]string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldPayload(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *QueueMessageMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *QueueMessageMutation) SetStatus(q queuemessage.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QueueMessageMutation) Status() (r queuemessage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldStatus(ctx context.Context) (v queuemessage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QueueMessageMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *QueueMessageMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *QueueMessageMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *QueueMessageMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *QueueMessageMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *QueueMessageMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *QueueMessageMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *QueueMessageMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *QueueMessageMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *QueueMessageMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *QueueMessageMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *QueueMessageMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *QueueMessageMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldNextRetryAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *QueueMessageMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
}

// SetLastError sets the "last_error" field.
func (m *QueueMessageMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *QueueMessageMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *QueueMessageMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[queuemessage.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *QueueMessageMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *QueueMessageMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, queuemessage.FieldLastError)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *QueueMessageMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *QueueMessageMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *QueueMessageMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[queuemessage.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *QueueMessageMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *QueueMessageMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, queuemessage.FieldClaimedBy)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *QueueMessageMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *QueueMessageMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *QueueMessageMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[queuemessage.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *QueueMessageMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *QueueMessageMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, queuemessage.FieldClaimedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *QueueMessageMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *QueueMessageMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *QueueMessageMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[queuemessage.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *QueueMessageMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *QueueMessageMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, queuemessage.FieldLastHeartbeatAt)
}

// SetDeadLetteredAt sets the "dead_lettered_at" field.
func (m *QueueMessageMutation) SetDeadLetteredAt(t time.Time) {
	m.dead_lettered_at = &t
}

// DeadLetteredAt returns the value of the "dead_lettered_at" field in the mutation.
func (m *QueueMessageMutation) DeadLetteredAt() (r time.Time, exists bool) {
	v := m.dead_lettered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadLetteredAt returns the old "dead_lettered_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldDeadLetteredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadLetteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadLetteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadLetteredAt: %w", err)
	}
	return oldValue.DeadLetteredAt, nil
}

// ClearDeadLetteredAt clears the value of the "dead_lettered_at" field.
func (m *QueueMessageMutation) ClearDeadLetteredAt() {
	m.dead_lettered_at = nil
	m.clearedFields[queuemessage.FieldDeadLetteredAt] = struct{}{}
}

// DeadLetteredAtCleared returns if the "dead_lettered_at" field was cleared in this mutation.
func (m *QueueMessageMutation) DeadLetteredAtCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldDeadLetteredAt]
	return ok
}

// ResetDeadLetteredAt resets all changes to the "dead_lettered_at" field.
func (m *QueueMessageMutation) ResetDeadLetteredAt() {
	m.dead_lettered_at = nil
	delete(m.clearedFields, queuemessage.FieldDeadLetteredAt)
}

// SetElapsedMs sets the "elapsed_ms" field.
func (m *QueueMessageMutation) SetElapsedMs(i int64) {
	m.elapsed_ms = &i
	m.addelapsed_ms = nil
}

// ElapsedMs returns the value of the "elapsed_ms" field in the mutation.
func (m *QueueMessageMutation) ElapsedMs() (r int64, exists bool) {
	v := m.elapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldElapsedMs returns the old "elapsed_ms" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldElapsedMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElapsedMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElapsedMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElapsedMs: %w", err)
	}
	return oldValue.ElapsedMs, nil
}

// AddElapsedMs adds i to the "elapsed_ms" field.
func (m *QueueMessageMutation) AddElapsedMs(i int64) {
	if m.addelapsed_ms != nil {
		*m.addelapsed_ms += i
	} else {
		m.addelapsed_ms = &i
	}
}

// AddedElapsedMs returns the value that was added to the "elapsed_ms" field in this mutation.
func (m *QueueMessageMutation) AddedElapsedMs() (r int64, exists bool) {
	v := m.addelapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearElapsedMs clears the value of the "elapsed_ms" field.
func (m *QueueMessageMutation) ClearElapsedMs() {
	m.elapsed_ms = nil
	m.addelapsed_ms = nil
	m.clearedFields[queuemessage.FieldElapsedMs] = struct{}{}
}

// ElapsedMsCleared returns if the "elapsed_ms" field was cleared in this mutation.
func (m *QueueMessageMutation) ElapsedMsCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldElapsedMs]
	return ok
}

// ResetElapsedMs resets all changes to the "elapsed_ms" field.
func (m *QueueMessageMutation) ResetElapsedMs() {
	m.elapsed_ms = nil
	m.addelapsed_ms = nil
	delete(m.clearedFields, queuemessage.FieldElapsedMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *QueueMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueueMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueueMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QueueMessageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QueueMessageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QueueMessageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QueueMessageMutation builder.
func (m *QueueMessageMutation) Where(ps ...predicate.QueueMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueMessage).
func (m *QueueMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueMessageMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.tenant != nil {
		fields = append(fields, queuemessage.FieldTenant)
	}
	if m.kind != nil {
		fields = append(fields, queuemessage.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, queuemessage.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, queuemessage.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, queuemessage.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, queuemessage.FieldMaxRetries)
	}
	if m.next_retry_at != nil {
		fields = append(fields, queuemessage.FieldNextRetryAt)
	}
	if m.last_error != nil {
		fields = append(fields, queuemessage.FieldLastError)
	}
	if m.claimed_by != nil {
		fields = append(fields, queuemessage.FieldClaimedBy)
	}
	if m.claimed_at != nil {
		fields = append(fields, queuemessage.FieldClaimedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, queuemessage.FieldLastHeartbeatAt)
	}
	if m.dead_lettered_at != nil {
		fields = append(fields, queuemessage.FieldDeadLetteredAt)
	}
	if m.elapsed_ms != nil {
		fields = append(fields, queuemessage.FieldElapsedMs)
	}
	if m.created_at != nil {
		fields = append(fields, queuemessage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, queuemessage.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuemessage.FieldTenant:
		return m.Tenant()
	case queuemessage.FieldKind:
		return m.Kind()
	case queuemessage.FieldPayload:
		return m.Payload()
	case queuemessage.FieldStatus:
		return m.Status()
	case queuemessage.FieldRetryCount:
		return m.RetryCount()
	case queuemessage.FieldMaxRetries:
		return m.MaxRetries()
	case queuemessage.FieldNextRetryAt:
		return m.NextRetryAt()
	case queuemessage.FieldLastError:
		return m.LastError()
	case queuemessage.FieldClaimedBy:
		return m.ClaimedBy()
	case queuemessage.FieldClaimedAt:
		return m.ClaimedAt()
	case queuemessage.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case queuemessage.FieldDeadLetteredAt:
		return m.DeadLetteredAt()
	case queuemessage.FieldElapsedMs:
		return m.ElapsedMs()
	case queuemessage.FieldCreatedAt:
		return m.CreatedAt()
	case queuemessage.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuemessage.FieldTenant:
		return m.OldTenant(ctx)
	case queuemessage.FieldKind:
		return m.OldKind(ctx)
	case queuemessage.FieldPayload:
		return m.OldPayload(ctx)
	case queuemessage.FieldStatus:
		return m.OldStatus(ctx)
	case queuemessage.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case queuemessage.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case queuemessage.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case queuemessage.FieldLastError:
		return m.OldLastError(ctx)
	case queuemessage.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case queuemessage.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case queuemessage.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case queuemessage.FieldDeadLetteredAt:
		return m.OldDeadLetteredAt(ctx)
	case queuemessage.FieldElapsedMs:
		return m.OldElapsedMs(ctx)
	case queuemessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case queuemessage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuemessage.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case queuemessage.FieldKind:
		v, ok := value.(queuemessage.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case queuemessage.FieldPayload:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case queuemessage.FieldStatus:
		v, ok := value.(queuemessage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case queuemessage.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case queuemessage.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case queuemessage.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case queuemessage.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case queuemessage.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case queuemessage.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case queuemessage.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case queuemessage.FieldDeadLetteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadLetteredAt(v)
		return nil
	case queuemessage.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElapsedMs(v)
		return nil
	case queuemessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case queuemessage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueMessageMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, queuemessage.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, queuemessage.FieldMaxRetries)
	}
	if m.addelapsed_ms != nil {
		fields = append(fields, queuemessage.FieldElapsedMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queuemessage.FieldRetryCount:
		return m.AddedRetryCount()
	case queuemessage.FieldMaxRetries:
		return m.AddedMaxRetries()
	case queuemessage.FieldElapsedMs:
		return m.AddedElapsedMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queuemessage.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case queuemessage.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case queuemessage.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElapsedMs(v)
		return nil
	}
	return fmt.Errorf("unknown QueueMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuemessage.FieldLastError) {
		fields = append(fields, queuemessage.FieldLastError)
	}
	if m.FieldCleared(queuemessage.FieldClaimedBy) {
		fields = append(fields, queuemessage.FieldClaimedBy)
	}
	if m.FieldCleared(queuemessage.FieldClaimedAt) {
		fields = append(fields, queuemessage.FieldClaimedAt)
	}
	if m.FieldCleared(queuemessage.FieldLastHeartbeatAt) {
		fields = append(fields, queuemessage.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(queuemessage.FieldDeadLetteredAt) {
		fields = append(fields, queuemessage.FieldDeadLetteredAt)
	}
	if m.FieldCleared(queuemessage.FieldElapsedMs) {
		fields = append(fields, queuemessage.FieldElapsedMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueMessageMutation) ClearField(name string) error {
	switch name {
	case queuemessage.FieldLastError:
		m.ClearLastError()
		return nil
	case queuemessage.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case queuemessage.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case queuemessage.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case queuemessage.FieldDeadLetteredAt:
		m.ClearDeadLetteredAt()
		return nil
	case queuemessage.FieldElapsedMs:
		m.ClearElapsedMs()
		return nil
	}
	return fmt.Errorf("unknown QueueMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueMessageMutation) ResetField(name string) error {
	switch name {
	case queuemessage.FieldTenant:
		m.ResetTenant()
		return nil
	case queuemessage.FieldKind:
		m.ResetKind()
		return nil
	case queuemessage.FieldPayload:
		m.ResetPayload()
		return nil
	case queuemessage.FieldStatus:
		m.ResetStatus()
		return nil
	case queuemessage.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case queuemessage.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case queuemessage.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case queuemessage.FieldLastError:
		m.ResetLastError()
		return nil
	case queuemessage.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case queuemessage.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case queuemessage.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case queuemessage.FieldDeadLetteredAt:
		m.ResetDeadLetteredAt()
		return nil
	case queuemessage.FieldElapsedMs:
		m.ResetElapsedMs()
		return nil
	case queuemessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case queuemessage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage edge %s", name)
}

// RebuildStatusMutation represents an operation that mutates the RebuildStatus nodes in the graph.
type RebuildStatusMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	rebuild_type              *rebuildstatus.RebuildType
	status                    *rebuildstatus.Status
	affected_entity_ids       *[]string
	appendaffected_entity_ids []string
	last_error                *string
	created_at                *time.Time
	completed_at              *time.Time
	clearedFields             map[string]struct{}
	campaign                  *string
	clearedcampaign           bool
	done                      bool
	oldValue                  func(context.Context) (*RebuildStatus, error)
	predicates                []predicate.RebuildStatus
}

var _ ent.Mutation = (*RebuildStatusMutation)(nil)

// rebuildstatusOption allows management of the mutation configuration using functional options.
type rebuildstatusOption func(*RebuildStatusMutation)

// newRebuildStatusMutation creates new mutation for the RebuildStatus entity.
func newRebuildStatusMutation(c config, op Op, opts ...rebuildstatusOption) *RebuildStatusMutation {
	m := &RebuildStatusMutation{
		config:        c,
		op:            op,
		typ:           TypeRebuildStatus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRebuildStatusID sets the ID field of the mutation.
func withRebuildStatusID(id string) rebuildstatusOption {
	return func(m *RebuildStatusMutation) {
		var (
			err   error
			once  sync.Once
			value *RebuildStatus
		)
		m.oldValue = func(ctx context.Context) (*RebuildStatus, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RebuildStatus.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRebuildStatus sets the old RebuildStatus of the mutation.
func withRebuildStatus(node *RebuildStatus) rebuildstatusOption {
	return func(m *RebuildStatusMutation) {
		m.oldValue = func(context.Context) (*RebuildStatus, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RebuildStatusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RebuildStatusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RebuildStatus entities.
func (m *RebuildStatusMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RebuildStatusMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RebuildStatusMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RebuildStatus.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *RebuildStatusMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *RebuildStatusMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the RebuildStatus entity.
// If the RebuildStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RebuildStatusMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *RebuildStatusMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetRebuildType sets the "rebuild_type" field.
func (m *RebuildStatusMutation) SetRebuildType(rt rebuildstatus.RebuildType) {
	m.rebuild_type = &rt
}

// RebuildType returns the value of the "rebuild_type" field in the mutation.
func (m *RebuildStatusMutation) RebuildType() (r rebuildstatus.RebuildType, exists bool) {
	v := m.rebuild_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRebuildType returns the old "rebuild_type" field's value of the RebuildStatus entity.
// If the RebuildStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RebuildStatusMutation) OldRebuildType(ctx context.Context) (v rebuildstatus.RebuildType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRebuildType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRebuildType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRebuildType: %w", err)
	}
	return oldValue.RebuildType, nil
}

// ResetRebuildType resets all changes to the "rebuild_type" field.
func (m *RebuildStatusMutation) ResetRebuildType() {
	m.rebuild_type = nil
}

// SetStatus sets the "status" field.
func (m *RebuildStatusMutation) SetStatus(r rebuildstatus.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RebuildStatusMutation) Status() (r rebuildstatus.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RebuildStatus entity.
// If the RebuildStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RebuildStatusMutation) OldStatus(ctx context.Context) (v rebuildstatus.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RebuildStatusMutation) ResetStatus() {
	m.status = nil
}

// SetAffectedEntityIds sets the "affected_entity_ids" field.
func (m *RebuildStatusMutation) SetAffectedEntityIds(s []string) {
	m.affected_entity_ids = &s
	m.appendaffected_entity_ids = nil
}

// AffectedEntityIds returns the value of the "affected_entity_ids" field in the mutation.
func (m *RebuildStatusMutation) AffectedEntityIds() (r []string, exists bool) {
	v := m.affected_entity_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedEntityIds returns the old "affected_entity_ids" field's value of the RebuildStatus entity.
// If the RebuildStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RebuildStatusMutation) OldAffectedEntityIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedEntityIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedEntityIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedEntityIds: %w", err)
	}
	return oldValue.AffectedEntityIds, nil
}

// AppendAffectedEntityIds adds s to the "affected_entity_ids" field.
func (m *RebuildStatusMutation) AppendAffectedEntityIds(s []string) {
	m.appendaffected_entity_ids = append(m.appendaffected_entity_ids, s...)
}

// AppendedAffectedEntityIds returns the list of values that were appended to the "affected_entity_ids" field in this mutation.
func (m *RebuildStatusMutation) AppendedAffectedEntityIds() ([]string, bool) {
	if len(m.appendaffected_entity_ids) == 0 {
		return nil, false
	}
	return m.appendaffected_entity_ids, true
}

// ClearAffectedEntityIds clears the value of the "affected_entity_ids" field.
func (m *RebuildStatusMutation) ClearAffectedEntityIds() {
	m.affected_entity_ids = nil
	m.appendaffected_entity_ids = nil
	m.clearedFields[rebuildstatus.FieldAffectedEntityIds] = struct{}{}
}

// AffectedEntityIdsCleared returns if the "affected_entity_ids" field was cleared in this mutation.
func (m *RebuildStatusMutation) AffectedEntityIdsCleared() bool {
	_, ok := m.clearedFields[rebuildstatus.FieldAffectedEntityIds]
	return ok
}

// ResetAffectedEntityIds resets all changes to the "affected_entity_ids" field.
func (m *RebuildStatusMutation) ResetAffectedEntityIds() {
	m.affected_entity_ids = nil
	m.appendaffected_entity_ids = nil
	delete(m.clearedFields, rebuildstatus.FieldAffectedEntityIds)
}

// SetLastError sets the "last_error" field.
func (m *RebuildStatusMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *RebuildStatusMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the RebuildStatus entity.
// If the RebuildStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RebuildStatusMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *RebuildStatusMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[rebuildstatus.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *RebuildStatusMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[rebuildstatus.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *RebuildStatusMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, rebuildstatus.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *RebuildStatusMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RebuildStatusMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RebuildStatus entity.
// If the RebuildStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RebuildStatusMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RebuildStatusMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *RebuildStatusMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RebuildStatusMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the RebuildStatus entity.
// If the RebuildStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RebuildStatusMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RebuildStatusMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[rebuildstatus.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RebuildStatusMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[rebuildstatus.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RebuildStatusMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, rebuildstatus.FieldCompletedAt)
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *RebuildStatusMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[rebuildstatus.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *RebuildStatusMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *RebuildStatusMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *RebuildStatusMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the RebuildStatusMutation builder.
func (m *RebuildStatusMutation) Where(ps ...predicate.RebuildStatus) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RebuildStatusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RebuildStatusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RebuildStatus, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RebuildStatusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RebuildStatusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RebuildStatus).
func (m *RebuildStatusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RebuildStatusMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.campaign != nil {
		fields = append(fields, rebuildstatus.FieldCampaignID)
	}
	if m.rebuild_type != nil {
		fields = append(fields, rebuildstatus.FieldRebuildType)
	}
	if m.status != nil {
		fields = append(fields, rebuildstatus.FieldStatus)
	}
	if m.affected_entity_ids != nil {
		fields = append(fields, rebuildstatus.FieldAffectedEntityIds)
	}
	if m.last_error != nil {
		fields = append(fields, rebuildstatus.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, rebuildstatus.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, rebuildstatus.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RebuildStatusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rebuildstatus.FieldCampaignID:
		return m.CampaignID()
	case rebuildstatus.FieldRebuildType:
		return m.RebuildType()
	case rebuildstatus.FieldStatus:
		return m.Status()
	case rebuildstatus.FieldAffectedEntityIds:
		return m.AffectedEntityIds()
	case rebuildstatus.FieldLastError:
		return m.LastError()
	case rebuildstatus.FieldCreatedAt:
		return m.CreatedAt()
	case rebuildstatus.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RebuildStatusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rebuildstatus.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case rebuildstatus.FieldRebuildType:
		return m.OldRebuildType(ctx)
	case rebuildstatus.FieldStatus:
		return m.OldStatus(ctx)
	case rebuildstatus.FieldAffectedEntityIds:
		return m.OldAffectedEntityIds(ctx)
	case rebuildstatus.FieldLastError:
		return m.OldLastError(ctx)
	case rebuildstatus.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case rebuildstatus.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RebuildStatus field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RebuildStatusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rebuildstatus.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case rebuildstatus.FieldRebuildType:
		v, ok := value.(rebuildstatus.RebuildType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRebuildType(v)
		return nil
	case rebuildstatus.FieldStatus:
		v, ok := value.(rebuildstatus.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case rebuildstatus.FieldAffectedEntityIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedEntityIds(v)
		return nil
	case rebuildstatus.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case rebuildstatus.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case rebuildstatus.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RebuildStatus field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RebuildStatusMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RebuildStatusMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RebuildStatusMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RebuildStatus numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RebuildStatusMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rebuildstatus.FieldAffectedEntityIds) {
		fields = append(fields, rebuildstatus.FieldAffectedEntityIds)
	}
	if m.FieldCleared(rebuildstatus.FieldLastError) {
		fields = append(fields, rebuildstatus.FieldLastError)
	}
	if m.FieldCleared(rebuildstatus.FieldCompletedAt) {
		fields = append(fields, rebuildstatus.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RebuildStatusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RebuildStatusMutation) ClearField(name string) error {
	switch name {
	case rebuildstatus.FieldAffectedEntityIds:
		m.ClearAffectedEntityIds()
		return nil
	case rebuildstatus.FieldLastError:
		m.ClearLastError()
		return nil
	case rebuildstatus.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown RebuildStatus nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RebuildStatusMutation) ResetField(name string) error {
	switch name {
	case rebuildstatus.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case rebuildstatus.FieldRebuildType:
		m.ResetRebuildType()
		return nil
	case rebuildstatus.FieldStatus:
		m.ResetStatus()
		return nil
	case rebuildstatus.FieldAffectedEntityIds:
		m.ResetAffectedEntityIds()
		return nil
	case rebuildstatus.FieldLastError:
		m.ResetLastError()
		return nil
	case rebuildstatus.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case rebuildstatus.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown RebuildStatus field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RebuildStatusMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaign != nil {
		edges = append(edges, rebuildstatus.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RebuildStatusMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rebuildstatus.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RebuildStatusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RebuildStatusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RebuildStatusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaign {
		edges = append(edges, rebuildstatus.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RebuildStatusMutation) EdgeCleared(name string) bool {
	switch name {
	case rebuildstatus.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RebuildStatusMutation) ClearEdge(name string) error {
	switch name {
	case rebuildstatus.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown RebuildStatus unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RebuildStatusMutation) ResetEdge(name string) error {
	switch name {
	case rebuildstatus.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown RebuildStatus edge %s", name)
}

// SessionDigestMutation represents an operation that mutates the SessionDigest nodes in the graph.
type SessionDigestMutation struct {
	config
	op                Op
	typ               string
	id                *string
	session_number    *int
	addsession_number *int
	session_date      *time.Time
	digest_data       *models.DigestData
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	campaign          *string
	clearedcampaign   bool
	done              bool
	oldValue          func(context.Context) (*SessionDigest, error)
	predicates        []predicate.SessionDigest
}

var _ ent.Mutation = (*SessionDigestMutation)(nil)

// sessiondigestOption allows management of the mutation configuration using functional options.
type sessiondigestOption func(*SessionDigestMutation)

// newSessionDigestMutation creates new mutation for the SessionDigest entity.
func newSessionDigestMutation(c config, op Op, opts ...sessiondigestOption) *SessionDigestMutation {
	m := &SessionDigestMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionDigest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionDigestID sets the ID field of the mutation.
func withSessionDigestID(id string) sessiondigestOption {
	return func(m *SessionDigestMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionDigest
		)
		m.oldValue = func(ctx context.Context) (*SessionDigest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionDigest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionDigest sets the old SessionDigest of the mutation.
func withSessionDigest(node *SessionDigest) sessiondigestOption {
	return func(m *SessionDigestMutation) {
		m.oldValue = func(context.Context) (*SessionDigest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionDigestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionDigestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionDigest entities.
func (m *SessionDigestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionDigestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionDigestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionDigest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *SessionDigestMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *SessionDigestMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the SessionDigest entity.
// If the SessionDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDigestMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *SessionDigestMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetSessionNumber sets the "session_number" field.
func (m *SessionDigestMutation) SetSessionNumber(i int) {
	m.session_number = &i
	m.addsession_number = nil
}

// SessionNumber returns the value of the "session_number" field in the mutation.
func (m *SessionDigestMutation) SessionNumber() (r int, exists bool) {
	v := m.session_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionNumber returns the old "session_number" field's value of the SessionDigest entity.
// If the SessionDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDigestMutation) OldSessionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionNumber: %w", err)
	}
	return oldValue.SessionNumber, nil
}

// AddSessionNumber adds i to the "session_number" field.
func (m *SessionDigestMutation) AddSessionNumber(i int) {
	if m.addsession_number != nil {
		*m.addsession_number += i
	} else {
		m.addsession_number = &i
	}
}

// AddedSessionNumber returns the value that was added to the "session_number" field in this mutation.
func (m *SessionDigestMutation) AddedSessionNumber() (r int, exists bool) {
	v := m.addsession_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionNumber resets all changes to the "session_number" field.
func (m *SessionDigestMutation) ResetSessionNumber() {
	m.session_number = nil
	m.addsession_number = nil
}

// SetSessionDate sets the "session_date" field.
func (m *SessionDigestMutation) SetSessionDate(t time.Time) {
	m.session_date = &t
}

// SessionDate returns the value of the "session_date" field in the mutation.
func (m *SessionDigestMutation) SessionDate() (r time.Time, exists bool) {
	v := m.session_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionDate returns the old "session_date" field's value of the SessionDigest entity.
// If the SessionDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDigestMutation) OldSessionDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionDate: %w", err)
	}
	return oldValue.SessionDate, nil
}

// ClearSessionDate clears the value of the "session_date" field.
func (m *SessionDigestMutation) ClearSessionDate() {
	m.session_date = nil
	m.clearedFields[sessiondigest.FieldSessionDate] = struct{}{}
}

// SessionDateCleared returns if the "session_date" field was cleared in this mutation.
func (m *SessionDigestMutation) SessionDateCleared() bool {
	_, ok := m.clearedFields[sessiondigest.FieldSessionDate]
	return ok
}

// ResetSessionDate resets all changes to the "session_date" field.
func (m *SessionDigestMutation) ResetSessionDate() {
	m.session_date = nil
	delete(m.clearedFields, sessiondigest.FieldSessionDate)
}

// SetDigestData sets the "digest_data" field.
func (m *SessionDigestMutation) SetDigestData(md models.DigestData) {
	m.digest_data = &md
}

// DigestData returns the value of the "digest_data" field in the mutation.
func (m *SessionDigestMutation) DigestData() (r models.DigestData, exists bool) {
	v := m.digest_data
	if v == nil {
		return
	}
	return *v, true
}

// OldDigestData returns the old "digest_data" field's value of the SessionDigest entity.
// If the SessionDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDigestMutation) OldDigestData(ctx context.Context) (v models.DigestData, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDigestData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDigestData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDigestData: %w", err)
	}
	return oldValue.DigestData, nil
}

// ResetDigestData resets all changes to the "digest_data" field.
func (m *SessionDigestMutation) ResetDigestData() {
	m.digest_data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionDigestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionDigestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionDigest entity.
// If the SessionDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDigestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionDigestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionDigestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionDigestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionDigest entity.
// If the SessionDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDigestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionDigestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *SessionDigestMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[sessiondigest.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *SessionDigestMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *SessionDigestMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *SessionDigestMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the SessionDigestMutation builder.
func (m *SessionDigestMutation) Where(ps ...predicate.SessionDigest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionDigestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionDigestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionDigest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionDigestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionDigestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionDigest).
func (m *SessionDigestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionDigestMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.campaign != nil {
		fields = append(fields, sessiondigest.FieldCampaignID)
	}
	if m.session_number != nil {
		fields = append(fields, sessiondigest.FieldSessionNumber)
	}
	if m.session_date != nil {
		fields = append(fields, sessiondigest.FieldSessionDate)
	}
	if m.digest_data != nil {
		fields = append(fields, sessiondigest.FieldDigestData)
	}
	if m.created_at != nil {
		fields = append(fields, sessiondigest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessiondigest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionDigestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessiondigest.FieldCampaignID:
		return m.CampaignID()
	case sessiondigest.FieldSessionNumber:
		return m.SessionNumber()
	case sessiondigest.FieldSessionDate:
		return m.SessionDate()
	case sessiondigest.FieldDigestData:
		return m.DigestData()
	case sessiondigest.FieldCreatedAt:
		return m.CreatedAt()
	case sessiondigest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionDigestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessiondigest.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case sessiondigest.FieldSessionNumber:
		return m.OldSessionNumber(ctx)
	case sessiondigest.FieldSessionDate:
		return m.OldSessionDate(ctx)
	case sessiondigest.FieldDigestData:
		return m.OldDigestData(ctx)
	case sessiondigest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessiondigest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionDigest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionDigestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessiondigest.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case sessiondigest.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionNumber(v)
		return nil
	case sessiondigest.FieldSessionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionDate(v)
		return nil
	case sessiondigest.FieldDigestData:
		v, ok := value.(models.DigestData)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDigestData(v)
		return nil
	case sessiondigest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessiondigest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionDigest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionDigestMutation) AddedFields() []string {
	var fields []string
	if m.addsession_number != nil {
		fields = append(fields, sessiondigest.FieldSessionNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionDigestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessiondigest.FieldSessionNumber:
		return m.AddedSessionNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionDigestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessiondigest.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionNumber(v)
		return nil
	}
	return fmt.Errorf("unknown SessionDigest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionDigestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessiondigest.FieldSessionDate) {
		fields = append(fields, sessiondigest.FieldSessionDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionDigestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionDigestMutation) ClearField(name string) error {
	switch name {
	case sessiondigest.FieldSessionDate:
		m.ClearSessionDate()
		return nil
	}
	return fmt.Errorf("unknown SessionDigest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionDigestMutation) ResetField(name string) error {
	switch name {
	case sessiondigest.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case sessiondigest.FieldSessionNumber:
		m.ResetSessionNumber()
		return nil
	case sessiondigest.FieldSessionDate:
		m.ResetSessionDate()
		return nil
	case sessiondigest.FieldDigestData:
		m.ResetDigestData()
		return nil
	case sessiondigest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessiondigest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionDigest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionDigestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaign != nil {
		edges = append(edges, sessiondigest.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionDigestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessiondigest.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionDigestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionDigestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionDigestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaign {
		edges = append(edges, sessiondigest.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionDigestMutation) EdgeCleared(name string) bool {
	switch name {
	case sessiondigest.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionDigestMutation) ClearEdge(name string) error {
	switch name {
	case sessiondigest.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown SessionDigest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionDigestMutation) ResetEdge(name string) error {
	switch name {
	case sessiondigest.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown SessionDigest edge %s", name)
}
