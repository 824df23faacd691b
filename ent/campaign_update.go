// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loresmith/loresmith/ent/campaign"
	"github.com/loresmith/loresmith/ent/changelogentry"
	"github.com/loresmith/loresmith/ent/community"
	"github.com/loresmith/loresmith/ent/entity"
	"github.com/loresmith/loresmith/ent/entityimportance"
	"github.com/loresmith/loresmith/ent/entityrelationship"
	"github.com/loresmith/loresmith/ent/predicate"
	"github.com/loresmith/loresmith/ent/rebuildstatus"
	"github.com/loresmith/loresmith/ent/sessiondigest"
)

// CampaignUpdate is the builder for updating Campaign entities.
type CampaignUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignMutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdate) Where(ps ...predicate.Campaign) *CampaignUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdate) SetName(v string) *CampaignUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableName(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CampaignUpdate) SetDescription(v string) *CampaignUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableDescription(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CampaignUpdate) ClearDescription() *CampaignUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdate) SetStatus(v campaign.Status) *CampaignUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStatus(v *campaign.Status) *CampaignUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdate) SetUpdatedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEntityIDs adds the "entities" edge to the Entity entity by IDs.
func (_u *CampaignUpdate) AddEntityIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddEntityIDs(ids...)
	return _u
}

// AddEntities adds the "entities" edges to the Entity entity.
func (_u *CampaignUpdate) AddEntities(v ...*Entity) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityIDs(ids...)
}

// AddRelationshipIDs adds the "relationships" edge to the EntityRelationship entity by IDs.
func (_u *CampaignUpdate) AddRelationshipIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddRelationshipIDs(ids...)
	return _u
}

// AddRelationships adds the "relationships" edges to the EntityRelationship entity.
func (_u *CampaignUpdate) AddRelationships(v ...*EntityRelationship) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelationshipIDs(ids...)
}

// AddCommunityIDs adds the "communities" edge to the Community entity by IDs.
func (_u *CampaignUpdate) AddCommunityIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddCommunityIDs(ids...)
	return _u
}

// AddCommunities adds the "communities" edges to the Community entity.
func (_u *CampaignUpdate) AddCommunities(v ...*Community) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommunityIDs(ids...)
}

// AddImportanceIDs adds the "importances" edge to the EntityImportance entity by IDs.
func (_u *CampaignUpdate) AddImportanceIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddImportanceIDs(ids...)
	return _u
}

// AddImportances adds the "importances" edges to the EntityImportance entity.
func (_u *CampaignUpdate) AddImportances(v ...*EntityImportance) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportanceIDs(ids...)
}

// AddDigestIDs adds the "digests" edge to the SessionDigest entity by IDs.
func (_u *CampaignUpdate) AddDigestIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddDigestIDs(ids...)
	return _u
}

// AddDigests adds the "digests" edges to the SessionDigest entity.
func (_u *CampaignUpdate) AddDigests(v ...*SessionDigest) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDigestIDs(ids...)
}

// AddChangelogEntryIDs adds the "changelog_entries" edge to the ChangelogEntry entity by IDs.
func (_u *CampaignUpdate) AddChangelogEntryIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddChangelogEntryIDs(ids...)
	return _u
}

// AddChangelogEntries adds the "changelog_entries" edges to the ChangelogEntry entity.
func (_u *CampaignUpdate) AddChangelogEntries(v ...*ChangelogEntry) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChangelogEntryIDs(ids...)
}

// AddRebuildIDs adds the "rebuilds" edge to the RebuildStatus entity by IDs.
func (_u *CampaignUpdate) AddRebuildIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddRebuildIDs(ids...)
	return _u
}

// AddRebuilds adds the "rebuilds" edges to the RebuildStatus entity.
func (_u *CampaignUpdate) AddRebuilds(v ...*RebuildStatus) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRebuildIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdate) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearEntities clears all "entities" edges to the Entity entity.
func (_u *CampaignUpdate) ClearEntities() *CampaignUpdate {
	_u.mutation.ClearEntities()
	return _u
}

// RemoveEntityIDs removes the "entities" edge to Entity entities by IDs.
func (_u *CampaignUpdate) RemoveEntityIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveEntityIDs(ids...)
	return _u
}

// RemoveEntities removes "entities" edges to Entity entities.
func (_u *CampaignUpdate) RemoveEntities(v ...*Entity) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityIDs(ids...)
}

// ClearRelationships clears all "relationships" edges to the EntityRelationship entity.
func (_u *CampaignUpdate) ClearRelationships() *CampaignUpdate {
	_u.mutation.ClearRelationships()
	return _u
}

// RemoveRelationshipIDs removes the "relationships" edge to EntityRelationship entities by IDs.
func (_u *CampaignUpdate) RemoveRelationshipIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveRelationshipIDs(ids...)
	return _u
}

// RemoveRelationships removes "relationships" edges to EntityRelationship entities.
func (_u *CampaignUpdate) RemoveRelationships(v ...*EntityRelationship) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelationshipIDs(ids...)
}

// ClearCommunities clears all "communities" edges to the Community entity.
func (_u *CampaignUpdate) ClearCommunities() *CampaignUpdate {
	_u.mutation.ClearCommunities()
	return _u
}

// RemoveCommunityIDs removes the "communities" edge to Community entities by IDs.
func (_u *CampaignUpdate) RemoveCommunityIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveCommunityIDs(ids...)
	return _u
}

// RemoveCommunities removes "communities" edges to Community entities.
func (_u *CampaignUpdate) RemoveCommunities(v ...*Community) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommunityIDs(ids...)
}

// ClearImportances clears all "importances" edges to the EntityImportance entity.
func (_u *CampaignUpdate) ClearImportances() *CampaignUpdate {
	_u.mutation.ClearImportances()
	return _u
}

// RemoveImportanceIDs removes the "importances" edge to EntityImportance entities by IDs.
func (_u *CampaignUpdate) RemoveImportanceIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveImportanceIDs(ids...)
	return _u
}

// RemoveImportances removes "importances" edges to EntityImportance entities.
func (_u *CampaignUpdate) RemoveImportances(v ...*EntityImportance) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportanceIDs(ids...)
}

// ClearDigests clears all "digests" edges to the SessionDigest entity.
func (_u *CampaignUpdate) ClearDigests() *CampaignUpdate {
	_u.mutation.ClearDigests()
	return _u
}

// RemoveDigestIDs removes the "digests" edge to SessionDigest entities by IDs.
func (_u *CampaignUpdate) RemoveDigestIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveDigestIDs(ids...)
	return _u
}

// RemoveDigests removes "digests" edges to SessionDigest entities.
func (_u *CampaignUpdate) RemoveDigests(v ...*SessionDigest) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDigestIDs(ids...)
}

// ClearChangelogEntries clears all "changelog_entries" edges to the ChangelogEntry entity.
func (_u *CampaignUpdate) ClearChangelogEntries() *CampaignUpdate {
	_u.mutation.ClearChangelogEntries()
	return _u
}

// RemoveChangelogEntryIDs removes the "changelog_entries" edge to ChangelogEntry entities by IDs.
func (_u *CampaignUpdate) RemoveChangelogEntryIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveChangelogEntryIDs(ids...)
	return _u
}

// RemoveChangelogEntries removes "changelog_entries" edges to ChangelogEntry entities.
func (_u *CampaignUpdate) RemoveChangelogEntries(v ...*ChangelogEntry) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChangelogEntryIDs(ids...)
}

// ClearRebuilds clears all "rebuilds" edges to the RebuildStatus entity.
func (_u *CampaignUpdate) ClearRebuilds() *CampaignUpdate {
	_u.mutation.ClearRebuilds()
	return _u
}

// RemoveRebuildIDs removes the "rebuilds" edge to RebuildStatus entities by IDs.
func (_u *CampaignUpdate) RemoveRebuildIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveRebuildIDs(ids...)
	return _u
}

// RemoveRebuilds removes "rebuilds" edges to RebuildStatus entities.
func (_u *CampaignUpdate) RemoveRebuilds(v ...*RebuildStatus) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRebuildIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(campaign.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(campaign.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EntitiesTable,
			Columns: []string{campaign.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntitiesIDs(); len(nodes) > 0 && !_u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EntitiesTable,
			Columns: []string{campaign.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EntitiesTable,
			Columns: []string{campaign.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RelationshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RelationshipsTable,
			Columns: []string{campaign.RelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRelationshipsIDs(); len(nodes) > 0 && !_u.mutation.RelationshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RelationshipsTable,
			Columns: []string{campaign.RelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RelationshipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RelationshipsTable,
			Columns: []string{campaign.RelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommunitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.CommunitiesTable,
			Columns: []string{campaign.CommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommunitiesIDs(); len(nodes) > 0 && !_u.mutation.CommunitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.CommunitiesTable,
			Columns: []string{campaign.CommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommunitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.CommunitiesTable,
			Columns: []string{campaign.CommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ImportancesTable,
			Columns: []string{campaign.ImportancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityimportance.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportancesIDs(); len(nodes) > 0 && !_u.mutation.ImportancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ImportancesTable,
			Columns: []string{campaign.ImportancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityimportance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ImportancesTable,
			Columns: []string{campaign.ImportancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityimportance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DigestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.DigestsTable,
			Columns: []string{campaign.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondigest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDigestsIDs(); len(nodes) > 0 && !_u.mutation.DigestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.DigestsTable,
			Columns: []string{campaign.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondigest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DigestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.DigestsTable,
			Columns: []string{campaign.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondigest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChangelogEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ChangelogEntriesTable,
			Columns: []string{campaign.ChangelogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChangelogEntriesIDs(); len(nodes) > 0 && !_u.mutation.ChangelogEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ChangelogEntriesTable,
			Columns: []string{campaign.ChangelogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChangelogEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ChangelogEntriesTable,
			Columns: []string{campaign.ChangelogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RebuildsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RebuildsTable,
			Columns: []string{campaign.RebuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rebuildstatus.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRebuildsIDs(); len(nodes) > 0 && !_u.mutation.RebuildsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RebuildsTable,
			Columns: []string{campaign.RebuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rebuildstatus.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RebuildsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RebuildsTable,
			Columns: []string{campaign.RebuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rebuildstatus.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignUpdateOne is the builder for updating a single Campaign entity.
type CampaignUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignMutation
}

// SetName sets the "name" field.
func (_u *CampaignUpdateOne) SetName(v string) *CampaignUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableName(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CampaignUpdateOne) SetDescription(v string) *CampaignUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableDescription(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CampaignUpdateOne) ClearDescription() *CampaignUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdateOne) SetStatus(v campaign.Status) *CampaignUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStatus(v *campaign.Status) *CampaignUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdateOne) SetUpdatedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEntityIDs adds the "entities" edge to the Entity entity by IDs.
func (_u *CampaignUpdateOne) AddEntityIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddEntityIDs(ids...)
	return _u
}

// AddEntities adds the "entities" edges to the Entity entity.
func (_u *CampaignUpdateOne) AddEntities(v ...*Entity) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityIDs(ids...)
}

// AddRelationshipIDs adds the "relationships" edge to the EntityRelationship entity by IDs.
func (_u *CampaignUpdateOne) AddRelationshipIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddRelationshipIDs(ids...)
	return _u
}

// AddRelationships adds the "relationships" edges to the EntityRelationship entity.
func (_u *CampaignUpdateOne) AddRelationships(v ...*EntityRelationship) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelationshipIDs(ids...)
}

// AddCommunityIDs adds the "communities" edge to the Community entity by IDs.
func (_u *CampaignUpdateOne) AddCommunityIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddCommunityIDs(ids...)
	return _u
}

// AddCommunities adds the "communities" edges to the Community entity.
func (_u *CampaignUpdateOne) AddCommunities(v ...*Community) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommunityIDs(ids...)
}

// AddImportanceIDs adds the "importances" edge to the EntityImportance entity by IDs.
func (_u *CampaignUpdateOne) AddImportanceIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddImportanceIDs(ids...)
	return _u
}

// AddImportances adds the "importances" edges to the EntityImportance entity.
func (_u *CampaignUpdateOne) AddImportances(v ...*EntityImportance) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportanceIDs(ids...)
}

// AddDigestIDs adds the "digests" edge to the SessionDigest entity by IDs.
func (_u *CampaignUpdateOne) AddDigestIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddDigestIDs(ids...)
	return _u
}

// AddDigests adds the "digests" edges to the SessionDigest entity.
func (_u *CampaignUpdateOne) AddDigests(v ...*SessionDigest) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDigestIDs(ids...)
}

// AddChangelogEntryIDs adds the "changelog_entries" edge to the ChangelogEntry entity by IDs.
func (_u *CampaignUpdateOne) AddChangelogEntryIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddChangelogEntryIDs(ids...)
	return _u
}

// AddChangelogEntries adds the "changelog_entries" edges to the ChangelogEntry entity.
func (_u *CampaignUpdateOne) AddChangelogEntries(v ...*ChangelogEntry) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChangelogEntryIDs(ids...)
}

// AddRebuildIDs adds the "rebuilds" edge to the RebuildStatus entity by IDs.
func (_u *CampaignUpdateOne) AddRebuildIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddRebuildIDs(ids...)
	return _u
}

// AddRebuilds adds the "rebuilds" edges to the RebuildStatus entity.
func (_u *CampaignUpdateOne) AddRebuilds(v ...*RebuildStatus) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRebuildIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdateOne) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearEntities clears all "entities" edges to the Entity entity.
func (_u *CampaignUpdateOne) ClearEntities() *CampaignUpdateOne {
	_u.mutation.ClearEntities()
	return _u
}

// RemoveEntityIDs removes the "entities" edge to Entity entities by IDs.
func (_u *CampaignUpdateOne) RemoveEntityIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveEntityIDs(ids...)
	return _u
}

// RemoveEntities removes "entities" edges to Entity entities.
func (_u *CampaignUpdateOne) RemoveEntities(v ...*Entity) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityIDs(ids...)
}

// ClearRelationships clears all "relationships" edges to the EntityRelationship entity.
func (_u *CampaignUpdateOne) ClearRelationships() *CampaignUpdateOne {
	_u.mutation.ClearRelationships()
	return _u
}

// RemoveRelationshipIDs removes the "relationships" edge to EntityRelationship entities by IDs.
func (_u *CampaignUpdateOne) RemoveRelationshipIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveRelationshipIDs(ids...)
	return _u
}

// RemoveRelationships removes "relationships" edges to EntityRelationship entities.
func (_u *CampaignUpdateOne) RemoveRelationships(v ...*EntityRelationship) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelationshipIDs(ids...)
}

// ClearCommunities clears all "communities" edges to the Community entity.
func (_u *CampaignUpdateOne) ClearCommunities() *CampaignUpdateOne {
	_u.mutation.ClearCommunities()
	return _u
}

// RemoveCommunityIDs removes the "communities" edge to Community entities by IDs.
func (_u *CampaignUpdateOne) RemoveCommunityIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveCommunityIDs(ids...)
	return _u
}

// RemoveCommunities removes "communities" edges to Community entities.
func (_u *CampaignUpdateOne) RemoveCommunities(v ...*Community) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommunityIDs(ids...)
}

// ClearImportances clears all "importances" edges to the EntityImportance entity.
func (_u *CampaignUpdateOne) ClearImportances() *CampaignUpdateOne {
	_u.mutation.ClearImportances()
	return _u
}

// RemoveImportanceIDs removes the "importances" edge to EntityImportance entities by IDs.
func (_u *CampaignUpdateOne) RemoveImportanceIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveImportanceIDs(ids...)
	return _u
}

// RemoveImportances removes "importances" edges to EntityImportance entities.
func (_u *CampaignUpdateOne) RemoveImportances(v ...*EntityImportance) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportanceIDs(ids...)
}

// ClearDigests clears all "digests" edges to the SessionDigest entity.
func (_u *CampaignUpdateOne) ClearDigests() *CampaignUpdateOne {
	_u.mutation.ClearDigests()
	return _u
}

// RemoveDigestIDs removes the "digests" edge to SessionDigest entities by IDs.
func (_u *CampaignUpdateOne) RemoveDigestIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveDigestIDs(ids...)
	return _u
}

// RemoveDigests removes "digests" edges to SessionDigest entities.
func (_u *CampaignUpdateOne) RemoveDigests(v ...*SessionDigest) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDigestIDs(ids...)
}

// ClearChangelogEntries clears all "changelog_entries" edges to the ChangelogEntry entity.
func (_u *CampaignUpdateOne) ClearChangelogEntries() *CampaignUpdateOne {
	_u.mutation.ClearChangelogEntries()
	return _u
}

// RemoveChangelogEntryIDs removes the "changelog_entries" edge to ChangelogEntry entities by IDs.
func (_u *CampaignUpdateOne) RemoveChangelogEntryIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveChangelogEntryIDs(ids...)
	return _u
}

// RemoveChangelogEntries removes "changelog_entries" edges to ChangelogEntry entities.
func (_u *CampaignUpdateOne) RemoveChangelogEntries(v ...*ChangelogEntry) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChangelogEntryIDs(ids...)
}

// ClearRebuilds clears all "rebuilds" edges to the RebuildStatus entity.
func (_u *CampaignUpdateOne) ClearRebuilds() *CampaignUpdateOne {
	_u.mutation.ClearRebuilds()
	return _u
}

// RemoveRebuildIDs removes the "rebuilds" edge to RebuildStatus entities by IDs.
func (_u *CampaignUpdateOne) RemoveRebuildIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveRebuildIDs(ids...)
	return _u
}

// RemoveRebuilds removes "rebuilds" edges to RebuildStatus entities.
func (_u *CampaignUpdateOne) RemoveRebuilds(v ...*RebuildStatus) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRebuildIDs(ids...)
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdateOne) Where(ps ...predicate.Campaign) *CampaignUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignUpdateOne) Select(field string, fields ...string) *CampaignUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Campaign entity.
func (_u *CampaignUpdateOne) Save(ctx context.Context) (*Campaign, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdateOne) SaveX(ctx context.Context) *Campaign {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdateOne) sqlSave(ctx context.Context) (_node *Campaign, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Campaign.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaign.FieldID)
		for _, f := range fields {
			if !campaign.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaign.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(campaign.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(campaign.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EntitiesTable,
			Columns: []string{campaign.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntitiesIDs(); len(nodes) > 0 && !_u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EntitiesTable,
			Columns: []string{campaign.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EntitiesTable,
			Columns: []string{campaign.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RelationshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RelationshipsTable,
			Columns: []string{campaign.RelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRelationshipsIDs(); len(nodes) > 0 && !_u.mutation.RelationshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RelationshipsTable,
			Columns: []string{campaign.RelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RelationshipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RelationshipsTable,
			Columns: []string{campaign.RelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommunitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.CommunitiesTable,
			Columns: []string{campaign.CommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommunitiesIDs(); len(nodes) > 0 && !_u.mutation.CommunitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.CommunitiesTable,
			Columns: []string{campaign.CommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommunitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.CommunitiesTable,
			Columns: []string{campaign.CommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ImportancesTable,
			Columns: []string{campaign.ImportancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityimportance.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportancesIDs(); len(nodes) > 0 && !_u.mutation.ImportancesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ImportancesTable,
			Columns: []string{campaign.ImportancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityimportance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ImportancesTable,
			Columns: []string{campaign.ImportancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityimportance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DigestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.DigestsTable,
			Columns: []string{campaign.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondigest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDigestsIDs(); len(nodes) > 0 && !_u.mutation.DigestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.DigestsTable,
			Columns: []string{campaign.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondigest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DigestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.DigestsTable,
			Columns: []string{campaign.DigestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondigest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChangelogEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ChangelogEntriesTable,
			Columns: []string{campaign.ChangelogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChangelogEntriesIDs(); len(nodes) > 0 && !_u.mutation.ChangelogEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ChangelogEntriesTable,
			Columns: []string{campaign.ChangelogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChangelogEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ChangelogEntriesTable,
			Columns: []string{campaign.ChangelogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RebuildsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RebuildsTable,
			Columns: []string{campaign.RebuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rebuildstatus.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRebuildsIDs(); len(nodes) > 0 && !_u.mutation.RebuildsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RebuildsTable,
			Columns: []string{campaign.RebuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rebuildstatus.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RebuildsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.RebuildsTable,
			Columns: []string{campaign.RebuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rebuildstatus.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Campaign{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
