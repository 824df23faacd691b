// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/loresmith/loresmith/ent/community"
	"github.com/loresmith/loresmith/ent/predicate"
)

// CommunityUpdate is the builder for updating Community entities.
type CommunityUpdate struct {
	config
	hooks    []Hook
	mutation *CommunityMutation
}

// Where appends a list predicates to the CommunityUpdate builder.
func (_u *CommunityUpdate) Where(ps ...predicate.Community) *CommunityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *CommunityUpdate) SetLevel(v int) *CommunityUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CommunityUpdate) SetNillableLevel(v *int) *CommunityUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *CommunityUpdate) AddLevel(v int) *CommunityUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetParentCommunityID sets the "parent_community_id" field.
func (_u *CommunityUpdate) SetParentCommunityID(v string) *CommunityUpdate {
	_u.mutation.SetParentCommunityID(v)
	return _u
}

// SetNillableParentCommunityID sets the "parent_community_id" field if the given value is not nil.
func (_u *CommunityUpdate) SetNillableParentCommunityID(v *string) *CommunityUpdate {
	if v != nil {
		_u.SetParentCommunityID(*v)
	}
	return _u
}

// ClearParentCommunityID clears the value of the "parent_community_id" field.
func (_u *CommunityUpdate) ClearParentCommunityID() *CommunityUpdate {
	_u.mutation.ClearParentCommunityID()
	return _u
}

// SetEntityIds sets the "entity_ids" field.
func (_u *CommunityUpdate) SetEntityIds(v []string) *CommunityUpdate {
	_u.mutation.SetEntityIds(v)
	return _u
}

// AppendEntityIds appends value to the "entity_ids" field.
func (_u *CommunityUpdate) AppendEntityIds(v []string) *CommunityUpdate {
	_u.mutation.AppendEntityIds(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CommunityUpdate) SetMetadata(v map[string]string) *CommunityUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CommunityUpdate) ClearMetadata() *CommunityUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the CommunityMutation object of the builder.
func (_u *CommunityUpdate) Mutation() *CommunityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommunityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommunityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommunityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommunityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommunityUpdate) check() error {
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Community.campaign"`)
	}
	return nil
}

func (_u *CommunityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(community.Table, community.Columns, sqlgraph.NewFieldSpec(community.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(community.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(community.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentCommunityID(); ok {
		_spec.SetField(community.FieldParentCommunityID, field.TypeString, value)
	}
	if _u.mutation.ParentCommunityIDCleared() {
		_spec.ClearField(community.FieldParentCommunityID, field.TypeString)
	}
	if value, ok := _u.mutation.EntityIds(); ok {
		_spec.SetField(community.FieldEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, community.FieldEntityIds, value)
		})
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(community.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(community.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{community.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommunityUpdateOne is the builder for updating a single Community entity.
type CommunityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommunityMutation
}

// SetLevel sets the "level" field.
func (_u *CommunityUpdateOne) SetLevel(v int) *CommunityUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CommunityUpdateOne) SetNillableLevel(v *int) *CommunityUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *CommunityUpdateOne) AddLevel(v int) *CommunityUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetParentCommunityID sets the "parent_community_id" field.
func (_u *CommunityUpdateOne) SetParentCommunityID(v string) *CommunityUpdateOne {
	_u.mutation.SetParentCommunityID(v)
	return _u
}

// SetNillableParentCommunityID sets the "parent_community_id" field if the given value is not nil.
func (_u *CommunityUpdateOne) SetNillableParentCommunityID(v *string) *CommunityUpdateOne {
	if v != nil {
		_u.SetParentCommunityID(*v)
	}
	return _u
}

// ClearParentCommunityID clears the value of the "parent_community_id" field.
func (_u *CommunityUpdateOne) ClearParentCommunityID() *CommunityUpdateOne {
	_u.mutation.ClearParentCommunityID()
	return _u
}

// SetEntityIds sets the "entity_ids" field.
func (_u *CommunityUpdateOne) SetEntityIds(v []string) *CommunityUpdateOne {
	_u.mutation.SetEntityIds(v)
	return _u
}

// AppendEntityIds appends value to the "entity_ids" field.
func (_u *CommunityUpdateOne) AppendEntityIds(v []string) *CommunityUpdateOne {
	_u.mutation.AppendEntityIds(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CommunityUpdateOne) SetMetadata(v map[string]string) *CommunityUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CommunityUpdateOne) ClearMetadata() *CommunityUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the CommunityMutation object of the builder.
func (_u *CommunityUpdateOne) Mutation() *CommunityMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommunityUpdate builder.
func (_u *CommunityUpdateOne) Where(ps ...predicate.Community) *CommunityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommunityUpdateOne) Select(field string, fields ...string) *CommunityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Community entity.
func (_u *CommunityUpdateOne) Save(ctx context.Context) (*Community, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommunityUpdateOne) SaveX(ctx context.Context) *Community {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommunityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommunityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommunityUpdateOne) check() error {
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Community.campaign"`)
	}
	return nil
}

func (_u *CommunityUpdateOne) sqlSave(ctx context.Context) (_node *Community, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(community.Table, community.Columns, sqlgraph.NewFieldSpec(community.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Community.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, community.FieldID)
		for _, f := range fields {
			if !community.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != community.FieldID {
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
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(community.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(community.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentCommunityID(); ok {
		_spec.SetField(community.FieldParentCommunityID, field.TypeString, value)
	}
	if _u.mutation.ParentCommunityIDCleared() {
		_spec.ClearField(community.FieldParentCommunityID, field.TypeString)
	}
	if value, ok := _u.mutation.EntityIds(); ok {
		_spec.SetField(community.FieldEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, community.FieldEntityIds, value)
		})
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(community.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(community.FieldMetadata, field.TypeJSON)
	}
	_node = &Community{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{community.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
