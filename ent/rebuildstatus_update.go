// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/loresmith/loresmith/ent/predicate"
	"github.com/loresmith/loresmith/ent/rebuildstatus"
)

// RebuildStatusUpdate is the builder for updating RebuildStatus entities.
type RebuildStatusUpdate struct {
	config
	hooks    []Hook
	mutation *RebuildStatusMutation
}

// Where appends a list predicates to the RebuildStatusUpdate builder.
func (_u *RebuildStatusUpdate) Where(ps ...predicate.RebuildStatus) *RebuildStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRebuildType sets the "rebuild_type" field.
func (_u *RebuildStatusUpdate) SetRebuildType(v rebuildstatus.RebuildType) *RebuildStatusUpdate {
	_u.mutation.SetRebuildType(v)
	return _u
}

// SetNillableRebuildType sets the "rebuild_type" field if the given value is not nil.
func (_u *RebuildStatusUpdate) SetNillableRebuildType(v *rebuildstatus.RebuildType) *RebuildStatusUpdate {
	if v != nil {
		_u.SetRebuildType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RebuildStatusUpdate) SetStatus(v rebuildstatus.Status) *RebuildStatusUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RebuildStatusUpdate) SetNillableStatus(v *rebuildstatus.Status) *RebuildStatusUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAffectedEntityIds sets the "affected_entity_ids" field.
func (_u *RebuildStatusUpdate) SetAffectedEntityIds(v []string) *RebuildStatusUpdate {
	_u.mutation.SetAffectedEntityIds(v)
	return _u
}

// AppendAffectedEntityIds appends value to the "affected_entity_ids" field.
func (_u *RebuildStatusUpdate) AppendAffectedEntityIds(v []string) *RebuildStatusUpdate {
	_u.mutation.AppendAffectedEntityIds(v)
	return _u
}

// ClearAffectedEntityIds clears the value of the "affected_entity_ids" field.
func (_u *RebuildStatusUpdate) ClearAffectedEntityIds() *RebuildStatusUpdate {
	_u.mutation.ClearAffectedEntityIds()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *RebuildStatusUpdate) SetLastError(v string) *RebuildStatusUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *RebuildStatusUpdate) SetNillableLastError(v *string) *RebuildStatusUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *RebuildStatusUpdate) ClearLastError() *RebuildStatusUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RebuildStatusUpdate) SetCompletedAt(v time.Time) *RebuildStatusUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RebuildStatusUpdate) SetNillableCompletedAt(v *time.Time) *RebuildStatusUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RebuildStatusUpdate) ClearCompletedAt() *RebuildStatusUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the RebuildStatusMutation object of the builder.
func (_u *RebuildStatusUpdate) Mutation() *RebuildStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RebuildStatusUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RebuildStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RebuildStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RebuildStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RebuildStatusUpdate) check() error {
	if v, ok := _u.mutation.RebuildType(); ok {
		if err := rebuildstatus.RebuildTypeValidator(v); err != nil {
			return &ValidationError{Name: "rebuild_type", err: fmt.Errorf(`ent: validator failed for field "RebuildStatus.rebuild_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := rebuildstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RebuildStatus.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RebuildStatus.campaign"`)
	}
	return nil
}

func (_u *RebuildStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rebuildstatus.Table, rebuildstatus.Columns, sqlgraph.NewFieldSpec(rebuildstatus.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RebuildType(); ok {
		_spec.SetField(rebuildstatus.FieldRebuildType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rebuildstatus.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffectedEntityIds(); ok {
		_spec.SetField(rebuildstatus.FieldAffectedEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rebuildstatus.FieldAffectedEntityIds, value)
		})
	}
	if _u.mutation.AffectedEntityIdsCleared() {
		_spec.ClearField(rebuildstatus.FieldAffectedEntityIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(rebuildstatus.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(rebuildstatus.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(rebuildstatus.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(rebuildstatus.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rebuildstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RebuildStatusUpdateOne is the builder for updating a single RebuildStatus entity.
type RebuildStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RebuildStatusMutation
}

// SetRebuildType sets the "rebuild_type" field.
func (_u *RebuildStatusUpdateOne) SetRebuildType(v rebuildstatus.RebuildType) *RebuildStatusUpdateOne {
	_u.mutation.SetRebuildType(v)
	return _u
}

// SetNillableRebuildType sets the "rebuild_type" field if the given value is not nil.
func (_u *RebuildStatusUpdateOne) SetNillableRebuildType(v *rebuildstatus.RebuildType) *RebuildStatusUpdateOne {
	if v != nil {
		_u.SetRebuildType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RebuildStatusUpdateOne) SetStatus(v rebuildstatus.Status) *RebuildStatusUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RebuildStatusUpdateOne) SetNillableStatus(v *rebuildstatus.Status) *RebuildStatusUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAffectedEntityIds sets the "affected_entity_ids" field.
func (_u *RebuildStatusUpdateOne) SetAffectedEntityIds(v []string) *RebuildStatusUpdateOne {
	_u.mutation.SetAffectedEntityIds(v)
	return _u
}

// AppendAffectedEntityIds appends value to the "affected_entity_ids" field.
func (_u *RebuildStatusUpdateOne) AppendAffectedEntityIds(v []string) *RebuildStatusUpdateOne {
	_u.mutation.AppendAffectedEntityIds(v)
	return _u
}

// ClearAffectedEntityIds clears the value of the "affected_entity_ids" field.
func (_u *RebuildStatusUpdateOne) ClearAffectedEntityIds() *RebuildStatusUpdateOne {
	_u.mutation.ClearAffectedEntityIds()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *RebuildStatusUpdateOne) SetLastError(v string) *RebuildStatusUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *RebuildStatusUpdateOne) SetNillableLastError(v *string) *RebuildStatusUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *RebuildStatusUpdateOne) ClearLastError() *RebuildStatusUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RebuildStatusUpdateOne) SetCompletedAt(v time.Time) *RebuildStatusUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RebuildStatusUpdateOne) SetNillableCompletedAt(v *time.Time) *RebuildStatusUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RebuildStatusUpdateOne) ClearCompletedAt() *RebuildStatusUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the RebuildStatusMutation object of the builder.
func (_u *RebuildStatusUpdateOne) Mutation() *RebuildStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the RebuildStatusUpdate builder.
func (_u *RebuildStatusUpdateOne) Where(ps ...predicate.RebuildStatus) *RebuildStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RebuildStatusUpdateOne) Select(field string, fields ...string) *RebuildStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RebuildStatus entity.
func (_u *RebuildStatusUpdateOne) Save(ctx context.Context) (*RebuildStatus, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RebuildStatusUpdateOne) SaveX(ctx context.Context) *RebuildStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RebuildStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RebuildStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RebuildStatusUpdateOne) check() error {
	if v, ok := _u.mutation.RebuildType(); ok {
		if err := rebuildstatus.RebuildTypeValidator(v); err != nil {
			return &ValidationError{Name: "rebuild_type", err: fmt.Errorf(`ent: validator failed for field "RebuildStatus.rebuild_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := rebuildstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RebuildStatus.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RebuildStatus.campaign"`)
	}
	return nil
}

func (_u *RebuildStatusUpdateOne) sqlSave(ctx context.Context) (_node *RebuildStatus, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rebuildstatus.Table, rebuildstatus.Columns, sqlgraph.NewFieldSpec(rebuildstatus.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RebuildStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rebuildstatus.FieldID)
		for _, f := range fields {
			if !rebuildstatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rebuildstatus.FieldID {
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
	if value, ok := _u.mutation.RebuildType(); ok {
		_spec.SetField(rebuildstatus.FieldRebuildType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rebuildstatus.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffectedEntityIds(); ok {
		_spec.SetField(rebuildstatus.FieldAffectedEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rebuildstatus.FieldAffectedEntityIds, value)
		})
	}
	if _u.mutation.AffectedEntityIdsCleared() {
		_spec.ClearField(rebuildstatus.FieldAffectedEntityIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(rebuildstatus.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(rebuildstatus.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(rebuildstatus.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(rebuildstatus.FieldCompletedAt, field.TypeTime)
	}
	_node = &RebuildStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rebuildstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
