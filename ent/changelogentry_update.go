// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loresmith/loresmith/ent/changelogentry"
	"github.com/loresmith/loresmith/ent/predicate"
)

// ChangelogEntryUpdate is the builder for updating ChangelogEntry entities.
type ChangelogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ChangelogEntryMutation
}

// Where appends a list predicates to the ChangelogEntryUpdate builder.
func (_u *ChangelogEntryUpdate) Where(ps ...predicate.ChangelogEntry) *ChangelogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAppliedToGraph sets the "applied_to_graph" field.
func (_u *ChangelogEntryUpdate) SetAppliedToGraph(v bool) *ChangelogEntryUpdate {
	_u.mutation.SetAppliedToGraph(v)
	return _u
}

// SetNillableAppliedToGraph sets the "applied_to_graph" field if the given value is not nil.
func (_u *ChangelogEntryUpdate) SetNillableAppliedToGraph(v *bool) *ChangelogEntryUpdate {
	if v != nil {
		_u.SetAppliedToGraph(*v)
	}
	return _u
}

// Mutation returns the ChangelogEntryMutation object of the builder.
func (_u *ChangelogEntryUpdate) Mutation() *ChangelogEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChangelogEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangelogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChangelogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangelogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChangelogEntryUpdate) check() error {
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChangelogEntry.campaign"`)
	}
	return nil
}

func (_u *ChangelogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(changelogentry.Table, changelogentry.Columns, sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(changelogentry.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.AppliedToGraph(); ok {
		_spec.SetField(changelogentry.FieldAppliedToGraph, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changelogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChangelogEntryUpdateOne is the builder for updating a single ChangelogEntry entity.
type ChangelogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChangelogEntryMutation
}

// SetAppliedToGraph sets the "applied_to_graph" field.
func (_u *ChangelogEntryUpdateOne) SetAppliedToGraph(v bool) *ChangelogEntryUpdateOne {
	_u.mutation.SetAppliedToGraph(v)
	return _u
}

// SetNillableAppliedToGraph sets the "applied_to_graph" field if the given value is not nil.
func (_u *ChangelogEntryUpdateOne) SetNillableAppliedToGraph(v *bool) *ChangelogEntryUpdateOne {
	if v != nil {
		_u.SetAppliedToGraph(*v)
	}
	return _u
}

// Mutation returns the ChangelogEntryMutation object of the builder.
func (_u *ChangelogEntryUpdateOne) Mutation() *ChangelogEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChangelogEntryUpdate builder.
func (_u *ChangelogEntryUpdateOne) Where(ps ...predicate.ChangelogEntry) *ChangelogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChangelogEntryUpdateOne) Select(field string, fields ...string) *ChangelogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChangelogEntry entity.
func (_u *ChangelogEntryUpdateOne) Save(ctx context.Context) (*ChangelogEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangelogEntryUpdateOne) SaveX(ctx context.Context) *ChangelogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChangelogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangelogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChangelogEntryUpdateOne) check() error {
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChangelogEntry.campaign"`)
	}
	return nil
}

func (_u *ChangelogEntryUpdateOne) sqlSave(ctx context.Context) (_node *ChangelogEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(changelogentry.Table, changelogentry.Columns, sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChangelogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, changelogentry.FieldID)
		for _, f := range fields {
			if !changelogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != changelogentry.FieldID {
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
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(changelogentry.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.AppliedToGraph(); ok {
		_spec.SetField(changelogentry.FieldAppliedToGraph, field.TypeBool, value)
	}
	_node = &ChangelogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changelogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
