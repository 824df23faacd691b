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
	"github.com/loresmith/loresmith/ent/entityimportance"
	"github.com/loresmith/loresmith/ent/predicate"
)

// EntityImportanceUpdate is the builder for updating EntityImportance entities.
type EntityImportanceUpdate struct {
	config
	hooks    []Hook
	mutation *EntityImportanceMutation
}

// Where appends a list predicates to the EntityImportanceUpdate builder.
func (_u *EntityImportanceUpdate) Where(ps ...predicate.EntityImportance) *EntityImportanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPagerank sets the "pagerank" field.
func (_u *EntityImportanceUpdate) SetPagerank(v float64) *EntityImportanceUpdate {
	_u.mutation.ResetPagerank()
	_u.mutation.SetPagerank(v)
	return _u
}

// SetNillablePagerank sets the "pagerank" field if the given value is not nil.
func (_u *EntityImportanceUpdate) SetNillablePagerank(v *float64) *EntityImportanceUpdate {
	if v != nil {
		_u.SetPagerank(*v)
	}
	return _u
}

// AddPagerank adds value to the "pagerank" field.
func (_u *EntityImportanceUpdate) AddPagerank(v float64) *EntityImportanceUpdate {
	_u.mutation.AddPagerank(v)
	return _u
}

// SetBetweennessCentrality sets the "betweenness_centrality" field.
func (_u *EntityImportanceUpdate) SetBetweennessCentrality(v float64) *EntityImportanceUpdate {
	_u.mutation.ResetBetweennessCentrality()
	_u.mutation.SetBetweennessCentrality(v)
	return _u
}

// SetNillableBetweennessCentrality sets the "betweenness_centrality" field if the given value is not nil.
func (_u *EntityImportanceUpdate) SetNillableBetweennessCentrality(v *float64) *EntityImportanceUpdate {
	if v != nil {
		_u.SetBetweennessCentrality(*v)
	}
	return _u
}

// AddBetweennessCentrality adds value to the "betweenness_centrality" field.
func (_u *EntityImportanceUpdate) AddBetweennessCentrality(v float64) *EntityImportanceUpdate {
	_u.mutation.AddBetweennessCentrality(v)
	return _u
}

// SetHierarchyLevel sets the "hierarchy_level" field.
func (_u *EntityImportanceUpdate) SetHierarchyLevel(v int) *EntityImportanceUpdate {
	_u.mutation.ResetHierarchyLevel()
	_u.mutation.SetHierarchyLevel(v)
	return _u
}

// SetNillableHierarchyLevel sets the "hierarchy_level" field if the given value is not nil.
func (_u *EntityImportanceUpdate) SetNillableHierarchyLevel(v *int) *EntityImportanceUpdate {
	if v != nil {
		_u.SetHierarchyLevel(*v)
	}
	return _u
}

// AddHierarchyLevel adds value to the "hierarchy_level" field.
func (_u *EntityImportanceUpdate) AddHierarchyLevel(v int) *EntityImportanceUpdate {
	_u.mutation.AddHierarchyLevel(v)
	return _u
}

// SetCompositeScore sets the "composite_score" field.
func (_u *EntityImportanceUpdate) SetCompositeScore(v float64) *EntityImportanceUpdate {
	_u.mutation.ResetCompositeScore()
	_u.mutation.SetCompositeScore(v)
	return _u
}

// SetNillableCompositeScore sets the "composite_score" field if the given value is not nil.
func (_u *EntityImportanceUpdate) SetNillableCompositeScore(v *float64) *EntityImportanceUpdate {
	if v != nil {
		_u.SetCompositeScore(*v)
	}
	return _u
}

// AddCompositeScore adds value to the "composite_score" field.
func (_u *EntityImportanceUpdate) AddCompositeScore(v float64) *EntityImportanceUpdate {
	_u.mutation.AddCompositeScore(v)
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *EntityImportanceUpdate) SetComputedAt(v time.Time) *EntityImportanceUpdate {
	_u.mutation.SetComputedAt(v)
	return _u
}

// Mutation returns the EntityImportanceMutation object of the builder.
func (_u *EntityImportanceUpdate) Mutation() *EntityImportanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityImportanceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityImportanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityImportanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityImportanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityImportanceUpdate) defaults() {
	if _, ok := _u.mutation.ComputedAt(); !ok {
		v := entityimportance.UpdateDefaultComputedAt()
		_u.mutation.SetComputedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityImportanceUpdate) check() error {
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityImportance.campaign"`)
	}
	return nil
}

func (_u *EntityImportanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityimportance.Table, entityimportance.Columns, sqlgraph.NewFieldSpec(entityimportance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Pagerank(); ok {
		_spec.SetField(entityimportance.FieldPagerank, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPagerank(); ok {
		_spec.AddField(entityimportance.FieldPagerank, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BetweennessCentrality(); ok {
		_spec.SetField(entityimportance.FieldBetweennessCentrality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBetweennessCentrality(); ok {
		_spec.AddField(entityimportance.FieldBetweennessCentrality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HierarchyLevel(); ok {
		_spec.SetField(entityimportance.FieldHierarchyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHierarchyLevel(); ok {
		_spec.AddField(entityimportance.FieldHierarchyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompositeScore(); ok {
		_spec.SetField(entityimportance.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompositeScore(); ok {
		_spec.AddField(entityimportance.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(entityimportance.FieldComputedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityimportance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityImportanceUpdateOne is the builder for updating a single EntityImportance entity.
type EntityImportanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityImportanceMutation
}

// SetPagerank sets the "pagerank" field.
func (_u *EntityImportanceUpdateOne) SetPagerank(v float64) *EntityImportanceUpdateOne {
	_u.mutation.ResetPagerank()
	_u.mutation.SetPagerank(v)
	return _u
}

// SetNillablePagerank sets the "pagerank" field if the given value is not nil.
func (_u *EntityImportanceUpdateOne) SetNillablePagerank(v *float64) *EntityImportanceUpdateOne {
	if v != nil {
		_u.SetPagerank(*v)
	}
	return _u
}

// AddPagerank adds value to the "pagerank" field.
func (_u *EntityImportanceUpdateOne) AddPagerank(v float64) *EntityImportanceUpdateOne {
	_u.mutation.AddPagerank(v)
	return _u
}

// SetBetweennessCentrality sets the "betweenness_centrality" field.
func (_u *EntityImportanceUpdateOne) SetBetweennessCentrality(v float64) *EntityImportanceUpdateOne {
	_u.mutation.ResetBetweennessCentrality()
	_u.mutation.SetBetweennessCentrality(v)
	return _u
}

// SetNillableBetweennessCentrality sets the "betweenness_centrality" field if the given value is not nil.
func (_u *EntityImportanceUpdateOne) SetNillableBetweennessCentrality(v *float64) *EntityImportanceUpdateOne {
	if v != nil {
		_u.SetBetweennessCentrality(*v)
	}
	return _u
}

// AddBetweennessCentrality adds value to the "betweenness_centrality" field.
func (_u *EntityImportanceUpdateOne) AddBetweennessCentrality(v float64) *EntityImportanceUpdateOne {
	_u.mutation.AddBetweennessCentrality(v)
	return _u
}

// SetHierarchyLevel sets the "hierarchy_level" field.
func (_u *EntityImportanceUpdateOne) SetHierarchyLevel(v int) *EntityImportanceUpdateOne {
	_u.mutation.ResetHierarchyLevel()
	_u.mutation.SetHierarchyLevel(v)
	return _u
}

// SetNillableHierarchyLevel sets the "hierarchy_level" field if the given value is not nil.
func (_u *EntityImportanceUpdateOne) SetNillableHierarchyLevel(v *int) *EntityImportanceUpdateOne {
	if v != nil {
		_u.SetHierarchyLevel(*v)
	}
	return _u
}

// AddHierarchyLevel adds value to the "hierarchy_level" field.
func (_u *EntityImportanceUpdateOne) AddHierarchyLevel(v int) *EntityImportanceUpdateOne {
	_u.mutation.AddHierarchyLevel(v)
	return _u
}

// SetCompositeScore sets the "composite_score" field.
func (_u *EntityImportanceUpdateOne) SetCompositeScore(v float64) *EntityImportanceUpdateOne {
	_u.mutation.ResetCompositeScore()
	_u.mutation.SetCompositeScore(v)
	return _u
}

// SetNillableCompositeScore sets the "composite_score" field if the given value is not nil.
func (_u *EntityImportanceUpdateOne) SetNillableCompositeScore(v *float64) *EntityImportanceUpdateOne {
	if v != nil {
		_u.SetCompositeScore(*v)
	}
	return _u
}

// AddCompositeScore adds value to the "composite_score" field.
func (_u *EntityImportanceUpdateOne) AddCompositeScore(v float64) *EntityImportanceUpdateOne {
	_u.mutation.AddCompositeScore(v)
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *EntityImportanceUpdateOne) SetComputedAt(v time.Time) *EntityImportanceUpdateOne {
	_u.mutation.SetComputedAt(v)
	return _u
}

// Mutation returns the EntityImportanceMutation object of the builder.
func (_u *EntityImportanceUpdateOne) Mutation() *EntityImportanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntityImportanceUpdate builder.
func (_u *EntityImportanceUpdateOne) Where(ps ...predicate.EntityImportance) *EntityImportanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityImportanceUpdateOne) Select(field string, fields ...string) *EntityImportanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityImportance entity.
func (_u *EntityImportanceUpdateOne) Save(ctx context.Context) (*EntityImportance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityImportanceUpdateOne) SaveX(ctx context.Context) *EntityImportance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityImportanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityImportanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityImportanceUpdateOne) defaults() {
	if _, ok := _u.mutation.ComputedAt(); !ok {
		v := entityimportance.UpdateDefaultComputedAt()
		_u.mutation.SetComputedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityImportanceUpdateOne) check() error {
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityImportance.campaign"`)
	}
	return nil
}

func (_u *EntityImportanceUpdateOne) sqlSave(ctx context.Context) (_node *EntityImportance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityimportance.Table, entityimportance.Columns, sqlgraph.NewFieldSpec(entityimportance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityImportance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entityimportance.FieldID)
		for _, f := range fields {
			if !entityimportance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entityimportance.FieldID {
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
	if value, ok := _u.mutation.Pagerank(); ok {
		_spec.SetField(entityimportance.FieldPagerank, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPagerank(); ok {
		_spec.AddField(entityimportance.FieldPagerank, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BetweennessCentrality(); ok {
		_spec.SetField(entityimportance.FieldBetweennessCentrality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBetweennessCentrality(); ok {
		_spec.AddField(entityimportance.FieldBetweennessCentrality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HierarchyLevel(); ok {
		_spec.SetField(entityimportance.FieldHierarchyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHierarchyLevel(); ok {
		_spec.AddField(entityimportance.FieldHierarchyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompositeScore(); ok {
		_spec.SetField(entityimportance.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompositeScore(); ok {
		_spec.AddField(entityimportance.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(entityimportance.FieldComputedAt, field.TypeTime, value)
	}
	_node = &EntityImportance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityimportance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
