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
	"github.com/loresmith/loresmith/ent/entityrelationship"
	"github.com/loresmith/loresmith/ent/predicate"
)

// EntityRelationshipUpdate is the builder for updating EntityRelationship entities.
type EntityRelationshipUpdate struct {
	config
	hooks    []Hook
	mutation *EntityRelationshipMutation
}

// Where appends a list predicates to the EntityRelationshipUpdate builder.
func (_u *EntityRelationshipUpdate) Where(ps ...predicate.EntityRelationship) *EntityRelationshipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromEntityID sets the "from_entity_id" field.
func (_u *EntityRelationshipUpdate) SetFromEntityID(v string) *EntityRelationshipUpdate {
	_u.mutation.SetFromEntityID(v)
	return _u
}

// SetNillableFromEntityID sets the "from_entity_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableFromEntityID(v *string) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetFromEntityID(*v)
	}
	return _u
}

// SetToEntityID sets the "to_entity_id" field.
func (_u *EntityRelationshipUpdate) SetToEntityID(v string) *EntityRelationshipUpdate {
	_u.mutation.SetToEntityID(v)
	return _u
}

// SetNillableToEntityID sets the "to_entity_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableToEntityID(v *string) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetToEntityID(*v)
	}
	return _u
}

// SetRelationshipType sets the "relationship_type" field.
func (_u *EntityRelationshipUpdate) SetRelationshipType(v string) *EntityRelationshipUpdate {
	_u.mutation.SetRelationshipType(v)
	return _u
}

// SetNillableRelationshipType sets the "relationship_type" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableRelationshipType(v *string) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetRelationshipType(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *EntityRelationshipUpdate) SetStrength(v float64) *EntityRelationshipUpdate {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableStrength(v *float64) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *EntityRelationshipUpdate) AddStrength(v float64) *EntityRelationshipUpdate {
	_u.mutation.AddStrength(v)
	return _u
}

// ClearStrength clears the value of the "strength" field.
func (_u *EntityRelationshipUpdate) ClearStrength() *EntityRelationshipUpdate {
	_u.mutation.ClearStrength()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EntityRelationshipUpdate) SetMetadata(v map[string]string) *EntityRelationshipUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EntityRelationshipUpdate) ClearMetadata() *EntityRelationshipUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityRelationshipUpdate) SetUpdatedAt(v time.Time) *EntityRelationshipUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EntityRelationshipMutation object of the builder.
func (_u *EntityRelationshipUpdate) Mutation() *EntityRelationshipMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityRelationshipUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityRelationshipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityRelationshipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityRelationshipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityRelationshipUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entityrelationship.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityRelationshipUpdate) check() error {
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityRelationship.campaign"`)
	}
	return nil
}

func (_u *EntityRelationshipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityrelationship.Table, entityrelationship.Columns, sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromEntityID(); ok {
		_spec.SetField(entityrelationship.FieldFromEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToEntityID(); ok {
		_spec.SetField(entityrelationship.FieldToEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationshipType(); ok {
		_spec.SetField(entityrelationship.FieldRelationshipType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(entityrelationship.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(entityrelationship.FieldStrength, field.TypeFloat64, value)
	}
	if _u.mutation.StrengthCleared() {
		_spec.ClearField(entityrelationship.FieldStrength, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(entityrelationship.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(entityrelationship.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entityrelationship.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityrelationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityRelationshipUpdateOne is the builder for updating a single EntityRelationship entity.
type EntityRelationshipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityRelationshipMutation
}

// SetFromEntityID sets the "from_entity_id" field.
func (_u *EntityRelationshipUpdateOne) SetFromEntityID(v string) *EntityRelationshipUpdateOne {
	_u.mutation.SetFromEntityID(v)
	return _u
}

// SetNillableFromEntityID sets the "from_entity_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableFromEntityID(v *string) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetFromEntityID(*v)
	}
	return _u
}

// SetToEntityID sets the "to_entity_id" field.
func (_u *EntityRelationshipUpdateOne) SetToEntityID(v string) *EntityRelationshipUpdateOne {
	_u.mutation.SetToEntityID(v)
	return _u
}

// SetNillableToEntityID sets the "to_entity_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableToEntityID(v *string) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetToEntityID(*v)
	}
	return _u
}

// SetRelationshipType sets the "relationship_type" field.
func (_u *EntityRelationshipUpdateOne) SetRelationshipType(v string) *EntityRelationshipUpdateOne {
	_u.mutation.SetRelationshipType(v)
	return _u
}

// SetNillableRelationshipType sets the "relationship_type" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableRelationshipType(v *string) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetRelationshipType(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *EntityRelationshipUpdateOne) SetStrength(v float64) *EntityRelationshipUpdateOne {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableStrength(v *float64) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *EntityRelationshipUpdateOne) AddStrength(v float64) *EntityRelationshipUpdateOne {
	_u.mutation.AddStrength(v)
	return _u
}

// ClearStrength clears the value of the "strength" field.
func (_u *EntityRelationshipUpdateOne) ClearStrength() *EntityRelationshipUpdateOne {
	_u.mutation.ClearStrength()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EntityRelationshipUpdateOne) SetMetadata(v map[string]string) *EntityRelationshipUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EntityRelationshipUpdateOne) ClearMetadata() *EntityRelationshipUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityRelationshipUpdateOne) SetUpdatedAt(v time.Time) *EntityRelationshipUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EntityRelationshipMutation object of the builder.
func (_u *EntityRelationshipUpdateOne) Mutation() *EntityRelationshipMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntityRelationshipUpdate builder.
func (_u *EntityRelationshipUpdateOne) Where(ps ...predicate.EntityRelationship) *EntityRelationshipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityRelationshipUpdateOne) Select(field string, fields ...string) *EntityRelationshipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityRelationship entity.
func (_u *EntityRelationshipUpdateOne) Save(ctx context.Context) (*EntityRelationship, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityRelationshipUpdateOne) SaveX(ctx context.Context) *EntityRelationship {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityRelationshipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityRelationshipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityRelationshipUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entityrelationship.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityRelationshipUpdateOne) check() error {
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityRelationship.campaign"`)
	}
	return nil
}

func (_u *EntityRelationshipUpdateOne) sqlSave(ctx context.Context) (_node *EntityRelationship, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityrelationship.Table, entityrelationship.Columns, sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityRelationship.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entityrelationship.FieldID)
		for _, f := range fields {
			if !entityrelationship.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entityrelationship.FieldID {
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
	if value, ok := _u.mutation.FromEntityID(); ok {
		_spec.SetField(entityrelationship.FieldFromEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToEntityID(); ok {
		_spec.SetField(entityrelationship.FieldToEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationshipType(); ok {
		_spec.SetField(entityrelationship.FieldRelationshipType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(entityrelationship.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(entityrelationship.FieldStrength, field.TypeFloat64, value)
	}
	if _u.mutation.StrengthCleared() {
		_spec.ClearField(entityrelationship.FieldStrength, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(entityrelationship.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(entityrelationship.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entityrelationship.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EntityRelationship{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityrelationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
