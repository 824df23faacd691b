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
	"github.com/loresmith/loresmith/ent/predicate"
	"github.com/loresmith/loresmith/ent/sessiondigest"
	"github.com/loresmith/loresmith/pkg/models"
)

// SessionDigestUpdate is the builder for updating SessionDigest entities.
type SessionDigestUpdate struct {
	config
	hooks    []Hook
	mutation *SessionDigestMutation
}

// Where appends a list predicates to the SessionDigestUpdate builder.
func (_u *SessionDigestUpdate) Where(ps ...predicate.SessionDigest) *SessionDigestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionNumber sets the "session_number" field.
func (_u *SessionDigestUpdate) SetSessionNumber(v int) *SessionDigestUpdate {
	_u.mutation.ResetSessionNumber()
	_u.mutation.SetSessionNumber(v)
	return _u
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (_u *SessionDigestUpdate) SetNillableSessionNumber(v *int) *SessionDigestUpdate {
	if v != nil {
		_u.SetSessionNumber(*v)
	}
	return _u
}

// AddSessionNumber adds value to the "session_number" field.
func (_u *SessionDigestUpdate) AddSessionNumber(v int) *SessionDigestUpdate {
	_u.mutation.AddSessionNumber(v)
	return _u
}

// SetSessionDate sets the "session_date" field.
func (_u *SessionDigestUpdate) SetSessionDate(v time.Time) *SessionDigestUpdate {
	_u.mutation.SetSessionDate(v)
	return _u
}

// SetNillableSessionDate sets the "session_date" field if the given value is not nil.
func (_u *SessionDigestUpdate) SetNillableSessionDate(v *time.Time) *SessionDigestUpdate {
	if v != nil {
		_u.SetSessionDate(*v)
	}
	return _u
}

// ClearSessionDate clears the value of the "session_date" field.
func (_u *SessionDigestUpdate) ClearSessionDate() *SessionDigestUpdate {
	_u.mutation.ClearSessionDate()
	return _u
}

// SetDigestData sets the "digest_data" field.
func (_u *SessionDigestUpdate) SetDigestData(v models.DigestData) *SessionDigestUpdate {
	_u.mutation.SetDigestData(v)
	return _u
}

// SetNillableDigestData sets the "digest_data" field if the given value is not nil.
func (_u *SessionDigestUpdate) SetNillableDigestData(v *models.DigestData) *SessionDigestUpdate {
	if v != nil {
		_u.SetDigestData(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionDigestUpdate) SetUpdatedAt(v time.Time) *SessionDigestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionDigestMutation object of the builder.
func (_u *SessionDigestUpdate) Mutation() *SessionDigestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionDigestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionDigestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionDigestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionDigestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionDigestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessiondigest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionDigestUpdate) check() error {
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionDigest.campaign"`)
	}
	return nil
}

func (_u *SessionDigestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessiondigest.Table, sessiondigest.Columns, sqlgraph.NewFieldSpec(sessiondigest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionNumber(); ok {
		_spec.SetField(sessiondigest.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionNumber(); ok {
		_spec.AddField(sessiondigest.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionDate(); ok {
		_spec.SetField(sessiondigest.FieldSessionDate, field.TypeTime, value)
	}
	if _u.mutation.SessionDateCleared() {
		_spec.ClearField(sessiondigest.FieldSessionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DigestData(); ok {
		_spec.SetField(sessiondigest.FieldDigestData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessiondigest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessiondigest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionDigestUpdateOne is the builder for updating a single SessionDigest entity.
type SessionDigestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionDigestMutation
}

// SetSessionNumber sets the "session_number" field.
func (_u *SessionDigestUpdateOne) SetSessionNumber(v int) *SessionDigestUpdateOne {
	_u.mutation.ResetSessionNumber()
	_u.mutation.SetSessionNumber(v)
	return _u
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (_u *SessionDigestUpdateOne) SetNillableSessionNumber(v *int) *SessionDigestUpdateOne {
	if v != nil {
		_u.SetSessionNumber(*v)
	}
	return _u
}

// AddSessionNumber adds value to the "session_number" field.
func (_u *SessionDigestUpdateOne) AddSessionNumber(v int) *SessionDigestUpdateOne {
	_u.mutation.AddSessionNumber(v)
	return _u
}

// SetSessionDate sets the "session_date" field.
func (_u *SessionDigestUpdateOne) SetSessionDate(v time.Time) *SessionDigestUpdateOne {
	_u.mutation.SetSessionDate(v)
	return _u
}

// SetNillableSessionDate sets the "session_date" field if the given value is not nil.
func (_u *SessionDigestUpdateOne) SetNillableSessionDate(v *time.Time) *SessionDigestUpdateOne {
	if v != nil {
		_u.SetSessionDate(*v)
	}
	return _u
}

// ClearSessionDate clears the value of the "session_date" field.
func (_u *SessionDigestUpdateOne) ClearSessionDate() *SessionDigestUpdateOne {
	_u.mutation.ClearSessionDate()
	return _u
}

// SetDigestData sets the "digest_data" field.
func (_u *SessionDigestUpdateOne) SetDigestData(v models.DigestData) *SessionDigestUpdateOne {
	_u.mutation.SetDigestData(v)
	return _u
}

// SetNillableDigestData sets the "digest_data" field if the given value is not nil.
func (_u *SessionDigestUpdateOne) SetNillableDigestData(v *models.DigestData) *SessionDigestUpdateOne {
	if v != nil {
		_u.SetDigestData(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionDigestUpdateOne) SetUpdatedAt(v time.Time) *SessionDigestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionDigestMutation object of the builder.
func (_u *SessionDigestUpdateOne) Mutation() *SessionDigestMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionDigestUpdate builder.
func (_u *SessionDigestUpdateOne) Where(ps ...predicate.SessionDigest) *SessionDigestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionDigestUpdateOne) Select(field string, fields ...string) *SessionDigestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionDigest entity.
func (_u *SessionDigestUpdateOne) Save(ctx context.Context) (*SessionDigest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionDigestUpdateOne) SaveX(ctx context.Context) *SessionDigest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionDigestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionDigestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionDigestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessiondigest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionDigestUpdateOne) check() error {
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionDigest.campaign"`)
	}
	return nil
}

func (_u *SessionDigestUpdateOne) sqlSave(ctx context.Context) (_node *SessionDigest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessiondigest.Table, sessiondigest.Columns, sqlgraph.NewFieldSpec(sessiondigest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionDigest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessiondigest.FieldID)
		for _, f := range fields {
			if !sessiondigest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessiondigest.FieldID {
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
	if value, ok := _u.mutation.SessionNumber(); ok {
		_spec.SetField(sessiondigest.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionNumber(); ok {
		_spec.AddField(sessiondigest.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionDate(); ok {
		_spec.SetField(sessiondigest.FieldSessionDate, field.TypeTime, value)
	}
	if _u.mutation.SessionDateCleared() {
		_spec.ClearField(sessiondigest.FieldSessionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DigestData(); ok {
		_spec.SetField(sessiondigest.FieldDigestData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessiondigest.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionDigest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessiondigest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
