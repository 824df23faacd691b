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
	"github.com/loresmith/loresmith/ent/queuemessage"
)

// QueueMessageUpdate is the builder for updating QueueMessage entities.
type QueueMessageUpdate struct {
	config
	hooks    []Hook
	mutation *QueueMessageMutation
}

// Where appends a list predicates to the QueueMessageUpdate builder.
func (_u *QueueMessageUpdate) Where(ps ...predicate.QueueMessage) *QueueMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *QueueMessageUpdate) SetKind(v queuemessage.Kind) *QueueMessageUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableKind(v *queuemessage.Kind) *QueueMessageUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueMessageUpdate) SetPayload(v map[string]string) *QueueMessageUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueMessageUpdate) SetStatus(v queuemessage.Status) *QueueMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableStatus(v *queuemessage.Status) *QueueMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *QueueMessageUpdate) SetRetryCount(v int) *QueueMessageUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableRetryCount(v *int) *QueueMessageUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *QueueMessageUpdate) AddRetryCount(v int) *QueueMessageUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *QueueMessageUpdate) SetMaxRetries(v int) *QueueMessageUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableMaxRetries(v *int) *QueueMessageUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *QueueMessageUpdate) AddMaxRetries(v int) *QueueMessageUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *QueueMessageUpdate) SetNextRetryAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableNextRetryAt(v *time.Time) *QueueMessageUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *QueueMessageUpdate) SetLastError(v string) *QueueMessageUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableLastError(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *QueueMessageUpdate) ClearLastError() *QueueMessageUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *QueueMessageUpdate) SetClaimedBy(v string) *QueueMessageUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableClaimedBy(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *QueueMessageUpdate) ClearClaimedBy() *QueueMessageUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *QueueMessageUpdate) SetClaimedAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableClaimedAt(v *time.Time) *QueueMessageUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *QueueMessageUpdate) ClearClaimedAt() *QueueMessageUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *QueueMessageUpdate) SetLastHeartbeatAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableLastHeartbeatAt(v *time.Time) *QueueMessageUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *QueueMessageUpdate) ClearLastHeartbeatAt() *QueueMessageUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeadLetteredAt sets the "dead_lettered_at" field.
func (_u *QueueMessageUpdate) SetDeadLetteredAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetDeadLetteredAt(v)
	return _u
}

// SetNillableDeadLetteredAt sets the "dead_lettered_at" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableDeadLetteredAt(v *time.Time) *QueueMessageUpdate {
	if v != nil {
		_u.SetDeadLetteredAt(*v)
	}
	return _u
}

// ClearDeadLetteredAt clears the value of the "dead_lettered_at" field.
func (_u *QueueMessageUpdate) ClearDeadLetteredAt() *QueueMessageUpdate {
	_u.mutation.ClearDeadLetteredAt()
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *QueueMessageUpdate) SetElapsedMs(v int64) *QueueMessageUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableElapsedMs(v *int64) *QueueMessageUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *QueueMessageUpdate) AddElapsedMs(v int64) *QueueMessageUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// ClearElapsedMs clears the value of the "elapsed_ms" field.
func (_u *QueueMessageUpdate) ClearElapsedMs() *QueueMessageUpdate {
	_u.mutation.ClearElapsedMs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueMessageUpdate) SetUpdatedAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_u *QueueMessageUpdate) Mutation() *QueueMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueMessageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueMessageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queuemessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueMessageUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := queuemessage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuemessage.Table, queuemessage.Columns, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(queuemessage.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queuemessage.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(queuemessage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(queuemessage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(queuemessage.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(queuemessage.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(queuemessage.FieldNextRetryAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(queuemessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(queuemessage.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(queuemessage.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(queuemessage.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(queuemessage.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(queuemessage.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(queuemessage.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(queuemessage.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeadLetteredAt(); ok {
		_spec.SetField(queuemessage.FieldDeadLetteredAt, field.TypeTime, value)
	}
	if _u.mutation.DeadLetteredAtCleared() {
		_spec.ClearField(queuemessage.FieldDeadLetteredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(queuemessage.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(queuemessage.FieldElapsedMs, field.TypeInt64, value)
	}
	if _u.mutation.ElapsedMsCleared() {
		_spec.ClearField(queuemessage.FieldElapsedMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuemessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueMessageUpdateOne is the builder for updating a single QueueMessage entity.
type QueueMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueMessageMutation
}

// SetKind sets the "kind" field.
func (_u *QueueMessageUpdateOne) SetKind(v queuemessage.Kind) *QueueMessageUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableKind(v *queuemessage.Kind) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueMessageUpdateOne) SetPayload(v map[string]string) *QueueMessageUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueMessageUpdateOne) SetStatus(v queuemessage.Status) *QueueMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableStatus(v *queuemessage.Status) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *QueueMessageUpdateOne) SetRetryCount(v int) *QueueMessageUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableRetryCount(v *int) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *QueueMessageUpdateOne) AddRetryCount(v int) *QueueMessageUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *QueueMessageUpdateOne) SetMaxRetries(v int) *QueueMessageUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableMaxRetries(v *int) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *QueueMessageUpdateOne) AddMaxRetries(v int) *QueueMessageUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *QueueMessageUpdateOne) SetNextRetryAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableNextRetryAt(v *time.Time) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *QueueMessageUpdateOne) SetLastError(v string) *QueueMessageUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableLastError(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *QueueMessageUpdateOne) ClearLastError() *QueueMessageUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *QueueMessageUpdateOne) SetClaimedBy(v string) *QueueMessageUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableClaimedBy(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *QueueMessageUpdateOne) ClearClaimedBy() *QueueMessageUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *QueueMessageUpdateOne) SetClaimedAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableClaimedAt(v *time.Time) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *QueueMessageUpdateOne) ClearClaimedAt() *QueueMessageUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *QueueMessageUpdateOne) SetLastHeartbeatAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *QueueMessageUpdateOne) ClearLastHeartbeatAt() *QueueMessageUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeadLetteredAt sets the "dead_lettered_at" field.
func (_u *QueueMessageUpdateOne) SetDeadLetteredAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetDeadLetteredAt(v)
	return _u
}

// SetNillableDeadLetteredAt sets the "dead_lettered_at" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableDeadLetteredAt(v *time.Time) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetDeadLetteredAt(*v)
	}
	return _u
}

// ClearDeadLetteredAt clears the value of the "dead_lettered_at" field.
func (_u *QueueMessageUpdateOne) ClearDeadLetteredAt() *QueueMessageUpdateOne {
	_u.mutation.ClearDeadLetteredAt()
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *QueueMessageUpdateOne) SetElapsedMs(v int64) *QueueMessageUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableElapsedMs(v *int64) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *QueueMessageUpdateOne) AddElapsedMs(v int64) *QueueMessageUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// ClearElapsedMs clears the value of the "elapsed_ms" field.
func (_u *QueueMessageUpdateOne) ClearElapsedMs() *QueueMessageUpdateOne {
	_u.mutation.ClearElapsedMs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueMessageUpdateOne) SetUpdatedAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_u *QueueMessageUpdateOne) Mutation() *QueueMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueMessageUpdate builder.
func (_u *QueueMessageUpdateOne) Where(ps ...predicate.QueueMessage) *QueueMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueMessageUpdateOne) Select(field string, fields ...string) *QueueMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueMessage entity.
func (_u *QueueMessageUpdateOne) Save(ctx context.Context) (*QueueMessage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueMessageUpdateOne) SaveX(ctx context.Context) *QueueMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueMessageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queuemessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := queuemessage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueMessageUpdateOne) sqlSave(ctx context.Context) (_node *QueueMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuemessage.Table, queuemessage.Columns, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuemessage.FieldID)
		for _, f := range fields {
			if !queuemessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuemessage.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(queuemessage.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queuemessage.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(queuemessage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(queuemessage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(queuemessage.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(queuemessage.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(queuemessage.FieldNextRetryAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(queuemessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(queuemessage.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(queuemessage.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(queuemessage.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(queuemessage.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(queuemessage.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(queuemessage.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(queuemessage.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeadLetteredAt(); ok {
		_spec.SetField(queuemessage.FieldDeadLetteredAt, field.TypeTime, value)
	}
	if _u.mutation.DeadLetteredAtCleared() {
		_spec.ClearField(queuemessage.FieldDeadLetteredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(queuemessage.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(queuemessage.FieldElapsedMs, field.TypeInt64, value)
	}
	if _u.mutation.ElapsedMsCleared() {
		_spec.ClearField(queuemessage.FieldElapsedMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuemessage.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QueueMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
