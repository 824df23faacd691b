// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loresmith/loresmith/ent/queuemessage"
)

// QueueMessageCreate is the builder for creating a QueueMessage entity.
type QueueMessageCreate struct {
	config
	mutation *QueueMessageMutation
	hooks    []Hook
}

// SetTenant sets the "tenant" field.
func (_c *QueueMessageCreate) SetTenant(v string) *QueueMessageCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *QueueMessageCreate) SetKind(v queuemessage.Kind) *QueueMessageCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QueueMessageCreate) SetPayload(v map[string]string) *QueueMessageCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueueMessageCreate) SetStatus(v queuemessage.Status) *QueueMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableStatus(v *queuemessage.Status) *QueueMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *QueueMessageCreate) SetRetryCount(v int) *QueueMessageCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableRetryCount(v *int) *QueueMessageCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *QueueMessageCreate) SetMaxRetries(v int) *QueueMessageCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *QueueMessageCreate) SetNextRetryAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableNextRetryAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *QueueMessageCreate) SetLastError(v string) *QueueMessageCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableLastError(v *string) *QueueMessageCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *QueueMessageCreate) SetClaimedBy(v string) *QueueMessageCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableClaimedBy(v *string) *QueueMessageCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *QueueMessageCreate) SetClaimedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableClaimedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *QueueMessageCreate) SetLastHeartbeatAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableLastHeartbeatAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetDeadLetteredAt sets the "dead_lettered_at" field.
func (_c *QueueMessageCreate) SetDeadLetteredAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetDeadLetteredAt(v)
	return _c
}

// SetNillableDeadLetteredAt sets the "dead_lettered_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableDeadLetteredAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetDeadLetteredAt(*v)
	}
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *QueueMessageCreate) SetElapsedMs(v int64) *QueueMessageCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableElapsedMs(v *int64) *QueueMessageCreate {
	if v != nil {
		_c.SetElapsedMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueueMessageCreate) SetCreatedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableCreatedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QueueMessageCreate) SetUpdatedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableUpdatedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueMessageCreate) SetID(v string) *QueueMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_c *QueueMessageCreate) Mutation() *QueueMessageMutation {
	return _c.mutation
}

// Save creates the QueueMessage in the database.
func (_c *QueueMessageCreate) Save(ctx context.Context) (*QueueMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueMessageCreate) SaveX(ctx context.Context) *QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueMessageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := queuemessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := queuemessage.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.NextRetryAt(); !ok {
		v := queuemessage.DefaultNextRetryAt()
		_c.mutation.SetNextRetryAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queuemessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := queuemessage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueMessageCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "QueueMessage.tenant"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "QueueMessage.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := queuemessage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "QueueMessage.payload"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueueMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "QueueMessage.retry_count"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "QueueMessage.max_retries"`)}
	}
	if _, ok := _c.mutation.NextRetryAt(); !ok {
		return &ValidationError{Name: "next_retry_at", err: errors.New(`ent: missing required field "QueueMessage.next_retry_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueueMessage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QueueMessage.updated_at"`)}
	}
	return nil
}

func (_c *QueueMessageCreate) sqlSave(ctx context.Context) (*QueueMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QueueMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueMessageCreate) createSpec() (*QueueMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuemessage.Table, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(queuemessage.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(queuemessage.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(queuemessage.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(queuemessage.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(queuemessage.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(queuemessage.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(queuemessage.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(queuemessage.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(queuemessage.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(queuemessage.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.DeadLetteredAt(); ok {
		_spec.SetField(queuemessage.FieldDeadLetteredAt, field.TypeTime, value)
		_node.DeadLetteredAt = &value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(queuemessage.FieldElapsedMs, field.TypeInt64, value)
		_node.ElapsedMs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queuemessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(queuemessage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// QueueMessageCreateBulk is the builder for creating many QueueMessage entities in bulk.
type QueueMessageCreateBulk struct {
	config
	err      error
	builders []*QueueMessageCreate
}

// Save creates the QueueMessage entities in the database.
func (_c *QueueMessageCreateBulk) Save(ctx context.Context) ([]*QueueMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QueueMessageCreateBulk) SaveX(ctx context.Context) []*QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
