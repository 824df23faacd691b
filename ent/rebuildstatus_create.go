// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loresmith/loresmith/ent/campaign"
	"github.com/loresmith/loresmith/ent/rebuildstatus"
)

// RebuildStatusCreate is the builder for creating a RebuildStatus entity.
type RebuildStatusCreate struct {
	config
	mutation *RebuildStatusMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *RebuildStatusCreate) SetCampaignID(v string) *RebuildStatusCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetRebuildType sets the "rebuild_type" field.
func (_c *RebuildStatusCreate) SetRebuildType(v rebuildstatus.RebuildType) *RebuildStatusCreate {
	_c.mutation.SetRebuildType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RebuildStatusCreate) SetStatus(v rebuildstatus.Status) *RebuildStatusCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RebuildStatusCreate) SetNillableStatus(v *rebuildstatus.Status) *RebuildStatusCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAffectedEntityIds sets the "affected_entity_ids" field.
func (_c *RebuildStatusCreate) SetAffectedEntityIds(v []string) *RebuildStatusCreate {
	_c.mutation.SetAffectedEntityIds(v)
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *RebuildStatusCreate) SetLastError(v string) *RebuildStatusCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *RebuildStatusCreate) SetNillableLastError(v *string) *RebuildStatusCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RebuildStatusCreate) SetCreatedAt(v time.Time) *RebuildStatusCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RebuildStatusCreate) SetNillableCreatedAt(v *time.Time) *RebuildStatusCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RebuildStatusCreate) SetCompletedAt(v time.Time) *RebuildStatusCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RebuildStatusCreate) SetNillableCompletedAt(v *time.Time) *RebuildStatusCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RebuildStatusCreate) SetID(v string) *RebuildStatusCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *RebuildStatusCreate) SetCampaign(v *Campaign) *RebuildStatusCreate {
	return _c.SetCampaignID(v.ID)
}

// Mutation returns the RebuildStatusMutation object of the builder.
func (_c *RebuildStatusCreate) Mutation() *RebuildStatusMutation {
	return _c.mutation
}

// Save creates the RebuildStatus in the database.
func (_c *RebuildStatusCreate) Save(ctx context.Context) (*RebuildStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RebuildStatusCreate) SaveX(ctx context.Context) *RebuildStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RebuildStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RebuildStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RebuildStatusCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := rebuildstatus.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rebuildstatus.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RebuildStatusCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "RebuildStatus.campaign_id"`)}
	}
	if _, ok := _c.mutation.RebuildType(); !ok {
		return &ValidationError{Name: "rebuild_type", err: errors.New(`ent: missing required field "RebuildStatus.rebuild_type"`)}
	}
	if v, ok := _c.mutation.RebuildType(); ok {
		if err := rebuildstatus.RebuildTypeValidator(v); err != nil {
			return &ValidationError{Name: "rebuild_type", err: fmt.Errorf(`ent: validator failed for field "RebuildStatus.rebuild_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RebuildStatus.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := rebuildstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RebuildStatus.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RebuildStatus.created_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "RebuildStatus.campaign"`)}
	}
	return nil
}

func (_c *RebuildStatusCreate) sqlSave(ctx context.Context) (*RebuildStatus, error) {
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
			return nil, fmt.Errorf("unexpected RebuildStatus.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RebuildStatusCreate) createSpec() (*RebuildStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &RebuildStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rebuildstatus.Table, sqlgraph.NewFieldSpec(rebuildstatus.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RebuildType(); ok {
		_spec.SetField(rebuildstatus.FieldRebuildType, field.TypeEnum, value)
		_node.RebuildType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(rebuildstatus.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AffectedEntityIds(); ok {
		_spec.SetField(rebuildstatus.FieldAffectedEntityIds, field.TypeJSON, value)
		_node.AffectedEntityIds = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(rebuildstatus.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rebuildstatus.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(rebuildstatus.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   rebuildstatus.CampaignTable,
			Columns: []string{rebuildstatus.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CampaignID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RebuildStatusCreateBulk is the builder for creating many RebuildStatus entities in bulk.
type RebuildStatusCreateBulk struct {
	config
	err      error
	builders []*RebuildStatusCreate
}

// Save creates the RebuildStatus entities in the database.
func (_c *RebuildStatusCreateBulk) Save(ctx context.Context) ([]*RebuildStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RebuildStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RebuildStatusMutation)
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
func (_c *RebuildStatusCreateBulk) SaveX(ctx context.Context) []*RebuildStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RebuildStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RebuildStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
