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
	"github.com/loresmith/loresmith/ent/changelogentry"
	"github.com/loresmith/loresmith/pkg/models"
)

// ChangelogEntryCreate is the builder for creating a ChangelogEntry entity.
type ChangelogEntryCreate struct {
	config
	mutation *ChangelogEntryMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *ChangelogEntryCreate) SetCampaignID(v string) *ChangelogEntryCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ChangelogEntryCreate) SetSessionID(v string) *ChangelogEntryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ChangelogEntryCreate) SetNillableSessionID(v *string) *ChangelogEntryCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChangelogEntryCreate) SetTimestamp(v time.Time) *ChangelogEntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChangelogEntryCreate) SetNillableTimestamp(v *time.Time) *ChangelogEntryCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ChangelogEntryCreate) SetPayload(v models.ChangelogPayload) *ChangelogEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetAppliedToGraph sets the "applied_to_graph" field.
func (_c *ChangelogEntryCreate) SetAppliedToGraph(v bool) *ChangelogEntryCreate {
	_c.mutation.SetAppliedToGraph(v)
	return _c
}

// SetNillableAppliedToGraph sets the "applied_to_graph" field if the given value is not nil.
func (_c *ChangelogEntryCreate) SetNillableAppliedToGraph(v *bool) *ChangelogEntryCreate {
	if v != nil {
		_c.SetAppliedToGraph(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChangelogEntryCreate) SetID(v string) *ChangelogEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *ChangelogEntryCreate) SetCampaign(v *Campaign) *ChangelogEntryCreate {
	return _c.SetCampaignID(v.ID)
}

// Mutation returns the ChangelogEntryMutation object of the builder.
func (_c *ChangelogEntryCreate) Mutation() *ChangelogEntryMutation {
	return _c.mutation
}

// Save creates the ChangelogEntry in the database.
func (_c *ChangelogEntryCreate) Save(ctx context.Context) (*ChangelogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChangelogEntryCreate) SaveX(ctx context.Context) *ChangelogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangelogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangelogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChangelogEntryCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := changelogentry.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AppliedToGraph(); !ok {
		v := changelogentry.DefaultAppliedToGraph
		_c.mutation.SetAppliedToGraph(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChangelogEntryCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "ChangelogEntry.campaign_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChangelogEntry.timestamp"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ChangelogEntry.payload"`)}
	}
	if _, ok := _c.mutation.AppliedToGraph(); !ok {
		return &ValidationError{Name: "applied_to_graph", err: errors.New(`ent: missing required field "ChangelogEntry.applied_to_graph"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "ChangelogEntry.campaign"`)}
	}
	return nil
}

func (_c *ChangelogEntryCreate) sqlSave(ctx context.Context) (*ChangelogEntry, error) {
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
			return nil, fmt.Errorf("unexpected ChangelogEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChangelogEntryCreate) createSpec() (*ChangelogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ChangelogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(changelogentry.Table, sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(changelogentry.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(changelogentry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(changelogentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.AppliedToGraph(); ok {
		_spec.SetField(changelogentry.FieldAppliedToGraph, field.TypeBool, value)
		_node.AppliedToGraph = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   changelogentry.CampaignTable,
			Columns: []string{changelogentry.CampaignColumn},
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

// ChangelogEntryCreateBulk is the builder for creating many ChangelogEntry entities in bulk.
type ChangelogEntryCreateBulk struct {
	config
	err      error
	builders []*ChangelogEntryCreate
}

// Save creates the ChangelogEntry entities in the database.
func (_c *ChangelogEntryCreateBulk) Save(ctx context.Context) ([]*ChangelogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChangelogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChangelogEntryMutation)
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
func (_c *ChangelogEntryCreateBulk) SaveX(ctx context.Context) []*ChangelogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangelogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangelogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
