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
	"github.com/loresmith/loresmith/ent/sessiondigest"
	"github.com/loresmith/loresmith/pkg/models"
)

// SessionDigestCreate is the builder for creating a SessionDigest entity.
type SessionDigestCreate struct {
	config
	mutation *SessionDigestMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *SessionDigestCreate) SetCampaignID(v string) *SessionDigestCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetSessionNumber sets the "session_number" field.
func (_c *SessionDigestCreate) SetSessionNumber(v int) *SessionDigestCreate {
	_c.mutation.SetSessionNumber(v)
	return _c
}

// SetSessionDate sets the "session_date" field.
func (_c *SessionDigestCreate) SetSessionDate(v time.Time) *SessionDigestCreate {
	_c.mutation.SetSessionDate(v)
	return _c
}

// SetNillableSessionDate sets the "session_date" field if the given value is not nil.
func (_c *SessionDigestCreate) SetNillableSessionDate(v *time.Time) *SessionDigestCreate {
	if v != nil {
		_c.SetSessionDate(*v)
	}
	return _c
}

// SetDigestData sets the "digest_data" field.
func (_c *SessionDigestCreate) SetDigestData(v models.DigestData) *SessionDigestCreate {
	_c.mutation.SetDigestData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionDigestCreate) SetCreatedAt(v time.Time) *SessionDigestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionDigestCreate) SetNillableCreatedAt(v *time.Time) *SessionDigestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionDigestCreate) SetUpdatedAt(v time.Time) *SessionDigestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionDigestCreate) SetNillableUpdatedAt(v *time.Time) *SessionDigestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionDigestCreate) SetID(v string) *SessionDigestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *SessionDigestCreate) SetCampaign(v *Campaign) *SessionDigestCreate {
	return _c.SetCampaignID(v.ID)
}

// Mutation returns the SessionDigestMutation object of the builder.
func (_c *SessionDigestCreate) Mutation() *SessionDigestMutation {
	return _c.mutation
}

// Save creates the SessionDigest in the database.
func (_c *SessionDigestCreate) Save(ctx context.Context) (*SessionDigest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionDigestCreate) SaveX(ctx context.Context) *SessionDigest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionDigestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionDigestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionDigestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessiondigest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessiondigest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionDigestCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "SessionDigest.campaign_id"`)}
	}
	if _, ok := _c.mutation.SessionNumber(); !ok {
		return &ValidationError{Name: "session_number", err: errors.New(`ent: missing required field "SessionDigest.session_number"`)}
	}
	if _, ok := _c.mutation.DigestData(); !ok {
		return &ValidationError{Name: "digest_data", err: errors.New(`ent: missing required field "SessionDigest.digest_data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionDigest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionDigest.updated_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "SessionDigest.campaign"`)}
	}
	return nil
}

func (_c *SessionDigestCreate) sqlSave(ctx context.Context) (*SessionDigest, error) {
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
			return nil, fmt.Errorf("unexpected SessionDigest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionDigestCreate) createSpec() (*SessionDigest, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionDigest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessiondigest.Table, sqlgraph.NewFieldSpec(sessiondigest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionNumber(); ok {
		_spec.SetField(sessiondigest.FieldSessionNumber, field.TypeInt, value)
		_node.SessionNumber = value
	}
	if value, ok := _c.mutation.SessionDate(); ok {
		_spec.SetField(sessiondigest.FieldSessionDate, field.TypeTime, value)
		_node.SessionDate = &value
	}
	if value, ok := _c.mutation.DigestData(); ok {
		_spec.SetField(sessiondigest.FieldDigestData, field.TypeJSON, value)
		_node.DigestData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessiondigest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessiondigest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessiondigest.CampaignTable,
			Columns: []string{sessiondigest.CampaignColumn},
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

// SessionDigestCreateBulk is the builder for creating many SessionDigest entities in bulk.
type SessionDigestCreateBulk struct {
	config
	err      error
	builders []*SessionDigestCreate
}

// Save creates the SessionDigest entities in the database.
func (_c *SessionDigestCreateBulk) Save(ctx context.Context) ([]*SessionDigest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionDigest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionDigestMutation)
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
func (_c *SessionDigestCreateBulk) SaveX(ctx context.Context) []*SessionDigest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionDigestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionDigestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
