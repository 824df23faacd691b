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
	"github.com/loresmith/loresmith/ent/entityimportance"
)

// EntityImportanceCreate is the builder for creating a EntityImportance entity.
type EntityImportanceCreate struct {
	config
	mutation *EntityImportanceMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *EntityImportanceCreate) SetCampaignID(v string) *EntityImportanceCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetPagerank sets the "pagerank" field.
func (_c *EntityImportanceCreate) SetPagerank(v float64) *EntityImportanceCreate {
	_c.mutation.SetPagerank(v)
	return _c
}

// SetBetweennessCentrality sets the "betweenness_centrality" field.
func (_c *EntityImportanceCreate) SetBetweennessCentrality(v float64) *EntityImportanceCreate {
	_c.mutation.SetBetweennessCentrality(v)
	return _c
}

// SetHierarchyLevel sets the "hierarchy_level" field.
func (_c *EntityImportanceCreate) SetHierarchyLevel(v int) *EntityImportanceCreate {
	_c.mutation.SetHierarchyLevel(v)
	return _c
}

// SetCompositeScore sets the "composite_score" field.
func (_c *EntityImportanceCreate) SetCompositeScore(v float64) *EntityImportanceCreate {
	_c.mutation.SetCompositeScore(v)
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *EntityImportanceCreate) SetComputedAt(v time.Time) *EntityImportanceCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_c *EntityImportanceCreate) SetNillableComputedAt(v *time.Time) *EntityImportanceCreate {
	if v != nil {
		_c.SetComputedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityImportanceCreate) SetID(v string) *EntityImportanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *EntityImportanceCreate) SetCampaign(v *Campaign) *EntityImportanceCreate {
	return _c.SetCampaignID(v.ID)
}

// Mutation returns the EntityImportanceMutation object of the builder.
func (_c *EntityImportanceCreate) Mutation() *EntityImportanceMutation {
	return _c.mutation
}

// Save creates the EntityImportance in the database.
func (_c *EntityImportanceCreate) Save(ctx context.Context) (*EntityImportance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityImportanceCreate) SaveX(ctx context.Context) *EntityImportance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityImportanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityImportanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityImportanceCreate) defaults() {
	if _, ok := _c.mutation.ComputedAt(); !ok {
		v := entityimportance.DefaultComputedAt()
		_c.mutation.SetComputedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityImportanceCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "EntityImportance.campaign_id"`)}
	}
	if _, ok := _c.mutation.Pagerank(); !ok {
		return &ValidationError{Name: "pagerank", err: errors.New(`ent: missing required field "EntityImportance.pagerank"`)}
	}
	if _, ok := _c.mutation.BetweennessCentrality(); !ok {
		return &ValidationError{Name: "betweenness_centrality", err: errors.New(`ent: missing required field "EntityImportance.betweenness_centrality"`)}
	}
	if _, ok := _c.mutation.HierarchyLevel(); !ok {
		return &ValidationError{Name: "hierarchy_level", err: errors.New(`ent: missing required field "EntityImportance.hierarchy_level"`)}
	}
	if _, ok := _c.mutation.CompositeScore(); !ok {
		return &ValidationError{Name: "composite_score", err: errors.New(`ent: missing required field "EntityImportance.composite_score"`)}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "EntityImportance.computed_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "EntityImportance.campaign"`)}
	}
	return nil
}

func (_c *EntityImportanceCreate) sqlSave(ctx context.Context) (*EntityImportance, error) {
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
			return nil, fmt.Errorf("unexpected EntityImportance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityImportanceCreate) createSpec() (*EntityImportance, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityImportance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entityimportance.Table, sqlgraph.NewFieldSpec(entityimportance.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Pagerank(); ok {
		_spec.SetField(entityimportance.FieldPagerank, field.TypeFloat64, value)
		_node.Pagerank = value
	}
	if value, ok := _c.mutation.BetweennessCentrality(); ok {
		_spec.SetField(entityimportance.FieldBetweennessCentrality, field.TypeFloat64, value)
		_node.BetweennessCentrality = value
	}
	if value, ok := _c.mutation.HierarchyLevel(); ok {
		_spec.SetField(entityimportance.FieldHierarchyLevel, field.TypeInt, value)
		_node.HierarchyLevel = value
	}
	if value, ok := _c.mutation.CompositeScore(); ok {
		_spec.SetField(entityimportance.FieldCompositeScore, field.TypeFloat64, value)
		_node.CompositeScore = value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(entityimportance.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityimportance.CampaignTable,
			Columns: []string{entityimportance.CampaignColumn},
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

// EntityImportanceCreateBulk is the builder for creating many EntityImportance entities in bulk.
type EntityImportanceCreateBulk struct {
	config
	err      error
	builders []*EntityImportanceCreate
}

// Save creates the EntityImportance entities in the database.
func (_c *EntityImportanceCreateBulk) Save(ctx context.Context) ([]*EntityImportance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityImportance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityImportanceMutation)
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
func (_c *EntityImportanceCreateBulk) SaveX(ctx context.Context) []*EntityImportance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityImportanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityImportanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
