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
	"github.com/loresmith/loresmith/ent/entityrelationship"
)

// EntityRelationshipCreate is the builder for creating a EntityRelationship entity.
type EntityRelationshipCreate struct {
	config
	mutation *EntityRelationshipMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *EntityRelationshipCreate) SetCampaignID(v string) *EntityRelationshipCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetFromEntityID sets the "from_entity_id" field.
func (_c *EntityRelationshipCreate) SetFromEntityID(v string) *EntityRelationshipCreate {
	_c.mutation.SetFromEntityID(v)
	return _c
}

// SetToEntityID sets the "to_entity_id" field.
func (_c *EntityRelationshipCreate) SetToEntityID(v string) *EntityRelationshipCreate {
	_c.mutation.SetToEntityID(v)
	return _c
}

// SetRelationshipType sets the "relationship_type" field.
func (_c *EntityRelationshipCreate) SetRelationshipType(v string) *EntityRelationshipCreate {
	_c.mutation.SetRelationshipType(v)
	return _c
}

// SetStrength sets the "strength" field.
func (_c *EntityRelationshipCreate) SetStrength(v float64) *EntityRelationshipCreate {
	_c.mutation.SetStrength(v)
	return _c
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_c *EntityRelationshipCreate) SetNillableStrength(v *float64) *EntityRelationshipCreate {
	if v != nil {
		_c.SetStrength(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *EntityRelationshipCreate) SetMetadata(v map[string]string) *EntityRelationshipCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityRelationshipCreate) SetCreatedAt(v time.Time) *EntityRelationshipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityRelationshipCreate) SetNillableCreatedAt(v *time.Time) *EntityRelationshipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EntityRelationshipCreate) SetUpdatedAt(v time.Time) *EntityRelationshipCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EntityRelationshipCreate) SetNillableUpdatedAt(v *time.Time) *EntityRelationshipCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityRelationshipCreate) SetID(v string) *EntityRelationshipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *EntityRelationshipCreate) SetCampaign(v *Campaign) *EntityRelationshipCreate {
	return _c.SetCampaignID(v.ID)
}

// Mutation returns the EntityRelationshipMutation object of the builder.
func (_c *EntityRelationshipCreate) Mutation() *EntityRelationshipMutation {
	return _c.mutation
}

// Save creates the EntityRelationship in the database.
func (_c *EntityRelationshipCreate) Save(ctx context.Context) (*EntityRelationship, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityRelationshipCreate) SaveX(ctx context.Context) *EntityRelationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityRelationshipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityRelationshipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityRelationshipCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entityrelationship.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := entityrelationship.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityRelationshipCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "EntityRelationship.campaign_id"`)}
	}
	if _, ok := _c.mutation.FromEntityID(); !ok {
		return &ValidationError{Name: "from_entity_id", err: errors.New(`ent: missing required field "EntityRelationship.from_entity_id"`)}
	}
	if _, ok := _c.mutation.ToEntityID(); !ok {
		return &ValidationError{Name: "to_entity_id", err: errors.New(`ent: missing required field "EntityRelationship.to_entity_id"`)}
	}
	if _, ok := _c.mutation.RelationshipType(); !ok {
		return &ValidationError{Name: "relationship_type", err: errors.New(`ent: missing required field "EntityRelationship.relationship_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntityRelationship.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EntityRelationship.updated_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "EntityRelationship.campaign"`)}
	}
	return nil
}

func (_c *EntityRelationshipCreate) sqlSave(ctx context.Context) (*EntityRelationship, error) {
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
			return nil, fmt.Errorf("unexpected EntityRelationship.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityRelationshipCreate) createSpec() (*EntityRelationship, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityRelationship{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entityrelationship.Table, sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FromEntityID(); ok {
		_spec.SetField(entityrelationship.FieldFromEntityID, field.TypeString, value)
		_node.FromEntityID = value
	}
	if value, ok := _c.mutation.ToEntityID(); ok {
		_spec.SetField(entityrelationship.FieldToEntityID, field.TypeString, value)
		_node.ToEntityID = value
	}
	if value, ok := _c.mutation.RelationshipType(); ok {
		_spec.SetField(entityrelationship.FieldRelationshipType, field.TypeString, value)
		_node.RelationshipType = value
	}
	if value, ok := _c.mutation.Strength(); ok {
		_spec.SetField(entityrelationship.FieldStrength, field.TypeFloat64, value)
		_node.Strength = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(entityrelationship.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entityrelationship.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(entityrelationship.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityrelationship.CampaignTable,
			Columns: []string{entityrelationship.CampaignColumn},
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

// EntityRelationshipCreateBulk is the builder for creating many EntityRelationship entities in bulk.
type EntityRelationshipCreateBulk struct {
	config
	err      error
	builders []*EntityRelationshipCreate
}

// Save creates the EntityRelationship entities in the database.
func (_c *EntityRelationshipCreateBulk) Save(ctx context.Context) ([]*EntityRelationship, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityRelationship, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityRelationshipMutation)
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
func (_c *EntityRelationshipCreateBulk) SaveX(ctx context.Context) []*EntityRelationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityRelationshipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityRelationshipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
