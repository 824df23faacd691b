// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/fileprocessingchunk"
)

// FileProcessingChunkCreate is the builder for creating a FileProcessingChunk entity.
type FileProcessingChunkCreate struct {
	config
	mutation *FileProcessingChunkMutation
	hooks    []Hook
}

// SetFileKey sets the "file_key" field.
func (_c *FileProcessingChunkCreate) SetFileKey(v string) *FileProcessingChunkCreate {
	_c.mutation.SetFileKey(v)
	return _c
}

// SetTenant sets the "tenant" field.
func (_c *FileProcessingChunkCreate) SetTenant(v string) *FileProcessingChunkCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *FileProcessingChunkCreate) SetChunkIndex(v int) *FileProcessingChunkCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetTotalChunks sets the "total_chunks" field.
func (_c *FileProcessingChunkCreate) SetTotalChunks(v int) *FileProcessingChunkCreate {
	_c.mutation.SetTotalChunks(v)
	return _c
}

// SetPageStart sets the "page_start" field.
func (_c *FileProcessingChunkCreate) SetPageStart(v int) *FileProcessingChunkCreate {
	_c.mutation.SetPageStart(v)
	return _c
}

// SetNillablePageStart sets the "page_start" field if the given value is not nil.
func (_c *FileProcessingChunkCreate) SetNillablePageStart(v *int) *FileProcessingChunkCreate {
	if v != nil {
		_c.SetPageStart(*v)
	}
	return _c
}

// SetPageEnd sets the "page_end" field.
func (_c *FileProcessingChunkCreate) SetPageEnd(v int) *FileProcessingChunkCreate {
	_c.mutation.SetPageEnd(v)
	return _c
}

// SetNillablePageEnd sets the "page_end" field if the given value is not nil.
func (_c *FileProcessingChunkCreate) SetNillablePageEnd(v *int) *FileProcessingChunkCreate {
	if v != nil {
		_c.SetPageEnd(*v)
	}
	return _c
}

// SetByteStart sets the "byte_start" field.
func (_c *FileProcessingChunkCreate) SetByteStart(v int64) *FileProcessingChunkCreate {
	_c.mutation.SetByteStart(v)
	return _c
}

// SetNillableByteStart sets the "byte_start" field if the given value is not nil.
func (_c *FileProcessingChunkCreate) SetNillableByteStart(v *int64) *FileProcessingChunkCreate {
	if v != nil {
		_c.SetByteStart(*v)
	}
	return _c
}

// SetByteEnd sets the "byte_end" field.
func (_c *FileProcessingChunkCreate) SetByteEnd(v int64) *FileProcessingChunkCreate {
	_c.mutation.SetByteEnd(v)
	return _c
}

// SetNillableByteEnd sets the "byte_end" field if the given value is not nil.
func (_c *FileProcessingChunkCreate) SetNillableByteEnd(v *int64) *FileProcessingChunkCreate {
	if v != nil {
		_c.SetByteEnd(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FileProcessingChunkCreate) SetStatus(v fileprocessingchunk.Status) *FileProcessingChunkCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FileProcessingChunkCreate) SetNillableStatus(v *fileprocessingchunk.Status) *FileProcessingChunkCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *FileProcessingChunkCreate) SetRetryCount(v int) *FileProcessingChunkCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *FileProcessingChunkCreate) SetNillableRetryCount(v *int) *FileProcessingChunkCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FileProcessingChunkCreate) SetErrorMessage(v string) *FileProcessingChunkCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *FileProcessingChunkCreate) SetNillableErrorMessage(v *string) *FileProcessingChunkCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetVectorID sets the "vector_id" field.
func (_c *FileProcessingChunkCreate) SetVectorID(v string) *FileProcessingChunkCreate {
	_c.mutation.SetVectorID(v)
	return _c
}

// SetNillableVectorID sets the "vector_id" field if the given value is not nil.
func (_c *FileProcessingChunkCreate) SetNillableVectorID(v *string) *FileProcessingChunkCreate {
	if v != nil {
		_c.SetVectorID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FileProcessingChunkCreate) SetCreatedAt(v time.Time) *FileProcessingChunkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FileProcessingChunkCreate) SetNillableCreatedAt(v *time.Time) *FileProcessingChunkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FileProcessingChunkCreate) SetUpdatedAt(v time.Time) *FileProcessingChunkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FileProcessingChunkCreate) SetNillableUpdatedAt(v *time.Time) *FileProcessingChunkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FileProcessingChunkCreate) SetID(v string) *FileProcessingChunkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFileID sets the "file" edge to the File entity by ID.
func (_c *FileProcessingChunkCreate) SetFileID(id string) *FileProcessingChunkCreate {
	_c.mutation.SetFileID(id)
	return _c
}

// SetFile sets the "file" edge to the File entity.
func (_c *FileProcessingChunkCreate) SetFile(v *File) *FileProcessingChunkCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the FileProcessingChunkMutation object of the builder.
func (_c *FileProcessingChunkCreate) Mutation() *FileProcessingChunkMutation {
	return _c.mutation
}

// Save creates the FileProcessingChunk in the database.
func (_c *FileProcessingChunkCreate) Save(ctx context.Context) (*FileProcessingChunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileProcessingChunkCreate) SaveX(ctx context.Context) *FileProcessingChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileProcessingChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileProcessingChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FileProcessingChunkCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := fileprocessingchunk.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := fileprocessingchunk.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fileprocessingchunk.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fileprocessingchunk.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileProcessingChunkCreate) check() error {
	if _, ok := _c.mutation.FileKey(); !ok {
		return &ValidationError{Name: "file_key", err: errors.New(`ent: missing required field "FileProcessingChunk.file_key"`)}
	}
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "FileProcessingChunk.tenant"`)}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "FileProcessingChunk.chunk_index"`)}
	}
	if _, ok := _c.mutation.TotalChunks(); !ok {
		return &ValidationError{Name: "total_chunks", err: errors.New(`ent: missing required field "FileProcessingChunk.total_chunks"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FileProcessingChunk.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fileprocessingchunk.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileProcessingChunk.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "FileProcessingChunk.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FileProcessingChunk.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FileProcessingChunk.updated_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "FileProcessingChunk.file"`)}
	}
	return nil
}

func (_c *FileProcessingChunkCreate) sqlSave(ctx context.Context) (*FileProcessingChunk, error) {
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
			return nil, fmt.Errorf("unexpected FileProcessingChunk.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FileProcessingChunkCreate) createSpec() (*FileProcessingChunk, *sqlgraph.CreateSpec) {
	var (
		_node = &FileProcessingChunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fileprocessingchunk.Table, sqlgraph.NewFieldSpec(fileprocessingchunk.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(fileprocessingchunk.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(fileprocessingchunk.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.TotalChunks(); ok {
		_spec.SetField(fileprocessingchunk.FieldTotalChunks, field.TypeInt, value)
		_node.TotalChunks = value
	}
	if value, ok := _c.mutation.PageStart(); ok {
		_spec.SetField(fileprocessingchunk.FieldPageStart, field.TypeInt, value)
		_node.PageStart = &value
	}
	if value, ok := _c.mutation.PageEnd(); ok {
		_spec.SetField(fileprocessingchunk.FieldPageEnd, field.TypeInt, value)
		_node.PageEnd = &value
	}
	if value, ok := _c.mutation.ByteStart(); ok {
		_spec.SetField(fileprocessingchunk.FieldByteStart, field.TypeInt64, value)
		_node.ByteStart = &value
	}
	if value, ok := _c.mutation.ByteEnd(); ok {
		_spec.SetField(fileprocessingchunk.FieldByteEnd, field.TypeInt64, value)
		_node.ByteEnd = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fileprocessingchunk.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(fileprocessingchunk.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(fileprocessingchunk.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.VectorID(); ok {
		_spec.SetField(fileprocessingchunk.FieldVectorID, field.TypeString, value)
		_node.VectorID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fileprocessingchunk.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fileprocessingchunk.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fileprocessingchunk.FileTable,
			Columns: []string{fileprocessingchunk.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(file.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileKey = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FileProcessingChunkCreateBulk is the builder for creating many FileProcessingChunk entities in bulk.
type FileProcessingChunkCreateBulk struct {
	config
	err      error
	builders []*FileProcessingChunkCreate
}

// Save creates the FileProcessingChunk entities in the database.
func (_c *FileProcessingChunkCreateBulk) Save(ctx context.Context) ([]*FileProcessingChunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileProcessingChunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileProcessingChunkMutation)
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
func (_c *FileProcessingChunkCreateBulk) SaveX(ctx context.Context) []*FileProcessingChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileProcessingChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileProcessingChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
