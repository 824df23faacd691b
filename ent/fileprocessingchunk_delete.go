// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loresmith/loresmith/ent/fileprocessingchunk"
	"github.com/loresmith/loresmith/ent/predicate"
)

// FileProcessingChunkDelete is the builder for deleting a FileProcessingChunk entity.
type FileProcessingChunkDelete struct {
	config
	hooks    []Hook
	mutation *FileProcessingChunkMutation
}

// Where appends a list predicates to the FileProcessingChunkDelete builder.
func (_d *FileProcessingChunkDelete) Where(ps ...predicate.FileProcessingChunk) *FileProcessingChunkDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FileProcessingChunkDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FileProcessingChunkDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FileProcessingChunkDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fileprocessingchunk.Table, sqlgraph.NewFieldSpec(fileprocessingchunk.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FileProcessingChunkDeleteOne is the builder for deleting a single FileProcessingChunk entity.
type FileProcessingChunkDeleteOne struct {
	_d *FileProcessingChunkDelete
}

// Where appends a list predicates to the FileProcessingChunkDelete builder.
func (_d *FileProcessingChunkDeleteOne) Where(ps ...predicate.FileProcessingChunk) *FileProcessingChunkDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FileProcessingChunkDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fileprocessingchunk.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FileProcessingChunkDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
