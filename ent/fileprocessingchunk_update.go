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
	"github.com/loresmith/loresmith/ent/fileprocessingchunk"
	"github.com/loresmith/loresmith/ent/predicate"
)

// FileProcessingChunkUpdate is the builder for updating FileProcessingChunk entities.
type FileProcessingChunkUpdate struct {
	config
	hooks    []Hook
	mutation *FileProcessingChunkMutation
}

// Where appends a list predicates to the FileProcessingChunkUpdate builder.
func (_u *FileProcessingChunkUpdate) Where(ps ...predicate.FileProcessingChunk) *FileProcessingChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *FileProcessingChunkUpdate) SetChunkIndex(v int) *FileProcessingChunkUpdate {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *FileProcessingChunkUpdate) SetNillableChunkIndex(v *int) *FileProcessingChunkUpdate {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *FileProcessingChunkUpdate) AddChunkIndex(v int) *FileProcessingChunkUpdate {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetTotalChunks sets the "total_chunks" field.
func (_u *FileProcessingChunkUpdate) SetTotalChunks(v int) *FileProcessingChunkUpdate {
	_u.mutation.ResetTotalChunks()
	_u.mutation.SetTotalChunks(v)
	return _u
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_u *FileProcessingChunkUpdate) SetNillableTotalChunks(v *int) *FileProcessingChunkUpdate {
	if v != nil {
		_u.SetTotalChunks(*v)
	}
	return _u
}

// AddTotalChunks adds value to the "total_chunks" field.
func (_u *FileProcessingChunkUpdate) AddTotalChunks(v int) *FileProcessingChunkUpdate {
	_u.mutation.AddTotalChunks(v)
	return _u
}

// SetPageStart sets the "page_start" field.
func (_u *FileProcessingChunkUpdate) SetPageStart(v int) *FileProcessingChunkUpdate {
	_u.mutation.ResetPageStart()
	_u.mutation.SetPageStart(v)
	return _u
}

// SetNillablePageStart sets the "page_start" field if the given value is not nil.
func (_u *FileProcessingChunkUpdate) SetNillablePageStart(v *int) *FileProcessingChunkUpdate {
	if v != nil {
		_u.SetPageStart(*v)
	}
	return _u
}

// AddPageStart adds value to the "page_start" field.
func (_u *FileProcessingChunkUpdate) AddPageStart(v int) *FileProcessingChunkUpdate {
	_u.mutation.AddPageStart(v)
	return _u
}

// ClearPageStart clears the value of the "page_start" field.
func (_u *FileProcessingChunkUpdate) ClearPageStart() *FileProcessingChunkUpdate {
	_u.mutation.ClearPageStart()
	return _u
}

// SetPageEnd sets the "page_end" field.
func (_u *FileProcessingChunkUpdate) SetPageEnd(v int) *FileProcessingChunkUpdate {
	_u.mutation.ResetPageEnd()
	_u.mutation.SetPageEnd(v)
	return _u
}

// SetNillablePageEnd sets the "page_end" field if the given value is not nil.
func (_u *FileProcessingChunkUpdate) SetNillablePageEnd(v *int) *FileProcessingChunkUpdate {
	if v != nil {
		_u.SetPageEnd(*v)
	}
	return _u
}

// AddPageEnd adds value to the "page_end" field.
func (_u *FileProcessingChunkUpdate) AddPageEnd(v int) *FileProcessingChunkUpdate {
	_u.mutation.AddPageEnd(v)
	return _u
}

// ClearPageEnd clears the value of the "page_end" field.
func (_u *FileProcessingChunkUpdate) ClearPageEnd() *FileProcessingChunkUpdate {
	_u.mutation.ClearPageEnd()
	return _u
}

// SetByteStart sets the "byte_start" field.
func (_u *FileProcessingChunkUpdate) SetByteStart(v int64) *FileProcessingChunkUpdate {
	_u.mutation.ResetByteStart()
	_u.mutation.SetByteStart(v)
	return _u
}

// SetNillableByteStart sets the "byte_start" field if the given value is not nil.
func (_u *FileProcessingChunkUpdate) SetNillableByteStart(v *int64) *FileProcessingChunkUpdate {
	if v != nil {
		_u.SetByteStart(*v)
	}
	return _u
}

// AddByteStart adds value to the "byte_start" field.
func (_u *FileProcessingChunkUpdate) AddByteStart(v int64) *FileProcessingChunkUpdate {
	_u.mutation.AddByteStart(v)
	return _u
}

// ClearByteStart clears the value of the "byte_start" field.
func (_u *FileProcessingChunkUpdate) ClearByteStart() *FileProcessingChunkUpdate {
	_u.mutation.ClearByteStart()
	return _u
}

// SetByteEnd sets the "byte_end" field.
func (_u *FileProcessingChunkUpdate) SetByteEnd(v int64) *FileProcessingChunkUpdate {
	_u.mutation.ResetByteEnd()
	_u.mutation.SetByteEnd(v)
	return _u
}

// SetNillableByteEnd sets the "byte_end" field if the given value is not nil.
func (_u *FileProcessingChunkUpdate) SetNillableByteEnd(v *int64) *FileProcessingChunkUpdate {
	if v != nil {
		_u.SetByteEnd(*v)
	}
	return _u
}

// AddByteEnd adds value to the "byte_end" field.
func (_u *FileProcessingChunkUpdate) AddByteEnd(v int64) *FileProcessingChunkUpdate {
	_u.mutation.AddByteEnd(v)
	return _u
}

// ClearByteEnd clears the value of the "byte_end" field.
func (_u *FileProcessingChunkUpdate) ClearByteEnd() *FileProcessingChunkUpdate {
	_u.mutation.ClearByteEnd()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileProcessingChunkUpdate) SetStatus(v fileprocessingchunk.Status) *FileProcessingChunkUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileProcessingChunkUpdate) SetNillableStatus(v *fileprocessingchunk.Status) *FileProcessingChunkUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *FileProcessingChunkUpdate) SetRetryCount(v int) *FileProcessingChunkUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *FileProcessingChunkUpdate) SetNillableRetryCount(v *int) *FileProcessingChunkUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *FileProcessingChunkUpdate) AddRetryCount(v int) *FileProcessingChunkUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FileProcessingChunkUpdate) SetErrorMessage(v string) *FileProcessingChunkUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FileProcessingChunkUpdate) SetNillableErrorMessage(v *string) *FileProcessingChunkUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FileProcessingChunkUpdate) ClearErrorMessage() *FileProcessingChunkUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetVectorID sets the "vector_id" field.
func (_u *FileProcessingChunkUpdate) SetVectorID(v string) *FileProcessingChunkUpdate {
	_u.mutation.SetVectorID(v)
	return _u
}

// SetNillableVectorID sets the "vector_id" field if the given value is not nil.
func (_u *FileProcessingChunkUpdate) SetNillableVectorID(v *string) *FileProcessingChunkUpdate {
	if v != nil {
		_u.SetVectorID(*v)
	}
	return _u
}

// ClearVectorID clears the value of the "vector_id" field.
func (_u *FileProcessingChunkUpdate) ClearVectorID() *FileProcessingChunkUpdate {
	_u.mutation.ClearVectorID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FileProcessingChunkUpdate) SetUpdatedAt(v time.Time) *FileProcessingChunkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FileProcessingChunkMutation object of the builder.
func (_u *FileProcessingChunkUpdate) Mutation() *FileProcessingChunkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileProcessingChunkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileProcessingChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileProcessingChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileProcessingChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FileProcessingChunkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fileprocessingchunk.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileProcessingChunkUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fileprocessingchunk.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileProcessingChunk.status": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileProcessingChunk.file"`)
	}
	return nil
}

func (_u *FileProcessingChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fileprocessingchunk.Table, fileprocessingchunk.Columns, sqlgraph.NewFieldSpec(fileprocessingchunk.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(fileprocessingchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(fileprocessingchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalChunks(); ok {
		_spec.SetField(fileprocessingchunk.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChunks(); ok {
		_spec.AddField(fileprocessingchunk.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageStart(); ok {
		_spec.SetField(fileprocessingchunk.FieldPageStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageStart(); ok {
		_spec.AddField(fileprocessingchunk.FieldPageStart, field.TypeInt, value)
	}
	if _u.mutation.PageStartCleared() {
		_spec.ClearField(fileprocessingchunk.FieldPageStart, field.TypeInt)
	}
	if value, ok := _u.mutation.PageEnd(); ok {
		_spec.SetField(fileprocessingchunk.FieldPageEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageEnd(); ok {
		_spec.AddField(fileprocessingchunk.FieldPageEnd, field.TypeInt, value)
	}
	if _u.mutation.PageEndCleared() {
		_spec.ClearField(fileprocessingchunk.FieldPageEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.ByteStart(); ok {
		_spec.SetField(fileprocessingchunk.FieldByteStart, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedByteStart(); ok {
		_spec.AddField(fileprocessingchunk.FieldByteStart, field.TypeInt64, value)
	}
	if _u.mutation.ByteStartCleared() {
		_spec.ClearField(fileprocessingchunk.FieldByteStart, field.TypeInt64)
	}
	if value, ok := _u.mutation.ByteEnd(); ok {
		_spec.SetField(fileprocessingchunk.FieldByteEnd, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedByteEnd(); ok {
		_spec.AddField(fileprocessingchunk.FieldByteEnd, field.TypeInt64, value)
	}
	if _u.mutation.ByteEndCleared() {
		_spec.ClearField(fileprocessingchunk.FieldByteEnd, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fileprocessingchunk.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(fileprocessingchunk.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(fileprocessingchunk.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(fileprocessingchunk.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(fileprocessingchunk.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.VectorID(); ok {
		_spec.SetField(fileprocessingchunk.FieldVectorID, field.TypeString, value)
	}
	if _u.mutation.VectorIDCleared() {
		_spec.ClearField(fileprocessingchunk.FieldVectorID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fileprocessingchunk.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fileprocessingchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileProcessingChunkUpdateOne is the builder for updating a single FileProcessingChunk entity.
type FileProcessingChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileProcessingChunkMutation
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *FileProcessingChunkUpdateOne) SetChunkIndex(v int) *FileProcessingChunkUpdateOne {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *FileProcessingChunkUpdateOne) SetNillableChunkIndex(v *int) *FileProcessingChunkUpdateOne {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *FileProcessingChunkUpdateOne) AddChunkIndex(v int) *FileProcessingChunkUpdateOne {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetTotalChunks sets the "total_chunks" field.
func (_u *FileProcessingChunkUpdateOne) SetTotalChunks(v int) *FileProcessingChunkUpdateOne {
	_u.mutation.ResetTotalChunks()
	_u.mutation.SetTotalChunks(v)
	return _u
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_u *FileProcessingChunkUpdateOne) SetNillableTotalChunks(v *int) *FileProcessingChunkUpdateOne {
	if v != nil {
		_u.SetTotalChunks(*v)
	}
	return _u
}

// AddTotalChunks adds value to the "total_chunks" field.
func (_u *FileProcessingChunkUpdateOne) AddTotalChunks(v int) *FileProcessingChunkUpdateOne {
	_u.mutation.AddTotalChunks(v)
	return _u
}

// SetPageStart sets the "page_start" field.
func (_u *FileProcessingChunkUpdateOne) SetPageStart(v int) *FileProcessingChunkUpdateOne {
	_u.mutation.ResetPageStart()
	_u.mutation.SetPageStart(v)
	return _u
}

// SetNillablePageStart sets the "page_start" field if the given value is not nil.
func (_u *FileProcessingChunkUpdateOne) SetNillablePageStart(v *int) *FileProcessingChunkUpdateOne {
	if v != nil {
		_u.SetPageStart(*v)
	}
	return _u
}

// AddPageStart adds value to the "page_start" field.
func (_u *FileProcessingChunkUpdateOne) AddPageStart(v int) *FileProcessingChunkUpdateOne {
	_u.mutation.AddPageStart(v)
	return _u
}

// ClearPageStart clears the value of the "page_start" field.
func (_u *FileProcessingChunkUpdateOne) ClearPageStart() *FileProcessingChunkUpdateOne {
	_u.mutation.ClearPageStart()
	return _u
}

// SetPageEnd sets the "page_end" field.
func (_u *FileProcessingChunkUpdateOne) SetPageEnd(v int) *FileProcessingChunkUpdateOne {
	_u.mutation.ResetPageEnd()
	_u.mutation.SetPageEnd(v)
	return _u
}

// SetNillablePageEnd sets the "page_end" field if the given value is not nil.
func (_u *FileProcessingChunkUpdateOne) SetNillablePageEnd(v *int) *FileProcessingChunkUpdateOne {
	if v != nil {
		_u.SetPageEnd(*v)
	}
	return _u
}

// AddPageEnd adds value to the "page_end" field.
func (_u *FileProcessingChunkUpdateOne) AddPageEnd(v int) *FileProcessingChunkUpdateOne {
	_u.mutation.AddPageEnd(v)
	return _u
}

// ClearPageEnd clears the value of the "page_end" field.
func (_u *FileProcessingChunkUpdateOne) ClearPageEnd() *FileProcessingChunkUpdateOne {
	_u.mutation.ClearPageEnd()
	return _u
}

// SetByteStart sets the "byte_start" field.
func (_u *FileProcessingChunkUpdateOne) SetByteStart(v int64) *FileProcessingChunkUpdateOne {
	_u.mutation.ResetByteStart()
	_u.mutation.SetByteStart(v)
	return _u
}

// SetNillableByteStart sets the "byte_start" field if the given value is not nil.
func (_u *FileProcessingChunkUpdateOne) SetNillableByteStart(v *int64) *FileProcessingChunkUpdateOne {
	if v != nil {
		_u.SetByteStart(*v)
	}
	return _u
}

// AddByteStart adds value to the "byte_start" field.
func (_u *FileProcessingChunkUpdateOne) AddByteStart(v int64) *FileProcessingChunkUpdateOne {
	_u.mutation.AddByteStart(v)
	return _u
}

// ClearByteStart clears the value of the "byte_start" field.
func (_u *FileProcessingChunkUpdateOne) ClearByteStart() *FileProcessingChunkUpdateOne {
	_u.mutation.ClearByteStart()
	return _u
}

// SetByteEnd sets the "byte_end" field.
func (_u *FileProcessingChunkUpdateOne) SetByteEnd(v int64) *FileProcessingChunkUpdateOne {
	_u.mutation.ResetByteEnd()
	_u.mutation.SetByteEnd(v)
	return _u
}

// SetNillableByteEnd sets the "byte_end" field if the given value is not nil.
func (_u *FileProcessingChunkUpdateOne) SetNillableByteEnd(v *int64) *FileProcessingChunkUpdateOne {
	if v != nil {
		_u.SetByteEnd(*v)
	}
	return _u
}

// AddByteEnd adds value to the "byte_end" field.
func (_u *FileProcessingChunkUpdateOne) AddByteEnd(v int64) *FileProcessingChunkUpdateOne {
	_u.mutation.AddByteEnd(v)
	return _u
}

// ClearByteEnd clears the value of the "byte_end" field.
func (_u *FileProcessingChunkUpdateOne) ClearByteEnd() *FileProcessingChunkUpdateOne {
	_u.mutation.ClearByteEnd()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileProcessingChunkUpdateOne) SetStatus(v fileprocessingchunk.Status) *FileProcessingChunkUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileProcessingChunkUpdateOne) SetNillableStatus(v *fileprocessingchunk.Status) *FileProcessingChunkUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *FileProcessingChunkUpdateOne) SetRetryCount(v int) *FileProcessingChunkUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *FileProcessingChunkUpdateOne) SetNillableRetryCount(v *int) *FileProcessingChunkUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *FileProcessingChunkUpdateOne) AddRetryCount(v int) *FileProcessingChunkUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FileProcessingChunkUpdateOne) SetErrorMessage(v string) *FileProcessingChunkUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FileProcessingChunkUpdateOne) SetNillableErrorMessage(v *string) *FileProcessingChunkUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FileProcessingChunkUpdateOne) ClearErrorMessage() *FileProcessingChunkUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetVectorID sets the "vector_id" field.
func (_u *FileProcessingChunkUpdateOne) SetVectorID(v string) *FileProcessingChunkUpdateOne {
	_u.mutation.SetVectorID(v)
	return _u
}

// SetNillableVectorID sets the "vector_id" field if the given value is not nil.
func (_u *FileProcessingChunkUpdateOne) SetNillableVectorID(v *string) *FileProcessingChunkUpdateOne {
	if v != nil {
		_u.SetVectorID(*v)
	}
	return _u
}

// ClearVectorID clears the value of the "vector_id" field.
func (_u *FileProcessingChunkUpdateOne) ClearVectorID() *FileProcessingChunkUpdateOne {
	_u.mutation.ClearVectorID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FileProcessingChunkUpdateOne) SetUpdatedAt(v time.Time) *FileProcessingChunkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FileProcessingChunkMutation object of the builder.
func (_u *FileProcessingChunkUpdateOne) Mutation() *FileProcessingChunkMutation {
	return _u.mutation
}

// Where appends a list predicates to the FileProcessingChunkUpdate builder.
func (_u *FileProcessingChunkUpdateOne) Where(ps ...predicate.FileProcessingChunk) *FileProcessingChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileProcessingChunkUpdateOne) Select(field string, fields ...string) *FileProcessingChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileProcessingChunk entity.
func (_u *FileProcessingChunkUpdateOne) Save(ctx context.Context) (*FileProcessingChunk, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileProcessingChunkUpdateOne) SaveX(ctx context.Context) *FileProcessingChunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileProcessingChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileProcessingChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FileProcessingChunkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fileprocessingchunk.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileProcessingChunkUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fileprocessingchunk.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileProcessingChunk.status": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileProcessingChunk.file"`)
	}
	return nil
}

func (_u *FileProcessingChunkUpdateOne) sqlSave(ctx context.Context) (_node *FileProcessingChunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fileprocessingchunk.Table, fileprocessingchunk.Columns, sqlgraph.NewFieldSpec(fileprocessingchunk.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileProcessingChunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fileprocessingchunk.FieldID)
		for _, f := range fields {
			if !fileprocessingchunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fileprocessingchunk.FieldID {
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
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(fileprocessingchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(fileprocessingchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalChunks(); ok {
		_spec.SetField(fileprocessingchunk.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChunks(); ok {
		_spec.AddField(fileprocessingchunk.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageStart(); ok {
		_spec.SetField(fileprocessingchunk.FieldPageStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageStart(); ok {
		_spec.AddField(fileprocessingchunk.FieldPageStart, field.TypeInt, value)
	}
	if _u.mutation.PageStartCleared() {
		_spec.ClearField(fileprocessingchunk.FieldPageStart, field.TypeInt)
	}
	if value, ok := _u.mutation.PageEnd(); ok {
		_spec.SetField(fileprocessingchunk.FieldPageEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageEnd(); ok {
		_spec.AddField(fileprocessingchunk.FieldPageEnd, field.TypeInt, value)
	}
	if _u.mutation.PageEndCleared() {
		_spec.ClearField(fileprocessingchunk.FieldPageEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.ByteStart(); ok {
		_spec.SetField(fileprocessingchunk.FieldByteStart, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedByteStart(); ok {
		_spec.AddField(fileprocessingchunk.FieldByteStart, field.TypeInt64, value)
	}
	if _u.mutation.ByteStartCleared() {
		_spec.ClearField(fileprocessingchunk.FieldByteStart, field.TypeInt64)
	}
	if value, ok := _u.mutation.ByteEnd(); ok {
		_spec.SetField(fileprocessingchunk.FieldByteEnd, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedByteEnd(); ok {
		_spec.AddField(fileprocessingchunk.FieldByteEnd, field.TypeInt64, value)
	}
	if _u.mutation.ByteEndCleared() {
		_spec.ClearField(fileprocessingchunk.FieldByteEnd, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fileprocessingchunk.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(fileprocessingchunk.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(fileprocessingchunk.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(fileprocessingchunk.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(fileprocessingchunk.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.VectorID(); ok {
		_spec.SetField(fileprocessingchunk.FieldVectorID, field.TypeString, value)
	}
	if _u.mutation.VectorIDCleared() {
		_spec.ClearField(fileprocessingchunk.FieldVectorID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fileprocessingchunk.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FileProcessingChunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fileprocessingchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
