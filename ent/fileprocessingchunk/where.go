// Code generated by ent, DO NOT EDIT.

package fileprocessingchunk

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loresmith/loresmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldContainsFold(FieldID, id))
}

// FileKey applies equality check predicate on the "file_key" field. It's identical to FileKeyEQ.
func FileKey(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldFileKey, v))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldTenant, v))
}

// ChunkIndex applies equality check predicate on the "chunk_index" field. It's identical to ChunkIndexEQ.
func ChunkIndex(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldChunkIndex, v))
}

// TotalChunks applies equality check predicate on the "total_chunks" field. It's identical to TotalChunksEQ.
func TotalChunks(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldTotalChunks, v))
}

// PageStart applies equality check predicate on the "page_start" field. It's identical to PageStartEQ.
func PageStart(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldPageStart, v))
}

// PageEnd applies equality check predicate on the "page_end" field. It's identical to PageEndEQ.
func PageEnd(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldPageEnd, v))
}

// ByteStart applies equality check predicate on the "byte_start" field. It's identical to ByteStartEQ.
func ByteStart(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldByteStart, v))
}

// ByteEnd applies equality check predicate on the "byte_end" field. It's identical to ByteEndEQ.
func ByteEnd(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldByteEnd, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldRetryCount, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldErrorMessage, v))
}

// VectorID applies equality check predicate on the "vector_id" field. It's identical to VectorIDEQ.
func VectorID(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldVectorID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldUpdatedAt, v))
}

// FileKeyEQ applies the EQ predicate on the "file_key" field.
func FileKeyEQ(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldFileKey, v))
}

// FileKeyNEQ applies the NEQ predicate on the "file_key" field.
func FileKeyNEQ(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldFileKey, v))
}

// FileKeyIn applies the In predicate on the "file_key" field.
func FileKeyIn(vs ...string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldFileKey, vs...))
}

// FileKeyNotIn applies the NotIn predicate on the "file_key" field.
func FileKeyNotIn(vs ...string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldFileKey, vs...))
}

// FileKeyGT applies the GT predicate on the "file_key" field.
func FileKeyGT(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldFileKey, v))
}

// FileKeyGTE applies the GTE predicate on the "file_key" field.
func FileKeyGTE(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldFileKey, v))
}

// FileKeyLT applies the LT predicate on the "file_key" field.
func FileKeyLT(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldFileKey, v))
}

// FileKeyLTE applies the LTE predicate on the "file_key" field.
func FileKeyLTE(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldFileKey, v))
}

// FileKeyContains applies the Contains predicate on the "file_key" field.
func FileKeyContains(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldContains(FieldFileKey, v))
}

// FileKeyHasPrefix applies the HasPrefix predicate on the "file_key" field.
func FileKeyHasPrefix(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldHasPrefix(FieldFileKey, v))
}

// FileKeyHasSuffix applies the HasSuffix predicate on the "file_key" field.
func FileKeyHasSuffix(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldHasSuffix(FieldFileKey, v))
}

// FileKeyEqualFold applies the EqualFold predicate on the "file_key" field.
func FileKeyEqualFold(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEqualFold(FieldFileKey, v))
}

// FileKeyContainsFold applies the ContainsFold predicate on the "file_key" field.
func FileKeyContainsFold(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldContainsFold(FieldFileKey, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldContainsFold(FieldTenant, v))
}

// ChunkIndexEQ applies the EQ predicate on the "chunk_index" field.
func ChunkIndexEQ(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldChunkIndex, v))
}

// ChunkIndexNEQ applies the NEQ predicate on the "chunk_index" field.
func ChunkIndexNEQ(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldChunkIndex, v))
}

// ChunkIndexIn applies the In predicate on the "chunk_index" field.
func ChunkIndexIn(vs ...int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldChunkIndex, vs...))
}

// ChunkIndexNotIn applies the NotIn predicate on the "chunk_index" field.
func ChunkIndexNotIn(vs ...int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldChunkIndex, vs...))
}

// ChunkIndexGT applies the GT predicate on the "chunk_index" field.
func ChunkIndexGT(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldChunkIndex, v))
}

// ChunkIndexGTE applies the GTE predicate on the "chunk_index" field.
func ChunkIndexGTE(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldChunkIndex, v))
}

// ChunkIndexLT applies the LT predicate on the "chunk_index" field.
func ChunkIndexLT(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldChunkIndex, v))
}

// ChunkIndexLTE applies the LTE predicate on the "chunk_index" field.
func ChunkIndexLTE(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldChunkIndex, v))
}

// TotalChunksEQ applies the EQ predicate on the "total_chunks" field.
func TotalChunksEQ(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldTotalChunks, v))
}

// TotalChunksNEQ applies the NEQ predicate on the "total_chunks" field.
func TotalChunksNEQ(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldTotalChunks, v))
}

// TotalChunksIn applies the In predicate on the "total_chunks" field.
func TotalChunksIn(vs ...int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldTotalChunks, vs...))
}

// TotalChunksNotIn applies the NotIn predicate on the "total_chunks" field.
func TotalChunksNotIn(vs ...int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldTotalChunks, vs...))
}

// TotalChunksGT applies the GT predicate on the "total_chunks" field.
func TotalChunksGT(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldTotalChunks, v))
}

// TotalChunksGTE applies the GTE predicate on the "total_chunks" field.
func TotalChunksGTE(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldTotalChunks, v))
}

// TotalChunksLT applies the LT predicate on the "total_chunks" field.
func TotalChunksLT(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldTotalChunks, v))
}

// TotalChunksLTE applies the LTE predicate on the "total_chunks" field.
func TotalChunksLTE(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldTotalChunks, v))
}

// PageStartEQ applies the EQ predicate on the "page_start" field.
func PageStartEQ(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldPageStart, v))
}

// PageStartNEQ applies the NEQ predicate on the "page_start" field.
func PageStartNEQ(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldPageStart, v))
}

// PageStartIn applies the In predicate on the "page_start" field.
func PageStartIn(vs ...int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldPageStart, vs...))
}

// PageStartNotIn applies the NotIn predicate on the "page_start" field.
func PageStartNotIn(vs ...int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldPageStart, vs...))
}

// PageStartGT applies the GT predicate on the "page_start" field.
func PageStartGT(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldPageStart, v))
}

// PageStartGTE applies the GTE predicate on the "page_start" field.
func PageStartGTE(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldPageStart, v))
}

// PageStartLT applies the LT predicate on the "page_start" field.
func PageStartLT(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldPageStart, v))
}

// PageStartLTE applies the LTE predicate on the "page_start" field.
func PageStartLTE(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldPageStart, v))
}

// PageStartIsNil applies the IsNil predicate on the "page_start" field.
func PageStartIsNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIsNull(FieldPageStart))
}

// PageStartNotNil applies the NotNil predicate on the "page_start" field.
func PageStartNotNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotNull(FieldPageStart))
}

// PageEndEQ applies the EQ predicate on the "page_end" field.
func PageEndEQ(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldPageEnd, v))
}

// PageEndNEQ applies the NEQ predicate on the "page_end" field.
func PageEndNEQ(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldPageEnd, v))
}

// PageEndIn applies the In predicate on the "page_end" field.
func PageEndIn(vs ...int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldPageEnd, vs...))
}

// PageEndNotIn applies the NotIn predicate on the "page_end" field.
func PageEndNotIn(vs ...int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldPageEnd, vs...))
}

// PageEndGT applies the GT predicate on the "page_end" field.
func PageEndGT(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldPageEnd, v))
}

// PageEndGTE applies the GTE predicate on the "page_end" field.
func PageEndGTE(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldPageEnd, v))
}

// PageEndLT applies the LT predicate on the "page_end" field.
func PageEndLT(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldPageEnd, v))
}

// PageEndLTE applies the LTE predicate on the "page_end" field.
func PageEndLTE(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldPageEnd, v))
}

// PageEndIsNil applies the IsNil predicate on the "page_end" field.
func PageEndIsNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIsNull(FieldPageEnd))
}

// PageEndNotNil applies the NotNil predicate on the "page_end" field.
func PageEndNotNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotNull(FieldPageEnd))
}

// ByteStartEQ applies the EQ predicate on the "byte_start" field.
func ByteStartEQ(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldByteStart, v))
}

// ByteStartNEQ applies the NEQ predicate on the "byte_start" field.
func ByteStartNEQ(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldByteStart, v))
}

// ByteStartIn applies the In predicate on the "byte_start" field.
func ByteStartIn(vs ...int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldByteStart, vs...))
}

// ByteStartNotIn applies the NotIn predicate on the "byte_start" field.
func ByteStartNotIn(vs ...int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldByteStart, vs...))
}

// ByteStartGT applies the GT predicate on the "byte_start" field.
func ByteStartGT(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldByteStart, v))
}

// ByteStartGTE applies the GTE predicate on the "byte_start" field.
func ByteStartGTE(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldByteStart, v))
}

// ByteStartLT applies the LT predicate on the "byte_start" field.
func ByteStartLT(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldByteStart, v))
}

// ByteStartLTE applies the LTE predicate on the "byte_start" field.
func ByteStartLTE(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldByteStart, v))
}

// ByteStartIsNil applies the IsNil predicate on the "byte_start" field.
func ByteStartIsNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIsNull(FieldByteStart))
}

// ByteStartNotNil applies the NotNil predicate on the "byte_start" field.
func ByteStartNotNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotNull(FieldByteStart))
}

// ByteEndEQ applies the EQ predicate on the "byte_end" field.
func ByteEndEQ(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldByteEnd, v))
}

// ByteEndNEQ applies the NEQ predicate on the "byte_end" field.
func ByteEndNEQ(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldByteEnd, v))
}

// ByteEndIn applies the In predicate on the "byte_end" field.
func ByteEndIn(vs ...int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldByteEnd, vs...))
}

// ByteEndNotIn applies the NotIn predicate on the "byte_end" field.
func ByteEndNotIn(vs ...int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldByteEnd, vs...))
}

// ByteEndGT applies the GT predicate on the "byte_end" field.
func ByteEndGT(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldByteEnd, v))
}

// ByteEndGTE applies the GTE predicate on the "byte_end" field.
func ByteEndGTE(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldByteEnd, v))
}

// ByteEndLT applies the LT predicate on the "byte_end" field.
func ByteEndLT(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldByteEnd, v))
}

// ByteEndLTE applies the LTE predicate on the "byte_end" field.
func ByteEndLTE(v int64) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldByteEnd, v))
}

// ByteEndIsNil applies the IsNil predicate on the "byte_end" field.
func ByteEndIsNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIsNull(FieldByteEnd))
}

// ByteEndNotNil applies the NotNil predicate on the "byte_end" field.
func ByteEndNotNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotNull(FieldByteEnd))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldStatus, vs...))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldRetryCount, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldContainsFold(FieldErrorMessage, v))
}

// VectorIDEQ applies the EQ predicate on the "vector_id" field.
func VectorIDEQ(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldVectorID, v))
}

// VectorIDNEQ applies the NEQ predicate on the "vector_id" field.
func VectorIDNEQ(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldVectorID, v))
}

// VectorIDIn applies the In predicate on the "vector_id" field.
func VectorIDIn(vs ...string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldVectorID, vs...))
}

// VectorIDNotIn applies the NotIn predicate on the "vector_id" field.
func VectorIDNotIn(vs ...string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldVectorID, vs...))
}

// VectorIDGT applies the GT predicate on the "vector_id" field.
func VectorIDGT(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldVectorID, v))
}

// VectorIDGTE applies the GTE predicate on the "vector_id" field.
func VectorIDGTE(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldVectorID, v))
}

// VectorIDLT applies the LT predicate on the "vector_id" field.
func VectorIDLT(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldVectorID, v))
}

// VectorIDLTE applies the LTE predicate on the "vector_id" field.
func VectorIDLTE(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldVectorID, v))
}

// VectorIDContains applies the Contains predicate on the "vector_id" field.
func VectorIDContains(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldContains(FieldVectorID, v))
}

// VectorIDHasPrefix applies the HasPrefix predicate on the "vector_id" field.
func VectorIDHasPrefix(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldHasPrefix(FieldVectorID, v))
}

// VectorIDHasSuffix applies the HasSuffix predicate on the "vector_id" field.
func VectorIDHasSuffix(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldHasSuffix(FieldVectorID, v))
}

// VectorIDIsNil applies the IsNil predicate on the "vector_id" field.
func VectorIDIsNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIsNull(FieldVectorID))
}

// VectorIDNotNil applies the NotNil predicate on the "vector_id" field.
func VectorIDNotNil() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotNull(FieldVectorID))
}

// VectorIDEqualFold applies the EqualFold predicate on the "vector_id" field.
func VectorIDEqualFold(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEqualFold(FieldVectorID, v))
}

// VectorIDContainsFold applies the ContainsFold predicate on the "vector_id" field.
func VectorIDContainsFold(v string) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldContainsFold(FieldVectorID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.File) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FileProcessingChunk) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FileProcessingChunk) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FileProcessingChunk) predicate.FileProcessingChunk {
	return predicate.FileProcessingChunk(sql.NotPredicates(p))
}
