// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/fileprocessingchunk"
)

// FileProcessingChunk is the model entity for the FileProcessingChunk schema.
type FileProcessingChunk struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FileKey holds the value of the "file_key" field.
	FileKey string `json:"file_key,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant string `json:"tenant,omitempty"`
	// ChunkIndex holds the value of the "chunk_index" field.
	ChunkIndex int `json:"chunk_index,omitempty"`
	// Same value on every chunk of a file
	TotalChunks int `json:"total_chunks,omitempty"`
	// 1-based inclusive; set for page-range chunks
	PageStart *int `json:"page_start,omitempty"`
	// PageEnd holds the value of the "page_end" field.
	PageEnd *int `json:"page_end,omitempty"`
	// Inclusive; set for byte-range chunks
	ByteStart *int64 `json:"byte_start,omitempty"`
	// Exclusive
	ByteEnd *int64 `json:"byte_end,omitempty"`
	// Status holds the value of the "status" field.
	Status fileprocessingchunk.Status `json:"status,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// VectorID holds the value of the "vector_id" field.
	VectorID *string `json:"vector_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FileProcessingChunkQuery when eager-loading is set.
	Edges        FileProcessingChunkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FileProcessingChunkEdges holds the relations/edges for other nodes in the graph.
type FileProcessingChunkEdges struct {
	// File holds the value of the file edge.
	File *File `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FileProcessingChunkEdges) FileOrErr() (*File, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: file.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FileProcessingChunk) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fileprocessingchunk.FieldChunkIndex, fileprocessingchunk.FieldTotalChunks, fileprocessingchunk.FieldPageStart, fileprocessingchunk.FieldPageEnd, fileprocessingchunk.FieldByteStart, fileprocessingchunk.FieldByteEnd, fileprocessingchunk.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case fileprocessingchunk.FieldID, fileprocessingchunk.FieldFileKey, fileprocessingchunk.FieldTenant, fileprocessingchunk.FieldStatus, fileprocessingchunk.FieldErrorMessage, fileprocessingchunk.FieldVectorID:
			values[i] = new(sql.NullString)
		case fileprocessingchunk.FieldCreatedAt, fileprocessingchunk.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FileProcessingChunk fields.
func (_m *FileProcessingChunk) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fileprocessingchunk.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case fileprocessingchunk.FieldFileKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_key", values[i])
			} else if value.Valid {
				_m.FileKey = value.String
			}
		case fileprocessingchunk.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case fileprocessingchunk.FieldChunkIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_index", values[i])
			} else if value.Valid {
				_m.ChunkIndex = int(value.Int64)
			}
		case fileprocessingchunk.FieldTotalChunks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_chunks", values[i])
			} else if value.Valid {
				_m.TotalChunks = int(value.Int64)
			}
		case fileprocessingchunk.FieldPageStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_start", values[i])
			} else if value.Valid {
				_m.PageStart = new(int)
				*_m.PageStart = int(value.Int64)
			}
		case fileprocessingchunk.FieldPageEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_end", values[i])
			} else if value.Valid {
				_m.PageEnd = new(int)
				*_m.PageEnd = int(value.Int64)
			}
		case fileprocessingchunk.FieldByteStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field byte_start", values[i])
			} else if value.Valid {
				_m.ByteStart = new(int64)
				*_m.ByteStart = value.Int64
			}
		case fileprocessingchunk.FieldByteEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field byte_end", values[i])
			} else if value.Valid {
				_m.ByteEnd = new(int64)
				*_m.ByteEnd = value.Int64
			}
		case fileprocessingchunk.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = fileprocessingchunk.Status(value.String)
			}
		case fileprocessingchunk.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case fileprocessingchunk.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case fileprocessingchunk.FieldVectorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vector_id", values[i])
			} else if value.Valid {
				_m.VectorID = new(string)
				*_m.VectorID = value.String
			}
		case fileprocessingchunk.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fileprocessingchunk.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FileProcessingChunk.
// This includes values selected through modifiers, order, etc.
func (_m *FileProcessingChunk) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the FileProcessingChunk entity.
func (_m *FileProcessingChunk) QueryFile() *FileQuery {
	return NewFileProcessingChunkClient(_m.config).QueryFile(_m)
}

// Update returns a builder for updating this FileProcessingChunk.
// Note that you need to call FileProcessingChunk.Unwrap() before calling this method if this FileProcessingChunk
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FileProcessingChunk) Update() *FileProcessingChunkUpdateOne {
	return NewFileProcessingChunkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FileProcessingChunk entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FileProcessingChunk) Unwrap() *FileProcessingChunk {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FileProcessingChunk is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FileProcessingChunk) String() string {
	var builder strings.Builder
	builder.WriteString("FileProcessingChunk(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_key=")
	builder.WriteString(_m.FileKey)
	builder.WriteString(", ")
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("chunk_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkIndex))
	builder.WriteString(", ")
	builder.WriteString("total_chunks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalChunks))
	builder.WriteString(", ")
	if v := _m.PageStart; v != nil {
		builder.WriteString("page_start=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PageEnd; v != nil {
		builder.WriteString("page_end=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ByteStart; v != nil {
		builder.WriteString("byte_start=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ByteEnd; v != nil {
		builder.WriteString("byte_end=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VectorID; v != nil {
		builder.WriteString("vector_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FileProcessingChunks is a parsable slice of FileProcessingChunk.
type FileProcessingChunks []*FileProcessingChunk
