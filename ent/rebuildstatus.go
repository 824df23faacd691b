// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loresmith/loresmith/ent/campaign"
	"github.com/loresmith/loresmith/ent/rebuildstatus"
)

// RebuildStatus is the model entity for the RebuildStatus schema.
type RebuildStatus struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID string `json:"campaign_id,omitempty"`
	// RebuildType holds the value of the "rebuild_type" field.
	RebuildType rebuildstatus.RebuildType `json:"rebuild_type,omitempty"`
	// Status holds the value of the "status" field.
	Status rebuildstatus.Status `json:"status,omitempty"`
	// AffectedEntityIds holds the value of the "affected_entity_ids" field.
	AffectedEntityIds []string `json:"affected_entity_ids,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RebuildStatusQuery when eager-loading is set.
	Edges        RebuildStatusEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RebuildStatusEdges holds the relations/edges for other nodes in the graph.
type RebuildStatusEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RebuildStatusEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RebuildStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rebuildstatus.FieldAffectedEntityIds:
			values[i] = new([]byte)
		case rebuildstatus.FieldID, rebuildstatus.FieldCampaignID, rebuildstatus.FieldRebuildType, rebuildstatus.FieldStatus, rebuildstatus.FieldLastError:
			values[i] = new(sql.NullString)
		case rebuildstatus.FieldCreatedAt, rebuildstatus.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RebuildStatus fields.
func (_m *RebuildStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rebuildstatus.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rebuildstatus.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case rebuildstatus.FieldRebuildType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rebuild_type", values[i])
			} else if value.Valid {
				_m.RebuildType = rebuildstatus.RebuildType(value.String)
			}
		case rebuildstatus.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = rebuildstatus.Status(value.String)
			}
		case rebuildstatus.FieldAffectedEntityIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field affected_entity_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AffectedEntityIds); err != nil {
					return fmt.Errorf("unmarshal field affected_entity_ids: %w", err)
				}
			}
		case rebuildstatus.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case rebuildstatus.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case rebuildstatus.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RebuildStatus.
// This includes values selected through modifiers, order, etc.
func (_m *RebuildStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the RebuildStatus entity.
func (_m *RebuildStatus) QueryCampaign() *CampaignQuery {
	return NewRebuildStatusClient(_m.config).QueryCampaign(_m)
}

// Update returns a builder for updating this RebuildStatus.
// Note that you need to call RebuildStatus.Unwrap() before calling this method if this RebuildStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RebuildStatus) Update() *RebuildStatusUpdateOne {
	return NewRebuildStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RebuildStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RebuildStatus) Unwrap() *RebuildStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RebuildStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RebuildStatus) String() string {
	var builder strings.Builder
	builder.WriteString("RebuildStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(_m.CampaignID)
	builder.WriteString(", ")
	builder.WriteString("rebuild_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RebuildType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("affected_entity_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffectedEntityIds))
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// RebuildStatusSlice is a parsable slice of RebuildStatus.
type RebuildStatusSlice []*RebuildStatus
