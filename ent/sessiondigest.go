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
	"github.com/loresmith/loresmith/ent/sessiondigest"
	"github.com/loresmith/loresmith/pkg/models"
)

// SessionDigest is the model entity for the SessionDigest schema.
type SessionDigest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID string `json:"campaign_id,omitempty"`
	// SessionNumber holds the value of the "session_number" field.
	SessionNumber int `json:"session_number,omitempty"`
	// SessionDate holds the value of the "session_date" field.
	SessionDate *time.Time `json:"session_date,omitempty"`
	// DigestData holds the value of the "digest_data" field.
	DigestData models.DigestData `json:"digest_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionDigestQuery when eager-loading is set.
	Edges        SessionDigestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionDigestEdges holds the relations/edges for other nodes in the graph.
type SessionDigestEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionDigestEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionDigest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessiondigest.FieldDigestData:
			values[i] = new([]byte)
		case sessiondigest.FieldSessionNumber:
			values[i] = new(sql.NullInt64)
		case sessiondigest.FieldID, sessiondigest.FieldCampaignID:
			values[i] = new(sql.NullString)
		case sessiondigest.FieldSessionDate, sessiondigest.FieldCreatedAt, sessiondigest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionDigest fields.
func (_m *SessionDigest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessiondigest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessiondigest.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case sessiondigest.FieldSessionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_number", values[i])
			} else if value.Valid {
				_m.SessionNumber = int(value.Int64)
			}
		case sessiondigest.FieldSessionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field session_date", values[i])
			} else if value.Valid {
				_m.SessionDate = new(time.Time)
				*_m.SessionDate = value.Time
			}
		case sessiondigest.FieldDigestData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field digest_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DigestData); err != nil {
					return fmt.Errorf("unmarshal field digest_data: %w", err)
				}
			}
		case sessiondigest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessiondigest.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SessionDigest.
// This includes values selected through modifiers, order, etc.
func (_m *SessionDigest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the SessionDigest entity.
func (_m *SessionDigest) QueryCampaign() *CampaignQuery {
	return NewSessionDigestClient(_m.config).QueryCampaign(_m)
}

// Update returns a builder for updating this SessionDigest.
// Note that you need to call SessionDigest.Unwrap() before calling this method if this SessionDigest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionDigest) Update() *SessionDigestUpdateOne {
	return NewSessionDigestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionDigest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionDigest) Unwrap() *SessionDigest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionDigest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionDigest) String() string {
	var builder strings.Builder
	builder.WriteString("SessionDigest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(_m.CampaignID)
	builder.WriteString(", ")
	builder.WriteString("session_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionNumber))
	builder.WriteString(", ")
	if v := _m.SessionDate; v != nil {
		builder.WriteString("session_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("digest_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.DigestData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionDigests is a parsable slice of SessionDigest.
type SessionDigests []*SessionDigest
