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
	"github.com/loresmith/loresmith/ent/changelogentry"
	"github.com/loresmith/loresmith/pkg/models"
)

// ChangelogEntry is the model entity for the ChangelogEntry schema.
type ChangelogEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID string `json:"campaign_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID *string `json:"session_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload models.ChangelogPayload `json:"payload,omitempty"`
	// AppliedToGraph holds the value of the "applied_to_graph" field.
	AppliedToGraph bool `json:"applied_to_graph,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChangelogEntryQuery when eager-loading is set.
	Edges        ChangelogEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChangelogEntryEdges holds the relations/edges for other nodes in the graph.
type ChangelogEntryEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChangelogEntryEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChangelogEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case changelogentry.FieldPayload:
			values[i] = new([]byte)
		case changelogentry.FieldAppliedToGraph:
			values[i] = new(sql.NullBool)
		case changelogentry.FieldID, changelogentry.FieldCampaignID, changelogentry.FieldSessionID:
			values[i] = new(sql.NullString)
		case changelogentry.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChangelogEntry fields.
func (_m *ChangelogEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case changelogentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case changelogentry.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case changelogentry.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case changelogentry.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case changelogentry.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case changelogentry.FieldAppliedToGraph:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field applied_to_graph", values[i])
			} else if value.Valid {
				_m.AppliedToGraph = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChangelogEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ChangelogEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the ChangelogEntry entity.
func (_m *ChangelogEntry) QueryCampaign() *CampaignQuery {
	return NewChangelogEntryClient(_m.config).QueryCampaign(_m)
}

// Update returns a builder for updating this ChangelogEntry.
// Note that you need to call ChangelogEntry.Unwrap() before calling this method if this ChangelogEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChangelogEntry) Update() *ChangelogEntryUpdateOne {
	return NewChangelogEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChangelogEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChangelogEntry) Unwrap() *ChangelogEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChangelogEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChangelogEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ChangelogEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(_m.CampaignID)
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("applied_to_graph=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppliedToGraph))
	builder.WriteByte(')')
	return builder.String()
}

// ChangelogEntries is a parsable slice of ChangelogEntry.
type ChangelogEntries []*ChangelogEntry
