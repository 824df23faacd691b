// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loresmith/loresmith/ent/campaign"
	"github.com/loresmith/loresmith/ent/entityimportance"
)

// EntityImportance is the model entity for the EntityImportance schema.
type EntityImportance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID string `json:"campaign_id,omitempty"`
	// Pagerank holds the value of the "pagerank" field.
	Pagerank float64 `json:"pagerank,omitempty"`
	// BetweennessCentrality holds the value of the "betweenness_centrality" field.
	BetweennessCentrality float64 `json:"betweenness_centrality,omitempty"`
	// HierarchyLevel holds the value of the "hierarchy_level" field.
	HierarchyLevel int `json:"hierarchy_level,omitempty"`
	// CompositeScore holds the value of the "composite_score" field.
	CompositeScore float64 `json:"composite_score,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt time.Time `json:"computed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityImportanceQuery when eager-loading is set.
	Edges        EntityImportanceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityImportanceEdges holds the relations/edges for other nodes in the graph.
type EntityImportanceEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityImportanceEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityImportance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entityimportance.FieldPagerank, entityimportance.FieldBetweennessCentrality, entityimportance.FieldCompositeScore:
			values[i] = new(sql.NullFloat64)
		case entityimportance.FieldHierarchyLevel:
			values[i] = new(sql.NullInt64)
		case entityimportance.FieldID, entityimportance.FieldCampaignID:
			values[i] = new(sql.NullString)
		case entityimportance.FieldComputedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityImportance fields.
func (_m *EntityImportance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entityimportance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entityimportance.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case entityimportance.FieldPagerank:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pagerank", values[i])
			} else if value.Valid {
				_m.Pagerank = value.Float64
			}
		case entityimportance.FieldBetweennessCentrality:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field betweenness_centrality", values[i])
			} else if value.Valid {
				_m.BetweennessCentrality = value.Float64
			}
		case entityimportance.FieldHierarchyLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hierarchy_level", values[i])
			} else if value.Valid {
				_m.HierarchyLevel = int(value.Int64)
			}
		case entityimportance.FieldCompositeScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field composite_score", values[i])
			} else if value.Valid {
				_m.CompositeScore = value.Float64
			}
		case entityimportance.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntityImportance.
// This includes values selected through modifiers, order, etc.
func (_m *EntityImportance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the EntityImportance entity.
func (_m *EntityImportance) QueryCampaign() *CampaignQuery {
	return NewEntityImportanceClient(_m.config).QueryCampaign(_m)
}

// Update returns a builder for updating this EntityImportance.
// Note that you need to call EntityImportance.Unwrap() before calling this method if this EntityImportance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityImportance) Update() *EntityImportanceUpdateOne {
	return NewEntityImportanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityImportance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityImportance) Unwrap() *EntityImportance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityImportance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityImportance) String() string {
	var builder strings.Builder
	builder.WriteString("EntityImportance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(_m.CampaignID)
	builder.WriteString(", ")
	builder.WriteString("pagerank=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pagerank))
	builder.WriteString(", ")
	builder.WriteString("betweenness_centrality=")
	builder.WriteString(fmt.Sprintf("%v", _m.BetweennessCentrality))
	builder.WriteString(", ")
	builder.WriteString("hierarchy_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.HierarchyLevel))
	builder.WriteString(", ")
	builder.WriteString("composite_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompositeScore))
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntityImportances is a parsable slice of EntityImportance.
type EntityImportances []*EntityImportance
