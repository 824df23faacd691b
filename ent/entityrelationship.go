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
	"github.com/loresmith/loresmith/ent/entityrelationship"
)

// EntityRelationship is the model entity for the EntityRelationship schema.
type EntityRelationship struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID string `json:"campaign_id,omitempty"`
	// FromEntityID holds the value of the "from_entity_id" field.
	FromEntityID string `json:"from_entity_id,omitempty"`
	// ToEntityID holds the value of the "to_entity_id" field.
	ToEntityID string `json:"to_entity_id,omitempty"`
	// RelationshipType holds the value of the "relationship_type" field.
	RelationshipType string `json:"relationship_type,omitempty"`
	// Strength holds the value of the "strength" field.
	Strength *float64 `json:"strength,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]string `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityRelationshipQuery when eager-loading is set.
	Edges        EntityRelationshipEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityRelationshipEdges holds the relations/edges for other nodes in the graph.
type EntityRelationshipEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityRelationshipEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityRelationship) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entityrelationship.FieldMetadata:
			values[i] = new([]byte)
		case entityrelationship.FieldStrength:
			values[i] = new(sql.NullFloat64)
		case entityrelationship.FieldID, entityrelationship.FieldCampaignID, entityrelationship.FieldFromEntityID, entityrelationship.FieldToEntityID, entityrelationship.FieldRelationshipType:
			values[i] = new(sql.NullString)
		case entityrelationship.FieldCreatedAt, entityrelationship.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityRelationship fields.
func (_m *EntityRelationship) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entityrelationship.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entityrelationship.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case entityrelationship.FieldFromEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_entity_id", values[i])
			} else if value.Valid {
				_m.FromEntityID = value.String
			}
		case entityrelationship.FieldToEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_entity_id", values[i])
			} else if value.Valid {
				_m.ToEntityID = value.String
			}
		case entityrelationship.FieldRelationshipType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship_type", values[i])
			} else if value.Valid {
				_m.RelationshipType = value.String
			}
		case entityrelationship.FieldStrength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field strength", values[i])
			} else if value.Valid {
				_m.Strength = new(float64)
				*_m.Strength = value.Float64
			}
		case entityrelationship.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case entityrelationship.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case entityrelationship.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EntityRelationship.
// This includes values selected through modifiers, order, etc.
func (_m *EntityRelationship) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the EntityRelationship entity.
func (_m *EntityRelationship) QueryCampaign() *CampaignQuery {
	return NewEntityRelationshipClient(_m.config).QueryCampaign(_m)
}

// Update returns a builder for updating this EntityRelationship.
// Note that you need to call EntityRelationship.Unwrap() before calling this method if this EntityRelationship
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityRelationship) Update() *EntityRelationshipUpdateOne {
	return NewEntityRelationshipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityRelationship entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityRelationship) Unwrap() *EntityRelationship {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityRelationship is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityRelationship) String() string {
	var builder strings.Builder
	builder.WriteString("EntityRelationship(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(_m.CampaignID)
	builder.WriteString(", ")
	builder.WriteString("from_entity_id=")
	builder.WriteString(_m.FromEntityID)
	builder.WriteString(", ")
	builder.WriteString("to_entity_id=")
	builder.WriteString(_m.ToEntityID)
	builder.WriteString(", ")
	builder.WriteString("relationship_type=")
	builder.WriteString(_m.RelationshipType)
	builder.WriteString(", ")
	if v := _m.Strength; v != nil {
		builder.WriteString("strength=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntityRelationships is a parsable slice of EntityRelationship.
type EntityRelationships []*EntityRelationship
