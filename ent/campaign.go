// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loresmith/loresmith/ent/campaign"
)

// Campaign is the model entity for the Campaign schema.
type Campaign struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning tenant identity (opaque string from auth)
	Tenant string `json:"tenant,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status campaign.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CampaignQuery when eager-loading is set.
	Edges        CampaignEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CampaignEdges holds the relations/edges for other nodes in the graph.
type CampaignEdges struct {
	// Entities holds the value of the entities edge.
	Entities []*Entity `json:"entities,omitempty"`
	// Relationships holds the value of the relationships edge.
	Relationships []*EntityRelationship `json:"relationships,omitempty"`
	// Communities holds the value of the communities edge.
	Communities []*Community `json:"communities,omitempty"`
	// Importances holds the value of the importances edge.
	Importances []*EntityImportance `json:"importances,omitempty"`
	// Digests holds the value of the digests edge.
	Digests []*SessionDigest `json:"digests,omitempty"`
	// ChangelogEntries holds the value of the changelog_entries edge.
	ChangelogEntries []*ChangelogEntry `json:"changelog_entries,omitempty"`
	// Rebuilds holds the value of the rebuilds edge.
	Rebuilds []*RebuildStatus `json:"rebuilds,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// EntitiesOrErr returns the Entities value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) EntitiesOrErr() ([]*Entity, error) {
	if e.loadedTypes[0] {
		return e.Entities, nil
	}
	return nil, &NotLoadedError{edge: "entities"}
}

// RelationshipsOrErr returns the Relationships value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) RelationshipsOrErr() ([]*EntityRelationship, error) {
	if e.loadedTypes[1] {
		return e.Relationships, nil
	}
	return nil, &NotLoadedError{edge: "relationships"}
}

// CommunitiesOrErr returns the Communities value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) CommunitiesOrErr() ([]*Community, error) {
	if e.loadedTypes[2] {
		return e.Communities, nil
	}
	return nil, &NotLoadedError{edge: "communities"}
}

// ImportancesOrErr returns the Importances value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) ImportancesOrErr() ([]*EntityImportance, error) {
	if e.loadedTypes[3] {
		return e.Importances, nil
	}
	return nil, &NotLoadedError{edge: "importances"}
}

// DigestsOrErr returns the Digests value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) DigestsOrErr() ([]*SessionDigest, error) {
	if e.loadedTypes[4] {
		return e.Digests, nil
	}
	return nil, &NotLoadedError{edge: "digests"}
}

// ChangelogEntriesOrErr returns the ChangelogEntries value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) ChangelogEntriesOrErr() ([]*ChangelogEntry, error) {
	if e.loadedTypes[5] {
		return e.ChangelogEntries, nil
	}
	return nil, &NotLoadedError{edge: "changelog_entries"}
}

// RebuildsOrErr returns the Rebuilds value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) RebuildsOrErr() ([]*RebuildStatus, error) {
	if e.loadedTypes[6] {
		return e.Rebuilds, nil
	}
	return nil, &NotLoadedError{edge: "rebuilds"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Campaign) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case campaign.FieldID, campaign.FieldTenant, campaign.FieldName, campaign.FieldDescription, campaign.FieldStatus:
			values[i] = new(sql.NullString)
		case campaign.FieldCreatedAt, campaign.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Campaign fields.
func (_m *Campaign) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case campaign.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case campaign.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case campaign.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case campaign.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case campaign.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = campaign.Status(value.String)
			}
		case campaign.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case campaign.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Campaign.
// This includes values selected through modifiers, order, etc.
func (_m *Campaign) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEntities queries the "entities" edge of the Campaign entity.
func (_m *Campaign) QueryEntities() *EntityQuery {
	return NewCampaignClient(_m.config).QueryEntities(_m)
}

// QueryRelationships queries the "relationships" edge of the Campaign entity.
func (_m *Campaign) QueryRelationships() *EntityRelationshipQuery {
	return NewCampaignClient(_m.config).QueryRelationships(_m)
}

// QueryCommunities queries the "communities" edge of the Campaign entity.
func (_m *Campaign) QueryCommunities() *CommunityQuery {
	return NewCampaignClient(_m.config).QueryCommunities(_m)
}

// QueryImportances queries the "importances" edge of the Campaign entity.
func (_m *Campaign) QueryImportances() *EntityImportanceQuery {
	return NewCampaignClient(_m.config).QueryImportances(_m)
}

// QueryDigests queries the "digests" edge of the Campaign entity.
func (_m *Campaign) QueryDigests() *SessionDigestQuery {
	return NewCampaignClient(_m.config).QueryDigests(_m)
}

// QueryChangelogEntries queries the "changelog_entries" edge of the Campaign entity.
func (_m *Campaign) QueryChangelogEntries() *ChangelogEntryQuery {
	return NewCampaignClient(_m.config).QueryChangelogEntries(_m)
}

// QueryRebuilds queries the "rebuilds" edge of the Campaign entity.
func (_m *Campaign) QueryRebuilds() *RebuildStatusQuery {
	return NewCampaignClient(_m.config).QueryRebuilds(_m)
}

// Update returns a builder for updating this Campaign.
// Note that you need to call Campaign.Unwrap() before calling this method if this Campaign
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Campaign) Update() *CampaignUpdateOne {
	return NewCampaignClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Campaign entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Campaign) Unwrap() *Campaign {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Campaign is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Campaign) String() string {
	var builder strings.Builder
	builder.WriteString("Campaign(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Campaigns is a parsable slice of Campaign.
type Campaigns []*Campaign
