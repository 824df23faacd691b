// Package models contains domain value types shared between the ent schemas,
// the pipeline packages, and the API layer.
package models

// Shard status values carried in EntityMetadata. The UI calls a staged entity
// plus its pending relationships a "shard".
const (
	ShardStatusStaging  = "staging"
	ShardStatusApproved = "approved"
	ShardStatusRejected = "rejected"
)

// PendingRelation is a relationship proposed by extraction but not yet
// absorbed into the graph by approval.
type PendingRelation struct {
	RelationshipType string            `json:"relationship_type"`
	TargetID         string            `json:"target_id"`
	Strength         *float64          `json:"strength,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

// EntityMetadata is the typed metadata column of an Entity. Known fields are
// explicit; Extra holds the free-form provenance tail. Code never indexes
// through an untyped map for the known fields.
type EntityMetadata struct {
	ShardStatus      string            `json:"shard_status"`
	PendingRelations []PendingRelation `json:"pending_relations,omitempty"`
	SourceName       string            `json:"source_name,omitempty"`
	Fallback         bool              `json:"fallback,omitempty"`
	Extra            map[string]string `json:"extra,omitempty"`
}

// ExtractedRelation is a relationship edge produced by LLM entity extraction.
type ExtractedRelation struct {
	RelationshipType string            `json:"relationship_type"`
	TargetID         string            `json:"target_id"`
	Strength         *float64          `json:"strength,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

// ExtractedEntity is one typed entity produced by LLM entity extraction.
// ID is campaign-scoped (prefixed with "<campaign_id>_"); relation target ids
// may still be unprefixed and are normalized by the staging layer.
type ExtractedEntity struct {
	ID         string              `json:"id"`
	EntityType string              `json:"entity_type"`
	Name       string              `json:"name"`
	Content    string              `json:"content"`
	Confidence *float64            `json:"confidence,omitempty"`
	Metadata   map[string]string   `json:"metadata,omitempty"`
	Relations  []ExtractedRelation `json:"relations,omitempty"`
}
