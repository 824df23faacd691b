package models

// NewEntityChange records an entity introduced by a session or ingestion.
type NewEntityChange struct {
	EntityID   string            `json:"entity_id"`
	EntityType string            `json:"entity_type"`
	Name       string            `json:"name"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// EntityUpdateChange records a status/description/metadata change to an
// existing entity.
type EntityUpdateChange struct {
	EntityID    string            `json:"entity_id"`
	NewStatus   string            `json:"new_status,omitempty"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// RelationshipUpdateChange records a relationship change between two entities.
type RelationshipUpdateChange struct {
	FromEntityID     string            `json:"from_entity_id"`
	ToEntityID       string            `json:"to_entity_id"`
	RelationshipType string            `json:"relationship_type"`
	NewStatus        string            `json:"new_status,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

// ChangelogPayload is the payload column of a world-state changelog entry.
type ChangelogPayload struct {
	NewEntities         []NewEntityChange          `json:"new_entities,omitempty"`
	EntityUpdates       []EntityUpdateChange       `json:"entity_updates,omitempty"`
	RelationshipUpdates []RelationshipUpdateChange `json:"relationship_updates,omitempty"`
}
