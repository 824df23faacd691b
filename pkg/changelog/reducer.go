package changelog

import (
	"sort"

	"github.com/loresmith/loresmith/pkg/models"
)

// EntityState is the folded state of one entity across a range of entries.
type EntityState struct {
	EntityID    string            `json:"entity_id"`
	Status      string            `json:"status,omitempty"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// RelationshipState is the folded state of one relationship.
type RelationshipState struct {
	FromEntityID     string            `json:"from_entity_id"`
	ToEntityID       string            `json:"to_entity_id"`
	RelationshipType string            `json:"relationship_type"`
	Status           string            `json:"status,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

// Overlay is the snapshot produced by folding a range of changelog entries.
// Keys are entity ids and "from|to|type" relationship keys.
type Overlay struct {
	EntityState       map[string]EntityState            `json:"entity_state"`
	RelationshipState map[string]RelationshipState      `json:"relationship_state"`
	NewEntities       map[string]models.NewEntityChange `json:"new_entities"`
}

// RelationshipKey builds the overlay key for a relationship.
func RelationshipKey(from, to, relType string) string {
	return from + "|" + to + "|" + relType
}

// Reduce folds payloads in order, latest-wins per key. Reducing the output of
// a previous reduction (replayed as one payload per state) is a no-op, which
// is what makes historical projections safe to recompute.
func Reduce(payloads []models.ChangelogPayload) Overlay {
	overlay := Overlay{
		EntityState:       make(map[string]EntityState),
		RelationshipState: make(map[string]RelationshipState),
		NewEntities:       make(map[string]models.NewEntityChange),
	}
	for _, p := range payloads {
		overlay.apply(p)
	}
	return overlay
}

func (o *Overlay) apply(p models.ChangelogPayload) {
	for _, ne := range p.NewEntities {
		o.NewEntities[ne.EntityID] = ne
	}
	for _, eu := range p.EntityUpdates {
		state := o.EntityState[eu.EntityID]
		state.EntityID = eu.EntityID
		if eu.NewStatus != "" {
			state.Status = eu.NewStatus
		}
		if eu.Description != "" {
			state.Description = eu.Description
		}
		state.Metadata = mergeMeta(state.Metadata, eu.Metadata)
		o.EntityState[eu.EntityID] = state
	}
	for _, ru := range p.RelationshipUpdates {
		key := RelationshipKey(ru.FromEntityID, ru.ToEntityID, ru.RelationshipType)
		state := o.RelationshipState[key]
		state.FromEntityID = ru.FromEntityID
		state.ToEntityID = ru.ToEntityID
		state.RelationshipType = ru.RelationshipType
		if ru.NewStatus != "" {
			state.Status = ru.NewStatus
		}
		state.Metadata = mergeMeta(state.Metadata, ru.Metadata)
		o.RelationshipState[key] = state
	}
}

// AsPayload re-expresses the overlay as a single changelog payload, in stable
// key order. Reducing it reproduces the overlay.
func (o Overlay) AsPayload() models.ChangelogPayload {
	var p models.ChangelogPayload

	for _, id := range sortedKeys(o.NewEntities) {
		p.NewEntities = append(p.NewEntities, o.NewEntities[id])
	}
	for _, id := range sortedKeys(o.EntityState) {
		s := o.EntityState[id]
		p.EntityUpdates = append(p.EntityUpdates, models.EntityUpdateChange{
			EntityID:    s.EntityID,
			NewStatus:   s.Status,
			Description: s.Description,
			Metadata:    s.Metadata,
		})
	}
	for _, key := range sortedKeys(o.RelationshipState) {
		s := o.RelationshipState[key]
		p.RelationshipUpdates = append(p.RelationshipUpdates, models.RelationshipUpdateChange{
			FromEntityID:     s.FromEntityID,
			ToEntityID:       s.ToEntityID,
			RelationshipType: s.RelationshipType,
			NewStatus:        s.Status,
			Metadata:         s.Metadata,
		})
	}
	return p
}

// AffectedEntityIDs unions every entity id a set of payloads touches: new
// entities, update subjects, and both relationship endpoints. Sorted for
// deterministic downstream decisions.
func AffectedEntityIDs(payloads []models.ChangelogPayload) []string {
	set := make(map[string]bool)
	for _, p := range payloads {
		for _, ne := range p.NewEntities {
			set[ne.EntityID] = true
		}
		for _, eu := range p.EntityUpdates {
			set[eu.EntityID] = true
		}
		for _, ru := range p.RelationshipUpdates {
			set[ru.FromEntityID] = true
			set[ru.ToEntityID] = true
		}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RelationshipChurn counts relationship updates across payloads, for the
// rebuild impact score.
func RelationshipChurn(payloads []models.ChangelogPayload) int {
	n := 0
	for _, p := range payloads {
		n += len(p.RelationshipUpdates)
	}
	return n
}

func mergeMeta(base, update map[string]string) map[string]string {
	if len(update) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(update))
	}
	for k, v := range update {
		base[k] = v
	}
	return base
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
