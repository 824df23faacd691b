package staging

import (
	"sort"
	"strings"

	"github.com/loresmith/loresmith/pkg/models"
)

// mergeEntities folds a chunk's entities into the accumulated map by id:
// content grows by concatenation of unseen text, relations union by
// (type, target), metadata keys merge with the newer chunk winning.
func mergeEntities(acc map[string]models.ExtractedEntity, entities []models.ExtractedEntity) {
	for _, e := range entities {
		existing, ok := acc[e.ID]
		if !ok {
			acc[e.ID] = e
			continue
		}

		if e.Content != "" && !strings.Contains(existing.Content, e.Content) {
			if existing.Content == "" {
				existing.Content = e.Content
			} else {
				existing.Content += "\n\n" + e.Content
			}
		}
		if e.Confidence != nil {
			if existing.Confidence == nil || *e.Confidence > *existing.Confidence {
				existing.Confidence = e.Confidence
			}
		}

		existing.Relations = unionRelations(existing.Relations, e.Relations)

		if len(e.Metadata) > 0 {
			if existing.Metadata == nil {
				existing.Metadata = make(map[string]string, len(e.Metadata))
			}
			for k, v := range e.Metadata {
				existing.Metadata[k] = v
			}
		}
		acc[e.ID] = existing
	}
}

func unionRelations(a, b []models.ExtractedRelation) []models.ExtractedRelation {
	seen := make(map[string]bool, len(a))
	for _, r := range a {
		seen[r.RelationshipType+"|"+r.TargetID] = true
	}
	out := a
	for _, r := range b {
		key := r.RelationshipType + "|" + r.TargetID
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// prefixTarget guarantees a relation target id is campaign-scoped.
func prefixTarget(campaignID, targetID string) string {
	if strings.HasPrefix(targetID, campaignID+"_") {
		return targetID
	}
	return campaignID + "_" + targetID
}

// sortedEntityIDs returns the merged map keys in stable order so persistence
// and its changelog entries are deterministic.
func sortedEntityIDs(m map[string]models.ExtractedEntity) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
