package graph

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/entity"
	"github.com/loresmith/loresmith/ent/entityrelationship"
	"github.com/loresmith/loresmith/ent/predicate"
)

// DefaultMaxDepth bounds neighbor traversals unless the caller overrides it.
const DefaultMaxDepth = 2

// DefaultNeighborCap is the global cap on traversal results.
const DefaultNeighborCap = 100

// Neighbor is one traversal hit.
type Neighbor struct {
	EntityID         string `json:"entity_id"`
	RelationshipType string `json:"relationship_type"`
	Hop              int    `json:"hop"`
}

// GetNeighbors runs a breadth-first traversal from entityID, following edges
// in both directions, bounded by maxDepth and a global result cap. The start
// entity itself is not included.
func (s *Service) GetNeighbors(ctx context.Context, campaignID, entityID string, maxDepth, limit int) ([]Neighbor, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if limit <= 0 {
		limit = DefaultNeighborCap
	}

	visited := map[string]bool{entityID: true}
	frontier := []string{entityID}
	var result []Neighbor

	for hop := 1; hop <= maxDepth && len(frontier) > 0 && len(result) < limit; hop++ {
		edges, err := s.client.EntityRelationship.Query().
			Where(
				entityrelationship.CampaignIDEQ(campaignID),
				entityrelationship.Or(
					entityrelationship.FromEntityIDIn(frontier...),
					entityrelationship.ToEntityIDIn(frontier...),
				),
			).
			Order(ent.Asc(entityrelationship.FieldCreatedAt), ent.Asc(entityrelationship.FieldID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading edges at hop %d from %s: %w", hop, entityID, err)
		}

		inFrontier := make(map[string]bool, len(frontier))
		for _, id := range frontier {
			inFrontier[id] = true
		}

		var next []string
		for _, e := range edges {
			for _, endpoint := range []string{e.FromEntityID, e.ToEntityID} {
				if visited[endpoint] || !inFrontier[otherEndpoint(e, endpoint)] {
					continue
				}
				visited[endpoint] = true
				next = append(next, endpoint)
				result = append(result, Neighbor{
					EntityID:         endpoint,
					RelationshipType: e.RelationshipType,
					Hop:              hop,
				})
				if len(result) >= limit {
					return result, nil
				}
			}
		}
		frontier = next
	}
	return result, nil
}

func otherEndpoint(e *ent.EntityRelationship, endpoint string) string {
	if e.FromEntityID == endpoint {
		return e.ToEntityID
	}
	return e.FromEntityID
}

// SearchEntitiesByName finds campaign entities whose name matches any query
// name by case-insensitive substring in either direction: the entity name
// containing the query, or the query containing the entity name.
func (s *Service) SearchEntitiesByName(ctx context.Context, campaignID string, names []string, limit int) ([]*ent.Entity, error) {
	if len(names) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	preds := make([]predicate.Entity, 0, 2*len(names))
	for _, n := range names {
		q := strings.ToLower(strings.TrimSpace(n))
		if q == "" {
			continue
		}
		preds = append(preds,
			entity.NameContainsFold(q),
			// An empty name would be a substring of everything.
			entity.And(entity.NameNEQ(""), nameWithin(q)),
		)
	}
	if len(preds) == 0 {
		return nil, nil
	}

	rows, err := s.client.Entity.Query().
		Where(entity.CampaignIDEQ(campaignID), entity.Or(preds...)).
		Order(ent.Asc(entity.FieldCreatedAt), ent.Asc(entity.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("searching entities by name: %w", err)
	}
	return rows, nil
}

// nameWithin matches rows whose name occurs case-insensitively inside text.
// text must already be lowercased.
func nameWithin(text string) predicate.Entity {
	return func(sel *sql.Selector) {
		sel.Where(sql.P(func(b *sql.Builder) {
			b.WriteString("position(lower(").WriteString(sel.C(entity.FieldName)).WriteString(") in ")
			b.Arg(text)
			b.WriteString(") > 0")
		}))
	}
}
