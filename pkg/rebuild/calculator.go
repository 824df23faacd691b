package rebuild

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/pkg/graph"
)

// Calculator recomputes the derived importance rows from the live graph. The
// staging pipeline invokes it once per ingested resource; the rebuild
// processor reuses it for scoped recomputation.
type Calculator struct {
	graph  *graph.Service
	logger *slog.Logger
}

// NewCalculator creates an importance calculator over the graph service.
func NewCalculator(graphSvc *graph.Service, logger *slog.Logger) *Calculator {
	return &Calculator{
		graph:  graphSvc,
		logger: logger.With("component", "importance"),
	}
}

// RecomputeImportance rewrites every importance row of a campaign from the
// current graph and community structure.
func (c *Calculator) RecomputeImportance(ctx context.Context, campaignID string) error {
	entities, err := c.graph.ListEntities(ctx, campaignID, "", 0, 0)
	if err != nil {
		return fmt.Errorf("listing entities for %s: %w", campaignID, err)
	}
	if len(entities) == 0 {
		return nil
	}
	edges, err := c.graph.ListEdges(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("listing edges for %s: %w", campaignID, err)
	}
	communities, err := c.graph.ListCommunities(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("listing communities for %s: %w", campaignID, err)
	}

	cg := newCampaignGraph(entities, edges)
	rows := importanceRows(cg, hierarchyLevels(communities), nil)
	if err := c.graph.UpsertImportance(ctx, campaignID, rows); err != nil {
		return fmt.Errorf("writing importance for %s: %w", campaignID, err)
	}
	c.logger.Debug("importance recomputed", "campaign_id", campaignID, "entities", len(rows))
	return nil
}

// hierarchyLevels maps each entity to the deepest community level holding it.
// Entities outside every community sit at level zero.
func hierarchyLevels(communities []*ent.Community) map[string]int {
	levels := make(map[string]int)
	for _, comm := range communities {
		for _, entityID := range comm.EntityIds {
			if level, ok := levels[entityID]; !ok || comm.Level > level {
				levels[entityID] = comm.Level
			}
		}
	}
	return levels
}

// importanceRows computes the metric columns for every entity in the graph,
// restricted to scope when non-nil. Metrics are always computed over the full
// graph so scoped rows carry globally consistent values.
func importanceRows(cg *campaignGraph, levels map[string]int, scope map[string]bool) []graph.ImportanceInput {
	pageranks := cg.pageRank()
	betweennesses := cg.betweenness()

	var maxPR, maxBtw float64
	for _, v := range pageranks {
		if v > maxPR {
			maxPR = v
		}
	}
	for _, v := range betweennesses {
		if v > maxBtw {
			maxBtw = v
		}
	}

	rows := make([]graph.ImportanceInput, 0, len(cg.ids))
	for _, id := range cg.ids {
		if scope != nil && !scope[id] {
			continue
		}
		level := levels[id]
		rows = append(rows, graph.ImportanceInput{
			EntityID:       id,
			PageRank:       pageranks[id],
			Betweenness:    betweennesses[id],
			HierarchyLevel: level,
			CompositeScore: compositeScore(pageranks[id], maxPR, betweennesses[id], maxBtw, level),
		})
	}
	return rows
}
