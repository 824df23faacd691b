// Package planning is the read path for session preparation: semantic search
// over digest sections with recency weighting, plus graph context for
// entities named in the query.
package planning

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/embedding"
	"github.com/loresmith/loresmith/pkg/graph"
	"github.com/loresmith/loresmith/pkg/llm"
	"github.com/loresmith/loresmith/pkg/vector"
)

const (
	// unnumberedWeight applies to digest sections without a session number;
	// they can't participate in recency decay.
	unnumberedWeight = 0.5

	// maxNamedEntities bounds the graph context attached to one search.
	maxNamedEntities = 5
)

// EntityFinder is the slice of the graph service the search needs.
type EntityFinder interface {
	SearchEntitiesByName(ctx context.Context, campaignID string, names []string, limit int) ([]*ent.Entity, error)
	GetNeighbors(ctx context.Context, campaignID, entityID string, maxDepth, limit int) ([]graph.Neighbor, error)
}

// TelemetryFunc observes one completed search.
type TelemetryFunc func(campaignID string, duration time.Duration, results int)

// SearchOptions tune one context search.
type SearchOptions struct {
	Limit        int
	From         *time.Time
	To           *time.Time
	SectionTypes []string
	ApplyRecency bool
	// DecayRate overrides the configured default when positive.
	DecayRate float64
}

// ResultItem is one matched digest section.
type ResultItem struct {
	DigestID      string     `json:"digest_id"`
	SessionNumber int        `json:"session_number,omitempty"`
	SessionDate   *time.Time `json:"session_date,omitempty"`
	SectionType   string     `json:"section_type"`
	Snippet       string     `json:"snippet"`
	Score         float64    `json:"score"`
	WeightedScore float64    `json:"weighted_score"`
}

// RelatedEntity is one graph entity resolved from the query text, with its
// 2-hop neighborhood.
type RelatedEntity struct {
	EntityID   string           `json:"entity_id"`
	Name       string           `json:"name"`
	EntityType string           `json:"entity_type"`
	Neighbors  []graph.Neighbor `json:"neighbors,omitempty"`
}

// SearchResult is the planning-context answer.
type SearchResult struct {
	Items           []ResultItem    `json:"items"`
	RelatedEntities []RelatedEntity `json:"related_entities,omitempty"`
}

// Service runs planning-context searches.
type Service struct {
	embedder  *embedding.Service
	index     vector.Index
	graph     EntityFinder
	provider  llm.Client
	cfg       *config.PipelineConfig
	telemetry TelemetryFunc
	logger    *slog.Logger
}

// NewService creates the planning-context service. telemetry may be nil.
func NewService(
	embedder *embedding.Service,
	index vector.Index,
	finder EntityFinder,
	provider llm.Client,
	cfg *config.PipelineConfig,
	telemetry TelemetryFunc,
	logger *slog.Logger,
) *Service {
	return &Service{
		embedder:  embedder,
		index:     index,
		graph:     finder,
		provider:  provider,
		cfg:       cfg,
		telemetry: telemetry,
		logger:    logger.With("component", "planning"),
	}
}

// Search embeds the query, retrieves digest sections for the campaign,
// applies filters and recency weighting, and attaches graph context for
// entities named in the query.
func (s *Service) Search(ctx context.Context, campaignID, query string, opts SearchOptions) (*SearchResult, error) {
	start := time.Now()
	if opts.Limit <= 0 {
		opts.Limit = 10
	}

	queryVec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding planning query: %w", err)
	}

	matches, err := s.index.Query(ctx, vector.Query{
		Vector: queryVec,
		TopK:   2 * opts.Limit,
		Filter: map[string]string{
			"campaign_id": campaignID,
			"contentType": vector.ContentTypeSessionDigest,
		},
		WithMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("searching digest sections: %w", err)
	}

	items := s.collect(matches, opts)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].WeightedScore != items[j].WeightedScore {
			return items[i].WeightedScore > items[j].WeightedScore
		}
		return items[i].Score > items[j].Score
	})
	if len(items) > opts.Limit {
		items = items[:opts.Limit]
	}

	result := &SearchResult{
		Items:           items,
		RelatedEntities: s.relatedEntities(ctx, campaignID, query),
	}

	duration := time.Since(start)
	s.logger.Debug("planning search complete",
		"campaign_id", campaignID, "results", len(items), "duration", duration)
	if s.telemetry != nil {
		s.telemetry(campaignID, duration, len(items))
	}
	return result, nil
}

// collect filters raw matches and applies recency weighting.
func (s *Service) collect(matches []vector.Match, opts SearchOptions) []ResultItem {
	maxSession := 0
	for _, m := range matches {
		if n := metaInt(m.Metadata, "session_number"); n > maxSession {
			maxSession = n
		}
	}

	decay := opts.DecayRate
	if decay <= 0 {
		decay = s.cfg.PlanningDecayRate
	}

	items := make([]ResultItem, 0, len(matches))
	for _, m := range matches {
		sectionType := metaString(m.Metadata, "section_type")
		if len(opts.SectionTypes) > 0 && !contains(opts.SectionTypes, sectionType) {
			continue
		}

		var sessionDate *time.Time
		if ts := metaFloat(m.Metadata, "session_date"); ts > 0 {
			t := time.Unix(int64(ts), 0).UTC()
			sessionDate = &t
		}
		// A date filter excludes undated sections.
		if opts.From != nil && (sessionDate == nil || sessionDate.Before(*opts.From)) {
			continue
		}
		if opts.To != nil && (sessionDate == nil || sessionDate.After(*opts.To)) {
			continue
		}

		item := ResultItem{
			DigestID:      metaString(m.Metadata, "digest_id"),
			SessionNumber: metaInt(m.Metadata, "session_number"),
			SessionDate:   sessionDate,
			SectionType:   sectionType,
			Snippet:       metaString(m.Metadata, "snippet"),
			Score:         float64(m.Score),
			WeightedScore: float64(m.Score),
		}
		if opts.ApplyRecency {
			if item.SessionNumber > 0 {
				item.WeightedScore *= math.Exp(-decay * float64(maxSession-item.SessionNumber))
			} else {
				item.WeightedScore *= unnumberedWeight
			}
		}
		items = append(items, item)
	}
	return items
}

// relatedEntities resolves entity names from the query and expands each hit
// by two hops. Name extraction is best-effort: any provider failure just
// yields no graph context, the semantic results stand alone.
func (s *Service) relatedEntities(ctx context.Context, campaignID, query string) []RelatedEntity {
	names, err := s.extractNames(ctx, query)
	if err != nil {
		s.logger.Debug("entity name extraction failed, continuing without graph context", "error", err)
		return nil
	}
	if len(names) == 0 {
		return nil
	}

	entities, err := s.graph.SearchEntitiesByName(ctx, campaignID, names, maxNamedEntities)
	if err != nil {
		s.logger.Warn("entity lookup failed", "campaign_id", campaignID, "error", err)
		return nil
	}
	if len(entities) > maxNamedEntities {
		entities = entities[:maxNamedEntities]
	}

	related := make([]RelatedEntity, 0, len(entities))
	for _, entity := range entities {
		neighbors, err := s.graph.GetNeighbors(ctx, campaignID, entity.ID, 2, 0)
		if err != nil {
			s.logger.Warn("neighbor expansion failed", "entity_id", entity.ID, "error", err)
			neighbors = nil
		}
		related = append(related, RelatedEntity{
			EntityID:   entity.ID,
			Name:       entity.Name,
			EntityType: entity.EntityType,
			Neighbors:  neighbors,
		})
	}
	return related
}

func metaString(meta map[string]any, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}

func metaFloat(meta map[string]any, key string) float64 {
	switch v := meta[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func metaInt(meta map[string]any, key string) int {
	return int(metaFloat(meta, key))
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
