// Package entityextract turns campaign text into typed entities and
// relationship edges via a structured-output LLM call.
//
// The package owns the prompt shape, the response schema, and response
// validation. Parse failures are retried once with the same input before the
// chunk is reported as failed to the staging layer.
package entityextract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/loresmith/loresmith/pkg/llm"
	"github.com/loresmith/loresmith/pkg/models"
)

// Entity types the graph understands. Unknown types from the model are
// coerced to "concept" rather than dropped.
const (
	TypeCharacter = "character"
	TypeLocation  = "location"
	TypeFaction   = "faction"
	TypeItem      = "item"
	TypeEvent     = "event"
	TypeConcept   = "concept"
)

var knownEntityTypes = map[string]bool{
	TypeCharacter: true,
	TypeLocation:  true,
	TypeFaction:   true,
	TypeItem:      true,
	TypeEvent:     true,
	TypeConcept:   true,
}

// responseSchema is the structured-output contract sent with every call.
var responseSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "entities": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "entity_type": {"type": "string", "enum": ["character", "location", "faction", "item", "event", "concept"]},
          "name": {"type": "string"},
          "content": {"type": "string"},
          "confidence": {"type": "number"},
          "relations": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "relationship_type": {"type": "string"},
                "target_id": {"type": "string"},
                "strength": {"type": "number"}
              },
              "required": ["relationship_type", "target_id"],
              "additionalProperties": false
            }
          }
        },
        "required": ["id", "entity_type", "name", "content"],
        "additionalProperties": false
      }
    }
  },
  "required": ["entities"],
  "additionalProperties": false
}`)

const systemPrompt = `You are a tabletop-RPG lore archivist. Extract every distinct entity (characters, locations, factions, items, events, concepts) from the provided campaign text, along with relationships between them. Entity ids must be the campaign id, an underscore, then the lowercased snake_case entity name. Relationship target_id values use the same scheme. Only extract what the text states; do not invent.`

// Request describes one extraction call.
type Request struct {
	Text       string
	SourceName string
	CampaignID string
	SourceID   string
	SourceType string
	Metadata   map[string]string
}

// Service performs LLM entity extraction.
type Service struct {
	provider  llm.Client
	maxTokens int
	logger    *slog.Logger
}

// NewService creates an extraction service. maxTokens bounds the response.
func NewService(provider llm.Client, maxTokens int, logger *slog.Logger) *Service {
	return &Service{
		provider:  provider,
		maxTokens: maxTokens,
		logger:    logger.With("component", "entityextract"),
	}
}

type response struct {
	Entities []models.ExtractedEntity `json:"entities"`
}

// Extract runs one extraction call and validates the result. A malformed
// response is retried once; rate-limit errors propagate untouched so the
// caller can pause.
func (s *Service) Extract(ctx context.Context, req Request) ([]models.ExtractedEntity, error) {
	llmReq := llm.StructuredRequest{
		System:     systemPrompt,
		User:       buildPrompt(req),
		SchemaName: "entity_extraction",
		Schema:     responseSchema,
		MaxTokens:  s.maxTokens,
	}

	content, err := s.provider.CompleteStructured(ctx, llmReq)
	if err != nil {
		return nil, err
	}

	entities, parseErr := parseResponse(content)
	if parseErr != nil {
		s.logger.Warn("unparseable extraction response, retrying once",
			"source_id", req.SourceID, "error", parseErr)
		content, err = s.provider.CompleteStructured(ctx, llmReq)
		if err != nil {
			return nil, err
		}
		entities, parseErr = parseResponse(content)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing extraction response after retry: %w", parseErr)
		}
	}

	return normalize(entities, req.CampaignID), nil
}

func parseResponse(content string) ([]models.ExtractedEntity, error) {
	var resp response
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return nil, err
	}
	return resp.Entities, nil
}

func buildPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Campaign id: %s\n", req.CampaignID)
	if req.SourceName != "" {
		fmt.Fprintf(&b, "Source: %s (%s)\n", req.SourceName, req.SourceType)
	}
	b.WriteString("\nText:\n")
	b.WriteString(req.Text)
	return b.String()
}

// normalize drops unusable entities, coerces unknown types, and guarantees
// campaign-scoped ids. Relation target ids are left for the staging layer to
// prefix, since cross-chunk merging happens there.
func normalize(entities []models.ExtractedEntity, campaignID string) []models.ExtractedEntity {
	out := make([]models.ExtractedEntity, 0, len(entities))
	for _, e := range entities {
		e.Name = strings.TrimSpace(e.Name)
		e.Content = strings.TrimSpace(e.Content)
		if e.Name == "" || e.Content == "" {
			continue
		}

		e.EntityType = strings.ToLower(strings.TrimSpace(e.EntityType))
		if !knownEntityTypes[e.EntityType] {
			e.EntityType = TypeConcept
		}

		if e.ID == "" {
			e.ID = EntityID(campaignID, e.Name)
		} else if !strings.HasPrefix(e.ID, campaignID+"_") {
			e.ID = campaignID + "_" + e.ID
		}

		relations := e.Relations[:0]
		for _, r := range e.Relations {
			if r.RelationshipType == "" || r.TargetID == "" {
				continue
			}
			relations = append(relations, r)
		}
		e.Relations = relations

		out = append(out, e)
	}
	return out
}

// EntityID derives the canonical campaign-scoped id from an entity name.
func EntityID(campaignID, name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(slug))
	lastUnderscore := false
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return campaignID + "_" + strings.TrimSuffix(b.String(), "_")
}
