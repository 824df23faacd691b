package planning

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loresmith/loresmith/pkg/llm"
)

var namesSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"names": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Proper names of characters, places, factions, or items mentioned in the question"
		}
	},
	"required": ["names"],
	"additionalProperties": false
}`)

const namesSystemPrompt = `You extract proper names from a game master's planning question. ` +
	`Return only names of specific characters, places, factions, or items that appear in the question text. ` +
	`Return an empty list when the question names nothing specific.`

const namesMaxTokens = 256

// extractNames asks the model for entity names mentioned in the query.
func (s *Service) extractNames(ctx context.Context, query string) ([]string, error) {
	raw, err := s.provider.CompleteStructured(ctx, llm.StructuredRequest{
		System:     namesSystemPrompt,
		User:       query,
		SchemaName: "query_entity_names",
		Schema:     namesSchema,
		MaxTokens:  namesMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Names []string `json:"names"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parsing name extraction response: %w", err)
	}

	names := make([]string, 0, len(parsed.Names))
	for _, name := range parsed.Names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names, nil
}
