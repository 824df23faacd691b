package api

import "github.com/loresmith/loresmith/pkg/models"

// CreateCampaignRequest is the body of POST /api/v1/campaigns.
type CreateCampaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LinkResourceRequest is the body of POST /api/v1/campaigns/:id/resources.
type LinkResourceRequest struct {
	FileKey string `json:"file_key"`
}

// SearchRequest is the body of POST /api/v1/campaigns/:id/search.
type SearchRequest struct {
	Query        string   `json:"query"`
	Limit        int      `json:"limit,omitempty"`
	From         string   `json:"from,omitempty"`
	To           string   `json:"to,omitempty"`
	SectionTypes []string `json:"section_types,omitempty"`
	ApplyRecency bool     `json:"apply_recency,omitempty"`
	DecayRate    float64  `json:"decay_rate,omitempty"`
}

// UpsertDigestRequest is the body of PUT /api/v1/campaigns/:id/digests/:session_number.
type UpsertDigestRequest struct {
	SessionDate string                 `json:"session_date,omitempty"`
	Sections    []models.DigestSection `json:"sections"`
}
