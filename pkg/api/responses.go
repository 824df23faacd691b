package api

import (
	"time"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/pkg/queue"
)

// FileResponse is the API view of one uploaded resource.
type FileResponse struct {
	FileKey      string    `json:"file_key"`
	FileName     string    `json:"file_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toFileResponse(f *ent.File) *FileResponse {
	resp := &FileResponse{
		FileKey:     f.ID,
		FileName:    f.FileName,
		ContentType: f.ContentType,
		Size:        f.Size,
		Status:      string(f.Status),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
	if f.ErrorMessage != nil {
		resp.ErrorMessage = *f.ErrorMessage
	}
	return resp
}

// LinkResourceResponse acknowledges a resource link.
type LinkResourceResponse struct {
	CampaignID string `json:"campaign_id"`
	FileKey    string `json:"file_key"`
	Status     string `json:"status"`
}

// ReembedResponse reports how many rebuilds the admin re-embed enqueued.
type ReembedResponse struct {
	RebuildsEnqueued int `json:"rebuilds_enqueued"`
}

// HealthCheck is one named component check in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /health. Queue carries worker and queue
// depth statistics when the worker pool is running.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
	Queue   *queue.PoolHealth      `json:"queue,omitempty"`
}
