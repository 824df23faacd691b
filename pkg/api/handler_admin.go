package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// adminReembedHandler handles POST /api/v1/admin/reembed.
// Queues a full rebuild (with re-embedding) for every campaign of every
// tenant. Used after an embedding model change.
func (s *Server) adminReembedHandler(c *echo.Context) error {
	if !isAdmin(c) {
		return echo.NewHTTPError(http.StatusForbidden, "admin token required")
	}
	count, err := s.trigger.ForceFullAll(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, &ReembedResponse{RebuildsEnqueued: count})
}
