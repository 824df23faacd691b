package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/loresmith/loresmith/pkg/planning"
)

// searchHandler handles POST /api/v1/campaigns/:id/search.
// Runs a planning-context search over the campaign's session digests.
func (s *Server) searchHandler(c *echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	// The planner is not tenant-aware; ownership is checked here.
	campaignID := c.Param("id")
	if _, err := s.campaigns.Get(c.Request().Context(), tenantFrom(c), campaignID); err != nil {
		return mapServiceError(err)
	}

	opts := planning.SearchOptions{
		Limit:        req.Limit,
		SectionTypes: req.SectionTypes,
		ApplyRecency: req.ApplyRecency,
		DecayRate:    req.DecayRate,
	}
	if req.From != "" {
		from, err := time.Parse(time.RFC3339, req.From)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "from must be RFC 3339")
		}
		opts.From = &from
	}
	if req.To != "" {
		to, err := time.Parse(time.RFC3339, req.To)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "to must be RFC 3339")
		}
		opts.To = &to
	}

	result, err := s.planner.Search(c.Request().Context(), campaignID, req.Query, opts)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
