package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/loresmith/loresmith/pkg/services"
)

// upsertDigestHandler handles PUT /api/v1/campaigns/:id/digests/:session_number.
// The PUT is a full replacement of that session's digest and its vectors.
func (s *Server) upsertDigestHandler(c *echo.Context) error {
	sessionNumber, err := strconv.Atoi(c.Param("session_number"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "session_number must be an integer")
	}

	var req UpsertDigestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := services.UpsertDigestInput{Sections: req.Sections}
	if req.SessionDate != "" {
		date, err := time.Parse(time.RFC3339, req.SessionDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "session_date must be RFC 3339")
		}
		input.SessionDate = &date
	}

	digest, err := s.digests.Upsert(c.Request().Context(), tenantFrom(c), c.Param("id"), sessionNumber, input)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, digest)
}

// getDigestHandler handles GET /api/v1/campaigns/:id/digests/:session_number.
func (s *Server) getDigestHandler(c *echo.Context) error {
	sessionNumber, err := strconv.Atoi(c.Param("session_number"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "session_number must be an integer")
	}
	digest, err := s.digests.Get(c.Request().Context(), tenantFrom(c), c.Param("id"), sessionNumber)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, digest)
}

// listDigestsHandler handles GET /api/v1/campaigns/:id/digests.
func (s *Server) listDigestsHandler(c *echo.Context) error {
	digests, err := s.digests.List(c.Request().Context(), tenantFrom(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, digests)
}
