package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// listEntitiesHandler handles GET /api/v1/campaigns/:id/entities.
// Supports entity_type, limit, and offset query parameters.
func (s *Server) listEntitiesHandler(c *echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	entities, err := s.entities.List(c.Request().Context(), tenantFrom(c), c.Param("id"),
		c.QueryParam("entity_type"), limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, entities)
}

// getEntityHandler handles GET /api/v1/campaigns/:id/entities/:entity_id.
// Returns the entity with its graph neighborhood.
func (s *Server) getEntityHandler(c *echo.Context) error {
	result, err := s.entities.Get(c.Request().Context(), tenantFrom(c), c.Param("id"), c.Param("entity_id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// approveEntityHandler handles POST /api/v1/campaigns/:id/entities/:entity_id/approve.
func (s *Server) approveEntityHandler(c *echo.Context) error {
	entity, err := s.entities.Approve(c.Request().Context(), tenantFrom(c), c.Param("id"), c.Param("entity_id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, entity)
}

// rejectEntityHandler handles POST /api/v1/campaigns/:id/entities/:entity_id/reject.
func (s *Server) rejectEntityHandler(c *echo.Context) error {
	entity, err := s.entities.Reject(c.Request().Context(), tenantFrom(c), c.Param("id"), c.Param("entity_id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, entity)
}
