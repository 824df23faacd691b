package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// listNotificationsHandler handles GET /api/v1/notifications.
// Supports unread=true and limit query parameters.
func (s *Server) listNotificationsHandler(c *echo.Context) error {
	unreadOnly := c.QueryParam("unread") == "true"
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	rows, err := s.notifications.List(c.Request().Context(), tenantFrom(c), unreadOnly, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// markNotificationReadHandler handles POST /api/v1/notifications/:id/read.
func (s *Server) markNotificationReadHandler(c *echo.Context) error {
	if err := s.notifications.MarkRead(c.Request().Context(), tenantFrom(c), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "read"})
}
