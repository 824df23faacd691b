package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/loresmith/loresmith/pkg/services"
)

// createCampaignHandler handles POST /api/v1/campaigns.
func (s *Server) createCampaignHandler(c *echo.Context) error {
	var req CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	campaign, err := s.campaigns.Create(c.Request().Context(), tenantFrom(c), services.CreateCampaignInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, campaign)
}

// listCampaignsHandler handles GET /api/v1/campaigns.
func (s *Server) listCampaignsHandler(c *echo.Context) error {
	includeArchived := c.QueryParam("include_archived") == "true"
	campaigns, err := s.campaigns.List(c.Request().Context(), tenantFrom(c), includeArchived)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, campaigns)
}

// getCampaignHandler handles GET /api/v1/campaigns/:id.
func (s *Server) getCampaignHandler(c *echo.Context) error {
	campaign, err := s.campaigns.Get(c.Request().Context(), tenantFrom(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, campaign)
}

// archiveCampaignHandler handles DELETE /api/v1/campaigns/:id.
// Campaigns are archived, never hard-deleted.
func (s *Server) archiveCampaignHandler(c *echo.Context) error {
	campaign, err := s.campaigns.Archive(c.Request().Context(), tenantFrom(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, campaign)
}

// linkResourceHandler handles POST /api/v1/campaigns/:id/resources.
// Links a processed file to the campaign and queues entity extraction.
func (s *Server) linkResourceHandler(c *echo.Context) error {
	var req LinkResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.FileKey == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "file_key is required")
	}

	campaignID := c.Param("id")
	_, err := s.campaigns.LinkResource(c.Request().Context(), tenantFrom(c), campaignID, req.FileKey)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, &LinkResourceResponse{
		CampaignID: campaignID,
		FileKey:    req.FileKey,
		Status:     "queued",
	})
}

// listRebuildsHandler handles GET /api/v1/campaigns/:id/rebuilds.
func (s *Server) listRebuildsHandler(c *echo.Context) error {
	rebuilds, err := s.campaigns.ListRebuilds(c.Request().Context(), tenantFrom(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rebuilds)
}
