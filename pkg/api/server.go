// Package api exposes the HTTP surface: resource intake, campaign and entity
// management, planning-context search, and the admin endpoints.
package api

import (
	"context"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/database"
	"github.com/loresmith/loresmith/pkg/planning"
	"github.com/loresmith/loresmith/pkg/queue"
	"github.com/loresmith/loresmith/pkg/rebuild"
	"github.com/loresmith/loresmith/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	cfg           *config.Config
	dbClient      *database.Client
	files         *services.FileService
	campaigns     *services.CampaignService
	entities      *services.EntityService
	digests       *services.DigestService
	notifications *services.NotificationService
	planner       *planning.Service
	trigger       *rebuild.Trigger
	workerPool    *queue.WorkerPool
	logger        *slog.Logger

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	files *services.FileService,
	campaigns *services.CampaignService,
	entities *services.EntityService,
	digests *services.DigestService,
	notifications *services.NotificationService,
	planner *planning.Service,
	trigger *rebuild.Trigger,
	workerPool *queue.WorkerPool,
	logger *slog.Logger,
) *Server {
	s := &Server{
		cfg:           cfg,
		dbClient:      dbClient,
		files:         files,
		campaigns:     campaigns,
		entities:      entities,
		digests:       digests,
		notifications: notifications,
		planner:       planner,
		trigger:       trigger,
		workerPool:    workerPool,
		logger:        logger.With("component", "api"),
	}
	s.echo = s.buildEcho()
	return s
}

func (s *Server) buildEcho() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())

	// Health is unauthenticated so orchestrators can probe it.
	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")
	v1.Use(s.bearerAuth())

	v1.POST("/files/upload", s.uploadFileHandler)
	v1.GET("/files", s.listFilesHandler)
	v1.GET("/files/*", s.getFileHandler)

	v1.POST("/campaigns", s.createCampaignHandler)
	v1.GET("/campaigns", s.listCampaignsHandler)
	v1.GET("/campaigns/:id", s.getCampaignHandler)
	v1.DELETE("/campaigns/:id", s.archiveCampaignHandler)
	v1.POST("/campaigns/:id/resources", s.linkResourceHandler)
	v1.GET("/campaigns/:id/rebuilds", s.listRebuildsHandler)

	v1.GET("/campaigns/:id/entities", s.listEntitiesHandler)
	v1.GET("/campaigns/:id/entities/:entity_id", s.getEntityHandler)
	v1.POST("/campaigns/:id/entities/:entity_id/approve", s.approveEntityHandler)
	v1.POST("/campaigns/:id/entities/:entity_id/reject", s.rejectEntityHandler)

	v1.POST("/campaigns/:id/search", s.searchHandler)

	v1.PUT("/campaigns/:id/digests/:session_number", s.upsertDigestHandler)
	v1.GET("/campaigns/:id/digests/:session_number", s.getDigestHandler)
	v1.GET("/campaigns/:id/digests", s.listDigestsHandler)

	v1.GET("/notifications", s.listNotificationsHandler)
	v1.POST("/notifications/:id/read", s.markNotificationReadHandler)

	v1.POST("/admin/reembed", s.adminReembedHandler)

	return e
}

// Start begins serving on addr. Blocks until the listener stops.
func (s *Server) Start(addr string) error {
	s.logger.Info("API server listening", "addr", addr)
	s.http = &http.Server{Addr: addr, Handler: s.echo}
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
