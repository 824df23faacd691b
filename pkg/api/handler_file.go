package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/loresmith/loresmith/pkg/services"
)

// uploadFileHandler handles POST /api/v1/files/upload.
// Accepts a multipart form with one "file" part; the file name becomes part
// of the returned file_key.
func (s *Server) uploadFileHandler(c *echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, `multipart field "file" is required`)
	}
	if fileHeader.Size > services.MaxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file exceeds maximum size of %d bytes", services.MaxUploadSize))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}

	row, err := s.files.Upload(c.Request().Context(), tenantFrom(c), services.UploadFileInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, toFileResponse(row))
}

// getFileHandler handles GET /api/v1/files/<file_key>. File keys contain
// slashes (staging/<tenant>/<name>), hence the wildcard route.
func (s *Server) getFileHandler(c *echo.Context) error {
	fileKey := c.Param("*")
	if fileKey == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "file_key is required")
	}
	row, err := s.files.Get(c.Request().Context(), tenantFrom(c), fileKey)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toFileResponse(row))
}

// listFilesHandler handles GET /api/v1/files.
func (s *Server) listFilesHandler(c *echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	rows, err := s.files.List(c.Request().Context(), tenantFrom(c), limit)
	if err != nil {
		return mapServiceError(err)
	}
	resp := make([]*FileResponse, len(rows))
	for i, row := range rows {
		resp[i] = toFileResponse(row)
	}
	return c.JSON(http.StatusOK, resp)
}
