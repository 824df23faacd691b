package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/pkg/config"
)

func authTestServer() *Server {
	cfg := config.DefaultConfig()
	cfg.Server.Tokens = []config.APIToken{
		{Token: "acme-token", Tenant: "acme"},
		{Token: "root-token", Tenant: "ops", Admin: true},
	}
	return &Server{cfg: cfg}
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		expectCode   int
		expectTenant string
		expectAdmin  bool
	}{
		{
			name:       "missing header rejected",
			header:     "",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer scheme rejected",
			header:     "Basic acme-token",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "unknown token rejected",
			header:     "Bearer wrong-token",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:         "valid token resolves tenant",
			header:       "Bearer acme-token",
			expectCode:   http.StatusOK,
			expectTenant: "acme",
		},
		{
			name:         "admin token sets admin flag",
			header:       "Bearer root-token",
			expectCode:   http.StatusOK,
			expectTenant: "ops",
			expectAdmin:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := authTestServer()
			e := echo.New()

			var gotTenant string
			var gotAdmin bool
			e.GET("/probe", func(c *echo.Context) error {
				gotTenant = tenantFrom(c)
				gotAdmin = isAdmin(c)
				return c.NoContent(http.StatusOK)
			}, s.bearerAuth())

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.expectCode, rec.Code)
			if tt.expectCode == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error": "Missing or invalid Authorization header"}`, rec.Body.String())
				return
			}
			assert.Equal(t, tt.expectTenant, gotTenant)
			assert.Equal(t, tt.expectAdmin, gotAdmin)
		})
	}
}

func TestAdminEndpointRequiresAdminToken(t *testing.T) {
	s := authTestServer()
	e := echo.New()
	e.POST("/api/v1/admin/reembed", s.adminReembedHandler, s.bearerAuth())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reembed", nil)
	req.Header.Set("Authorization", "Bearer acme-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
