package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-admin/internal/config"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/mock"
	"github.com/MKhiriev/go-user-admin/internal/service"
	"github.com/MKhiriev/go-user-admin/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testOrigin = "http://localhost:3000"
	goodToken  = "good.token.value"
)

type testDeps struct {
	router  *chi.Mux
	users   *mock.MockUserService
	tokens  *mock.MockTokenService
	appInfo *mock.MockAppInfoService
}

// newTestRouter wires Handler.Init over gomock services.
func newTestRouter(t *testing.T) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		users:   mock.NewMockUserService(ctrl),
		tokens:  mock.NewMockTokenService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		UserService:    deps.users,
		TokenService:   deps.tokens,
		AppInfoService: deps.appInfo,
	}
	cfg := config.Server{AllowedOrigins: []string{testOrigin}, RequestTimeout: 5 * time.Second}

	deps.router = NewHandler(services, cfg, logger.Nop()).Init()
	return deps
}

// expectGoodToken makes the auth gate accept goodToken.
func (d testDeps) expectGoodToken() {
	d.tokens.EXPECT().Verify(gomock.Any(), goodToken).Return(models.Token{SignedString: goodToken, Username: "admin"}, nil)
}

func do(t *testing.T, router http.Handler, method, path string, body any, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresServerSettings(t *testing.T) {
	svc := &service.Services{}
	cfg := config.Server{AllowedOrigins: []string{testOrigin}, RequestTimeout: time.Second}

	h := NewHandler(svc, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, []string{testOrigin}, h.allowedOrigins)
	assert.Equal(t, time.Second, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_ProtectedRoutes_RequireToken(t *testing.T) {
	d := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodPost, "/users"},
		{http.MethodPut, "/users/1"},
		{http.MethodDelete, "/users/1"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rr := do(t, d.router, rt.method, rt.path, nil, "")

			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.Equal(t, "NO_TOKEN_PROVIDED", decodeBody[models.MessageResponse](t, rr).Message)
		})
	}
}

func TestInit_UnknownMethodOrPath_Returns404(t *testing.T) {
	d := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/login"},
		{http.MethodPatch, "/users"},
		{http.MethodPut, "/users"},
		{http.MethodPost, "/version"},
		{http.MethodGet, "/nonexistent"},
		{http.MethodGet, "/users/5"},
		{http.MethodPost, "/users/5"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rr := do(t, d.router, rt.method, rt.path, nil, "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_WrongMethodBody(t *testing.T) {
	d := newTestRouter(t)

	rr := do(t, d.router, http.MethodPatch, "/users/1", nil, "")

	require.Equal(t, http.StatusNotFound, rr.Code)
	body := decodeBody[models.ErrorResponse](t, rr)
	assert.Equal(t, models.CodeNotFound, body.Code)
	assert.Equal(t, "Not Found", body.Error)
}

func TestInit_Version(t *testing.T) {
	d := newTestRouter(t)
	d.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")

	rr := do(t, d.router, http.MethodGet, "/version", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	d := newTestRouter(t)

	tests := []struct {
		name        string
		origin      string
		wantAllowed bool
	}{
		{name: "configured origin", origin: testOrigin, wantAllowed: true},
		{name: "foreign origin", origin: "http://evil.example", wantAllowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/users", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
			rr := httptest.NewRecorder()

			d.router.ServeHTTP(rr, req)

			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rr.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestInit_RecoversFromPanic(t *testing.T) {
	d := newTestRouter(t)
	d.expectGoodToken()
	d.users.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]models.User, error) {
		panic("boom")
	})

	rr := do(t, d.router, http.MethodGet, "/users", nil, "Bearer "+goodToken)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
