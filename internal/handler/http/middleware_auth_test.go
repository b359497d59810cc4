package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-user-admin/internal/service"
	"github.com/MKhiriev/go-user-admin/internal/utils"
	"github.com/MKhiriev/go-user-admin/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		verifyToken string
		verifyErr   error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no header → 403",
			authHeader:  "",
			wantStatus:  http.StatusForbidden,
			wantMessage: "NO_TOKEN_PROVIDED",
		},
		{
			name:        "scheme without token → 403",
			authHeader:  "Bearer",
			wantStatus:  http.StatusForbidden,
			wantMessage: "NO_TOKEN_PROVIDED",
		},
		{
			name:        "invalid token → 401",
			authHeader:  "Bearer forged",
			verifyToken: "forged",
			verifyErr:   service.ErrInvalidOrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "INVALID_OR_EXPIRED_TOKEN",
		},
		{
			name:        "scheme is not checked",
			authHeader:  "Token " + goodToken,
			verifyToken: goodToken,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "valid bearer token",
			authHeader:  "Bearer " + goodToken,
			verifyToken: goodToken,
			wantStatus:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestRouter(t)
			if tt.verifyToken != "" {
				token := models.Token{}
				if tt.verifyErr == nil {
					token = models.Token{SignedString: tt.verifyToken, Username: "admin"}
				}
				d.tokens.EXPECT().Verify(gomock.Any(), tt.verifyToken).Return(token, tt.verifyErr)
			}
			if tt.wantStatus == http.StatusOK {
				d.users.EXPECT().List(gomock.Any()).Return([]models.User{}, nil)
			}

			rr := do(t, d.router, http.MethodGet, "/users", nil, tt.authHeader)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				body := decodeBody[models.MessageResponse](t, rr)
				assert.Equal(t, tt.wantMessage, body.Message)
				assert.Equal(t, models.CodeUnauthorized, body.Code)
			}
		})
	}
}

func TestAuth_StoresUsernameInContext(t *testing.T) {
	d := newTestRouter(t)
	d.expectGoodToken()

	d.users.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.User, error) {
		username, ok := utils.GetUsernameFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "admin", username)
		return nil, nil
	})

	rr := do(t, d.router, http.MethodGet, "/users", nil, "Bearer "+goodToken)

	assert.Equal(t, http.StatusOK, rr.Code)
}
