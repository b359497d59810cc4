package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-user-admin/internal/service"
	"github.com/MKhiriev/go-user-admin/internal/store"
	"github.com/MKhiriev/go-user-admin/internal/validators"
	"github.com/MKhiriev/go-user-admin/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const bearer = "Bearer " + goodToken

var ada = models.User{ID: "1", FirstName: "Ada", LastName: "Lovelace", Username: "ada", Password: "password1"}

// ─────────────────────────────────────────────
// GET /users
// ─────────────────────────────────────────────

func TestListUsers(t *testing.T) {
	tests := []struct {
		name     string
		users    []models.User
		wantBody string
	}{
		{name: "empty set", users: []models.User{}, wantBody: "[]"},
		{name: "nil set", users: nil, wantBody: "[]"},
		{
			name:     "one record",
			users:    []models.User{ada},
			wantBody: `[{"id":"1","firstName":"Ada","middleName":"","lastName":"Lovelace","username":"ada","password":"password1"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestRouter(t)
			d.expectGoodToken()
			d.users.EXPECT().List(gomock.Any()).Return(tt.users, nil)

			rr := do(t, d.router, http.MethodGet, "/users", nil, bearer)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestListUsers_CorruptedStore(t *testing.T) {
	d := newTestRouter(t)
	d.expectGoodToken()
	d.users.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("listing users failed: %w", store.ErrCorruptedStore))

	rr := do(t, d.router, http.MethodGet, "/users", nil, bearer)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, models.ErrorResponse{Error: "internal server error", Code: models.CodeInternal},
		decodeBody[models.ErrorResponse](t, rr))
}

// ─────────────────────────────────────────────
// POST /users
// ─────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	d := newTestRouter(t)
	d.expectGoodToken()

	in := ada.WithID("")
	d.users.EXPECT().Create(gomock.Any(), in).Return(ada.WithID("4"), nil)

	rr := do(t, d.router, http.MethodPost, "/users", in, bearer)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, ada.WithID("4"), decodeBody[models.User](t, rr))
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		serviceErr error
		wantStatus int
		wantBody   models.ErrorResponse
	}{
		{
			name:       "missing field",
			body:       models.User{FirstName: "Ada"},
			serviceErr: fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrLastNameRequired),
			wantStatus: http.StatusBadRequest,
			wantBody:   models.ErrorResponse{Error: "All fields are required", Code: models.CodeValidation},
		},
		{
			name:       "write failure",
			body:       ada,
			serviceErr: fmt.Errorf("user creation ended with error: %w", store.ErrWritingStore),
			wantStatus: http.StatusInternalServerError,
			wantBody:   models.ErrorResponse{Error: "internal server error", Code: models.CodeInternal},
		},
		{
			name:       "malformed JSON",
			body:       `[1, 2`,
			wantStatus: http.StatusBadRequest,
			wantBody:   models.ErrorResponse{Error: "Invalid JSON was passed", Code: models.CodeBadRequest},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestRouter(t)
			d.expectGoodToken()
			if tt.serviceErr != nil {
				d.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)
			}

			rr := do(t, d.router, http.MethodPost, "/users", tt.body, bearer)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, decodeBody[models.ErrorResponse](t, rr))
		})
	}
}

// ─────────────────────────────────────────────
// PUT /users/{id}
// ─────────────────────────────────────────────

func TestUpdateUser(t *testing.T) {
	changed := ada.WithID("")
	changed.LastName = "Byron"

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "not found", serviceErr: service.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "validation", serviceErr: service.ErrValidation, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestRouter(t)
			d.expectGoodToken()

			var result models.User
			if tt.serviceErr == nil {
				result = changed.WithID("7")
			}
			d.users.EXPECT().Update(gomock.Any(), "7", changed).Return(result, tt.serviceErr)

			rr := do(t, d.router, http.MethodPut, "/users/7", changed, bearer)

			assert.Equal(t, tt.wantStatus, rr.Code)
			switch tt.wantStatus {
			case http.StatusOK:
				assert.Equal(t, "Byron", decodeBody[models.User](t, rr).LastName)
			case http.StatusNotFound:
				assert.Equal(t, models.ErrorResponse{Error: "User not found", Code: models.CodeNotFound}, decodeBody[models.ErrorResponse](t, rr))
			}
		})
	}
}

// ─────────────────────────────────────────────
// DELETE /users/{id}
// ─────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	d := newTestRouter(t)
	d.expectGoodToken()
	d.users.EXPECT().Delete(gomock.Any(), "1").Return(ada, nil)

	rr := do(t, d.router, http.MethodDelete, "/users/1", nil, bearer)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ada, decodeBody[models.User](t, rr))
}

func TestDeleteUser_NotFound(t *testing.T) {
	d := newTestRouter(t)
	d.expectGoodToken()
	d.users.EXPECT().Delete(gomock.Any(), "abc").Return(models.User{}, service.ErrNotFound)

	rr := do(t, d.router, http.MethodDelete, "/users/abc", nil, bearer)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", decodeBody[models.ErrorResponse](t, rr).Error)
}
