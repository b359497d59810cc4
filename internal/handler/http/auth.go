package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-admin/internal/app"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/service"
	"github.com/MKhiriev/go-user-admin/internal/utils"
	"github.com/MKhiriev/go-user-admin/models"
)

// login answers POST /login. The username travels in the "email" field.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON, Code: models.CodeBadRequest}, http.StatusBadRequest)
		return
	}

	token, err := h.services.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Info().Str("username", req.Email).Msg("invalid credentials")
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidCredentials, Code: models.CodeInvalidCredentials}, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInternalServerError, Code: models.CodeInternal}, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Str("username", token.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message:   app.MsgLoginSuccessful,
		Status:    http.StatusOK,
		AuthToken: token.SignedString,
	}, http.StatusOK)
}
