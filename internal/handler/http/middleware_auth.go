package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-user-admin/internal/app"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/utils"
	"github.com/MKhiriev/go-user-admin/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// A missing Authorization header, or one without a token part, is answered
// with 403 NO_TOKEN_PROVIDED. A token that fails verification (bad
// signature, non-HMAC algorithm, malformed, expired) is answered with 401
// INVALID_OR_EXPIRED_TOKEN. On success the username from the token is
// stored in the request context under [utils.UsernameCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoTokenProvided, Code: models.CodeUnauthorized}, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidOrExpiredToken, Code: models.CodeUnauthorized}, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
