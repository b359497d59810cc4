package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-admin/internal/app"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/service"
	"github.com/MKhiriev/go-user-admin/internal/store"
	"github.com/MKhiriev/go-user-admin/internal/utils"
	"github.com/MKhiriev/go-user-admin/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:            http.StatusBadRequest,
	service.ErrNotFound:              http.StatusNotFound,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrInvalidOrExpiredToken: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,

	store.ErrRecordNotFound: http.StatusNotFound,
	store.ErrCorruptedStore: http.StatusInternalServerError,
	store.ErrReadingStore:   http.StatusInternalServerError,
	store.ErrWritingStore:   http.StatusInternalServerError,
	store.ErrLockingStore:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrIDAllocationFailed:   http.StatusInternalServerError,
}

var errorCodeMap = map[error]models.ErrorCode{
	service.ErrValidation:            models.CodeValidation,
	service.ErrNotFound:              models.CodeNotFound,
	service.ErrInvalidCredentials:    models.CodeInvalidCredentials,
	service.ErrInvalidOrExpiredToken: models.CodeUnauthorized,
	store.ErrRecordNotFound:          models.CodeNotFound,
}

var errorMessageMap = map[error]string{
	service.ErrValidation:            app.MsgAllFieldsRequired,
	service.ErrNotFound:              app.MsgUserNotFound,
	service.ErrInvalidCredentials:    app.MsgInvalidCredentials,
	service.ErrInvalidOrExpiredToken: app.MsgInvalidOrExpiredToken,
	store.ErrRecordNotFound:          app.MsgUserNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func codeFromError(err error) models.ErrorCode {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return models.CodeInternal
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError answers a record endpoint with {error, code}. Server-side
// failures are logged with the full error; the body only carries the
// generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err), Code: codeFromError(err)}, status)
}
