package http

import (
	"errors"
	"net/http"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/service"
	"github.com/multilang/concept-memo/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidUsername:  http.StatusBadRequest,
	service.ErrValidationFailed: http.StatusBadRequest,
	store.ErrUsernameTaken:      http.StatusBadRequest,
	store.ErrDuplicateConcept:   http.StatusBadRequest,

	service.ErrInvalidToken: http.StatusUnauthorized,
	service.ErrTokenExpired: http.StatusUnauthorized,
	ErrMalformedCredential:  http.StatusUnauthorized,

	store.ErrConceptNotFound: http.StatusNotFound,
	store.ErrWordNotFound:    http.StatusNotFound,
	store.ErrUserNotFound:    http.StatusNotFound,

	service.ErrTokenGenerationFailed: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:        http.StatusInternalServerError,
	store.ErrExecutingQuery:          http.StatusInternalServerError,
	store.ErrExecutingStatement:      http.StatusInternalServerError,
	store.ErrScanningRow:             http.StatusInternalServerError,
	store.ErrScanningRows:            http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// handleError translates a service or store failure into an HTTP response.
// Client-caused failures echo the sentinel message; everything else is
// masked behind a generic 500 so internals never reach the wire.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Str("uri", r.RequestURI).Msg("request failed")

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}

	http.Error(w, err.Error(), status)
}
