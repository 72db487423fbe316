package v1

import (
	"errors"
	"net/http"
	"strings"

	"rajaprint-backend/internal/domain"
	"rajaprint-backend/pkg/logger"
	"rajaprint-backend/pkg/utils"
)

var sentinels = []error{
	domain.ErrValidation,
	domain.ErrNotFound,
	domain.ErrZoneConstraint,
	domain.ErrDeliveryUnavailable,
	domain.ErrUnauthorized,
}

// statusFor maps a usecase error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrZoneConstraint),
		errors.Is(err, domain.ErrDeliveryUnavailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage strips the sentinel prefix ("validation error: ...") so
// callers see only the human message.
func publicMessage(err error) string {
	msg := err.Error()
	for _, s := range sentinels {
		if errors.Is(err, s) {
			prefix := s.Error() + ": "
			if i := strings.Index(msg, prefix); i >= 0 {
				return msg[i+len(prefix):]
			}
			return msg
		}
	}
	return msg
}

// writeUsecaseError renders err in the standard envelope. Internal errors
// are logged and replaced by fallback.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
		utils.WriteError(w, status, fallback)
		return
	}
	utils.WriteError(w, status, publicMessage(err))
}

// currentUser returns the authenticated user, or nil for guests.
func currentUser(r *http.Request) *domain.User {
	user, _ := r.Context().Value(domain.UserContextKey).(*domain.User)
	return user
}

func currentUserID(r *http.Request) string {
	if user := currentUser(r); user != nil {
		return user.ID
	}
	return ""
}
