package aquarium

import (
	"encoding/json"
	"errors"
	"net/http"

	domain "github.com/oshokin/aquarium/internal/domain/aquarium"
	"github.com/oshokin/aquarium/internal/logger"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSONError writes an ErrorResponse with the given status code.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Error: message,
		Code:  statusCode,
	}

	//nolint:errcheck,errchkjson // Nothing left to do if the client went away.
	_ = json.NewEncoder(w).Encode(resp)
}

// statusFor maps a service error to an HTTP status code.
func statusFor(err error) int {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusConflict
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError logs unexpected failures and writes the mapped error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError

	switch status := statusFor(err); {
	case errors.As(err, &validationErr):
		writeJSONError(w, validationErr.Error(), status)
	case errors.Is(err, domain.ErrAquariumNotFound):
		writeJSONError(w, "aquarium not found", status)
	case errors.Is(err, domain.ErrFishNotFound):
		writeJSONError(w, "fish not found", status)
	case status == http.StatusInternalServerError:
		logger.ErrorKV(r.Context(), "Request failed", "error", err)
		writeJSONError(w, "internal server error", status)
	default:
		writeJSONError(w, err.Error(), status)
	}
}
