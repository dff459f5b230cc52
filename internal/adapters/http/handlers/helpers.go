package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a small JSON request body
// such as a status update or a login (64 KB).
const maxJSONBodyBytes = 64 << 10

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 (or 413) error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			dto.WriteErrorResponse(w, r, domain.ErrPayloadTooLarge)
			return false
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// callerIdentity returns the identity placed in the context by the
// authentication middleware. When there is none it writes a 401 and
// returns false, so no body is read and no service call is made.
func callerIdentity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id, ok := domain.IdentityFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthorized)
		return "", false
	}
	return id, true
}
