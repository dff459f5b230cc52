package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/platform/logging"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

const bearerPrefix = "bearer "

// credentialKey is the context key for the raw session credential.
type credentialKey struct{}

// CredentialFromContext returns the credential that authenticated the
// request, or an empty string outside an authenticated route.
func CredentialFromContext(ctx context.Context) string {
	if c, ok := ctx.Value(credentialKey{}).(string); ok {
		return c
	}
	return ""
}

// Authenticate returns middleware that resolves the caller identity from an
// "Authorization: Bearer" header or, failing that, the named session cookie.
// Requests without a valid credential get a 401 problem response and never
// reach the handler. A resolver failure other than ErrUnauthorized is
// reported through the normal error mapping (503 when the revocation store
// is down).
func Authenticate(resolver ports.IdentityResolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential := credentialFromRequest(r, cookieName)
			if credential == "" {
				writeUnauthorized(w, r, domain.ErrUnauthorized)
				return
			}

			identity, err := resolver.Resolve(r.Context(), credential)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					writeUnauthorized(w, r, domain.ErrUnauthorized)
					return
				}
				dto.WriteErrorResponse(w, r, err)
				return
			}
			if identity.IsZero() {
				writeUnauthorized(w, r, domain.ErrUnauthorized)
				return
			}

			ctx := domain.WithIdentity(r.Context(), identity)
			ctx = context.WithValue(ctx, credentialKey{}, credential)
			ctx = logging.With(ctx, slog.String("caller", string(identity)))
			noteCaller(ctx, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func credentialFromRequest(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); len(h) > len(bearerPrefix) && strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(h[len(bearerPrefix):])
	}
	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="tasks"`)
	dto.WriteErrorResponse(w, r, err)
}
