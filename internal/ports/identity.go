package ports

import (
	"context"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/account"
)

// IdentityResolver turns a presented credential into a verified caller
// identity. A missing, malformed, expired, or revoked credential yields
// domain.ErrUnauthorized; any other error means the resolver itself failed.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (domain.Identity, error)
}

// TokenIssuer mints and revokes the credentials accepted by IdentityResolver.
type TokenIssuer interface {
	Issue(ctx context.Context, user *account.User) (*account.Session, error)
	Revoke(ctx context.Context, credential string) error
}
