package identity

import (
	"context"

	appErrors "github.com/WanderingWalnut/HomeRun/internal/errors"
)

// DisabledVerifier rejects every credential. It stands in when Google
// OAuth is not configured so the server can still boot and serve the
// public routes.
type DisabledVerifier struct{}

func (DisabledVerifier) Verify(ctx context.Context, credential string) (*UserInfo, error) {
	return nil, appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google OAuth is not configured. Set GOOGLE_OAUTH_CLIENT_ID and GOOGLE_OAUTH_ENABLED=true")
}
