package services

import (
	"context"
	"time"

	"github.com/dartsops/darts_management_app/internal/core/domain"
)

// TokenSvcFacade handles issuing access tokens for authenticated operators.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the operator and returns
	// the token together with its expiry time.
	GenerateAccessToken(ctx context.Context, operator *domain.Operator) (string, time.Time, error)
}

// GoogleOAuthSvcFacade handles the Google sign-in flow.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a CSRF token for the redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the operator to.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForUserInfo exchanges an authorization code and fetches the
	// operator's Google profile.
	ExchangeCodeForUserInfo(ctx context.Context, code string) (*domain.GoogleUserInfo, error)

	// ValidateIDToken validates a Google ID token presented directly by the
	// mobile client and returns the contained identity.
	ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)
}
