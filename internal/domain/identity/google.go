package identity

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/WanderingWalnut/HomeRun/config"
	appErrors "github.com/WanderingWalnut/HomeRun/internal/errors"
)

// GoogleVerifier validates Google ID tokens against the configured OAuth
// client id. It can also exchange an authorization code for an ID token
// when the web client only has a code.
type GoogleVerifier struct {
	config   *oauth2.Config
	clientID string
	enabled  bool
}

func NewGoogleVerifier(cfg config.GoogleOAuthConfig) (*GoogleVerifier, error) {
	if !cfg.Enabled {
		return nil, appErrors.NewAuthError("OAUTH_DISABLED", "Google OAuth is disabled")
	}
	if cfg.ClientID == "" {
		return nil, appErrors.NewAuthError("OAUTH_CONFIG_MISSING", "GOOGLE_OAUTH_CLIENT_ID is not configured")
	}

	var oauthConfig *oauth2.Config
	if cfg.ClientSecret != "" && cfg.RedirectURL != "" {
		oauthConfig = &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		}
	}

	return &GoogleVerifier{
		config:   oauthConfig,
		clientID: cfg.ClientID,
		enabled:  cfg.Enabled,
	}, nil
}

func (g *GoogleVerifier) Verify(ctx context.Context, credential string) (*UserInfo, error) {
	if credential == "" {
		return nil, appErrors.NewAuthError("CREDENTIAL_MISSING", "No credential supplied")
	}

	payload, err := idtoken.Validate(ctx, credential, g.clientID)
	if err != nil {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Invalid Google token").WithError(err)
	}

	if payload.Subject == "" {
		return nil, appErrors.NewAuthError("SUBJECT_MISSING", "Subject not present in token")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &UserInfo{
		Subject: payload.Subject,
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}

// ExchangeCode trades an OAuth authorization code for the ID token inside
// the token response. Requires client secret and redirect URL to be
// configured.
func (g *GoogleVerifier) ExchangeCode(ctx context.Context, code string) (string, error) {
	if g.config == nil {
		return "", appErrors.NewAuthError("OAUTH_CONFIG_INCOMPLETE", "OAuth configuration is incomplete for the code flow")
	}

	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return "", appErrors.NewAuthError("TOKEN_EXCHANGE_FAILED", "Failed to exchange code for token").WithError(err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok {
		return "", appErrors.NewAuthError("ID_TOKEN_MISSING", "ID token not present in response")
	}

	return idToken, nil
}
