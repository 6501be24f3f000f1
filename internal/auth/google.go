package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleOAuthProvider signs in by reading the profile behind a previously
// authorized OAuth token (obtained with cmd/oauth-init). A missing token is
// treated as a dismissed dialog so the caller can prompt the user to run the
// authorization flow.
type GoogleOAuthProvider struct {
	cfg       *oauth2.Config
	tokenFile string
}

// NewGoogleProviderFromEnv builds the provider from environment variables.
// Required: GOOGLE_OAUTH_CLIENT_JSON or GOOGLE_OAUTH_CLIENT_FILE.
// Optional: GOOGLE_OAUTH_TOKEN_FILE (default "token.json").
func NewGoogleProviderFromEnv() (*GoogleOAuthProvider, error) {
	clientJSON := strings.TrimSpace(os.Getenv("GOOGLE_OAUTH_CLIENT_JSON"))
	clientFile := strings.TrimSpace(os.Getenv("GOOGLE_OAUTH_CLIENT_FILE"))

	var (
		b   []byte
		err error
	)
	switch {
	case clientJSON != "":
		b = []byte(clientJSON)
	case clientFile != "":
		b, err = os.ReadFile(clientFile)
		if err != nil {
			return nil, fmt.Errorf("read client file: %w", err)
		}
	default:
		return nil, errors.New("set GOOGLE_OAUTH_CLIENT_JSON or GOOGLE_OAUTH_CLIENT_FILE")
	}

	cfg, err := google.ConfigFromJSON(b, goauth2.UserinfoProfileScope, goauth2.UserinfoEmailScope)
	if err != nil {
		return nil, fmt.Errorf("oauth config: %w", err)
	}

	tokenFile := strings.TrimSpace(os.Getenv("GOOGLE_OAUTH_TOKEN_FILE"))
	if tokenFile == "" {
		tokenFile = "token.json"
	}

	return &GoogleOAuthProvider{cfg: cfg, tokenFile: tokenFile}, nil
}

func (p *GoogleOAuthProvider) SignIn(ctx context.Context) (GoogleResult, error) {
	tok, err := p.loadToken()
	if err != nil {
		if os.IsNotExist(err) {
			// No authorized token yet: equivalent to a dismissed dialog.
			return GoogleResult{Type: GoogleCancel}, nil
		}
		return GoogleResult{}, fmt.Errorf("load token: %w", err)
	}

	svc, err := goauth2.NewService(ctx, option.WithTokenSource(p.cfg.TokenSource(ctx, tok)))
	if err != nil {
		return GoogleResult{}, fmt.Errorf("userinfo service: %w", err)
	}

	ui, err := svc.Userinfo.Get().Do()
	if err != nil {
		return GoogleResult{}, fmt.Errorf("fetch userinfo: %w", err)
	}

	return GoogleResult{
		Type: GoogleSuccess,
		User: GoogleUser{
			ID:       ui.Id,
			Name:     ui.Name,
			Email:    ui.Email,
			PhotoURL: ui.Picture,
		},
	}, nil
}

func (p *GoogleOAuthProvider) loadToken() (*oauth2.Token, error) {
	b, err := os.ReadFile(p.tokenFile)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(b, &tok); err != nil {
		return nil, fmt.Errorf("decode token file: %w", err)
	}
	return &tok, nil
}
