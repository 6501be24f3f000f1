// Package auth normalizes provider-specific sign-in results into the
// canonical user record and owns the session lifecycle around it.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"gofinances/internal/core"
)

const (
	GoogleSuccess GoogleResultType = "success"
	GoogleCancel  GoogleResultType = "cancel"
)

// ErrSignInCancelled is returned by providers when the user dismissed the
// sign-in dialog. It is not a failure: the session treats it as a no-op.
var ErrSignInCancelled = errors.New("sign-in cancelled")

type (
	GoogleResultType string

	GoogleUser struct {
		ID       string
		Name     string
		Email    string
		PhotoURL string
	}

	// GoogleResult is the closed set of outcomes of a Google sign-in. A
	// cancelled dialog is a distinct variant, not an error.
	GoogleResult struct {
		Type GoogleResultType
		User GoogleUser
	}

	AppleFullName struct {
		GivenName  string
		FamilyName string
	}

	// AppleCredential carries the platform-native sign-in result.
	AppleCredential struct {
		UserID   string
		Email    string
		FullName AppleFullName
	}

	GoogleProvider interface {
		SignIn(ctx context.Context) (GoogleResult, error)
	}

	// AppleProvider returns a credential, ErrSignInCancelled, or a provider
	// failure.
	AppleProvider interface {
		SignIn(ctx context.Context) (AppleCredential, error)
	}
)

// normalizeGoogle maps a Google result to the canonical user. ok is false
// for a cancelled sign-in. A success result missing a required field is a
// provider contract violation and fails loudly.
func normalizeGoogle(res GoogleResult) (core.User, bool, error) {
	switch res.Type {
	case GoogleCancel:
		return core.User{}, false, nil
	case GoogleSuccess:
	default:
		return core.User{}, false, &core.AuthProviderError{
			Provider: "google",
			Err:      fmt.Errorf("unexpected result type %q", res.Type),
		}
	}

	u := core.User{
		ID:    res.User.ID,
		Name:  res.User.Name,
		Email: res.User.Email,
		Photo: res.User.PhotoURL,
	}
	if err := u.Validate(); err != nil {
		return core.User{}, false, &core.AuthProviderError{Provider: "google", Err: err}
	}
	if u.Photo == "" {
		return core.User{}, false, &core.AuthProviderError{
			Provider: "google",
			Err:      errors.New("missing photo url"),
		}
	}
	return u, true, nil
}

// normalizeApple maps an Apple credential to the canonical user, deriving a
// synthetic avatar from the given name. The avatar is a presentation
// convenience, not an identity assertion.
func normalizeApple(cred AppleCredential) (core.User, error) {
	u := core.User{
		ID:    cred.UserID,
		Name:  cred.FullName.GivenName,
		Email: cred.Email,
		Photo: avatarURL(cred.FullName.GivenName),
	}
	if err := u.Validate(); err != nil {
		return core.User{}, &core.AuthProviderError{Provider: "apple", Err: err}
	}
	return u, nil
}

func avatarURL(name string) string {
	if name == "" {
		return ""
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&length=1"
}
