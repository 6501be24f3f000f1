package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"gofinances/internal/core"
	"gofinances/internal/kvstore"
)

// userStorageKey is the fixed store key for the persisted session record.
const userStorageKey = "@gofinances:user"

// Session holds the current canonical user in memory and keeps it consistent
// with the persisted record: every mutating operation completes its store
// write before returning. It starts in the loading state until Load runs.
//
// Sign-in and sign-out are not designed for concurrent overlapping calls;
// the last writer wins on the store. The mutex only protects the in-memory
// fields.
type Session struct {
	store  kvstore.Store
	google GoogleProvider
	apple  AppleProvider

	mu      sync.Mutex
	user    core.User
	loading bool
}

func NewSession(store kvstore.Store, google GoogleProvider, apple AppleProvider) *Session {
	return &Session{
		store:   store,
		google:  google,
		apple:   apple,
		loading: true,
	}
}

// Load restores the persisted session on process start. An absent record
// means unauthenticated; either way the loading state ends.
func (s *Session) Load(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	raw, ok, err := s.store.Get(ctx, userStorageKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var u core.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return &core.PersistenceError{Op: "decode", Key: userStorageKey, Err: err}
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	slog.InfoContext(ctx, "Session restored", "user_id", u.ID)
	return nil
}

// SignInWithGoogle runs the Google sign-in and, on success, persists and
// adopts the normalized user. A cancelled dialog changes nothing and is not
// an error.
func (s *Session) SignInWithGoogle(ctx context.Context) error {
	if s.google == nil {
		return &core.AuthProviderError{Provider: "google", Err: errors.New("provider not configured")}
	}

	res, err := s.google.SignIn(ctx)
	if err != nil {
		if errors.Is(err, ErrSignInCancelled) {
			return nil
		}
		return &core.AuthProviderError{Provider: "google", Err: err}
	}

	u, ok, err := normalizeGoogle(res)
	if err != nil {
		return err
	}
	if !ok {
		slog.InfoContext(ctx, "Google sign-in cancelled")
		return nil
	}

	return s.adopt(ctx, u)
}

// SignInWithApple runs the native sign-in and, on success, persists and
// adopts the normalized user with a synthetic avatar.
func (s *Session) SignInWithApple(ctx context.Context) error {
	if s.apple == nil {
		return &core.AuthProviderError{Provider: "apple", Err: errors.New("provider not configured")}
	}

	cred, err := s.apple.SignIn(ctx)
	if err != nil {
		if errors.Is(err, ErrSignInCancelled) {
			slog.InfoContext(ctx, "Apple sign-in cancelled")
			return nil
		}
		return &core.AuthProviderError{Provider: "apple", Err: err}
	}

	u, err := normalizeApple(cred)
	if err != nil {
		return err
	}

	return s.adopt(ctx, u)
}

// adopt persists the user and only then updates the in-memory record, so a
// failed write leaves the previous state intact.
func (s *Session) adopt(ctx context.Context, u core.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return &core.PersistenceError{Op: "encode", Key: userStorageKey, Err: err}
	}
	if err := s.store.Set(ctx, userStorageKey, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	slog.InfoContext(ctx, "User signed in", "user_id", u.ID, "email", u.Email)
	return nil
}

// SignOut removes the persisted record and clears the in-memory user. The
// transaction ledger is keyed by user id and survives sign-out.
func (s *Session) SignOut(ctx context.Context) error {
	if err := s.store.Remove(ctx, userStorageKey); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = core.User{}
	s.mu.Unlock()

	slog.InfoContext(ctx, "User signed out")
	return nil
}

// User returns the current user; the zero user means signed out.
func (s *Session) User() core.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsLoading reports whether the initial Load has not finished yet.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Authenticated reports whether a user is currently signed in.
func (s *Session) Authenticated() bool {
	return !s.User().IsZero()
}
