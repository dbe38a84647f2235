// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/adspace/internal/adapter"
	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/store"
	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
	"golang.org/x/sync/singleflight"
)

const (
	// CallbackPath is where the identity provider sends the browser back.
	CallbackPath = "/api/auth/callback"

	// accessTokenSkew refreshes tokens slightly before they expire.
	accessTokenSkew = 10 * time.Second
)

// authService is the concrete implementation of AuthService.
type authService struct {
	sessions store.SessionStorage
	identity adapter.IdentityAdapter
	ids      *utils.UUIDGenerator

	// baseURL is the public origin used for the callback and logout return URLs.
	baseURL string

	sessionSignKey  string
	sessionIssuer   string
	sessionDuration time.Duration
	rolesClaim      string
	locales         []string

	// mu guards the token fields of sessions shared through request contexts.
	mu        sync.Mutex
	refreshes singleflight.Group

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by sessions and identity.
//
// The returned service is safe for concurrent use.
func NewAuthService(sessions store.SessionStorage, identity adapter.IdentityAdapter, cfg config.StructuredConfig, log *logger.Logger) AuthService {
	return newAuthService(sessions, identity, cfg, log)
}

func newAuthService(sessions store.SessionStorage, identity adapter.IdentityAdapter, cfg config.StructuredConfig, log *logger.Logger) *authService {
	return &authService{
		sessions:        sessions,
		identity:        identity,
		ids:             utils.NewUUIDGenerator(),
		baseURL:         strings.TrimRight(cfg.App.BaseURL, "/"),
		sessionSignKey:  cfg.App.SessionSignKey,
		sessionIssuer:   cfg.App.SessionIssuer,
		sessionDuration: cfg.App.SessionDuration,
		rolesClaim:      cfg.Identity.RolesClaim,
		locales:         slices.Clone(cfg.Locale.Supported),
		now:             time.Now,
		logger:          log,
	}
}

func (a *authService) LoginURL(state string) string {
	return a.identity.AuthorizeURL(state, a.baseURL+CallbackPath)
}

// CompleteLogin finishes the authorization-code flow.
//
// Returns:
//   - ErrValidation if code is empty or state does not match expectedState.
//   - a wrapped upstream error if the code exchange or userinfo call fails.
//   - a wrapped storage error if the session cannot be stored.
func (a *authService) CompleteLogin(ctx context.Context, code, state, expectedState string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if state == "" || state != expectedState {
		log.Warn().Msg("login state mismatch")
		return models.Session{}, fmt.Errorf("%w: login state mismatch", ErrValidation)
	}
	if code == "" {
		return models.Session{}, fmt.Errorf("%w: missing authorization code", ErrValidation)
	}

	tokens, err := a.identity.ExchangeCode(ctx, code, a.baseURL+CallbackPath)
	if err != nil {
		log.Err(err).Msg("authorization code exchange failed")
		return models.Session{}, upstreamError("exchange authorization code", err)
	}

	info, err := a.identity.UserInfo(ctx, tokens.AccessToken)
	if err != nil {
		log.Err(err).Msg("userinfo request failed")
		return models.Session{}, upstreamError("read userinfo", err)
	}

	now := a.now().UTC()
	session := models.Session{
		ID:                   a.ids.Generate(),
		Subject:              info.Subject,
		Email:                info.Email,
		Name:                 info.Name,
		Roles:                info.Roles(a.rolesClaim),
		AccessToken:          tokens.AccessToken,
		RefreshToken:         tokens.RefreshToken,
		IDToken:              tokens.IDToken,
		AccessTokenExpiresAt: tokens.ExpiresAt(now),
		CreatedAt:            now,
		ExpiresAt:            now.Add(a.sessionDuration),
	}

	if err = a.sessions.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("subject", session.Subject).Msg("session creation failed")
		return models.Session{}, sessionStoreError("session creation failed", err)
	}

	log.Info().Str("subject", session.Subject).Str("session_id", session.ID).Msg("user logged in")
	return session, nil
}

func (a *authService) SignSession(session models.Session) (string, error) {
	return utils.GenerateSessionToken(a.sessionIssuer, session.ID, session.Subject, a.sessionDuration, a.sessionSignKey)
}

// ResolveSession validates the cookie JWT and loads the referenced session.
// Expired sessions are deleted on sight.
func (a *authService) ResolveSession(ctx context.Context, token string) (models.Session, error) {
	claims, err := utils.ParseSessionToken(token, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	session, err := a.sessions.GetSession(ctx, claims.ID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if err != nil {
		return models.Session{}, sessionStoreError("session lookup failed", err)
	}

	if session.Subject != claims.Subject {
		return models.Session{}, fmt.Errorf("%w: session subject mismatch", ErrUnauthorized)
	}

	if session.IsExpired(a.now()) {
		if err = a.sessions.DeleteSession(ctx, session.ID); err != nil {
			logger.FromContext(ctx).Err(err).Str("session_id", session.ID).Msg("expired session deletion failed")
		}
		return models.Session{}, fmt.Errorf("%w: session expired", ErrUnauthorized)
	}

	return session, nil
}

func (a *authService) Logout(ctx context.Context, sessionID string) (string, error) {
	if sessionID != "" {
		if err := a.sessions.DeleteSession(ctx, sessionID); err != nil {
			return "", sessionStoreError("session deletion failed", err)
		}
	}

	return a.identity.LogoutURL(a.baseURL + "/"), nil
}

// AccessToken returns a usable access token for the session in ctx.
//
// When the stored token is expired it is refreshed with the refresh token;
// concurrent refreshes of one session are collapsed into a single grant.
// The refreshed tokens are written back to the store and to the session in
// ctx. A refresh response without a new refresh token keeps the old one.
func (a *authService) AccessToken(ctx context.Context) (string, error) {
	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		return "", ErrUnauthorized
	}

	a.mu.Lock()
	current := *session
	a.mu.Unlock()

	if current.AccessTokenValid(a.now(), accessTokenSkew) {
		return current.AccessToken, nil
	}
	if current.RefreshToken == "" {
		return "", fmt.Errorf("%w: access token expired", ErrUnauthorized)
	}

	v, err, _ := a.refreshes.Do(current.ID, func() (any, error) {
		return a.refresh(ctx, current)
	})
	if err != nil {
		return "", err
	}
	refreshed := v.(models.Session)

	a.mu.Lock()
	session.AccessToken = refreshed.AccessToken
	session.RefreshToken = refreshed.RefreshToken
	session.IDToken = refreshed.IDToken
	session.AccessTokenExpiresAt = refreshed.AccessTokenExpiresAt
	a.mu.Unlock()

	return refreshed.AccessToken, nil
}

func (a *authService) refresh(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	tokens, err := a.identity.RefreshToken(ctx, session.RefreshToken)
	if err != nil {
		log.Err(err).Str("session_id", session.ID).Msg("token refresh failed")
		if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrBadRequest) || errors.Is(err, adapter.ErrForbidden) {
			return models.Session{}, fmt.Errorf("%w: refresh token rejected: %w", ErrUnauthorized, err)
		}
		return models.Session{}, upstreamError("refresh access token", err)
	}

	session.AccessToken = tokens.AccessToken
	session.AccessTokenExpiresAt = tokens.ExpiresAt(a.now().UTC())
	if tokens.RefreshToken != "" {
		session.RefreshToken = tokens.RefreshToken
	}
	if tokens.IDToken != "" {
		session.IDToken = tokens.IDToken
	}

	if err = a.sessions.UpdateSessionTokens(ctx, session); err != nil {
		log.Err(err).Str("session_id", session.ID).Msg("refreshed tokens were not stored")
		return models.Session{}, sessionStoreError("storing refreshed tokens failed", err)
	}

	log.Debug().Str("session_id", session.ID).Msg("access token refreshed")
	return session, nil
}

// GetUser proxies the management API user record. Only the user itself may
// read it.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if _, err := a.authorizeSubject(ctx, userID); err != nil {
		return models.User{}, err
	}

	user, err := a.identity.GetUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("identity user lookup failed")
		return models.User{}, identityError("get identity user", err)
	}

	return user, nil
}

// UpdateUserLanguage checks the subject before the locale.
func (a *authService) UpdateUserLanguage(ctx context.Context, userID, locale string) (models.User, error) {
	if _, err := a.authorizeSubject(ctx, userID); err != nil {
		return models.User{}, err
	}

	if !slices.Contains(a.locales, locale) {
		return models.User{}, fmt.Errorf("%w: unsupported locale %q", ErrValidation, locale)
	}

	user, err := a.identity.UpdateUserMetadata(ctx, userID, models.UserMetadata{PreferredLanguage: locale})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("preferred language update failed")
		return models.User{}, identityError("update user metadata", err)
	}

	return user, nil
}

// authorizeSubject returns the session in ctx if its subject is userID.
func (a *authService) authorizeSubject(ctx context.Context, userID string) (*models.Session, error) {
	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	if session.Subject != userID {
		logger.FromContext(ctx).Warn().
			Str("subject", session.Subject).
			Str("user_id", userID).
			Msg("access to another user's record denied")
		return nil, ErrForbidden
	}

	return session, nil
}
