// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
)

const (
	// managementTokenLeeway is how long before expiry a cached management
	// token is considered stale.
	managementTokenLeeway = 30 * time.Second

	loginScope = "openid profile email offline_access"
)

type identityAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	clientID     string
	clientSecret string
	audience     string

	mu              sync.Mutex
	managementToken string
	managementExp   time.Time
	now             func() time.Time

	logger *logger.Logger
}

// NewIdentityAdapter constructs the HTTP implementation of [IdentityAdapter]
// for the tenant at cfg.Domain. Domains without a scheme are reached over
// https.
//
// Returns an error if cfg.Domain is empty or cannot be parsed as a URL.
func NewIdentityAdapter(cfg config.Identity, log *logger.Logger) (IdentityAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Domain, "https")
	if err != nil {
		return nil, fmt.Errorf("invalid identity domain: %w", err)
	}

	client := utils.NewHTTPClient(log,
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithTracing(),
	)

	return &identityAdapter{
		client:       client,
		baseURL:      baseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		audience:     cfg.Audience,
		now:          time.Now,
		logger:       log,
	}, nil
}

// AuthorizeURL implements [IdentityAdapter].
func (a *identityAdapter) AuthorizeURL(state, redirectURI string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", a.clientID)
	q.Set("redirect_uri", redirectURI)
	q.Set("scope", loginScope)
	q.Set("state", state)
	if a.audience != "" {
		q.Set("audience", a.audience)
	}

	return a.baseURL + "/authorize?" + q.Encode()
}

// LogoutURL implements [IdentityAdapter].
func (a *identityAdapter) LogoutURL(returnTo string) string {
	q := url.Values{}
	q.Set("client_id", a.clientID)
	q.Set("returnTo", returnTo)

	return a.baseURL + "/v2/logout?" + q.Encode()
}

// ExchangeCode implements [IdentityAdapter].
func (a *identityAdapter) ExchangeCode(ctx context.Context, code, redirectURI string) (models.TokenSet, error) {
	return a.tokenGrant(ctx, map[string]string{
		"grant_type":   "authorization_code",
		"code":         code,
		"redirect_uri": redirectURI,
	})
}

// RefreshToken implements [IdentityAdapter].
func (a *identityAdapter) RefreshToken(ctx context.Context, refreshToken string) (models.TokenSet, error) {
	return a.tokenGrant(ctx, map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	})
}

// UserInfo implements [IdentityAdapter].
func (a *identityAdapter) UserInfo(ctx context.Context, accessToken string) (models.UserInfo, error) {
	var info models.UserInfo

	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&info).
		Get("/userinfo")
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("userinfo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfo{}, err
	}

	return info, nil
}

// GetUser implements [IdentityAdapter].
func (a *identityAdapter) GetUser(ctx context.Context, userID string) (models.User, error) {
	ctx = utils.WithLocalUnauthorized(ctx)
	token, err := a.getManagementToken(ctx)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("id", userID).
		SetResult(&user).
		Get("/api/v2/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = a.mapManagementError(resp.StatusCode(), mapHTTPError(resp)); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateUserMetadata implements [IdentityAdapter].
func (a *identityAdapter) UpdateUserMetadata(ctx context.Context, userID string, metadata models.UserMetadata) (models.User, error) {
	ctx = utils.WithLocalUnauthorized(ctx)
	token, err := a.getManagementToken(ctx)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("id", userID).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"user_metadata": metadata}).
		SetResult(&user).
		Patch("/api/v2/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = a.mapManagementError(resp.StatusCode(), mapHTTPError(resp)); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// getManagementToken returns a cached client-credentials token for the
// management API, requesting a new one when the cached token expires within
// managementTokenLeeway.
func (a *identityAdapter) getManagementToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	if a.managementToken != "" && now.Add(managementTokenLeeway).Before(a.managementExp) {
		return a.managementToken, nil
	}

	tokens, err := a.tokenGrant(ctx, map[string]string{
		"grant_type": "client_credentials",
		"audience":   a.baseURL + "/api/v2/",
	})
	if err != nil {
		return "", fmt.Errorf("management token: %w", err)
	}

	a.managementToken = tokens.AccessToken
	a.managementExp = tokens.ExpiresAt(now)
	a.logger.Debug().Time("expires_at", a.managementExp).Msg("management token refreshed")

	return a.managementToken, nil
}

// mapManagementError drops the cached management token when the API
// rejected it, so the next call requests a fresh one. Management calls run
// with WithLocalUnauthorized: this is where their 401s are handled.
func (a *identityAdapter) mapManagementError(status int, err error) error {
	if err == nil {
		return nil
	}
	if status == http.StatusUnauthorized {
		a.mu.Lock()
		a.managementToken = ""
		a.mu.Unlock()
	}
	return err
}

func (a *identityAdapter) tokenGrant(ctx context.Context, form map[string]string) (models.TokenSet, error) {
	form["client_id"] = a.clientID
	form["client_secret"] = a.clientSecret

	var tokens models.TokenSet
	resp, err := a.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&tokens).
		Post("/oauth/token")
	if err != nil {
		return models.TokenSet{}, fmt.Errorf("%s grant request: %w", form["grant_type"], err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenSet{}, err
	}
	if tokens.AccessToken == "" {
		return models.TokenSet{}, fmt.Errorf("%w: token response without access_token", ErrUpstream)
	}

	return tokens, nil
}
