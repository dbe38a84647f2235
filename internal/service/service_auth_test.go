// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/adspace/internal/adapter"
	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/mock"
	"github.com/MKhiriev/adspace/internal/store"
	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			BaseURL:         "https://adspace.test/",
			SessionSignKey:  "session-secret",
			SessionIssuer:   "adspace-web",
			SessionDuration: time.Hour,
		},
		Identity: config.Identity{RolesClaim: "https://adspace.app/roles"},
		Locale:   config.Locale{Default: "en", Supported: []string{"en", "fr"}},
	}
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockSessionStorage, *mock.MockIdentityAdapter) {
	t.Helper()
	sessions := mock.NewMockSessionStorage(ctrl)
	identity := mock.NewMockIdentityAdapter(ctrl)

	svc := newAuthService(sessions, identity, testConfig(), logger.Nop())
	svc.now = func() time.Time { return testNow }

	return svc, sessions, identity
}

func sessionCtx(s models.Session) (context.Context, *models.Session) {
	p := &s
	return utils.WithSession(context.Background(), p), p
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_LoginURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, identity := newTestAuthSvc(t, ctrl)

	identity.EXPECT().
		AuthorizeURL("state-1", "https://adspace.test/api/auth/callback").
		Return("https://tenant/authorize?state=state-1")

	assert.Equal(t, "https://tenant/authorize?state=state-1", svc.LoginURL("state-1"))
}

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, identity := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tokens := models.TokenSet{AccessToken: "at", RefreshToken: "rt", IDToken: "idt", ExpiresIn: 3600}
	info := models.UserInfo{
		Subject: "auth0|abc",
		Email:   "owner@adspace.test",
		Name:    "Owner",
		Claims:  map[string]any{"https://adspace.app/roles": []any{"admin", 7}},
	}

	gomock.InOrder(
		identity.EXPECT().ExchangeCode(ctx, "code-1", "https://adspace.test/api/auth/callback").Return(tokens, nil),
		identity.EXPECT().UserInfo(ctx, "at").Return(info, nil),
		sessions.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.NotEmpty(t, s.ID)
				assert.Equal(t, "auth0|abc", s.Subject)
				assert.Equal(t, []string{"admin"}, s.Roles)
				assert.Equal(t, testNow.Add(time.Hour), s.AccessTokenExpiresAt)
				assert.Equal(t, testNow.Add(time.Hour), s.ExpiresAt)
				return nil
			}),
	)

	session, err := svc.CompleteLogin(ctx, "code-1", "state-1", "state-1")
	require.NoError(t, err)
	assert.Equal(t, "rt", session.RefreshToken)
	assert.True(t, session.HasRole(models.RoleAdmin))
}

func TestAuthService_CompleteLogin_StateMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CompleteLogin(context.Background(), "code", "forged", "expected")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CompleteLogin(context.Background(), "code", "", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_CompleteLogin_ExchangeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, identity := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	identity.EXPECT().ExchangeCode(ctx, "code", gomock.Any()).Return(models.TokenSet{}, adapter.ErrBadRequest)

	_, err := svc.CompleteLogin(ctx, "code", "s", "s")
	require.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

// ── Session resolution ───────────────────────────────────────────────────────

func TestAuthService_ResolveSession(t *testing.T) {
	stored := models.Session{ID: "sid-1", Subject: "auth0|abc", ExpiresAt: testNow.Add(time.Hour)}

	t.Run("valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, sessions, _ := newTestAuthSvc(t, ctrl)

		token, err := svc.SignSession(stored)
		require.NoError(t, err)
		sessions.EXPECT().GetSession(gomock.Any(), "sid-1").Return(stored, nil)

		got, err := svc.ResolveSession(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("garbage token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestAuthSvc(t, ctrl)

		_, err := svc.ResolveSession(context.Background(), "not-a-jwt")
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, sessions, _ := newTestAuthSvc(t, ctrl)

		token, err := svc.SignSession(stored)
		require.NoError(t, err)
		sessions.EXPECT().GetSession(gomock.Any(), "sid-1").Return(models.Session{}, store.ErrSessionNotFound)

		_, err = svc.ResolveSession(context.Background(), token)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("storage failure is not unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, sessions, _ := newTestAuthSvc(t, ctrl)

		token, err := svc.SignSession(stored)
		require.NoError(t, err)
		sessions.EXPECT().GetSession(gomock.Any(), "sid-1").Return(models.Session{}, store.ErrExecutingQuery)

		_, err = svc.ResolveSession(context.Background(), token)
		require.ErrorIs(t, err, store.ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("expired session is deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, sessions, _ := newTestAuthSvc(t, ctrl)

		expired := stored
		expired.ExpiresAt = testNow.Add(-time.Minute)
		token, err := svc.SignSession(expired)
		require.NoError(t, err)
		sessions.EXPECT().GetSession(gomock.Any(), "sid-1").Return(expired, nil)
		sessions.EXPECT().DeleteSession(gomock.Any(), "sid-1").Return(nil)

		_, err = svc.ResolveSession(context.Background(), token)
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, identity := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().DeleteSession(ctx, "sid-1").Return(nil)
	identity.EXPECT().LogoutURL("https://adspace.test/").Return("https://tenant/v2/logout")

	target, err := svc.Logout(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "https://tenant/v2/logout", target)
}

// ── Token provider ───────────────────────────────────────────────────────────

func TestAuthService_AccessToken_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.AccessToken(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_AccessToken_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	ctx, _ := sessionCtx(models.Session{ID: "sid", AccessToken: "at", AccessTokenExpiresAt: testNow.Add(time.Hour)})

	token, err := svc.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "at", token)
}

func TestAuthService_AccessToken_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, identity := newTestAuthSvc(t, ctrl)

	ctx, session := sessionCtx(models.Session{
		ID:                   "sid",
		AccessToken:          "old",
		RefreshToken:         "rt",
		IDToken:              "idt",
		AccessTokenExpiresAt: testNow.Add(-time.Minute),
	})

	identity.EXPECT().RefreshToken(ctx, "rt").Return(models.TokenSet{AccessToken: "new", ExpiresIn: 600}, nil)
	sessions.EXPECT().UpdateSessionTokens(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.Session) error {
			assert.Equal(t, "new", s.AccessToken)
			assert.Equal(t, "rt", s.RefreshToken, "refresh token is kept when not rotated")
			assert.Equal(t, "idt", s.IDToken)
			return nil
		})

	token, err := svc.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", token)
	assert.Equal(t, "new", session.AccessToken)
	assert.Equal(t, testNow.Add(10*time.Minute), session.AccessTokenExpiresAt)
}

func TestAuthService_AccessToken_ConcurrentCallers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, identity := newTestAuthSvc(t, ctrl)

	ctx, _ := sessionCtx(models.Session{ID: "sid", RefreshToken: "rt"})

	release := make(chan struct{})
	identity.EXPECT().RefreshToken(gomock.Any(), "rt").DoAndReturn(
		func(context.Context, string) (models.TokenSet, error) {
			<-release
			return models.TokenSet{AccessToken: "new", RefreshToken: "rt2", ExpiresIn: 600}, nil
		}).MinTimes(1).MaxTimes(4)
	sessions.EXPECT().UpdateSessionTokens(gomock.Any(), gomock.Any()).Return(nil).MinTimes(1).MaxTimes(4)

	var wg sync.WaitGroup
	tokens := make([]string, 4)
	for i := range tokens {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens[i], _ = svc.AccessToken(ctx)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, tok := range tokens {
		assert.Equal(t, "new", tok)
	}
}

func TestAuthService_AccessToken_RefreshRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, identity := newTestAuthSvc(t, ctrl)

	ctx, _ := sessionCtx(models.Session{ID: "sid", RefreshToken: "rt"})
	identity.EXPECT().RefreshToken(ctx, "rt").Return(models.TokenSet{}, adapter.ErrForbidden)

	_, err := svc.AccessToken(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_AccessToken_RefreshUpstreamDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, identity := newTestAuthSvc(t, ctrl)

	ctx, _ := sessionCtx(models.Session{ID: "sid", RefreshToken: "rt"})
	identity.EXPECT().RefreshToken(ctx, "rt").Return(models.TokenSet{}, adapter.ErrUpstream)

	_, err := svc.AccessToken(ctx)
	require.ErrorIs(t, err, ErrUpstreamFailure)
}

func TestAuthService_AccessToken_ExpiredWithoutRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	ctx, _ := sessionCtx(models.Session{ID: "sid", AccessToken: "old", AccessTokenExpiresAt: testNow})

	_, err := svc.AccessToken(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)
}

// ── Identity proxy ───────────────────────────────────────────────────────────

func TestAuthService_GetUser(t *testing.T) {
	tests := []struct {
		name    string
		ctx     func() context.Context
		userID  string
		setup   func(identity *mock.MockIdentityAdapter)
		wantErr error
	}{
		{
			name:    "no session",
			ctx:     context.Background,
			userID:  "auth0|abc",
			wantErr: ErrUnauthorized,
		},
		{
			name: "someone else",
			ctx: func() context.Context {
				ctx, _ := sessionCtx(models.Session{Subject: "auth0|abc"})
				return ctx
			},
			userID:  "auth0|xyz",
			wantErr: ErrForbidden,
		},
		{
			name: "not found",
			ctx: func() context.Context {
				ctx, _ := sessionCtx(models.Session{Subject: "auth0|abc"})
				return ctx
			},
			userID: "auth0|abc",
			setup: func(identity *mock.MockIdentityAdapter) {
				identity.EXPECT().GetUser(gomock.Any(), "auth0|abc").Return(models.User{}, adapter.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "upstream down",
			ctx: func() context.Context {
				ctx, _ := sessionCtx(models.Session{Subject: "auth0|abc"})
				return ctx
			},
			userID: "auth0|abc",
			setup: func(identity *mock.MockIdentityAdapter) {
				identity.EXPECT().GetUser(gomock.Any(), "auth0|abc").Return(models.User{}, errors.New("dial tcp: refused"))
			},
			wantErr: ErrUpstreamFailure,
		},
		{
			name: "own record",
			ctx: func() context.Context {
				ctx, _ := sessionCtx(models.Session{Subject: "auth0|abc"})
				return ctx
			},
			userID: "auth0|abc",
			setup: func(identity *mock.MockIdentityAdapter) {
				identity.EXPECT().GetUser(gomock.Any(), "auth0|abc").Return(models.User{UserID: "auth0|abc"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, identity := newTestAuthSvc(t, ctrl)
			if tt.setup != nil {
				tt.setup(identity)
			}

			user, err := svc.GetUser(tt.ctx(), tt.userID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.userID, user.UserID)
		})
	}
}

func TestAuthService_UpdateUserLanguage(t *testing.T) {
	t.Run("unsupported locale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestAuthSvc(t, ctrl)
		ctx, _ := sessionCtx(models.Session{Subject: "auth0|abc"})

		_, err := svc.UpdateUserLanguage(ctx, "auth0|abc", "de")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("subject checked before locale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestAuthSvc(t, ctrl)
		ctx, _ := sessionCtx(models.Session{Subject: "auth0|abc"})

		_, err := svc.UpdateUserLanguage(ctx, "auth0|xyz", "de")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("stores preferred language", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, identity := newTestAuthSvc(t, ctrl)
		ctx, _ := sessionCtx(models.Session{Subject: "auth0|abc"})

		identity.EXPECT().
			UpdateUserMetadata(ctx, "auth0|abc", models.UserMetadata{PreferredLanguage: "fr"}).
			Return(models.User{UserID: "auth0|abc", UserMetadata: models.UserMetadata{PreferredLanguage: "fr"}}, nil)

		user, err := svc.UpdateUserLanguage(ctx, "auth0|abc", "fr")
		require.NoError(t, err)
		assert.Equal(t, "fr", user.UserMetadata.PreferredLanguage)
	})
}

func TestAuthService_IdentityRejectionsAreUpstreamFailures(t *testing.T) {
	rejections := map[string]error{
		"management token denied": fmt.Errorf("management token: %w", adapter.ErrUnauthorized),
		"scope missing":           fmt.Errorf("management token: %w", adapter.ErrForbidden),
		"bad request":             fmt.Errorf("management token: %w", adapter.ErrBadRequest),
		"conflict":                fmt.Errorf("update user: %w", adapter.ErrConflict),
	}

	for name, rejection := range rejections {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, identity := newTestAuthSvc(t, ctrl)
			ctx, _ := sessionCtx(models.Session{Subject: "auth0|abc"})

			identity.EXPECT().GetUser(gomock.Any(), "auth0|abc").Return(models.User{}, rejection)
			identity.EXPECT().UpdateUserMetadata(gomock.Any(), "auth0|abc", gomock.Any()).Return(models.User{}, rejection)

			_, err := svc.GetUser(ctx, "auth0|abc")
			require.ErrorIs(t, err, ErrUpstreamFailure)
			assert.NotErrorIs(t, err, ErrUnauthorized)
			assert.NotErrorIs(t, err, ErrForbidden)
			assert.NotErrorIs(t, err, ErrValidation)
			assert.NotErrorIs(t, err, ErrConflict)

			_, err = svc.UpdateUserLanguage(ctx, "auth0|abc", "fr")
			require.ErrorIs(t, err, ErrUpstreamFailure)
			assert.NotErrorIs(t, err, ErrUnauthorized)
			assert.NotErrorIs(t, err, ErrForbidden)
			assert.NotErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_SessionStoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessions, _ := newTestAuthSvc(t, ctrl)

	session := models.Session{ID: "s-1", Subject: "auth0|abc", ExpiresAt: testNow.Add(time.Hour)}
	token, err := svc.SignSession(session)
	require.NoError(t, err)

	sessions.EXPECT().GetSession(gomock.Any(), "s-1").
		Return(models.Session{}, fmt.Errorf("%w: scan: connection reset", store.ErrStoreUnavailable))
	_, err = svc.ResolveSession(context.Background(), token)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrUnauthorized)

	sessions.EXPECT().DeleteSession(gomock.Any(), "s-1").Return(store.ErrExecutingStatement)
	_, err = svc.Logout(context.Background(), "s-1")
	require.ErrorIs(t, err, store.ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrUnavailable)
}
