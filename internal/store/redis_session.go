// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/adspace/internal/crypto"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/models"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "adspace:session:"

// redisCommands is the part of the go-redis client the session storage uses.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetArgs(ctx context.Context, key string, value any, a redis.SetArgs) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisSession is the JSON document stored per session. Tokens are sealed.
type redisSession struct {
	ID                   string    `json:"id"`
	Subject              string    `json:"sub"`
	Email                string    `json:"email,omitempty"`
	Name                 string    `json:"name,omitempty"`
	Roles                []string  `json:"roles,omitempty"`
	AccessToken          string    `json:"at"`
	RefreshToken         string    `json:"rt,omitempty"`
	IDToken              string    `json:"idt,omitempty"`
	AccessTokenExpiresAt time.Time `json:"at_exp"`
	CreatedAt            time.Time `json:"created_at"`
	ExpiresAt            time.Time `json:"expires_at"`
}

func toRedisSession(s models.Session) redisSession {
	return redisSession{
		ID:                   s.ID,
		Subject:              s.Subject,
		Email:                s.Email,
		Name:                 s.Name,
		Roles:                s.Roles,
		AccessToken:          s.AccessToken,
		RefreshToken:         s.RefreshToken,
		IDToken:              s.IDToken,
		AccessTokenExpiresAt: s.AccessTokenExpiresAt,
		CreatedAt:            s.CreatedAt,
		ExpiresAt:            s.ExpiresAt,
	}
}

func (r redisSession) toModel() models.Session {
	return models.Session{
		ID:                   r.ID,
		Subject:              r.Subject,
		Email:                r.Email,
		Name:                 r.Name,
		Roles:                r.Roles,
		AccessToken:          r.AccessToken,
		RefreshToken:         r.RefreshToken,
		IDToken:              r.IDToken,
		AccessTokenExpiresAt: r.AccessTokenExpiresAt,
		CreatedAt:            r.CreatedAt,
		ExpiresAt:            r.ExpiresAt,
	}
}

// redisSessionStorage implements [SessionStorage] on Redis. Each session is
// one key whose TTL ends at the session's ExpiresAt, so expired sessions
// disappear without sweeping.
type redisSessionStorage struct {
	client redisCommands
	cipher crypto.TokenCipher
	now    func() time.Time
	logger *logger.Logger
}

// NewRedisSessionStorage constructs a Redis-backed [SessionStorage].
func NewRedisSessionStorage(client redisCommands, cipher crypto.TokenCipher, log *logger.Logger) SessionStorage {
	log.Debug().Msg("creating redis session storage")
	return &redisSessionStorage{
		client: client,
		cipher: cipher,
		now:    time.Now,
		logger: log,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// CreateSession implements [SessionStorage]. The key is written with NX so
// an existing session is never overwritten.
func (r *redisSessionStorage) CreateSession(ctx context.Context, session models.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("%w: session already expired", ErrExecutingStatement)
	}

	payload, err := r.encode(session)
	if err != nil {
		return err
	}

	err = r.client.SetArgs(ctx, sessionKey(session.ID), payload, redis.SetArgs{Mode: "NX", TTL: ttl}).Err()
	if errors.Is(err, redis.Nil) {
		return ErrSessionAlreadyExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.CreateSession").Msg("error writing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession implements [SessionStorage].
func (r *redisSessionStorage) GetSession(ctx context.Context, id string) (models.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var doc redisSession
	if err = json.Unmarshal([]byte(raw), &doc); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return openTokens(r.cipher, doc.toModel())
}

// UpdateSessionTokens implements [SessionStorage]. The stored document is
// rewritten with XX and KEEPTTL so a deleted session is not resurrected and
// the expiry is unchanged.
func (r *redisSessionStorage) UpdateSessionTokens(ctx context.Context, session models.Session) error {
	current, err := r.GetSession(ctx, session.ID)
	if err != nil {
		return err
	}

	current.AccessToken = session.AccessToken
	current.RefreshToken = session.RefreshToken
	current.IDToken = session.IDToken
	current.AccessTokenExpiresAt = session.AccessTokenExpiresAt

	payload, err := r.encode(current)
	if err != nil {
		return err
	}

	err = r.client.SetArgs(ctx, sessionKey(session.ID), payload, redis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
	if errors.Is(err, redis.Nil) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteSession implements [SessionStorage].
func (r *redisSessionStorage) DeleteSession(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// DeleteExpiredSessions implements [SessionStorage]. Redis expires keys on
// its own, so there is never anything to remove.
func (r *redisSessionStorage) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (r *redisSessionStorage) encode(session models.Session) (string, error) {
	sealed, err := sealTokens(r.cipher, session)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(toRedisSession(sealed))
	if err != nil {
		return "", fmt.Errorf("error encoding session: %w", err)
	}
	return string(payload), nil
}
