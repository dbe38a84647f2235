// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/adspace/internal/crypto"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/models"
	sq "github.com/Masterminds/squirrel"
)

const sessionsTable = "sessions"

var sessionColumns = []string{
	"session_id",
	"subject",
	"email",
	"name",
	"roles",
	"access_token",
	"refresh_token",
	"id_token",
	"access_token_expires_at",
	"created_at",
	"expires_at",
}

// sessionRepository is the SQL implementation of [SessionStorage]. It works
// against the "sessions" table on PostgreSQL and SQLite alike; the
// placeholder format comes from the [DB] it was built with.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sessionRepository struct {
	db     *DB
	cipher crypto.TokenCipher
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionStorage] backed by db. Tokens
// are encrypted with cipher before they are written.
func NewSessionRepository(db *DB, cipher crypto.TokenCipher, logger *logger.Logger) SessionStorage {
	logger.Debug().Str("dialect", db.dialect).Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		cipher: cipher,
		logger: logger,
	}
}

// CreateSession implements [SessionStorage].
//
// Error handling:
//   - primary key violation → [ErrSessionAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	sealed, err := sealTokens(r.cipher, session)
	if err != nil {
		return err
	}

	query, args, err := r.db.builder.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(
			sealed.ID,
			sealed.Subject,
			sealed.Email,
			sealed.Name,
			joinRoles(sealed.Roles),
			sealed.AccessToken,
			sealed.RefreshToken,
			sealed.IDToken,
			sealed.AccessTokenExpiresAt.UTC(),
			sealed.CreatedAt.UTC(),
			sealed.ExpiresAt.UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrSessionAlreadyExists
		}
		return r.driverError(ErrExecutingStatement, err)
	}

	return nil
}

// GetSession implements [SessionStorage].
func (r *sessionRepository) GetSession(ctx context.Context, id string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"session_id": id}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session models.Session
		roles   string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.Subject,
		&session.Email,
		&session.Name,
		&roles,
		&session.AccessToken,
		&session.RefreshToken,
		&session.IDToken,
		&session.AccessTokenExpiresAt,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error scanning session")
		return models.Session{}, r.driverError(ErrScanningRow, err)
	}
	session.Roles = splitRoles(roles)

	return openTokens(r.cipher, session)
}

// UpdateSessionTokens implements [SessionStorage].
func (r *sessionRepository) UpdateSessionTokens(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	sealed, err := sealTokens(r.cipher, session)
	if err != nil {
		return err
	}

	query, args, err := r.db.builder.
		Update(sessionsTable).
		Set("access_token", sealed.AccessToken).
		Set("refresh_token", sealed.RefreshToken).
		Set("id_token", sealed.IDToken).
		Set("access_token_expires_at", sealed.AccessTokenExpiresAt.UTC()).
		Where(sq.Eq{"session_id": sealed.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpdateSessionTokens").Msg("error updating session tokens")
		return r.driverError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteSession implements [SessionStorage].
func (r *sessionRepository) DeleteSession(ctx context.Context, id string) error {
	query, args, err := r.db.builder.
		Delete(sessionsTable).
		Where(sq.Eq{"session_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return r.driverError(ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredSessions implements [SessionStorage].
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := r.db.builder.
		Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": now.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, r.driverError(ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

// driverError wraps a driver failure in op. Failures the dialect classifies
// as transient also carry [ErrStoreUnavailable].
func (r *sessionRepository) driverError(op, err error) error {
	if r.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, op, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}
