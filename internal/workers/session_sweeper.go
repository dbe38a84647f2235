// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/store"
)

// SessionSweeper periodically deletes expired login sessions. Redis-backed
// storages expire keys on their own and report zero deletions.
type SessionSweeper struct {
	sessions store.SessionStorage
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionSweeper(sessions store.SessionStorage, cfg config.Workers, log *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: cfg.SessionSweepInterval,
		now:      time.Now,
		logger:   log.WithRole("session-sweeper"),
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
func (s *SessionSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	deleted, err := s.sessions.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Msg("expired session sweep failed")
		}
		return
	}

	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("expired sessions deleted")
	}
}
