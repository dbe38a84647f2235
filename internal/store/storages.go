// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/crypto"
	"github.com/MKhiriev/adspace/internal/logger"
)

// Storages groups the storages used by the services and owns their
// connections.
type Storages struct {
	SessionStorage SessionStorage

	closers []func() error
}

// NewStorages opens the session storage selected by cfg. Redis wins when
// cfg.Redis.Addr is set; otherwise the database at cfg.DB.DSN is opened and
// migrated.
func NewStorages(ctx context.Context, cfg config.Storage, cipher crypto.TokenCipher, log *logger.Logger) (*Storages, error) {
	if cfg.Redis.Addr != "" {
		client, err := NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			SessionStorage: NewRedisSessionStorage(client, cipher, log),
			closers:        []func() error{client.Close},
		}, nil
	}

	if cfg.DB.DSN == "" {
		return nil, ErrNoStorageConfigured
	}

	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating session database: %w", err)
	}

	return &Storages{
		SessionStorage: NewSessionRepository(db, cipher, log),
		closers:        []func() error{db.Close},
	}, nil
}

// Close releases every connection held by s.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
