// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/adspace/internal/adapter"
	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
)

// ErrNoBusiness is returned when the session owner has not registered a
// business yet. It wraps ErrNotFound.
var ErrNoBusiness = fmt.Errorf("%w: no business registered", ErrNotFound)

func requireSession(ctx context.Context) (*models.Session, error) {
	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	return session, nil
}

func requireAdmin(ctx context.Context) (*models.Session, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}
	if !session.HasRole(models.RoleAdmin) {
		return nil, fmt.Errorf("%w: admin role required", ErrForbidden)
	}
	return session, nil
}

// ownBusiness loads the business registered by the session owner.
func ownBusiness(ctx context.Context, businesses adapter.BusinessAPI) (models.Business, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return models.Business{}, err
	}

	business, err := businesses.GetBusinessByOwner(ctx, session.Subject)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Business{}, ErrNoBusiness
	}
	if err != nil {
		return models.Business{}, upstreamError("get own business", err)
	}

	return business, nil
}
