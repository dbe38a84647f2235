// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the gateway: the login
// session lifecycle and token provider, and the marketplace operations that
// sit on top of the backend feature APIs (ownership checks, validation,
// admin gating and page data aggregation).
//
// Every operation that needs a user reads the session from the context
// (see [utils.WithSession]); backend calls made with that context are
// authenticated automatically.
package service

import (
	"context"

	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns login sessions and proxies the identity provider.
type AuthService interface {
	// LoginURL returns the identity provider URL that starts a login. state
	// must be echoed back to CompleteLogin.
	LoginURL(state string) string

	// CompleteLogin checks state against expectedState, exchanges code for
	// tokens and stores a new session.
	CompleteLogin(ctx context.Context, code, state, expectedState string) (models.Session, error)

	// SignSession returns the signed cookie value referencing session.
	SignSession(session models.Session) (string, error)

	// ResolveSession validates a cookie value and loads its session.
	// Returns ErrUnauthorized for any invalid, unknown or expired session.
	ResolveSession(ctx context.Context, token string) (models.Session, error)

	// Logout deletes the session and returns the provider logout URL.
	Logout(ctx context.Context, sessionID string) (string, error)

	// AccessToken returns the bearer token of the session in ctx, refreshing
	// it when expired.
	AccessToken(ctx context.Context) (string, error)

	// GetUser reads the identity record of userID. The session subject must
	// be userID.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// UpdateUserLanguage stores locale as the preferred language of userID.
	// The session subject must be userID and locale must be supported.
	UpdateUserLanguage(ctx context.Context, userID, locale string) (models.User, error)
}

// MediaService serves the public catalogue and the media owner's listings.
type MediaService interface {
	Browse(ctx context.Context, filter models.MediaFilter) (models.BrowseData, error)
	GetMedia(ctx context.Context, id uuid.UUID) (models.Media, error)
	CreateMedia(ctx context.Context, media models.Media) (models.Media, error)
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}

// BusinessService manages the business of the session owner.
type BusinessService interface {
	RegisterBusiness(ctx context.Context, business models.Business) (models.Business, error)
	OwnBusiness(ctx context.Context) (models.Business, error)
	Dashboard(ctx context.Context) (models.DashboardData, error)
	OwnMedia(ctx context.Context) ([]models.Media, error)
	OwnReservations(ctx context.Context) ([]models.Reservation, error)
	OwnCampaigns(ctx context.Context) ([]models.AdCampaign, error)
}

// ReservationService books media and lets media owners decide on bookings.
type ReservationService interface {
	Reserve(ctx context.Context, mediaID uuid.UUID, req models.ReservationRequest) (models.Reservation, error)
	Approve(ctx context.Context, id uuid.UUID) (models.Reservation, error)
	Deny(ctx context.Context, id uuid.UUID) (models.Reservation, error)
}

// CampaignService manages the ad campaigns of the session owner.
type CampaignService interface {
	CreateCampaign(ctx context.Context, campaign models.AdCampaign) (models.AdCampaign, error)
	AddAd(ctx context.Context, campaignID uuid.UUID, ad models.Ad) (models.AdCampaign, error)
	DeleteAd(ctx context.Context, campaignID, adID uuid.UUID) error
}

// PaymentService opens payments for reservations.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (models.PaymentIntent, error)
}

// AdminService holds the moderation operations. Every method requires the
// admin role.
type AdminService interface {
	PendingMedia(ctx context.Context, pageable models.Pageable) (models.Page[models.Media], error)
	PendingBusinesses(ctx context.Context, pageable models.Pageable) (models.Page[models.Business], error)
	SetMediaStatus(ctx context.Context, id uuid.UUID, status models.MediaStatus) (models.Media, error)
	SetVerificationStatus(ctx context.Context, businessID uuid.UUID, status models.VerificationStatus) (models.Verification, error)
}
