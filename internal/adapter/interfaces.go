// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound clients of the gateway: the identity
// provider (login flow, userinfo and management API) and the marketplace
// REST backend, split into one interface per feature area.
//
// All adapters are built on [utils.HTTPClient]. Backend calls made with a
// context that carries a session are authenticated with the session's
// bearer token automatically.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityAdapter talks to the identity provider tenant.
type IdentityAdapter interface {
	// AuthorizeURL returns the URL the browser is sent to in order to log in.
	// state is echoed back to redirectURI on completion.
	AuthorizeURL(state, redirectURI string) string

	// LogoutURL returns the provider logout URL that sends the browser back
	// to returnTo.
	LogoutURL(returnTo string) string

	// ExchangeCode performs the authorization-code grant.
	ExchangeCode(ctx context.Context, code, redirectURI string) (models.TokenSet, error)

	// RefreshToken performs the refresh-token grant. The returned set may
	// carry an empty RefreshToken when the provider does not rotate it.
	RefreshToken(ctx context.Context, refreshToken string) (models.TokenSet, error)

	// UserInfo reads the OpenID Connect userinfo of the token's owner.
	UserInfo(ctx context.Context, accessToken string) (models.UserInfo, error)

	// GetUser reads a user record from the management API.
	// Returns ErrNotFound when the user does not exist.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// UpdateUserMetadata merges metadata into the user's user_metadata on the
	// management API and returns the updated record.
	UpdateUserMetadata(ctx context.Context, userID string, metadata models.UserMetadata) (models.User, error)
}

// MediaAPI is the backend's /media resource.
type MediaAPI interface {
	GetMediaByID(ctx context.Context, id uuid.UUID) (models.Media, error)

	// GetAllFilteredActiveMedia lists ACTIVE media matching filter. Empty
	// filter fields are not sent; the title is LIKE-escaped.
	GetAllFilteredActiveMedia(ctx context.Context, filter models.MediaFilter) (models.Page[models.Media], error)

	// GetAllMedia lists media regardless of owner. An empty status lists all
	// statuses.
	GetAllMedia(ctx context.Context, pageable models.Pageable, status models.MediaStatus) (models.Page[models.Media], error)

	GetMediaByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Media, error)
	CreateMedia(ctx context.Context, media models.Media) (models.Media, error)
	UpdateMedia(ctx context.Context, id uuid.UUID, media models.Media) (models.Media, error)
	DeleteMedia(ctx context.Context, id uuid.UUID) error
	UpdateMediaStatus(ctx context.Context, id uuid.UUID, status models.MediaStatus) (models.Media, error)
}

// MediaLocationAPI is the backend's /media-locations resource.
type MediaLocationAPI interface {
	GetAllMediaLocations(ctx context.Context) ([]models.MediaLocation, error)
}

// BusinessAPI is the backend's /businesses resource.
type BusinessAPI interface {
	GetBusinessByID(ctx context.Context, id uuid.UUID) (models.Business, error)

	// GetBusinessByOwner returns the business registered by the identity
	// subject ownerID. Returns ErrNotFound when there is none.
	GetBusinessByOwner(ctx context.Context, ownerID string) (models.Business, error)

	CreateBusiness(ctx context.Context, business models.Business) (models.Business, error)
	UpdateBusiness(ctx context.Context, id uuid.UUID, business models.Business) (models.Business, error)

	// GetAllBusinesses lists businesses. An empty status lists all
	// verification statuses.
	GetAllBusinesses(ctx context.Context, pageable models.Pageable, status models.VerificationStatus) (models.Page[models.Business], error)

	UpdateVerificationStatus(ctx context.Context, businessID uuid.UUID, status models.VerificationStatus) (models.Verification, error)
}

// ReservationAPI is the reservation part of the backend's /media resource.
type ReservationAPI interface {
	GetReservationsByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, mediaID uuid.UUID, req models.ReservationRequest) (models.Reservation, error)
	ApproveReservation(ctx context.Context, id uuid.UUID) (models.Reservation, error)
	DenyReservation(ctx context.Context, id uuid.UUID) (models.Reservation, error)
}

// CampaignAPI is the backend's /ad-campaigns resource.
type CampaignAPI interface {
	GetCampaignsByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.AdCampaign, error)
	GetCampaignByID(ctx context.Context, id uuid.UUID) (models.AdCampaign, error)
	CreateCampaign(ctx context.Context, campaign models.AdCampaign) (models.AdCampaign, error)
	AddAdToCampaign(ctx context.Context, campaignID uuid.UUID, ad models.Ad) (models.AdCampaign, error)
	DeleteAdFromCampaign(ctx context.Context, campaignID, adID uuid.UUID) error
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
}

// PaymentAPI is the backend's /payments resource.
type PaymentAPI interface {
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (models.PaymentIntent, error)
	GetPaymentsByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Payment, error)
}

// BackendAdapters groups the backend feature APIs.
type BackendAdapters struct {
	Media         MediaAPI
	MediaLocation MediaLocationAPI
	Business      BusinessAPI
	Reservation   ReservationAPI
	Campaign      CampaignAPI
	Payment       PaymentAPI
}
