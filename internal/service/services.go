// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/adspace/internal/adapter"
	"github.com/MKhiriev/adspace/internal/logger"
)

type Services struct {
	AuthService        AuthService
	MediaService       MediaService
	BusinessService    BusinessService
	ReservationService ReservationService
	CampaignService    CampaignService
	PaymentService     PaymentService
	AdminService       AdminService
}

// NewServices builds the marketplace services on top of backend. auth is
// constructed first because the backend adapters take it as their token
// source.
func NewServices(auth AuthService, backend *adapter.BackendAdapters, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        auth,
		MediaService:       NewMediaService(backend, logger),
		BusinessService:    NewBusinessService(backend, logger),
		ReservationService: NewReservationService(backend, logger),
		CampaignService:    NewCampaignService(backend, logger),
		PaymentService:     NewPaymentService(backend, logger),
		AdminService:       NewAdminService(backend, logger),
	}
}
