// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/adspace/internal/adapter"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

// DefaultCurrency is charged when a payment request names none.
const DefaultCurrency = "CAD"

type paymentService struct {
	payments adapter.PaymentAPI

	logger *logger.Logger
}

func NewPaymentService(backend *adapter.BackendAdapters, log *logger.Logger) PaymentService {
	return &paymentService{
		payments: backend.Payment,
		logger:   log,
	}
}

// CreatePaymentIntent opens a payment for a reservation. The currency
// defaults to DefaultCurrency and must be an ISO 4217 code.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (models.PaymentIntent, error) {
	if _, err := requireSession(ctx); err != nil {
		return models.PaymentIntent{}, err
	}

	if req.ReservationID == uuid.Nil {
		return models.PaymentIntent{}, fmt.Errorf("%w: reservation is required", ErrValidation)
	}

	code := strings.ToUpper(strings.TrimSpace(req.Currency))
	if code == "" {
		code = DefaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return models.PaymentIntent{}, fmt.Errorf("%w: unknown currency %q", ErrValidation, req.Currency)
	}
	req.Currency = unit.String()

	intent, err := s.payments.CreatePaymentIntent(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("reservation_id", req.ReservationID.String()).Msg("payment intent failed")
		return models.PaymentIntent{}, upstreamError("create payment intent", err)
	}
	return intent, nil
}
