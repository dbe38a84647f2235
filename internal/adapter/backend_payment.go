// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
)

// CreatePaymentIntent implements [PaymentAPI].
func (b *httpBackendAdapter) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (models.PaymentIntent, error) {
	var intent models.PaymentIntent
	resp, err := b.jsonRequest(ctx, req).
		SetResult(&intent).
		Post("/payments/intent")
	if err = do("create payment intent", resp, err); err != nil {
		return models.PaymentIntent{}, err
	}
	return intent, nil
}

// GetPaymentsByBusiness implements [PaymentAPI].
func (b *httpBackendAdapter) GetPaymentsByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	resp, err := b.request(ctx).
		SetPathParam("businessId", businessID.String()).
		SetResult(&payments).
		Get("/payments/business/{businessId}")
	if err = do("get business payments", resp, err); err != nil {
		return nil, err
	}
	return payments, nil
}
