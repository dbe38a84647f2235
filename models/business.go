// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// BusinessSize is the headcount bracket chosen at registration.
type BusinessSize string

const (
	BusinessSizeSmall      BusinessSize = "SMALL"
	BusinessSizeMedium     BusinessSize = "MEDIUM"
	BusinessSizeLarge      BusinessSize = "LARGE"
	BusinessSizeEnterprise BusinessSize = "ENTERPRISE"
)

// IsValid reports whether s is one of the known sizes.
func (s BusinessSize) IsValid() bool {
	switch s {
	case BusinessSizeSmall, BusinessSizeMedium, BusinessSizeLarge, BusinessSizeEnterprise:
		return true
	}
	return false
}

// VerificationStatus is the moderation state of an organization.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationDenied   VerificationStatus = "DENIED"
)

// IsValid reports whether s is one of the known statuses.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationApproved, VerificationDenied:
		return true
	}
	return false
}

// Address is a postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Business is an organization registered on the marketplace. A business may
// advertise, own media, or both.
type Business struct {
	ID      uuid.UUID    `json:"id"`
	Name    string       `json:"name"`
	Size    BusinessSize `json:"size"`
	Address Address      `json:"address"`

	Advertiser bool `json:"advertiser"`
	MediaOwner bool `json:"mediaOwner"`

	// OwnerID is the identity subject of the employee who registered it.
	OwnerID string `json:"ownerId"`

	VerificationStatus VerificationStatus `json:"verificationStatus,omitempty"`
}

// Verification is the approval record of a business.
type Verification struct {
	ID         uuid.UUID          `json:"id"`
	BusinessID uuid.UUID          `json:"businessId"`
	Status     VerificationStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// VerificationUpdate is the body of an admin verification decision.
type VerificationUpdate struct {
	Status VerificationStatus `json:"status"`
}
