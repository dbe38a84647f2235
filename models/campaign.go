// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/google/uuid"
)

// AdType is the creative format of an ad.
type AdType string

const (
	AdImage AdType = "IMAGE"
	AdVideo AdType = "VIDEO"
)

// IsValid reports whether t is one of the known ad types.
func (t AdType) IsValid() bool {
	return t == AdImage || t == AdVideo
}

// Ad is a single creative.
type Ad struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type AdType    `json:"type"`
	URL  string    `json:"url"`
}

// AdCampaign groups ads that are scheduled together.
type AdCampaign struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	BusinessID uuid.UUID `json:"businessId"`
	Ads        []Ad      `json:"ads"`
}
