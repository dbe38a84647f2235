// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/google/uuid"
)

// MediaStatus is the moderation and broadcast state of a media listing.
type MediaStatus string

const (
	MediaPending    MediaStatus = "PENDING"
	MediaActive     MediaStatus = "ACTIVE"
	MediaRejected   MediaStatus = "REJECTED"
	MediaDisplaying MediaStatus = "DISPLAYING"
)

// IsValid reports whether s is one of the known statuses.
func (s MediaStatus) IsValid() bool {
	switch s {
	case MediaPending, MediaActive, MediaRejected, MediaDisplaying:
		return true
	}
	return false
}

// DisplayType is the physical technology of a screen.
type DisplayType string

const (
	DisplayDigital     DisplayType = "DIGITAL"
	DisplayInteractive DisplayType = "INTERACTIVE"
	DisplayPrinted     DisplayType = "PRINTED"
)

// MediaLocation is a place where one or more screens are installed.
type MediaLocation struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	Province   string    `json:"province"`
	PostalCode string    `json:"postalCode"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
}

// Resolution is the pixel size of a screen.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Dimensions is the physical size of a screen in centimetres.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ScheduleSlot is a weekly broadcast window, times in "HH:MM".
type ScheduleSlot struct {
	DayOfWeek string `json:"dayOfWeek"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// Media is a screen listed for rent by a media owner.
type Media struct {
	ID         uuid.UUID     `json:"id"`
	Title      string        `json:"title"`
	BusinessID uuid.UUID     `json:"businessId"`
	OwnerName  string        `json:"mediaOwnerName"`
	Location   MediaLocation `json:"mediaLocation"`

	TypeOfDisplay DisplayType `json:"typeOfDisplay"`
	Resolution    Resolution  `json:"resolution"`
	AspectRatio   string      `json:"aspectRatio"`
	Dimensions    Dimensions  `json:"dimensions"`

	// LoopDuration is the length of the ad rotation in seconds.
	LoopDuration int            `json:"loopDuration"`
	Schedule     []ScheduleSlot `json:"schedule,omitempty"`

	// Price is the weekly rental price in the marketplace currency.
	Price  float64     `json:"price"`
	Status MediaStatus `json:"status"`

	ImageURL string `json:"imageUrl,omitempty"`
}

// MediaStatusUpdate is the body of an admin media status decision.
type MediaStatusUpdate struct {
	Status MediaStatus `json:"status"`
}

// MediaFilter holds the browse page criteria. Zero values are omitted from
// the backend query.
type MediaFilter struct {
	Title               string
	MinPrice            float64
	MaxPrice            float64
	MinResolutionWidth  int
	MinResolutionHeight int
	AspectRatio         string
	LocationID          uuid.UUID
	SortBy              string
	OrderBy             string

	Pageable
}
