// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// RoleAdmin is the identity provider role that unlocks moderation routes.
const RoleAdmin = "admin"

// Session is a server-side login session. It is created by the login
// callback, resolved from the session cookie on every request and removed
// on logout or when it expires.
type Session struct {
	ID      string
	Subject string
	Email   string
	Name    string
	Roles   []string

	AccessToken          string
	RefreshToken         string
	IDToken              string
	AccessTokenExpiresAt time.Time

	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session itself is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AccessTokenValid reports whether the access token is still usable at now
// with the given safety margin.
func (s Session) AccessTokenValid(now time.Time, skew time.Duration) bool {
	return s.AccessToken != "" && now.Add(skew).Before(s.AccessTokenExpiresAt)
}

// HasRole reports whether role was granted to the session subject.
func (s Session) HasRole(role string) bool {
	return slices.Contains(s.Roles, role)
}

// Profile is the public projection of a session returned to the browser.
type Profile struct {
	Subject string   `json:"sub"`
	Email   string   `json:"email,omitempty"`
	Name    string   `json:"name,omitempty"`
	Roles   []string `json:"roles,omitempty"`
}

// Profile returns the browser-safe view of the session.
func (s Session) Profile() Profile {
	return Profile{
		Subject: s.Subject,
		Email:   s.Email,
		Name:    s.Name,
		Roles:   s.Roles,
	}
}
