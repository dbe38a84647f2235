// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of the signed session cookie. The cookie
// only references a server-side session: ID carries the session id
// ("jti") and Subject the identity subject ("sub").
type SessionClaims struct {
	jwt.RegisteredClaims
}

// TokenSet is the result of an OAuth token grant.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope,omitempty"`

	// ExpiresIn is the lifetime of AccessToken in seconds.
	ExpiresIn int64 `json:"expires_in"`
}

// ExpiresAt converts ExpiresIn into an absolute deadline relative to now.
func (t TokenSet) ExpiresAt(now time.Time) time.Time {
	return now.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// AccessTokenResponse is returned by the internal token route.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}
