// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// User is the identity provider's view of an account. It is fetched and
// patched through the management API and never persisted by this service.
type User struct {
	// UserID is the identity provider subject (e.g. "auth0|64f1c0...").
	UserID string `json:"user_id"`

	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	Name          string `json:"name,omitempty"`
	Nickname      string `json:"nickname,omitempty"`
	Picture       string `json:"picture,omitempty"`

	// UserMetadata holds the profile fields the user is allowed to edit.
	UserMetadata UserMetadata `json:"user_metadata"`

	// AppMetadata is owned by administrators; it is passed through verbatim.
	AppMetadata map[string]any `json:"app_metadata,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// UserMetadata is the user-editable metadata stored on the identity
// provider. Known keys are typed fields; everything else is kept in
// Extensions so that a round trip through this service never drops keys
// written by other applications.
//
// Schema:
//
//	bio                 free-text profile description
//	preferred_language  one of the supported locales ("en", "fr")
//	<any other key>     Extensions[key], non-string values kept as raw JSON text
type UserMetadata struct {
	Bio               string
	PreferredLanguage string
	Extensions        map[string]string
}

const (
	metadataKeyBio               = "bio"
	metadataKeyPreferredLanguage = "preferred_language"
)

// MarshalJSON flattens the typed fields and the extensions into one object.
func (m UserMetadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(m.Extensions)+2)
	for k, v := range m.Extensions {
		out[k] = v
	}
	if m.Bio != "" {
		out[metadataKeyBio] = m.Bio
	}
	if m.PreferredLanguage != "" {
		out[metadataKeyPreferredLanguage] = m.PreferredLanguage
	}

	return json.Marshal(out)
}

// UnmarshalJSON splits a metadata object into known fields and extensions.
func (m *UserMetadata) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("error decoding user metadata: %w", err)
	}

	*m = UserMetadata{}
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			s = string(value)
		}

		switch key {
		case metadataKeyBio:
			m.Bio = s
		case metadataKeyPreferredLanguage:
			m.PreferredLanguage = s
		default:
			if m.Extensions == nil {
				m.Extensions = make(map[string]string)
			}
			m.Extensions[key] = s
		}
	}

	return nil
}

// UserInfo is the OpenID Connect userinfo document returned for a user
// access token. Roles are read from a namespaced custom claim whose name is
// configurable, so the raw claims are kept as well.
type UserInfo struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`

	Claims map[string]any `json:"-"`
}

// Roles returns the string values of the given claim.
func (u UserInfo) Roles(claim string) []string {
	raw, ok := u.Claims[claim].([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}

	return roles
}

// UpdateLanguageRequest is the body of the update-user-language route.
type UpdateLanguageRequest struct {
	Locale string `json:"locale"`
}

// UnmarshalJSON decodes the standard claims and keeps every claim in Claims.
func (u *UserInfo) UnmarshalJSON(b []byte) error {
	type plain UserInfo
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("error decoding userinfo: %w", err)
	}
	if err := json.Unmarshal(b, &p.Claims); err != nil {
		return fmt.Errorf("error decoding userinfo claims: %w", err)
	}

	*u = UserInfo(p)
	return nil
}
