// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/adspace/internal/crypto"
	"github.com/MKhiriev/adspace/models"
)

// sealTokens returns a copy of s with its tokens encrypted.
func sealTokens(cipher crypto.TokenCipher, s models.Session) (models.Session, error) {
	var err error
	if s.AccessToken, err = cipher.Encrypt(s.AccessToken); err != nil {
		return models.Session{}, fmt.Errorf("%w: access token: %w", ErrSealingTokens, err)
	}
	if s.RefreshToken, err = cipher.Encrypt(s.RefreshToken); err != nil {
		return models.Session{}, fmt.Errorf("%w: refresh token: %w", ErrSealingTokens, err)
	}
	if s.IDToken, err = cipher.Encrypt(s.IDToken); err != nil {
		return models.Session{}, fmt.Errorf("%w: id token: %w", ErrSealingTokens, err)
	}
	return s, nil
}

// openTokens reverses sealTokens.
func openTokens(cipher crypto.TokenCipher, s models.Session) (models.Session, error) {
	var err error
	if s.AccessToken, err = cipher.Decrypt(s.AccessToken); err != nil {
		return models.Session{}, fmt.Errorf("%w: access token: %w", ErrSealingTokens, err)
	}
	if s.RefreshToken, err = cipher.Decrypt(s.RefreshToken); err != nil {
		return models.Session{}, fmt.Errorf("%w: refresh token: %w", ErrSealingTokens, err)
	}
	if s.IDToken, err = cipher.Decrypt(s.IDToken); err != nil {
		return models.Session{}, fmt.Errorf("%w: id token: %w", ErrSealingTokens, err)
	}
	return s, nil
}

const rolesSeparator = ","

func joinRoles(roles []string) string {
	return strings.Join(roles, rolesSeparator)
}

func splitRoles(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, rolesSeparator)
}
