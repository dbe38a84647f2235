// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_cipher_mock.go -package=mock

// TokenCipher protects the identity provider tokens kept in the session
// store. The store only ever sees ciphertext.
//
// Ciphertexts are base64 (standard encoding) of nonce || sealed box, so
// they fit in TEXT columns and Redis hash fields.
type TokenCipher interface {
	// Encrypt seals plaintext. An empty plaintext yields an empty string so
	// that absent tokens (e.g. no refresh token) stay absent.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a value produced by Encrypt. An empty input yields an
	// empty string. Returns ErrDecrypt when the value was tampered with or
	// sealed under another key.
	Decrypt(ciphertext string) (string, error)
}
