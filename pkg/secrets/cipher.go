// Package secrets encrypts channel credentials at rest. Access tokens are
// sealed with AES-256-GCM under a key derived from operator-supplied key
// material; ciphertexts are stored base64-encoded.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// devFallbackKey keeps local development working without env setup.
// Production deployments must set a real key.
const devFallbackKey = "flowcore-dev-key-do-not-use-in-prod"

var (
	// ErrInvalidCiphertext indicates the stored value could not be decoded
	// or authenticated.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
)

// Cipher seals and opens credential strings.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives a 256-bit key from the given material (sha256) and
// returns a ready-to-use cipher. Empty material falls back to the built-in
// development key with a warning.
func NewCipher(keyMaterial string) (*Cipher, error) {
	if keyMaterial == "" {
		slog.Warn("No encryption key material provided, using development fallback key")
		keyMaterial = devFallbackKey
	}

	key := sha256.Sum256([]byte(keyMaterial))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// FromEnv builds a cipher from the environment variable named by keyEnv.
func FromEnv(keyEnv string) (*Cipher, error) {
	return NewCipher(os.Getenv(keyEnv))
}

// Encrypt seals the plaintext and returns a base64 string. Empty input
// passes through unchanged so optional credentials stay optional.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a base64 ciphertext produced by Encrypt. Empty input
// passes through unchanged.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(sealed) < nonceSize {
		return "", fmt.Errorf("%w: too short", ErrInvalidCiphertext)
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}

	return string(plaintext), nil
}
