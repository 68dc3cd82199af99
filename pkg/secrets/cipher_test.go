package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c, err := NewCipher("test-key-material")
	require.NoError(t, err)

	token := "EAAGm0PX4ZCpsBO1ZCwhatsapp-access-token"

	sealed, err := c.Encrypt(token)
	require.NoError(t, err)
	assert.NotEqual(t, token, sealed)

	opened, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, token, opened)
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	c, err := NewCipher("test-key-material")
	require.NoError(t, err)

	a, err := c.Encrypt("same-token")
	require.NoError(t, err)
	b, err := c.Encrypt("same-token")
	require.NoError(t, err)

	// Random nonce per call: identical plaintexts must not produce
	// identical ciphertexts.
	assert.NotEqual(t, a, b)
}

func TestEmptyStringPassthrough(t *testing.T) {
	c, err := NewCipher("test-key-material")
	require.NoError(t, err)

	sealed, err := c.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, sealed)

	opened, err := c.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	c, err := NewCipher("test-key-material")
	require.NoError(t, err)

	_, err = c.Decrypt("not-base64!!!")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = c.Decrypt("dG9vc2hvcnQ=") // valid base64, shorter than a nonce
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestDecryptWrongKeyFails(t *testing.T) {
	c1, err := NewCipher("key-one")
	require.NoError(t, err)
	c2, err := NewCipher("key-two")
	require.NoError(t, err)

	sealed, err := c1.Encrypt("secret")
	require.NoError(t, err)

	_, err = c2.Decrypt(sealed)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestEmptyKeyMaterialUsesFallback(t *testing.T) {
	c, err := NewCipher("")
	require.NoError(t, err)

	sealed, err := c.Encrypt("secret")
	require.NoError(t, err)

	opened, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "secret", opened)
}
