package crypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartbytes/canteen/config"
)

func withKey(t *testing.T, key string) {
	t.Helper()
	prev := config.Get("APP_KEY", "")
	config.Set("APP_KEY", key)
	t.Cleanup(func() { config.Set("APP_KEY", prev) })
}

func TestRoundTrip(t *testing.T) {
	withKey(t, "unit-test-key")

	sealed, err := EncryptBytes([]byte("bearer-token"))
	require.NoError(t, err)
	assert.NotContains(t, sealed, "bearer-token")

	plain, err := DecryptBytes(sealed)
	require.NoError(t, err)
	assert.Equal(t, "bearer-token", string(plain))
}

func TestNonceMakesCiphertextUnique(t *testing.T) {
	withKey(t, "unit-test-key")

	a, err := EncryptBytes([]byte("same input"))
	require.NoError(t, err)
	b, err := EncryptBytes([]byte("same input"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestTamperedCiphertextFailsAuthentication(t *testing.T) {
	withKey(t, "unit-test-key")

	sealed, err := EncryptBytes([]byte("payload"))
	require.NoError(t, err)

	tampered := []byte(sealed)
	tampered[len(tampered)/2] ^= 1
	_, err = DecryptBytes(string(tampered))
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = DecryptBytes("%%% not base64 %%%")
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestWrongKeyFails(t *testing.T) {
	withKey(t, "key-one")
	sealed, err := EncryptBytes([]byte("payload"))
	require.NoError(t, err)

	config.Set("APP_KEY", "key-two")
	_, err = DecryptBytes(sealed)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestMissingKey(t *testing.T) {
	withKey(t, "")

	_, err := EncryptBytes([]byte("x"))
	assert.ErrorIs(t, err, ErrNoKey)
	_, err = DecryptBytes("whatever")
	assert.ErrorIs(t, err, ErrNoKey)
}

func TestJSONRoundTrip(t *testing.T) {
	withKey(t, "unit-test-key")

	type payload struct {
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	sealed, err := EncryptJSON(payload{Username: "asha", Token: "tok"})
	require.NoError(t, err)

	var out payload
	require.NoError(t, DecryptJSON(sealed, &out))
	assert.Equal(t, "asha", out.Username)
	assert.Equal(t, "tok", out.Token)
}
