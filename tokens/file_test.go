package tokens

import (
	"bytes"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, ok := store.Get("missing")
	assert.False(t, ok)

	require.NoError(t, store.Set("sciencehub_access_token", "tok-123"))
	v, ok := store.Get("sciencehub_access_token")
	require.True(t, ok)
	assert.Equal(t, "tok-123", v)

	require.NoError(t, store.Delete("sciencehub_access_token"))
	_, ok = store.Get("sciencehub_access_token")
	assert.False(t, ok)

	// deleting a missing key is not an error
	assert.NoError(t, store.Delete("sciencehub_access_token"))
}

func TestFileStorePermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	store, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())

	info, err = os.Stat(filepath.Join(dir, "k"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreEncrypted(t *testing.T) {
	dir := t.TempDir()
	key := testKey(t)
	store, err := NewFileStore(dir, key)
	require.NoError(t, err)

	require.NoError(t, store.Set("k", "secret-token"))

	// the file on disk must not contain the plaintext
	data, err := os.ReadFile(filepath.Join(dir, "k"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "enc:"))
	assert.False(t, bytes.Contains(data, []byte("secret-token")))

	v, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "secret-token", v)

	// wrong key fails closed
	other, err := NewFileStore(dir, testKey(t))
	require.NoError(t, err)
	_, ok = other.Get("k")
	assert.False(t, ok)
}

// Plaintext files written before encryption was switched on stay readable.
func TestFileStoreReadsLegacyPlaintext(t *testing.T) {
	dir := t.TempDir()
	plain, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	require.NoError(t, plain.Set("k", "old-value"))

	encrypted, err := NewFileStore(dir, testKey(t))
	require.NoError(t, err)
	v, ok := encrypted.Get("k")
	require.True(t, ok)
	assert.Equal(t, "old-value", v)
}

func TestFileStoreRejectsShortKey(t *testing.T) {
	_, err := NewFileStore(t.TempDir(), []byte("too short"))
	assert.Error(t, err)
}

func TestFileStoreClear(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)
	require.NoError(t, store.Set("a", "1"))
	require.NoError(t, store.Set("b", "2"))

	require.NoError(t, store.Clear())
	_, ok := store.Get("a")
	assert.False(t, ok)
	_, ok = store.Get("b")
	assert.False(t, ok)
}

func TestEncryptDecrypt(t *testing.T) {
	key := testKey(t)

	sealed, err := Encrypt([]byte("hello"), key)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, "enc:"))

	// same plaintext seals differently each time (fresh nonce)
	sealed2, err := Encrypt([]byte("hello"), key)
	require.NoError(t, err)
	assert.NotEqual(t, sealed, sealed2)

	opened, err := Decrypt(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, "hello", opened)

	_, err = Decrypt(sealed, testKey(t))
	assert.Error(t, err)

	_, err = Decrypt("enc:not base64!!!", key)
	assert.Error(t, err)

	passthrough, err := Decrypt("no prefix", key)
	require.NoError(t, err)
	assert.Equal(t, "no prefix", passthrough)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	require.NoError(t, m.Set("k", "v"))
	v, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, m.Clear())
	_, ok = m.Get("k")
	assert.False(t, ok)
}
