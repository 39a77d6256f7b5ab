package tokens

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore keeps each key in its own file under dir, mode 0600. When an
// encryption key is set, values are sealed with AES-256-GCM before hitting
// disk.
type FileStore struct {
	mu     sync.Mutex
	dir    string
	encKey []byte // nil = plaintext
}

// NewFileStore creates dir if needed. key must be nil or 32 bytes.
func NewFileStore(dir string, key []byte) (*FileStore, error) {
	if key != nil && len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, encKey: key}, nil
}

func (f *FileStore) path(key string) string {
	// Keys are fixed constants, but sanitize anyway.
	return filepath.Join(f.dir, strings.ReplaceAll(key, string(os.PathSeparator), "_"))
}

func (f *FileStore) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return "", false
	}
	value := string(data)
	if f.encKey != nil {
		value, err = Decrypt(value, f.encKey)
		if err != nil {
			return "", false
		}
	}
	return value, true
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.encKey != nil {
		sealed, err := Encrypt([]byte(value), f.encKey)
		if err != nil {
			return err
		}
		value = sealed
	}
	return os.WriteFile(f.path(key), []byte(value), 0o600)
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Clear removes only the known session files, not the whole directory.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(f.dir, e.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
