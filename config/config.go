package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Storage keys for the persisted session. The user record is stored as JSON
// under UserKey; the other two hold raw token strings.
const (
	AccessTokenKey  = "sciencehub_access_token"
	RefreshTokenKey = "sciencehub_refresh_token"
	UserKey         = "sciencehub_user"
)

const defaultAPIURL = "https://sciencehub-backend-ymqy.onrender.com"

type Config struct {
	APIURL          string
	StateDir        string // where tokens persist between runs
	DefaultPageSize int
	HTTPTimeout     time.Duration
	LogLevel        string
	EncryptionKey   []byte // 32 bytes for AES-256; optional, base64 in env; encrypts persisted tokens at rest
}

func Load() (*Config, error) {
	timeout := 30 * time.Second
	if v := getEnv("HUBCTL_HTTP_TIMEOUT", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}
	pageSize := 12
	if v := getEnv("HUBCTL_PAGE_SIZE", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}
	var encKey []byte
	if k := getEnv("HUBCTL_STORAGE_KEY", ""); k != "" {
		encKey, _ = base64.StdEncoding.DecodeString(k)
		if len(encKey) != 32 {
			encKey = nil
		}
	}

	return &Config{
		APIURL:          getEnv("HUBCTL_API_URL", defaultAPIURL),
		StateDir:        getEnv("HUBCTL_STATE_DIR", defaultStateDir()),
		DefaultPageSize: pageSize,
		HTTPTimeout:     timeout,
		LogLevel:        getEnv("HUBCTL_LOG_LEVEL", "warn"),
		EncryptionKey:   encKey,
	}, nil
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "hubctl")
	}
	return ".hubctl"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
