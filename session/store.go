// Package session holds the authenticated user and tokens for the running
// process, with an explicit lifecycle: uninitialized -> initializing ->
// (authenticated | anonymous). It is the only writer of the persisted
// session keys.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sciencehub/hubctl/config"
	"github.com/sciencehub/hubctl/models"
	"github.com/sciencehub/hubctl/tokens"
)

// ErrInvalidResponse means login returned no usable access token; the
// session is left untouched.
var ErrInvalidResponse = errors.New("session: login response carried no access token")

type Status int

const (
	StatusUninitialized Status = iota
	StatusInitializing
	StatusAnonymous
	StatusAuthenticated
)

// AuthAPI is the slice of the API client the store needs. Kept as an
// interface so tests can stub the backend.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Logout(ctx context.Context) error
}

type Store struct {
	storage tokens.Storage
	api     AuthAPI
	log     *logrus.Logger

	initOnce sync.Once

	mu           sync.RWMutex
	status       Status
	user         *models.User
	accessToken  string
	refreshToken string
}

func New(storage tokens.Storage, api AuthAPI, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{storage: storage, api: api, log: log, status: StatusUninitialized}
}

// Initialize loads the persisted session. Authenticated only when all three
// keys (access token, refresh token, user) are present; anything less is an
// anonymous session. Idempotent: concurrent and repeat calls share a single
// initialization pass.
func (s *Store) Initialize() {
	s.initOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.status = StatusInitializing

		access, okA := s.storage.Get(config.AccessTokenKey)
		refresh, okR := s.storage.Get(config.RefreshTokenKey)
		userJSON, okU := s.storage.Get(config.UserKey)

		if okA && okR && okU && access != "" && refresh != "" {
			var user models.User
			if err := json.Unmarshal([]byte(userJSON), &user); err == nil {
				s.accessToken = access
				s.refreshToken = refresh
				s.user = &user
				s.status = StatusAuthenticated
				return
			}
			s.log.Debug("persisted user record unreadable, starting anonymous")
		}
		s.status = StatusAnonymous
	})
}

// Login authenticates and establishes the session. A response without an
// access token aborts before any state is mutated.
func (s *Store) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return err
	}
	if resp.AccessToken == "" {
		return ErrInvalidResponse
	}

	email := resp.Email
	if email == "" {
		email = req.Email
	}
	role := resp.Role
	if role == "" {
		role = models.RoleUser
	}
	user := models.User{
		ID:               resp.ID,
		Email:            email,
		FullName:         resp.FullName,
		Role:             role,
		IsActive:         true,
		IsEmailConfirmed: true,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.storage.Set(config.AccessTokenKey, resp.AccessToken)
	if resp.RefreshToken != "" {
		s.storage.Set(config.RefreshTokenKey, resp.RefreshToken)
	}
	s.persistUser(user)

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.user = &user
	s.status = StatusAuthenticated
	return nil
}

// Logout invalidates the session server-side on a best-effort basis, then
// unconditionally clears local and persisted state.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.WithError(err).Debug("server-side logout failed, clearing locally")
	}
	s.ClearAuth()
}

// SetUser replaces the current user record (profile edits) and persists it.
func (s *Store) SetUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistUser(user)
	s.user = &user
}

// SetTokens stores a fresh token pair, marking the session authenticated.
func (s *Store) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storage.Set(config.AccessTokenKey, accessToken)
	s.storage.Set(config.RefreshTokenKey, refreshToken)
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.status = StatusAuthenticated
}

// ClearAuth wipes the in-memory session and the persisted keys.
func (s *Store) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storage.Delete(config.AccessTokenKey)
	s.storage.Delete(config.RefreshTokenKey)
	s.storage.Delete(config.UserKey)
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
	s.status = StatusAnonymous
}

func (s *Store) persistUser(user models.User) {
	if data, err := json.Marshal(user); err == nil {
		s.storage.Set(config.UserKey, string(data))
	}
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Store) IsAuthenticated() bool {
	return s.Status() == StatusAuthenticated
}

// User returns a copy of the current user; ok is false when anonymous.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// HasRole reports whether the current user's role is one of roles.
func (s *Store) HasRole(roles ...string) bool {
	user, ok := s.User()
	if !ok {
		return false
	}
	for _, r := range roles {
		if user.Role == r {
			return true
		}
	}
	return false
}

// IsAdmin is membership-based, not hierarchical: Admin and SuperAdmin both
// qualify.
func (s *Store) IsAdmin() bool {
	return s.HasRole(models.RoleAdmin, models.RoleSuperAdmin)
}

func (s *Store) IsSuperAdmin() bool {
	return s.HasRole(models.RoleSuperAdmin)
}
