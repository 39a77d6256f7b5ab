// Package api is the authenticated HTTP client for the ScienceHub backend.
// It attaches bearer tokens from storage, refreshes them once on 401, and
// feeds every response body through the normalize package so callers only
// ever see canonical entities.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/sciencehub/hubctl/config"
	"github.com/sciencehub/hubctl/models"
	"github.com/sciencehub/hubctl/normalize"
	"github.com/sciencehub/hubctl/tokens"
)

// Auth states for the refresh flow. A 401 moves the client into
// stateRefreshing for exactly one refresh-token exchange; success returns to
// stateAuthenticated and the request is retried once, failure lands in
// stateAnonymous with the stored tokens cleared. There is no edge from
// stateRefreshing back into itself, which is what makes an infinite retry
// loop impossible.
const (
	stateAnonymous = iota
	stateAuthenticated
	stateRefreshing
)

type Client struct {
	baseURL string
	httpc   *http.Client
	storage tokens.Storage
	norm    *normalize.Normalizer
	log     *logrus.Logger
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter

	mu    sync.Mutex // guards state and the refresh exchange
	state int
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRateLimit caps outgoing requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func New(cfg *config.Config, storage tokens.Storage, opts ...Option) *Client {
	base := strings.TrimRight(cfg.APIURL, "/")
	c := &Client{
		baseURL: base,
		httpc:   &http.Client{Timeout: cfg.HTTPTimeout},
		storage: storage,
		norm:    normalize.New(base),
		log:     logrus.StandardLogger(),
		limiter: rate.NewLimiter(rate.Limit(10), 20),
		state:   stateAnonymous,
	}
	if _, ok := storage.Get(config.AccessTokenKey); ok {
		c.state = stateAuthenticated
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "sciencehub",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend base, without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Normalizer exposes the client's normalizer (same base URL).
func (c *Client) Normalizer() *normalize.Normalizer { return c.norm }

// getJSON issues a GET and returns the decoded body for normalization.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (any, error) {
	return c.roundTrip(ctx, http.MethodGet, path, query, nil, "")
}

// sendJSON issues a JSON-bodied request. body may be nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, body any) (any, error) {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}
	return c.roundTrip(ctx, method, path, nil, encoded, "application/json")
}

// sendForm issues a multipart request with a prebuilt body.
func (c *Client) sendForm(ctx context.Context, method, path string, body []byte, contentType string) (any, error) {
	return c.roundTrip(ctx, method, path, nil, body, contentType)
}

// roundTrip performs one request with bearer auth and at most one
// refresh-and-retry on 401. The raw body bytes are kept so the retry can
// replay them.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (any, error) {
	resp, err := c.attempt(ctx, method, path, query, body, contentType, true)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !c.authPath(path) {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if err := c.refresh(ctx); err != nil {
			return nil, err
		}
		resp, err = c.attempt(ctx, method, path, query, body, contentType, true)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(resp)
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	var decoded any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		// Tolerate non-JSON success bodies; normalizers degrade to defaults.
		c.log.WithField("path", path).Debug("non-json response body")
		return nil, nil
	}
	return decoded, nil
}

// attempt performs a single HTTP exchange through the rate limiter and
// circuit breaker.
func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, withAuth bool) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if withAuth {
		c.attachBearer(ctx, req, path)
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (any, error) {
		return c.httpc.Do(req)
	})
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).WithError(err).Debug("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	resp := result.(*http.Response)
	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Debug("request")
	return resp, nil
}

// attachBearer sets the Authorization header from storage. Expired access
// tokens are refreshed up front when a refresh token is available, saving
// the 401 round trip.
func (c *Client) attachBearer(ctx context.Context, req *http.Request, path string) {
	if c.authPath(path) {
		return
	}
	token, ok := c.storage.Get(config.AccessTokenKey)
	if !ok || token == "" {
		return
	}
	if tokenExpired(token) {
		if _, ok := c.storage.Get(config.RefreshTokenKey); ok {
			if err := c.refresh(ctx); err == nil {
				if fresh, ok := c.storage.Get(config.AccessTokenKey); ok {
					token = fresh
				}
			}
		}
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

// authPath reports whether path is an auth endpoint, which must never
// recurse into the refresh flow. Logout is excluded: it carries the bearer
// token and its failures are swallowed by the caller anyway.
func (c *Client) authPath(path string) bool {
	return strings.HasPrefix(path, "/api/auth/") && path != "/api/auth/logout"
}

// tokenExpired parses the access token without verifying the signature
// (verification is the backend's job) and reports whether its exp claim has
// passed. Opaque tokens are treated as live.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}

// refresh performs a single refresh-token exchange, serialized across
// callers: whoever holds the lock does the exchange, everyone else finds
// fresh tokens already in storage.
func (c *Client) refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	refreshToken, ok := c.storage.Get(config.RefreshTokenKey)
	if !ok || refreshToken == "" {
		c.state = stateAnonymous
		return &Error{Status: http.StatusUnauthorized, Message: "session expired"}
	}
	c.state = stateRefreshing
	c.log.Debug("refreshing access token")

	body, err := json.Marshal(models.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}
	resp, err := c.attempt(ctx, http.MethodPost, "/api/auth/refresh", nil, body, "application/json", false)
	if err != nil {
		c.state = stateAnonymous
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.state = stateAnonymous
		c.clearTokens()
		return c.errorFromResponse(resp)
	}
	var decoded any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.state = stateAnonymous
		c.clearTokens()
		return fmt.Errorf("decode refresh response: %w", err)
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(decoded))
	auth := c.norm.Auth(raw)
	if auth.AccessToken == "" {
		c.state = stateAnonymous
		c.clearTokens()
		return &Error{Status: http.StatusUnauthorized, Message: "refresh returned no access token"}
	}
	c.storage.Set(config.AccessTokenKey, auth.AccessToken)
	if auth.RefreshToken != "" {
		c.storage.Set(config.RefreshTokenKey, auth.RefreshToken)
	}
	c.state = stateAuthenticated
	return nil
}

func (c *Client) clearTokens() {
	c.storage.Delete(config.AccessTokenKey)
	c.storage.Delete(config.RefreshTokenKey)
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	defer resp.Body.Close()
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var body any
	if len(data) > 0 && json.Unmarshal(data, &body) != nil {
		body = strings.TrimSpace(string(data))
	}
	return newError(resp.StatusCode, body)
}
