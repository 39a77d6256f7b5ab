package api

import (
	"context"
	"net/http"

	"github.com/sciencehub/hubctl/models"
	"github.com/sciencehub/hubctl/normalize"
)

// Login exchanges credentials for tokens. The response is normalized across
// shape variants; the caller (session store) decides whether the result is
// acceptable.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	body, err := c.sendJSON(ctx, http.MethodPost, "/api/auth/login", req)
	if err != nil {
		return models.AuthResponse{}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.Auth(raw), nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/api/auth/register", req)
	return err
}

func (c *Client) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/api/auth/verify-email", req)
	return err
}

func (c *Client) ResendVerificationCode(ctx context.Context, email string) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/api/auth/resend-verification-code", map[string]string{"email": email})
	return err
}

func (c *Client) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/api/auth/forgot-password", req)
	return err
}

func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/api/auth/reset-password", req)
	return err
}

// Logout asks the backend to invalidate the session. Callers treat a
// failure here as non-fatal; local state is cleared regardless.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/api/auth/logout", nil)
	return err
}

// CurrentUser fetches the authenticated account.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	body, err := c.getJSON(ctx, "/api/users/me", nil)
	if err != nil {
		return models.User{}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.User(raw), nil
}

func (c *Client) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/api/account/change-password", req)
	return err
}
