package api

import (
	"context"
	"net/http"

	"github.com/pocketfin-dev/pocketfin/internal/model"
)

// TokenResponse is the login payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterParams starts the registration flow; the password is set later,
// after OTP verification.
type RegisterParams struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	var out TokenResponse
	err := c.request(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

// Me fetches the authenticated user.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var out model.User
	err := c.request(ctx, http.MethodGet, "/auth/me", nil, &out)
	return out, err
}

// RegisterStart begins registration; the server emails an OTP.
func (c *Client) RegisterStart(ctx context.Context, params RegisterParams) error {
	return c.request(ctx, http.MethodPost, "/auth/register/start", params, nil)
}

// VerifyOTPResult carries the short-lived token used to set the password.
type VerifyOTPResult struct {
	RegistrationToken string `json:"registration_token"`
}

// VerifyOTP confirms the emailed code.
func (c *Client) VerifyOTP(ctx context.Context, email, code string) (VerifyOTPResult, error) {
	var out VerifyOTPResult
	err := c.request(ctx, http.MethodPost, "/auth/verify-otp", map[string]string{
		"email": email,
		"code":  code,
	}, &out)
	return out, err
}

// ResendOTP re-sends the registration code.
func (c *Client) ResendOTP(ctx context.Context, email string) error {
	return c.request(ctx, http.MethodPost, "/auth/resend-otp", map[string]string{
		"email": email,
	}, nil)
}

// SetPassword completes registration.
func (c *Client) SetPassword(ctx context.Context, registrationToken, password string) error {
	return c.request(ctx, http.MethodPost, "/auth/set-password", map[string]string{
		"registration_token": registrationToken,
		"password":           password,
	}, nil)
}

// ResetStart begins the password reset flow; the server emails an OTP.
func (c *Client) ResetStart(ctx context.Context, email string) error {
	return c.request(ctx, http.MethodPost, "/auth/reset-password/start", map[string]string{
		"email": email,
	}, nil)
}

// ResetVerifyResult carries the short-lived token used to confirm the reset.
type ResetVerifyResult struct {
	ResetToken string `json:"reset_token"`
}

// ResetVerify confirms the reset code.
func (c *Client) ResetVerify(ctx context.Context, email, code string) (ResetVerifyResult, error) {
	var out ResetVerifyResult
	err := c.request(ctx, http.MethodPost, "/auth/reset-password/verify", map[string]string{
		"email": email,
		"code":  code,
	}, &out)
	return out, err
}

// ResetConfirm sets the new password.
func (c *Client) ResetConfirm(ctx context.Context, resetToken, password string) error {
	return c.request(ctx, http.MethodPost, "/auth/reset-password/confirm", map[string]string{
		"reset_token": resetToken,
		"password":    password,
	}, nil)
}
