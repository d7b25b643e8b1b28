package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/valyala/fasthttp"
)

// Login opens a session: the access token comes in the body and the refresh
// token in a cookie. Both end up in the token provider.
func (c *Client) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	res, err := c.send(ctx, call{method: fasthttp.MethodPost, path: "/auth/login", body: in, public: true})
	if err != nil {
		return nil, err
	}

	var out envelope[AuthResponse]
	if err := json.Unmarshal(res.body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if out.Data.AccessToken == "" {
		return nil, fmt.Errorf("login response without access token")
	}

	if err := c.tokens.SaveTokens(ctx, out.Data.AccessToken, res.refreshCookie); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return &out.Data, nil
}

func (c *Client) Register(ctx context.Context, in RegisterRequest) (*MessageResponse, error) {
	return doRequest[MessageResponse](ctx, c, call{method: fasthttp.MethodPost, path: "/auth/register", body: in, public: true})
}

func (c *Client) VerifyEmail(ctx context.Context, in VerifyEmailRequest) (*MessageResponse, error) {
	return doRequest[MessageResponse](ctx, c, call{method: fasthttp.MethodPost, path: "/auth/verify-email", body: in, public: true})
}

func (c *Client) ForgotPassword(ctx context.Context, in ForgotPasswordRequest) (*MessageResponse, error) {
	return doRequest[MessageResponse](ctx, c, call{method: fasthttp.MethodPost, path: "/auth/forgot-password", body: in, public: true})
}

func (c *Client) ResetPassword(ctx context.Context, in ResetPasswordRequest) (*MessageResponse, error) {
	return doRequest[MessageResponse](ctx, c, call{method: fasthttp.MethodPost, path: "/auth/reset-password", body: in, public: true})
}

func (c *Client) Me(ctx context.Context) (*UserDTO, error) {
	return doRequest[UserDTO](ctx, c, call{method: fasthttp.MethodGet, path: "/auth/me"})
}

// Logout tells the backend to drop the refresh token and always forgets the
// local session, even when the backend call fails.
func (c *Client) Logout(ctx context.Context) error {
	cookie, err := c.tokens.RefreshCookie(ctx)
	if err != nil {
		return fmt.Errorf("failed to read refresh token: %w", err)
	}
	_, sendErr := c.send(ctx, call{method: fasthttp.MethodPost, path: "/auth/logout", cookie: cookie})
	if err := c.tokens.ClearTokens(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return sendErr
}
