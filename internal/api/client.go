package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"porra/internal/config"
	"porra/internal/constants"
	"porra/internal/middleware"
)

var (
	ErrNetwork        = errors.New("network error")
	ErrTimeout        = fmt.Errorf("%w: request timed out", ErrNetwork)
	ErrSessionExpired = errors.New("session expired")
)

// TokenProvider is where the client reads and writes the session. It is
// injected so the client never reaches for global auth state.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshCookie(ctx context.Context) (string, error)
	SaveTokens(ctx context.Context, accessToken, refreshCookie string) error
	ClearTokens(ctx context.Context) error
}

type Client struct {
	baseURL string
	timeout time.Duration
	client  *fasthttp.Client
	tokens  TokenProvider
	logger  zerolog.Logger
}

func NewClient(cfg *config.Config, tokens TokenProvider, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		timeout: cfg.APITimeout,
		client: &fasthttp.Client{
			Name:                "porra-cli",
			MaxConnsPerHost:     constants.APIMaxConnsPerHost,
			ReadTimeout:         cfg.APITimeout,
			WriteTimeout:        cfg.APITimeout,
			MaxIdleConnDuration: constants.APIMaxIdleConnDuration,
			MaxResponseBodySize: constants.APIMaxResponseBodySize,
		},
		tokens: tokens,
		logger: logger,
	}
}

// call describes one request. Public calls are the ones made without a
// session (login, register, ...): a 401 there is an answer, not an expired
// token.
type call struct {
	method string
	path   string
	body   any
	public bool
	cookie string
}

type response struct {
	status        int
	body          []byte
	refreshCookie string
}

type envelope[T any] struct {
	Data T `json:"data"`
}

// doRequest sends the call and decodes the "data" member of the reply. On a
// 401 it refreshes the session once and repeats the call once. Concurrent
// calls that hit a 401 each refresh on their own.
func doRequest[T any](ctx context.Context, c *Client, cl call) (*T, error) {
	res, err := c.send(ctx, cl)
	if err != nil {
		return nil, err
	}

	var out envelope[T]
	if len(res.body) == 0 {
		return &out.Data, nil
	}
	if err := json.Unmarshal(res.body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s %s response: %w", cl.method, cl.path, err)
	}
	return &out.Data, nil
}

func (c *Client) send(ctx context.Context, cl call) (*response, error) {
	res, err := c.roundTrip(ctx, cl)
	if err != nil {
		return nil, err
	}

	if res.status == http.StatusUnauthorized && !cl.public {
		c.logger.Debug().Str("path", cl.path).Msg("access token rejected, refreshing session")
		if err := c.refresh(ctx); err != nil {
			return nil, err
		}
		res, err = c.roundTrip(ctx, cl)
		if err != nil {
			return nil, err
		}
	}

	if res.status < 200 || res.status >= 300 {
		return nil, newError(res.status, res.body)
	}
	return res, nil
}

func (c *Client) refresh(ctx context.Context) error {
	cookie, err := c.tokens.RefreshCookie(ctx)
	if err != nil {
		return fmt.Errorf("failed to read refresh token: %w", err)
	}
	if cookie == "" {
		c.clear(ctx)
		return ErrSessionExpired
	}

	res, err := c.roundTrip(ctx, call{method: fasthttp.MethodPost, path: "/auth/refresh", public: true, cookie: cookie})
	if err != nil {
		return err
	}
	if res.status != http.StatusOK && res.status != http.StatusCreated {
		c.logger.Info().Int("status", res.status).Msg("session refresh rejected")
		c.clear(ctx)
		return ErrSessionExpired
	}

	var out envelope[TokenResponse]
	if err := json.Unmarshal(res.body, &out); err != nil || out.Data.AccessToken == "" {
		c.clear(ctx)
		return ErrSessionExpired
	}

	next := cookie
	if res.refreshCookie != "" {
		next = res.refreshCookie
	}
	if err := c.tokens.SaveTokens(ctx, out.Data.AccessToken, next); err != nil {
		return fmt.Errorf("failed to save refreshed session: %w", err)
	}
	c.logger.Debug().Msg("session refreshed")
	return nil
}

func (c *Client) clear(ctx context.Context) {
	if err := c.tokens.ClearTokens(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("failed to clear session")
	}
}

func (c *Client) roundTrip(ctx context.Context, cl call) (*response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + cl.path)
	req.Header.SetMethod(cl.method)
	req.Header.Set("Accept", "application/json")

	if id := middleware.GetRequestID(ctx); id != "" {
		req.Header.Set(constants.RequestIDHeader, id)
	}

	if !cl.public {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read access token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if cl.cookie != "" {
		req.Header.SetCookie(constants.RefreshCookieName, cl.cookie)
	}

	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s body: %w", cl.method, cl.path, err)
		}
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(payload)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	start := time.Now()
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		c.logger.Debug().Err(err).Str("method", cl.method).Str("path", cl.path).Msg("request failed")
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	res := &response{
		status: resp.StatusCode(),
		body:   append([]byte(nil), resp.Body()...),
	}

	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)
	cookie.SetKey(constants.RefreshCookieName)
	if resp.Header.Cookie(cookie) {
		res.refreshCookie = string(cookie.Value())
	}

	c.logger.Debug().
		Str("method", cl.method).
		Str("path", cl.path).
		Int("status", res.status).
		Dur("duration", time.Since(start)).
		Msg("api request")

	return res, nil
}
