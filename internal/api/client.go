// Package api is the typed client for the ActiveHQ REST API. Every call
// attaches the session's bearer token and transparently recovers from a
// single expired-token rejection by refreshing and retrying once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/activehq/activehq-go/internal/domain/auth"
	"github.com/activehq/activehq-go/internal/session"
)

const defaultTimeout = 30 * time.Second

// Config groups dependencies for the Client.
type Config struct {
	// BaseURL is the API root including the version prefix,
	// e.g. "http://localhost:8000/api/v1".
	BaseURL string
	// Session is the store tokens are read from and written back to.
	Session *session.Store
	// Timeout is the per-call budget. Defaults to 30s.
	Timeout time.Duration
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
	// Logger is optional.
	Logger *slog.Logger
}

// Client is the authenticated API client. Create one per process and share
// it; it is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	logger  *slog.Logger

	Auth        *AuthService
	Gym         *GymService
	Members     *MemberService
	Plans       *PlanService
	Memberships *MembershipService
	Payments    *PaymentService
	Attendance  *AttendanceService
	Reports     *ReportService
}

// NewClient builds a Client. BaseURL and Session are required.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url scheme: %q", u.Scheme)
	}
	if cfg.Session == nil {
		return nil, errors.New("session store is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	var logger *slog.Logger
	if cfg.Logger != nil {
		logger = cfg.Logger.With("component", "api_client")
	}

	c := &Client{
		baseURL: baseURL,
		http:    hc,
		session: cfg.Session,
		logger:  logger,
	}
	c.Auth = &AuthService{client: c}
	c.Gym = &GymService{client: c}
	c.Members = &MemberService{client: c}
	c.Plans = &PlanService{client: c}
	c.Memberships = &MembershipService{client: c}
	c.Payments = &PaymentService{client: c}
	c.Attendance = &AttendanceService{client: c}
	c.Reports = &ReportService{client: c}
	return c, nil
}

// Session exposes the backing store for callers that need a snapshot.
func (c *Client) Session() *session.Store { return c.session }

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do runs one logical request. The retry state is structural: the 401 branch
// below runs at most once per call, so no counter can leak across requests.
// Concurrent calls that each hit a 401 will each refresh independently; the
// session store serialises the resulting token writes.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, method, path, query, payload, c.session.Snapshot().AccessToken)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return c.finish(resp, out)
	}

	// First 401 for this request: attempt exactly one refresh-and-retry.
	origErr := c.responseError(resp)

	refreshToken := c.session.Snapshot().RefreshToken
	if refreshToken == "" {
		return origErr
	}

	tokens, refreshErr := c.refresh(ctx, refreshToken)
	if refreshErr != nil {
		// Authentication is no longer possible; clear the session and
		// surface the original rejection, not the refresh failure.
		if c.logger != nil {
			c.logger.WarnContext(ctx, "token refresh failed, clearing session", "error", refreshErr)
		}
		c.session.Logout(ctx)
		return origErr
	}
	c.session.SetTokens(ctx, tokens.AccessToken, tokens.RefreshToken)

	resp, err = c.send(ctx, method, path, query, payload, tokens.AccessToken)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}
	// Whatever the retry produced is final, including a second 401.
	return c.finish(resp, out)
}

// refresh exchanges the refresh token for a new pair. It deliberately goes
// around do: the refresh call itself must never trigger another refresh.
func (c *Client) refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	payload, err := encodeBody(auth.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	resp, err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, payload, "")
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("refresh request: %w", err)
	}

	var tokens auth.TokenResponse
	if finishErr := c.finish(resp, &tokens); finishErr != nil {
		return auth.TokenResponse{}, finishErr
	}
	if tokens.AccessToken == "" {
		return auth.TokenResponse{}, errors.New("refresh response missing access token")
	}
	return tokens, nil
}

// send dispatches one HTTP round-trip with the standard headers attached.
func (c *Client) send(
	ctx context.Context,
	method, path string,
	query url.Values,
	payload []byte,
	accessToken string,
) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	return c.http.Do(req)
}

// finish consumes the response: 2xx decodes into out, anything else becomes
// an *Error.
func (c *Client) finish(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.responseError(resp)
	}

	body, err := readAndClose(resp)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindNetwork, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// responseError reads and closes the body and builds the typed error.
func (c *Client) responseError(resp *http.Response) error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Kind:       kindForStatus(resp.StatusCode),
	}

	body, err := readAndClose(resp)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("read error response body failed", "error", err)
		}
		return apiErr
	}
	parseErrorBody(apiErr, body)
	return apiErr
}

func readAndClose(resp *http.Response) ([]byte, error) {
	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		if closeErr != nil {
			return nil, errors.Join(
				fmt.Errorf("read response body: %w", readErr),
				fmt.Errorf("close response body: %w", closeErr),
			)
		}
		return nil, fmt.Errorf("read response body: %w", readErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("close response body: %w", closeErr)
	}
	return body, nil
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return payload, nil
}
