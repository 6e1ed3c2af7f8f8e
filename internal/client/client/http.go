package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/siteadmin/internal/client/models"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
	"github.com/google/uuid"
)

const (
	loginPath = "api/auth/login"
	usersPath = "api/users"

	RequestIDHeaderName = "X-Request-ID"
)

type HTTPClient struct {
	apiBase  *url.URL
	authBase *url.URL
	hc       *http.Client
	tokens   TokenSource
	timeout  time.Duration
	log      logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client. The client is copied;
// its transport gets wrapped with token and request-id injection.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.hc = hc }
}

// WithTimeout bounds every request; zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

// WithTokenSource attaches "Authorization: Bearer <token>" whenever ts
// yields a non-empty token.
func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient builds a client for the given base URLs. authBase serves
// login and registration; when empty it defaults to apiBase.
func NewHTTPClient(apiBase, authBase string, opts ...Option) (*HTTPClient, error) {
	api, err := parseBase(apiBase)
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}
	auth := api
	if authBase != "" {
		if auth, err = parseBase(authBase); err != nil {
			return nil, fmt.Errorf("auth base url: %w", err)
		}
	}

	c := &HTTPClient{apiBase: api, authBase: auth, hc: &http.Client{}, log: logging.Discard()}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.hc
	hc.Transport = &authTransport{base: c.hc.Transport, tokens: c.tokens}
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.hc = &hc
	return c, nil
}

func parseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute http(s) url", raw)
	}
	return u, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	var res models.LoginResult
	err := c.do(ctx, http.MethodPost, c.authBase.JoinPath(loginPath), creds, &res)
	return res, err
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, c.apiBase.JoinPath(usersPath), nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// CreateUser registers a new account. Registration lives next to login.
func (c *HTTPClient) CreateUser(ctx context.Context, user models.User) error {
	return c.do(ctx, http.MethodPost, c.authBase.JoinPath(usersPath), user, nil)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, user models.User) error {
	return c.do(ctx, http.MethodPut, c.apiBase.JoinPath(usersPath), user, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, c.apiBase.JoinPath(usersPath, pathSegment(id.String())), nil, nil)
}

// pathSegment escapes s as a single path segment, dots included.
func pathSegment(s string) string {
	switch s {
	case ".", "..":
		return strings.ReplaceAll(s, ".", "%2E")
	}
	return url.PathEscape(s)
}

// do sends body as JSON (when non-nil) and decodes a 2xx answer into out
// (when non-nil). Non-2xx answers become *APIError.
func (c *HTTPClient) do(ctx context.Context, method string, u *url.URL, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeaderName, uuid.NewString())

	started := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "url", u.String(), "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done",
		"method", method,
		"url", u.String(),
		"status", resp.StatusCode,
		"request_id", req.Header.Get(RequestIDHeaderName),
		"elapsed", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Message string `json:"message"`
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(b, &payload) == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}

// authTransport decorates outgoing requests with the bearer token from
// tokens, when one is stored.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.tokens == nil {
		return base.RoundTrip(req)
	}

	token, err := t.tokens.Token(req.Context())
	if err != nil || token == "" {
		return base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+token)
	return base.RoundTrip(r)
}
