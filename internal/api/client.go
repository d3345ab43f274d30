// Package api is the HTTP client for the activities service.
//
// It covers the three endpoints the client needs: listing the catalog,
// signing a participant up and removing a participant. Every request is
// tagged with an X-Request-ID that also appears in the logs and in the
// returned errors.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Iron-Ham/signup/internal/activity"
	"github.com/Iron-Ham/signup/internal/errors"
	"github.com/Iron-Ham/signup/internal/logging"
	"github.com/google/uuid"
)

const (
	// defaultTimeout bounds each request when no option overrides it.
	defaultTimeout = 10 * time.Second

	// defaultUserAgent is sent when no option overrides it.
	defaultUserAgent = "signup-cli"

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 4 << 20

	// RequestIDHeader carries the per-request correlation ID.
	RequestIDHeader = "X-Request-ID"
)

// Client talks to the activities service rooted at a base URL.
type Client struct {
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client
	logger     *logging.Logger
	newID      func() string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger. The client tags it with component=api.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRequestIDs overrides how request IDs are generated.
func WithRequestIDs(gen func() string) ClientOption {
	return func(c *Client) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// NewClient creates a Client for the service at baseURL, e.g.
// "http://localhost:8000". Request paths are appended to it.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "parse base url %q: %v", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "base url %q must use http or https", baseURL)
	}

	c := &Client{
		baseURL:   u,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logging.NopLogger(),
		newID:  uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("api")

	return c, nil
}

// BaseURL returns the service root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ActivitiesURL returns the catalog endpoint.
func (c *Client) ActivitiesURL() string {
	return c.endpoint("activities")
}

// SignupURL returns the sign-up endpoint for activity and email.
// The activity name is a single escaped path segment.
func (c *Client) SignupURL(activityName, email string) string {
	return c.endpoint("activities", activityName, "signup") + "?email=" + url.QueryEscape(email)
}

// RemovalURL returns the participant removal endpoint for activity and email.
func (c *Client) RemovalURL(activityName, email string) string {
	return c.endpoint("activities", activityName, "participants") + "?email=" + url.QueryEscape(email)
}

func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL.String() + "/" + strings.Join(escaped, "/")
}

// messageBody is the success body of a mutation.
type messageBody struct {
	Message string `json:"message"`
}

// detailBody is the failure body of a mutation.
type detailBody struct {
	Detail string `json:"detail"`
}

// LoadCatalog fetches the full activity catalog. A network failure, a
// non-success status or an undecodable body yields a *errors.FetchError.
func (c *Client) LoadCatalog(ctx context.Context) (activity.Catalog, error) {
	target := c.ActivitiesURL()
	id := c.newID()
	log := c.logger.WithRequest(id)

	resp, body, err := c.do(ctx, http.MethodGet, target, id)
	if err != nil {
		log.Error("catalog fetch failed", "url", target, "error", err)
		return activity.Catalog{}, errors.NewFetchError("load activities", err).
			WithURL(target).WithRequestID(id)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("catalog fetch returned failure status", "url", target, "status", resp.StatusCode)
		return activity.Catalog{}, errors.NewFetchError("load activities", fmt.Errorf("unexpected status %s", resp.Status)).
			WithURL(target).WithStatus(resp.StatusCode).WithRequestID(id)
	}

	var catalog activity.Catalog
	if err := json.Unmarshal(body, &catalog); err != nil {
		log.Error("catalog decode failed", "url", target, "status", resp.StatusCode, "error", err)
		return activity.Catalog{}, errors.NewFetchError("decode activities", errors.Join(errors.ErrCatalogMalformed, err)).
			WithURL(target).WithStatus(resp.StatusCode).WithRequestID(id)
	}

	log.Debug("catalog loaded", "activities", catalog.Len())
	return catalog, nil
}

// SignUp registers email for the named activity and returns the server's
// confirmation message.
//
// A decoded failure response yields a *errors.SignupError carrying the
// status and detail; anything without a decodable body carries
// StatusCode zero.
func (c *Client) SignUp(ctx context.Context, activityName, email string) (string, error) {
	target := c.SignupURL(activityName, email)
	id := c.newID()
	log := c.logger.WithRequest(id).With("activity", activityName, "email", email)

	newErr := func(message string, cause error) *errors.SignupError {
		return errors.NewSignupError(message, cause).
			WithActivity(activityName).WithEmail(email).WithRequestID(id)
	}

	message, status, detail, err := c.mutate(ctx, http.MethodPost, target, id)
	switch {
	case err != nil:
		log.Error("sign-up request failed", "error", err)
		return "", newErr("sign-up request failed", errors.Join(errors.ErrSignupFailed, err))
	case status != 0:
		log.Warn("sign-up rejected", "status", status, "detail", detail)
		return "", newErr("sign-up rejected", errors.ErrSignupRejected).WithResponse(status, detail)
	}

	log.Info("signed up", "message", message)
	return message, nil
}

// RemoveParticipant unregisters email from the named activity and returns
// the server's confirmation message. Failures follow SignUp, with
// *errors.RemovalError.
func (c *Client) RemoveParticipant(ctx context.Context, activityName, email string) (string, error) {
	target := c.RemovalURL(activityName, email)
	id := c.newID()
	log := c.logger.WithRequest(id).With("activity", activityName, "email", email)

	newErr := func(message string, cause error) *errors.RemovalError {
		return errors.NewRemovalError(message, cause).
			WithActivity(activityName).WithEmail(email).WithRequestID(id)
	}

	message, status, detail, err := c.mutate(ctx, http.MethodDelete, target, id)
	switch {
	case err != nil:
		log.Error("removal request failed", "error", err)
		return "", newErr("removal request failed", errors.Join(errors.ErrRemovalFailed, err))
	case status != 0:
		log.Warn("removal rejected", "status", status, "detail", detail)
		return "", newErr("removal rejected", errors.ErrRemovalRejected).WithResponse(status, detail)
	}

	log.Info("participant removed", "message", message)
	return message, nil
}

// mutate performs a sign-up or removal request. On a 2xx with a decodable
// body it returns the message. On a non-2xx with a decodable body it
// returns the status and detail. Everything else is an error.
func (c *Client) mutate(ctx context.Context, method, target, id string) (message string, status int, detail string, err error) {
	resp, body, err := c.do(ctx, method, target, id)
	if err != nil {
		return "", 0, "", err
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		var ok messageBody
		if err := json.Unmarshal(body, &ok); err != nil {
			return "", 0, "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
		}
		return ok.Message, 0, "", nil
	}

	var failed detailBody
	if err := json.Unmarshal(body, &failed); err != nil {
		return "", 0, "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	return "", resp.StatusCode, failed.Detail, nil
}

// do sends a request and reads the whole response body.
func (c *Client) do(ctx context.Context, method, target, id string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, id)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, errors.Join(errors.ErrCanceled, err)
		}
		return nil, nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("request completed",
		"request_id", id,
		"method", method,
		"url", target,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, body, nil
}
