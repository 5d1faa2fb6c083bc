package rideapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/biketaxi-cli/internal/domain"
	"github.com/bnema/biketaxi-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// Fallback messages used when a failed exchange carries no error field,
// matching what the booking service itself reports for each operation.
const (
	fallbackRegister = "Registration failed"
	fallbackLogin    = "Login failed"
	fallbackBook     = "Booking failed"
	fallbackList     = "Failed to load bookings"
)

// RequestError is a completed exchange the service rejected, or a transport
// failure collapsed onto the same path. Message is always user-presentable.
type RequestError struct {
	Op      string
	Message string
	cause   error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.cause
}

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.RideService = (*Client)(nil)

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

type bookRequest struct {
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Distance    float64 `json:"distance"`
}

type bookResponse struct {
	Fare float64 `json:"fare"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	status, data, err := c.do(ctx, http.MethodPost, "/register", "", body)
	if err != nil {
		return &RequestError{Op: "register", Message: fallbackRegister, cause: err}
	}
	if !success(status) {
		return &RequestError{Op: "register", Message: errorMessage(data, fallbackRegister)}
	}

	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, string, error) {
	body := map[string]string{"email": email, "password": password}
	status, data, err := c.do(ctx, http.MethodPost, "/login", "", body)
	if err != nil {
		return "", "", &RequestError{Op: "login", Message: fallbackLogin, cause: err}
	}
	if !success(status) {
		return "", "", &RequestError{Op: "login", Message: errorMessage(data, fallbackLogin)}
	}

	var payload loginResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", "", &RequestError{Op: "login", Message: fallbackLogin, cause: fmt.Errorf("decode login response: %w", err)}
	}
	if payload.Token == "" || payload.Name == "" {
		return "", "", &RequestError{Op: "login", Message: fallbackLogin, cause: errors.New("login response missing token or name")}
	}

	return payload.Token, payload.Name, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	status, _, err := c.do(ctx, http.MethodPost, "/logout", token, nil)
	if err != nil {
		return fmt.Errorf("notify logout: %w", err)
	}
	if !success(status) {
		return fmt.Errorf("notify logout: status %d", status)
	}

	return nil
}

func (c *Client) Book(ctx context.Context, token string, draft domain.BookingDraft) (float64, error) {
	body := bookRequest{
		Source:      draft.Source,
		Destination: draft.Destination,
		Distance:    draft.DistanceKm,
	}
	status, data, err := c.do(ctx, http.MethodPost, "/book", token, body)
	if err != nil {
		return 0, &RequestError{Op: "book", Message: fallbackBook, cause: err}
	}
	if !success(status) {
		return 0, &RequestError{Op: "book", Message: errorMessage(data, fallbackBook)}
	}

	var payload bookResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, &RequestError{Op: "book", Message: fallbackBook, cause: fmt.Errorf("decode book response: %w", err)}
	}

	return payload.Fare, nil
}

func (c *Client) ListBookings(ctx context.Context, token string) ([]domain.BookingRecord, error) {
	status, data, err := c.do(ctx, http.MethodGet, "/bookings", token, nil)
	if err != nil {
		return nil, &RequestError{Op: "bookings", Message: fallbackList, cause: err}
	}
	if !success(status) {
		return nil, &RequestError{Op: "bookings", Message: errorMessage(data, fallbackList)}
	}

	var records []domain.BookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &RequestError{Op: "bookings", Message: fallbackList, cause: fmt.Errorf("decode bookings response: %w", err)}
	}

	return records, nil
}

// do issues one exchange and drains the response body before its request
// context is released, so a slow body is never cut off by the per-request
// timeout cancel. The token, when present, is sent verbatim as the
// Authorization header value; the service uses no bearer scheme.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (int, []byte, error) {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return 0, nil, err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create %s request: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("read %s response: %w", path, err)
	}

	return resp.StatusCode, data, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func success(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

func errorMessage(data []byte, fallback string) string {
	var payload errorResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return fallback
	}
	if payload.Error == "" {
		return fallback
	}
	return payload.Error
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
