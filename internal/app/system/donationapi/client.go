// internal/app/system/donationapi/client.go
//
// Package donationapi is the typed client for the donation backend. Every
// view talks to the backend through a *Client; the caller's backend session
// travels in the request context (see WithCredential).
package donationapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/givingback/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader is set on every outbound request.
	RequestIDHeader = "X-Request-ID"

	// maxBodyBytes bounds how much of a response body is read.
	maxBodyBytes = 8 << 20
)

// Config configures a Client.
type Config struct {
	BaseURL    string        // e.g. http://localhost:8000
	Timeout    time.Duration // per-request client timeout; 0 means no client-level timeout
	HTTPClient *http.Client  // optional; a client with Timeout is built when nil
	Logger     *zap.Logger   // optional
}

// Client talks to the donation backend.
type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger
}

// LoginResult is a successful login.
type LoginResult struct {
	Message    string
	Credential Credential
}

// Image is opaque image data proxied from the backend.
type Image struct {
	ContentType string
	Data        []byte
}

// New builds a Client. BaseURL must be an absolute http(s) URL.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("donationapi: invalid base URL %q", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{base: u, http: hc, log: logger}, nil
}

// Login authenticates with the backend. On success the returned Credential
// holds the session cookies the backend set.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		Message string `json:"message"`
	}
	resp, err := c.do(ctx, "login", http.MethodPost, "/api/login/", body, &out)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Message: out.Message, Credential: credentialFromCookies(resp.Cookies())}, nil
}

// ListCharities returns every charity the backend knows.
func (c *Client) ListCharities(ctx context.Context) ([]models.Charity, error) {
	var out []models.Charity
	if _, err := c.do(ctx, "list_charities", http.MethodGet, "/api/charities/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDonation submits a new donation and returns the stored record.
func (c *Client) CreateDonation(ctx context.Context, in models.DonationInput) (models.Donation, error) {
	var out models.Donation
	if _, err := c.do(ctx, "create_donation", http.MethodPost, "/api/donations/", in, &out); err != nil {
		return models.Donation{}, err
	}
	return out, nil
}

// ListDonations returns donations visible to the caller. The backend answers
// with either a bare array or a {"results": [...]} envelope; both come back
// as the same slice.
func (c *Client) ListDonations(ctx context.Context) ([]models.Donation, error) {
	var raw json.RawMessage
	if _, err := c.do(ctx, "list_donations", http.MethodGet, "/api/donations/", nil, &raw); err != nil {
		return nil, err
	}
	list, err := decodeDonationList(raw)
	if err != nil {
		return nil, fmt.Errorf("donationapi: list_donations: %w", err)
	}
	return list, nil
}

func decodeDonationList(raw json.RawMessage) ([]models.Donation, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrUnexpectedShape
	}
	switch trimmed[0] {
	case '[':
		var list []models.Donation
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return nonNil(list), nil
	case '{':
		var env struct {
			Results *[]models.Donation `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, err
		}
		if env.Results == nil {
			return nil, ErrUnexpectedShape
		}
		return nonNil(*env.Results), nil
	default:
		return nil, ErrUnexpectedShape
	}
}

func nonNil(list []models.Donation) []models.Donation {
	if list == nil {
		return []models.Donation{}
	}
	return list
}

// ConfirmDonation moves a pending donation to confirmed.
func (c *Client) ConfirmDonation(ctx context.Context, id models.ID) error {
	return c.transition(ctx, "confirm_donation", id, "confirm")
}

// FailDonation moves a pending donation to failed.
func (c *Client) FailDonation(ctx context.Context, id models.ID) error {
	return c.transition(ctx, "fail_donation", id, "fail")
}

func (c *Client) transition(ctx context.Context, op string, id models.ID, action string) error {
	if strings.TrimSpace(id.String()) == "" {
		return fmt.Errorf("donationapi: %s: empty donation id", op)
	}
	path := "/api/donations/" + url.PathEscape(id.String()) + "/" + action + "/"
	_, err := c.do(ctx, op, http.MethodPatch, path, struct{}{}, nil)
	return err
}

// Analytics returns the aggregate donation summary.
func (c *Client) Analytics(ctx context.Context) (models.AnalyticsSummary, error) {
	var out models.AnalyticsSummary
	if _, err := c.do(ctx, "analytics", http.MethodGet, "/api/analytics/", nil, &out); err != nil {
		return models.AnalyticsSummary{}, err
	}
	return out, nil
}

// Chart returns the backend's analytics chart image unchanged.
func (c *Client) Chart(ctx context.Context) (Image, error) {
	req, reqID, err := c.newRequest(ctx, http.MethodGet, "/api/charts/", nil)
	if err != nil {
		return Image{}, err
	}
	var img Image
	err = c.send("chart", req, reqID, func(resp *http.Response, body []byte) error {
		img = Image{ContentType: resp.Header.Get("Content-Type"), Data: body}
		return nil
	})
	if err != nil {
		return Image{}, err
	}
	if img.ContentType == "" {
		img.ContentType = http.DetectContentType(img.Data)
	}
	return img, nil
}

// Ping reports whether the backend answers HTTP at all. Any response,
// including 4xx, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, _, err := c.newRequest(ctx, http.MethodGet, "/api/charities/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("donationapi: ping: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// do sends a JSON request and decodes a 2xx JSON response into out (unless
// out is nil).
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (*http.Response, error) {
	var payload io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("donationapi: %s: encode request: %w", op, err)
		}
		payload = bytes.NewReader(b)
	}
	req, reqID, err := c.newRequest(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	var resp *http.Response
	err = c.send(op, req, reqID, func(r *http.Response, body []byte) error {
		resp = r
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("donationapi: %s: decode response: %w", op, err)
		}
		return nil
	})
	return resp, err
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, string, error) {
	u := *c.base
	u.Path = c.base.Path + path
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, "", fmt.Errorf("donationapi: build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	if cred, ok := CredentialFrom(ctx); ok {
		req.Header.Set("Cookie", cred.Cookie)
	}
	return req, reqID, nil
}

// send executes req, records metrics, maps non-2xx to *APIError and hands
// the body of a 2xx response to handle.
func (c *Client) send(op string, req *http.Request, reqID string, handle func(*http.Response, []byte) error) error {
	start := time.Now()
	outcome := "error"
	defer func() {
		requestsTotal.WithLabelValues(op, outcome).Inc()
		requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend request failed",
			zap.String("op", op),
			zap.String("request_id", reqID),
			zap.Error(err))
		return fmt.Errorf("donationapi: %s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("donationapi: %s: read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = "status_" + statusClass(resp.StatusCode)
		apiErr := &APIError{Op: op, StatusCode: resp.StatusCode, Message: errorBody(body)}
		c.log.Warn("backend returned error status",
			zap.String("op", op),
			zap.String("request_id", reqID),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if err := handle(resp, body); err != nil {
		outcome = "decode_error"
		c.log.Warn("backend response undecodable",
			zap.String("op", op),
			zap.String("request_id", reqID),
			zap.Error(err))
		return err
	}
	outcome = "ok"
	return nil
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	default:
		return "other"
	}
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
