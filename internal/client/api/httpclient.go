package api

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

	"github.com/google/uuid"

	"casefile/internal/client/models"
)

// TokenSource returns the current bearer token, or "" when the session is
// unauthenticated. The HTTP client never caches the value; the credential
// store stays the single owner.
type TokenSource func() string

// HTTPClient talks to the backend over its fixed REST contract.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokenFn TokenSource
	timeout time.Duration
}

// NewHTTPClient builds a client for baseURL (scheme://host[:port], no
// trailing slash required). timeout bounds every request; zero disables the
// explicit deadline.
func NewHTTPClient(baseURL string, timeout time.Duration, tokenFn TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokenFn: tokenFn,
		timeout: timeout,
	}
}

// errorEnvelope mirrors the backend's error body: an "errors" collection
// (array of strings or map of field -> messages), falling back to "message".
type errorEnvelope struct {
	Errors  json.RawMessage `json:"errors"`
	Message string          `json:"message"`
}

// do performs one request: JSON body in, JSON body out. A nil out pointer
// discards the response body; 204 always counts as a null success body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokenFn(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s %s: %w", method, path, ErrTimeout)
		}
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatus(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) mapStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return &APIError{Status: resp.StatusCode, Message: extractMessage(raw)}
}

// extractMessage pulls a human-readable message out of the error envelope:
// the "errors" collection first, then "message", then the raw body text.
func extractMessage(raw []byte) string {
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if len(env.Errors) > 0 {
			if msg := flattenErrors(env.Errors); msg != "" {
				return msg
			}
		}
		if env.Message != "" {
			return env.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

func flattenErrors(raw json.RawMessage) string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}

	var fields map[string][]string
	if err := json.Unmarshal(raw, &fields); err == nil {
		var parts []string
		for _, msgs := range fields {
			parts = append(parts, msgs...)
		}
		return strings.Join(parts, "; ")
	}
	return ""
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var resp models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListCases(ctx context.Context) ([]models.CaseListItem, error) {
	var resp []models.CaseListItem
	if err := c.do(ctx, http.MethodGet, "/api/cases", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) GetCaseDetail(ctx context.Context, caseID string) (*models.CaseDetail, error) {
	var resp models.CaseDetail
	if err := c.do(ctx, http.MethodGet, "/cases/"+url.PathEscape(caseID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetCaseProgress(ctx context.Context, caseID string) (*models.CaseProgress, error) {
	var resp models.CaseProgress
	if err := c.do(ctx, http.MethodGet, "/cases/"+url.PathEscape(caseID)+"/progress", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SaveProgress(ctx context.Context, caseID string, req models.SaveProgressRequest) (*models.SaveProgressResponse, error) {
	var resp models.SaveProgressResponse
	if err := c.do(ctx, http.MethodPost, "/cases/"+url.PathEscape(caseID)+"/save-progress", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	var resp models.SubmitAnswerResponse
	if err := c.do(ctx, http.MethodPost, "/cases/submit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SubmitInference(ctx context.Context, caseID string, req models.SubmitInferenceRequest) (*models.SubmitInferenceResponse, error) {
	var resp models.SubmitInferenceResponse
	if err := c.do(ctx, http.MethodPost, "/cases/"+url.PathEscape(caseID)+"/submit-inference", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListSuspects(ctx context.Context, caseID string) ([]models.Suspect, error) {
	var resp []models.Suspect
	if err := c.do(ctx, http.MethodGet, "/cases/"+url.PathEscape(caseID)+"/suspects", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) GetSuspectDetail(ctx context.Context, suspectID string) (*models.SuspectDetail, error) {
	var resp models.SuspectDetail
	if err := c.do(ctx, http.MethodGet, "/suspects/"+url.PathEscape(suspectID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UnlockClue(ctx context.Context, clueID string) (*models.Clue, error) {
	var resp models.Clue
	if err := c.do(ctx, http.MethodPost, "/clues/"+url.PathEscape(clueID)+"/unlock", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var resp []models.LeaderboardEntry
	if err := c.do(ctx, http.MethodGet, "/leaderboard", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) CreateCase(ctx context.Context, req models.CaseUpsertRequest) (string, error) {
	var id string
	if err := c.do(ctx, http.MethodPost, "/admin/cases", req, &id); err != nil {
		return "", err
	}
	return id, nil
}

func (c *HTTPClient) UpdateCase(ctx context.Context, caseID string, req models.CaseUpsertRequest) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodPut, "/admin/cases/"+url.PathEscape(caseID), req, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

func (c *HTTPClient) DeleteCase(ctx context.Context, caseID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/cases/"+url.PathEscape(caseID), nil, nil)
}

var _ Client = (*HTTPClient)(nil)
