// Package upstream implements a thin typed client for the translation-management API.
//
// Every call is a single attempt: the client never retries, so non-idempotent
// writes (key creation, task creation, translation updates, uploads) are
// never duplicated. Upstream failures are normalized into *APIError with the
// original status code preserved for transparent pass-through.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/castlemill/tms-proxy/internal/domain/model"
	"github.com/castlemill/tms-proxy/internal/metrics"
)

// TokenHeader is the header carrying the upstream API credential.
const TokenHeader = "X-Api-Token"

// APIError is a normalized non-success response from the upstream API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.StatusCode, e.Message)
}

// errorBody matches the JSON error shapes the upstream API produces.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

// Client issues authenticated calls against the upstream API. It is safe for
// concurrent use; the credential is supplied per call, never stored.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (used by tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// New creates a Client for the given base URL. The timeout bounds the whole
// round trip; there is no other cancellation inside the client.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one authenticated round trip and returns the raw JSON body.
// op labels the call for metrics; it never contains request identifiers.
func (c *Client) do(ctx context.Context, token, op, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set(TokenHeader, token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(op, 0, time.Since(start))
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.RecordUpstreamRequest(op, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(raw, resp.StatusCode),
		}
	}

	return raw, nil
}

// extractErrorMessage picks a human-readable message from an upstream error
// body: the vendor field, then a generic message field, then status text.
func extractErrorMessage(raw []byte, statusCode int) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if eb.Error.Message != "" {
			return eb.Error.Message
		}
		if eb.Message != "" {
			return eb.Message
		}
	}
	return http.StatusText(statusCode)
}

func projectPath(projectID, suffix string) string {
	return "/projects/" + url.PathEscape(projectID) + suffix
}

// ListProjects returns the raw project list payload.
func (c *Client) ListProjects(ctx context.Context, token string) (json.RawMessage, error) {
	return c.do(ctx, token, "projects.list", http.MethodGet, "/projects", nil, nil)
}

// GetProject fetches project metadata as a generic record so that every
// top-level field is preserved for the flat merge in project detail assembly.
func (c *Client) GetProject(ctx context.Context, token, projectID string) (map[string]interface{}, error) {
	raw, err := c.do(ctx, token, "projects.get", http.MethodGet, projectPath(projectID, ""), nil, nil)
	if err != nil {
		return nil, err
	}
	var record map[string]interface{}
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decode project record: %w", err)
	}
	return record, nil
}

// ListLanguagesRaw returns the raw project languages payload.
func (c *Client) ListLanguagesRaw(ctx context.Context, token, projectID string) (json.RawMessage, error) {
	return c.do(ctx, token, "languages.list", http.MethodGet, projectPath(projectID, "/languages"), nil, nil)
}

// ListLanguages returns the project's languages. A response without a
// languages array yields an empty slice, not an error.
func (c *Client) ListLanguages(ctx context.Context, token, projectID string) ([]model.Language, error) {
	raw, err := c.ListLanguagesRaw(ctx, token, projectID)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Languages []model.Language `json:"languages"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode languages: %w", err)
	}
	if envelope.Languages == nil {
		return []model.Language{}, nil
	}
	return envelope.Languages, nil
}

// ListKeys fetches up to limit translation keys with their embedded
// per-language values. One bounded page only; projects with more keys than
// the limit are truncated.
func (c *Client) ListKeys(ctx context.Context, token, projectID string, limit int) ([]model.TranslationKey, error) {
	query := url.Values{
		"include_translations": {"1"},
		"limit":                {strconv.Itoa(limit)},
	}
	raw, err := c.do(ctx, token, "keys.list", http.MethodGet, projectPath(projectID, "/keys"), query, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Keys []model.TranslationKey `json:"keys"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode keys: %w", err)
	}
	return envelope.Keys, nil
}

// ListKeysRaw returns the raw key list payload, forwarding caller query options.
func (c *Client) ListKeysRaw(ctx context.Context, token, projectID string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, token, "keys.list", http.MethodGet, projectPath(projectID, "/keys"), query, nil)
}

// CreateKeys creates translation keys in the project.
func (c *Client) CreateKeys(ctx context.Context, token, projectID string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, token, "keys.create", http.MethodPost, projectPath(projectID, "/keys"), nil, body)
}

// ListTranslations returns the raw translation list payload.
func (c *Client) ListTranslations(ctx context.Context, token, projectID string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, token, "translations.list", http.MethodGet, projectPath(projectID, "/translations"), query, nil)
}

// GetTranslation returns one translation record.
func (c *Client) GetTranslation(ctx context.Context, token, projectID, translationID string) (json.RawMessage, error) {
	return c.do(ctx, token, "translations.get", http.MethodGet, projectPath(projectID, "/translations/"+url.PathEscape(translationID)), nil, nil)
}

// UpdateTranslation updates one translation record.
func (c *Client) UpdateTranslation(ctx context.Context, token, projectID, translationID string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, token, "translations.update", http.MethodPut, projectPath(projectID, "/translations/"+url.PathEscape(translationID)), nil, body)
}

// UploadFile uploads a translation file; the body's data field must already
// be normalized by the payload codec.
func (c *Client) UploadFile(ctx context.Context, token, projectID string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, token, "files.upload", http.MethodPost, projectPath(projectID, "/files/upload"), nil, body)
}

// DownloadFiles requests a bundle of translation files.
func (c *Client) DownloadFiles(ctx context.Context, token, projectID string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, token, "files.download", http.MethodPost, projectPath(projectID, "/files/download"), nil, body)
}

// ListContributors returns the raw contributor list payload.
func (c *Client) ListContributors(ctx context.Context, token, projectID string) (json.RawMessage, error) {
	return c.do(ctx, token, "contributors.list", http.MethodGet, projectPath(projectID, "/contributors"), nil, nil)
}

// GetContributor returns one contributor record.
func (c *Client) GetContributor(ctx context.Context, token, projectID, contributorID string) (json.RawMessage, error) {
	return c.do(ctx, token, "contributors.get", http.MethodGet, projectPath(projectID, "/contributors/"+url.PathEscape(contributorID)), nil, nil)
}

// CreateContributors adds contributors to the project.
func (c *Client) CreateContributors(ctx context.Context, token, projectID string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, token, "contributors.create", http.MethodPost, projectPath(projectID, "/contributors"), nil, body)
}

// ListTasks returns the raw task list payload.
func (c *Client) ListTasks(ctx context.Context, token, projectID string) (json.RawMessage, error) {
	return c.do(ctx, token, "tasks.list", http.MethodGet, projectPath(projectID, "/tasks"), nil, nil)
}

// GetTask returns one task record.
func (c *Client) GetTask(ctx context.Context, token, projectID, taskID string) (json.RawMessage, error) {
	return c.do(ctx, token, "tasks.get", http.MethodGet, projectPath(projectID, "/tasks/"+url.PathEscape(taskID)), nil, nil)
}

// CreateTask creates a task in the project.
func (c *Client) CreateTask(ctx context.Context, token, projectID string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, token, "tasks.create", http.MethodPost, projectPath(projectID, "/tasks"), nil, body)
}
