package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the Refuture backend.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client

	mu    sync.RWMutex
	token string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://127.0.0.1:8080". The trailing slash is trimmed.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the error response shape of every backend endpoint.
type errorBody struct {
	Message string `json:"message"`
}

// do issues a JSON request and decodes a 2xx response body into out
// (when out is non-nil). Non-2xx responses become *Error values;
// transport failures become ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := c.bearer(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return newError(resp.StatusCode, eb.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	in := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return newError(resp.StatusCode, eb.Message)
	}
	return nil
}

func (c *HTTPClient) ProfileByUser(ctx context.Context, userID string) (*models.Profile, error) {
	var out struct {
		Profile *models.Profile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/profiles/user/"+userID, nil, &out); err != nil {
		return nil, err
	}
	return out.Profile, nil
}

func (c *HTTPClient) ProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	var out struct {
		Profile *models.Profile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/profiles/"+id, nil, &out); err != nil {
		return nil, err
	}
	return out.Profile, nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	var out struct {
		Profile *models.Profile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/profiles", in, &out); err != nil {
		return nil, err
	}
	return out.Profile, nil
}

func (c *HTTPClient) PresignDocument(ctx context.Context, filename string) (*DocumentUpload, error) {
	in := map[string]string{"filename": filename}
	var out DocumentUpload
	if err := c.do(ctx, http.MethodPost, "/api/profiles/document", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadDocument PUTs file contents to a presigned URL returned by
// PresignDocument. The URL points at object storage, not the backend,
// so no bearer header is attached.
func (c *HTTPClient) UploadDocument(ctx context.Context, url string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}

func (c *HTTPClient) ProfileDocumentURL(ctx context.Context, profileID string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/profiles/"+profileID+"/document", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *HTTPClient) Opportunities(ctx context.Context) ([]models.Opportunity, error) {
	var out struct {
		Opportunities []models.Opportunity `json:"opportunities"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/opportunities", nil, &out); err != nil {
		return nil, err
	}
	return out.Opportunities, nil
}

func (c *HTTPClient) Opportunity(ctx context.Context, id string) (*models.Opportunity, error) {
	var out struct {
		Opportunity *models.Opportunity `json:"opportunity"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/opportunities/"+id, nil, &out); err != nil {
		return nil, err
	}
	return out.Opportunity, nil
}

func (c *HTTPClient) CreateOpportunity(ctx context.Context, in OpportunityInput) (*models.Opportunity, error) {
	var out struct {
		Opportunity *models.Opportunity `json:"opportunity"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/opportunities", in, &out); err != nil {
		return nil, err
	}
	return out.Opportunity, nil
}

func (c *HTTPClient) Users(ctx context.Context) ([]models.User, error) {
	var out struct {
		Users []models.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *HTTPClient) Settings(ctx context.Context) (*models.Settings, error) {
	var out struct {
		Settings *models.Settings `json:"settings"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, &out); err != nil {
		return nil, err
	}
	return out.Settings, nil
}

func (c *HTTPClient) UpdateSettings(ctx context.Context, s models.Settings) (*models.Settings, error) {
	var out struct {
		Settings *models.Settings `json:"settings"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/settings", s, &out); err != nil {
		return nil, err
	}
	return out.Settings, nil
}

func (c *HTTPClient) SubmitContact(ctx context.Context, msg models.ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/api/contact", msg, nil)
}
