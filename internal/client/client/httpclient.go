package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/runaudit/internal/client/models"
	"github.com/dmitrijs2005/runaudit/internal/common"
)

// HTTPClient implements Client against the runaudit HTTP API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the server at serverURL, e.g.
// "http://127.0.0.1:8000".
func NewHTTPClient(serverURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported server URL %q", serverURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(serverURL, "/") + common.APIPrefix,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type errorBody struct {
	Detail string `json:"detail"`
}

// do sends a request and decodes a JSON answer into out when out is not nil.
func (c *HTTPClient) do(ctx context.Context, method, path, token, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &eb) != nil {
			eb.Detail = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: eb.Detail}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	if in == nil {
		return c.do(ctx, method, path, token, "", nil, out)
	}
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, token, "application/json", bytes.NewReader(b), out)
}

func (c *HTTPClient) Signup(ctx context.Context, email, password string, fullName *string) (*models.User, error) {
	in := map[string]any{"email": email, "password": password, "full_name": fullName}
	var u models.User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signup", "", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Token, error) {
	in := map[string]string{"email": email, "password": password}
	var t models.Token
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", "", nil, nil)
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", token, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Templates(ctx context.Context) ([]*models.Template, error) {
	var items []*models.Template
	if err := c.doJSON(ctx, http.MethodGet, "/templates/", "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) Template(ctx context.Context, id string) (*models.Template, error) {
	var t models.Template
	if err := c.doJSON(ctx, http.MethodGet, "/templates/"+url.PathEscape(id), "", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) UploadRun(ctx context.Context, token, templateID, fileName string, content []byte) (*models.Run, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("template_id", templateID); err != nil {
		return nil, err
	}
	fw, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(content); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var r models.Run
	if err := c.do(ctx, http.MethodPost, "/runs/upload", token, w.FormDataContentType(), &buf, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) Runs(ctx context.Context, token string) ([]*models.Run, error) {
	var items []*models.Run
	if err := c.doJSON(ctx, http.MethodGet, "/runs/", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) Run(ctx context.Context, token, id string) (*models.Run, error) {
	var r models.Run
	if err := c.doJSON(ctx, http.MethodGet, "/runs/"+url.PathEscape(id), token, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) Stats(ctx context.Context, token string) (*models.RunStats, error) {
	var s models.RunStats
	if err := c.doJSON(ctx, http.MethodGet, "/runs/stats", token, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) DownloadURL(ctx context.Context, token, id string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/runs/"+url.PathEscape(id)+"/download", token, nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *HTTPClient) Health(ctx context.Context) (*models.Health, error) {
	var h models.Health
	if err := c.doJSON(ctx, http.MethodGet, "/healthz", "", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
