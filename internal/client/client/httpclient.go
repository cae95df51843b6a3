package client

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

	"github.com/dmitrijs2005/invtrack/internal/common"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 8 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// SetToken sets the session token sent on inventory requests.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (c *HTTPClient) Signup(ctx context.Context, email, password, fullName string) (string, error) {
	req := map[string]string{"email": email, "password": password, "fullName": fullName}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/signup", nil, req, false, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	req := map[string]string{"email": email, "password": password}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, req, false, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Ping checks /readyz.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/readyz", nil, nil, false, nil)
}

func (c *HTTPClient) List(ctx context.Context, query url.Values) ([]Item, error) {
	var resp struct {
		Data []Item `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/inventory/get/all", query, nil, true, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []Item{}
	}
	return resp.Data, nil
}

func (c *HTTPClient) Get(ctx context.Context, id string) (Item, error) {
	var resp struct {
		Data Item `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/inventory/getById/"+url.PathEscape(id), nil, nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) Add(ctx context.Context, fields map[string]any) (string, error) {
	var resp createdResponse
	if err := c.do(ctx, http.MethodPost, "/inventory/add", nil, fields, true, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *HTTPClient) Update(ctx context.Context, id string, fields map[string]any) error {
	return c.do(ctx, http.MethodPut, "/inventory/update/"+url.PathEscape(id), nil, fields, true, nil)
}

func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/inventory/delete/"+url.PathEscape(id), nil, nil, true, nil)
}

// do sends one request and decodes a 2xx body into out (when non-nil).
// Numbers are decoded as json.Number so field values survive unchanged.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, authed bool, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if authed && c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return errors.Join(ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg messageResponse
		_ = json.Unmarshal(data, &msg)
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
