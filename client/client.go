// Package client talks to the print shop API on behalf of the public site and
// the admin console.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// APIError is a failed request. Message is the backend's message when it sent
// one, otherwise a generic fallback.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return e.Message
}

// Message returns the text to show for err, falling back to fallback for
// transport failures and other non-API errors.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrLoginRequired) {
		return "Please log in again"
	}
	return fallback
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls the REST API under <origin>/api
type Client struct {
	session    *Session
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client bound to session
func New(session *Session, opts ...Option) *Client {
	c := &Client{
		session:    session,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the client's session
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.session.Origin() + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// part is one file in a multipart request
type part struct {
	field    string
	filename string
	content  io.Reader
}

func multipartBody(fields [][2]string, files []part) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", f[0], err)
		}
	}
	for _, f := range files {
		w, err := writer.CreateFormFile(f.field, f.filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := io.Copy(w, f.content); err != nil {
			return nil, "", fmt.Errorf("failed to copy %s: %w", f.filename, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

// request is one API call
type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	admin       bool
}

func jsonRequest(method, path string, payload interface{}) (request, error) {
	req := request{method: method, path: path}
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return req, fmt.Errorf("failed to encode request: %w", err)
		}
		req.body = bytes.NewReader(encoded)
		req.contentType = "application/json"
	}
	return req, nil
}

// do sends r and decodes the envelope's data into out (when non-nil)
func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	var token string
	if r.admin {
		var err error
		if token, err = c.session.Token(); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path, r.query), r.body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest || (decodeErr == nil && !env.Success) {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if apiErr.Message == "" {
			apiErr.Message = "Request failed"
		}
		if decodeErr == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			if env.Error.Message != "" {
				apiErr.Message = env.Error.Message
			}
		}
		return apiErr
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
