// Package store implements the repository contracts against the remote
// content store over HTTP. The store speaks a JSON envelope ({"data": ...})
// with bearer-token auth; its exact capabilities vary per deployment, which
// the adapters surface through the repository sentinel errors.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"fleetdesk/config"
	domainerrors "fleetdesk/internal/domain/errors"
	"fleetdesk/internal/domain/repository"
)

const defaultTimeout = 30 * time.Second

// Client is the shared HTTP client for all store adapters.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the store client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	timeout := cfg.Store.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Store.BaseURL, "/"),
		token:   cfg.Store.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// envelope is the store's response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// errorEnvelope is the store's error payload shape.
type errorEnvelope struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do performs one request and maps the outcome onto the engine's error
// taxonomy. 404 becomes the repository not-found sentinel so resolution
// strategies can fall through; every other failure propagates as a resolution
// failure, never as not-found.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("content store unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return domainerrors.ErrBackendUnreachable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read store response")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.Wrapf(repository.ErrRecordNotFound, "%s %s", method, path)
	case resp.StatusCode == http.StatusMethodNotAllowed:
		return domainerrors.ErrMethodNotSupported.WithDetails(method + " " + path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return domainerrors.NewBackendStatusError(resp.StatusCode, backendMessage(raw), method+" "+path)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrap(err, "decode store envelope")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "decode store payload")
	}

	return nil
}

// backendMessage extracts the human-readable message from the store's error
// payload when present.
func backendMessage(raw []byte) string {
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Errors) > 0 {
		return env.Errors[0].Message
	}

	return ""
}

// isRejectedQuery reports whether the store rejected the query shape itself,
// meaning the queried field is not filterable in this deployment.
func isRejectedQuery(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() == http.StatusBadRequest ||
		appErr.HTTPCode() == http.StatusUnprocessableEntity ||
		appErr.HTTPCode() == http.StatusMethodNotAllowed
}
