// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// Client is the connection to the remote inventory API shared by all record
// adapters.
type Client struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

// NewClient normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the instrumented HTTP client with the
// resolved base URL and request timeout, stores the API token and
// initialises the shared HMAC hasher pool used for body signatures.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewClient(adapterCfg config.Adapter, appCfg config.App, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &Client{
		client:  client,
		hashKey: appCfg.HashKey,
		token:   strings.TrimSpace(appCfg.APIToken),
		now:     time.Now,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken replaces the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held, or an empty string.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// authedRequest returns a request carrying the bearer token. An expired JWT
// is rejected locally instead of making a round trip that can only fail.
func (c *Client) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := c.client.R().SetContext(ctx)

	token := c.Token()
	if token == "" {
		return req, nil
	}
	if err := utils.CheckTokenExpiry(token, c.now()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return req.SetHeader("Authorization", "Bearer "+token), nil
}

// signedBody marshals v and attaches it to req with its HMAC header.
func (c *Client) signedBody(req *resty.Request, v any) (*resty.Request, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req.SetHeader("Content-Type", "application/json").SetBody(body)
	if c.hashKey != "" {
		req.SetHeader(utils.HashHeader, utils.HashHex(body))
	}
	return req, nil
}

// get performs an authenticated GET and returns the mapped response.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*resty.Response, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetQueryParamsFromValues(query).Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// post performs an authenticated, signed JSON POST.
func (c *Client) post(ctx context.Context, path string, body any) (*resty.Response, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if req, err = c.signedBody(req, body); err != nil {
		return nil, err
	}

	resp, err := req.Post(path)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.logger.Debug().
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("remote write rejected")
		return nil, err
	}
	return resp, nil
}
