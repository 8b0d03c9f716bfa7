// Package calculator is a client for the herd methane HTTP API.
package calculator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

const defaultTimeout = 15 * time.Second

// Client exposes the calculator API operations.
type Client interface {
	Compute(ctx context.Context, req models.ComputeRequest) (*models.ComputeResponse, error)
	WhatIf(ctx context.Context, req models.WhatIfRequest) (*models.WhatIfResponse, error)
	Presets(ctx context.Context) (*models.PresetList, error)
	Preset(ctx context.Context, name string) (*models.Preset, error)
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calculator api error: status=%d, message=%s", e.StatusCode, e.Message)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a client for the server at baseURL, e.g. "http://localhost:8080".
func NewClient(baseURL string) *APIClient {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(defaultTimeout)

	return &APIClient{httpClient: restyClient}
}

// Compute posts one calculation.
func (c *APIClient) Compute(ctx context.Context, req models.ComputeRequest) (*models.ComputeResponse, error) {
	result := new(models.ComputeResponse)
	if err := c.do(ctx, http.MethodPost, "/v1/emissions", req, result); err != nil {
		return nil, err
	}
	return result, nil
}

// WhatIf asks for the additive ranking of a herd.
func (c *APIClient) WhatIf(ctx context.Context, req models.WhatIfRequest) (*models.WhatIfResponse, error) {
	result := new(models.WhatIfResponse)
	if err := c.do(ctx, http.MethodPost, "/v1/emissions/what-if", req, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Presets lists the presets the server offers.
func (c *APIClient) Presets(ctx context.Context) (*models.PresetList, error) {
	result := new(models.PresetList)
	if err := c.do(ctx, http.MethodGet, "/v1/presets", nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Preset fetches the full tables of one preset.
func (c *APIClient) Preset(ctx context.Context, name string) (*models.Preset, error) {
	result := new(models.Preset)
	if err := c.do(ctx, http.MethodGet, "/v1/presets/"+url.PathEscape(name), nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, result any) error {
	apiErr := new(models.ErrorResponse)

	req := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Error
		if message == "" {
			message = strings.TrimSpace(resp.String())
		}
		return &APIError{StatusCode: resp.StatusCode(), Message: message}
	}

	return nil
}
