// Package ml provides the HTTP client for the external symptom classifier.
// The classifier is best-effort: a single request per intake, no retries, and
// any transport or shape failure surfaces as ErrPredictionUnavailable so that
// callers never proceed on fabricated prediction data.
package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrPredictionUnavailable indicates that the classifier was unreachable,
// timed out, or returned a response the client could not interpret.
var ErrPredictionUnavailable = errors.New("prediction service unavailable")

// Prediction is a single (disease, probability) pair. Probability is on a
// 0-100 percentage scale, as returned by the classifier.
type Prediction struct {
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
}

// Result is the normalized classifier response. Predictions is never nil and
// preserves the classifier's own ranking order verbatim. PriorityHint is the
// empty string when the classifier asserted no priority; IsDanger is nil when
// it asserted no danger flag.
type Result struct {
	Predictions  []Prediction
	PriorityHint string
	IsDanger     *bool
}

// predictRequest is the wire format of the classifier's /predict endpoint.
type predictRequest struct {
	Symptoms []string `json:"symptoms"`
}

// predictResponse mirrors the classifier's loosely-shaped JSON. Absent
// top_predictions means "no match", not an error.
type predictResponse struct {
	TopPredictions []Prediction `json:"top_predictions"`
	Priority       *string      `json:"priority"`
	IsDanger       *bool        `json:"is_danger"`
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) { cl.httpClient = c }
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) { cl.httpClient.Timeout = d }
}

// Client calls the external symptom classifier.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a classifier client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Predict sends the symptom list to the classifier and returns its ranked
// disease probabilities. An empty symptom list is legal and yields an empty
// prediction set. All failures wrap ErrPredictionUnavailable.
func (c *Client) Predict(ctx context.Context, symptoms []string) (*Result, error) {
	if symptoms == nil {
		symptoms = []string{}
	}

	payload, err := json.Marshal(predictRequest{Symptoms: symptoms})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", ErrPredictionUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrPredictionUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPredictionUnavailable, err)
	}
	defer resp.Body.Close()

	// Read at most 1MB of response body.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrPredictionUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: non-2xx response: %d", ErrPredictionUnavailable, resp.StatusCode)
	}

	var decoded predictResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrPredictionUnavailable, err)
	}

	result := &Result{
		Predictions: decoded.TopPredictions,
		IsDanger:    decoded.IsDanger,
	}
	if result.Predictions == nil {
		result.Predictions = []Prediction{}
	}
	if decoded.Priority != nil {
		result.PriorityHint = *decoded.Priority
	}
	return result, nil
}
