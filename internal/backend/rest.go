// Package backend is the HTTP transport to the remote booking backend,
// the system of record for sessions and bookings. It carries the
// caller's bearer token through unchanged and surfaces backend
// rejections as-is; it never retries.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/412299-Rodriguez/club-appointments/internal/logger"
	"github.com/412299-Rodriguez/club-appointments/internal/metrics"
)

// APIError is a rejection the backend itself produced. Status and
// message are passed through to the end user unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend rejected request (%d): %s", e.StatusCode, e.Message)
}

// errorBody covers the two envelope shapes the backend emits.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type Rest struct {
	baseURL string
	http    *http.Client
}

func NewRest(baseURL string, timeout time.Duration) *Rest {
	return &Rest{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (r *Rest) Get(ctx context.Context, token, path string, out interface{}) error {
	return r.do(ctx, http.MethodGet, token, path, nil, out)
}

func (r *Rest) Post(ctx context.Context, token, path string, body, out interface{}) error {
	return r.do(ctx, http.MethodPost, token, path, body, out)
}

func (r *Rest) Put(ctx context.Context, token, path string, body, out interface{}) error {
	return r.do(ctx, http.MethodPut, token, path, body, out)
}

func (r *Rest) do(ctx context.Context, method, token, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := r.http.Do(req)
	duration := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordBackendRequest(method, "error", duration)
		logger.Error("Backend request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	metrics.RecordBackendRequest(method, strconv.Itoa(resp.StatusCode), duration)

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil {
		var body errorBody
		if json.Unmarshal(data, &body) == nil {
			if body.Message != "" {
				apiErr.Message = body.Message
			} else {
				apiErr.Message = body.Error
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
