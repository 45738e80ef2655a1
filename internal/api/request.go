package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	apierrors "github.com/diogo/sopchat/internal/errors"
	"github.com/diogo/sopchat/internal/models"
)

// maxResponseBody bounds how much of a response is read into memory.
const maxResponseBody = 1 << 20

// maxErrorBody bounds how much of an error body is retained for diagnostics.
const maxErrorBody = 4096

// do executes one JSON request against the backend and returns the response
// body. Transport failures become NetworkError; non-2xx responses become
// APIError carrying the extracted message and a bounded copy of the body.
func (c *Client) do(ctx context.Context, op, method, path string, payload interface{}) ([]byte, error) {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	endpoint := c.endpoint(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewNetworkError(op, endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))

	c.logger.Debug("request completed",
		zap.String("op", op),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errorBody := body
		if len(errorBody) > maxErrorBody {
			errorBody = errorBody[:maxErrorBody]
		}
		message := ExtractErrorMessage(errorBody,
			fmt.Errorf("request failed with status %d", resp.StatusCode))
		return nil, apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint, message, string(errorBody))
	}

	if readErr != nil {
		return nil, apierrors.NewNetworkError(op, endpoint, readErr)
	}

	return body, nil
}
