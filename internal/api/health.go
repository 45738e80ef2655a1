package api

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "github.com/diogo/sopchat/internal/errors"
	"github.com/diogo/sopchat/internal/models"
)

// Health reports whether the backend and its vector database are usable.
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	body, err := c.do(ctx, "health check", http.MethodGet, models.EndpointHealth, nil)
	if err != nil {
		return nil, err
	}

	var status models.HealthStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, apierrors.NewParseError("failed to parse health response", models.EndpointHealth)
	}

	return &status, nil
}
