package api

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "github.com/diogo/sopchat/internal/errors"
	"github.com/diogo/sopchat/internal/models"
)

// LoadDocuments asks the backend to (re)index its document folder. The call
// blocks until the backend finishes, which can take a while on large corpora.
func (c *Client) LoadDocuments(ctx context.Context) (*models.LoadDocumentsResult, error) {
	body, err := c.do(ctx, "load documents", http.MethodPost, models.EndpointLoadDocuments, nil)
	if err != nil {
		return nil, err
	}

	var result models.LoadDocumentsResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apierrors.NewParseError("failed to parse load-documents response", models.EndpointLoadDocuments)
	}

	return &result, nil
}
