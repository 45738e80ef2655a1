package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/sopchat/internal/errors"
	"github.com/diogo/sopchat/internal/models"
)

// Query sends one question to the backend and returns the normalized answer.
func (c *Client) Query(ctx context.Context, text string) (*models.QueryResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apierrors.ErrEmptyQuery
	}

	payload := models.QueryRequest{
		Query: text,
		TopK:  c.topK,
	}

	body, err := c.do(ctx, "query", http.MethodPost, models.EndpointQuery, payload)
	if err != nil {
		return nil, err
	}

	return parseQueryResponse(body)
}

// parseQueryResponse tolerates partial bodies: answer defaults to the empty
// string and sources to nil when the field is missing or not an array.
func parseQueryResponse(body []byte) (*models.QueryResponse, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("response is not valid JSON", models.EndpointQuery)
	}

	parsed := gjson.ParseBytes(body)

	resp := &models.QueryResponse{
		Answer: parsed.Get("answer").String(),
	}

	if sources := parsed.Get("sources"); sources.IsArray() {
		for _, source := range sources.Array() {
			resp.Sources = append(resp.Sources, source.String())
		}
	}

	return resp, nil
}
