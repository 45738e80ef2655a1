package commands

import (
	"errors"
	"strings"
	"testing"

	apierrors "github.com/diogo/sopchat/internal/errors"
)

func TestFormatErrorMessage(t *testing.T) {
	if got := formatErrorMessage(nil, "Query failed"); got != "" {
		t.Errorf("formatErrorMessage(nil) = %q, want empty", got)
	}

	err := apierrors.NewAPIErrorWithBody(422, "/api/query", "query too long",
		`{"detail": "query too long"}`)
	out := formatErrorMessage(err, "Query failed")

	if !strings.Contains(out, "Query failed") {
		t.Errorf("Output missing context: %q", out)
	}
	if !strings.Contains(out, "query too long") {
		t.Errorf("Output missing extracted message: %q", out)
	}
	if !strings.Contains(out, "422") {
		t.Errorf("Output missing HTTP status: %q", out)
	}
	if !strings.Contains(out, "/api/query") {
		t.Errorf("Output missing endpoint: %q", out)
	}
}

func TestFormatErrorMessageNetworkHint(t *testing.T) {
	err := apierrors.NewNetworkError("query", "/api/query", errors.New("connection refused"))
	out := formatErrorMessage(err, "Query failed")

	if !strings.Contains(out, "connection refused") {
		t.Errorf("Output missing cause: %q", out)
	}
	if !strings.Contains(out, "Hint") {
		t.Errorf("Output missing backend hint: %q", out)
	}
}

func TestRunQueryEmptyQuestion(t *testing.T) {
	if err := runQuery("   ", true); err == nil {
		t.Error("Expected error for empty question")
	}
}
