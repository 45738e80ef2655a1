package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "github.com/diogo/sopchat/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/query" {
			t.Errorf("Path = %s, want /query", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", ct)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if payload["query"] != "What is the return policy?" {
			t.Errorf("query = %v, want question text", payload["query"])
		}
		if payload["top_k"] != float64(5) {
			t.Errorf("top_k = %v, want 5", payload["top_k"])
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer": "Returns are accepted within **30 days**.", "sources": ["policy.pdf", "faq.md"]}`))
	})

	resp, err := client.Query(context.Background(), "What is the return policy?")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if resp.Answer != "Returns are accepted within **30 days**." {
		t.Errorf("Answer = %q", resp.Answer)
	}
	if len(resp.Sources) != 2 || resp.Sources[0] != "policy.pdf" || resp.Sources[1] != "faq.md" {
		t.Errorf("Sources = %v, want [policy.pdf faq.md]", resp.Sources)
	}
}

func TestQueryTrimsInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload["query"] != "hello" {
			t.Errorf("query = %v, want trimmed text", payload["query"])
		}
		_, _ = w.Write([]byte(`{"answer": "hi", "sources": []}`))
	})

	if _, err := client.Query(context.Background(), "  hello  \n"); err != nil {
		t.Fatalf("Query() error = %v", err)
	}
}

func TestQueryEmptyText(t *testing.T) {
	client, err := NewClient("http://localhost:8000/api")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := client.Query(context.Background(), text); !errors.Is(err, apierrors.ErrEmptyQuery) {
			t.Errorf("Query(%q) error = %v, want ErrEmptyQuery", text, err)
		}
	}
}

func TestQueryMissingFields(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantAnswer  string
		wantSources int
	}{
		{
			name:        "missing sources",
			body:        `{"answer": "hello"}`,
			wantAnswer:  "hello",
			wantSources: 0,
		},
		{
			name:        "missing answer",
			body:        `{"sources": ["a.pdf"]}`,
			wantAnswer:  "",
			wantSources: 1,
		},
		{
			name:        "sources not an array",
			body:        `{"answer": "hello", "sources": "a.pdf"}`,
			wantAnswer:  "hello",
			wantSources: 0,
		},
		{
			name:        "empty sources array",
			body:        `{"answer": "hello", "sources": []}`,
			wantAnswer:  "hello",
			wantSources: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := client.Query(context.Background(), "question")
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if resp.Answer != tt.wantAnswer {
				t.Errorf("Answer = %q, want %q", resp.Answer, tt.wantAnswer)
			}
			if len(resp.Sources) != tt.wantSources {
				t.Errorf("len(Sources) = %d, want %d", len(resp.Sources), tt.wantSources)
			}
			if tt.wantSources == 0 && resp.HasSources() {
				t.Error("HasSources() = true, want false")
			}
		})
	}
}

func TestQueryInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.Query(context.Background(), "question")
	if !errors.Is(err, apierrors.ErrInvalidResponse) {
		t.Errorf("Query() error = %v, want ErrInvalidResponse", err)
	}
}

func TestQueryValidationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": [{"loc": ["body", "query"], "msg": "query too long", "type": "value_error"}]}`))
	})

	_, err := client.Query(context.Background(), "question")
	if err == nil {
		t.Fatal("Expected error for 422 response")
	}

	if !apierrors.IsAPIError(err) {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if got := apierrors.GetHTTPStatus(err); got != 422 {
		t.Errorf("GetHTTPStatus() = %d, want 422", got)
	}
	if got := apierrors.DisplayMessage(err); got != "query too long" {
		t.Errorf("DisplayMessage() = %q, want %q", got, "query too long")
	}
}

func TestQueryServerErrorWithoutDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.Query(context.Background(), "question")
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
	if got := apierrors.DisplayMessage(err); got != "request failed with status 500" {
		t.Errorf("DisplayMessage() = %q, want status message", got)
	}
}

func TestQueryNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client, err := NewClient(serverURL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	_, err = client.Query(context.Background(), "question")
	if err == nil {
		t.Fatal("Expected error for unreachable backend")
	}
	if !apierrors.IsNetworkError(err) {
		t.Errorf("Expected NetworkError, got %T: %v", err, err)
	}
}

func TestQueryContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Query(ctx, "question")
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}
	if !apierrors.IsNetworkError(err) {
		t.Errorf("Expected NetworkError for cancelled request, got %T", err)
	}
}

func TestHealth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/health" {
			t.Errorf("Path = %s, want /health", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status": "healthy", "database_connected": true, "documents_loaded": true}`))
	})

	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if !status.Healthy() {
		t.Errorf("Healthy() = false, want true for %+v", status)
	}
}

func TestHealthDegraded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "healthy", "database_connected": true, "documents_loaded": false}`))
	})

	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if status.Healthy() {
		t.Error("Healthy() = true, want false when documents are not loaded")
	}
}

func TestLoadDocuments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/load-documents" {
			t.Errorf("Path = %s, want /load-documents", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"message": "Documents loaded successfully", "chunks_processed": 42, "files_processed": 3}`))
	})

	result, err := client.LoadDocuments(context.Background())
	if err != nil {
		t.Fatalf("LoadDocuments() error = %v", err)
	}
	if result.Message != "Documents loaded successfully" {
		t.Errorf("Message = %q", result.Message)
	}
	if result.ChunksProcessed != 42 || result.FilesProcessed != 3 {
		t.Errorf("Counts = %d/%d, want 42/3", result.ChunksProcessed, result.FilesProcessed)
	}
}
