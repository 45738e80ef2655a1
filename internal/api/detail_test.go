package api

import (
	"errors"
	"testing"
)

func TestExtractErrorMessage(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		transportErr error
		want         string
	}{
		{
			name: "string detail",
			body: `{"detail": "query too long"}`,
			want: "query too long",
		},
		{
			name: "validation error array with msg fields",
			body: `{"detail": [{"loc": ["body", "query"], "msg": "field required", "type": "value_error.missing"}]}`,
			want: "field required",
		},
		{
			name: "multiple validation errors joined with spaces",
			body: `{"detail": [{"msg": "field required"}, {"msg": "value too long"}]}`,
			want: "field required value too long",
		},
		{
			name: "array of plain strings",
			body: `{"detail": ["first problem", "second problem"]}`,
			want: "first problem second problem",
		},
		{
			name: "numeric detail is stringified",
			body: `{"detail": 42}`,
			want: "42",
		},
		{
			name:         "null detail falls through to transport error",
			body:         `{"detail": null}`,
			transportErr: errors.New("request failed with status 500"),
			want:         "request failed with status 500",
		},
		{
			name:         "body without detail uses transport error",
			body:         `{"error": "nope"}`,
			transportErr: errors.New("Network Error"),
			want:         "Network Error",
		},
		{
			name:         "invalid json uses transport error",
			body:         `<html>502 Bad Gateway</html>`,
			transportErr: errors.New("request failed with status 502"),
			want:         "request failed with status 502",
		},
		{
			name:         "empty body uses transport error",
			body:         "",
			transportErr: errors.New("connection refused"),
			want:         "connection refused",
		},
		{
			name: "nothing available falls back",
			body: "",
			want: "An error occurred",
		},
		{
			name: "detail missing and no transport error falls back",
			body: `{}`,
			want: "An error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractErrorMessage([]byte(tt.body), tt.transportErr)
			if got != tt.want {
				t.Errorf("ExtractErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractErrorMessageObjectDetail(t *testing.T) {
	body := `{"detail": {"code": 13, "reason": "index offline"}}`
	got := ExtractErrorMessage([]byte(body), nil)
	want := `{"code": 13, "reason": "index offline"}`
	if got != want {
		t.Errorf("ExtractErrorMessage() = %q, want %q", got, want)
	}
}
