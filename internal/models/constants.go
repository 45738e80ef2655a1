package models

// Message roles as rendered in the transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultTopK is the number of document chunks requested per query.
const DefaultTopK = 5

// DefaultBaseURL is the fallback base URL when neither the environment nor
// the config file provides one. It matches the backend's same-origin mount
// point, so it only resolves when a proxy fronts both client and backend.
const DefaultBaseURL = "/api"

// Endpoint paths relative to the base URL.
const (
	EndpointQuery         = "/query"
	EndpointHealth        = "/health"
	EndpointLoadDocuments = "/load-documents"
)

// DefaultHeaders returns the headers sent with every request.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
}
