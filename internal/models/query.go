// Package models defines the wire types exchanged with the SOP RAG backend.
package models

// QueryRequest is the body of POST {base}/query.
type QueryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// QueryResponse is the normalized body of a successful query.
// Answer defaults to the empty string and Sources to nil when the backend
// omits them.
type QueryResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources,omitempty"`
}

// HasSources reports whether the response carries any citations.
// An empty list and a missing field are equivalent.
func (r *QueryResponse) HasSources() bool {
	return r != nil && len(r.Sources) > 0
}

// HealthStatus is the body of GET {base}/health.
type HealthStatus struct {
	Status            string `json:"status"`
	DatabaseConnected bool   `json:"database_connected"`
	DocumentsLoaded   bool   `json:"documents_loaded"`
}

// Healthy reports whether the backend is fully usable: the service is up,
// the vector database is connected, and a document index exists.
func (h *HealthStatus) Healthy() bool {
	return h != nil && h.Status == "healthy" && h.DatabaseConnected && h.DocumentsLoaded
}

// LoadDocumentsResult is the body of POST {base}/load-documents.
type LoadDocumentsResult struct {
	Message         string `json:"message"`
	ChunksProcessed int    `json:"chunks_processed"`
	FilesProcessed  int    `json:"files_processed"`
}
