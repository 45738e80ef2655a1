// Package session owns the per-run chat state: the append-only transcript,
// the busy gate, and the last error.
package session

import (
	"context"
	"strings"
	"sync"

	apierrors "github.com/diogo/sopchat/internal/errors"
	"github.com/diogo/sopchat/internal/models"
)

// Message is one transcript entry. Messages are immutable once appended.
type Message struct {
	Role    string
	Content string
	Sources []string
}

// HasSources reports whether the message carries citations. An empty list
// and a missing field are equivalent.
func (m Message) HasSources() bool {
	return len(m.Sources) > 0
}

// QueryClient is the backend surface a session needs.
type QueryClient interface {
	Query(ctx context.Context, text string) (*models.QueryResponse, error)
}

// Session holds the state of one chat run. At most one exchange is in
// flight at a time; the busy flag gates submission and is released on every
// completion path. Each run owns exactly one Session; there is no
// process-wide instance.
type Session struct {
	mu         sync.Mutex
	transcript []Message
	busy       bool
	lastError  string
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// Begin gates a new exchange. Empty or whitespace-only text, or a busy
// session, rejects the submission with no side effects. Otherwise the last
// error is cleared, the trimmed text is appended as a user message, and the
// session becomes busy.
func (s *Session) Begin(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return "", false
	}

	s.lastError = ""
	s.transcript = append(s.transcript, Message{
		Role:    models.RoleUser,
		Content: trimmed,
	})
	s.busy = true

	return trimmed, true
}

// Complete finishes the in-flight exchange with a successful response,
// appending exactly one assistant message and releasing the busy gate.
func (s *Session) Complete(resp *models.QueryResponse) {
	msg := Message{Role: models.RoleAssistant}
	if resp != nil {
		msg.Content = resp.Answer
		if len(resp.Sources) > 0 {
			msg.Sources = append([]string(nil), resp.Sources...)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = append(s.transcript, msg)
	s.busy = false
}

// Fail finishes the in-flight exchange with an error, appending exactly one
// assistant message of the form "Error: <message>", recording the message as
// the last error, and releasing the busy gate.
func (s *Session) Fail(err error) {
	message := apierrors.DisplayMessage(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = message
	s.transcript = append(s.transcript, Message{
		Role:    models.RoleAssistant,
		Content: "Error: " + message,
	})
	s.busy = false
}

// Submit runs one whole exchange synchronously. The busy gate is released on
// both the success and the failure path. Returns false when the submission
// was rejected (empty text or busy session).
func (s *Session) Submit(ctx context.Context, client QueryClient, text string) bool {
	trimmed, ok := s.Begin(text)
	if !ok {
		return false
	}

	resp, err := client.Query(ctx, trimmed)
	if err != nil {
		s.Fail(err)
	} else {
		s.Complete(resp)
	}

	return true
}

// Busy reports whether an exchange is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// LastError returns the message of the most recent failed exchange, or ""
// when the last exchange succeeded or none ran yet.
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Transcript returns a copy of the transcript in insertion order.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.transcript) == 0 {
		return nil
	}
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Len returns the number of transcript messages.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transcript)
}
