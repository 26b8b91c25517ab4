// Package session keeps per-browser state: the provider credential, the live
// assistant built from it and the transcript of exchanges.
package session

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/artem13815/kirana/pkg/llm"
)

// Exchange is one question sent to the assistant and what came back.
type Exchange struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Failed    bool      `json:"failed,omitempty"`
	ErrorKind llm.Kind  `json:"errorKind,omitempty"`
	At        time.Time `json:"at"`
}

// Session is safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	apiKey     string
	assistant  llm.Assistant
	transcript []Exchange
	limiter    *rate.Limiter
}

// HasKey reports whether a validated credential is attached.
func (s *Session) HasKey() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKey != ""
}

// Assistant returns the live handle, nil until a key is set.
func (s *Session) Assistant() llm.Assistant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assistant
}

// setCredential installs a new assistant. The old transcript is dropped with
// the old assistant's memory.
func (s *Session) setCredential(apiKey string, a llm.Assistant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = apiKey
	s.assistant = a
	s.transcript = nil
}

func (s *Session) Append(e Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, e)
}

// Transcript returns a copy of all exchanges in order.
func (s *Session) Transcript() []Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Exchange, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Session) ClearTranscript() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
}

// Allow consumes one chat token. Sessions without a limiter always pass.
func (s *Session) Allow() bool {
	if s.limiter == nil {
		return true
	}
	return s.limiter.Allow()
}
