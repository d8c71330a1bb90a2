package store

import (
	"time"

	"keelie-chatbot-be/pkg/catalog"
)

// Session is the per-conversation state. It has exactly two shapes: Idle
// (nothing pending) and AwaitingChoice (a stock lookup offered 1-3 candidates
// and is waiting for the user to pick). Every turn either clears or sets the
// pending slot explicitly; it is never left ambiguous.
type Session struct {
	ID string `json:"id"`

	State string `json:"state"` // "IDLE" | "AWAITING_CHOICE"

	// Candidates offered but not yet selected
	PendingCandidates []catalog.Row `json:"pending_candidates,omitempty"`
	PendingQuery      string        `json:"pending_query,omitempty"`

	// Frustration window
	FrustrationStrikes    int       `json:"frustration_strikes"`
	LastNormalizedMessage string    `json:"last_normalized_message,omitempty"`
	LastMessageAt         time.Time `json:"last_message_at,omitzero"`
}

const (
	StateIdle           = "IDLE"
	StateAwaitingChoice = "AWAITING_CHOICE"
)

// NewSession returns a fresh Idle session.
func NewSession(id string) *Session {
	return &Session{ID: id, State: StateIdle}
}

// AwaitingChoice reports whether a stock lookup is pending.
func (s *Session) AwaitingChoice() bool {
	return s.State == StateAwaitingChoice
}

// SetPending stores the disambiguation candidates and moves to AwaitingChoice.
func (s *Session) SetPending(query string, candidates []catalog.Row) {
	s.State = StateAwaitingChoice
	s.PendingQuery = query
	s.PendingCandidates = candidates
}

// ClearPending drops any pending lookup and returns to Idle.
func (s *Session) ClearPending() {
	s.State = StateIdle
	s.PendingQuery = ""
	s.PendingCandidates = nil
}
