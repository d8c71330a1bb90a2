package repository

import (
	"context"

	"keelie-chatbot-be/pkg/store"
)

// ISessionRepository stores per-conversation state. Implementations must keep
// sessions isolated from each other; the service layer guarantees one writer
// per session at a time.
type ISessionRepository interface {
	Save(ctx context.Context, session *store.Session) error
	Get(ctx context.Context, sessionID string) (*store.Session, bool, error)
	Delete(ctx context.Context, sessionID string) error
}
