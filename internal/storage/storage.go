package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/chronicle-engine/pkg/chronicle"
	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

// Session is one uploaded save: its parsed timeline plus bookkeeping. The
// user's override answers are stored next to it, not inside it.
type Session struct {
	ID         uuid.UUID         `json:"id"`
	SourceName string            `json:"source_name,omitempty"`
	Events     timeline.Sequence `json:"events"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// NewSession wraps a parsed sequence in a fresh session.
func NewSession(sourceName string, events timeline.Sequence) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:         uuid.New(),
		SourceName: sourceName,
		Events:     events,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Storage defines the session store used by the API
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Session operations. LoadSession returns nil, nil for unknown IDs.
	SaveSession(ctx context.Context, s *Session) error
	LoadSession(ctx context.Context, id uuid.UUID) (*Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// Override operations. Blank values in updates delete the answer.
	UpdateOverrides(ctx context.Context, id uuid.UUID, updates map[string]string) error
	LoadOverrides(ctx context.Context, id uuid.UUID) (chronicle.Overrides, error)
}
