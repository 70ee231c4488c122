package browse

import (
	"context"
	"time"

	"artistly/internal/common"
	"artistly/internal/domain/catalog"
)

// Session owns the filter selection of one visitor.
type Session struct {
	ID        common.UUID       `json:"id"`
	Selection catalog.Selection `json:"selection"`
	// Signal is the last deep-link category applied to the session.
	Signal   string    `json:"signal,omitempty"`
	LastSeen time.Time `json:"lastSeen"`
}

type Repository interface {
	Create(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, id common.UUID) (*Session, error)
	// Update applies fn to the stored session under the store lock and persists
	// the result unless fn returns an error.
	Update(ctx context.Context, id common.UUID, fn func(*Session) error) (*Session, error)
	Touch(ctx context.Context, id common.UUID, at time.Time) error
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
}
