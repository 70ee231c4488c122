package memory

import (
	"context"
	"sync"
	"time"

	"artistly/internal/common"
	"artistly/internal/domain/browse"
)

type SessionRepository struct {
	mu       sync.Mutex
	sessions map[common.UUID]*browse.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[common.UUID]*browse.Session)}
}

func (r *SessionRepository) Create(_ context.Context, s browse.Session) (*browse.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = common.NewUUID()
	}
	r.sessions[s.ID] = cloneSession(&s)
	return cloneSession(&s), nil
}

func (r *SessionRepository) Get(_ context.Context, id common.UUID) (*browse.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sessions[id]
	if s == nil {
		return nil, common.NewError(common.CodeNotFound, "session not found", nil)
	}
	return cloneSession(s), nil
}

func (r *SessionRepository) Update(_ context.Context, id common.UUID, fn func(*browse.Session) error) (*browse.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sessions[id]
	if s == nil {
		return nil, common.NewError(common.CodeNotFound, "session not found", nil)
	}
	working := cloneSession(s)
	if err := fn(working); err != nil {
		return nil, err
	}
	working.ID = id
	r.sessions[id] = cloneSession(working)
	return working, nil
}

func (r *SessionRepository) Touch(_ context.Context, id common.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sessions[id]
	if s == nil {
		return common.NewError(common.CodeNotFound, "session not found", nil)
	}
	s.LastSeen = at
	return nil
}

func (r *SessionRepository) DeleteIdle(_ context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.LastSeen.Before(before) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func cloneSession(s *browse.Session) *browse.Session {
	clone := *s
	clone.Selection = s.Selection.Clone()
	return &clone
}
