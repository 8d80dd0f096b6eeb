// Package storage keeps pipeline sessions. Sessions are in-memory only
// and do not survive a restart.
package storage

import (
	"sync"

	"github.com/google/uuid"
	"github.com/masaoka108/ai-youtube-summary-api/model"
)

// SessionRepository stores live session records. Find returns the stored
// record itself, not a copy: the pipeline mutates it under its own mutex
// and relies on in-flight work seeing epoch bumps through the shared
// pointer. Callers outside the pipeline receive clones, never the record.
type SessionRepository interface {
	Save(session *model.Session) error
	Find(id uuid.UUID) (*model.Session, error)
	Delete(id uuid.UUID) error
}

type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*model.Session
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: map[uuid.UUID]*model.Session{},
	}
}

func (r *MemorySessionRepository) Save(session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session

	return nil
}

func (r *MemorySessionRepository) Find(id uuid.UUID) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}

	return session, nil
}

func (r *MemorySessionRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)

	return nil
}
