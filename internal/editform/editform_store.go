package editform

import (
	"context"
	"sync"

	editformerrors "github.com/HadirBos/hr-admin-gateway/internal/editform/errors"
)

//go:generate mockgen -source=editform_store.go -destination=mock/editform_store_mock.go -package=mock

// Store menyimpan edit session antar request. Implementasi in-memory
// dipakai di test dan single-instance dev; deployment memakai redis.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteByUser menghapus semua session untuk satu user, dipakai saat
	// record user berubah di upstream dan baseline menjadi basi.
	DeleteByUser(ctx context.Context, userID string) (int, error)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]*Session)}
}

func (m *memoryStore) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = cloneSession(s)
	return nil
}

func (m *memoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, editformerrors.ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (m *memoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memoryStore) DeleteByUser(ctx context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := 0
	for id, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

// cloneSession mengembalikan salinan dalam agar pemanggil tidak bisa
// memutasi state yang tersimpan lewat pointer.
func cloneSession(s *Session) *Session {
	out := *s
	if s.Baseline != nil {
		out.Baseline = make(map[string]any, len(s.Baseline))
		for k, v := range s.Baseline {
			out.Baseline[k] = v
		}
	}
	if s.Fields != nil {
		out.Fields = make(map[string]any, len(s.Fields))
		for k, v := range s.Fields {
			out.Fields[k] = v
		}
	}
	return &out
}
