package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore — in-memory стор для локального запуска и тестов.
// Истёкшие сессии вычищаются фоновой горутиной и лениво при чтении.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Session

	stop chan struct{}
	once sync.Once
}

const sweepInterval = time.Minute

// NewMemoryStore создаёт стор и запускает фоновую очистку.
// По окончании работы нужно вызвать Close.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		data: make(map[string]Session),
		stop: make(chan struct{}),
	}

	go s.sweep()

	return s
}

func (s *MemoryStore) Save(_ context.Context, id string, sess Session) error {
	s.mu.Lock()
	s.data[id] = sess
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	s.mu.RLock()
	sess, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return Session{}, ErrNotFound
	}

	if sess.Expired(time.Now()) {
		s.mu.Lock()
		delete(s.data, id)
		s.mu.Unlock()

		return Session{}, ErrNotFound
	}

	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.data, id)
	s.mu.Unlock()

	return nil
}

// Close останавливает фоновую очистку.
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) sweep() {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-t.C:
			s.mu.Lock()
			for id, sess := range s.data {
				if sess.Expired(now) {
					delete(s.data, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
