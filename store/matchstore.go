package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/minaorangina/gofish/engine"
)

var (
	ErrUnknownMatchID   = errors.New("unknown match ID")
	ErrDuplicateMatchID = errors.New("match ID already exists")
	ErrNilMatch         = errors.New("match is nil")
)

type MatchStore interface {
	Add(m *engine.Match) error
	Find(matchID string) (*engine.Match, error)
	IDs() []string
}

// InMemoryMatchStore maps match id to match
type InMemoryMatchStore struct {
	mu      sync.RWMutex
	matches map[string]*engine.Match
}

// NewInMemoryMatchStore constructs an InMemoryMatchStore
func NewInMemoryMatchStore() *InMemoryMatchStore {
	return &InMemoryMatchStore{
		matches: map[string]*engine.Match{},
	}
}

func (s *InMemoryMatchStore) Add(m *engine.Match) error {
	if m == nil {
		return ErrNilMatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.matches[m.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateMatchID, m.ID())
	}
	s.matches[m.ID()] = m
	return nil
}

func (s *InMemoryMatchStore) Find(matchID string) (*engine.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatchID, matchID)
	}
	return m, nil
}

// IDs returns every stored match id, sorted
func (s *InMemoryMatchStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.matches))
	for id := range s.matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
