package state

import (
	"reflect"
	"sync"

	"laplante/coach-app/internal/domain"
	"laplante/coach-app/internal/observability"
)

// DefaultHistoryLimit is how many prior snapshots a Store keeps for undo.
const DefaultHistoryLimit = 50

// Store is the single owner of the current snapshot. Transitions run one at
// a time, each to completion, under the store's lock.
type Store struct {
	mu           sync.Mutex
	current      domain.AppState
	history      []domain.AppState
	historyLimit int
}

// NewStore creates a store holding initial. A historyLimit <= 0 uses
// DefaultHistoryLimit.
func NewStore(initial domain.AppState, historyLimit int) *Store {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Store{
		current:      initial.Clone(),
		historyLimit: historyLimit,
	}
}

// Dispatch applies t to the current snapshot. On success the new snapshot
// becomes current and the prior one is pushed onto the undo history, unless
// only the advice changed. It returns a private copy of the result.
func (s *Store) Dispatch(name string, t Transition) (domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := t(s.current)
	observability.RecordTransition(name, err)
	if err != nil {
		return s.current.Clone(), err
	}
	if !sameIgnoringAdvice(next, s.current) {
		s.history = append(s.history, s.current)
		if len(s.history) > s.historyLimit {
			s.history = s.history[len(s.history)-s.historyLimit:]
		}
	}
	s.current = next
	return s.current.Clone(), nil
}

// Snapshot returns a private copy of the current state.
func (s *Store) Snapshot() domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Read runs fn against the current snapshot without copying it. fn must not
// modify or retain the snapshot.
func (s *Store) Read(fn func(domain.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.current)
}

// Undo restores the snapshot that preceded the last applied transition.
// Advice is not part of the history and is carried over unchanged, so
// undoing a logout restores the session with the advice Logout cleared.
func (s *Store) Undo() (domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return s.current.Clone(), ErrNothingToUndo
	}
	last := len(s.history) - 1
	restored := s.history[last]
	restored.Advice = s.current.Advice
	s.current = restored
	s.history[last] = domain.AppState{}
	s.history = s.history[:last]
	observability.RecordUndo()
	return s.current.Clone(), nil
}

// HistoryLen reports how many snapshots can be undone.
func (s *Store) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

func sameIgnoringAdvice(a, b domain.AppState) bool {
	a.Advice, b.Advice = domain.Advice{}, domain.Advice{}
	return reflect.DeepEqual(a, b)
}
