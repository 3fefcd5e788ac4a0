package session

import (
	"sync"

	"chaicart-be/internal/cart"
	"chaicart-be/internal/order"

	"github.com/google/uuid"
)

// State is everything held for one session: the cart and the single
// pending/last-order slot. The slot is overwritten on every checkout, no
// history is retained. State lives for the process lifetime only.
type State struct {
	Cart  []cart.Line
	Order *order.Order
}

// Store keys session state by session id. There is deliberately no
// process-wide fallback slot, so sessions can never see each other's
// orders. Concurrent requests within one session can still race on
// read-modify-write; single-user-per-session usage makes that acceptable.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*State)}
}

// NewSessionID mints a fresh session id.
func NewSessionID() string {
	return uuid.New().String()
}

func (s *Store) state(sessionID string) *State {
	st, ok := s.sessions[sessionID]
	if !ok {
		st = &State{}
		s.sessions[sessionID] = st
	}
	return st
}

func (s *Store) SaveCart(sessionID string, lines []cart.Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(sessionID).Cart = lines
}

func (s *Store) Cart(sessionID string) []cart.Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.sessions[sessionID]; ok {
		return st.Cart
	}
	return nil
}

func (s *Store) SetOrder(sessionID string, o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(sessionID).Order = o
}

func (s *Store) Order(sessionID string) *order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.sessions[sessionID]; ok {
		return st.Order
	}
	return nil
}
