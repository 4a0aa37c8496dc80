package services

import (
	"sync"

	"coinflip-casino-backend/internal/models"
)

// Store mirrors committed engine state. The in-memory commit is the
// transaction boundary; the store is written through afterwards and read
// back only at startup.
type Store interface {
	SavePool(pool models.Pool) error
	SaveBet(bet *models.Bet) error
	SavePending(requestID string, account int64) error
	DeletePending(requestID string) error
	SaveTransaction(tx *models.Transaction) error

	// LoadState returns the persisted pool (nil if none), all bet slots and
	// the outstanding request routing table.
	LoadState() (*models.Pool, map[int64]*models.Bet, map[string]int64, error)
}

// MemoryStore keeps everything in process; used by tests and redis-less
// development runs.
type MemoryStore struct {
	mu      sync.Mutex
	pool    *models.Pool
	bets    map[int64]*models.Bet
	pending map[string]int64
	journal []*models.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bets:    make(map[int64]*models.Bet),
		pending: make(map[string]int64),
	}
}

func (s *MemoryStore) SavePool(pool models.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := pool
	s.pool = &p
	return nil
}

func (s *MemoryStore) SaveBet(bet *models.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := *bet
	s.bets[bet.Account] = &b
	return nil
}

func (s *MemoryStore) SavePending(requestID string, account int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[requestID] = account
	return nil
}

func (s *MemoryStore) DeletePending(requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, requestID)
	return nil
}

func (s *MemoryStore) SaveTransaction(tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := *tx
	s.journal = append(s.journal, &t)
	return nil
}

func (s *MemoryStore) LoadState() (*models.Pool, map[int64]*models.Bet, map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bets := make(map[int64]*models.Bet, len(s.bets))
	for account, bet := range s.bets {
		b := *bet
		bets[account] = &b
	}
	pending := make(map[string]int64, len(s.pending))
	for id, account := range s.pending {
		pending[id] = account
	}

	var pool *models.Pool
	if s.pool != nil {
		p := *s.pool
		pool = &p
	}
	return pool, bets, pending, nil
}

// Transactions returns the journal in commit order.
func (s *MemoryStore) Transactions() []*models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Transaction, len(s.journal))
	copy(out, s.journal)
	return out
}
