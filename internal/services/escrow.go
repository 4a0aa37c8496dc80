package services

import (
	"coinflip-casino-backend/internal/models"
)

// Escrow owns the pooled balance, the aggregate of promised payouts and the
// oracle fee credits. It carries no lock of its own: every method runs
// inside the engine's critical section, and nothing else may touch the pool.
type Escrow struct {
	pool models.Pool
}

func NewEscrow() *Escrow {
	return &Escrow{}
}

// Pool returns a snapshot copy of the ledger.
func (e *Escrow) Pool() models.Pool {
	return e.pool
}

func (e *Escrow) Available() int64 {
	return e.pool.Available()
}

func (e *Escrow) FeeCredits() int64 {
	return e.pool.FeeCredits
}

// Credit adds incoming value to the pool (deposits and wager stakes alike).
func (e *Escrow) Credit(amount int64) {
	e.pool.TotalBalance += amount
}

// Debit removes value that never committed; the compensating move for a
// stake whose placement was rejected after the credit.
func (e *Escrow) Debit(amount int64) {
	e.pool.TotalBalance -= amount
}

func (e *Escrow) FundFees(amount int64) {
	e.pool.FeeCredits += amount
}

func (e *Escrow) ConsumeFee(amount int64) {
	e.pool.FeeCredits -= amount
}

// Reserve locks a promised payout against the pool. The locked sum may
// never exceed the total balance.
func (e *Escrow) Reserve(amount int64) error {
	if e.pool.LockedSum+amount > e.pool.TotalBalance {
		return models.ErrInsufficientPoolFunds
	}
	e.pool.LockedSum += amount
	return nil
}

// Release returns a promised payout to pool availability without any
// transfer; the lost-bet path.
func (e *Escrow) Release(amount int64) {
	e.pool.LockedSum -= amount
}

// PayOut settles a claimed win: the payout leaves the locked sum and the
// total balance in one move.
func (e *Escrow) PayOut(amount int64) {
	e.pool.LockedSum -= amount
	e.pool.TotalBalance -= amount
}

// WithdrawSurplus removes operator funds, restricted to the balance not
// promised to any outstanding bet.
func (e *Escrow) WithdrawSurplus(amount int64) error {
	if amount > e.Available() {
		return models.ErrInsufficientSurplus
	}
	e.pool.TotalBalance -= amount
	return nil
}

// Restore replaces the ledger wholesale; used when reloading persisted
// state at startup.
func (e *Escrow) Restore(pool models.Pool) {
	e.pool = pool
}
