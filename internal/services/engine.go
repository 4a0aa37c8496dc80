package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"coinflip-casino-backend/internal/config"
	"coinflip-casino-backend/internal/models"
)

// FlipEngine drives every bet from placement through resolution to claim
// and owns the request routing table the oracle calls back into. All
// mutating operations run under one mutex, so each observes the others'
// effects whole or not at all. The store is written through after a commit
// and never consulted on the hot path.
type FlipEngine struct {
	mu     sync.Mutex
	cfg    *config.Config
	escrow *Escrow
	oracle RandomnessOracle
	store  Store
	events Broadcaster

	bets    map[int64]*models.Bet
	pending map[string]int64 // request id -> account awaiting resolution
}

func NewFlipEngine(cfg *config.Config, oracle RandomnessOracle, store Store, events Broadcaster) *FlipEngine {
	e := &FlipEngine{
		cfg:     cfg,
		escrow:  NewEscrow(),
		oracle:  oracle,
		store:   store,
		events:  events,
		bets:    make(map[int64]*models.Bet),
		pending: make(map[string]int64),
	}
	e.restore()
	return e
}

func (e *FlipEngine) restore() {
	pool, bets, pending, err := e.store.LoadState()
	if err != nil {
		log.Printf("engine: could not restore persisted state: %v", err)
		return
	}
	if pool != nil {
		e.escrow.Restore(*pool)
	}
	if len(bets) > 0 {
		e.bets = bets
	}
	if len(pending) > 0 {
		e.pending = pending
	}
}

// PlaceBet validates and commits a new wager for account: the stake enters
// the pool and the promised payout is reserved against it in the same
// atomic step, then a randomness request is issued and recorded. Any
// rejection leaves no state behind.
func (e *FlipEngine) PlaceBet(account int64, wager int64, side models.BetSide) (*models.Bet, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("invalid side %d", side)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.escrow.FeeCredits() < e.cfg.OracleFee {
		return nil, models.ErrNoFundingMechanism
	}
	if wager < e.cfg.MinBet {
		return nil, models.ErrBetTooSmall
	}
	if wager > e.cfg.MaxBet {
		return nil, models.ErrBetTooLarge
	}
	if !e.bets[account].Settled() {
		return nil, models.ErrBetAlreadyPending
	}

	payout, err := models.ComputePayout(wager, e.cfg.HouseEdgeBP)
	if err != nil {
		return nil, err
	}

	// The stake accompanies the placement, so the solvency check sees it.
	e.escrow.Credit(wager)
	if err := e.escrow.Reserve(payout); err != nil {
		e.escrow.Debit(wager)
		return nil, err
	}

	requestID, err := e.oracle.RequestRandomness()
	if err != nil {
		e.escrow.Release(payout)
		e.escrow.Debit(wager)
		return nil, fmt.Errorf("randomness request failed: %w", err)
	}
	e.escrow.ConsumeFee(e.cfg.OracleFee)

	bet := &models.Bet{
		Account:        account,
		WagerAmount:    wager,
		ChosenSide:     side,
		RequestID:      requestID,
		State:          models.BetStateAwaitingRandomness,
		PromisedPayout: payout,
		PlacedAt:       time.Now().Unix(),
	}
	e.bets[account] = bet
	e.pending[requestID] = account

	e.persistPool()
	e.persistBet(bet)
	if err := e.store.SavePending(requestID, account); err != nil {
		log.Printf("engine: persist pending %s: %v", requestID, err)
	}
	e.journal(account, models.TransactionTypeBet, wager, wager, requestID,
		fmt.Sprintf("bet %s on %s", models.FormatChips(wager), side))
	e.publish(models.Event{
		Type:      models.EventBetPlaced,
		Account:   account,
		RequestID: requestID,
		Side:      side,
		At:        time.Now().Unix(),
	})

	return e.snapshot(bet), nil
}

// Deliver is the sole inbound entry point for oracle randomness. The
// request mapping is consumed on delivery, so a duplicate or foreign id is
// rejected without touching any bet.
func (e *FlipEngine) Deliver(requestID string, randomValue uint64) (*models.Bet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	account, ok := e.pending[requestID]
	if !ok {
		return nil, models.ErrUnknownRequest
	}
	delete(e.pending, requestID)
	if err := e.store.DeletePending(requestID); err != nil {
		log.Printf("engine: delete pending %s: %v", requestID, err)
	}

	bet := e.bets[account]
	if bet == nil || bet.State != models.BetStateAwaitingRandomness || bet.RequestID != requestID {
		return nil, models.ErrUnknownRequest
	}

	outcome := models.OutcomeForRandom(randomValue)
	bet.OutcomeMatched = outcome == bet.ChosenSide
	bet.State = models.BetStateResolved
	bet.ResolvedAt = time.Now().Unix()

	if !bet.OutcomeMatched {
		// The promised payout returns to pool availability; no transfer.
		e.escrow.Release(bet.PromisedPayout)
	}

	e.persistPool()
	e.persistBet(bet)
	e.publish(models.Event{
		Type:      models.EventBetResolved,
		Account:   account,
		RequestID: requestID,
		Side:      outcome,
		Won:       bet.OutcomeMatched,
		At:        bet.ResolvedAt,
	})

	return e.snapshot(bet), nil
}

// IsBetWon reports whether account's bet is resolved and matched. Pending
// and already-claimed bets both report false.
func (e *FlipEngine) IsBetWon(account int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bets[account].Won()
}

// ClaimWinnings pays out a won bet. The state flips to Claimed inside the
// same critical section as the payout, so no re-entering caller can ever
// observe a still-claimable bet.
func (e *FlipEngine) ClaimWinnings(account int64) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	bet := e.bets[account]
	if bet == nil || bet.State != models.BetStateResolved {
		return 0, models.ErrNoBetToClaim
	}
	if !bet.OutcomeMatched {
		return 0, models.ErrBetNotWon
	}

	bet.State = models.BetStateClaimed
	e.escrow.PayOut(bet.PromisedPayout)

	e.persistPool()
	e.persistBet(bet)
	e.journal(account, models.TransactionTypeWin, -bet.PromisedPayout, -bet.PromisedPayout, bet.RequestID,
		fmt.Sprintf("claimed %s", models.FormatChips(bet.PromisedPayout)))
	e.publish(models.Event{
		Type:    models.EventWinClaimed,
		Account: account,
		Payout:  bet.PromisedPayout,
		At:      time.Now().Unix(),
	})

	return bet.PromisedPayout, nil
}

// Deposit adds funds to the pool. Funding is permissionless.
func (e *FlipEngine) Deposit(account int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.escrow.Credit(amount)
	e.persistPool()
	e.journal(account, models.TransactionTypeDeposit, amount, amount, "",
		fmt.Sprintf("deposited %s", models.FormatChips(amount)))
	return nil
}

// FundOracleFees credits the fee balance that each placement's randomness
// request consumes. Also permissionless.
func (e *FlipEngine) FundOracleFees(account int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("fee amount must be positive")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.escrow.FundFees(amount)
	e.persistPool()
	e.journal(account, models.TransactionTypeFee, amount, 0, "",
		fmt.Sprintf("funded %s of oracle fees", models.FormatChips(amount)))
	return nil
}

// Withdraw extracts surplus for the operator; anything promised to an
// outstanding bet stays out of reach.
func (e *FlipEngine) Withdraw(amount int64, requestor int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if requestor != e.cfg.OperatorAccount {
		return models.ErrUnauthorized
	}
	if amount <= 0 {
		return fmt.Errorf("withdraw amount must be positive")
	}
	if err := e.escrow.WithdrawSurplus(amount); err != nil {
		return err
	}

	e.persistPool()
	e.journal(requestor, models.TransactionTypeWithdraw, -amount, -amount, "",
		fmt.Sprintf("operator withdrew %s", models.FormatChips(amount)))
	return nil
}

// Balance returns a snapshot of the pool ledger.
func (e *FlipEngine) Balance() models.Pool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.escrow.Pool()
}

// Bet returns a copy of account's current bet slot, nil when empty.
func (e *FlipEngine) Bet(account int64) *models.Bet {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot(e.bets[account])
}

func (e *FlipEngine) snapshot(bet *models.Bet) *models.Bet {
	if bet == nil {
		return nil
	}
	b := *bet
	return &b
}

func (e *FlipEngine) persistPool() {
	if err := e.store.SavePool(e.escrow.Pool()); err != nil {
		log.Printf("engine: persist pool: %v", err)
	}
}

func (e *FlipEngine) persistBet(bet *models.Bet) {
	if err := e.store.SaveBet(bet); err != nil {
		log.Printf("engine: persist bet for %d: %v", bet.Account, err)
	}
}

// journal records a pool movement after it commits. balanceDelta is the
// change the operation made to TotalBalance; fee funding moves credits
// only, so its delta is zero.
func (e *FlipEngine) journal(account int64, txType models.TransactionType, amount, balanceDelta int64, requestID, description string) {
	pool := e.escrow.Pool()
	tx := &models.Transaction{
		ID:          models.GenerateTransactionID(),
		Account:     account,
		Type:        txType,
		Amount:      amount,
		PoolBefore:  pool.TotalBalance - balanceDelta,
		PoolAfter:   pool.TotalBalance,
		RequestID:   requestID,
		Description: description,
		CreatedAt:   time.Now().Unix(),
	}
	if err := e.store.SaveTransaction(tx); err != nil {
		log.Printf("engine: journal %s: %v", txType, err)
	}
}

func (e *FlipEngine) publish(event models.Event) {
	if e.events == nil {
		return
	}
	e.events.BroadcastEvent(event)
}
