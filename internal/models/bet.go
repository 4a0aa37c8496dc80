package models

type BetSide int

const (
	SideHeads BetSide = 1
	SideTails BetSide = 2
)

func (s BetSide) Valid() bool {
	return s == SideHeads || s == SideTails
}

func (s BetSide) String() string {
	switch s {
	case SideHeads:
		return "heads"
	case SideTails:
		return "tails"
	}
	return "unknown"
}

// OutcomeForRandom maps an oracle random value onto a coin side.
func OutcomeForRandom(randomValue uint64) BetSide {
	return BetSide(randomValue%2 + 1)
}

type BetState string

const (
	BetStateAwaitingRandomness BetState = "awaiting_randomness"
	BetStateResolved           BetState = "resolved"
	BetStateClaimed            BetState = "claimed"
)

// Bet is the single live wager slot of one account. A missing Bet is the
// empty state; a Claimed bet is only ever replaced by the account's next
// placement, never deleted.
type Bet struct {
	Account     int64    `json:"account" redis:"account"`
	WagerAmount int64    `json:"wager_amount" redis:"wager_amount"`
	ChosenSide  BetSide  `json:"chosen_side" redis:"chosen_side"`
	RequestID   string   `json:"request_id" redis:"request_id"`
	State       BetState `json:"state" redis:"state"`

	// OutcomeMatched is meaningful only once State is resolved or claimed.
	OutcomeMatched bool `json:"outcome_matched" redis:"outcome_matched"`

	// PromisedPayout is frozen at placement and reserved against the pool
	// until the bet loses or the winnings are claimed.
	PromisedPayout int64 `json:"promised_payout" redis:"promised_payout"`

	PlacedAt   int64 `json:"placed_at" redis:"placed_at"`
	ResolvedAt int64 `json:"resolved_at,omitempty" redis:"resolved_at"`
}

// Settled reports whether the slot may be overwritten by a new placement.
func (b *Bet) Settled() bool {
	return b == nil || b.State == BetStateClaimed
}

// Won reports a resolved, matching bet. Claimed bets report false so a
// stale win can never be re-detected after payout.
func (b *Bet) Won() bool {
	return b != nil && b.State == BetStateResolved && b.OutcomeMatched
}
