package models

const (
	EventBetPlaced   = "bet_placed"
	EventBetResolved = "bet_resolved"
	EventWinClaimed  = "win_claimed"
)

// Event is the observable record of a bet state transition, broadcast to
// websocket subscribers as it commits.
type Event struct {
	Type      string  `json:"type"`
	Account   int64   `json:"account"`
	RequestID string  `json:"request_id,omitempty"`
	Side      BetSide `json:"side,omitempty"`
	Won       bool    `json:"won,omitempty"`
	Payout    int64   `json:"payout,omitempty"`
	At        int64   `json:"at"`
}
