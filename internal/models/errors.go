package models

import "errors"

// Escrow error taxonomy. Every rejection is a whole-operation rejection:
// when one of these comes back, no pool or bet state has changed.
var (
	ErrInvalidWager          = errors.New("wager amount does not cover house edge")
	ErrBetTooSmall           = errors.New("bet below minimum")
	ErrBetTooLarge           = errors.New("bet above maximum")
	ErrBetAlreadyPending     = errors.New("previous bet not settled yet")
	ErrInsufficientPoolFunds = errors.New("locked bets would exceed pool balance")
	ErrNoFundingMechanism    = errors.New("no oracle fee credits available")
	ErrNoBetToClaim          = errors.New("no resolved bet to claim")
	ErrBetNotWon             = errors.New("bet not won")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInsufficientSurplus   = errors.New("amount exceeds withdrawable surplus")
	ErrUnknownRequest        = errors.New("unknown randomness request")
)
