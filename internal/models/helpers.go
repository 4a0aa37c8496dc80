package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateTransactionID() string {
	return fmt.Sprintf("tx_%s_%d",
		time.Now().Format("20060102"),
		uuid.New().ID())
}

func FormatChips(amount int64) string {
	return fmt.Sprintf("%.8f", float64(amount)/float64(ChipUnit))
}

func (fr *FlipRequest) Validate() error {
	if fr.Amount <= 0 {
		return ErrInvalidWager
	}
	if !BetSide(fr.Side).Valid() {
		return fmt.Errorf("side must be 1 (heads) or 2 (tails)")
	}
	return nil
}
