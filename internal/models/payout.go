package models

// Amounts are int64 fixed-point: 1 chip = 1e8 base units. Integer math
// everywhere, rounding down, so the truncation always favors the pool.
const (
	ChipUnit = 100_000_000

	DefaultHouseEdgeBP int64 = 100 // 1%
	DefaultMinBet      int64 = ChipUnit / 100
	DefaultMaxBet      int64 = 10 * ChipUnit
	DefaultOracleFee   int64 = ChipUnit / 10
)

// ComputePayout converts a wager into the payout promised on a win:
// double the stake less the house edge. It rejects a zero wager and any
// wager so small that the edge truncates to nothing in the integer domain.
func ComputePayout(wager, edgeBasisPoints int64) (int64, error) {
	if wager <= 0 {
		return 0, ErrInvalidWager
	}
	gross := 2 * wager
	edge := gross * edgeBasisPoints / 10_000
	if edge <= 0 {
		return 0, ErrInvalidWager
	}
	return gross - edge, nil
}
