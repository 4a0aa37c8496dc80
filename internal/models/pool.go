package models

// Pool is the contract-wide ledger: everything held, everything promised,
// and the oracle fee credits that placements consume.
type Pool struct {
	TotalBalance int64 `json:"total_balance" redis:"total_balance"`
	LockedSum    int64 `json:"locked_sum" redis:"locked_sum"`
	FeeCredits   int64 `json:"fee_credits" redis:"fee_credits"`
}

// Available is the balance not promised to any outstanding bet; the only
// amount the operator may withdraw.
func (p Pool) Available() int64 {
	return p.TotalBalance - p.LockedSum
}

type PoolResponse struct {
	TotalBalance int64 `json:"total_balance"`
	LockedSum    int64 `json:"locked_sum"`
	Available    int64 `json:"available"`
	FeeCredits   int64 `json:"fee_credits"`
}
