package models

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeBet      TransactionType = "bet"
	TransactionTypeWin      TransactionType = "win"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeFee      TransactionType = "fee"
)

// Transaction is a journal entry for one pool movement. Amount is signed
// from the pool's point of view: funds in positive, funds out negative.
type Transaction struct {
	ID          string          `json:"id" redis:"id"`
	Account     int64           `json:"account" redis:"account"`
	Type        TransactionType `json:"type" redis:"type"`
	Amount      int64           `json:"amount" redis:"amount"`
	PoolBefore  int64           `json:"pool_before" redis:"pool_before"`
	PoolAfter   int64           `json:"pool_after" redis:"pool_after"`
	RequestID   string          `json:"request_id,omitempty" redis:"request_id"`
	Description string          `json:"description" redis:"description"`
	CreatedAt   int64           `json:"created_at" redis:"created_at"`
}
