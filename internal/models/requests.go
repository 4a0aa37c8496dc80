package models

type FlipRequest struct {
	Amount int64 `json:"amount" binding:"required"`
	Side   int   `json:"side" binding:"required"`
}

type FundRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

type OracleCallbackRequest struct {
	RequestID   string `json:"request_id" binding:"required"`
	RandomValue uint64 `json:"random_value"`
}

type TokenRequest struct {
	AccountID int64 `json:"account_id" binding:"required"`
}
