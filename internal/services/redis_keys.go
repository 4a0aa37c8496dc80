package services

import "time"

const (
	KeyPool                = "escrow:pool"
	KeyBets                = "escrow:bets"    // hash: account -> bet json
	KeyPending             = "escrow:pending" // hash: request id -> account
	KeyTransaction         = "transaction:%s"
	KeyAccountTransactions = "account:%d:transactions"
	KeyRateLimit           = "ratelimit:%d:%s"

	TTLTransaction = 30 * 24 * time.Hour // 30 days

	DefaultRateLimitBets   = 30 // Max 30 bets per minute
	DefaultRateLimitClaims = 60 // Max 60 claims per minute
)
