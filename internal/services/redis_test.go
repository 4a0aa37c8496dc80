package services_test

import (
	"testing"
	"time"

	"coinflip-casino-backend/internal/config"
	"coinflip-casino-backend/internal/models"
	"coinflip-casino-backend/internal/services"
)

func setupTestRedis(t *testing.T) *services.RedisService {
	t.Helper()
	cfg := &config.Config{
		RedisURL:  "localhost:6379",
		RedisPass: "",
		RedisDB:   0,
	}

	redisService, err := services.NewRedisService(cfg)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return redisService
}

func TestRedisEscrowState(t *testing.T) {
	redisService := setupTestRedis(t)
	defer redisService.Close()
	defer redisService.ClearEscrowState()

	pool := models.Pool{
		TotalBalance: 9 * models.ChipUnit,
		LockedSum:    198 * models.ChipUnit / 100,
		FeeCredits:   models.ChipUnit,
	}
	if err := redisService.SavePool(pool); err != nil {
		t.Fatalf("Failed to save pool: %v", err)
	}

	bet := &models.Bet{
		Account:        999999,
		WagerAmount:    models.ChipUnit,
		ChosenSide:     models.SideHeads,
		RequestID:      "req-test-1",
		State:          models.BetStateAwaitingRandomness,
		PromisedPayout: 198 * models.ChipUnit / 100,
		PlacedAt:       time.Now().Unix(),
	}
	if err := redisService.SaveBet(bet); err != nil {
		t.Fatalf("Failed to save bet: %v", err)
	}
	if err := redisService.SavePending("req-test-1", 999999); err != nil {
		t.Fatalf("Failed to save pending mapping: %v", err)
	}

	loadedPool, bets, pending, err := redisService.LoadState()
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}

	if loadedPool == nil || *loadedPool != pool {
		t.Errorf("Pool round-trip mismatch: got %+v, want %+v", loadedPool, pool)
	}

	loaded := bets[999999]
	if loaded == nil {
		t.Fatal("Bet slot missing after round-trip")
	}
	if loaded.RequestID != bet.RequestID || loaded.PromisedPayout != bet.PromisedPayout {
		t.Errorf("Bet round-trip mismatch: got %+v", loaded)
	}

	if pending["req-test-1"] != 999999 {
		t.Errorf("Pending mapping mismatch: got %v", pending)
	}

	if err := redisService.DeletePending("req-test-1"); err != nil {
		t.Fatalf("Failed to delete pending mapping: %v", err)
	}
	_, _, pending, err = redisService.LoadState()
	if err != nil {
		t.Fatalf("Failed to reload state: %v", err)
	}
	if _, ok := pending["req-test-1"]; ok {
		t.Error("Pending mapping should be gone after delete")
	}
}

func TestRedisTransactions(t *testing.T) {
	redisService := setupTestRedis(t)
	defer redisService.Close()

	account := int64(999998)

	tx := &models.Transaction{
		ID:          models.GenerateTransactionID(),
		Account:     account,
		Type:        models.TransactionTypeDeposit,
		Amount:      5 * models.ChipUnit,
		PoolBefore:  0,
		PoolAfter:   5 * models.ChipUnit,
		Description: "test deposit",
		CreatedAt:   time.Now().Unix(),
	}

	if err := redisService.SaveTransaction(tx); err != nil {
		t.Fatalf("Failed to save transaction: %v", err)
	}

	transactions, err := redisService.GetAccountTransactions(account, 10)
	if err != nil {
		t.Fatalf("Failed to get transactions: %v", err)
	}

	var found bool
	for _, got := range transactions {
		if got.ID == tx.ID {
			found = true
			if got.Amount != tx.Amount || got.Type != tx.Type {
				t.Errorf("Transaction round-trip mismatch: got %+v", got)
			}
		}
	}
	if !found {
		t.Error("Saved transaction missing from account history")
	}
}

func TestRedisRateLimit(t *testing.T) {
	redisService := setupTestRedis(t)
	defer redisService.Close()

	account := int64(999997)
	defer redisService.ClearRateLimit(account, "bet")

	for i := 0; i < 3; i++ {
		allowed, err := redisService.CheckRateLimit(account, "bet", 3, time.Minute)
		if err != nil {
			t.Fatalf("Rate limit check failed: %v", err)
		}
		if !allowed {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	allowed, err := redisService.CheckRateLimit(account, "bet", 3, time.Minute)
	if err != nil {
		t.Fatalf("Rate limit check failed: %v", err)
	}
	if allowed {
		t.Error("Fourth request should be rejected")
	}
}
