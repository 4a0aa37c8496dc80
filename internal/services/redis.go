package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"coinflip-casino-backend/internal/config"
	"coinflip-casino-backend/internal/models"
)

// RedisService is the durable mirror of the escrow state plus the
// per-account rate limiting and journal queries the handlers use. The
// engine is the single writer; nothing here re-validates state.
type RedisService struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisService(cfg *config.Config) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &RedisService{
		client: client,
		ctx:    ctx,
	}, nil
}

func (s *RedisService) Close() error {
	return s.client.Close()
}

func (s *RedisService) SavePool(pool models.Pool) error {
	data, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("failed to marshal pool: %v", err)
	}
	return s.client.Set(s.ctx, KeyPool, data, 0).Err()
}

func (s *RedisService) SaveBet(bet *models.Bet) error {
	data, err := json.Marshal(bet)
	if err != nil {
		return fmt.Errorf("failed to marshal bet: %v", err)
	}
	return s.client.HSet(s.ctx, KeyBets, strconv.FormatInt(bet.Account, 10), data).Err()
}

func (s *RedisService) SavePending(requestID string, account int64) error {
	return s.client.HSet(s.ctx, KeyPending, requestID, account).Err()
}

func (s *RedisService) DeletePending(requestID string) error {
	return s.client.HDel(s.ctx, KeyPending, requestID).Err()
}

func (s *RedisService) LoadState() (*models.Pool, map[int64]*models.Bet, map[string]int64, error) {
	var pool *models.Pool

	data, err := s.client.Get(s.ctx, KeyPool).Result()
	if err == nil {
		var p models.Pool
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to unmarshal pool: %v", err)
		}
		pool = &p
	} else if err != redis.Nil {
		return nil, nil, nil, fmt.Errorf("failed to load pool: %v", err)
	}

	rawBets, err := s.client.HGetAll(s.ctx, KeyBets).Result()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load bets: %v", err)
	}
	bets := make(map[int64]*models.Bet, len(rawBets))
	for field, value := range rawBets {
		account, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue
		}
		var bet models.Bet
		if err := json.Unmarshal([]byte(value), &bet); err != nil {
			continue
		}
		bets[account] = &bet
	}

	rawPending, err := s.client.HGetAll(s.ctx, KeyPending).Result()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load pending requests: %v", err)
	}
	pending := make(map[string]int64, len(rawPending))
	for requestID, value := range rawPending {
		account, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		pending[requestID] = account
	}

	return pool, bets, pending, nil
}

func (s *RedisService) SaveTransaction(tx *models.Transaction) error {
	txKey := fmt.Sprintf(KeyTransaction, tx.ID)

	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %v", err)
	}

	if err := s.client.Set(s.ctx, txKey, data, TTLTransaction).Err(); err != nil {
		return fmt.Errorf("failed to save transaction: %v", err)
	}

	accountTxKey := fmt.Sprintf(KeyAccountTransactions, tx.Account)
	score := float64(tx.CreatedAt)

	if err := s.client.ZAdd(s.ctx, accountTxKey, redis.Z{
		Score:  score,
		Member: tx.ID,
	}).Err(); err != nil {
		return fmt.Errorf("failed to add to account transactions: %v", err)
	}

	// Keep only last 100 transactions
	s.client.ZRemRangeByRank(s.ctx, accountTxKey, 0, -101)

	return nil
}

func (s *RedisService) GetAccountTransactions(account int64, limit int64) ([]*models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	accountTxKey := fmt.Sprintf(KeyAccountTransactions, account)

	txIDs, err := s.client.ZRevRange(s.ctx, accountTxKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction IDs: %v", err)
	}

	var transactions []*models.Transaction
	for _, txID := range txIDs {
		txKey := fmt.Sprintf(KeyTransaction, txID)

		data, err := s.client.Get(s.ctx, txKey).Result()
		if err != nil {
			continue
		}

		var tx models.Transaction
		if err := json.Unmarshal([]byte(data), &tx); err != nil {
			continue
		}

		transactions = append(transactions, &tx)
	}

	return transactions, nil
}

func (s *RedisService) CheckRateLimit(account int64, action string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf(KeyRateLimit, account, action)

	count, err := s.client.Incr(s.ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %v", err)
	}

	if count == 1 {
		s.client.Expire(s.ctx, key, window)
	}

	return count <= int64(limit), nil
}

func (s *RedisService) ClearRateLimit(account int64, action string) error {
	key := fmt.Sprintf(KeyRateLimit, account, action)
	return s.client.Del(s.ctx, key).Err()
}

// ClearEscrowState wipes the persisted pool, bets and routing table; test
// cleanup only.
func (s *RedisService) ClearEscrowState() error {
	return s.client.Del(s.ctx, KeyPool, KeyBets, KeyPending).Err()
}
