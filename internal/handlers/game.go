package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"coinflip-casino-backend/internal/models"
	"coinflip-casino-backend/internal/services"
)

type GameHandler struct {
	engine       *services.FlipEngine
	redisService *services.RedisService
}

func NewGameHandler(engine *services.FlipEngine, redisService *services.RedisService) *GameHandler {
	return &GameHandler{
		engine:       engine,
		redisService: redisService,
	}
}

func (h *GameHandler) Flip(c *gin.Context) {
	account := c.GetInt64("account_id")

	var req models.FlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Rate Limit: 30 bets per minute
	allowed, err := h.redisService.CheckRateLimit(account, "bet", services.DefaultRateLimitBets, time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
		return
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many bets. Please wait."})
		return
	}

	bet, err := h.engine.PlaceBet(account, req.Amount, models.BetSide(req.Side))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"bet": gin.H{
			"account":         bet.Account,
			"wager_amount":    bet.WagerAmount,
			"chosen_side":     bet.ChosenSide.String(),
			"request_id":      bet.RequestID,
			"state":           bet.State,
			"promised_payout": bet.PromisedPayout,
			"placed_at":       bet.PlacedAt,
		},
	})
}

func (h *GameHandler) IsBetWon(c *gin.Context) {
	account := c.GetInt64("account_id")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"won":     h.engine.IsBetWon(account),
	})
}

func (h *GameHandler) Claim(c *gin.Context) {
	account := c.GetInt64("account_id")

	// Rate Limit: 60 claims per minute
	allowed, err := h.redisService.CheckRateLimit(account, "claim", services.DefaultRateLimitClaims, time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
		return
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many claims. Please wait."})
		return
	}

	payout, err := h.engine.ClaimWinnings(account)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"payout":  payout,
	})
}

func (h *GameHandler) GetBet(c *gin.Context) {
	account := c.GetInt64("account_id")

	bet := h.engine.Bet(account)
	if bet == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"bet":     nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"bet":     bet,
	})
}

func (h *GameHandler) GetHistory(c *gin.Context) {
	account := c.GetInt64("account_id")

	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 50
	}

	transactions, err := h.redisService.GetAccountTransactions(account, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get history",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"transactions": transactions,
		"count":        len(transactions),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUnknownRequest):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
