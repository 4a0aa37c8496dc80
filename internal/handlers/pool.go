package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coinflip-casino-backend/internal/models"
	"coinflip-casino-backend/internal/services"
)

type PoolHandler struct {
	engine *services.FlipEngine
}

func NewPoolHandler(engine *services.FlipEngine) *PoolHandler {
	return &PoolHandler{engine: engine}
}

func (h *PoolHandler) GetBalance(c *gin.Context) {
	pool := h.engine.Balance()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"pool": models.PoolResponse{
			TotalBalance: pool.TotalBalance,
			LockedSum:    pool.LockedSum,
			Available:    pool.Available(),
			FeeCredits:   pool.FeeCredits,
		},
	})
}

func (h *PoolHandler) Deposit(c *gin.Context) {
	account := c.GetInt64("account_id")

	var req models.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if err := h.engine.Deposit(account, req.Amount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": "deposited"})
}

func (h *PoolHandler) FundFees(c *gin.Context) {
	account := c.GetInt64("account_id")

	var req models.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if err := h.engine.FundOracleFees(account, req.Amount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": "fees funded"})
}

func (h *PoolHandler) Withdraw(c *gin.Context) {
	account := c.GetInt64("account_id")

	var req models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if err := h.engine.Withdraw(req.Amount, account); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": "withdrawn"})
}
