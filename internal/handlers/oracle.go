package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coinflip-casino-backend/internal/models"
	"coinflip-casino-backend/internal/services"
)

// OracleHandler is the inbound callback surface for the randomness
// collaborator. One delivery resolves exactly one bet; anything stale or
// foreign is rejected and dropped.
type OracleHandler struct {
	engine *services.FlipEngine
}

func NewOracleHandler(engine *services.FlipEngine) *OracleHandler {
	return &OracleHandler{engine: engine}
}

func (h *OracleHandler) Callback(c *gin.Context) {
	var req models.OracleCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	bet, err := h.engine.Deliver(req.RequestID, req.RandomValue)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"account":    bet.Account,
			"request_id": bet.RequestID,
			"state":      bet.State,
			"won":        bet.OutcomeMatched,
		},
	})
}
