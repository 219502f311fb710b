package handlers

import (
	"net/http"

	"nailbar/services/payment"
	"nailbar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes deposit payment intents.
type PaymentHandler struct{}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

// CreateDepositIntent creates a Stripe payment intent for a card deposit.
func (h *PaymentHandler) CreateDepositIntent(c *gin.Context) {
	var input struct {
		Amount      float64 `json:"amount" binding:"required"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	intent, err := payment.CreateDepositIntent(input.Amount, input.Description)
	if err != nil {
		getLogger(c).Error("failed to create deposit intent", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to create payment intent", "")
		return
	}
	c.JSON(http.StatusOK, intent)
}
