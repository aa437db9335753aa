package handlers

import (
	"net/http"

	"medibook/services/payment"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler issues Stripe payment intents.
type PaymentHandler struct {
	Intents payment.IntentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(intents payment.IntentService) *PaymentHandler {
	return &PaymentHandler{Intents: intents}
}

// CreatePaymentIntent converts the requested amount to minor units, creates
// a payment intent, and returns its client secret.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Amount   float64 `json:"amount" binding:"required"`
		Currency string  `json:"currency"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment intent payload", err.Error())
		return
	}

	clientSecret, err := h.Intents.CreateIntent(input.Amount, input.Currency)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment intent", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
