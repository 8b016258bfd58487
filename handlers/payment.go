package handlers

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/G-Mursalin/dent-care-server-site/config"
	"github.com/G-Mursalin/dent-care-server-site/models"
	"github.com/G-Mursalin/dent-care-server-site/services"
)

type PaymentHandler struct {
	payments services.PaymentClient
	config   *config.Config
}

func NewPaymentHandler(payments services.PaymentClient, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		config:   cfg,
	}
}

// CreatePaymentIntent opens a charge intent for the treatment price. The
// processor wants the amount in minor units, so price 45.00 becomes 4500.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	amount := int64(math.Round(req.Price * 100))

	clientSecret, err := h.payments.CreatePaymentIntent(amount, "usd")
	if err != nil {
		fmt.Printf("[CreatePaymentIntent] Processor error: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to create payment intent",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: models.CreatePaymentIntentResponse{
			ClientSecret: clientSecret,
		},
	})
}
