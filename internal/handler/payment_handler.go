package handler

import (
	"errors"
	"log"
	"net/http"

	"callpoint/internal/model"
	"callpoint/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment initialization requests
type PaymentHandler struct {
	service service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

// Pay forwards a payment initialization to the provider and passes the
// provider's JSON response through unchanged.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req model.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.service.InitializePayment(c.Request.Context(), req.Email, req.Amount)
	if err != nil {
		var provErr *service.ProviderError
		if errors.As(err, &provErr) {
			// Surface the provider's status and body verbatim.
			c.Data(provErr.StatusCode, "application/json", provErr.Body)
			return
		}
		log.Printf("Error initializing payment: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach payment provider"})
		return
	}

	c.Data(http.StatusOK, "application/json", resp)
}

// RegisterPaymentRoutes registers payment routes
func (h *PaymentHandler) RegisterPaymentRoutes(r *gin.Engine) {
	paystack := r.Group("/paystack")
	{
		paystack.POST("/pay", h.Pay)
	}
}
