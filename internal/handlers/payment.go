package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/MDMahidul/bistro-boss-server/internal/domain"
	"github.com/MDMahidul/bistro-boss-server/internal/gateway"
	"github.com/MDMahidul/bistro-boss-server/internal/middlewares"
	"github.com/MDMahidul/bistro-boss-server/internal/repository"
	"github.com/MDMahidul/bistro-boss-server/internal/service"
)

type PaymentHandler struct {
	intents  gateway.ChargeIntenter
	checkout *service.CheckoutService
}

func NewPaymentHandler(intents gateway.ChargeIntenter, checkout *service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{intents: intents, checkout: checkout}
}

// CreateIntent asks the gateway for a charge intent and hands back only its
// client secret. Nothing is persisted here.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var in struct {
		Price decimal.Decimal `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	secret, err := h.intents.CreateIntent(c.Request.Context(), gateway.MinorUnits(in.Price), "usd")
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// Submit records the payment and retires the paid cart entries.
func (h *PaymentHandler) Submit(c *gin.Context) {
	var p domain.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.Email != middlewares.TokenEmail(c) {
		middlewares.AbortForbidden(c)
		return
	}

	res, err := h.checkout.Submit(c.Request.Context(), &p)
	if errors.Is(err, repository.ErrCartConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": true, "message": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"insertResult": gin.H{"insertedId": res.PaymentID},
		"deleteResult": gin.H{"deletedCount": res.DeletedCount},
	})
}
