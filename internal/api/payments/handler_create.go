package payments

import (
	"encoding/json"
	"net/http"

	"github.com/Sulasulait/coshikowa-agency.com/config"
	"github.com/Sulasulait/coshikowa-agency.com/database"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/payments"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// CreatePayment starts a checkout: the completed form is parked on a pending
// payment row and the amounts come from the configured price table, never
// from the client.
func CreatePayment(c *gin.Context) {
	var input struct {
		PaymentType string                 `json:"payment_type" binding:"required"`
		FormData    map[string]interface{} `json:"form_data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment_type or form_data"})
		return
	}

	if !payments.ValidType(input.PaymentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment_type"})
		return
	}

	email, _ := input.FormData["email"].(string)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "form_data.email is required"})
		return
	}

	price, ok := config.Pricing.PriceFor(input.PaymentType)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No price configured for payment type"})
		return
	}

	raw, err := json.Marshal(input.FormData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form_data"})
		return
	}

	payment := payments.Payment{
		PaymentType:   input.PaymentType,
		AmountKES:     price.AmountKES,
		AmountUSD:     price.AmountUSD,
		PaymentStatus: payments.StatusPending,
		FormData:      datatypes.JSON(raw),
		Email:         email,
	}

	if err := database.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment":    payment,
		"amount_ugx": config.Pricing.AmountUGX(payment.AmountUSD),
	})
}
