package payments

import (
	"fmt"
	"net/http"

	"github.com/Sulasulait/coshikowa-agency.com/config"
	"github.com/Sulasulait/coshikowa-agency.com/database"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/payments"
	"github.com/Sulasulait/coshikowa-agency.com/internal/mailer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SendProofNotification mints the single-use approval token and emails staff
// a one-click review link for a freshly submitted payment proof.
func SendProofNotification(c *gin.Context) {
	var payload struct {
		PaymentID       string `json:"paymentId" binding:"required"`
		PaymentProofURL string `json:"paymentProofUrl"`
		PaymentMethod   string `json:"paymentMethod"`
		Email           string `json:"email"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "paymentId is required"})
		return
	}

	if err := NotifyProofSubmitted(database.DB, payload.PaymentID, payload.PaymentProofURL, payload.PaymentMethod, payload.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment proof notification sent"})
}

// NotifyProofSubmitted stores a new approval token on the payment and queues
// the staff review email carrying the one-click approval link.
func NotifyProofSubmitted(db *gorm.DB, paymentID, proofURL, method, email string) error {
	var payment payments.Payment
	if err := db.Where("id = ?", paymentID).First(&payment).Error; err != nil {
		return fmt.Errorf("payment not found: %w", err)
	}

	token := uuid.NewString()
	if err := db.Model(&payments.Payment{}).Where("id = ?", payment.ID).
		Update("approval_token", token).Error; err != nil {
		return fmt.Errorf("failed to store approval token: %w", err)
	}

	approvalURL := config.APP_URL + "/approve-payment?token=" + token

	msg := mailer.Message{
		To:      config.ADMIN_EMAIL,
		Subject: fmt.Sprintf("New Payment Proof - %s (KES %.0f)", typeLabel(payment.PaymentType), payment.AmountKES),
		HTML:    staffReviewEmail(&payment, proofURL, method, email, approvalURL),
	}

	task, err := mailer.Enqueue(db, "staff_review", msg)
	if err != nil {
		return err
	}
	return mailer.Attempt(db, task, config.MAIL_FROM)
}
