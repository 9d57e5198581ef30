package approval

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Sulasulait/coshikowa-agency.com/config"
	"github.com/Sulasulait/coshikowa-agency.com/database"
	"github.com/Sulasulait/coshikowa-agency.com/internal/api/submissions"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/payments"
	"github.com/Sulasulait/coshikowa-agency.com/internal/mailer"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const reviewedByEmailLink = "admin_email"

// ApprovePayment handles the one-click link from the staff review email.
// The response is always a 200 HTML page; the outcome travels back to the
// frontend in redirect query parameters.
func ApprovePayment(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		renderHTML(c, redirectPage("Invalid Request", "Invalid request. Redirecting...", config.FRONTEND_URL+"/?error=no-token"))
		return
	}

	var payment payments.Payment
	err := database.DB.Where("approval_token = ?", token).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderHTML(c, redirectPage("Invalid Token", "Invalid token. Redirecting...", config.FRONTEND_URL+"/?error=invalid-token"))
			return
		}
		log.Println("Error fetching payment for approval:", err)
		renderHTML(c, errorPage(config.FRONTEND_URL, "processing-failed"))
		return
	}

	if payment.PaymentStatus == payments.StatusCompleted {
		renderHTML(c, redirectPage("Already Approved", "Already approved. Redirecting...", config.FRONTEND_URL+"/?already-approved=true"))
		return
	}
	if payment.PaymentStatus == payments.StatusRejected {
		renderHTML(c, errorPage(config.FRONTEND_URL, "payment-rejected"))
		return
	}
	// A token can exist before the proof upload finished; approving then
	// would complete a payment nobody has reviewed.
	if payment.PaymentStatus != payments.StatusPendingReview {
		renderHTML(c, redirectPage("Not Ready", "Payment is not ready for review. Redirecting...", config.FRONTEND_URL+"/?error=payment-not-ready"))
		return
	}

	// Single conditional update: only the first click wins the transition,
	// so a double click cannot forward the application twice.
	now := time.Now()
	notes := "Approved via email"
	res := database.DB.Model(&payments.Payment{}).
		Where("id = ? AND payment_status = ?", payment.ID, payments.StatusPendingReview).
		Updates(map[string]interface{}{
			"payment_status": payments.StatusCompleted,
			"reviewed_by":    reviewedByEmailLink,
			"reviewed_at":    now,
			"completed_at":   now,
			"admin_notes":    notes,
		})
	if res.Error != nil {
		log.Println("Error updating payment status:", res.Error)
		renderHTML(c, errorPage(config.FRONTEND_URL, "processing-failed"))
		return
	}
	if res.RowsAffected == 0 {
		renderHTML(c, redirectPage("Already Approved", "Already approved. Redirecting...", config.FRONTEND_URL+"/?already-approved=true"))
		return
	}

	submissionID, err := submissions.Forward(database.DB, payment.PaymentType, payment.FormData)
	if err != nil {
		// Payment stays completed; the forward must be replayed manually.
		log.Printf("Forwarding failed for payment %s: %v", payment.ID, err)
		renderHTML(c, errorPage(config.FRONTEND_URL, "processing-failed"))
		return
	}

	if err := database.DB.Model(&payments.Payment{}).
		Where("id = ?", payment.ID).
		Update("forwarded_at", time.Now()).Error; err != nil {
		log.Println("Failed to record forwarded_at:", err)
	}

	log.Printf("Payment %s approved via email link, submission %s created", payment.ID, submissionID)

	mailer.SendAll(database.DB, config.MAIL_FROM,
		[]string{"customer_approved"},
		[]mailer.Message{{
			To:      payment.Email,
			Subject: "Payment Approved - Application Submitted",
			HTML:    customerApprovedEmail(&payment),
		}})

	renderHTML(c, successPage(config.FRONTEND_URL, &payment))
}

func renderHTML(c *gin.Context, page string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func customerApprovedEmail(p *payments.Payment) string {
	kind := "hiring request"
	if p.PaymentType == payments.TypeJobApplication {
		kind = "job application"
	}

	method := "Bank Transfer"
	switch p.PaymentMethod {
	case payments.MethodMpesa:
		method = "M-Pesa"
	case payments.MethodMobileMoneyUganda:
		method = "Mobile Money Uganda"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #10b981 0%%, #059669 100%%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
      <h1>Payment Approved</h1>
    </div>
    <div style="background: #f9fafb; padding: 30px; border: 1px solid #e5e7eb;">
      <p>Hello,</p>
      <div style="background: #d1fae5; border-left: 4px solid #10b981; padding: 20px; margin: 20px 0; border-radius: 4px;">
        <h3 style="margin-top: 0; color: #059669;">Your payment has been approved!</h3>
        <p style="margin-bottom: 0;">Your %s has been successfully submitted to our team. We'll review it and get back to you shortly.</p>
      </div>
      <p><strong>Payment Details:</strong></p>
      <ul>
        <li>Amount: KES %.0f</li>
        <li>Payment Method: %s</li>
        <li>Status: Approved</li>
      </ul>
      <p>Thank you for choosing Coshikowa Agency!</p>
    </div>
    <div style="text-align: center; padding: 20px; color: #6b7280; font-size: 14px;">
      <p>Coshikowa Agency - Your trusted recruitment partner</p>
    </div>
  </body>
</html>`, kind, p.AmountKES, method)
}
