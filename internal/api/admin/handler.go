package admin

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Sulasulait/coshikowa-agency.com/config"
	"github.com/Sulasulait/coshikowa-agency.com/database"
	"github.com/Sulasulait/coshikowa-agency.com/internal/api/submissions"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/outbox"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/payments"
	submissiondomain "github.com/Sulasulait/coshikowa-agency.com/internal/domain/submissions"
	"github.com/Sulasulait/coshikowa-agency.com/internal/mailer"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// reviewableStatuses is what the payments tab shows by default: everything
// that has reached review or a terminal state. Bare pending rows are noise
// (abandoned checkouts) and stay hidden unless asked for.
var reviewableStatuses = []string{
	payments.StatusPendingReview,
	payments.StatusCompleted,
	payments.StatusRejected,
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the admin dashboard"})
}

func ListPayments(c *gin.Context) {
	q := database.DB.Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	} else {
		q = q.Where("payment_status IN ?", reviewableStatuses)
	}

	var rows []payments.Payment
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

func ListApplications(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []submissiondomain.JobApplication
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load applications"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func ListHiringRequests(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []submissiondomain.HiringRequest
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hiring requests"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ApprovePayment is the console path onto the same pending_review->completed
// edge as the email link; only the trigger and audit identity differ.
func ApprovePayment(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	// body is optional; notes may be empty on approval
	_ = c.ShouldBindJSON(&input)

	payment, ok := loadReviewablePayment(c)
	if !ok {
		return
	}

	reviewer := reviewerEmail(c)
	now := time.Now()
	res := database.DB.Model(&payments.Payment{}).
		Where("id = ? AND payment_status = ?", payment.ID, payments.StatusPendingReview).
		Updates(map[string]interface{}{
			"payment_status": payments.StatusCompleted,
			"admin_notes":    input.Notes,
			"reviewed_by":    reviewer,
			"reviewed_at":    now,
			"completed_at":   now,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve payment"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Payment is not pending review"})
		return
	}

	submissionID, err := submissions.Forward(database.DB, payment.PaymentType, payment.FormData)
	if err != nil {
		log.Printf("Forwarding failed for payment %s: %v", payment.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Payment approved but forwarding failed: %v", err)})
		return
	}

	if err := database.DB.Model(&payments.Payment{}).
		Where("id = ?", payment.ID).
		Update("forwarded_at", time.Now()).Error; err != nil {
		log.Println("Failed to record forwarded_at:", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submission_id": submissionID})
}

// RejectPayment requires a reason; the note requirement used to live only in
// the dashboard UI, now the server refuses too.
func RejectPayment(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Notes) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a reason for rejection"})
		return
	}

	payment, ok := loadReviewablePayment(c)
	if !ok {
		return
	}

	now := time.Now()
	res := database.DB.Model(&payments.Payment{}).
		Where("id = ? AND payment_status = ?", payment.ID, payments.StatusPendingReview).
		Updates(map[string]interface{}{
			"payment_status": payments.StatusRejected,
			"admin_notes":    input.Notes,
			"reviewed_by":    reviewerEmail(c),
			"reviewed_at":    now,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject payment"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Payment is not pending review"})
		return
	}

	mailer.SendAll(database.DB, config.MAIL_FROM,
		[]string{"submitter_rejected"},
		[]mailer.Message{{
			To:      payment.Email,
			Subject: "Payment Review Update - Coshikowa Agency",
			HTML:    rejectionEmail(payment, input.Notes),
		}})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type Stats struct {
	TotalPayments    int64   `json:"total_payments"`
	PendingReview    int64   `json:"pending_review"`
	Completed        int64   `json:"completed"`
	Rejected         int64   `json:"rejected"`
	RevenueKES       float64 `json:"revenue_kes"`
	Applications     int64   `json:"applications"`
	HiringRequests   int64   `json:"hiring_requests"`
	FailedEmailTasks int64   `json:"failed_email_tasks"`
}

func GetStats(c *gin.Context) {
	var stats Stats

	database.DB.Model(&payments.Payment{}).Count(&stats.TotalPayments)
	database.DB.Model(&payments.Payment{}).Where("payment_status = ?", payments.StatusPendingReview).Count(&stats.PendingReview)
	database.DB.Model(&payments.Payment{}).Where("payment_status = ?", payments.StatusCompleted).Count(&stats.Completed)
	database.DB.Model(&payments.Payment{}).Where("payment_status = ?", payments.StatusRejected).Count(&stats.Rejected)
	database.DB.Model(&payments.Payment{}).
		Where("payment_status = ?", payments.StatusCompleted).
		Select("COALESCE(SUM(amount_kes), 0)").Scan(&stats.RevenueKES)

	database.DB.Model(&submissiondomain.JobApplication{}).Count(&stats.Applications)
	database.DB.Model(&submissiondomain.HiringRequest{}).Count(&stats.HiringRequests)
	database.DB.Model(&outbox.EmailTask{}).Where("status = ?", outbox.TaskFailed).Count(&stats.FailedEmailTasks)

	c.JSON(http.StatusOK, stats)
}

// ListEmailTasks exposes the outbox, defaulting to the dead-letter set.
func ListEmailTasks(c *gin.Context) {
	status := c.DefaultQuery("status", outbox.TaskFailed)

	var tasks []outbox.EmailTask
	if err := database.DB.Where("status = ?", status).Order("created_at DESC").Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load email tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func RetryEmailTask(c *gin.Context) {
	if err := mailer.Requeue(database.DB, c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No failed email task with that id"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to requeue email task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func loadReviewablePayment(c *gin.Context) (*payments.Payment, bool) {
	var payment payments.Payment
	if err := database.DB.Where("id = ?", c.Param("id")).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment"})
		}
		return nil, false
	}
	return &payment, true
}

func reviewerEmail(c *gin.Context) string {
	if email, ok := c.Get("email"); ok {
		if s, ok := email.(string); ok && s != "" {
			return s
		}
	}
	return "admin"
}

func rejectionEmail(p *payments.Payment, notes string) string {
	kind := "hiring request"
	if p.PaymentType == payments.TypeJobApplication {
		kind = "job application"
	}

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<div style="padding: 30px; background-color: white;">
  <h1 style="color: #dc2626; border-bottom: 2px solid #dc2626; padding-bottom: 10px;">Payment Could Not Be Verified</h1>
  <p>Hello,</p>
  <p style="line-height: 1.6;">We reviewed the payment proof submitted with your %s but could not verify the payment.</p>
  <div style="background: #fef2f2; border-left: 4px solid #dc2626; padding: 15px; margin: 20px 0; border-radius: 4px;">
    <strong>Reason:</strong> %s
  </div>
  <p style="line-height: 1.6;">If you believe this is a mistake, please reply with a clearer copy of your receipt or contact us at <a href="mailto:info@coshikowaagency.com" style="color: #0284c7;">info@coshikowaagency.com</a>.</p>
  <p style="margin-top: 30px;">Best regards,<br><strong>Coshikowa Agency Team</strong></p>
</div>
<div style="text-align: center; padding: 20px; background-color: #f8f9fa; color: #6b7280; font-size: 12px;">
  <p>&copy; 2025 Coshikowa Agency. All rights reserved.</p>
</div>
</div>`, kind, notes)
}
