package payments

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sulasulait/coshikowa-agency.com/database"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/payments"
	"github.com/Sulasulait/coshikowa-agency.com/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const MaxProofSize = 5 * 1024 * 1024 // 5MB

var allowedProofTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"application/pdf",
}

// SubmitProof accepts one receipt file for a pending payment, stores it,
// records the proof, and moves the payment to pending_review. The staff
// notification is fired after the response; its failure never blocks the
// submitter.
func SubmitProof(c *gin.Context) {
	paymentID := c.Param("id")

	var payment payments.Payment
	if err := database.DB.Where("id = ?", paymentID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment"})
		return
	}

	if payments.Terminal(payment.PaymentStatus) {
		c.JSON(http.StatusConflict, gin.H{"error": "Payment has already been reviewed"})
		return
	}

	method := c.PostForm("payment_method")
	if !payments.ValidMethod(method) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment_method"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment proof file is required"})
		return
	}

	if fh.Size > MaxProofSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a file smaller than 5MB"})
		return
	}

	mime, err := storage.DetectMIME(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}
	if !proofTypeAllowed(mime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload an image (JPG, PNG, WEBP) or PDF file"})
		return
	}

	fileURL, err := storage.SaveProof(payment.ID, fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store payment proof"})
		return
	}

	proof := payments.PaymentProof{
		PaymentID: payment.ID,
		FileURL:   fileURL,
		FileName:  fh.Filename,
		FileSize:  fh.Size,
	}
	if err := database.DB.Create(&proof).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment proof"})
		return
	}

	updates := map[string]interface{}{
		"payment_method":    method,
		"payment_status":    payments.StatusPendingReview,
		"payment_proof_url": fileURL,
	}
	if err := database.DB.Model(&payments.Payment{}).Where("id = ?", payment.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	go func() {
		if err := NotifyProofSubmitted(database.DB, payment.ID, fileURL, method, payment.Email); err != nil {
			log.Println("Error sending payment proof notification:", err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"payment_status":    payments.StatusPendingReview,
		"payment_proof_url": fileURL,
	})
}

func proofTypeAllowed(mime string) bool {
	for _, t := range allowedProofTypes {
		if mime == t {
			return true
		}
	}
	return false
}
