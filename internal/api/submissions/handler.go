package submissions

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Sulasulait/coshikowa-agency.com/config"
	"github.com/Sulasulait/coshikowa-agency.com/database"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/payments"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/submissions"
	"github.com/Sulasulait/coshikowa-agency.com/internal/mailer"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// JobApplicationInput is the job-seeker form payload, field names matching
// what the frontend submits.
type JobApplicationInput struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Location        string `json:"location"`
	Education       string `json:"education"`
	Experience      string `json:"experience"`
	Skills          string `json:"skills"`
	DesiredPosition string `json:"desiredPosition" binding:"required"`
	Salary          string `json:"salary"`
	Availability    string `json:"availability"`
	AdditionalInfo  string `json:"additionalInfo"`
	DateOfBirth     string `json:"dateOfBirth"`
}

// HiringRequestInput is the employer form payload.
type HiringRequestInput struct {
	CompanyName   string `json:"companyName" binding:"required"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Industry      string `json:"industry"`
	Position      string `json:"position" binding:"required"`
	Requirements  string `json:"requirements"`
	Urgency       string `json:"urgency"`
	JobCategory   string `json:"jobCategory"`
	AgeRange      string `json:"ageRange"`
}

// SendJobApplication persists an approved job application and notifies staff
// and the applicant. The database insert is the success condition; email
// failures are retried by the outbox and never fail the request.
func SendJobApplication(c *gin.Context) {
	var input JobApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := saveJobApplication(database.DB, &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save application: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// SendHiringRequest is the employer-side counterpart of SendJobApplication.
func SendHiringRequest(c *gin.Context) {
	var input HiringRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := saveHiringRequest(database.DB, &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save request: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// Forward delivers a stored form payload to the table matching its payment
// type. Both the approval link and the admin console go through here, so a
// payment is forwarded the same way regardless of who approved it.
func Forward(db *gorm.DB, paymentType string, formData []byte) (string, error) {
	switch paymentType {
	case payments.TypeJobApplication:
		var input JobApplicationInput
		if err := json.Unmarshal(formData, &input); err != nil {
			return "", fmt.Errorf("invalid job application payload: %w", err)
		}
		if input.FullName == "" || input.Email == "" {
			return "", fmt.Errorf("job application payload missing required fields")
		}
		return saveJobApplication(db, &input)
	case payments.TypeHiringRequest:
		var input HiringRequestInput
		if err := json.Unmarshal(formData, &input); err != nil {
			return "", fmt.Errorf("invalid hiring request payload: %w", err)
		}
		if input.CompanyName == "" || input.Email == "" {
			return "", fmt.Errorf("hiring request payload missing required fields")
		}
		return saveHiringRequest(db, &input)
	default:
		return "", fmt.Errorf("unknown payment type: %s", paymentType)
	}
}

func saveJobApplication(db *gorm.DB, input *JobApplicationInput) (string, error) {
	application := submissions.JobApplication{
		FullName:        input.FullName,
		Email:           input.Email,
		Phone:           input.Phone,
		Location:        optStr(input.Location),
		Education:       optStr(input.Education),
		Experience:      optStr(input.Experience),
		Skills:          optStr(input.Skills),
		DesiredPosition: input.DesiredPosition,
		Salary:          optStr(input.Salary),
		Availability:    optStr(input.Availability),
		AdditionalInfo:  optStr(input.AdditionalInfo),
		DateOfBirth:     optStr(input.DateOfBirth),
		Status:          submissions.ApplicationNew,
	}

	if err := db.Create(&application).Error; err != nil {
		return "", err
	}

	mailer.SendAll(db, config.MAIL_FROM,
		[]string{"admin_copy", "submitter_confirmation"},
		[]mailer.Message{
			{
				To:      config.ADMIN_EMAIL,
				Subject: "New Job Application - " + input.DesiredPosition,
				HTML:    adminJobApplicationEmail(input),
			},
			{
				To:      input.Email,
				Subject: "Application Received - Coshikowa Agency",
				HTML:    applicantConfirmationEmail(input),
			},
		})

	return application.ID, nil
}

func saveHiringRequest(db *gorm.DB, input *HiringRequestInput) (string, error) {
	request := submissions.HiringRequest{
		CompanyName:   input.CompanyName,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Industry:      input.Industry,
		Position:      input.Position,
		Requirements:  input.Requirements,
		Urgency:       input.Urgency,
		JobCategory:   optStr(input.JobCategory),
		AgeRange:      optStr(input.AgeRange),
		Status:        submissions.RequestNew,
	}

	if err := db.Create(&request).Error; err != nil {
		return "", err
	}

	mailer.SendAll(db, config.MAIL_FROM,
		[]string{"admin_copy", "submitter_confirmation"},
		[]mailer.Message{
			{
				To:      config.ADMIN_EMAIL,
				Subject: "New Hiring Request - " + input.Position,
				HTML:    adminHiringRequestEmail(input),
			},
			{
				To:      input.Email,
				Subject: "Hiring Request Received - Coshikowa Agency",
				HTML:    employerConfirmationEmail(input),
			},
		})

	return request.ID, nil
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
