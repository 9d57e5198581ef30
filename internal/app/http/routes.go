package routes

import (
	"github.com/Sulasulait/coshikowa-agency.com/config"
	adminapi "github.com/Sulasulait/coshikowa-agency.com/internal/api/admin"
	"github.com/Sulasulait/coshikowa-agency.com/internal/api/approval"
	authapi "github.com/Sulasulait/coshikowa-agency.com/internal/api/auth"
	jobsapi "github.com/Sulasulait/coshikowa-agency.com/internal/api/jobs"
	paymentsapi "github.com/Sulasulait/coshikowa-agency.com/internal/api/payments"
	siteapi "github.com/Sulasulait/coshikowa-agency.com/internal/api/site"
	"github.com/Sulasulait/coshikowa-agency.com/internal/api/submissions"
	"github.com/Sulasulait/coshikowa-agency.com/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Approval link opens from an email client, always answers with HTML.
	r.GET("/approve-payment", approval.ApprovePayment)

	// Multipart upload, skips JSON sanitization.
	r.POST("/payments/:id/proof", paymentsapi.SubmitProof)

	// Uploaded proofs are served back for the staff review email.
	r.Static("/uploads", config.UPLOAD_DIR)

	r.GET("/job-openings", jobsapi.ListOpenings)
	r.GET("/job-openings/:id", jobsapi.GetOpening)
	r.GET("/pages", siteapi.ListPages)
	r.GET("/pages/:slug", siteapi.GetPage)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/payments", paymentsapi.CreatePayment)
	public.POST("/send-payment-proof-notification", paymentsapi.SendProofNotification)
	public.POST("/send-job-application", submissions.SendJobApplication)
	public.POST("/send-hiring-request", submissions.SendHiringRequest)

	public.POST("/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Staff console
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/payments", adminapi.ListPayments)
	admin.POST("/payments/:id/approve", adminapi.ApprovePayment)
	admin.POST("/payments/:id/reject", adminapi.RejectPayment)
	admin.GET("/applications", adminapi.ListApplications)
	admin.GET("/hiring-requests", adminapi.ListHiringRequests)
	admin.GET("/stats", adminapi.GetStats)
	admin.GET("/email-tasks", adminapi.ListEmailTasks)
	admin.POST("/email-tasks/:id/retry", adminapi.RetryEmailTask)
	admin.POST("/change-password", authapi.ChangePassword)
}
