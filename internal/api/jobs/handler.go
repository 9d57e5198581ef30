package jobs

import (
	"net/http"

	"github.com/Sulasulait/coshikowa-agency.com/database"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/jobs"

	"github.com/gin-gonic/gin"
)

// ListOpenings serves the public job board: active listings only, newest
// first, optionally narrowed to one category.
func ListOpenings(c *gin.Context) {
	q := database.DB.Where("status = ?", jobs.OpeningActive).Order("created_at DESC")

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var openings []jobs.JobOpening
	if err := q.Find(&openings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load job openings"})
		return
	}

	c.JSON(http.StatusOK, openings)
}

func GetOpening(c *gin.Context) {
	var opening jobs.JobOpening
	if err := database.DB.Where("id = ? AND status = ?", c.Param("id"), jobs.OpeningActive).First(&opening).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job opening not found"})
		return
	}
	c.JSON(http.StatusOK, opening)
}
