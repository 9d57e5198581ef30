package site

import (
	"net/http"

	"github.com/Sulasulait/coshikowa-agency.com/database"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/site"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type pageSummary struct {
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
}

// ListPages returns the published informational pages (slug and title only),
// enough for the frontend to build navigation.
func ListPages(c *gin.Context) {
	var pages []site.Page
	if err := database.DB.Where("status = ?", site.PagePublished).Order("slug").Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}

	summaries := make([]pageSummary, 0, len(pages))
	for _, p := range pages {
		summaries = append(summaries, pageSummary{Slug: p.Slug, Title: p.Title, MetaDescription: p.MetaDescription})
	}
	c.JSON(http.StatusOK, summaries)
}

// GetPage serves one published page with its blocks in display order.
func GetPage(c *gin.Context) {
	var page site.Page
	err := database.DB.
		Preload("Blocks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_index ASC") }).
		Where("slug = ? AND status = ?", c.Param("slug"), site.PagePublished).
		First(&page).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, page)
}
