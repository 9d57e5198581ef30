package jobs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sulasulait/coshikowa-agency.com/database"
	jobdomain "github.com/Sulasulait/coshikowa-agency.com/internal/domain/jobs"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
}

func seedOpening(t *testing.T, title, category, status string) *jobdomain.JobOpening {
	t.Helper()
	o := jobdomain.JobOpening{
		Title:          title,
		Company:        "Test Co",
		Location:       "Nairobi, Kenya",
		Description:    "d",
		Requirements:   "r",
		EmploymentType: "full-time",
		Category:       category,
		Status:         status,
	}
	require.NoError(t, database.DB.Create(&o).Error)
	return &o
}

func router() *gin.Engine {
	r := gin.New()
	r.GET("/job-openings", ListOpenings)
	r.GET("/job-openings/:id", GetOpening)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListOpeningsOnlyActive(t *testing.T) {
	setup(t)
	seedOpening(t, "Housekeeper", "domestic", jobdomain.OpeningActive)
	seedOpening(t, "Security Guard", "security", jobdomain.OpeningActive)
	seedOpening(t, "Old Listing", "domestic", jobdomain.OpeningClosed)

	w := get(router(), "/job-openings")
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []jobdomain.JobOpening
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)

	w = get(router(), "/job-openings?category=security")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Security Guard", rows[0].Title)
}

func TestGetOpening(t *testing.T) {
	setup(t)
	active := seedOpening(t, "Housekeeper", "domestic", jobdomain.OpeningActive)
	closed := seedOpening(t, "Old Listing", "domestic", jobdomain.OpeningClosed)
	r := router()

	w := get(r, "/job-openings/"+active.ID)
	assert.Equal(t, http.StatusOK, w.Code)

	// closed listings are not retrievable
	w = get(r, "/job-openings/"+closed.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
