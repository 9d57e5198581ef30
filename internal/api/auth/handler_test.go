package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sulasulait/coshikowa-agency.com/config"
	"github.com/Sulasulait/coshikowa-agency.com/database"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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

	config.JWT_SECRET = "test-secret"
}

func seedStaff(t *testing.T, email, password string) *users.User {
	t.Helper()
	var pw *string
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		s := string(hashed)
		pw = &s
	}
	u := users.User{Name: "Staff", Email: email, Password: pw, AuthProvider: "local", Role: "admin"}
	if pw == nil {
		u.AuthProvider = "google"
	}
	require.NoError(t, database.DB.Create(&u).Error)
	return &u
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesAdminToken(t *testing.T) {
	setup(t)
	seedStaff(t, "info@coshikowaagency.com", "letmein-2024")

	r := gin.New()
	r.POST("/login", Login)

	w := postJSON(r, "/login", map[string]any{
		"email":    "info@coshikowaagency.com",
		"password": "letmein-2024",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.Role)

	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.JWT_SECRET), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "info@coshikowaagency.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	setup(t)
	seedStaff(t, "info@coshikowaagency.com", "letmein-2024")

	r := gin.New()
	r.POST("/login", Login)

	w := postJSON(r, "/login", map[string]any{
		"email":    "info@coshikowaagency.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginGoogleOnlyAccount(t *testing.T) {
	setup(t)
	seedStaff(t, "google-staff@coshikowaagency.com", "")

	r := gin.New()
	r.POST("/login", Login)

	w := postJSON(r, "/login", map[string]any{
		"email":    "google-staff@coshikowaagency.com",
		"password": "anything",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Google sign-in")
}

func TestChangePassword(t *testing.T) {
	setup(t)
	u := seedStaff(t, "info@coshikowaagency.com", "letmein-2024")

	r := gin.New()
	r.POST("/change-password", func(c *gin.Context) {
		c.Set("user_id", u.ID)
		ChangePassword(c)
	})

	w := postJSON(r, "/change-password", map[string]any{
		"current_password": "letmein-2024",
		"new_password":     "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/change-password", map[string]any{
		"current_password": "letmein-2024",
		"new_password":     "a-much-better-one",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated users.User
	require.NoError(t, database.DB.First(&updated, "id = ?", u.ID).Error)
	require.NotNil(t, updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*updated.Password), []byte("a-much-better-one")))
}
