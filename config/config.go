package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	APP_URL      string
	FRONTEND_URL string

	ADMIN_EMAIL string
	MAIL_FROM   string

	RESEND_API_KEY string

	SMTP_HOST string
	SMTP_PORT string
	SMTP_USER string
	SMTP_PASS string

	UPLOAD_DIR      string
	UPLOAD_BASE_URL string

	CORS_ORIGIN string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	APP_URL = getEnv("APP_URL", "http://localhost:"+PORT)
	FRONTEND_URL = getEnv("FRONTEND_URL", "https://coshikowa.netlify.app")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "info@coshikowaagency.com")
	MAIL_FROM = getEnv("MAIL_FROM", "Coshikowa Agency <noreply@coshikowaagency.com>")

	RESEND_API_KEY = getEnv("RESEND_API_KEY", "")

	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	SMTP_USER = getEnv("SMTP_USER", "")
	SMTP_PASS = getEnv("SMTP_PASS", "")

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "./uploads")
	UPLOAD_BASE_URL = getEnv("UPLOAD_BASE_URL", APP_URL+"/uploads")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", FRONTEND_URL)

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	LoadPricing()
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
