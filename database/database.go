package database

import (
	"fmt"
	"log"
	"os"

	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/jobs"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/outbox"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/payments"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/site"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/submissions"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}

// Migrate runs schema migration for every domain model. Exposed separately so
// tests can point DB at their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},

		&payments.Payment{},
		&payments.PaymentProof{},

		&submissions.JobApplication{},
		&submissions.HiringRequest{},

		&jobs.JobOpening{},

		&site.Page{},
		&site.PageBlock{},

		&outbox.EmailTask{},
	)
}
