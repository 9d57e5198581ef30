package seed

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/Sulasulait/coshikowa-agency.com/config"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/jobs"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/site"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run makes sure the minimum data the site needs is present. It only creates
// what is missing, so it is safe to call on every start.
func Run(db *gorm.DB) {
	if err := seedAdmin(db); err != nil {
		log.Println("seed admin:", err)
	}
	if err := seedPages(db); err != nil {
		log.Println("seed pages:", err)
	}
	if err := seedOpenings(db); err != nil {
		log.Println("seed job openings:", err)
	}
}

func seedAdmin(db *gorm.DB) error {
	var existing users.User
	err := db.Where("email = ?", config.ADMIN_EMAIL).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Println("SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	pw := string(hashed)

	admin := users.User{
		Name:         "Coshikowa Admin",
		Email:        config.ADMIN_EMAIL,
		Password:     &pw,
		AuthProvider: "local",
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Admin account seeded for", config.ADMIN_EMAIL)
	return nil
}

func props(v map[string]any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}

func seedPages(db *gorm.DB) error {
	var count int64
	if err := db.Model(&site.Page{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	pages := []site.Page{
		{
			Slug:            "home",
			Title:           "Coshikowa Agency",
			Status:          site.PagePublished,
			MetaDescription: "Connecting skilled workers in Kenya and Uganda with trusted employers.",
			Blocks: []site.PageBlock{
				{SortIndex: 0, Type: "hero", Props: props(map[string]any{
					"heading":    "Find Work. Hire Talent.",
					"subheading": "Coshikowa Agency connects job seekers across Kenya and Uganda with employers who need them.",
					"cta_label":  "Get Hired",
					"cta_link":   "/get-hired",
				})},
				{SortIndex: 1, Type: "feature_grid", Props: props(map[string]any{
					"items": []map[string]any{
						{"title": "Job Placement", "body": "We match candidates with vetted openings in hospitality, construction, domestic work and more."},
						{"title": "Staff Sourcing", "body": "Employers tell us who they need and we shortlist qualified, reference-checked candidates."},
						{"title": "Cross-border Reach", "body": "Active candidate pools in both Kenya and Uganda."},
					},
				})},
			},
		},
		{
			Slug:            "about",
			Title:           "About Us",
			Status:          site.PagePublished,
			MetaDescription: "Who Coshikowa Agency is and how we work.",
			Blocks: []site.PageBlock{
				{SortIndex: 0, Type: "rich_text", Props: props(map[string]any{
					"html": "<p>Coshikowa Agency is a recruitment agency serving Kenya and Uganda. We place job seekers with employers and source staff for companies across East Africa.</p>",
				})},
			},
		},
		{
			Slug:            "how-it-works",
			Title:           "How It Works",
			Status:          site.PagePublished,
			MetaDescription: "The steps from application to placement.",
			Blocks: []site.PageBlock{
				{SortIndex: 0, Type: "steps", Props: props(map[string]any{
					"steps": []map[string]any{
						{"title": "Apply", "body": "Fill in the application form with your details and desired position."},
						{"title": "Pay the service fee", "body": "Pay via M-Pesa, Mobile Money Uganda or bank transfer and upload your payment proof."},
						{"title": "Review", "body": "Our team verifies your payment and forwards your application to matching employers."},
						{"title": "Get placed", "body": "We contact you as soon as an employer picks your profile."},
					},
				})},
			},
		},
		{
			Slug:            "get-hired",
			Title:           "Get Hired",
			Status:          site.PagePublished,
			MetaDescription: "Apply for jobs through Coshikowa Agency.",
			Blocks: []site.PageBlock{
				{SortIndex: 0, Type: "rich_text", Props: props(map[string]any{
					"html": "<p>Submit your job application and our placement team will match you with open positions. A one-time service fee of KES 2,000 applies.</p>",
				})},
				{SortIndex: 1, Type: "form_link", Props: props(map[string]any{"form": "job_application"})},
			},
		},
		{
			Slug:            "find-talent",
			Title:           "Find Talent",
			Status:          site.PagePublished,
			MetaDescription: "Hire vetted staff through Coshikowa Agency.",
			Blocks: []site.PageBlock{
				{SortIndex: 0, Type: "rich_text", Props: props(map[string]any{
					"html": "<p>Tell us about the role you need to fill and we will shortlist qualified candidates. A sourcing fee of KES 3,000 applies per request.</p>",
				})},
				{SortIndex: 1, Type: "form_link", Props: props(map[string]any{"form": "hiring_request"})},
			},
		},
		{
			Slug:            "refund-policy",
			Title:           "Refund Policy",
			Status:          site.PagePublished,
			MetaDescription: "Coshikowa Agency refund policy.",
			Blocks: []site.PageBlock{
				{SortIndex: 0, Type: "rich_text", Props: props(map[string]any{
					"html": "<p>Service fees are refundable within 14 days if we are unable to process your application. Contact info@coshikowaagency.com with your payment reference.</p>",
				})},
			},
		},
		{
			Slug:            "legal-disclaimer",
			Title:           "Legal Disclaimer",
			Status:          site.PagePublished,
			MetaDescription: "Coshikowa Agency legal disclaimer.",
			Blocks: []site.PageBlock{
				{SortIndex: 0, Type: "rich_text", Props: props(map[string]any{
					"html": "<p>Coshikowa Agency acts as an intermediary between job seekers and employers. Placement is not guaranteed and depends on employer demand and candidate qualifications.</p>",
				})},
			},
		},
	}

	for i := range pages {
		if err := db.Create(&pages[i]).Error; err != nil {
			return err
		}
	}
	log.Println("Site pages seeded")
	return nil
}

func seedOpenings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&jobs.JobOpening{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	salaryA := "KES 25,000 - 35,000"
	salaryB := "UGX 800,000 - 1,200,000"

	openings := []jobs.JobOpening{
		{
			Title:          "Housekeeper",
			Company:        "Private Household",
			Location:       "Nairobi, Kenya",
			Description:    "Live-in housekeeper for a family home in Lavington. Duties include cleaning, laundry and meal preparation.",
			Requirements:   "2+ years experience, references required.",
			SalaryRange:    &salaryA,
			EmploymentType: "full-time",
			Category:       "domestic",
			Status:         jobs.OpeningActive,
		},
		{
			Title:          "Security Guard",
			Company:        "Sentinel Protection Services",
			Location:       "Kampala, Uganda",
			Description:    "Night shift guard for a commercial property in central Kampala.",
			Requirements:   "Certificate of good conduct, physically fit, prior guarding experience preferred.",
			SalaryRange:    &salaryB,
			EmploymentType: "full-time",
			Category:       "security",
			Status:         jobs.OpeningActive,
		},
		{
			Title:          "Waitstaff",
			Company:        "Savannah Grill",
			Location:       "Mombasa, Kenya",
			Description:    "Serving staff for a busy beachfront restaurant. Evening and weekend shifts.",
			Requirements:   "Hospitality experience, fluent English and Swahili.",
			EmploymentType: "part-time",
			Category:       "hospitality",
			Status:         jobs.OpeningActive,
		},
	}

	for i := range openings {
		if err := db.Create(&openings[i]).Error; err != nil {
			return err
		}
	}
	log.Println("Job openings seeded")
	return nil
}
