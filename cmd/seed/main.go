// Package main seeds the database with a starter catalogue of well known
// central and state government schemes, then prints what was loaded.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"saral-seva-backend/internal/config"
	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/services/database"
	"saral-seva-backend/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()

	db, err := database.New(cfg)
	if err != nil {
		color.Red("Could not connect to database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(cfg.DatabaseURL()); err != nil {
		color.Red("Could not run migrations: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := database.NewSchemeRepository(db)

	var seeded, skipped int
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Slug", "Name", "Level", "Category", "Status"})

	for _, scheme := range starterSchemes() {
		created, err := repo.Create(ctx, scheme)
		if err != nil {
			if errors.Is(err, models.ErrSlugExists) {
				skipped++
				continue
			}
			color.Red("Could not seed %q: %v", scheme.Name, err)
			os.Exit(1)
		}

		seeded++
		table.Append([]string{
			created.Slug,
			created.Name,
			string(created.Level),
			created.Category,
			string(created.Status),
		})
	}

	color.Cyan("\n=== Saral Seva Scheme Catalogue ===")
	if seeded > 0 {
		table.Render()
	}
	color.Green("Seeded %d schemes (%d already present)", seeded, skipped)
	fmt.Println()
}

func ptr[T any](v T) *T { return &v }

// starterSchemes returns the built-in catalogue. Counters start at zero; the
// popularity and trending scores grow as citizens use the portal.
func starterSchemes() []*models.SchemeCreate {
	return []*models.SchemeCreate{
		{
			Name:             "PM-KISAN Samman Nidhi",
			ShortDescription: "Income support of ₹6,000 per year for landholding farmer families",
			Description:      "Pradhan Mantri Kisan Samman Nidhi provides income support to all landholding farmer families across the country, paid in three equal installments of ₹2,000 directly into bank accounts.",
			Category:         "agriculture",
			Level:            models.SchemeLevelCentral,
			Department:       "Ministry of Agriculture and Farmers Welfare",
			Eligibility: models.EligibilityRules{
				Occupations: []string{"farmer"},
				IncomeRange: &models.IncomeRange{Min: 0, Max: ptr(200000.0)},
			},
			Benefit: models.Benefit{
				Type:      "cash",
				AmountMin: 6000,
				AmountMax: 6000,
				Frequency: models.BenefitYearly,
			},
			Application: models.ApplicationProcess{
				Online:  true,
				Offline: true,
				Steps:   []string{"Register on the PM-KISAN portal", "Submit land records", "Complete eKYC"},
			},
			RequiredDocs: []string{"Aadhaar card", "Land ownership records", "Bank passbook"},
			Keywords:     []string{"kisan", "farmer", "income support", "agriculture", "किसान"},
			Status:       models.SchemeStatusActive,
		},
		{
			Name:             "Atal Pension Yojana",
			ShortDescription: "Guaranteed monthly pension of ₹1,000 to ₹5,000 after age 60",
			Description:      "Atal Pension Yojana is a pension scheme for workers in the unorganised sector. Subscribers receive a guaranteed minimum monthly pension after the age of 60 depending on their contributions.",
			Category:         "pension",
			Level:            models.SchemeLevelCentral,
			Department:       "Ministry of Finance",
			Eligibility: models.EligibilityRules{
				AgeRange: &models.AgeRange{Min: 18, Max: 40},
			},
			Benefit: models.Benefit{
				Type:      "pension",
				AmountMin: 1000,
				AmountMax: 5000,
				Frequency: models.BenefitMonthly,
			},
			Application: models.ApplicationProcess{
				Online:  true,
				Offline: true,
				Steps:   []string{"Visit your bank branch or net banking portal", "Fill the APY registration form", "Choose a pension amount"},
			},
			RequiredDocs: []string{"Aadhaar card", "Bank account", "Mobile number"},
			Keywords:     []string{"pension", "retirement", "old age", "पेंशन"},
			Status:       models.SchemeStatusActive,
		},
		{
			Name:             "Pradhan Mantri Awas Yojana - Gramin",
			ShortDescription: "Financial assistance for pucca houses in rural areas",
			Description:      "PMAY-G provides financial assistance to houseless households and those living in kutcha houses in rural areas for construction of pucca houses with basic amenities.",
			Category:         "housing",
			Level:            models.SchemeLevelCentral,
			Department:       "Ministry of Rural Development",
			Eligibility: models.EligibilityRules{
				IncomeRange: &models.IncomeRange{Min: 0, Max: ptr(300000.0)},
				Categories:  []models.SocialCategory{models.CategorySC, models.CategoryST, models.CategoryOBC, models.CategoryGeneral},
			},
			Benefit: models.Benefit{
				Type:      "cash",
				AmountMin: 120000,
				AmountMax: 130000,
				Frequency: models.BenefitOneTime,
			},
			Application: models.ApplicationProcess{
				Online:  false,
				Offline: true,
				Steps:   []string{"Contact your Gram Panchayat", "Verification against SECC data", "Geo-tagged progress tracking"},
			},
			RequiredDocs: []string{"Aadhaar card", "Job card", "Bank passbook"},
			Keywords:     []string{"awas", "housing", "house", "rural", "आवास", "घर"},
			Status:       models.SchemeStatusActive,
		},
		{
			Name:             "Sukanya Samriddhi Yojana",
			ShortDescription: "High-interest savings scheme for the girl child",
			Description:      "Sukanya Samriddhi Yojana is a small deposit scheme for the girl child offering a high interest rate and tax benefits. Accounts can be opened for girls below the age of 10.",
			Category:         "women_and_child",
			Level:            models.SchemeLevelCentral,
			Department:       "Ministry of Women and Child Development",
			Eligibility: models.EligibilityRules{
				AgeRange:   &models.AgeRange{Min: 0, Max: 10},
				IsForWomen: true,
			},
			Benefit: models.Benefit{
				Type:      "savings",
				Frequency: models.BenefitYearly,
			},
			Application: models.ApplicationProcess{
				Online:  false,
				Offline: true,
				Steps:   []string{"Visit a post office or authorised bank", "Submit the birth certificate", "Make the opening deposit"},
				Fee:     250,
			},
			RequiredDocs: []string{"Birth certificate of the girl child", "Guardian's identity proof"},
			Keywords:     []string{"sukanya", "girl child", "savings", "daughter", "बेटी"},
			Status:       models.SchemeStatusActive,
		},
		{
			Name:             "National Old Age Pension Scheme",
			ShortDescription: "Monthly pension for senior citizens below the poverty line",
			Description:      "The Indira Gandhi National Old Age Pension Scheme provides a monthly pension to senior citizens belonging to households below the poverty line.",
			Category:         "pension",
			Level:            models.SchemeLevelCentral,
			Department:       "Ministry of Rural Development",
			Eligibility: models.EligibilityRules{
				AgeRange:           &models.AgeRange{Min: 60, Max: 150},
				IncomeRange:        &models.IncomeRange{Min: 0, Max: ptr(100000.0)},
				IsForSeniorCitizen: true,
			},
			Benefit: models.Benefit{
				Type:      "pension",
				AmountMin: 200,
				AmountMax: 500,
				Frequency: models.BenefitMonthly,
			},
			Application: models.ApplicationProcess{
				Online:  true,
				Offline: true,
				Steps:   []string{"Apply at the Block Development Office or online", "Attach BPL card and age proof"},
			},
			RequiredDocs: []string{"Aadhaar card", "BPL card", "Age proof"},
			Keywords:     []string{"old age", "pension", "senior citizen", "वृद्धावस्था"},
			Status:       models.SchemeStatusActive,
		},
		{
			Name:             "Mukhyamantri Kanya Utthan Yojana",
			ShortDescription: "Financial assistance for girls in Bihar from birth to graduation",
			Description:      "A Bihar state scheme providing staged financial assistance for girls from birth through graduation, encouraging education and reducing dropout rates.",
			Category:         "education",
			Level:            models.SchemeLevelState,
			Department:       "Department of Education, Bihar",
			Eligibility: models.EligibilityRules{
				States:     []string{"Bihar"},
				IsForWomen: true,
			},
			Benefit: models.Benefit{
				Type:      "cash",
				AmountMin: 25000,
				AmountMax: 50000,
				Frequency: models.BenefitOneTime,
			},
			Application: models.ApplicationProcess{
				Online: true,
				Steps:  []string{"Register on the e-Kalyan portal", "Upload marksheets and bank details"},
			},
			RequiredDocs: []string{"Aadhaar card", "Graduation marksheet", "Bank passbook"},
			Keywords:     []string{"kanya", "girl", "education", "bihar", "graduation", "कन्या"},
			Status:       models.SchemeStatusActive,
		},
	}
}
