package qa_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/services/qa"
)

func benefitScheme() *models.Scheme {
	scheme := mockScheme(nil)
	scheme.Benefit = models.Benefit{
		Type:      "cash",
		AmountMin: 6000,
		AmountMax: 6000,
		Frequency: models.BenefitYearly,
	}
	return scheme
}

func candidateFor(scheme *models.Scheme) []models.QueryCandidate {
	return []models.QueryCandidate{{Scheme: scheme, Tally: 4, Similarity: 0.8}}
}

func testProfile() *models.Profile {
	dob := time.Now().AddDate(-35, 0, -1)
	income := 150000.0
	return &models.Profile{
		ID:           1,
		Name:         "Ramesh Kumar",
		DateOfBirth:  &dob,
		Gender:       models.GenderMale,
		AnnualIncome: &income,
		Category:     models.CategoryOBC,
		State:        "Bihar",
		Occupation:   "farmer",
	}
}

func TestCompose_NoCandidatesReturnsFallback(t *testing.T) {
	text, intent := qa.Compose("what is the weather", nil, nil, qa.LanguageEnglish)

	assert.Equal(t, qa.IntentGeneral, intent)
	assert.Contains(t, text, "could not find a relevant government scheme")
}

func TestCompose_NoCandidatesHindiFallback(t *testing.T) {
	text, _ := qa.Compose("कल का मौसम", nil, nil, qa.LanguageHindi)

	assert.Contains(t, text, "कोई प्रासंगिक सरकारी योजना नहीं मिली")
}

func TestCompose_EligibilityWithProfile(t *testing.T) {
	scheme := mockScheme(nil)

	text, intent := qa.Compose("am i eligible for kisan", candidateFor(scheme), testProfile(), qa.LanguageEnglish)

	assert.Equal(t, qa.IntentEligibility, intent)
	assert.Contains(t, text, scheme.Name)
	assert.Contains(t, text, "✅ Occupation")
	assert.Contains(t, text, "Congratulations")
}

func TestCompose_EligibilityUnmetListsReasons(t *testing.T) {
	scheme := mockScheme(map[string]interface{}{
		"eligibility": models.EligibilityRules{
			AgeRange:    &models.AgeRange{Min: 18, Max: 30},
			Occupations: []string{"farmer"},
		},
	})

	text, _ := qa.Compose("am i eligible for kisan", candidateFor(scheme), testProfile(), qa.LanguageEnglish)

	assert.Contains(t, text, "❌ Age requirement")
	assert.Contains(t, text, "✅ Occupation")
	assert.Contains(t, text, "do not currently meet")
	assert.Contains(t, text, "1. age must be between 18 and 30")
	assert.NotContains(t, text, "Congratulations")
}

func TestCompose_EligibilityWithoutProfileDescribesRules(t *testing.T) {
	scheme := mockScheme(map[string]interface{}{
		"eligibility": models.EligibilityRules{
			AgeRange:    &models.AgeRange{Min: 18, Max: 40},
			IncomeRange: &models.IncomeRange{Min: 0},
			Occupations: []string{"farmer"},
		},
	})

	text, _ := qa.Compose("kisan eligibility", candidateFor(scheme), nil, qa.LanguageEnglish)

	assert.Contains(t, text, "Age requirement: 18–40")
	assert.Contains(t, text, "Occupation: farmer")
	assert.NotContains(t, text, "✅")
}

func TestCompose_ApplicationIntent(t *testing.T) {
	scheme := mockScheme(nil)
	scheme.Application = models.ApplicationProcess{
		Online: true,
		Steps:  []string{"Register on the portal", "Complete eKYC"},
	}
	scheme.RequiredDocs = []string{"Aadhaar card"}

	text, intent := qa.Compose("how do i apply for kisan", candidateFor(scheme), nil, qa.LanguageEnglish)

	assert.Equal(t, qa.IntentApplication, intent)
	assert.Contains(t, text, "how to apply")
	assert.Contains(t, text, "apply **online**")
	assert.Contains(t, text, "no application fee")
	assert.Contains(t, text, "1. Register on the portal")
	assert.Contains(t, text, "- Aadhaar card")
}

func TestCompose_BenefitWithIncomeProjection(t *testing.T) {
	text, intent := qa.Compose("kisan benefit amount", candidateFor(benefitScheme()), testProfile(), qa.LanguageEnglish)

	assert.Equal(t, qa.IntentBenefit, intent)
	assert.Contains(t, text, "₹6,000")
	// 6000 / 150000 of annual income
	assert.Contains(t, text, "4.0%")
	assert.Contains(t, text, "₹6,000 per year")
}

func TestCompose_BenefitWithoutAmountStopsEarly(t *testing.T) {
	scheme := mockScheme(nil)
	scheme.Benefit = models.Benefit{Type: "savings"}

	text, _ := qa.Compose("kisan benefit", candidateFor(scheme), nil, qa.LanguageEnglish)

	assert.Contains(t, text, "benefits:")
	assert.NotContains(t, text, "₹")
}

func TestCompose_GeneralIntent(t *testing.T) {
	scheme := mockScheme(nil)
	scheme.Department = "Ministry of Agriculture and Farmers Welfare"

	text, intent := qa.Compose("tell me about kisan", candidateFor(scheme), nil, qa.LanguageEnglish)

	assert.Equal(t, qa.IntentGeneral, intent)
	assert.Contains(t, text, scheme.ShortDescription)
	assert.Contains(t, text, "Ministry of Agriculture")
	assert.Contains(t, text, "central government scheme")
}

func TestCompose_RelatedSchemesFooter(t *testing.T) {
	first := mockScheme(map[string]interface{}{"id": int64(1)})
	second := mockScheme(map[string]interface{}{"id": int64(2), "name": "Atal Pension Yojana"})
	candidates := []models.QueryCandidate{
		{Scheme: first, Tally: 4},
		{Scheme: second, Tally: 2},
	}

	text, _ := qa.Compose("tell me about kisan", candidates, nil, qa.LanguageEnglish)

	assert.Contains(t, text, "Other schemes you may find relevant")
	assert.Contains(t, text, "- Atal Pension Yojana")
}

func TestCompose_HindiEligibility(t *testing.T) {
	scheme := mockScheme(nil)

	text, intent := qa.Compose("क्या मैं किसान योजना के लिए पात्र हूं", candidateFor(scheme), testProfile(), qa.LanguageHindi)

	assert.Equal(t, qa.IntentEligibility, intent)
	assert.Contains(t, text, "पात्रता मानदंड")
	assert.Contains(t, text, "बधाई हो")
}
