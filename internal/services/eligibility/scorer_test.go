package eligibility_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/services/eligibility"
)

// mockProfile creates a test profile with sensible defaults.
func mockProfile(overrides map[string]interface{}) *models.Profile {
	dob := time.Now().AddDate(-35, 0, -1)
	income := 150000.0

	profile := &models.Profile{
		ID:           1,
		Name:         "Ramesh Kumar",
		Email:        "ramesh@example.com",
		DateOfBirth:  &dob,
		Gender:       models.GenderMale,
		AnnualIncome: &income,
		Category:     models.CategoryOBC,
		State:        "Bihar",
		Occupation:   "farmer",
		IsActive:     true,
	}

	if v, ok := overrides["age"]; ok {
		d := time.Now().AddDate(-v.(int), 0, -1)
		profile.DateOfBirth = &d
	}
	if _, ok := overrides["no_dob"]; ok {
		profile.DateOfBirth = nil
	}
	if v, ok := overrides["annual_income"]; ok {
		f := v.(float64)
		profile.AnnualIncome = &f
	}
	if _, ok := overrides["no_income"]; ok {
		profile.AnnualIncome = nil
	}
	if v, ok := overrides["gender"]; ok {
		profile.Gender = v.(models.Gender)
	}
	if v, ok := overrides["category"]; ok {
		profile.Category = v.(models.SocialCategory)
	}
	if v, ok := overrides["state"]; ok {
		profile.State = v.(string)
	}
	if v, ok := overrides["occupation"]; ok {
		profile.Occupation = v.(string)
	}
	if v, ok := overrides["is_disabled"]; ok {
		profile.IsDisabled = v.(bool)
	}

	return profile
}

func maxIncome(v float64) *float64 { return &v }

func TestEvaluate_AllCriteriaMet(t *testing.T) {
	profile := mockProfile(nil)
	rules := models.EligibilityRules{
		AgeRange:    &models.AgeRange{Min: 18, Max: 60},
		IncomeRange: &models.IncomeRange{Min: 0, Max: maxIncome(200000)},
		Occupations: []string{"farmer"},
	}

	result := eligibility.Evaluate(profile, rules)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 3, result.TotalCriteria)
	assert.Equal(t, 3, result.SatisfiedCount)
	assert.True(t, result.Eligible())
	assert.Empty(t, result.Reasons)
}

func TestEvaluate_PartialMatch(t *testing.T) {
	profile := mockProfile(map[string]interface{}{
		"annual_income": 500000.0,
	})
	rules := models.EligibilityRules{
		AgeRange:    &models.AgeRange{Min: 18, Max: 60},
		IncomeRange: &models.IncomeRange{Min: 0, Max: maxIncome(200000)},
		States:      []string{"Bihar", "Jharkhand"},
		Occupations: []string{"farmer"},
	}

	result := eligibility.Evaluate(profile, rules)

	assert.Equal(t, 75, result.Score)
	assert.Equal(t, 4, result.TotalCriteria)
	assert.Equal(t, 3, result.SatisfiedCount)
	assert.False(t, result.Eligible())
	assert.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "₹2,00,000")
}

func TestEvaluate_ZeroCriteriaScoresZero(t *testing.T) {
	result := eligibility.Evaluate(mockProfile(nil), models.EligibilityRules{})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.TotalCriteria)
	assert.False(t, result.Eligible())
	assert.NotNil(t, result.Reasons)
	assert.Empty(t, result.Reasons)
}

func TestEvaluate_MissingFieldIsUnsatisfiedNotError(t *testing.T) {
	profile := mockProfile(map[string]interface{}{"no_dob": true})
	rules := models.EligibilityRules{
		AgeRange:    &models.AgeRange{Min: 18, Max: 40},
		Occupations: []string{"farmer"},
	}

	result := eligibility.Evaluate(profile, rules)

	assert.Equal(t, 50, result.Score)
	assert.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "date of birth is not on file")
}

func TestEvaluate_MissingIncome(t *testing.T) {
	profile := mockProfile(map[string]interface{}{"no_income": true})
	rules := models.EligibilityRules{
		IncomeRange: &models.IncomeRange{Min: 0, Max: maxIncome(100000)},
	}

	result := eligibility.Evaluate(profile, rules)

	assert.Equal(t, 0, result.Score)
	assert.Contains(t, result.Reasons[0], "annual income is not on file")
}

func TestEvaluate_StateListWithAllIsUnrestricted(t *testing.T) {
	profile := mockProfile(map[string]interface{}{"state": ""})
	rules := models.EligibilityRules{
		States: []string{"all"},
	}

	result := eligibility.Evaluate(profile, rules)

	// "all" restricts nothing but still counts as a criterion
	assert.Equal(t, 1, result.TotalCriteria)
	assert.Equal(t, 100, result.Score)
}

func TestEvaluate_StateMatchIsCaseInsensitive(t *testing.T) {
	profile := mockProfile(map[string]interface{}{"state": "bihar"})
	rules := models.EligibilityRules{
		States: []string{"Bihar"},
	}

	result := eligibility.Evaluate(profile, rules)

	assert.Equal(t, 100, result.Score)
}

func TestEvaluate_WomenOnlyScheme(t *testing.T) {
	male := mockProfile(nil)
	female := mockProfile(map[string]interface{}{"gender": models.GenderFemale})
	rules := models.EligibilityRules{IsForWomen: true}

	assert.Equal(t, 0, eligibility.Evaluate(male, rules).Score)
	assert.Equal(t, 100, eligibility.Evaluate(female, rules).Score)
}

func TestEvaluate_WomenOnlyWithoutGenderOnFile(t *testing.T) {
	profile := mockProfile(map[string]interface{}{"gender": models.Gender("")})
	rules := models.EligibilityRules{IsForWomen: true}

	result := eligibility.Evaluate(profile, rules)

	assert.Equal(t, 0, result.Score)
	assert.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "gender is not on file")
}

func TestEvaluate_SeniorCitizenFlag(t *testing.T) {
	young := mockProfile(map[string]interface{}{"age": 45})
	senior := mockProfile(map[string]interface{}{"age": 62})
	rules := models.EligibilityRules{IsForSeniorCitizen: true}

	assert.Equal(t, 0, eligibility.Evaluate(young, rules).Score)
	assert.Equal(t, 100, eligibility.Evaluate(senior, rules).Score)
}

func TestEvaluate_AgeBoundariesInclusive(t *testing.T) {
	rules := models.EligibilityRules{AgeRange: &models.AgeRange{Min: 18, Max: 40}}

	atMin := mockProfile(map[string]interface{}{"age": 18})
	atMax := mockProfile(map[string]interface{}{"age": 40})
	below := mockProfile(map[string]interface{}{"age": 17})
	above := mockProfile(map[string]interface{}{"age": 41})

	assert.Equal(t, 100, eligibility.Evaluate(atMin, rules).Score)
	assert.Equal(t, 100, eligibility.Evaluate(atMax, rules).Score)
	assert.Equal(t, 0, eligibility.Evaluate(below, rules).Score)
	assert.Equal(t, 0, eligibility.Evaluate(above, rules).Score)
}

func TestEvaluate_CriterionOrderIsFixed(t *testing.T) {
	profile := mockProfile(nil)
	rules := models.EligibilityRules{
		AgeRange:    &models.AgeRange{Min: 18, Max: 60},
		IncomeRange: &models.IncomeRange{Min: 0, Max: maxIncome(200000)},
		States:      []string{"Bihar"},
		Occupations: []string{"farmer"},
	}

	result := eligibility.Evaluate(profile, rules)

	order := make([]models.Criterion, len(result.Criteria))
	for i, c := range result.Criteria {
		order[i] = c.Criterion
	}
	assert.Equal(t, []models.Criterion{
		models.CriterionAge,
		models.CriterionIncome,
		models.CriterionState,
		models.CriterionOccupation,
	}, order)
}

func TestEvaluate_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("reasons count always equals unsatisfied criteria", prop.ForAll(
		func(age int, income float64, womenOnly, disabledOnly bool) bool {
			profile := mockProfile(map[string]interface{}{
				"age":           age,
				"annual_income": income,
			})
			rules := models.EligibilityRules{
				AgeRange:      &models.AgeRange{Min: 18, Max: 60},
				IncomeRange:   &models.IncomeRange{Min: 0, Max: maxIncome(200000)},
				IsForWomen:    womenOnly,
				IsForDisabled: disabledOnly,
			}

			result := eligibility.Evaluate(profile, rules)
			return len(result.Reasons) == result.TotalCriteria-result.SatisfiedCount
		},
		gen.IntRange(0, 100),
		gen.Float64Range(0, 1e7),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("score is always between 0 and 100", prop.ForAll(
		func(age int, income float64) bool {
			profile := mockProfile(map[string]interface{}{
				"age":           age,
				"annual_income": income,
			})
			rules := models.EligibilityRules{
				AgeRange:    &models.AgeRange{Min: 21, Max: 45},
				IncomeRange: &models.IncomeRange{Min: 10000, Max: maxIncome(500000)},
				Occupations: []string{"farmer", "labourer"},
			}

			score := eligibility.Evaluate(profile, rules).Score
			return score >= 0 && score <= 100
		},
		gen.IntRange(0, 120),
		gen.Float64Range(0, 1e8),
	))

	properties.Property("satisfying one more criterion never lowers the score", prop.ForAll(
		func(age int, income float64) bool {
			rules := models.EligibilityRules{
				AgeRange:    &models.AgeRange{Min: 18, Max: 60},
				IncomeRange: &models.IncomeRange{Min: 0, Max: maxIncome(200000)},
				Occupations: []string{"farmer"},
			}

			mismatched := mockProfile(map[string]interface{}{
				"age":           age,
				"annual_income": income,
				"occupation":    "clerk",
			})
			matched := mockProfile(map[string]interface{}{
				"age":           age,
				"annual_income": income,
				"occupation":    "farmer",
			})

			before := eligibility.Evaluate(mismatched, rules)
			after := eligibility.Evaluate(matched, rules)
			return after.SatisfiedCount == before.SatisfiedCount+1 &&
				after.Score >= before.Score
		},
		gen.IntRange(0, 120),
		gen.Float64Range(0, 1e8),
	))

	properties.Property("evaluation is deterministic", prop.ForAll(
		func(age int, income float64) bool {
			profile := mockProfile(map[string]interface{}{
				"age":           age,
				"annual_income": income,
			})
			rules := models.EligibilityRules{
				AgeRange:    &models.AgeRange{Min: 18, Max: 60},
				IncomeRange: &models.IncomeRange{Min: 0, Max: maxIncome(250000)},
			}

			first := eligibility.Evaluate(profile, rules)
			second := eligibility.Evaluate(profile, rules)
			return first.Score == second.Score && first.SatisfiedCount == second.SatisfiedCount
		},
		gen.IntRange(0, 120),
		gen.Float64Range(0, 1e8),
	))

	properties.TestingRun(t)
}
