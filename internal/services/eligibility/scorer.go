// Package eligibility implements the shared profile-vs-rule-set scorer.
//
// Every caller that needs to know whether a citizen qualifies for a scheme
// (the recommender, the Q&A service, the answer composer) goes through
// Evaluate, so there is exactly one source of truth for what "eligible" means.
package eligibility

import (
	"fmt"
	"math"
	"strings"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/utils"
)

// Evaluate scores a citizen profile against a scheme's eligibility rule set.
//
// Each present criterion is evaluated independently, in a fixed order: age,
// income, category, state, occupation, education, women, disability, senior
// citizen, minority. Absent criteria are skipped entirely and do not count
// toward the denominator. A profile field missing for a present criterion
// makes that criterion unsatisfied with a reason naming the missing field;
// it never raises an error.
//
// The score is round(100 * satisfied / total). A rule set with zero present
// criteria scores 0, not 100.
//
// Evaluate is pure: no I/O, no side effects, deterministic for identical
// inputs (age is derived once from the date of birth via Profile.Age).
func Evaluate(profile *models.Profile, rules models.EligibilityRules) models.MatchResult {
	var criteria []models.CriterionResult

	if rules.AgeRange != nil {
		criteria = append(criteria, checkAge(profile, rules.AgeRange))
	}
	if rules.IncomeRange != nil {
		criteria = append(criteria, checkIncome(profile, rules.IncomeRange))
	}
	if len(rules.Categories) > 0 {
		criteria = append(criteria, checkCategory(profile, rules.Categories))
	}
	if len(rules.States) > 0 {
		criteria = append(criteria, checkState(profile, &rules))
	}
	if len(rules.Occupations) > 0 {
		criteria = append(criteria, checkOccupation(profile, rules.Occupations))
	}
	if len(rules.EducationLevels) > 0 {
		criteria = append(criteria, checkEducation(profile, rules.EducationLevels))
	}
	if rules.IsForWomen {
		criteria = append(criteria, checkWomen(profile))
	}
	if rules.IsForDisabled {
		criteria = append(criteria, checkDisabled(profile))
	}
	if rules.IsForSeniorCitizen {
		criteria = append(criteria, checkSeniorCitizen(profile))
	}
	if rules.IsForMinority {
		criteria = append(criteria, checkMinority(profile))
	}

	result := models.MatchResult{
		TotalCriteria: len(criteria),
		Criteria:      criteria,
		Reasons:       []string{},
	}

	for _, c := range criteria {
		if c.Satisfied {
			result.SatisfiedCount++
		} else {
			result.Reasons = append(result.Reasons, c.Reason)
		}
	}

	if result.TotalCriteria > 0 {
		result.Score = int(math.Round(100 * float64(result.SatisfiedCount) / float64(result.TotalCriteria)))
	}

	return result
}

func checkAge(p *models.Profile, r *models.AgeRange) models.CriterionResult {
	age, ok := p.Age()
	if !ok {
		return unmet(models.CriterionAge, "date of birth is not on file")
	}
	if age < r.Min || age > r.Max {
		return unmet(models.CriterionAge,
			fmt.Sprintf("age must be between %d and %d years (applicant is %d)", r.Min, r.Max, age))
	}
	return met(models.CriterionAge)
}

func checkIncome(p *models.Profile, r *models.IncomeRange) models.CriterionResult {
	if p.AnnualIncome == nil {
		return unmet(models.CriterionIncome, "annual income is not on file")
	}

	income := *p.AnnualIncome
	if income < r.Min {
		return unmet(models.CriterionIncome,
			fmt.Sprintf("annual income must be at least ₹%s", utils.FormatINR(r.Min)))
	}
	if r.Max != nil && income > *r.Max {
		return unmet(models.CriterionIncome,
			fmt.Sprintf("annual income must not exceed ₹%s", utils.FormatINR(*r.Max)))
	}
	return met(models.CriterionIncome)
}

func checkCategory(p *models.Profile, categories []models.SocialCategory) models.CriterionResult {
	if p.Category == "" {
		return unmet(models.CriterionCategory, "social category is not on file")
	}
	for _, c := range categories {
		if c == p.Category {
			return met(models.CriterionCategory)
		}
	}
	return unmet(models.CriterionCategory,
		fmt.Sprintf("social category must be one of %s", joinCategories(categories)))
}

func checkState(p *models.Profile, rules *models.EligibilityRules) models.CriterionResult {
	// A list containing "all" restricts nothing but still counts as a
	// present criterion.
	if rules.StatesUnrestricted() {
		return met(models.CriterionState)
	}
	if p.State == "" {
		return unmet(models.CriterionState, "state of residence is not on file")
	}
	for _, s := range rules.States {
		if strings.EqualFold(s, p.State) {
			return met(models.CriterionState)
		}
	}
	return unmet(models.CriterionState,
		fmt.Sprintf("scheme is limited to residents of %s", strings.Join(rules.States, ", ")))
}

func checkOccupation(p *models.Profile, occupations []string) models.CriterionResult {
	if p.Occupation == "" {
		return unmet(models.CriterionOccupation, "occupation is not on file")
	}
	for _, o := range occupations {
		if strings.EqualFold(o, p.Occupation) {
			return met(models.CriterionOccupation)
		}
	}
	return unmet(models.CriterionOccupation,
		fmt.Sprintf("occupation must be one of %s", strings.Join(occupations, ", ")))
}

func checkEducation(p *models.Profile, levels []string) models.CriterionResult {
	if p.EducationLevel == "" {
		return unmet(models.CriterionEducation, "education level is not on file")
	}
	for _, l := range levels {
		if strings.EqualFold(l, p.EducationLevel) {
			return met(models.CriterionEducation)
		}
	}
	return unmet(models.CriterionEducation,
		fmt.Sprintf("education level must be one of %s", strings.Join(levels, ", ")))
}

func checkWomen(p *models.Profile) models.CriterionResult {
	if p.Gender == "" {
		return unmet(models.CriterionWomen, "gender is not on file")
	}
	if p.Gender != models.GenderFemale {
		return unmet(models.CriterionWomen, "scheme is restricted to women applicants")
	}
	return met(models.CriterionWomen)
}

func checkDisabled(p *models.Profile) models.CriterionResult {
	if !p.IsDisabled {
		return unmet(models.CriterionDisability, "scheme is restricted to persons with disabilities")
	}
	return met(models.CriterionDisability)
}

func checkSeniorCitizen(p *models.Profile) models.CriterionResult {
	age, ok := p.Age()
	if !ok {
		return unmet(models.CriterionSeniorCitizen, "date of birth is not on file")
	}
	if age < models.SeniorCitizenAge {
		return unmet(models.CriterionSeniorCitizen,
			fmt.Sprintf("scheme is restricted to senior citizens (age %d and above)", models.SeniorCitizenAge))
	}
	return met(models.CriterionSeniorCitizen)
}

func checkMinority(p *models.Profile) models.CriterionResult {
	if !p.IsMinority {
		return unmet(models.CriterionMinority, "scheme is restricted to minority-community applicants")
	}
	return met(models.CriterionMinority)
}

func met(c models.Criterion) models.CriterionResult {
	return models.CriterionResult{Criterion: c, Satisfied: true}
}

func unmet(c models.Criterion, reason string) models.CriterionResult {
	return models.CriterionResult{Criterion: c, Satisfied: false, Reason: reason}
}

func joinCategories(categories []models.SocialCategory) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
