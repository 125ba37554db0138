package qa

import (
	"fmt"
	"strings"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/services/eligibility"
	"saral-seva-backend/internal/utils"
)

// Compose renders a natural-language answer for a ranked candidate list.
//
// The template branch is chosen from keyword classes in the question
// (eligibility, application, benefit, general, in that precedence) and the
// explicit language parameter selects the variant. When the candidate list is
// empty the fixed "no relevant scheme" message is returned; the top candidate
// is never indexed without this guard.
//
// Lines whose scheme data is absent are omitted rather than failing; Compose
// never panics on partial data.
func Compose(question string, candidates []models.QueryCandidate, profile *models.Profile, lang Language) (string, Intent) {
	intent := DetectIntent(question)

	if len(candidates) == 0 {
		return phrase("no_match", lang), intent
	}

	top := candidates[0].Scheme
	var b strings.Builder

	switch intent {
	case IntentEligibility:
		composeEligibility(&b, top, profile, lang)
	case IntentApplication:
		composeApplication(&b, top, lang)
	case IntentBenefit:
		composeBenefit(&b, top, profile, lang)
	default:
		composeGeneral(&b, top, lang)
	}

	if len(candidates) > 1 {
		b.WriteString("\n")
		b.WriteString(phrase("related_schemes", lang))
		b.WriteString("\n")
		for _, c := range candidates[1:] {
			fmt.Fprintf(&b, "- %s\n", c.Scheme.Name)
		}
	}

	return strings.TrimRight(b.String(), "\n"), intent
}

func composeEligibility(b *strings.Builder, scheme *models.Scheme, profile *models.Profile, lang Language) {
	b.WriteString(phrase("eligibility_intro", lang, scheme.Name))
	b.WriteString("\n")

	if profile == nil {
		describeRules(b, &scheme.Eligibility, lang)
		return
	}

	// One shared evaluation drives the check lines, the overall verdict and
	// the unmet list, so the three can never disagree.
	result := eligibility.Evaluate(profile, scheme.Eligibility)

	for _, c := range result.Criteria {
		mark := "✅"
		if !c.Satisfied {
			mark = "❌"
		}
		fmt.Fprintf(b, "%s %s\n", mark, criterionLabel(c.Criterion, lang))
	}

	if result.TotalCriteria == 0 {
		describeRules(b, &scheme.Eligibility, lang)
		return
	}

	b.WriteString("\n")
	if result.Eligible() {
		b.WriteString(phrase("congratulations", lang))
		b.WriteString("\n")
		return
	}

	b.WriteString(phrase("unmet_intro", lang))
	b.WriteString("\n")
	n := 0
	for _, c := range result.Criteria {
		if c.Satisfied {
			continue
		}
		n++
		fmt.Fprintf(b, "%d. %s\n", n, c.Reason)
	}
}

// describeRules renders the rule set as static requirement bullets when no
// profile is available to evaluate against.
func describeRules(b *strings.Builder, rules *models.EligibilityRules, lang Language) {
	if rules.AgeRange != nil {
		fmt.Fprintf(b, "- %s: %d–%d\n", criterionLabel(models.CriterionAge, lang), rules.AgeRange.Min, rules.AgeRange.Max)
	}
	if rules.IncomeRange != nil {
		if rules.IncomeRange.Max != nil {
			fmt.Fprintf(b, "- %s: ₹%s – ₹%s\n", criterionLabel(models.CriterionIncome, lang),
				utils.FormatINR(rules.IncomeRange.Min), utils.FormatINR(*rules.IncomeRange.Max))
		} else {
			fmt.Fprintf(b, "- %s: ₹%s+\n", criterionLabel(models.CriterionIncome, lang),
				utils.FormatINR(rules.IncomeRange.Min))
		}
	}
	if len(rules.Categories) > 0 {
		parts := make([]string, len(rules.Categories))
		for i, c := range rules.Categories {
			parts[i] = string(c)
		}
		fmt.Fprintf(b, "- %s: %s\n", criterionLabel(models.CriterionCategory, lang), strings.Join(parts, ", "))
	}
	if len(rules.States) > 0 {
		fmt.Fprintf(b, "- %s: %s\n", criterionLabel(models.CriterionState, lang), strings.Join(rules.States, ", "))
	}
	if len(rules.Occupations) > 0 {
		fmt.Fprintf(b, "- %s: %s\n", criterionLabel(models.CriterionOccupation, lang), strings.Join(rules.Occupations, ", "))
	}
	if len(rules.EducationLevels) > 0 {
		fmt.Fprintf(b, "- %s: %s\n", criterionLabel(models.CriterionEducation, lang), strings.Join(rules.EducationLevels, ", "))
	}
	if rules.IsForWomen {
		fmt.Fprintf(b, "- %s\n", criterionLabel(models.CriterionWomen, lang))
	}
	if rules.IsForDisabled {
		fmt.Fprintf(b, "- %s\n", criterionLabel(models.CriterionDisability, lang))
	}
	if rules.IsForSeniorCitizen {
		fmt.Fprintf(b, "- %s\n", criterionLabel(models.CriterionSeniorCitizen, lang))
	}
	if rules.IsForMinority {
		fmt.Fprintf(b, "- %s\n", criterionLabel(models.CriterionMinority, lang))
	}
}

func composeApplication(b *strings.Builder, scheme *models.Scheme, lang Language) {
	b.WriteString(phrase("application_intro", lang, scheme.Name))
	b.WriteString("\n")

	if scheme.Application.Online {
		b.WriteString(phrase("apply_online", lang))
		b.WriteString("\n")
	}
	if scheme.Application.Offline {
		b.WriteString(phrase("apply_offline", lang))
		b.WriteString("\n")
	}
	if scheme.Application.Fee > 0 {
		b.WriteString(phrase("apply_fee", lang, utils.FormatINR(scheme.Application.Fee)))
		b.WriteString("\n")
	} else {
		b.WriteString(phrase("apply_free", lang))
		b.WriteString("\n")
	}

	if len(scheme.Application.Steps) > 0 {
		b.WriteString(phrase("apply_steps", lang))
		b.WriteString("\n")
		for i, step := range scheme.Application.Steps {
			fmt.Fprintf(b, "%d. %s\n", i+1, step)
		}
	}

	if len(scheme.RequiredDocs) > 0 {
		b.WriteString(phrase("documents_intro", lang))
		b.WriteString("\n")
		for _, doc := range scheme.RequiredDocs {
			fmt.Fprintf(b, "- %s\n", doc)
		}
	}
}

func composeBenefit(b *strings.Builder, scheme *models.Scheme, profile *models.Profile, lang Language) {
	b.WriteString(phrase("benefit_intro", lang, scheme.Name))
	b.WriteString("\n")

	benefit := scheme.Benefit
	if benefit.AmountMin <= 0 {
		// No amount on record; nothing further to project.
		return
	}

	if benefit.AmountMax > benefit.AmountMin {
		b.WriteString(phrase("benefit_amount_range", lang,
			utils.FormatINR(benefit.AmountMin), utils.FormatINR(benefit.AmountMax)))
	} else {
		b.WriteString(phrase("benefit_amount", lang, utils.FormatINR(benefit.AmountMin)))
	}
	b.WriteString("\n")

	if profile != nil && profile.AnnualIncome != nil && *profile.AnnualIncome > 0 {
		share := benefit.AmountMin / *profile.AnnualIncome
		b.WriteString(phrase("benefit_income_share", lang, utils.FormatPercent(share)))
		b.WriteString("\n")
	}

	switch benefit.Frequency {
	case models.BenefitMonthly:
		b.WriteString(phrase("benefit_per_month", lang, utils.FormatINR(benefit.AmountMin)))
		b.WriteString("\n")
	case models.BenefitYearly:
		b.WriteString(phrase("benefit_per_year", lang, utils.FormatINR(benefit.AmountMin)))
		b.WriteString("\n")
	}
}

func composeGeneral(b *strings.Builder, scheme *models.Scheme, lang Language) {
	b.WriteString(phrase("general_intro", lang, scheme.Name))
	b.WriteString("\n")

	if scheme.ShortDescription != "" {
		b.WriteString(scheme.ShortDescription)
		b.WriteString("\n")
	} else if scheme.Description != "" {
		b.WriteString(scheme.Description)
		b.WriteString("\n")
	}

	if scheme.Department != "" {
		b.WriteString(phrase("general_department", lang, scheme.Department))
		b.WriteString("\n")
	}
	if scheme.Level != "" {
		b.WriteString(phrase("general_level", lang, string(scheme.Level)))
		b.WriteString("\n")
	}
}
