// Package models defines the data structures for the Saral Seva backend.
package models

// Criterion identifies one independently-evaluated predicate within a rule
// set. The values double as template keys in the answer composer.
type Criterion string

const (
	CriterionAge           Criterion = "age"
	CriterionIncome        Criterion = "income"
	CriterionCategory      Criterion = "category"
	CriterionState         Criterion = "state"
	CriterionOccupation    Criterion = "occupation"
	CriterionEducation     Criterion = "education"
	CriterionWomen         Criterion = "women"
	CriterionDisability    Criterion = "disability"
	CriterionSeniorCitizen Criterion = "senior_citizen"
	CriterionMinority      Criterion = "minority"
)

// CriterionResult is the outcome of evaluating one present criterion.
// Reason is empty when the criterion is satisfied.
type CriterionResult struct {
	Criterion Criterion `json:"criterion"`
	Satisfied bool      `json:"satisfied"`
	Reason    string    `json:"reason,omitempty"`
}

// MatchResult is the ephemeral outcome of scoring a profile against a rule
// set. It is computed fresh per request and never persisted.
type MatchResult struct {
	Score          int               `json:"score"`
	SatisfiedCount int               `json:"satisfied_count"`
	TotalCriteria  int               `json:"total_criteria"`
	Criteria       []CriterionResult `json:"criteria,omitempty"`
	Reasons        []string          `json:"reasons"`
}

// Eligible reports whether every present criterion was satisfied. A rule set
// with zero criteria is not eligible; it scores 0, not 100.
func (m *MatchResult) Eligible() bool {
	return m.TotalCriteria > 0 && m.SatisfiedCount == m.TotalCriteria
}

// QueryCandidate pairs a scheme with the integer relevance tally accumulated
// from keyword matches against a free-text question. Ephemeral; used only to
// rank and select the top candidates for a single request.
type QueryCandidate struct {
	Scheme     *Scheme `json:"scheme"`
	Tally      int     `json:"tally"`
	Similarity float64 `json:"similarity"`
}
