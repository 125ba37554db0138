// Package qa implements the keyword Q&A pipeline: a relevance matcher that
// ranks schemes against a free-text question and a bilingual answer composer.
//
// Matching is deliberately substring/keyword based: no embeddings, no
// tokenization beyond case-folding. It reproduces the portal's original
// behaviour, which is cheap and predictable for the 50-scheme working sets
// it runs over.
package qa

import (
	"sort"
	"strings"

	"saral-seva-backend/internal/models"
)

// TopN is the maximum number of ranked candidates returned per question.
const TopN = 5

// Relevance tally weights.
const (
	nameWeight        = 3
	descriptionWeight = 2
	categoryWeight    = 2
	keywordWeight     = 1
	eligibilityBonus  = 1
)

// eligibilityTerms trigger the bonus point for schemes that actually carry an
// eligibility rule set.
var eligibilityTerms = []string{"eligible", "eligibility", "qualify"}

// MatchQuery ranks schemes by keyword relevance against a free-text question
// and returns the top candidates.
//
// Per scheme the integer tally accumulates: +3 when the scheme name and the
// lowercased question contain one another (either direction), +2 for the
// description, +2 for the category, +1 when any keyword overlaps (either
// direction), and +1 more when the question asks about eligibility and the
// scheme has a non-empty rule set. Zero-tally schemes are excluded.
//
// The sort is stable: schemes with equal tallies keep their input order.
func MatchQuery(question string, schemes []*models.Scheme) []models.QueryCandidate {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return nil
	}

	asksEligibility := containsAny(q, eligibilityTerms)

	var candidates []models.QueryCandidate
	for _, scheme := range schemes {
		tally := tallyFor(q, scheme, asksEligibility)
		if tally == 0 {
			continue
		}
		candidates = append(candidates, models.QueryCandidate{
			Scheme:     scheme,
			Tally:      tally,
			Similarity: similarity(tally),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Tally > candidates[j].Tally
	})

	if len(candidates) > TopN {
		candidates = candidates[:TopN]
	}
	return candidates
}

func tallyFor(q string, scheme *models.Scheme, asksEligibility bool) int {
	tally := 0

	if overlaps(q, scheme.Name) {
		tally += nameWeight
	}
	if overlaps(q, scheme.Description) || overlaps(q, scheme.ShortDescription) {
		tally += descriptionWeight
	}
	if overlaps(q, scheme.Category) {
		tally += categoryWeight
	}

	for _, kw := range scheme.Keywords {
		if overlaps(q, kw) {
			tally += keywordWeight
			break
		}
	}

	if asksEligibility && !scheme.Eligibility.IsEmpty() {
		tally += eligibilityBonus
	}

	return tally
}

// overlaps reports substring containment in either direction after
// case-folding. Empty fields never match.
func overlaps(q, field string) bool {
	f := strings.ToLower(strings.TrimSpace(field))
	if f == "" {
		return false
	}
	return strings.Contains(q, f) || strings.Contains(f, q)
}

// similarity normalizes a tally to 0..1 for display.
func similarity(tally int) float64 {
	s := float64(tally) / 5
	if s > 1 {
		return 1
	}
	return s
}

func containsAny(q string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}
