// Package models defines the data structures for the Saral Seva backend.
package models

import (
	"math"
	"strings"
	"time"
)

// SchemeLevel represents the level of government that owns a scheme.
type SchemeLevel string

const (
	SchemeLevelCentral  SchemeLevel = "central"
	SchemeLevelState    SchemeLevel = "state"
	SchemeLevelDistrict SchemeLevel = "district"
)

// IsValid checks if the scheme level is one of the known values.
func (l SchemeLevel) IsValid() bool {
	switch l {
	case SchemeLevelCentral, SchemeLevelState, SchemeLevelDistrict:
		return true
	}
	return false
}

// SchemeStatus represents the lifecycle status of a scheme.
type SchemeStatus string

const (
	SchemeStatusActive   SchemeStatus = "active"
	SchemeStatusInactive SchemeStatus = "inactive"
	SchemeStatusUpcoming SchemeStatus = "upcoming"
	SchemeStatusExpired  SchemeStatus = "expired"
)

// BenefitFrequency represents how often a scheme benefit is paid out.
type BenefitFrequency string

const (
	BenefitOneTime BenefitFrequency = "one_time"
	BenefitMonthly BenefitFrequency = "monthly"
	BenefitYearly  BenefitFrequency = "yearly"
)

// AgeRange is an inclusive age criterion.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IncomeRange is an inclusive annual-income criterion. A nil Max means
// unbounded above.
type IncomeRange struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max,omitempty"`
}

// EligibilityRules is the sparse, declarative rule set attached to a scheme.
// Each present field constitutes one criterion; absent fields are skipped
// entirely and do not count toward the eligibility score denominator.
// Boolean flags set to false impose no constraint.
type EligibilityRules struct {
	AgeRange           *AgeRange        `json:"age_range,omitempty"`
	IncomeRange        *IncomeRange     `json:"income_range,omitempty"`
	Categories         []SocialCategory `json:"categories,omitempty"`
	States             []string         `json:"states,omitempty"`
	Occupations        []string         `json:"occupations,omitempty"`
	EducationLevels    []string         `json:"education_levels,omitempty"`
	IsForWomen         bool             `json:"is_for_women,omitempty"`
	IsForDisabled      bool             `json:"is_for_disabled,omitempty"`
	IsForSeniorCitizen bool             `json:"is_for_senior_citizen,omitempty"`
	IsForMinority      bool             `json:"is_for_minority,omitempty"`
}

// CriteriaCount returns the number of present criteria.
func (r *EligibilityRules) CriteriaCount() int {
	count := 0
	if r.AgeRange != nil {
		count++
	}
	if r.IncomeRange != nil {
		count++
	}
	if len(r.Categories) > 0 {
		count++
	}
	if len(r.States) > 0 {
		count++
	}
	if len(r.Occupations) > 0 {
		count++
	}
	if len(r.EducationLevels) > 0 {
		count++
	}
	if r.IsForWomen {
		count++
	}
	if r.IsForDisabled {
		count++
	}
	if r.IsForSeniorCitizen {
		count++
	}
	if r.IsForMinority {
		count++
	}
	return count
}

// IsEmpty reports whether no criteria are present.
func (r *EligibilityRules) IsEmpty() bool {
	return r.CriteriaCount() == 0
}

// StatesUnrestricted reports whether the rule set imposes no state
// restriction: either no state list, or a list containing "all".
func (r *EligibilityRules) StatesUnrestricted() bool {
	if len(r.States) == 0 {
		return true
	}
	for _, s := range r.States {
		if strings.EqualFold(s, "all") {
			return true
		}
	}
	return false
}

// Benefit describes what a scheme pays out.
type Benefit struct {
	Type      string           `json:"type,omitempty"`
	AmountMin float64          `json:"amount_min,omitempty"`
	AmountMax float64          `json:"amount_max,omitempty"`
	Frequency BenefitFrequency `json:"frequency,omitempty"`
}

// ApplicationProcess describes how a citizen applies for a scheme.
type ApplicationProcess struct {
	Online  bool     `json:"online"`
	Offline bool     `json:"offline"`
	Steps   []string `json:"steps,omitempty"`
	Fee     float64  `json:"fee"`
}

// Caps applied to raw counters before popularity scaling.
const (
	popularityViewCap        = 10000
	popularityApplicationCap = 1000
	popularityBookmarkCap    = 5000
	trendingViewCap          = 1000
	trendingApplicationCap   = 100
)

// Scheme represents a government scheme.
type Scheme struct {
	ID               int64              `json:"id" db:"id"`
	Name             string             `json:"name" db:"name"`
	Slug             string             `json:"slug" db:"slug"`
	ShortDescription string             `json:"short_description" db:"short_description"`
	Description      string             `json:"description" db:"description"`
	Category         string             `json:"category" db:"category"`
	SubCategory      string             `json:"sub_category,omitempty" db:"sub_category"`
	Level            SchemeLevel        `json:"level" db:"level"`
	Department       string             `json:"department" db:"department"`
	Eligibility      EligibilityRules   `json:"eligibility" db:"eligibility"`
	Benefit          Benefit            `json:"benefit" db:"benefit"`
	Application      ApplicationProcess `json:"application" db:"application"`
	RequiredDocs     []string           `json:"required_documents,omitempty" db:"required_documents"`
	Keywords         []string           `json:"keywords,omitempty" db:"keywords"`
	Status           SchemeStatus       `json:"status" db:"status"`
	ViewCount        int64              `json:"view_count" db:"view_count"`
	ApplicationCount int64              `json:"application_count" db:"application_count"`
	BookmarkCount    int64              `json:"bookmark_count" db:"bookmark_count"`
	WeeklyViews      int64              `json:"weekly_views" db:"weekly_views"`
	WeeklyApps       int64              `json:"weekly_applications" db:"weekly_applications"`
	PopularityScore  int                `json:"popularity_score" db:"popularity_score"`
	TrendingScore    int                `json:"trending_score" db:"trending_score"`
	AverageRating    float64            `json:"average_rating" db:"average_rating"`
	CreatedAt        time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" db:"updated_at"`
}

// ComputePopularityScore is the canonical popularity formula: a 30/40/30
// weighting of views, applications and bookmarks, each capped before scaling.
// The result is an integer 0..100. The storage layer applies the same formula
// in SQL when it bumps a counter, so the stored score never drifts from the
// counters.
func ComputePopularityScore(views, applications, bookmarks int64) int {
	v := math.Min(float64(views), popularityViewCap) / popularityViewCap
	a := math.Min(float64(applications), popularityApplicationCap) / popularityApplicationCap
	b := math.Min(float64(bookmarks), popularityBookmarkCap) / popularityBookmarkCap
	return int(math.Round(30*v + 40*a + 30*b))
}

// ComputeTrendingScore weights the weekly counters 60/40, each capped.
func ComputeTrendingScore(weeklyViews, weeklyApplications int64) int {
	v := math.Min(float64(weeklyViews), trendingViewCap) / trendingViewCap
	a := math.Min(float64(weeklyApplications), trendingApplicationCap) / trendingApplicationCap
	return int(math.Round(60*v + 40*a))
}

// RecomputeScores refreshes the derived scores from the current counters.
func (s *Scheme) RecomputeScores() {
	s.PopularityScore = ComputePopularityScore(s.ViewCount, s.ApplicationCount, s.BookmarkCount)
	s.TrendingScore = ComputeTrendingScore(s.WeeklyViews, s.WeeklyApps)
}

// SchemeCreate represents data needed to create a new scheme. The slug is
// derived from the name and is immutable once set.
type SchemeCreate struct {
	Name             string             `json:"name" validate:"required,min=1,max=200"`
	ShortDescription string             `json:"short_description"`
	Description      string             `json:"description" validate:"required"`
	Category         string             `json:"category" validate:"required"`
	SubCategory      string             `json:"sub_category,omitempty"`
	Level            SchemeLevel        `json:"level" validate:"required"`
	Department       string             `json:"department"`
	Eligibility      EligibilityRules   `json:"eligibility"`
	Benefit          Benefit            `json:"benefit"`
	Application      ApplicationProcess `json:"application"`
	RequiredDocs     []string           `json:"required_documents,omitempty"`
	Keywords         []string           `json:"keywords,omitempty"`
	Status           SchemeStatus       `json:"status,omitempty"`
}

// SchemeUpdate carries the mutable scheme fields. The slug cannot change.
type SchemeUpdate struct {
	Name             *string             `json:"name,omitempty"`
	ShortDescription *string             `json:"short_description,omitempty"`
	Description      *string             `json:"description,omitempty"`
	Category         *string             `json:"category,omitempty"`
	SubCategory      *string             `json:"sub_category,omitempty"`
	Level            *SchemeLevel        `json:"level,omitempty"`
	Department       *string             `json:"department,omitempty"`
	Eligibility      *EligibilityRules   `json:"eligibility,omitempty"`
	Benefit          *Benefit            `json:"benefit,omitempty"`
	Application      *ApplicationProcess `json:"application,omitempty"`
	RequiredDocs     []string            `json:"required_documents,omitempty"`
	Keywords         []string            `json:"keywords,omitempty"`
	Status           *SchemeStatus       `json:"status,omitempty"`
}

// SchemeSummary is a lightweight view for list responses.
type SchemeSummary struct {
	ID               int64        `json:"id"`
	Name             string       `json:"name"`
	Slug             string       `json:"slug"`
	ShortDescription string       `json:"short_description"`
	Category         string       `json:"category"`
	Level            SchemeLevel  `json:"level"`
	Status           SchemeStatus `json:"status"`
	PopularityScore  int          `json:"popularity_score"`
	TrendingScore    int          `json:"trending_score"`
}

// ToSummary converts a Scheme to SchemeSummary.
func (s *Scheme) ToSummary() SchemeSummary {
	return SchemeSummary{
		ID:               s.ID,
		Name:             s.Name,
		Slug:             s.Slug,
		ShortDescription: s.ShortDescription,
		Category:         s.Category,
		Level:            s.Level,
		Status:           s.Status,
		PopularityScore:  s.PopularityScore,
		TrendingScore:    s.TrendingScore,
	}
}
