// Package recommend implements the scheme finder: coarse filtering of a
// scheme collection for a citizen followed by a popularity-heuristic ranking.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/utils"
)

// SortOrder selects the ranking heuristic.
type SortOrder string

const (
	SortTrending SortOrder = "trending"
	SortPopular  SortOrder = "popular"
)

// Filters narrows the candidate set before ranking. Empty fields are ignored.
type Filters struct {
	Category string
	Level    models.SchemeLevel
	Limit    int
}

// SchemeSource loads active schemes, optionally narrowed by conjunctive
// equality filters. Implemented by database.SchemeRepository.
type SchemeSource interface {
	ListActive(ctx context.Context, category string, level models.SchemeLevel) ([]*models.Scheme, error)
}

// Service finds and ranks schemes for a citizen.
type Service struct {
	source SchemeSource
	logger *zap.Logger
}

// NewService creates a recommender backed by the given scheme source.
func NewService(source SchemeSource) *Service {
	return &Service{source: source, logger: utils.GetLogger()}
}

// FindForProfile returns active schemes a citizen's state allows, ranked by
// the requested heuristic and capped at f.Limit.
func (s *Service) FindForProfile(ctx context.Context, profile *models.Profile, f Filters, order SortOrder) ([]*models.Scheme, error) {
	schemes, err := s.source.ListActive(ctx, f.Category, f.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to load schemes: %w", err)
	}

	state := ""
	if profile != nil {
		state = profile.State
	}

	matched := FilterByState(schemes, state)
	Rank(matched, order)

	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}

	s.logger.Debug("recommendation computed",
		zap.Int("loaded", len(schemes)),
		zap.Int("returned", len(matched)),
		zap.String("order", string(order)),
	)

	return matched, nil
}

// FilterByState keeps schemes whose state rules admit the given state. A
// scheme qualifies when its state list is empty or contains "all" (no
// restriction), when the list contains the state, or when the scheme is a
// central-level scheme. Central schemes bypass state filtering entirely.
func FilterByState(schemes []*models.Scheme, state string) []*models.Scheme {
	matched := make([]*models.Scheme, 0, len(schemes))
	for _, scheme := range schemes {
		if StateAllows(scheme, state) {
			matched = append(matched, scheme)
		}
	}
	return matched
}

// StateAllows reports whether a single scheme's state rules admit the state.
func StateAllows(scheme *models.Scheme, state string) bool {
	if scheme.Level == models.SchemeLevelCentral {
		return true
	}
	if scheme.Eligibility.StatesUnrestricted() {
		return true
	}
	for _, s := range scheme.Eligibility.States {
		if strings.EqualFold(s, state) {
			return true
		}
	}
	return false
}

// Rank orders schemes in place by the requested heuristic.
//
// Trending: descending trending score, ties broken by descending popularity.
// Popular: descending popularity score, ties broken by descending rating.
func Rank(schemes []*models.Scheme, order SortOrder) {
	switch order {
	case SortPopular:
		sort.SliceStable(schemes, func(i, j int) bool {
			if schemes[i].PopularityScore != schemes[j].PopularityScore {
				return schemes[i].PopularityScore > schemes[j].PopularityScore
			}
			return schemes[i].AverageRating > schemes[j].AverageRating
		})
	default: // trending
		sort.SliceStable(schemes, func(i, j int) bool {
			if schemes[i].TrendingScore != schemes[j].TrendingScore {
				return schemes[i].TrendingScore > schemes[j].TrendingScore
			}
			return schemes[i].PopularityScore > schemes[j].PopularityScore
		})
	}
}
