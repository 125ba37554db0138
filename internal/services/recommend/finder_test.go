package recommend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/services/recommend"
)

type fakeSource struct {
	schemes []*models.Scheme
	err     error
}

func (f *fakeSource) ListActive(ctx context.Context, category string, level models.SchemeLevel) ([]*models.Scheme, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schemes, nil
}

func scheme(id int64, name string, level models.SchemeLevel, states []string) *models.Scheme {
	return &models.Scheme{
		ID:     id,
		Name:   name,
		Level:  level,
		Status: models.SchemeStatusActive,
		Eligibility: models.EligibilityRules{
			States: states,
		},
	}
}

func TestStateAllows_CentralBypassesStateFilter(t *testing.T) {
	central := scheme(1, "PM-KISAN", models.SchemeLevelCentral, []string{"Punjab"})

	assert.True(t, recommend.StateAllows(central, "Bihar"))
}

func TestStateAllows_EmptyStateListAdmitsEveryone(t *testing.T) {
	open := scheme(1, "Open Scheme", models.SchemeLevelState, nil)

	assert.True(t, recommend.StateAllows(open, "Kerala"))
	assert.True(t, recommend.StateAllows(open, ""))
}

func TestStateAllows_AllEntryAdmitsEveryone(t *testing.T) {
	open := scheme(1, "Open Scheme", models.SchemeLevelState, []string{"All"})

	assert.True(t, recommend.StateAllows(open, "Kerala"))
}

func TestStateAllows_StateListRestricts(t *testing.T) {
	bihar := scheme(1, "Kanya Utthan", models.SchemeLevelState, []string{"Bihar"})

	assert.True(t, recommend.StateAllows(bihar, "Bihar"))
	assert.True(t, recommend.StateAllows(bihar, "bihar"))
	assert.False(t, recommend.StateAllows(bihar, "Kerala"))
	assert.False(t, recommend.StateAllows(bihar, ""))
}

func TestRank_TrendingWithPopularityTieBreak(t *testing.T) {
	a := scheme(1, "A", models.SchemeLevelCentral, nil)
	a.TrendingScore, a.PopularityScore = 50, 10
	b := scheme(2, "B", models.SchemeLevelCentral, nil)
	b.TrendingScore, b.PopularityScore = 50, 40
	c := scheme(3, "C", models.SchemeLevelCentral, nil)
	c.TrendingScore = 80

	schemes := []*models.Scheme{a, b, c}
	recommend.Rank(schemes, recommend.SortTrending)

	assert.Equal(t, int64(3), schemes[0].ID)
	assert.Equal(t, int64(2), schemes[1].ID)
	assert.Equal(t, int64(1), schemes[2].ID)
}

func TestRank_PopularWithRatingTieBreak(t *testing.T) {
	a := scheme(1, "A", models.SchemeLevelCentral, nil)
	a.PopularityScore, a.AverageRating = 60, 3.2
	b := scheme(2, "B", models.SchemeLevelCentral, nil)
	b.PopularityScore, b.AverageRating = 60, 4.8

	schemes := []*models.Scheme{a, b}
	recommend.Rank(schemes, recommend.SortPopular)

	assert.Equal(t, int64(2), schemes[0].ID)
}

func TestFindForProfile_FiltersByStateAndCaps(t *testing.T) {
	source := &fakeSource{schemes: []*models.Scheme{
		scheme(1, "Central", models.SchemeLevelCentral, nil),
		scheme(2, "Bihar Only", models.SchemeLevelState, []string{"Bihar"}),
		scheme(3, "Kerala Only", models.SchemeLevelState, []string{"Kerala"}),
		scheme(4, "Open", models.SchemeLevelState, nil),
	}}
	service := recommend.NewService(source)

	profile := &models.Profile{State: "Bihar"}
	got, err := service.FindForProfile(context.Background(), profile, recommend.Filters{Limit: 2}, recommend.SortTrending)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, s := range got {
		assert.NotEqual(t, int64(3), s.ID)
	}
}

func TestFindForProfile_NilProfileSeesUnrestrictedAndCentral(t *testing.T) {
	source := &fakeSource{schemes: []*models.Scheme{
		scheme(1, "Central", models.SchemeLevelCentral, []string{"Punjab"}),
		scheme(2, "Bihar Only", models.SchemeLevelState, []string{"Bihar"}),
		scheme(3, "Open", models.SchemeLevelState, nil),
	}}
	service := recommend.NewService(source)

	got, err := service.FindForProfile(context.Background(), nil, recommend.Filters{}, recommend.SortPopular)

	require.NoError(t, err)
	require.Len(t, got, 2)
	ids := []int64{got[0].ID, got[1].ID}
	assert.ElementsMatch(t, []int64{1, 3}, ids)
}

func TestFindForProfile_SourceErrorPropagates(t *testing.T) {
	service := recommend.NewService(&fakeSource{err: errors.New("db down")})

	_, err := service.FindForProfile(context.Background(), nil, recommend.Filters{}, recommend.SortTrending)

	assert.Error(t, err)
}
