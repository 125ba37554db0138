package qa_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/services/qa"
)

func mockScheme(overrides map[string]interface{}) *models.Scheme {
	scheme := &models.Scheme{
		ID:               1,
		Name:             "PM-KISAN Samman Nidhi",
		Slug:             "pm-kisan-samman-nidhi",
		ShortDescription: "Income support for landholding farmer families",
		Description:      "Income support of ₹6,000 per year for landholding farmer families, paid in three installments.",
		Category:         "agriculture",
		Level:            models.SchemeLevelCentral,
		Keywords:         []string{"kisan", "farmer", "income support"},
		Status:           models.SchemeStatusActive,
		Eligibility: models.EligibilityRules{
			Occupations: []string{"farmer"},
		},
	}

	if v, ok := overrides["id"]; ok {
		scheme.ID = v.(int64)
	}
	if v, ok := overrides["name"]; ok {
		scheme.Name = v.(string)
	}
	if v, ok := overrides["description"]; ok {
		scheme.Description = v.(string)
		scheme.ShortDescription = v.(string)
	}
	if v, ok := overrides["category"]; ok {
		scheme.Category = v.(string)
	}
	if v, ok := overrides["keywords"]; ok {
		scheme.Keywords = v.([]string)
	}
	if v, ok := overrides["eligibility"]; ok {
		scheme.Eligibility = v.(models.EligibilityRules)
	}

	return scheme
}

func TestMatchQuery_KeywordTally(t *testing.T) {
	schemes := []*models.Scheme{mockScheme(nil)}

	candidates := qa.MatchQuery("Am I eligible for kisan schemes?", schemes)

	assert.Len(t, candidates, 1)
	// keyword "kisan" (+1) plus the eligibility bonus (+1)
	assert.Equal(t, 2, candidates[0].Tally)
	assert.InDelta(t, 0.4, candidates[0].Similarity, 1e-9)
}

func TestMatchQuery_NameMatchOutweighsKeyword(t *testing.T) {
	byName := mockScheme(map[string]interface{}{
		"id":       int64(1),
		"name":     "Atal Pension Yojana",
		"category": "pension",
		"keywords": []string{"pension"},
	})
	byKeyword := mockScheme(map[string]interface{}{
		"id":          int64(2),
		"name":        "National Old Age Pension Scheme",
		"category":    "pension",
		"keywords":    []string{"atal"},
		"description": "Monthly pension for senior citizens",
	})

	candidates := qa.MatchQuery("how do I apply for atal pension yojana", []*models.Scheme{byKeyword, byName})

	assert.Len(t, candidates, 2)
	assert.Equal(t, int64(1), candidates[0].Scheme.ID)
}

func TestMatchQuery_NoOverlapReturnsEmpty(t *testing.T) {
	schemes := []*models.Scheme{mockScheme(nil)}

	candidates := qa.MatchQuery("weather forecast for mumbai tomorrow", schemes)

	assert.Empty(t, candidates)
}

func TestMatchQuery_EmptyQuestionReturnsNil(t *testing.T) {
	schemes := []*models.Scheme{mockScheme(nil)}

	assert.Nil(t, qa.MatchQuery("", schemes))
	assert.Nil(t, qa.MatchQuery("   ", schemes))
}

func TestMatchQuery_CapsAtTopFive(t *testing.T) {
	var schemes []*models.Scheme
	for i := 0; i < 8; i++ {
		schemes = append(schemes, mockScheme(map[string]interface{}{
			"id":   int64(i + 1),
			"name": fmt.Sprintf("Kisan Scheme %d", i+1),
		}))
	}

	candidates := qa.MatchQuery("kisan", schemes)

	assert.Len(t, candidates, qa.TopN)
}

func TestMatchQuery_StableOrderOnEqualTally(t *testing.T) {
	var schemes []*models.Scheme
	for i := 0; i < 4; i++ {
		schemes = append(schemes, mockScheme(map[string]interface{}{
			"id":          int64(i + 1),
			"name":        fmt.Sprintf("Scheme %d", i+1),
			"category":    "misc",
			"keywords":    []string{"kisan"},
			"description": "unrelated text",
			"eligibility": models.EligibilityRules{},
		}))
	}

	candidates := qa.MatchQuery("kisan", schemes)

	assert.Len(t, candidates, 4)
	for i, c := range candidates {
		assert.Equal(t, int64(i+1), c.Scheme.ID)
	}
}

func TestMatchQuery_EligibilityBonusRequiresRules(t *testing.T) {
	withRules := mockScheme(map[string]interface{}{"id": int64(1)})
	withoutRules := mockScheme(map[string]interface{}{
		"id":          int64(2),
		"eligibility": models.EligibilityRules{},
	})

	candidates := qa.MatchQuery("am i eligible for kisan support", []*models.Scheme{withoutRules, withRules})

	assert.Len(t, candidates, 2)
	assert.Equal(t, int64(1), candidates[0].Scheme.ID)
	assert.Equal(t, candidates[1].Tally+1, candidates[0].Tally)
}

func TestMatchQuery_SimilarityCapsAtOne(t *testing.T) {
	scheme := mockScheme(map[string]interface{}{
		"name":        "kisan",
		"description": "kisan",
		"category":    "kisan",
		"keywords":    []string{"kisan"},
	})

	candidates := qa.MatchQuery("kisan eligibility", []*models.Scheme{scheme})

	assert.Len(t, candidates, 1)
	assert.Equal(t, 1.0, candidates[0].Similarity)
}
