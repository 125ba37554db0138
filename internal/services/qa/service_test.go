package qa_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/services/qa"
)

// fakeSource is an in-memory SchemeSource.
type fakeSource struct {
	schemes []*models.Scheme
	err     error
	calls   int
}

func (f *fakeSource) ListActive(ctx context.Context, category string, level models.SchemeLevel) ([]*models.Scheme, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.schemes, nil
}

func newTestService(schemes []*models.Scheme) (*qa.Service, *fakeSource) {
	source := &fakeSource{schemes: schemes}
	cache := qa.NewSchemeCache(source, time.Minute, 50)
	return qa.NewService(cache), source
}

func TestAnswer_EligibilityConfidence(t *testing.T) {
	service, _ := newTestService([]*models.Scheme{mockScheme(nil)})

	answer, err := service.Answer(context.Background(), "am i eligible for kisan", testProfile(), "en")

	require.NoError(t, err)
	assert.Equal(t, qa.IntentEligibility, answer.Intent)
	assert.Equal(t, 90, answer.Confidence)
	assert.Equal(t, qa.LanguageEnglish, answer.Language)
	assert.NotEmpty(t, answer.Schemes)
}

func TestAnswer_ConfidencePerIntent(t *testing.T) {
	tests := []struct {
		question   string
		confidence int
	}{
		{"am i eligible for kisan", 90},
		{"how do i apply for kisan", 85},
		{"kisan benefit amount", 80},
		{"tell me about kisan", 70},
	}

	service, _ := newTestService([]*models.Scheme{mockScheme(nil)})

	for _, tt := range tests {
		answer, err := service.Answer(context.Background(), tt.question, nil, "en")
		require.NoError(t, err)
		assert.Equal(t, tt.confidence, answer.Confidence, "question: %s", tt.question)
	}
}

func TestAnswer_NoMatchConfidence(t *testing.T) {
	service, _ := newTestService([]*models.Scheme{mockScheme(nil)})

	answer, err := service.Answer(context.Background(), "weather forecast for mumbai", nil, "en")

	require.NoError(t, err)
	assert.Equal(t, qa.NoMatchConfidence, answer.Confidence)
	assert.NotNil(t, answer.Schemes)
	assert.Empty(t, answer.Schemes)
}

func TestAnswer_LanguageDetectionFallback(t *testing.T) {
	service, _ := newTestService([]*models.Scheme{mockScheme(nil)})

	answer, err := service.Answer(context.Background(), "किसान योजना के लिए पात्रता", nil, "")

	require.NoError(t, err)
	assert.Equal(t, qa.LanguageHindi, answer.Language)
}

func TestAnswer_ExplicitLanguageWins(t *testing.T) {
	service, _ := newTestService([]*models.Scheme{mockScheme(nil)})

	answer, err := service.Answer(context.Background(), "kisan eligibility", nil, "hi")

	require.NoError(t, err)
	assert.Equal(t, qa.LanguageHindi, answer.Language)
}

func TestAnswer_ValidatesQuestion(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.Answer(context.Background(), "", nil, "en")
	assert.ErrorIs(t, err, models.ErrEmptyQuestion)

	_, err = service.Answer(context.Background(), "hi", nil, "en")
	assert.ErrorIs(t, err, models.ErrQuestionTooShort)
}

func TestAnswer_SourceErrorPropagates(t *testing.T) {
	source := &fakeSource{err: errors.New("db down")}
	cache := qa.NewSchemeCache(source, time.Minute, 50)
	service := qa.NewService(cache)

	_, err := service.Answer(context.Background(), "kisan eligibility", nil, "en")

	assert.Error(t, err)
}

func TestSchemeCache_ServesCachedWithinTTL(t *testing.T) {
	source := &fakeSource{schemes: []*models.Scheme{mockScheme(nil)}}
	cache := qa.NewSchemeCache(source, time.Minute, 50)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)
	_, err = cache.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
}

func TestSchemeCache_ServesStaleOnReloadFailure(t *testing.T) {
	source := &fakeSource{schemes: []*models.Scheme{mockScheme(nil)}}
	cache := qa.NewSchemeCache(source, 0, 50)

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	source.err = errors.New("db down")
	second, err := cache.Get(context.Background())

	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestSchemeCache_RefreshForcesReload(t *testing.T) {
	source := &fakeSource{schemes: []*models.Scheme{mockScheme(nil)}}
	cache := qa.NewSchemeCache(source, time.Minute, 50)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	require.NoError(t, cache.Refresh(context.Background()))
	assert.Equal(t, 2, source.calls)
}

func TestSchemeCache_AppliesWorkingSetLimit(t *testing.T) {
	var schemes []*models.Scheme
	for i := 0; i < 10; i++ {
		schemes = append(schemes, mockScheme(map[string]interface{}{"id": int64(i + 1)}))
	}
	source := &fakeSource{schemes: schemes}
	cache := qa.NewSchemeCache(source, time.Minute, 3)

	got, err := cache.Get(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 3)
}
