package qa

import (
	"context"

	"go.uber.org/zap"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/utils"
)

// Answer is the response of one Q&A request.
type Answer struct {
	Text       string                  `json:"text"`
	Schemes    []models.QueryCandidate `json:"schemes"`
	Confidence int                     `json:"confidence"`
	Language   Language                `json:"language"`
	Intent     Intent                  `json:"intent"`
}

// Confidence is derived from the template branch when at least one relevant
// scheme was found, and is a fixed low value otherwise. This is the one
// canonical mapping; there is deliberately no second service-level value.
var intentConfidence = map[Intent]int{
	IntentEligibility: 90,
	IntentApplication: 85,
	IntentBenefit:     80,
	IntentGeneral:     70,
}

// NoMatchConfidence is returned when no scheme matched the question.
const NoMatchConfidence = 30

// Service answers free-text scheme questions from the cached working set.
type Service struct {
	cache  *SchemeCache
	logger *zap.Logger
}

// NewService creates a Q&A service over the given scheme cache.
func NewService(cache *SchemeCache) *Service {
	return &Service{cache: cache, logger: utils.GetLogger()}
}

// Answer matches the question against the scheme working set and composes a
// reply. The profile is optional; when present the eligibility and benefit
// templates personalize their output. An empty language tag falls back to
// script detection on the question text.
//
// Scoring, matching and composition are total functions, but the boundary
// still converts any unexpected panic into a degraded fallback answer so a
// malformed scheme record can never take down the request.
func (s *Service) Answer(ctx context.Context, question string, profile *models.Profile, languageTag string) (answer *Answer, err error) {
	lang := ParseLanguage(languageTag)
	if languageTag == "" {
		lang = DetectLanguage(question)
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("qa pipeline panicked", zap.Any("panic", r), zap.String("question", question))
			answer = &Answer{
				Text:       phrase("no_match", lang),
				Schemes:    []models.QueryCandidate{},
				Confidence: NoMatchConfidence,
				Language:   lang,
				Intent:     IntentGeneral,
			}
			err = nil
		}
	}()

	if err := models.ValidateQuestion(question); err != nil {
		return nil, err
	}

	schemes, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	candidates := MatchQuery(question, schemes)
	text, intent := Compose(question, candidates, profile, lang)

	confidence := NoMatchConfidence
	if len(candidates) > 0 {
		confidence = intentConfidence[intent]
	}

	s.logger.Debug("question answered",
		zap.String("intent", string(intent)),
		zap.Int("candidates", len(candidates)),
		zap.Int("confidence", confidence),
	)

	if candidates == nil {
		candidates = []models.QueryCandidate{}
	}

	return &Answer{
		Text:       text,
		Schemes:    candidates,
		Confidence: confidence,
		Language:   lang,
		Intent:     intent,
	}, nil
}

// RefreshSchemes forces the scheme working set to reload.
func (s *Service) RefreshSchemes(ctx context.Context) error {
	return s.cache.Refresh(ctx)
}
