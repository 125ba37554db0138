package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"saral-seva-backend/internal/models"
)

func TestProfile_AgeAt(t *testing.T) {
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	profile := &models.Profile{DateOfBirth: &dob}

	// Birthday already passed this year
	age, ok := profile.AgeAt(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, 36, age)

	// Birthday not yet reached
	age, _ = profile.AgeAt(time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 35, age)

	// Exactly on the birthday counts as reached
	age, _ = profile.AgeAt(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 36, age)
}

func TestProfile_AgeWithoutDateOfBirth(t *testing.T) {
	profile := &models.Profile{}

	_, ok := profile.Age()
	assert.False(t, ok)
}

func TestProfile_IsSeniorCitizen(t *testing.T) {
	senior := time.Now().AddDate(-65, 0, -1)
	young := time.Now().AddDate(-30, 0, -1)

	assert.True(t, (&models.Profile{DateOfBirth: &senior}).IsSeniorCitizen())
	assert.False(t, (&models.Profile{DateOfBirth: &young}).IsSeniorCitizen())
	assert.False(t, (&models.Profile{}).IsSeniorCitizen())
}

func TestNormalizeSocialCategory(t *testing.T) {
	tests := []struct {
		input string
		want  models.SocialCategory
	}{
		{"General", models.CategoryGeneral},
		{"GEN", models.CategoryGeneral},
		{"unreserved", models.CategoryGeneral},
		{"OBC", models.CategoryOBC},
		{"Scheduled Caste", models.CategorySC},
		{"scheduled-tribe", models.CategoryST},
		{"Others", models.CategoryOther},
		{"  sc  ", models.CategorySC},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, models.NormalizeSocialCategory(tt.input), "input: %q", tt.input)
	}
}

func TestValidateProfileCreate(t *testing.T) {
	valid := &models.ProfileCreate{
		Name:  "Ramesh Kumar",
		Email: "ramesh@example.com",
	}
	assert.NoError(t, models.ValidateProfileCreate(valid))

	noName := &models.ProfileCreate{Email: "a@b.co"}
	assert.ErrorIs(t, models.ValidateProfileCreate(noName), models.ErrEmptyName)

	badEmail := &models.ProfileCreate{Name: "X", Email: "not-an-email"}
	assert.ErrorIs(t, models.ValidateProfileCreate(badEmail), models.ErrInvalidEmail)

	negative := -1.0
	badIncome := &models.ProfileCreate{Name: "X", Email: "a@b.co", AnnualIncome: &negative}
	assert.ErrorIs(t, models.ValidateProfileCreate(badIncome), models.ErrInvalidIncome)

	badCategory := &models.ProfileCreate{Name: "X", Email: "a@b.co", Category: "creamy"}
	assert.ErrorIs(t, models.ValidateProfileCreate(badCategory), models.ErrInvalidCategory)
}

func TestValidateSchemeCreate(t *testing.T) {
	valid := &models.SchemeCreate{
		Name:  "PM-KISAN",
		Level: models.SchemeLevelCentral,
	}
	assert.NoError(t, models.ValidateSchemeCreate(valid))

	noName := &models.SchemeCreate{Level: models.SchemeLevelCentral}
	assert.ErrorIs(t, models.ValidateSchemeCreate(noName), models.ErrEmptyName)

	badLevel := &models.SchemeCreate{Name: "X", Level: "national"}
	assert.ErrorIs(t, models.ValidateSchemeCreate(badLevel), models.ErrInvalidLevel)

	badStatus := &models.SchemeCreate{Name: "X", Level: models.SchemeLevelState, Status: "paused"}
	assert.ErrorIs(t, models.ValidateSchemeCreate(badStatus), models.ErrInvalidStatus)
}

func TestValidateQuestion(t *testing.T) {
	assert.NoError(t, models.ValidateQuestion("am i eligible for pm kisan"))
	assert.ErrorIs(t, models.ValidateQuestion(""), models.ErrEmptyQuestion)
	assert.ErrorIs(t, models.ValidateQuestion("   "), models.ErrEmptyQuestion)
	assert.ErrorIs(t, models.ValidateQuestion("hi"), models.ErrQuestionTooShort)

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, models.ValidateQuestion(string(long)), models.ErrQuestionTooLong)
}

func TestValidateQuestion_CountsCharactersNotBytes(t *testing.T) {
	// 200 Devanagari characters are 600 bytes but still within the
	// 500-character ceiling.
	assert.NoError(t, models.ValidateQuestion(strings.Repeat("क", 200)))
	assert.NoError(t, models.ValidateQuestion("क्या मैं पीएम किसान के लिए पात्र हूं"))

	// A single character is 3 bytes but still below the 3-character floor.
	assert.ErrorIs(t, models.ValidateQuestion("क"), models.ErrQuestionTooShort)

	assert.ErrorIs(t, models.ValidateQuestion(strings.Repeat("क", 501)), models.ErrQuestionTooLong)
}
