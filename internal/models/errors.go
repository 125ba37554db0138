// Package models defines the data structures for the Saral Seva backend.
package models

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Common errors
var (
	ErrInvalidCategory  = errors.New("invalid social category")
	ErrInvalidLevel     = errors.New("invalid scheme level")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidIncome    = errors.New("annual income cannot be negative")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrEmptyQuestion    = errors.New("question cannot be empty")
	ErrQuestionTooShort = errors.New("question must be at least 3 characters")
	ErrQuestionTooLong  = errors.New("question must be at most 500 characters")
	ErrSlugExists       = errors.New("a scheme with this slug already exists")
	ErrSlugImmutable    = errors.New("scheme slug cannot change once set")
	ErrNotFound         = errors.New("record not found")
)

// QuestionMinLen and QuestionMaxLen bound the free-text Q&A input.
const (
	QuestionMinLen = 3
	QuestionMaxLen = 500
)

// NormalizeSocialCategory converts various category formats to standard values.
func NormalizeSocialCategory(category string) SocialCategory {
	normalized := strings.ToLower(strings.TrimSpace(category))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	categoryMap := map[string]SocialCategory{
		"general":         CategoryGeneral,
		"gen":             CategoryGeneral,
		"unreserved":      CategoryGeneral,
		"ur":              CategoryGeneral,
		"obc":             CategoryOBC,
		"other_backward":  CategoryOBC,
		"backward_class":  CategoryOBC,
		"sc":              CategorySC,
		"scheduled_caste": CategorySC,
		"st":              CategoryST,
		"scheduled_tribe": CategoryST,
		"other":           CategoryOther,
		"others":          CategoryOther,
	}

	if mapped, ok := categoryMap[normalized]; ok {
		return mapped
	}

	// Return as-is if no mapping found (will fail validation)
	return SocialCategory(normalized)
}

// ValidateProfileCreate validates profile creation data.
func ValidateProfileCreate(p *ProfileCreate) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}

	if !isValidEmail(p.Email) {
		return ErrInvalidEmail
	}

	if p.AnnualIncome != nil && *p.AnnualIncome < 0 {
		return ErrInvalidIncome
	}

	if p.Category != "" && !p.Category.IsValid() {
		return ErrInvalidCategory
	}

	return nil
}

// ValidateSchemeCreate validates scheme creation data.
func ValidateSchemeCreate(s *SchemeCreate) error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}

	switch s.Level {
	case SchemeLevelCentral, SchemeLevelState, SchemeLevelDistrict:
	default:
		return ErrInvalidLevel
	}

	if s.Status != "" {
		switch s.Status {
		case SchemeStatusActive, SchemeStatusInactive, SchemeStatusUpcoming, SchemeStatusExpired:
		default:
			return ErrInvalidStatus
		}
	}

	return nil
}

// ValidateQuestion checks the free-text Q&A input bounds. Bounds are in
// characters, not bytes, so Devanagari questions are measured fairly.
func ValidateQuestion(question string) error {
	q := strings.TrimSpace(question)
	if q == "" {
		return ErrEmptyQuestion
	}
	length := utf8.RuneCountInString(q)
	if length < QuestionMinLen {
		return ErrQuestionTooShort
	}
	if length > QuestionMaxLen {
		return ErrQuestionTooLong
	}
	return nil
}

// isValidEmail performs basic email validation.
func isValidEmail(email string) bool {
	if email == "" {
		return false
	}

	atIndex := strings.Index(email, "@")
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	dotIndex := strings.LastIndex(email, ".")
	if dotIndex <= atIndex+1 || dotIndex == len(email)-1 {
		return false
	}

	return true
}
