// Package models defines the data structures for the Saral Seva backend.
package models

import (
	"time"
)

// SocialCategory represents the reservation category of a citizen.
type SocialCategory string

const (
	CategoryGeneral SocialCategory = "general"
	CategoryOBC     SocialCategory = "obc"
	CategorySC      SocialCategory = "sc"
	CategoryST      SocialCategory = "st"
	CategoryOther   SocialCategory = "other"
)

// ValidSocialCategories returns all valid social category values.
func ValidSocialCategories() []SocialCategory {
	return []SocialCategory{
		CategoryGeneral,
		CategoryOBC,
		CategorySC,
		CategoryST,
		CategoryOther,
	}
}

// IsValid checks if the social category is valid.
func (c SocialCategory) IsValid() bool {
	for _, valid := range ValidSocialCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

// Gender represents the gender recorded on a citizen profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// SeniorCitizenAge is the age at which a citizen qualifies as a senior citizen.
const SeniorCitizenAge = 60

// Profile represents the normalized attributes of a citizen used as
// eligibility-matching input. Optional fields are pointers or empty strings;
// an absent value means "not on file", never zero.
type Profile struct {
	ID             int64          `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	Email          string         `json:"email" db:"email"`
	DateOfBirth    *time.Time     `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Gender         Gender         `json:"gender,omitempty" db:"gender"`
	AnnualIncome   *float64       `json:"annual_income,omitempty" db:"annual_income"`
	Category       SocialCategory `json:"category,omitempty" db:"category"`
	State          string         `json:"state,omitempty" db:"state"`
	EducationLevel string         `json:"education_level,omitempty" db:"education_level"`
	Occupation     string         `json:"occupation,omitempty" db:"occupation"`
	MaritalStatus  string         `json:"marital_status,omitempty" db:"marital_status"`
	IsDisabled     bool           `json:"is_disabled" db:"is_disabled"`
	IsMinority     bool           `json:"is_minority" db:"is_minority"`
	IsActive       bool           `json:"is_active" db:"is_active"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// Age returns the citizen's age in completed years derived from the date of
// birth. The second return is false when no date of birth is on file.
func (p *Profile) Age() (int, bool) {
	return p.AgeAt(time.Now())
}

// AgeAt returns the age in completed years as of the given instant.
func (p *Profile) AgeAt(now time.Time) (int, bool) {
	if p.DateOfBirth == nil {
		return 0, false
	}

	dob := *p.DateOfBirth
	age := now.Year() - dob.Year()
	// Birthday not yet reached this year
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age, true
}

// IsSeniorCitizen reports whether the citizen is 60 or older.
func (p *Profile) IsSeniorCitizen() bool {
	age, ok := p.Age()
	return ok && age >= SeniorCitizenAge
}

// ProfileCreate represents the data needed to create a new citizen profile.
type ProfileCreate struct {
	Name           string         `json:"name" validate:"required,min=1,max=100"`
	Email          string         `json:"email" validate:"required,email"`
	DateOfBirth    *time.Time     `json:"date_of_birth,omitempty"`
	Gender         Gender         `json:"gender,omitempty"`
	AnnualIncome   *float64       `json:"annual_income,omitempty" validate:"omitempty,gte=0"`
	Category       SocialCategory `json:"category,omitempty"`
	State          string         `json:"state,omitempty"`
	EducationLevel string         `json:"education_level,omitempty"`
	Occupation     string         `json:"occupation,omitempty"`
	MaritalStatus  string         `json:"marital_status,omitempty"`
	IsDisabled     bool           `json:"is_disabled"`
	IsMinority     bool           `json:"is_minority"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers leave the
// stored value untouched.
type ProfileUpdate struct {
	Name           *string         `json:"name,omitempty"`
	DateOfBirth    *time.Time      `json:"date_of_birth,omitempty"`
	Gender         *Gender         `json:"gender,omitempty"`
	AnnualIncome   *float64        `json:"annual_income,omitempty"`
	Category       *SocialCategory `json:"category,omitempty"`
	State          *string         `json:"state,omitempty"`
	EducationLevel *string         `json:"education_level,omitempty"`
	Occupation     *string         `json:"occupation,omitempty"`
	MaritalStatus  *string         `json:"marital_status,omitempty"`
	IsDisabled     *bool           `json:"is_disabled,omitempty"`
	IsMinority     *bool           `json:"is_minority,omitempty"`
}
