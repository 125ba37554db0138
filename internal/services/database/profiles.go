package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"saral-seva-backend/internal/models"
)

// ProfileRepository handles citizen profile database operations.
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `
	id, name, email, date_of_birth, gender, annual_income, category, state,
	education_level, occupation, marital_status, is_disabled, is_minority,
	is_active, created_at, updated_at`

// Create inserts a new citizen profile.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.ProfileCreate) (*models.Profile, error) {
	if err := models.ValidateProfileCreate(profile); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO profiles (
			name, email, date_of_birth, gender, annual_income, category, state,
			education_level, occupation, marital_status, is_disabled,
			is_minority, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, true, $13, $13)
		RETURNING id`

	var id int64
	now := time.Now().UTC()

	err := r.db.QueryRowContext(ctx, query,
		profile.Name,
		profile.Email,
		profile.DateOfBirth,
		nullableString(string(profile.Gender)),
		profile.AnnualIncome,
		nullableString(string(profile.Category)),
		nullableString(profile.State),
		nullableString(profile.EducationLevel),
		nullableString(profile.Occupation),
		nullableString(profile.MaritalStatus),
		profile.IsDisabled,
		profile.IsMinority,
		now,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a profile by ID. Returns models.ErrNotFound when absent.
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// Update applies the non-nil fields of upd to the profile.
func (r *ProfileRepository) Update(ctx context.Context, id int64, upd *models.ProfileUpdate) (*models.Profile, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProfileUpdate(current, upd)

	if current.AnnualIncome != nil && *current.AnnualIncome < 0 {
		return nil, models.ErrInvalidIncome
	}
	if current.Category != "" && !current.Category.IsValid() {
		return nil, models.ErrInvalidCategory
	}

	query := `
		UPDATE profiles SET
			name = $1, date_of_birth = $2, gender = $3, annual_income = $4,
			category = $5, state = $6, education_level = $7, occupation = $8,
			marital_status = $9, is_disabled = $10, is_minority = $11,
			updated_at = $12
		WHERE id = $13`

	_, err = r.db.ExecContext(ctx, query,
		current.Name,
		current.DateOfBirth,
		nullableString(string(current.Gender)),
		current.AnnualIncome,
		nullableString(string(current.Category)),
		nullableString(current.State),
		nullableString(current.EducationLevel),
		nullableString(current.Occupation),
		nullableString(current.MaritalStatus),
		current.IsDisabled,
		current.IsMinority,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Deactivate marks a profile inactive. Profiles are never deleted.
func (r *ProfileRepository) Deactivate(ctx context.Context, id int64) error {
	affected, err := r.db.ExecContext(ctx,
		"UPDATE profiles SET is_active = false, updated_at = $1 WHERE id = $2",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to deactivate profile: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// scanProfile scans a single row into a Profile.
func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	var dob *time.Time
	var gender, category, state, education, occupation, marital *string

	err := row.Scan(
		&profile.ID,
		&profile.Name,
		&profile.Email,
		&dob,
		&gender,
		&profile.AnnualIncome,
		&category,
		&state,
		&education,
		&occupation,
		&marital,
		&profile.IsDisabled,
		&profile.IsMinority,
		&profile.IsActive,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.DateOfBirth = dob
	if gender != nil {
		profile.Gender = models.Gender(*gender)
	}
	if category != nil {
		profile.Category = models.SocialCategory(*category)
	}
	profile.State = deref(state)
	profile.EducationLevel = deref(education)
	profile.Occupation = deref(occupation)
	profile.MaritalStatus = deref(marital)

	return &profile, nil
}

func applyProfileUpdate(p *models.Profile, upd *models.ProfileUpdate) {
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.DateOfBirth != nil {
		p.DateOfBirth = upd.DateOfBirth
	}
	if upd.Gender != nil {
		p.Gender = *upd.Gender
	}
	if upd.AnnualIncome != nil {
		p.AnnualIncome = upd.AnnualIncome
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.State != nil {
		p.State = *upd.State
	}
	if upd.EducationLevel != nil {
		p.EducationLevel = *upd.EducationLevel
	}
	if upd.Occupation != nil {
		p.Occupation = *upd.Occupation
	}
	if upd.MaritalStatus != nil {
		p.MaritalStatus = *upd.MaritalStatus
	}
	if upd.IsDisabled != nil {
		p.IsDisabled = *upd.IsDisabled
	}
	if upd.IsMinority != nil {
		p.IsMinority = *upd.IsMinority
	}
}

// nullableString maps "" to NULL so "not on file" round-trips as nil.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
