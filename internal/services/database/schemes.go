package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/utils"
)

// SchemeRepository handles scheme database operations.
type SchemeRepository struct {
	db *DB
}

// NewSchemeRepository creates a new scheme repository.
func NewSchemeRepository(db *DB) *SchemeRepository {
	return &SchemeRepository{db: db}
}

const schemeColumns = `
	id, name, slug, short_description, description, category, sub_category,
	level, department, eligibility, benefit, application, required_documents,
	keywords, status, view_count, application_count, bookmark_count,
	weekly_views, weekly_applications, popularity_score, trending_score,
	average_rating, created_at, updated_at`

// Create inserts a new scheme. The slug is derived from the name; a slug
// collision returns models.ErrSlugExists.
func (r *SchemeRepository) Create(ctx context.Context, scheme *models.SchemeCreate) (*models.Scheme, error) {
	if err := models.ValidateSchemeCreate(scheme); err != nil {
		return nil, err
	}

	eligibilityJSON, err := json.Marshal(scheme.Eligibility)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal eligibility rules: %w", err)
	}
	benefitJSON, err := json.Marshal(scheme.Benefit)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal benefit: %w", err)
	}
	applicationJSON, err := json.Marshal(scheme.Application)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal application process: %w", err)
	}
	docsJSON, err := json.Marshal(emptySlice(scheme.RequiredDocs))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal required documents: %w", err)
	}
	keywordsJSON, err := json.Marshal(emptySlice(scheme.Keywords))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}

	status := scheme.Status
	if status == "" {
		status = models.SchemeStatusActive
	}

	slug := utils.Slugify(scheme.Name)
	now := time.Now().UTC()

	query := `
		INSERT INTO schemes (
			name, slug, short_description, description, category, sub_category,
			level, department, eligibility, benefit, application,
			required_documents, keywords, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		RETURNING id`

	var id int64
	err = r.db.QueryRowContext(ctx, query,
		scheme.Name,
		slug,
		scheme.ShortDescription,
		scheme.Description,
		scheme.Category,
		scheme.SubCategory,
		string(scheme.Level),
		scheme.Department,
		string(eligibilityJSON),
		string(benefitJSON),
		string(applicationJSON),
		string(docsJSON),
		string(keywordsJSON),
		string(status),
		now,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrSlugExists
		}
		return nil, fmt.Errorf("failed to create scheme: %w", err)
	}

	return r.GetBySlug(ctx, slug)
}

// GetBySlug retrieves a scheme by its slug. Returns models.ErrNotFound when
// no such scheme exists.
func (r *SchemeRepository) GetBySlug(ctx context.Context, slug string) (*models.Scheme, error) {
	query := `SELECT` + schemeColumns + ` FROM schemes WHERE slug = $1`

	scheme, err := scanScheme(r.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scheme: %w", err)
	}
	return scheme, nil
}

// ListActive retrieves active schemes, optionally narrowed by category and
// level equality filters. This is the working set used by the recommender
// and the Q&A cache.
func (r *SchemeRepository) ListActive(ctx context.Context, category string, level models.SchemeLevel) ([]*models.Scheme, error) {
	query := `SELECT` + schemeColumns + ` FROM schemes WHERE status = 'active'`
	args := []interface{}{}

	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if level != "" {
		args = append(args, string(level))
		query += fmt.Sprintf(" AND level = $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schemes: %w", err)
	}
	defer rows.Close()

	return collectSchemes(rows)
}

// List retrieves schemes of any status with a limit, newest first.
func (r *SchemeRepository) List(ctx context.Context, limit int) ([]*models.Scheme, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT` + schemeColumns + ` FROM schemes ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query schemes: %w", err)
	}
	defer rows.Close()

	return collectSchemes(rows)
}

// Update applies the non-nil fields of upd to the scheme with the given
// slug. The slug itself never changes.
func (r *SchemeRepository) Update(ctx context.Context, slug string, upd *models.SchemeUpdate) (*models.Scheme, error) {
	current, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	applySchemeUpdate(current, upd)

	eligibilityJSON, err := json.Marshal(current.Eligibility)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal eligibility rules: %w", err)
	}
	benefitJSON, err := json.Marshal(current.Benefit)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal benefit: %w", err)
	}
	applicationJSON, err := json.Marshal(current.Application)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal application process: %w", err)
	}
	docsJSON, err := json.Marshal(emptySlice(current.RequiredDocs))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal required documents: %w", err)
	}
	keywordsJSON, err := json.Marshal(emptySlice(current.Keywords))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}

	query := `
		UPDATE schemes SET
			name = $1, short_description = $2, description = $3, category = $4,
			sub_category = $5, level = $6, department = $7, eligibility = $8,
			benefit = $9, application = $10, required_documents = $11,
			keywords = $12, status = $13, updated_at = $14
		WHERE slug = $15`

	_, err = r.db.ExecContext(ctx, query,
		current.Name,
		current.ShortDescription,
		current.Description,
		current.Category,
		current.SubCategory,
		string(current.Level),
		current.Department,
		string(eligibilityJSON),
		string(benefitJSON),
		string(applicationJSON),
		string(docsJSON),
		string(keywordsJSON),
		string(current.Status),
		time.Now().UTC(),
		slug,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update scheme: %w", err)
	}

	return r.GetBySlug(ctx, slug)
}

// Deactivate marks a scheme as inactive. Schemes are never deleted.
func (r *SchemeRepository) Deactivate(ctx context.Context, slug string) error {
	affected, err := r.db.ExecContext(ctx,
		"UPDATE schemes SET status = 'inactive', updated_at = $1 WHERE slug = $2",
		time.Now().UTC(), slug)
	if err != nil {
		return fmt.Errorf("failed to deactivate scheme: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// RecordView bumps the view counters and recomputes the derived scores in
// the same atomic update, so the stored popularity never drifts from the
// counters. The formula mirrors models.ComputePopularityScore.
func (r *SchemeRepository) RecordView(ctx context.Context, slug string) error {
	return r.recordCounter(ctx, slug, `
		UPDATE schemes SET
			view_count = view_count + 1,
			weekly_views = weekly_views + 1,
			popularity_score = ROUND(
				30 * LEAST(view_count + 1, 10000) / 10000.0 +
				40 * LEAST(application_count, 1000) / 1000.0 +
				30 * LEAST(bookmark_count, 5000) / 5000.0)::INT,
			trending_score = ROUND(
				60 * LEAST(weekly_views + 1, 1000) / 1000.0 +
				40 * LEAST(weekly_applications, 100) / 100.0)::INT,
			updated_at = $2
		WHERE slug = $1`)
}

// RecordApplication bumps the application counters and recomputes scores
// atomically.
func (r *SchemeRepository) RecordApplication(ctx context.Context, slug string) error {
	return r.recordCounter(ctx, slug, `
		UPDATE schemes SET
			application_count = application_count + 1,
			weekly_applications = weekly_applications + 1,
			popularity_score = ROUND(
				30 * LEAST(view_count, 10000) / 10000.0 +
				40 * LEAST(application_count + 1, 1000) / 1000.0 +
				30 * LEAST(bookmark_count, 5000) / 5000.0)::INT,
			trending_score = ROUND(
				60 * LEAST(weekly_views, 1000) / 1000.0 +
				40 * LEAST(weekly_applications + 1, 100) / 100.0)::INT,
			updated_at = $2
		WHERE slug = $1`)
}

// RecordBookmark bumps the bookmark counter and recomputes the popularity
// score atomically.
func (r *SchemeRepository) RecordBookmark(ctx context.Context, slug string) error {
	return r.recordCounter(ctx, slug, `
		UPDATE schemes SET
			bookmark_count = bookmark_count + 1,
			popularity_score = ROUND(
				30 * LEAST(view_count, 10000) / 10000.0 +
				40 * LEAST(application_count, 1000) / 1000.0 +
				30 * LEAST(bookmark_count + 1, 5000) / 5000.0)::INT,
			updated_at = $2
		WHERE slug = $1`)
}

func (r *SchemeRepository) recordCounter(ctx context.Context, slug, query string) error {
	affected, err := r.db.ExecContext(ctx, query, slug, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record counter: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ResetWeeklyCounters zeroes the weekly counters and trending scores. Run by
// an external scheduler once a week.
func (r *SchemeRepository) ResetWeeklyCounters(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE schemes SET weekly_views = 0, weekly_applications = 0, trending_score = 0, updated_at = $1",
		time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to reset weekly counters: %w", err)
	}
	return nil
}

// scanScheme scans a single row into a Scheme.
func scanScheme(row pgx.Row) (*models.Scheme, error) {
	var scheme models.Scheme
	var level, status string
	var eligibilityJSON, benefitJSON, applicationJSON, docsJSON, keywordsJSON []byte

	err := row.Scan(
		&scheme.ID,
		&scheme.Name,
		&scheme.Slug,
		&scheme.ShortDescription,
		&scheme.Description,
		&scheme.Category,
		&scheme.SubCategory,
		&level,
		&scheme.Department,
		&eligibilityJSON,
		&benefitJSON,
		&applicationJSON,
		&docsJSON,
		&keywordsJSON,
		&status,
		&scheme.ViewCount,
		&scheme.ApplicationCount,
		&scheme.BookmarkCount,
		&scheme.WeeklyViews,
		&scheme.WeeklyApps,
		&scheme.PopularityScore,
		&scheme.TrendingScore,
		&scheme.AverageRating,
		&scheme.CreatedAt,
		&scheme.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	scheme.Level = models.SchemeLevel(level)
	scheme.Status = models.SchemeStatus(status)

	if err := json.Unmarshal(eligibilityJSON, &scheme.Eligibility); err != nil {
		return nil, fmt.Errorf("failed to unmarshal eligibility rules: %w", err)
	}
	if err := json.Unmarshal(benefitJSON, &scheme.Benefit); err != nil {
		return nil, fmt.Errorf("failed to unmarshal benefit: %w", err)
	}
	if err := json.Unmarshal(applicationJSON, &scheme.Application); err != nil {
		return nil, fmt.Errorf("failed to unmarshal application process: %w", err)
	}
	if err := json.Unmarshal(docsJSON, &scheme.RequiredDocs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal required documents: %w", err)
	}
	if err := json.Unmarshal(keywordsJSON, &scheme.Keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
	}

	return &scheme, nil
}

// collectSchemes drains rows into a scheme slice.
func collectSchemes(rows pgx.Rows) ([]*models.Scheme, error) {
	var schemes []*models.Scheme
	for rows.Next() {
		scheme, err := scanScheme(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheme: %w", err)
		}
		schemes = append(schemes, scheme)
	}
	return schemes, rows.Err()
}

func applySchemeUpdate(s *models.Scheme, upd *models.SchemeUpdate) {
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.ShortDescription != nil {
		s.ShortDescription = *upd.ShortDescription
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.Category != nil {
		s.Category = *upd.Category
	}
	if upd.SubCategory != nil {
		s.SubCategory = *upd.SubCategory
	}
	if upd.Level != nil {
		s.Level = *upd.Level
	}
	if upd.Department != nil {
		s.Department = *upd.Department
	}
	if upd.Eligibility != nil {
		s.Eligibility = *upd.Eligibility
	}
	if upd.Benefit != nil {
		s.Benefit = *upd.Benefit
	}
	if upd.Application != nil {
		s.Application = *upd.Application
	}
	if upd.RequiredDocs != nil {
		s.RequiredDocs = upd.RequiredDocs
	}
	if upd.Keywords != nil {
		s.Keywords = upd.Keywords
	}
	if upd.Status != nil {
		s.Status = *upd.Status
	}
}

// emptySlice keeps nil slices from marshalling as JSON null.
func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
