package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"saral-seva-backend/internal/models"
)

// ComplaintRepository handles complaint database operations, including the
// append-only timeline.
type ComplaintRepository struct {
	db *DB
}

// NewComplaintRepository creates a new complaint repository.
func NewComplaintRepository(db *DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Create files a complaint and seeds its timeline with a pending entry, in
// one transaction.
func (r *ComplaintRepository) Create(ctx context.Context, c *models.ComplaintCreate) (*models.Complaint, error) {
	ref := uuid.NewString()
	now := time.Now().UTC()

	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO complaints (ref, profile_id, subject, description, category, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING id`,
			ref, c.ProfileID, c.Subject, c.Description, c.Category,
			string(models.ComplaintStatusPending), now,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert complaint: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO complaint_timeline (complaint_id, status, remark, created_at)
			VALUES ($1, $2, $3, $4)`,
			id, string(models.ComplaintStatusPending), "Complaint registered", now)
		if err != nil {
			return fmt.Errorf("failed to seed complaint timeline: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByRef(ctx, ref)
}

// GetByRef retrieves a complaint with its full timeline.
func (r *ComplaintRepository) GetByRef(ctx context.Context, ref string) (*models.Complaint, error) {
	query := `
		SELECT id, ref, profile_id, subject, description, category, status, created_at, updated_at
		FROM complaints
		WHERE ref = $1`

	complaint, err := scanComplaint(r.db.QueryRowContext(ctx, query, ref))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	timeline, err := r.timeline(ctx, complaint.ID)
	if err != nil {
		return nil, err
	}
	complaint.Timeline = timeline

	return complaint, nil
}

// ListByProfile retrieves a citizen's complaints, newest first, without
// timelines.
func (r *ComplaintRepository) ListByProfile(ctx context.Context, profileID int64) ([]*models.Complaint, error) {
	query := `
		SELECT id, ref, profile_id, subject, description, category, status, created_at, updated_at
		FROM complaints
		WHERE profile_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints: %w", err)
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}

// UpdateStatus transitions a complaint and appends the matching timeline
// entry in the same transaction, so the status and its history never
// diverge.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, ref string, status models.ComplaintStatus, remark string) (*models.Complaint, error) {
	if !status.IsValid() {
		return nil, models.ErrInvalidStatus
	}

	now := time.Now().UTC()
	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx,
			"UPDATE complaints SET status = $1, updated_at = $2 WHERE ref = $3 RETURNING id",
			string(status), now, ref).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to update complaint status: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO complaint_timeline (complaint_id, status, remark, created_at)
			VALUES ($1, $2, $3, $4)`,
			id, string(status), remark, now)
		if err != nil {
			return fmt.Errorf("failed to append timeline entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByRef(ctx, ref)
}

func (r *ComplaintRepository) timeline(ctx context.Context, complaintID int64) ([]models.TimelineEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, status, remark, created_at
		FROM complaint_timeline
		WHERE complaint_id = $1
		ORDER BY id`,
		complaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaint timeline: %w", err)
	}
	defer rows.Close()

	var entries []models.TimelineEntry
	for rows.Next() {
		var e models.TimelineEntry
		var status string
		if err := rows.Scan(&e.ID, &status, &e.Remark, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan timeline entry: %w", err)
		}
		e.Status = models.ComplaintStatus(status)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	var c models.Complaint
	var status string

	err := row.Scan(
		&c.ID,
		&c.Ref,
		&c.ProfileID,
		&c.Subject,
		&c.Description,
		&c.Category,
		&status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Status = models.ComplaintStatus(status)
	return &c, nil
}
