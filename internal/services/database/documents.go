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

// DocumentRepository handles document metadata operations. File bytes are
// out of scope; only the registration and verification state is stored.
type DocumentRepository struct {
	db *DB
}

// NewDocumentRepository creates a new document repository.
func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create registers a document in pending state.
func (r *DocumentRepository) Create(ctx context.Context, d *models.DocumentCreate) (*models.Document, error) {
	ref := uuid.NewString()
	now := time.Now().UTC()

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO documents (ref, profile_id, type, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id`,
		ref, d.ProfileID, d.Type, d.Name, string(models.DocumentStatusPending), now,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to register document: %w", err)
	}

	return r.GetByRef(ctx, ref)
}

// GetByRef retrieves a document by its reference.
func (r *DocumentRepository) GetByRef(ctx context.Context, ref string) (*models.Document, error) {
	query := `
		SELECT id, ref, profile_id, type, name, status, remark, created_at, updated_at
		FROM documents
		WHERE ref = $1`

	doc, err := scanDocument(r.db.QueryRowContext(ctx, query, ref))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// ListByProfile retrieves a citizen's documents, newest first.
func (r *DocumentRepository) ListByProfile(ctx context.Context, profileID int64) ([]*models.Document, error) {
	query := `
		SELECT id, ref, profile_id, type, name, status, remark, created_at, updated_at
		FROM documents
		WHERE profile_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// SetVerification moves a document to verified or rejected with a remark.
func (r *DocumentRepository) SetVerification(ctx context.Context, ref string, status models.DocumentStatus, remark string) (*models.Document, error) {
	if !status.IsValid() {
		return nil, models.ErrInvalidStatus
	}

	affected, err := r.db.ExecContext(ctx,
		"UPDATE documents SET status = $1, remark = $2, updated_at = $3 WHERE ref = $4",
		string(status), remark, time.Now().UTC(), ref)
	if err != nil {
		return nil, fmt.Errorf("failed to set verification status: %w", err)
	}
	if affected == 0 {
		return nil, models.ErrNotFound
	}

	return r.GetByRef(ctx, ref)
}

func scanDocument(row pgx.Row) (*models.Document, error) {
	var d models.Document
	var status string

	err := row.Scan(
		&d.ID,
		&d.Ref,
		&d.ProfileID,
		&d.Type,
		&d.Name,
		&status,
		&d.Remark,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Status = models.DocumentStatus(status)
	return &d, nil
}
