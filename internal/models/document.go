// Package models defines the data structures for the Saral Seva backend.
package models

import (
	"time"
)

// DocumentStatus represents the verification state of a citizen document.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// IsValid checks if the document status is valid.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusVerified, DocumentStatusRejected:
		return true
	}
	return false
}

// Document is the metadata record for a citizen document. File bytes live
// outside this system; only the registration and verification state is kept.
type Document struct {
	ID        int64          `json:"id" db:"id"`
	Ref       string         `json:"ref" db:"ref"`
	ProfileID int64          `json:"profile_id" db:"profile_id"`
	Type      string         `json:"type" db:"type"`
	Name      string         `json:"name" db:"name"`
	Status    DocumentStatus `json:"status" db:"status"`
	Remark    string         `json:"remark,omitempty" db:"remark"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// DocumentCreate represents the data needed to register a document.
type DocumentCreate struct {
	ProfileID int64  `json:"profile_id" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
}
