// Package models defines the data structures for the Saral Seva backend.
package models

import (
	"time"
)

// ComplaintStatus represents the processing state of a citizen complaint.
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusInProgress ComplaintStatus = "in_progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
	ComplaintStatusRejected   ComplaintStatus = "rejected"
)

// ValidComplaintStatuses returns all valid complaint status values.
func ValidComplaintStatuses() []ComplaintStatus {
	return []ComplaintStatus{
		ComplaintStatusPending,
		ComplaintStatusInProgress,
		ComplaintStatusResolved,
		ComplaintStatusRejected,
	}
}

// IsValid checks if the complaint status is valid.
func (s ComplaintStatus) IsValid() bool {
	for _, valid := range ValidComplaintStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// TimelineEntry is one step in a complaint's processing history. Entries are
// append-only and ordered by creation time.
type TimelineEntry struct {
	ID        int64           `json:"id" db:"id"`
	Status    ComplaintStatus `json:"status" db:"status"`
	Remark    string          `json:"remark,omitempty" db:"remark"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// Complaint represents a citizen complaint about a scheme or department.
type Complaint struct {
	ID          int64           `json:"id" db:"id"`
	Ref         string          `json:"ref" db:"ref"`
	ProfileID   int64           `json:"profile_id" db:"profile_id"`
	Subject     string          `json:"subject" db:"subject"`
	Description string          `json:"description" db:"description"`
	Category    string          `json:"category,omitempty" db:"category"`
	Status      ComplaintStatus `json:"status" db:"status"`
	Timeline    []TimelineEntry `json:"timeline,omitempty"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// ComplaintCreate represents the data needed to file a complaint.
type ComplaintCreate struct {
	ProfileID   int64  `json:"profile_id" validate:"required"`
	Subject     string `json:"subject" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category,omitempty"`
}
