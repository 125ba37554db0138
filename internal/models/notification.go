// Package models defines the data structures for the Saral Seva backend.
package models

import (
	"time"
)

// NotificationType classifies a notification for the portal inbox.
type NotificationType string

const (
	NotificationTypeScheme    NotificationType = "scheme"
	NotificationTypeComplaint NotificationType = "complaint"
	NotificationTypeDocument  NotificationType = "document"
	NotificationTypeEvent     NotificationType = "event"
	NotificationTypeGeneral   NotificationType = "general"
)

// Notification is an in-portal message for a citizen. Delivery channels
// (email, SMS, push) are outside this system; records here are the inbox.
type Notification struct {
	ID        int64            `json:"id" db:"id"`
	Ref       string           `json:"ref" db:"ref"`
	ProfileID int64            `json:"profile_id" db:"profile_id"`
	Title     string           `json:"title" db:"title"`
	Body      string           `json:"body" db:"body"`
	Type      NotificationType `json:"type" db:"type"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// NotificationCreate represents the data needed to create a notification.
type NotificationCreate struct {
	ProfileID int64            `json:"profile_id" validate:"required"`
	Title     string           `json:"title" validate:"required,min=1,max=200"`
	Body      string           `json:"body" validate:"required"`
	Type      NotificationType `json:"type,omitempty"`
}
