package model

import "time"

// Task is a server-owned task resource. ID and the timestamps are assigned
// by the backend; DeletedAt is the soft-delete marker and stays nil for
// live records.
type Task struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    int          `json:"priority"`
	Status      string       `json:"status"`
	Progress    float64      `json:"progress"`
	Attachments []Attachment `json:"attachments,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	DeletedAt   *time.Time   `json:"deleted_at,omitempty"`
}

// NewTask is the create payload. The server fills in ID and timestamps.
type NewTask struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    int     `json:"priority"`
	Status      string  `json:"status"`
	Progress    float64 `json:"progress"`
}

// TaskUpdate is a partial update. Nil fields are left untouched by the
// server merge.
type TaskUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Priority    *int     `json:"priority,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Progress    *float64 `json:"progress,omitempty"`
}
