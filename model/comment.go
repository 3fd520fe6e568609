package model

import "time"

// User is the minimal author shape embedded in comment responses.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Comment belongs to exactly one task. Comments are created and listed,
// never updated or deleted.
type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Author    User      `json:"author"`
	TaskID    int       `json:"task_id"`
	CreatedAt time.Time `json:"created_at"`
}
