package models

import "time"

// Course is a course record owned by exactly one user.
type Course struct {
	ID        string    `json:"id" db:"id" example:"9b2f6c1a-0d7e-4c55-8e1f-2a3b4c5d6e7f"`
	UserID    string    `json:"user_id" db:"user_id" example:"3f0c1d9e-8f5b-4b7e-9a43-1c2d3e4f5a6b"` // Owner reference, fixed at creation
	Title     string    `json:"title" db:"title" example:"Algebra"`
	Teachers  []string  `json:"teachers" db:"teachers"` // Stored as a JSON array in a TEXT column
	Classes   []string  `json:"classes" db:"classes"`   // Stored as a JSON array in a TEXT column
	StartTime string    `json:"start_time" db:"start_time" example:"09:00"`
	EndTime   string    `json:"end_time" db:"end_time" example:"10:00"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CourseInput carries the caller-supplied fields of a create or update.
// A nil Teachers or Classes slice means the value was absent or not an array.
type CourseInput struct {
	UserID    string
	Title     string
	Teachers  []string
	Classes   []string
	StartTime string
	EndTime   string
}
