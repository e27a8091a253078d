package dto

import (
	"bytes"
	"encoding/json"

	"github.com/yigit/coursedesk/internal/app/models"
)

// StringSequence is a request field that must be a JSON array of strings.
// Any other JSON value decodes without error but stays invalid, so the
// service layer can report it as a validation failure.
type StringSequence struct {
	Values []string
	Valid  bool
}

// UnmarshalJSON implements json.Unmarshaler
func (s *StringSequence) UnmarshalJSON(b []byte) error {
	*s = StringSequence{}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}

	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return nil
	}
	if list == nil {
		list = []string{}
	}

	s.Values = list
	s.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler
func (s StringSequence) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Values)
}

// List returns the decoded values, or nil when the field was absent or not an array
func (s StringSequence) List() []string {
	if !s.Valid {
		return nil
	}
	return s.Values
}

// Sequence builds a valid StringSequence from values
func Sequence(values ...string) StringSequence {
	if values == nil {
		values = []string{}
	}
	return StringSequence{Values: values, Valid: true}
}

// CourseRequest is the body of POST /courses and PUT /courses/:id
type CourseRequest struct {
	UserID    string         `json:"user_id" example:"3f0c1d9e-8f5b-4b7e-9a43-1c2d3e4f5a6b"`
	Title     string         `json:"title" example:"Algebra"`
	Teachers  StringSequence `json:"teachers" swaggertype:"array,string"`
	Classes   StringSequence `json:"classes" swaggertype:"array,string"`
	StartTime string         `json:"start_time" example:"09:00"`
	EndTime   string         `json:"end_time" example:"10:00"`
}

// ToInput converts the request into the service input
func (r CourseRequest) ToInput() models.CourseInput {
	return models.CourseInput{
		UserID:    r.UserID,
		Title:     r.Title,
		Teachers:  r.Teachers.List(),
		Classes:   r.Classes.List(),
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// ListCoursesQuery is the query string of GET /courses
type ListCoursesQuery struct {
	UserID string `form:"user_id" binding:"required"`
}
