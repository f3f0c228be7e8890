package models

// Reading statuses a book can be in.
const (
	StatusNotStarted = "not_started"
	StatusReading    = "reading"
	StatusFinished   = "finished"
)

// ValidStatus reports whether s is one of the allowed reading statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNotStarted, StatusReading, StatusFinished:
		return true
	}
	return false
}

// Book belongs to exactly one user; OwnerID never changes after creation.
type Book struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        *int   `json:"year,omitempty"` // nil when the form field was left empty
	Genre       string `json:"genre,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"` // not_started | reading | finished
	OwnerID     int    `json:"owner_id"`
}
