package domain

import "time"

// SpecialNote is a freeform dated announcement shown on the dashboard.
// Notes are soft-deleted: deactivation flips IsActive, the row is retained.
type SpecialNote struct {
	ID                int64     `db:"id" json:"id"`
	NoteDate          time.Time `db:"note_date" json:"noteDate"`
	Content           string    `db:"note_content" json:"content"`
	EnteredBy         int64     `db:"entered_by_user_id" json:"enteredByUserID"`
	EnteredByUsername string    `db:"entered_by_username" json:"enteredByUsername,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	IsActive          bool      `db:"is_active" json:"isActive"`
}
