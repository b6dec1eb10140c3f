package dto

// CreateSpecialNoteRequest carries a new announcement. NoteDate is optional
// and defaults to today when omitted.
type CreateSpecialNoteRequest struct {
	NoteDate string `json:"noteDate" binding:"omitempty,datetime=2006-01-02"`
	Content  string `json:"content" binding:"required"`
}
