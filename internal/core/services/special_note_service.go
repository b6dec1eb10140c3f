package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/denimfab/denim_factory_app/internal/apperrors"
	"github.com/denimfab/denim_factory_app/internal/core/domain"
	portsrepo "github.com/denimfab/denim_factory_app/internal/core/ports/repositories"
	portssvc "github.com/denimfab/denim_factory_app/internal/core/ports/services"
	"github.com/denimfab/denim_factory_app/internal/dto"
)

// activeNotesLimit caps the board view at the latest notes.
const activeNotesLimit = 20

type SpecialNoteService struct {
	noteRepo portsrepo.SpecialNoteRepository
	now      func() time.Time
}

// NewSpecialNoteService creates the announcements board service.
func NewSpecialNoteService(noteRepo portsrepo.SpecialNoteRepository) *SpecialNoteService {
	return &SpecialNoteService{noteRepo: noteRepo, now: time.Now}
}

var _ portssvc.SpecialNoteSvcFacade = (*SpecialNoteService)(nil)

func (s *SpecialNoteService) AddNote(ctx context.Context, req dto.CreateSpecialNoteRequest, authorID int64) (*domain.SpecialNote, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: note content is required", apperrors.ErrValidation)
	}

	noteDate := s.today()
	if req.NoteDate != "" {
		parsed, err := dto.ParseDate(req.NoteDate)
		if err != nil {
			return nil, err
		}
		noteDate = parsed
	}

	created, err := s.noteRepo.InsertNote(ctx, domain.SpecialNote{
		NoteDate:  noteDate,
		Content:   req.Content,
		EnteredBy: authorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add special note: %w", err)
	}
	return created, nil
}

func (s *SpecialNoteService) ListActiveNotes(ctx context.Context) ([]domain.SpecialNote, error) {
	return s.noteRepo.FindActiveNotes(ctx, activeNotesLimit)
}

func (s *SpecialNoteService) DeactivateNote(ctx context.Context, noteID int64) error {
	return s.noteRepo.DeactivateNote(ctx, noteID)
}

// today returns the server-local calendar date with the time part stripped.
func (s *SpecialNoteService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
