package pgsql

import (
	"context"
	"fmt"

	"github.com/denimfab/denim_factory_app/internal/apperrors"
	"github.com/denimfab/denim_factory_app/internal/core/domain"
	portsrepo "github.com/denimfab/denim_factory_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSpecialNoteRepository struct {
	db *pgxpool.Pool
}

// NewSpecialNoteRepository creates the pgx-backed special notes repository.
func NewSpecialNoteRepository(db *pgxpool.Pool) portsrepo.SpecialNoteRepository {
	return &PgxSpecialNoteRepository{db: db}
}

var _ portsrepo.SpecialNoteRepository = (*PgxSpecialNoteRepository)(nil)

func (r *PgxSpecialNoteRepository) InsertNote(ctx context.Context, note domain.SpecialNote) (*domain.SpecialNote, error) {
	query := `
		INSERT INTO special_notes (note_date, note_content, entered_by_user_id)
		VALUES ($1, $2, $3)
		RETURNING *;
	`
	rows, err := r.db.Query(ctx, query, note.NoteDate, note.Content, note.EnteredBy)
	if err != nil {
		return nil, fmt.Errorf("failed to insert special note: %w", mapPgError(err))
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[domain.SpecialNote])
	if err != nil {
		return nil, fmt.Errorf("failed to insert special note: %w", mapPgError(err))
	}
	return &created, nil
}

func (r *PgxSpecialNoteRepository) FindActiveNotes(ctx context.Context, limit int) ([]domain.SpecialNote, error) {
	query := `
		SELECT sn.*, u.username AS entered_by_username
		FROM special_notes sn
		JOIN users u ON sn.entered_by_user_id = u.id
		WHERE sn.is_active = TRUE
		ORDER BY sn.note_date DESC, sn.created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query active special notes: %w", err)
	}
	notes, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[domain.SpecialNote])
	if err != nil {
		return nil, fmt.Errorf("failed to scan special note rows: %w", err)
	}
	return notes, nil
}

func (r *PgxSpecialNoteRepository) DeactivateNote(ctx context.Context, noteID int64) error {
	// Matches any existing row regardless of current is_active, so repeated
	// deactivation succeeds and only an absent id yields not-found.
	query := `UPDATE special_notes SET is_active = FALSE WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, noteID)
	if err != nil {
		return fmt.Errorf("failed to deactivate special note %d: %w", noteID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: note not found", apperrors.ErrNotFound)
	}
	return nil
}
