package repositories

import (
	"context"
	"time"

	"github.com/denimfab/denim_factory_app/internal/core/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate if the
	// username is already taken.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// LedgerRepository is the storage contract shared by the five production
// ledgers. T is the concrete entry type (domain.BulkInput etc).
type LedgerRepository[T any] interface {
	// InsertEntry stores a new entry with status PENDING and the submission
	// timestamp set by the store.
	InsertEntry(ctx context.Context, entry T, enteredBy int64) (*T, error)
	// FindPendingEntries returns all PENDING entries, newest submission
	// first, joined with the submitter's username.
	FindPendingEntries(ctx context.Context) ([]T, error)
	// ResolveEntry atomically moves a PENDING entry to the given terminal
	// status. Returns apperrors.ErrNotFound when no PENDING row matches the
	// id, which covers both absent and already-resolved entries.
	ResolveEntry(ctx context.Context, entryID int64, adminID int64, status domain.ApprovalStatus) (*T, error)
	// FindApprovedEntriesInRange returns APPROVED entries with entry_date in
	// the inclusive range, joined with submitter and resolver usernames,
	// ordered by entry_date descending then id descending.
	FindApprovedEntriesInRange(ctx context.Context, startDate, endDate time.Time) ([]T, error)
}

// SpecialNoteRepository persists dashboard announcements.
type SpecialNoteRepository interface {
	InsertNote(ctx context.Context, note domain.SpecialNote) (*domain.SpecialNote, error)
	FindActiveNotes(ctx context.Context, limit int) ([]domain.SpecialNote, error)
	// DeactivateNote flips is_active to false. Returns apperrors.ErrNotFound
	// only when the id does not exist; already-inactive notes still match.
	DeactivateNote(ctx context.Context, noteID int64) error
}

// DashboardRepository serves read-only rollups over the ledgers.
type DashboardRepository interface {
	CountBulkInputsOn(ctx context.Context, day time.Time) (int64, error)
	SumFinishedWashingOn(ctx context.Context, day time.Time) (int64, error)
	SumShippedOn(ctx context.Context, day time.Time) (int64, error)
	SumApprovedDryProcessByName(ctx context.Context, startDate, endDate time.Time) ([]domain.ProcessVolume, error)
}
