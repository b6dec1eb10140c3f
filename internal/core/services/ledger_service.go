package services

import (
	"context"
	"fmt"

	"github.com/denimfab/denim_factory_app/internal/apperrors"
	"github.com/denimfab/denim_factory_app/internal/core/domain"
	portsrepo "github.com/denimfab/denim_factory_app/internal/core/ports/repositories"
	portssvc "github.com/denimfab/denim_factory_app/internal/core/ports/services"
	"github.com/denimfab/denim_factory_app/internal/dto"
)

// LedgerService implements the approval workflow shared by the five
// production ledgers: submissions enter as PENDING and an admin moves each
// one exactly once to APPROVED or REJECTED.
type LedgerService[T any] struct {
	repo portsrepo.LedgerRepository[T]
}

// NewLedgerService creates the workflow service for one ledger.
func NewLedgerService[T any](repo portsrepo.LedgerRepository[T]) *LedgerService[T] {
	return &LedgerService[T]{repo: repo}
}

var _ portssvc.LedgerSvcFacade[domain.BulkInput] = (*LedgerService[domain.BulkInput])(nil)

func (s *LedgerService[T]) Submit(ctx context.Context, entry T, submitterID int64) (*T, error) {
	created, err := s.repo.InsertEntry(ctx, entry, submitterID)
	if err != nil {
		return nil, fmt.Errorf("failed to submit entry: %w", err)
	}
	return created, nil
}

func (s *LedgerService[T]) ListPending(ctx context.Context) ([]T, error) {
	return s.repo.FindPendingEntries(ctx)
}

func (s *LedgerService[T]) Approve(ctx context.Context, entryID int64, adminID int64) (*T, error) {
	return s.repo.ResolveEntry(ctx, entryID, adminID, domain.StatusApproved)
}

func (s *LedgerService[T]) Reject(ctx context.Context, entryID int64, adminID int64) (*T, error) {
	return s.repo.ResolveEntry(ctx, entryID, adminID, domain.StatusRejected)
}

func (s *LedgerService[T]) ReportApproved(ctx context.Context, startDate, endDate string) ([]T, error) {
	start, err := dto.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := dto.ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start date cannot be after end date", apperrors.ErrValidation)
	}
	return s.repo.FindApprovedEntriesInRange(ctx, start, end)
}
