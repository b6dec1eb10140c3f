package services

import (
	"context"

	"github.com/denimfab/denim_factory_app/internal/core/domain"
	"github.com/denimfab/denim_factory_app/internal/dto"
)

// UserSvcFacade exposes account management to the handlers.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// LedgerSvcFacade is the approval workflow shared by the five production
// ledgers. T is the concrete entry type (domain.BulkInput etc).
type LedgerSvcFacade[T any] interface {
	Submit(ctx context.Context, entry T, submitterID int64) (*T, error)
	ListPending(ctx context.Context) ([]T, error)
	Approve(ctx context.Context, entryID int64, adminID int64) (*T, error)
	Reject(ctx context.Context, entryID int64, adminID int64) (*T, error)
	ReportApproved(ctx context.Context, startDate, endDate string) ([]T, error)
}

// SpecialNoteSvcFacade manages the announcements board.
type SpecialNoteSvcFacade interface {
	AddNote(ctx context.Context, req dto.CreateSpecialNoteRequest, authorID int64) (*domain.SpecialNote, error)
	ListActiveNotes(ctx context.Context) ([]domain.SpecialNote, error)
	DeactivateNote(ctx context.Context, noteID int64) error
}

// DashboardSvcFacade serves the summary and chart rollups.
type DashboardSvcFacade interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
	DryProcessChart(ctx context.Context, timeframe string) ([]domain.ProcessVolume, error)
}

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	User        UserSvcFacade
	BulkInput   LedgerSvcFacade[domain.BulkInput]
	DryProcess  LedgerSvcFacade[domain.DryProcessEntry]
	Washing     LedgerSvcFacade[domain.WashingEntry]
	SubContract LedgerSvcFacade[domain.SubContractEntry]
	GatePass    LedgerSvcFacade[domain.GatePassEntry]
	SpecialNote SpecialNoteSvcFacade
	Dashboard   DashboardSvcFacade
}
