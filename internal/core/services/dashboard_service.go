package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/denimfab/denim_factory_app/internal/core/domain"
	portsrepo "github.com/denimfab/denim_factory_app/internal/core/ports/repositories"
	portssvc "github.com/denimfab/denim_factory_app/internal/core/ports/services"
)

// finishedGoodsPlaceholder stands in for "finished goods awaiting gate pass".
// There is no inventory accounting backing this figure; it is a known
// limitation carried over until a stock subsystem exists.
const finishedGoodsPlaceholder = 50

type DashboardService struct {
	dashRepo portsrepo.DashboardRepository
	now      func() time.Time
}

// NewDashboardService creates the read-only rollup service.
func NewDashboardService(dashRepo portsrepo.DashboardRepository) *DashboardService {
	return &DashboardService{dashRepo: dashRepo, now: time.Now}
}

var _ portssvc.DashboardSvcFacade = (*DashboardService)(nil)

// Summary assembles today's production rollup.
func (s *DashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	today := s.today()

	bulkInputs, err := s.dashRepo.CountBulkInputsOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load bulk input count: %w", err)
	}
	completed, err := s.dashRepo.SumFinishedWashingOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed units: %w", err)
	}
	shipped, err := s.dashRepo.SumShippedOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load shipped units: %w", err)
	}

	return &domain.DashboardSummary{
		BulkInputsToday:               bulkInputs,
		UnitsCompletedToday:           completed,
		FinishedGoodsAwaitingGatePass: finishedGoodsPlaceholder,
		ShippedViaGatePassToday:       shipped,
	}, nil
}

// DryProcessChart aggregates approved dry-process volume per process over the
// selected window. Unrecognized or missing timeframes fall back to daily.
func (s *DashboardService) DryProcessChart(ctx context.Context, timeframe string) ([]domain.ProcessVolume, error) {
	end := s.today()
	start := end
	switch domain.Timeframe(timeframe) {
	case domain.TimeframeWeekly:
		start = end.AddDate(0, 0, -6)
	case domain.TimeframeMonthly:
		start = end.AddDate(0, 0, -29)
	case domain.TimeframeDaily:
	default:
		// daily window
	}

	volumes, err := s.dashRepo.SumApprovedDryProcessByName(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load dry process chart: %w", err)
	}

	for i := range volumes {
		volumes[i].Name = humanizeProcessName(volumes[i].Name)
	}
	return volumes, nil
}

func (s *DashboardService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// humanizeProcessName turns a stored process identifier like HAND_SHINE into
// a display label like "Hand Shine".
func humanizeProcessName(name string) string {
	if name == "" {
		return "Unknown Process"
	}
	words := strings.Split(strings.ToLower(strings.ReplaceAll(name, "_", " ")), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
