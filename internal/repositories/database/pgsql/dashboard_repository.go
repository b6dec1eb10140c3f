package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/denimfab/denim_factory_app/internal/core/domain"
	portsrepo "github.com/denimfab/denim_factory_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDashboardRepository struct {
	db *pgxpool.Pool
}

// NewDashboardRepository creates the pgx-backed dashboard rollup repository.
func NewDashboardRepository(db *pgxpool.Pool) portsrepo.DashboardRepository {
	return &PgxDashboardRepository{db: db}
}

var _ portsrepo.DashboardRepository = (*PgxDashboardRepository)(nil)

// CountBulkInputsOn counts all bulk-input submissions (any status) for a day.
func (r *PgxDashboardRepository) CountBulkInputsOn(ctx context.Context, day time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM bulk_inputs WHERE entry_date = $1;`
	var count int64
	if err := r.db.QueryRow(ctx, query, day).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bulk inputs: %w", err)
	}
	return count, nil
}

// SumFinishedWashingOn sums approved FINISH washing quantities for a day.
func (r *PgxDashboardRepository) SumFinishedWashingOn(ctx context.Context, day time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM washing_entries
		WHERE entry_date = $1 AND status = $2 AND wash_category = $3;
	`
	var total int64
	if err := r.db.QueryRow(ctx, query, day, domain.StatusApproved, domain.WashFinish).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum finished washing quantities: %w", err)
	}
	return total, nil
}

// SumShippedOn sums approved gate-pass quantities for a day.
func (r *PgxDashboardRepository) SumShippedOn(ctx context.Context, day time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM gate_pass_entries
		WHERE entry_date = $1 AND status = $2;
	`
	var total int64
	if err := r.db.QueryRow(ctx, query, day, domain.StatusApproved).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum shipped quantities: %w", err)
	}
	return total, nil
}

// SumApprovedDryProcessByName groups approved dry-process quantities by
// process name over the window, largest totals first.
func (r *PgxDashboardRepository) SumApprovedDryProcessByName(ctx context.Context, startDate, endDate time.Time) ([]domain.ProcessVolume, error) {
	query := `
		SELECT process_name AS name,
		       SUM(quantity) AS processed
		FROM dry_process_entries
		WHERE status = $1
		  AND entry_date >= $2
		  AND entry_date <= $3
		GROUP BY process_name
		ORDER BY SUM(quantity) DESC;
	`
	rows, err := r.db.Query(ctx, query, domain.StatusApproved, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query dry process chart data: %w", err)
	}
	volumes, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ProcessVolume])
	if err != nil {
		return nil, fmt.Errorf("failed to scan dry process chart rows: %w", err)
	}
	return volumes, nil
}
