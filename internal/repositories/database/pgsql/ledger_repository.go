package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/denimfab/denim_factory_app/internal/apperrors"
	"github.com/denimfab/denim_factory_app/internal/core/domain"
	portsrepo "github.com/denimfab/denim_factory_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// tableSpec parameterizes the generic ledger repository with everything that
// differs between the five production ledgers: the table name, the columns
// submitted by data-entry staff, and how to pull their values out of an entry.
type tableSpec[T any] struct {
	table        string
	entryColumns []string
	entryValues  func(*T) []any
}

// PgxLedgerRepository implements the shared approval-workflow storage for one
// ledger table. Scanning relies on pgx struct mapping, so the entry type's db
// tags must mirror the table's column names.
type PgxLedgerRepository[T any] struct {
	db   *pgxpool.Pool
	spec tableSpec[T]
}

var _ portsrepo.LedgerRepository[domain.BulkInput] = (*PgxLedgerRepository[domain.BulkInput])(nil)

func (r *PgxLedgerRepository[T]) InsertEntry(ctx context.Context, entry T, enteredBy int64) (*T, error) {
	cols := append(append([]string{}, r.spec.entryColumns...), "status", "entered_by_user_id", "entry_timestamp")
	args := append(r.spec.entryValues(&entry), domain.StatusPending, enteredBy)

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s, NOW())
		RETURNING *;
	`, r.spec.table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", r.spec.table, mapPgError(err))
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", r.spec.table, mapPgError(err))
	}
	return &created, nil
}

func (r *PgxLedgerRepository[T]) FindPendingEntries(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`
		SELECT e.*, u.username AS entered_by_username
		FROM %s e
		JOIN users u ON e.entered_by_user_id = u.id
		WHERE e.status = $1
		ORDER BY e.entry_timestamp DESC;
	`, r.spec.table)

	rows, err := r.db.Query(ctx, query, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending %s rows: %w", r.spec.table, err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan pending %s rows: %w", r.spec.table, err)
	}
	return entries, nil
}

func (r *PgxLedgerRepository[T]) ResolveEntry(ctx context.Context, entryID int64, adminID int64, status domain.ApprovalStatus) (*T, error) {
	// The status guard in the WHERE clause makes resolution safe under
	// concurrent attempts: only one resolver's UPDATE matches the row.
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1,
		    approved_by_user_id = $2,
		    approval_timestamp = NOW()
		WHERE id = $3 AND status = $4
		RETURNING *;
	`, r.spec.table)

	rows, err := r.db.Query(ctx, query, status, adminID, entryID, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s entry %d: %w", r.spec.table, entryID, err)
	}
	resolved, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: pending entry not found or already processed", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve %s entry %d: %w", r.spec.table, entryID, err)
	}
	return &resolved, nil
}

func (r *PgxLedgerRepository[T]) FindApprovedEntriesInRange(ctx context.Context, startDate, endDate time.Time) ([]T, error) {
	query := fmt.Sprintf(`
		SELECT e.*,
		       u_entered.username AS entered_by_username,
		       u_approved.username AS approved_by_username
		FROM %s e
		JOIN users u_entered ON e.entered_by_user_id = u_entered.id
		LEFT JOIN users u_approved ON e.approved_by_user_id = u_approved.id
		WHERE e.status = $1
		  AND e.entry_date >= $2
		  AND e.entry_date <= $3
		ORDER BY e.entry_date DESC, e.id DESC;
	`, r.spec.table)

	rows, err := r.db.Query(ctx, query, domain.StatusApproved, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved %s rows: %w", r.spec.table, err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan approved %s rows: %w", r.spec.table, err)
	}
	return entries, nil
}

// NewBulkInputRepository returns the ledger repository backed by bulk_inputs.
func NewBulkInputRepository(db *pgxpool.Pool) portsrepo.LedgerRepository[domain.BulkInput] {
	return &PgxLedgerRepository[domain.BulkInput]{db: db, spec: tableSpec[domain.BulkInput]{
		table:        "bulk_inputs",
		entryColumns: []string{"entry_date", "style_number", "quantity", "supplier"},
		entryValues: func(e *domain.BulkInput) []any {
			return []any{e.EntryDate, e.StyleNumber, e.Quantity, e.Supplier}
		},
	}}
}

// NewDryProcessRepository returns the ledger repository backed by dry_process_entries.
func NewDryProcessRepository(db *pgxpool.Pool) portsrepo.LedgerRepository[domain.DryProcessEntry] {
	return &PgxLedgerRepository[domain.DryProcessEntry]{db: db, spec: tableSpec[domain.DryProcessEntry]{
		table:        "dry_process_entries",
		entryColumns: []string{"entry_date", "style_number", "process_name", "quantity"},
		entryValues: func(e *domain.DryProcessEntry) []any {
			return []any{e.EntryDate, e.StyleNumber, e.ProcessName, e.Quantity}
		},
	}}
}

// NewWashingRepository returns the ledger repository backed by washing_entries.
func NewWashingRepository(db *pgxpool.Pool) portsrepo.LedgerRepository[domain.WashingEntry] {
	return &PgxLedgerRepository[domain.WashingEntry]{db: db, spec: tableSpec[domain.WashingEntry]{
		table:        "washing_entries",
		entryColumns: []string{"entry_date", "style_number", "wash_category", "quantity"},
		entryValues: func(e *domain.WashingEntry) []any {
			return []any{e.EntryDate, e.StyleNumber, e.WashCategory, e.Quantity}
		},
	}}
}

// NewSubContractRepository returns the ledger repository backed by sub_contract_entries.
func NewSubContractRepository(db *pgxpool.Pool) portsrepo.LedgerRepository[domain.SubContractEntry] {
	return &PgxLedgerRepository[domain.SubContractEntry]{db: db, spec: tableSpec[domain.SubContractEntry]{
		table:        "sub_contract_entries",
		entryColumns: []string{"entry_date", "sub_contractor_name", "style_number", "process_name", "quantity", "unit_price_used", "calculated_salary"},
		entryValues: func(e *domain.SubContractEntry) []any {
			return []any{e.EntryDate, e.SubContractorName, e.StyleNumber, e.ProcessName, e.Quantity, e.UnitPriceUsed, e.CalculatedSalary}
		},
	}}
}

// NewGatePassRepository returns the ledger repository backed by gate_pass_entries.
func NewGatePassRepository(db *pgxpool.Pool) portsrepo.LedgerRepository[domain.GatePassEntry] {
	return &PgxLedgerRepository[domain.GatePassEntry]{db: db, spec: tableSpec[domain.GatePassEntry]{
		table:        "gate_pass_entries",
		entryColumns: []string{"entry_date", "style_number", "destination", "quantity"},
		entryValues: func(e *domain.GatePassEntry) []any {
			return []any{e.EntryDate, e.StyleNumber, e.Destination, e.Quantity}
		},
	}}
}
