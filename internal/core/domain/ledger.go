package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalStatus is the lifecycle state of a ledger entry. An entry starts
// PENDING and transitions at most once, to APPROVED or REJECTED.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

// Supplier is the fixed set of bulk-input suppliers.
type Supplier string

const (
	SupplierCIB    Supplier = "CIB"
	SupplierGFlock Supplier = "G_FLOCK"
)

// WashCategory is the fixed set of washing stages.
type WashCategory string

const (
	WashBefore WashCategory = "BEFORE_WASH"
	WashAfter  WashCategory = "AFTER_WASH"
	WashFinish WashCategory = "FINISH"
)

// ApprovalFields carries the submission and resolution audit data shared by
// every ledger entry. ApprovedBy and ApprovalTimestamp are set iff the entry
// is no longer PENDING. The username fields are populated only by queries
// that join the users table.
type ApprovalFields struct {
	Status             ApprovalStatus `db:"status" json:"status"`
	EnteredBy          int64          `db:"entered_by_user_id" json:"enteredByUserID"`
	EnteredByUsername  string         `db:"entered_by_username" json:"enteredByUsername,omitempty"`
	EntryTimestamp     time.Time      `db:"entry_timestamp" json:"entryTimestamp"`
	ApprovedBy         *int64         `db:"approved_by_user_id" json:"approvedByUserID,omitempty"`
	ApprovedByUsername *string        `db:"approved_by_username" json:"approvedByUsername,omitempty"`
	ApprovalTimestamp  *time.Time     `db:"approval_timestamp" json:"approvalTimestamp,omitempty"`
}

// BulkInput records a receipt of bulk garments from a supplier.
type BulkInput struct {
	ID          int64     `db:"id" json:"id"`
	EntryDate   time.Time `db:"entry_date" json:"entryDate"`
	StyleNumber string    `db:"style_number" json:"styleNumber"`
	Quantity    int       `db:"quantity" json:"quantity"`
	Supplier    Supplier  `db:"supplier" json:"supplier"`
	ApprovalFields
}

// DryProcessEntry records units passing through a dry process (hand shine,
// whisker, etc).
type DryProcessEntry struct {
	ID          int64     `db:"id" json:"id"`
	EntryDate   time.Time `db:"entry_date" json:"entryDate"`
	StyleNumber string    `db:"style_number" json:"styleNumber"`
	ProcessName string    `db:"process_name" json:"processName"`
	Quantity    int       `db:"quantity" json:"quantity"`
	ApprovalFields
}

// WashingEntry records units at a washing stage.
type WashingEntry struct {
	ID           int64        `db:"id" json:"id"`
	EntryDate    time.Time    `db:"entry_date" json:"entryDate"`
	StyleNumber  string       `db:"style_number" json:"styleNumber"`
	WashCategory WashCategory `db:"wash_category" json:"washCategory"`
	Quantity     int          `db:"quantity" json:"quantity"`
	ApprovalFields
}

// SubContractEntry records work sent to an external sub-contractor along
// with the agreed unit price and the resulting salary.
type SubContractEntry struct {
	ID                int64           `db:"id" json:"id"`
	EntryDate         time.Time       `db:"entry_date" json:"entryDate"`
	SubContractorName string          `db:"sub_contractor_name" json:"subContractorName"`
	StyleNumber       string          `db:"style_number" json:"styleNumber"`
	ProcessName       string          `db:"process_name" json:"processName"`
	Quantity          int             `db:"quantity" json:"quantity"`
	UnitPriceUsed     decimal.Decimal `db:"unit_price_used" json:"unitPriceUsed"`
	CalculatedSalary  decimal.Decimal `db:"calculated_salary" json:"calculatedSalary"`
	ApprovalFields
}

// GatePassEntry records finished goods leaving the factory gate.
type GatePassEntry struct {
	ID          int64     `db:"id" json:"id"`
	EntryDate   time.Time `db:"entry_date" json:"entryDate"`
	StyleNumber string    `db:"style_number" json:"styleNumber"`
	Destination string    `db:"destination" json:"destination"`
	Quantity    int       `db:"quantity" json:"quantity"`
	ApprovalFields
}
