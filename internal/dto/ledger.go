package dto

import (
	"fmt"
	"time"

	"github.com/denimfab/denim_factory_app/internal/apperrors"
	"github.com/denimfab/denim_factory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dateLayout is the business-date format used throughout the API.
const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD business date.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}
	return d, nil
}

// CreateBulkInputRequest carries a bulk-input submission.
type CreateBulkInputRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	StyleNumber string          `json:"styleNumber" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,gt=0"`
	Supplier    domain.Supplier `json:"supplier" binding:"required,oneof=CIB G_FLOCK"`
}

// ToDomain maps the request to a ledger entry.
func (r CreateBulkInputRequest) ToDomain() (domain.BulkInput, error) {
	d, err := ParseDate(r.Date)
	if err != nil {
		return domain.BulkInput{}, err
	}
	return domain.BulkInput{
		EntryDate:   d,
		StyleNumber: r.StyleNumber,
		Quantity:    r.Quantity,
		Supplier:    r.Supplier,
	}, nil
}

// CreateDryProcessRequest carries a dry-process submission.
type CreateDryProcessRequest struct {
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	StyleNumber string `json:"styleNumber" binding:"required"`
	ProcessName string `json:"processName" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

func (r CreateDryProcessRequest) ToDomain() (domain.DryProcessEntry, error) {
	d, err := ParseDate(r.Date)
	if err != nil {
		return domain.DryProcessEntry{}, err
	}
	return domain.DryProcessEntry{
		EntryDate:   d,
		StyleNumber: r.StyleNumber,
		ProcessName: r.ProcessName,
		Quantity:    r.Quantity,
	}, nil
}

// CreateWashingRequest carries a washing submission.
type CreateWashingRequest struct {
	Date         string              `json:"date" binding:"required,datetime=2006-01-02"`
	StyleNumber  string              `json:"styleNumber" binding:"required"`
	WashCategory domain.WashCategory `json:"washCategory" binding:"required,oneof=BEFORE_WASH AFTER_WASH FINISH"`
	Quantity     int                 `json:"quantity" binding:"required,gt=0"`
}

func (r CreateWashingRequest) ToDomain() (domain.WashingEntry, error) {
	d, err := ParseDate(r.Date)
	if err != nil {
		return domain.WashingEntry{}, err
	}
	return domain.WashingEntry{
		EntryDate:    d,
		StyleNumber:  r.StyleNumber,
		WashCategory: r.WashCategory,
		Quantity:     r.Quantity,
	}, nil
}

// CreateSubContractRequest carries a sub-contract labor submission. The
// price and salary fields accept zero, so their non-negativity is checked in
// ToDomain rather than by binding tags.
type CreateSubContractRequest struct {
	Date              string          `json:"date" binding:"required,datetime=2006-01-02"`
	SubContractorName string          `json:"subContractorName" binding:"required"`
	StyleNumber       string          `json:"styleNumber" binding:"required"`
	ProcessName       string          `json:"processName" binding:"required"`
	Quantity          int             `json:"quantity" binding:"required,gt=0"`
	UnitPriceUsed     decimal.Decimal `json:"unitPriceUsed"`
	CalculatedSalary  decimal.Decimal `json:"calculatedSalary"`
}

func (r CreateSubContractRequest) ToDomain() (domain.SubContractEntry, error) {
	d, err := ParseDate(r.Date)
	if err != nil {
		return domain.SubContractEntry{}, err
	}
	if r.UnitPriceUsed.IsNegative() || r.CalculatedSalary.IsNegative() {
		return domain.SubContractEntry{}, fmt.Errorf("%w: unit price and calculated salary must be non-negative", apperrors.ErrValidation)
	}
	return domain.SubContractEntry{
		EntryDate:         d,
		SubContractorName: r.SubContractorName,
		StyleNumber:       r.StyleNumber,
		ProcessName:       r.ProcessName,
		Quantity:          r.Quantity,
		UnitPriceUsed:     r.UnitPriceUsed,
		CalculatedSalary:  r.CalculatedSalary,
	}, nil
}

// CreateGatePassRequest carries a gate-pass shipment submission.
type CreateGatePassRequest struct {
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	StyleNumber string `json:"styleNumber" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

func (r CreateGatePassRequest) ToDomain() (domain.GatePassEntry, error) {
	d, err := ParseDate(r.Date)
	if err != nil {
		return domain.GatePassEntry{}, err
	}
	return domain.GatePassEntry{
		EntryDate:   d,
		StyleNumber: r.StyleNumber,
		Destination: r.Destination,
		Quantity:    r.Quantity,
	}, nil
}

// ReportParams are the query parameters of every ledger report route.
type ReportParams struct {
	StartDate string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"required,datetime=2006-01-02"`
}
