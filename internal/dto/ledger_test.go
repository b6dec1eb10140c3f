package dto_test

import (
	"testing"
	"time"

	"github.com/denimfab/denim_factory_app/internal/apperrors"
	"github.com/denimfab/denim_factory_app/internal/core/domain"
	"github.com/denimfab/denim_factory_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, err := dto.ParseDate("2024-05-10")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = dto.ParseDate("10/05/2024")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = dto.ParseDate("2024-13-40")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateBulkInputRequest_ToDomain(t *testing.T) {
	req := dto.CreateBulkInputRequest{
		Date:        "2024-05-10",
		StyleNumber: "STY-1001",
		Quantity:    250,
		Supplier:    domain.SupplierGFlock,
	}

	entry, err := req.ToDomain()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), entry.EntryDate)
	assert.Equal(t, "STY-1001", entry.StyleNumber)
	assert.Equal(t, 250, entry.Quantity)
	assert.Equal(t, domain.SupplierGFlock, entry.Supplier)

	req.Date = "not-a-date"
	_, err = req.ToDomain()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateSubContractRequest_ToDomain(t *testing.T) {
	tests := []struct {
		name    string
		price   decimal.Decimal
		salary  decimal.Decimal
		wantErr bool
	}{
		{
			name:   "positive price and salary",
			price:  decimal.NewFromFloat(12.50),
			salary: decimal.NewFromFloat(3125.00),
		},
		{
			name:   "zero price and salary allowed",
			price:  decimal.Zero,
			salary: decimal.Zero,
		},
		{
			name:    "negative price rejected",
			price:   decimal.NewFromFloat(-0.01),
			salary:  decimal.Zero,
			wantErr: true,
		},
		{
			name:    "negative salary rejected",
			price:   decimal.Zero,
			salary:  decimal.NewFromFloat(-100),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateSubContractRequest{
				Date:              "2024-05-10",
				SubContractorName: "Kumar Works",
				StyleNumber:       "STY-1001",
				ProcessName:       "GRINDING",
				Quantity:          250,
				UnitPriceUsed:     tt.price,
				CalculatedSalary:  tt.salary,
			}

			entry, err := req.ToDomain()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.True(t, entry.UnitPriceUsed.Equal(tt.price))
			assert.True(t, entry.CalculatedSalary.Equal(tt.salary))
		})
	}
}
