package domain_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/openbooks/openbooks/internal/domain"
)

func TestValidateAccountName(t *testing.T) {
	assert.NoError(t, domain.ValidateAccountName("Cash"))
	assert.NoError(t, domain.ValidateAccountName(strings.Repeat("a", 255)))

	assert.ErrorIs(t, domain.ValidateAccountName(""), domain.ErrInvalidAccountName)
	assert.ErrorIs(t, domain.ValidateAccountName("   "), domain.ErrInvalidAccountName)
	assert.ErrorIs(t, domain.ValidateAccountName(strings.Repeat("a", 256)), domain.ErrInvalidAccountName)
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, domain.ValidateAmount(decimal.RequireFromString("0.01")))
	assert.NoError(t, domain.ValidateAmount(decimal.RequireFromString(domain.MaxEntryAmount)))

	assert.ErrorIs(t, domain.ValidateAmount(decimal.Zero), domain.ErrInvalidAmount)
	assert.ErrorIs(t, domain.ValidateAmount(decimal.RequireFromString("-1")), domain.ErrInvalidAmount)

	over := decimal.RequireFromString(domain.MaxEntryAmount).Add(decimal.NewFromInt(1))
	assert.ErrorIs(t, domain.ValidateAmount(over), domain.ErrInvalidAmount)
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 50, 0},
		{"negative limit", -1, 0, 50, 0},
		{"clamped to max", 5000, 0, 1000, 0},
		{"negative offset", 10, -5, 10, 0},
		{"passthrough", 25, 100, 25, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := domain.ValidatePagination(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestPlanIsValid(t *testing.T) {
	assert.True(t, domain.PlanFree.IsValid())
	assert.True(t, domain.PlanPremium.IsValid())
	assert.False(t, domain.Plan("enterprise").IsValid())
}
