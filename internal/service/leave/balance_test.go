package leave

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeBalance(t *testing.T) {
	t.Parallel()

	balance := ComputeBalance(decimal.NewFromInt(20), decimal.NewFromInt(5))

	assert.True(t, balance.Remaining.Equal(decimal.NewFromInt(15)))
	assert.True(t, balance.Allocation.Equal(decimal.NewFromInt(20)))
	assert.True(t, balance.AuthorisedDays.Equal(decimal.NewFromInt(5)))
}

func TestComputeBalance_HalfDays(t *testing.T) {
	t.Parallel()

	authorised, _ := decimal.NewFromString("2.5")
	balance := ComputeBalance(decimal.NewFromInt(20), authorised)

	want, _ := decimal.NewFromString("17.5")
	assert.True(t, balance.Remaining.Equal(want))
}

func TestBalance_Prospective(t *testing.T) {
	t.Parallel()

	balance := ComputeBalance(decimal.NewFromInt(20), decimal.NewFromInt(5))

	assert.True(t, balance.Prospective(3).Equal(decimal.NewFromInt(12)))
}

func TestBalance_Prospective_GoesNegative(t *testing.T) {
	t.Parallel()

	balance := ComputeBalance(decimal.NewFromInt(2), decimal.NewFromInt(0))

	// Overdrawing is allowed; the sign is the authoriser's signal.
	assert.True(t, balance.Prospective(5).Equal(decimal.NewFromInt(-3)))
}
