package kernel_test

import (
	"math"
	"testing"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("creates money rounded to cents", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(39.99)
		require.NoError(t, err)
		assert.Equal(t, int64(3999), m.Cents())
		assert.InDelta(t, 39.99, m.Float64(), 0.001)
	})

	t.Run("rounds to the nearest cent", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(10.006)
		require.NoError(t, err)
		assert.Equal(t, int64(1001), m.Cents())

		m, err = kernel.NewMoneyFromFloat(10.004)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), m.Cents())
	})

	t.Run("zero is valid", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-0.01)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects NaN and Inf", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(math.NaN())
		require.Error(t, err)

		_, err = kernel.NewMoneyFromFloat(math.Inf(1))
		require.Error(t, err)
	})
}

func TestMoney_WithinCentOf(t *testing.T) {
	base := kernel.MoneyFromCents(5000)

	testCases := []struct {
		name   string
		other  kernel.Money
		within bool
	}{
		{"equal amounts", kernel.MoneyFromCents(5000), true},
		{"one cent above", kernel.MoneyFromCents(5001), true},
		{"one cent below", kernel.MoneyFromCents(4999), true},
		{"two cents above", kernel.MoneyFromCents(5002), false},
		{"two cents below", kernel.MoneyFromCents(4998), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.within, base.WithinCentOf(tc.other))
			assert.Equal(t, tc.within, tc.other.WithinCentOf(base))
		})
	}
}

func TestMoney_Add(t *testing.T) {
	a := kernel.MoneyFromCents(10000)
	b := kernel.MoneyFromCents(5000)
	c := kernel.MoneyFromCents(2500)

	total := a.Add(b).Add(c)
	assert.Equal(t, int64(17500), total.Cents())
	assert.Equal(t, "175.00", total.String())
}

func TestMoney_IsEqual(t *testing.T) {
	assert.True(t, kernel.MoneyFromCents(100).IsEqual(kernel.MoneyFromCents(100)))
	assert.False(t, kernel.MoneyFromCents(100).IsEqual(kernel.MoneyFromCents(101)))
}
