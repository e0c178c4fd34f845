package kernel_test

import (
	"testing"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from minor units", func(t *testing.T) {
		m, err := kernel.NewMoney(1250)

		require.NoError(t, err)
		assert.Equal(t, int64(1250), m.MinorUnits())
		assert.InDelta(t, 12.50, m.Float(), 0.0001)
	})

	t.Run("should allow zero", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), m.MinorUnits())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromFloat(t *testing.T) {
	testCases := []struct {
		name     string
		input    float64
		expected int64
	}{
		{"whole amount", 10.0, 1000},
		{"fractional amount", 12.50, 1250},
		{"rounds up", 0.005, 1},
		{"rounds to nearest cent", 19.999, 2000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := kernel.MoneyFromFloat(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.MinorUnits())
		})
	}

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(-0.01)
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(5000)
		b, _ := kernel.NewMoney(3000)

		assert.Equal(t, int64(8000), a.Add(b).MinorUnits())
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		price, _ := kernel.NewMoney(5000)

		assert.Equal(t, int64(10000), price.Mul(2).MinorUnits())
	})

	t.Run("line item total matches snapshot arithmetic", func(t *testing.T) {
		// Two of item A at 50.00 plus one of item B at 30.00 totals 130.00.
		itemA, _ := kernel.NewMoney(5000)
		itemB, _ := kernel.NewMoney(3000)

		total := itemA.Mul(2).Add(itemB.Mul(1))
		assert.Equal(t, int64(13000), total.MinorUnits())
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value is valid", func(t *testing.T) {
		var m kernel.Money
		require.NoError(t, m.Validate())
	})

	t.Run("negative value is invalid", func(t *testing.T) {
		m := kernel.Money(-100)
		require.Error(t, m.Validate())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoney(100)
	b, _ := kernel.NewMoney(100)
	c, _ := kernel.NewMoney(200)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
