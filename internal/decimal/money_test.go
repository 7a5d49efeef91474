package decimal_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/orderx/internal/decimal"
)

func TestFromString(t *testing.T) {
	d, err := decimal.FromString(" 123456.78 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("123456.78")))

	_, err = decimal.FromString("not-a-number")
	require.Error(t, err)
}

func TestNullFromString(t *testing.T) {
	n, err := decimal.NullFromString("")
	require.NoError(t, err)
	assert.False(t, n.Valid)

	n, err = decimal.NullFromString("0")
	require.NoError(t, err)
	assert.True(t, n.Valid)
	assert.True(t, n.Decimal.IsZero())

	_, err = decimal.NullFromString("abc")
	require.Error(t, err)
}

func TestNull(t *testing.T) {
	n := decimal.Null(dec.NewFromInt(5))
	assert.True(t, n.Valid)
	assert.True(t, n.Decimal.Equal(dec.NewFromInt(5)))

	f := decimal.NullFromFloat(2.5)
	assert.True(t, f.Valid)
	assert.Equal(t, "2.5", f.Decimal.String())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100", "100.00"},
		{"10.5", "10.50"},
		{"10.500", "10.50"},
		{"0.125", "0.125"},
		{"-3", "-3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, decimal.FormatAmount(dec.RequireFromString(tt.in)))
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "10", decimal.FormatQuantity(dec.RequireFromString("10.000")))
	assert.Equal(t, "2.5", decimal.FormatQuantity(dec.RequireFromString("2.5")))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "19.00", decimal.FormatPercent(dec.NewFromInt(19)))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1", decimal.FormatFloat(1.0))
	assert.Equal(t, "1.5", decimal.FormatFloat(1.50))
	assert.Equal(t, "1.25", decimal.FormatFloat(1.25))
	assert.Equal(t, "1.2345", decimal.FormatFloat(1.2345))
	assert.Equal(t, "-7", decimal.FormatFloat(-7))
}
