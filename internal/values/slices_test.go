package values_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/values"
)

func TestSlice(t *testing.T) {
	assert.Empty(t, values.Slice(nil))
	assert.Empty(t, values.Slice([]string(nil)))
	assert.Equal(t, []any{"a"}, values.Slice("a"))
	assert.Equal(t, []any{"a", "b"}, values.Slice([]string{"a", "b"}))
	assert.Equal(t, []any{1, 2}, values.Slice([2]int{1, 2}))
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"Main Street 1"}, values.StringSlice("Main Street 1"))
	assert.Equal(t, []string{"1", "2.5", "3"}, values.StringSlice([]any{1, 2.5, dec.NewFromInt(3)}))
	assert.Equal(t, []string{"a", "b"}, values.StringSlice([]any{"a", nil, "b"}))
	assert.Equal(t, []string{"10"}, values.StringSlice(10.0))
	assert.Empty(t, values.StringSlice(nil))
}

func TestAt(t *testing.T) {
	s := []string{"a", "b"}

	v, err := values.At(s, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = values.At(s, 2)
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)

	_, err = values.At(s, -1)
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
}

func TestMustAt_Panics(t *testing.T) {
	assert.Panics(t, func() {
		values.MustAt([]int{}, 0)
	})
	assert.Equal(t, 7, values.MustAt([]int{7}, 0))
}
