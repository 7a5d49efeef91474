package values_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/profile"
	"github.com/rezonia/orderx/internal/values"
)

func TestDecodeDate(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		format string
		want   time.Time
	}{
		{"101 short date", "221231", model.DateFormatYYMMDD, time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"102 date", "20221231", model.DateFormatYYYYMMDD, time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"201 short minutes", "2212311530", model.DateFormatYYMMDDHHmm, time.Date(2022, 12, 31, 15, 30, 0, 0, time.UTC)},
		{"202 short seconds", "221231153045", model.DateFormatYYMMDDHHmmss, time.Date(2022, 12, 31, 15, 30, 45, 0, time.UTC)},
		{"203 minutes", "202212311530", model.DateFormatYYYYMMDDHHmm, time.Date(2022, 12, 31, 15, 30, 0, 0, time.UTC)},
		{"204 seconds", "20221231153045", model.DateFormatYYYYMMDDHHmmss, time.Date(2022, 12, 31, 15, 30, 45, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := values.DecodeDate(tt.digits, tt.format)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestDecodeDate_UnknownFormat(t *testing.T) {
	_, err := values.DecodeDate("20221231", "999")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownDateFormat)
}

func TestDecodeDate_Malformed(t *testing.T) {
	_, err := values.DecodeDate("2022-12-31", model.DateFormatYYYYMMDD)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrUnknownDateFormat)
}

func TestEncodeDate(t *testing.T) {
	d := time.Date(2022, 12, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "20221231", values.EncodeDate(d))
}

func TestDateTimeFromString(t *testing.T) {
	f := values.New(profile.Basic)

	dt, err := f.DateTimeFromString("", model.DateFormatYYYYMMDD)
	require.NoError(t, err)
	assert.Nil(t, dt)

	dt, err = f.DateTimeFromString("20221231", model.DateFormatYYYYMMDD)
	require.NoError(t, err)
	require.NotNil(t, dt)
	assert.Equal(t, "20221231", values.EncodeDate(dt.Value))

	_, err = f.DateTimeFromString("20221231", "")
	assert.ErrorIs(t, err, model.ErrUnknownDateFormat)
}
