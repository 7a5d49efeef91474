package decimal

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of fraction digits used when numbers are
// turned into display strings
const DisplayPrecision int32 = 2

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// Null wraps d as a present optional value
func Null(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}

// NullFromFloat wraps v as a present optional value
func NullFromFloat(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

// NullFromString parses s into an optional value. An empty string is absent.
func NullFromString(s string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := FromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// FormatAmount renders a monetary value with at least two fraction digits
func FormatAmount(d decimal.Decimal) string {
	return formatMinPlaces(d, 2)
}

// FormatQuantity renders a quantity or measure, keeping all significant digits
func FormatQuantity(d decimal.Decimal) string {
	return formatMinPlaces(d, 0)
}

// FormatPercent renders a percentage with at least two fraction digits
func FormatPercent(d decimal.Decimal) string {
	return formatMinPlaces(d, 2)
}

func formatMinPlaces(d decimal.Decimal, places int32) string {
	s := d.String()
	frac := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac = len(s) - i - 1
	}
	if frac < int(places) {
		return d.StringFixed(places)
	}
	return s
}

// FormatFloat stringifies a float for display. Values that fit the display
// precision lose their trailing zeros ("1.0" becomes "1"); anything finer keeps
// its full precision.
func FormatFloat(f float64) string {
	d := decimal.NewFromFloat(f)
	if rounded := d.Round(DisplayPrecision); rounded.Equal(d) {
		return rounded.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
