package values

import (
	"fmt"
	"time"

	"github.com/rezonia/orderx/internal/model"
)

var dateLayouts = map[string]string{
	model.DateFormatYYMMDD:         "060102",
	model.DateFormatYYYYMMDD:       "20060102",
	model.DateFormatYYMMDDHHmm:     "0601021504",
	model.DateFormatYYMMDDHHmmss:   "060102150405",
	model.DateFormatYYYYMMDDHHmm:   "200601021504",
	model.DateFormatYYYYMMDDHHmmss: "20060102150405",
}

// DecodeDate decodes a digit string written in the given format qualifier.
// Unknown qualifiers fail with model.ErrUnknownDateFormat.
func DecodeDate(digits, format string) (time.Time, error) {
	layout, ok := dateLayouts[format]
	if !ok {
		return time.Time{}, fmt.Errorf("decode %q: %w %q", digits, model.ErrUnknownDateFormat, format)
	}
	t, err := time.ParseInLocation(layout, digits, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode %q as %s: %w", digits, format, err)
	}
	return t, nil
}

// EncodeDate renders t in format 102 (YYYYMMDD)
func EncodeDate(t time.Time) string {
	return t.Format(dateLayouts[model.DateFormatYYYYMMDD])
}

// DateTime creates a date node. The zero time is absent.
func (f *Factory) DateTime(t time.Time) *model.DateTime {
	if t.IsZero() {
		return nil
	}
	return &model.DateTime{Value: t, Format: model.DateFormatYYYYMMDD}
}

// DateTimeFromString decodes digits and creates a date node. Empty digits are
// absent; an unknown format is an error.
func (f *Factory) DateTimeFromString(digits, format string) (*model.DateTime, error) {
	if digits == "" {
		return nil, nil
	}
	t, err := DecodeDate(digits, format)
	if err != nil {
		return nil, err
	}
	return f.DateTime(t), nil
}

// FormattedDateTime creates a qdt date node
func (f *Factory) FormattedDateTime(t time.Time) *model.FormattedDateTime {
	if t.IsZero() {
		return nil
	}
	return &model.FormattedDateTime{Value: t, Format: model.DateFormatYYYYMMDD}
}

// Period creates a period node
func (f *Factory) Period(start, end time.Time) *model.Period {
	p := &model.Period{
		StartDateTime: f.DateTime(start),
		EndDateTime:   f.DateTime(end),
	}
	if p.StartDateTime == nil && p.EndDateTime == nil {
		return nil
	}
	return p
}

// Event creates a supply chain event occurring at t
func (f *Factory) Event(t time.Time) *model.SupplyChainEvent {
	dt := f.DateTime(t)
	if dt == nil {
		return nil
	}
	return &model.SupplyChainEvent{OccurrenceDateTime: dt}
}

// PeriodEvent creates a supply chain event occurring during a period
func (f *Factory) PeriodEvent(start, end time.Time) *model.SupplyChainEvent {
	p := f.Period(start, end)
	if p == nil {
		return nil
	}
	return &model.SupplyChainEvent{OccurrencePeriod: p}
}
