package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Date/time format qualifiers (UNTDID 2379)
const (
	DateFormatYYMMDD         = "101"
	DateFormatYYYYMMDD       = "102"
	DateFormatYYMMDDHHmm     = "201"
	DateFormatYYMMDDHHmmss   = "202"
	DateFormatYYYYMMDDHHmm   = "203"
	DateFormatYYYYMMDDHHmmss = "204"
)

// ID is an identifier with an optional scheme
type ID struct {
	Value    string `json:"value"`
	SchemeID string `json:"scheme_id,omitempty"`
}

// Text is a plain text value
type Text struct {
	Value string `json:"value"`
}

// Code is a code value with optional list qualifiers
type Code struct {
	Value         string `json:"value"`
	ListID        string `json:"list_id,omitempty"`
	ListVersionID string `json:"list_version_id,omitempty"`
}

// Indicator is a boolean flag node
type Indicator struct {
	Value bool `json:"value"`
}

// Amount is a monetary value
type Amount struct {
	Value      decimal.Decimal `json:"value"`
	CurrencyID string          `json:"currency_id,omitempty"`
}

// Quantity is a counted value with a unit code
type Quantity struct {
	Value    decimal.Decimal `json:"value"`
	UnitCode string          `json:"unit_code,omitempty"`
}

// Measure is a measured value with a unit code
type Measure struct {
	Value    decimal.Decimal `json:"value"`
	UnitCode string          `json:"unit_code,omitempty"`
}

// Percent is a percentage value
type Percent struct {
	Value decimal.Decimal `json:"value"`
}

// DateTime is a udt:DateTimeString value
type DateTime struct {
	Value  time.Time `json:"value"`
	Format string    `json:"format"`
}

// FormattedDateTime is a qdt:DateTimeString value used by referenced documents
type FormattedDateTime struct {
	Value  time.Time `json:"value"`
	Format string    `json:"format"`
}

// BinaryObject is an attached binary payload
type BinaryObject struct {
	Data     []byte `json:"data"`
	MimeCode string `json:"mime_code"`
	Filename string `json:"filename"`
}

// IDValue returns the value of id or "" for a nil id
func IDValue(id *ID) string {
	if id == nil {
		return ""
	}
	return id.Value
}

// TextValue returns the value of t or "" for a nil text
func TextValue(t *Text) string {
	if t == nil {
		return ""
	}
	return t.Value
}

// CodeValue returns the value of c or "" for a nil code
func CodeValue(c *Code) string {
	if c == nil {
		return ""
	}
	return c.Value
}
