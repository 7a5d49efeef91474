// Package values turns primitive inputs into Order-X value objects.
//
// Every constructor follows one rule: empty in, nil out. A nil result means
// "no node" and is never an error. Composite constructors return nil only when
// all of their leaves are empty; each leaf follows its own rule otherwise.
package values

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/profile"
)

// Factory builds value objects for one profile
type Factory struct {
	def profile.Definition
}

// New creates a factory for p
func New(p profile.Profile) *Factory {
	return &Factory{def: profile.Lookup(p)}
}

// Profile returns the active profile
func (f *Factory) Profile() profile.Profile {
	return f.def.Profile
}

// Definition returns the active profile definition
func (f *Factory) Definition() profile.Definition {
	return f.def
}

// Supports reports whether the active profile exposes field
func (f *Factory) Supports(field profile.Field) bool {
	return f.def.Has(field)
}

// ID creates an identifier. The scheme alone never produces a node.
func (f *Factory) ID(value, scheme string) *model.ID {
	if value == "" {
		return nil
	}
	return &model.ID{Value: value, SchemeID: scheme}
}

// Text creates a text node
func (f *Factory) Text(value string) *model.Text {
	if value == "" {
		return nil
	}
	return &model.Text{Value: value}
}

// Texts creates one text node per non-empty value
func (f *Factory) Texts(values ...string) []*model.Text {
	var out []*model.Text
	for _, v := range values {
		if t := f.Text(v); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Code creates a code node
func (f *Factory) Code(value string) *model.Code {
	return f.CodeWithList(value, "", "")
}

// CodeWithList creates a code node with list qualifiers
func (f *Factory) CodeWithList(value, listID, listVersionID string) *model.Code {
	if value == "" {
		return nil
	}
	return &model.Code{Value: value, ListID: listID, ListVersionID: listVersionID}
}

// Indicator creates an indicator node. It is never nil: false is a value.
func (f *Factory) Indicator(v bool) *model.Indicator {
	return &model.Indicator{Value: v}
}

// OptionalIndicator creates an indicator node, nil only when v is nil
func (f *Factory) OptionalIndicator(v *bool) *model.Indicator {
	if v == nil {
		return nil
	}
	return f.Indicator(*v)
}

// Amount creates an amount node. The currency is never guessed.
func (f *Factory) Amount(v decimal.NullDecimal, currency string) *model.Amount {
	if !v.Valid {
		return nil
	}
	return &model.Amount{Value: v.Decimal, CurrencyID: currency}
}

// Quantity creates a quantity node
func (f *Factory) Quantity(v decimal.NullDecimal, unit string) *model.Quantity {
	if !v.Valid {
		return nil
	}
	return &model.Quantity{Value: v.Decimal, UnitCode: unit}
}

// Measure creates a measure node
func (f *Factory) Measure(v decimal.NullDecimal, unit string) *model.Measure {
	if !v.Valid {
		return nil
	}
	return &model.Measure{Value: v.Decimal, UnitCode: unit}
}

// Percent creates a percent node
func (f *Factory) Percent(v decimal.NullDecimal) *model.Percent {
	if !v.Valid {
		return nil
	}
	return &model.Percent{Value: v.Decimal}
}

// BinaryObject creates an attachment node
func (f *Factory) BinaryObject(data []byte, mimeCode, filename string) *model.BinaryObject {
	if len(data) == 0 {
		return nil
	}
	return &model.BinaryObject{Data: data, MimeCode: mimeCode, Filename: filename}
}
