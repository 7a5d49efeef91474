// Package builder is the stateful assembly API for Order-X documents.
//
// A Builder owns one order graph for one profile. Every mutator turns its
// primitive arguments into value objects through the values factory and
// attaches the result only when it is not nil. Setters for branches the
// active profile does not carry are accepted and do nothing.
//
// Line items are addressed through a cursor that is either closed or open on
// the most recently added item. Position mutators called while the cursor is
// closed panic with a *model.UsageError. A Builder is not safe for concurrent
// use.
package builder

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/orderxml"
	"github.com/rezonia/orderx/internal/profile"
	"github.com/rezonia/orderx/internal/values"
)

// Input structs shared with the values factory
type (
	AddressInput         = values.AddressInput
	ContactInput         = values.ContactInput
	DeliveryTermsInput   = values.DeliveryTermsInput
	ReferenceInput       = values.ReferenceInput
	TaxInput             = values.TaxInput
	AllowanceChargeInput = values.AllowanceChargeInput
	SummationInput       = values.SummationInput
	ProductInput         = values.ProductInput
	CharacteristicInput  = values.CharacteristicInput
	PackagingInput       = values.PackagingInput
)

type cursorState int

const (
	noPosition cursorState = iota
	positionOpen
)

type cursor struct {
	state cursorState
	index int
}

// Builder assembles one order document
type Builder struct {
	values *values.Factory
	def    profile.Definition
	order  *model.Order
	cursor cursor
}

// New creates a builder for p with the document context and the three header
// branches in place
func New(p profile.Profile) *Builder {
	f := values.New(p)
	def := f.Definition()

	return &Builder{
		values: f,
		def:    def,
		order: &model.Order{
			Context: model.ExchangedDocumentContext{
				TestIndicator: f.Indicator(false),
				Guideline:     &model.DocumentContextParameter{ID: f.ID(def.GuidelineID, "")},
			},
			Transaction: model.SupplyChainTradeTransaction{
				Agreement:  &model.HeaderTradeAgreement{},
				Delivery:   &model.HeaderTradeDelivery{},
				Settlement: &model.HeaderTradeSettlement{},
			},
		},
	}
}

// Profile returns the profile of the document
func (b *Builder) Profile() profile.Profile {
	return b.def.Profile
}

// Definition returns the profile definition of the document
func (b *Builder) Definition() profile.Definition {
	return b.def
}

// Order returns the document graph
func (b *Builder) Order() *model.Order {
	return b.order
}

// Factory returns the value factory bound to the document profile
func (b *Builder) Factory() *values.Factory {
	return b.values
}

// DocumentTypeName returns the display name of the document type code.
// Unknown codes read as "Order".
func (b *Builder) DocumentTypeName() string {
	return model.DocumentTypeName(model.CodeValue(b.order.Document.TypeCode))
}

// XML serializes the document
func (b *Builder) XML() ([]byte, error) {
	return orderxml.Marshal(b.order, b.def)
}

// WriteXML serializes the document to w
func (b *Builder) WriteXML(w io.Writer) error {
	data, err := b.XML()
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

// WriteFile serializes the document to path
func (b *Builder) WriteFile(path string) error {
	data, err := b.XML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (b *Builder) supports(f profile.Field) bool {
	return b.def.Has(f)
}

func appendIf[T any](s []*T, v *T) []*T {
	if v == nil {
		return s
	}
	return append(s, v)
}

// replaceWith implements set on repeatable fields: the sequence becomes v.
// An empty v leaves the sequence untouched.
func replaceWith[T any](s []*T, v *T) []*T {
	if v == nil {
		return s
	}
	return []*T{v}
}
