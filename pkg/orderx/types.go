// Package orderx provides a public API for creating Order-X documents.
//
// This package exposes the builder for UN/CEFACT SCRDM CI order messages in
// the BASIC, COMFORT and EXTENDED profiles, the XML reader, and the packager
// that embeds an order into a hybrid PDF/A-3 file.
//
// Example usage:
//
//	b := orderx.NewBuilder(orderx.Comfort)
//	b.SetDocumentInformation("PO123456789", orderx.DocumentTypeOrder, issued, "EUR").
//	    SetParty(orderx.Seller, "SELLER_NAME", "", "").
//	    SetParty(orderx.Buyer, "BUYER_NAME", "", "")
//	b.AddNewPosition("1").SetPositionProduct(orderx.ProductInput{Name: "Gear"})
//	xml, err := b.XML()
package orderx

import (
	"github.com/rezonia/orderx/internal/builder"
	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/orderxml"
	"github.com/rezonia/orderx/internal/packager"
	"github.com/rezonia/orderx/internal/profile"
)

// Re-export core types for public API
type (
	Profile           = profile.Profile
	ProfileDefinition = profile.Definition
	Builder           = builder.Builder
	Order             = model.Order
	LineItem          = model.LineItem
	TradeParty        = model.TradeParty
	Document          = orderxml.Document
	Summary           = orderxml.Summary
	PartyRole         = builder.PartyRole
	ReferenceKind     = builder.ReferenceKind
	LineReferenceKind = builder.LineReferenceKind
	Packager          = packager.Packager
	Embedder          = packager.Embedder
	EmbedJob          = packager.Job
	Attachment        = packager.Attachment
	Metadata          = packager.Metadata
	OrderInfo         = packager.OrderInfo
	Source            = packager.Source
)

// Re-export builder inputs
type (
	AddressInput         = builder.AddressInput
	ContactInput         = builder.ContactInput
	DeliveryTermsInput   = builder.DeliveryTermsInput
	ReferenceInput       = builder.ReferenceInput
	TaxInput             = builder.TaxInput
	AllowanceChargeInput = builder.AllowanceChargeInput
	SummationInput       = builder.SummationInput
	ProductInput         = builder.ProductInput
	CharacteristicInput  = builder.CharacteristicInput
	PackagingInput       = builder.PackagingInput
)

// Re-export profiles
const (
	Basic    = profile.Basic
	Comfort  = profile.Comfort
	Extended = profile.Extended
)

// Re-export document type codes
const (
	DocumentTypeOrder         = model.DocumentTypeOrder
	DocumentTypeOrderChange   = model.DocumentTypeOrderChange
	DocumentTypeOrderResponse = model.DocumentTypeOrderResponse
)

// Re-export party roles
const (
	Seller             = builder.Seller
	Buyer              = builder.Buyer
	BuyerRequisitioner = builder.BuyerRequisitioner
	ProductEndUser     = builder.ProductEndUser
	ShipTo             = builder.ShipTo
	ShipFrom           = builder.ShipFrom
	Invoicee           = builder.Invoicee
)

// Re-export header reference kinds
const (
	SellerOrderReference           = builder.SellerOrderReference
	BuyerOrderReference            = builder.BuyerOrderReference
	QuotationReference             = builder.QuotationReference
	ContractReference              = builder.ContractReference
	RequisitionReference           = builder.RequisitionReference
	BlanketOrderReference          = builder.BlanketOrderReference
	PreviousOrderReference         = builder.PreviousOrderReference
	PreviousOrderChangeReference   = builder.PreviousOrderChangeReference
	PreviousOrderResponseReference = builder.PreviousOrderResponseReference
	CatalogueReference             = builder.CatalogueReference
)

// Re-export line reference kinds
const (
	LineBuyerOrderReference   = builder.LineBuyerOrderReference
	LineQuotationReference    = builder.LineQuotationReference
	LineContractReference     = builder.LineContractReference
	LineBlanketOrderReference = builder.LineBlanketOrderReference
	LineCatalogueReference    = builder.LineCatalogueReference
)

// AttachmentName is the file name of the embedded order XML
const AttachmentName = orderxml.AttachmentName

// Re-export error types
type (
	ParseError      = model.ParseError
	ValidationError = model.ValidationError
	ExtractionError = model.ExtractionError
	UsageError      = model.UsageError
)

// Re-export sentinel errors
var (
	ErrNoOpenPosition    = model.ErrNoOpenPosition
	ErrIndexOutOfRange   = model.ErrIndexOutOfRange
	ErrUnknownDateFormat = model.ErrUnknownDateFormat
	ErrMissingField      = model.ErrMissingField
)
