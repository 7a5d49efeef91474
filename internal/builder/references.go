package builder

import (
	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/profile"
)

// ReferenceKind selects a single-valued header document reference
type ReferenceKind int

const (
	SellerOrderReference ReferenceKind = iota
	BuyerOrderReference
	QuotationReference
	ContractReference
	RequisitionReference
	BlanketOrderReference
	PreviousOrderReference
	PreviousOrderChangeReference
	PreviousOrderResponseReference
	CatalogueReference
)

var referenceKindNames = map[ReferenceKind]string{
	SellerOrderReference:           "seller_order",
	BuyerOrderReference:            "buyer_order",
	QuotationReference:             "quotation",
	ContractReference:              "contract",
	RequisitionReference:           "requisition",
	BlanketOrderReference:          "blanket_order",
	PreviousOrderReference:         "previous_order",
	PreviousOrderChangeReference:   "previous_order_change",
	PreviousOrderResponseReference: "previous_order_response",
	CatalogueReference:             "catalogue",
}

func (k ReferenceKind) String() string {
	if s, ok := referenceKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseReferenceKind resolves a reference kind from its name
func ParseReferenceKind(s string) (ReferenceKind, bool) {
	for k, name := range referenceKindNames {
		if name == s {
			return k, true
		}
	}
	return SellerOrderReference, false
}

func (b *Builder) referenceSlot(kind ReferenceKind) **model.ReferencedDocument {
	a := b.order.Transaction.Agreement
	switch kind {
	case SellerOrderReference:
		return &a.SellerOrderReferencedDocument
	case BuyerOrderReference:
		return &a.BuyerOrderReferencedDocument
	case QuotationReference:
		if b.supports(profile.FieldQuotationReference) {
			return &a.QuotationReferencedDocument
		}
	case ContractReference:
		if b.supports(profile.FieldContractReference) {
			return &a.ContractReferencedDocument
		}
	case RequisitionReference:
		if b.supports(profile.FieldRequisitionReference) {
			return &a.RequisitionReferencedDocument
		}
	case BlanketOrderReference:
		if b.supports(profile.FieldBlanketOrderReference) {
			return &a.BlanketOrderReferencedDocument
		}
	case PreviousOrderReference:
		if b.supports(profile.FieldPreviousOrderReference) {
			return &a.PreviousOrderReferencedDocument
		}
	case PreviousOrderChangeReference:
		if b.supports(profile.FieldPreviousOrderChangeReference) {
			return &a.PreviousOrderChangeReferencedDocument
		}
	case PreviousOrderResponseReference:
		if b.supports(profile.FieldPreviousOrderResponseReference) {
			return &a.PreviousOrderResponseReferencedDocument
		}
	case CatalogueReference:
		if b.supports(profile.FieldCatalogueReference) {
			return &a.CatalogueReferencedDocument
		}
	}
	return nil
}

// SetReference sets a header document reference
func (b *Builder) SetReference(kind ReferenceKind, in ReferenceInput) *Builder {
	if slot := b.referenceSlot(kind); slot != nil {
		*slot = b.values.ReferencedDocument(in)
	}
	return b
}

// AddAdditionalReference appends an additional referenced document, which may
// carry a binary attachment
func (b *Builder) AddAdditionalReference(in ReferenceInput) *Builder {
	if b.supports(profile.FieldAdditionalReference) {
		a := b.order.Transaction.Agreement
		a.AdditionalReferencedDocuments = appendIf(a.AdditionalReferencedDocuments, b.values.ReferencedDocument(in))
	}
	return b
}

// SetAdditionalReference replaces the additional referenced documents
func (b *Builder) SetAdditionalReference(in ReferenceInput) *Builder {
	if b.supports(profile.FieldAdditionalReference) {
		a := b.order.Transaction.Agreement
		a.AdditionalReferencedDocuments = replaceWith(a.AdditionalReferencedDocuments, b.values.ReferencedDocument(in))
	}
	return b
}
