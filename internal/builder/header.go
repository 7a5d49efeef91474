package builder

import (
	"time"

	"github.com/shopspring/decimal"

	dec "github.com/rezonia/orderx/internal/decimal"
	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/profile"
)

// SetDocumentInformation sets the order number, type code, issue date and
// currency. The type code is written as given; unknown codes only affect the
// display name.
func (b *Builder) SetDocumentInformation(id, typeCode string, issued time.Time, currency string) *Builder {
	doc := &b.order.Document
	doc.ID = b.values.ID(id, "")
	doc.TypeCode = b.values.Code(typeCode)
	doc.IssueDateTime = b.values.DateTime(issued)
	b.order.Transaction.Settlement.Currency = b.values.Code(currency)
	return b
}

// SetDocumentTypeCode switches the document type
func (b *Builder) SetDocumentTypeCode(typeCode string) *Builder {
	b.order.Document.TypeCode = b.values.Code(typeCode)
	return b
}

// SetDocumentCurrency sets the order currency
func (b *Builder) SetDocumentCurrency(currency string) *Builder {
	b.order.Transaction.Settlement.Currency = b.values.Code(currency)
	return b
}

// SetDocumentName sets the free text document name
func (b *Builder) SetDocumentName(name string) *Builder {
	if b.supports(profile.FieldDocumentName) {
		b.order.Document.Name = b.values.Text(name)
	}
	return b
}

// SetDocumentLanguage sets the document language
func (b *Builder) SetDocumentLanguage(languageID string) *Builder {
	b.order.Document.LanguageID = b.values.ID(languageID, "")
	return b
}

// SetDocumentPurposeCode sets the purpose code (UNTDID 1225)
func (b *Builder) SetDocumentPurposeCode(code string) *Builder {
	if b.supports(profile.FieldPurposeCode) {
		b.order.Document.PurposeCode = b.values.Code(code)
	}
	return b
}

// SetDocumentRequestedResponseTypeCode sets the requested response type (UNTDID 4343)
func (b *Builder) SetDocumentRequestedResponseTypeCode(code string) *Builder {
	if b.supports(profile.FieldRequestedResponseType) {
		b.order.Document.RequestedResponseTypeCode = b.values.Code(code)
	}
	return b
}

// SetDocumentCopyIndicator marks the document as a copy
func (b *Builder) SetDocumentCopyIndicator(isCopy bool) *Builder {
	if b.supports(profile.FieldCopyIndicator) {
		b.order.Document.CopyIndicator = b.values.Indicator(isCopy)
	}
	return b
}

// SetTestIndicator marks the document as a test message
func (b *Builder) SetTestIndicator(test bool) *Builder {
	b.order.Context.TestIndicator = b.values.Indicator(test)
	return b
}

// SetBusinessProcess sets the business process context parameter
func (b *Builder) SetBusinessProcess(id string) *Builder {
	if !b.supports(profile.FieldBusinessProcess) {
		return b
	}
	if v := b.values.ID(id, ""); v != nil {
		b.order.Context.BusinessProcess = &model.DocumentContextParameter{ID: v}
	} else {
		b.order.Context.BusinessProcess = nil
	}
	return b
}

// AddDocumentNote appends a note to the document header
func (b *Builder) AddDocumentNote(content, contentCode, subjectCode string) *Builder {
	doc := &b.order.Document
	doc.Notes = appendIf(doc.Notes, b.values.Note(content, contentCode, subjectCode))
	return b
}

// SetDocumentNote replaces the document notes with a single note
func (b *Builder) SetDocumentNote(content, contentCode, subjectCode string) *Builder {
	doc := &b.order.Document
	doc.Notes = replaceWith(doc.Notes, b.values.Note(content, contentCode, subjectCode))
	return b
}

// SetBuyerReference sets the reference assigned by the buyer
func (b *Builder) SetBuyerReference(ref string) *Builder {
	b.order.Transaction.Agreement.BuyerReference = b.values.Text(ref)
	return b
}

// SetDeliveryTerms sets the header delivery terms
func (b *Builder) SetDeliveryTerms(in DeliveryTermsInput) *Builder {
	if b.supports(profile.FieldDeliveryTerms) {
		b.order.Transaction.Agreement.DeliveryTerms = b.values.DeliveryTerms(in)
	}
	return b
}

// SetProcuringProject sets the project the order belongs to
func (b *Builder) SetProcuringProject(id, name string) *Builder {
	if b.supports(profile.FieldProcuringProject) {
		b.order.Transaction.Agreement.ProcuringProject = b.values.ProcuringProject(id, name)
	}
	return b
}

// SetRequestedDeliveryDate sets the requested delivery date
func (b *Builder) SetRequestedDeliveryDate(at time.Time) *Builder {
	b.order.Transaction.Delivery.RequestedDeliveryEvent = b.values.Event(at)
	return b
}

// SetRequestedDeliveryPeriod sets the requested delivery period
func (b *Builder) SetRequestedDeliveryPeriod(start, end time.Time) *Builder {
	b.order.Transaction.Delivery.RequestedDeliveryEvent = b.values.PeriodEvent(start, end)
	return b
}

// SetRequestedDespatchDate sets the requested pick-up date
func (b *Builder) SetRequestedDespatchDate(at time.Time) *Builder {
	if b.supports(profile.FieldRequestedDespatch) {
		b.order.Transaction.Delivery.RequestedDespatchEvent = b.values.Event(at)
	}
	return b
}

// SetRequestedDespatchPeriod sets the requested pick-up period
func (b *Builder) SetRequestedDespatchPeriod(start, end time.Time) *Builder {
	if b.supports(profile.FieldRequestedDespatch) {
		b.order.Transaction.Delivery.RequestedDespatchEvent = b.values.PeriodEvent(start, end)
	}
	return b
}

// AddPaymentMeans appends a payment means
func (b *Builder) AddPaymentMeans(typeCode, information string) *Builder {
	if b.supports(profile.FieldPaymentMeans) {
		s := b.order.Transaction.Settlement
		s.PaymentMeans = appendIf(s.PaymentMeans, b.values.PaymentMeans(typeCode, information))
	}
	return b
}

// SetPaymentMeans replaces the payment means
func (b *Builder) SetPaymentMeans(typeCode, information string) *Builder {
	if b.supports(profile.FieldPaymentMeans) {
		s := b.order.Transaction.Settlement
		s.PaymentMeans = replaceWith(s.PaymentMeans, b.values.PaymentMeans(typeCode, information))
	}
	return b
}

// AddPaymentTerms appends payment terms
func (b *Builder) AddPaymentTerms(description string, due time.Time) *Builder {
	if b.supports(profile.FieldPaymentTerms) {
		s := b.order.Transaction.Settlement
		s.PaymentTerms = appendIf(s.PaymentTerms, b.values.PaymentTerms(description, due))
	}
	return b
}

// SetPaymentTerms replaces the payment terms
func (b *Builder) SetPaymentTerms(description string, due time.Time) *Builder {
	if b.supports(profile.FieldPaymentTerms) {
		s := b.order.Transaction.Settlement
		s.PaymentTerms = replaceWith(s.PaymentTerms, b.values.PaymentTerms(description, due))
	}
	return b
}

// AddTax appends a header tax breakdown
func (b *Builder) AddTax(in TaxInput) *Builder {
	if b.supports(profile.FieldHeaderTax) {
		s := b.order.Transaction.Settlement
		s.Taxes = appendIf(s.Taxes, b.values.Tax(in))
	}
	return b
}

// SetTax replaces the header tax breakdown
func (b *Builder) SetTax(in TaxInput) *Builder {
	if b.supports(profile.FieldHeaderTax) {
		s := b.order.Transaction.Settlement
		s.Taxes = replaceWith(s.Taxes, b.values.Tax(in))
	}
	return b
}

// AddAllowanceCharge appends a header allowance or charge
func (b *Builder) AddAllowanceCharge(in AllowanceChargeInput) *Builder {
	s := b.order.Transaction.Settlement
	s.AllowanceCharges = appendIf(s.AllowanceCharges, b.values.AllowanceCharge(in))
	return b
}

// SetAllowanceCharge replaces the header allowances and charges
func (b *Builder) SetAllowanceCharge(in AllowanceChargeInput) *Builder {
	s := b.order.Transaction.Settlement
	s.AllowanceCharges = replaceWith(s.AllowanceCharges, b.values.AllowanceCharge(in))
	return b
}

// SetSummation sets the document totals. Each total is emitted on its own.
func (b *Builder) SetSummation(in SummationInput) *Builder {
	b.order.Transaction.Settlement.MonetarySummation = b.values.Summation(in)
	return b
}

// SetSummationSimple sets line total, tax basis, tax and grand total
func (b *Builder) SetSummationSimple(lineTotal, taxBasis, taxTotal, grandTotal decimal.Decimal) *Builder {
	return b.SetSummation(SummationInput{
		LineTotal:     dec.Null(lineTotal),
		TaxBasisTotal: dec.Null(taxBasis),
		TaxTotal:      dec.Null(taxTotal),
		GrandTotal:    dec.Null(grandTotal),
	})
}

// SetReceivableAccount sets the buyer accounting reference of the order
func (b *Builder) SetReceivableAccount(id, typeCode string) *Builder {
	if b.supports(profile.FieldReceivableAccount) {
		b.order.Transaction.Settlement.ReceivableAccount = b.values.AccountingAccount(id, typeCode)
	}
	return b
}
