package orderxml

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/orderx/internal/decimal"
	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/profile"
	"github.com/rezonia/orderx/internal/values"
)

const rootTag = "SCRDMCCBDACIOMessageStructure"

// Document is an Order-X XML document read back into an order graph. The
// original bytes are kept and returned unchanged by XML.
type Document struct {
	def   profile.Definition
	order *model.Order
	raw   []byte
}

// Profile returns the detected profile
func (d *Document) Profile() profile.Profile {
	return d.def.Profile
}

// Definition returns the detected profile definition
func (d *Document) Definition() profile.Definition {
	return d.def
}

// Order returns the order graph
func (d *Document) Order() *model.Order {
	return d.order
}

// XML returns the document bytes as read
func (d *Document) XML() ([]byte, error) {
	return d.raw, nil
}

// CanRead reports whether content looks like an Order-X message
func CanRead(content []byte) bool {
	return bytes.Contains(content, []byte(rootTag))
}

// Detect identifies the profile from the guideline parameter
func Detect(content []byte) (profile.Definition, error) {
	root, err := parseRoot(content)
	if err != nil {
		return profile.Definition{}, err
	}
	return detect(root)
}

// Parse reads an Order-X document from r
func Parse(ctx context.Context, r io.Reader) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, model.NewParseError("", "content", "failed to read content", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Read(content)
}

// Read reads an Order-X document
func Read(content []byte) (*Document, error) {
	root, err := parseRoot(content)
	if err != nil {
		return nil, err
	}
	def, err := detect(root)
	if err != nil {
		return nil, err
	}

	r := &reader{def: def, values: values.New(def.Profile)}
	order, err := r.order(root)
	if err != nil {
		return nil, err
	}
	return &Document{def: def, order: order, raw: content}, nil
}

func parseRoot(content []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, model.NewParseError("", "xml", "failed to parse XML", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != rootTag {
		return nil, model.NewParseError("", "root", "not an Order-X message", nil)
	}
	return root, nil
}

func detect(root *etree.Element) (profile.Definition, error) {
	guideline := textOf(child(root, "ExchangedDocumentContext", "GuidelineSpecifiedDocumentContextParameter", "ID"))
	if guideline == "" {
		return profile.Definition{}, model.NewParseError("", "guideline", "missing guideline parameter", model.ErrMissingField)
	}
	p, ok := profile.FromGuideline(guideline)
	if !ok {
		return profile.Definition{}, model.NewParseError("", "guideline", "unknown guideline "+guideline, nil)
	}
	return profile.Lookup(p), nil
}

// reader keeps the first malformed leaf in err and carries on, so helpers
// stay single valued
type reader struct {
	def    profile.Definition
	values *values.Factory
	err    error
}

func (r *reader) fail(field, msg string, cause error) error {
	return model.NewParseError(r.def.DisplayName, field, msg, cause)
}

func (r *reader) record(el *etree.Element, msg string, cause error) {
	if r.err == nil {
		r.err = r.fail(el.Tag, msg+" "+strconv.Quote(textOf(el)), cause)
	}
}

func (r *reader) order(root *etree.Element) (*model.Order, error) {
	f := r.values
	o := &model.Order{}

	ctxEl := child(root, "ExchangedDocumentContext")
	o.Context.TestIndicator = r.indicator(child(ctxEl, "TestIndicator"))
	if bp := f.ID(textOf(child(ctxEl, "BusinessProcessSpecifiedDocumentContextParameter", "ID")), ""); bp != nil {
		o.Context.BusinessProcess = &model.DocumentContextParameter{ID: bp}
	}
	o.Context.Guideline = &model.DocumentContextParameter{ID: f.ID(r.def.GuidelineID, "")}

	docEl := child(root, "ExchangedDocument")
	if docEl == nil {
		return nil, r.fail("document", "missing exchanged document", model.ErrMissingField)
	}
	o.Document.ID = r.id(child(docEl, "ID"))
	o.Document.Name = r.text(child(docEl, "Name"))
	o.Document.TypeCode = r.code(child(docEl, "TypeCode"))
	issued, err := r.dateTime(child(docEl, "IssueDateTime"))
	if err != nil {
		return nil, r.fail("issue_date", "invalid issue date", err)
	}
	o.Document.IssueDateTime = issued
	o.Document.CopyIndicator = r.indicator(child(docEl, "CopyIndicator"))
	o.Document.LanguageID = r.id(child(docEl, "LanguageID"))
	o.Document.Notes = r.notes(docEl)
	o.Document.PurposeCode = r.code(child(docEl, "PurposeCode"))
	o.Document.RequestedResponseTypeCode = r.code(child(docEl, "RequestedResponseTypeCode"))

	txEl := child(root, "SupplyChainTradeTransaction")
	if txEl == nil {
		return nil, r.fail("transaction", "missing trade transaction", model.ErrMissingField)
	}
	o.Transaction.Agreement = r.headerAgreement(child(txEl, "ApplicableHeaderTradeAgreement"))
	o.Transaction.Delivery = r.headerDelivery(child(txEl, "ApplicableHeaderTradeDelivery"))
	o.Transaction.Settlement = r.headerSettlement(child(txEl, "ApplicableHeaderTradeSettlement"))

	for _, el := range children(txEl, "IncludedSupplyChainTradeLineItem") {
		o.Transaction.LineItems = append(o.Transaction.LineItems, r.lineItem(el))
	}
	if r.err != nil {
		return nil, r.err
	}
	return o, nil
}

func (r *reader) headerAgreement(el *etree.Element) *model.HeaderTradeAgreement {
	a := &model.HeaderTradeAgreement{}
	if el == nil {
		return a
	}
	a.BuyerReference = r.text(child(el, "BuyerReference"))
	a.Seller = r.party(child(el, "SellerTradeParty"))
	a.Buyer = r.party(child(el, "BuyerTradeParty"))
	a.BuyerRequisitioner = r.party(child(el, "BuyerRequisitionerTradeParty"))
	a.ProductEndUser = r.party(child(el, "ProductEndUserTradeParty"))
	if dt := child(el, "ApplicableTradeDeliveryTerms"); dt != nil {
		a.DeliveryTerms = r.values.DeliveryTerms(values.DeliveryTermsInput{
			Code:         textOf(child(dt, "DeliveryTypeCode")),
			Description:  textOf(child(dt, "Description")),
			FunctionCode: textOf(child(dt, "FunctionCode")),
			LocationID:   textOf(child(dt, "RelevantTradeLocation", "ID")),
			LocationName: textOf(child(dt, "RelevantTradeLocation", "Name")),
		})
	}
	a.SellerOrderReferencedDocument = r.reference(child(el, "SellerOrderReferencedDocument"))
	a.BuyerOrderReferencedDocument = r.reference(child(el, "BuyerOrderReferencedDocument"))
	a.QuotationReferencedDocument = r.reference(child(el, "QuotationReferencedDocument"))
	a.ContractReferencedDocument = r.reference(child(el, "ContractReferencedDocument"))
	a.RequisitionReferencedDocument = r.reference(child(el, "RequisitionReferencedDocument"))
	for _, re := range children(el, "AdditionalReferencedDocument") {
		a.AdditionalReferencedDocuments = appendRef(a.AdditionalReferencedDocuments, r.reference(re))
	}
	a.BlanketOrderReferencedDocument = r.reference(child(el, "BlanketOrderReferencedDocument"))
	a.PreviousOrderReferencedDocument = r.reference(child(el, "PreviousOrderReferencedDocument"))
	a.PreviousOrderChangeReferencedDocument = r.reference(child(el, "PreviousOrderChangeReferencedDocument"))
	a.PreviousOrderResponseReferencedDocument = r.reference(child(el, "PreviousOrderResponseReferencedDocument"))
	a.CatalogueReferencedDocument = r.reference(child(el, "CatalogueReferencedDocument"))
	if pp := child(el, "SpecifiedProcuringProject"); pp != nil {
		a.ProcuringProject = r.values.ProcuringProject(textOf(child(pp, "ID")), textOf(child(pp, "Name")))
	}
	return a
}

func (r *reader) headerDelivery(el *etree.Element) *model.HeaderTradeDelivery {
	d := &model.HeaderTradeDelivery{}
	if el == nil {
		return d
	}
	d.ShipTo = r.party(child(el, "ShipToTradeParty"))
	d.ShipFrom = r.party(child(el, "ShipFromTradeParty"))
	d.RequestedDeliveryEvent = r.event(child(el, "RequestedDeliverySupplyChainEvent"))
	d.RequestedDespatchEvent = r.event(child(el, "RequestedDespatchSupplyChainEvent"))
	return d
}

func (r *reader) headerSettlement(el *etree.Element) *model.HeaderTradeSettlement {
	s := &model.HeaderTradeSettlement{}
	if el == nil {
		return s
	}
	s.Currency = r.code(child(el, "OrderCurrencyCode"))
	s.Invoicee = r.party(child(el, "InvoiceeTradeParty"))
	for _, pm := range children(el, "SpecifiedTradePaymentMeans") {
		if v := r.values.PaymentMeans(textOf(child(pm, "TypeCode")), textOf(child(pm, "Information"))); v != nil {
			s.PaymentMeans = append(s.PaymentMeans, v)
		}
	}
	for _, t := range children(el, "ApplicableTradeTax") {
		if v := r.tax(t); v != nil {
			s.Taxes = append(s.Taxes, v)
		}
	}
	for _, ac := range children(el, "SpecifiedTradeAllowanceCharge") {
		if v := r.allowanceCharge(ac); v != nil {
			s.AllowanceCharges = append(s.AllowanceCharges, v)
		}
	}
	for _, pt := range children(el, "SpecifiedTradePaymentTerms") {
		due := r.date(child(pt, "DueDateDateTime"))
		terms := &model.PaymentTerms{Description: r.text(child(pt, "Description")), DueDateTime: due}
		if terms.Description != nil || terms.DueDateTime != nil {
			s.PaymentTerms = append(s.PaymentTerms, terms)
		}
	}
	if m := child(el, "SpecifiedTradeSettlementHeaderMonetarySummation"); m != nil {
		s.MonetarySummation = r.values.Summation(values.SummationInput{
			LineTotal:      r.number(child(m, "LineTotalAmount")),
			ChargeTotal:    r.number(child(m, "ChargeTotalAmount")),
			AllowanceTotal: r.number(child(m, "AllowanceTotalAmount")),
			TaxBasisTotal:  r.number(child(m, "TaxBasisTotalAmount")),
			TaxTotal:       r.number(child(m, "TaxTotalAmount")),
			GrandTotal:     r.number(child(m, "GrandTotalAmount")),
		})
	}
	if acc := child(el, "ReceivableSpecifiedTradeAccountingAccount"); acc != nil {
		s.ReceivableAccount = r.values.AccountingAccount(textOf(child(acc, "ID")), textOf(child(acc, "TypeCode")))
	}
	return s
}

func (r *reader) lineItem(el *etree.Element) *model.LineItem {
	item := &model.LineItem{
		Agreement:  &model.LineTradeAgreement{},
		Delivery:   &model.LineTradeDelivery{},
		Settlement: &model.LineTradeSettlement{},
	}
	if d := child(el, "AssociatedDocumentLineDocument"); d != nil {
		item.LineDocument = r.values.LineDocument(textOf(child(d, "LineID")), textOf(child(d, "LineStatusCode")))
		if ns := r.notes(d); len(ns) > 0 {
			if item.LineDocument == nil {
				item.LineDocument = &model.DocumentLineDocument{}
			}
			item.LineDocument.Notes = ns
		}
	}
	if p := child(el, "SpecifiedTradeProduct"); p != nil {
		item.Product = &model.TradeProduct{
			GlobalID:           r.id(child(p, "GlobalID")),
			SellerAssignedID:   r.id(child(p, "SellerAssignedID")),
			BuyerAssignedID:    r.id(child(p, "BuyerAssignedID")),
			IndustryAssignedID: r.id(child(p, "IndustryAssignedID")),
			Name:               r.text(child(p, "Name")),
			Description:        r.text(child(p, "Description")),
			BatchID:            r.id(child(p, "BatchID")),
			BrandName:          r.text(child(p, "BrandName")),
			OriginCountry:      r.code(child(p, "OriginTradeCountry", "ID")),
		}
	}
	if a := child(el, "SpecifiedLineTradeAgreement"); a != nil {
		item.Agreement.BuyerOrderReferencedDocument = r.reference(child(a, "BuyerOrderReferencedDocument"))
		item.Agreement.GrossPrice = r.price(child(a, "GrossPriceProductTradePrice"))
		item.Agreement.NetPrice = r.price(child(a, "NetPriceProductTradePrice"))
	}
	if d := child(el, "SpecifiedLineTradeDelivery"); d != nil {
		item.Delivery.PartialDeliveryAllowed = r.indicator(child(d, "PartialDeliveryAllowedIndicator"))
		item.Delivery.RequestedQuantity = r.quantity(child(d, "RequestedQuantity"))
		item.Delivery.AgreedQuantity = r.quantity(child(d, "AgreedQuantity"))
		item.Delivery.PackageQuantity = r.quantity(child(d, "PackageQuantity"))
		item.Delivery.RequestedDeliveryEvent = r.event(child(d, "RequestedDeliverySupplyChainEvent"))
		item.Delivery.RequestedDespatchEvent = r.event(child(d, "RequestedDespatchSupplyChainEvent"))
	}
	if s := child(el, "SpecifiedLineTradeSettlement"); s != nil {
		for _, t := range children(s, "ApplicableTradeTax") {
			if v := r.tax(t); v != nil {
				item.Settlement.Taxes = append(item.Settlement.Taxes, v)
			}
		}
		for _, ac := range children(s, "SpecifiedTradeAllowanceCharge") {
			if v := r.allowanceCharge(ac); v != nil {
				item.Settlement.AllowanceCharges = append(item.Settlement.AllowanceCharges, v)
			}
		}
		if m := child(s, "SpecifiedTradeSettlementLineMonetarySummation"); m != nil {
			item.Settlement.MonetarySummation = r.values.LineSummation(
				r.number(child(m, "LineTotalAmount")),
				r.number(child(m, "TotalAllowanceChargeAmount")),
			)
		}
	}
	return item
}

func (r *reader) party(el *etree.Element) *model.TradeParty {
	if el == nil {
		return nil
	}
	p := &model.TradeParty{
		Name:        r.text(child(el, "Name")),
		Description: r.text(child(el, "Description")),
	}
	for _, e := range children(el, "ID") {
		p.IDs = appendID(p.IDs, r.id(e))
	}
	for _, e := range children(el, "GlobalID") {
		p.GlobalIDs = appendID(p.GlobalIDs, r.id(e))
	}
	if l := child(el, "SpecifiedLegalOrganization"); l != nil {
		lid := r.id(child(l, "ID"))
		p.LegalOrganization = r.values.LegalOrganization(model.IDValue(lid), schemeOf(lid), textOf(child(l, "TradingBusinessName")))
	}
	for _, c := range children(el, "DefinedTradeContact") {
		if v := r.values.Contact(values.ContactInput{
			PersonName:     textOf(child(c, "PersonName")),
			DepartmentName: textOf(child(c, "DepartmentName")),
			TypeCode:       textOf(child(c, "TypeCode")),
			Phone:          textOf(child(c, "TelephoneUniversalCommunication", "CompleteNumber")),
			Fax:            textOf(child(c, "FaxUniversalCommunication", "CompleteNumber")),
			Email:          textOf(child(c, "EmailURIUniversalCommunication", "URIID")),
		}); v != nil {
			p.Contacts = append(p.Contacts, v)
		}
	}
	if a := child(el, "PostalTradeAddress"); a != nil {
		var subdivisions []string
		for _, s := range children(a, "CountrySubDivisionName") {
			subdivisions = append(subdivisions, textOf(s))
		}
		p.Address = r.values.Address(values.AddressInput{
			LineOne:      textOf(child(a, "LineOne")),
			LineTwo:      textOf(child(a, "LineTwo")),
			LineThree:    textOf(child(a, "LineThree")),
			Postcode:     textOf(child(a, "PostcodeCode")),
			City:         textOf(child(a, "CityName")),
			Country:      textOf(child(a, "CountryID")),
			Subdivisions: subdivisions,
		})
	}
	for _, c := range children(el, "URIUniversalCommunication") {
		uri := r.id(child(c, "URIID"))
		if v := r.values.Communication(model.IDValue(uri), schemeOf(uri)); v != nil {
			p.Communications = append(p.Communications, v)
		}
	}
	for _, t := range children(el, "SpecifiedTaxRegistration") {
		tid := r.id(child(t, "ID"))
		if v := r.values.TaxRegistration(schemeOf(tid), model.IDValue(tid)); v != nil {
			p.TaxRegistrations = append(p.TaxRegistrations, v)
		}
	}
	return p
}

func (r *reader) reference(el *etree.Element) *model.ReferencedDocument {
	if el == nil {
		return nil
	}
	in := values.ReferenceInput{
		ID:                textOf(child(el, "IssuerAssignedID")),
		URI:               textOf(child(el, "URIID")),
		LineID:            textOf(child(el, "LineID")),
		TypeCode:          textOf(child(el, "TypeCode")),
		Name:              textOf(child(el, "Name")),
		ReferenceTypeCode: textOf(child(el, "ReferenceTypeCode")),
	}
	if b := child(el, "AttachmentBinaryObject"); b != nil {
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b.Text()))
		if err != nil {
			r.record(b, "invalid attachment", err)
		}
		in.Attachment = data
		in.AttachmentMime = b.SelectAttrValue("mimeCode", "")
		in.AttachmentName = b.SelectAttrValue("filename", "")
	}
	if d := child(el, "FormattedIssueDateTime", "DateTimeString"); textOf(d) != "" {
		t, err := values.DecodeDate(textOf(d), d.SelectAttrValue("format", model.DateFormatYYYYMMDD))
		if err != nil {
			r.record(d, "invalid date", err)
		}
		in.IssueDate = t
	}
	return r.values.ReferencedDocument(in)
}

func (r *reader) notes(el *etree.Element) []*model.Note {
	var out []*model.Note
	for _, n := range children(el, "IncludedNote") {
		if v := r.values.Note(textOf(child(n, "Content")), textOf(child(n, "ContentCode")), textOf(child(n, "SubjectCode"))); v != nil {
			out = append(out, v)
		}
	}
	return out
}

func (r *reader) tax(el *etree.Element) *model.TradeTax {
	if el == nil {
		return nil
	}
	return r.values.Tax(values.TaxInput{
		CategoryCode:        textOf(child(el, "CategoryCode")),
		TypeCode:            textOf(child(el, "TypeCode")),
		Rate:                r.number(child(el, "RateApplicablePercent")),
		BasisAmount:         r.number(child(el, "BasisAmount")),
		CalculatedAmount:    r.number(child(el, "CalculatedAmount")),
		ExemptionReason:     textOf(child(el, "ExemptionReason")),
		ExemptionReasonCode: textOf(child(el, "ExemptionReasonCode")),
	})
}

func (r *reader) allowanceCharge(el *etree.Element) *model.AllowanceCharge {
	ind := r.indicator(child(el, "ChargeIndicator"))
	in := values.AllowanceChargeInput{
		IsCharge:     ind != nil && ind.Value,
		ActualAmount: r.number(child(el, "ActualAmount")),
		BasisAmount:  r.number(child(el, "BasisAmount")),
		Percent:      r.number(child(el, "CalculationPercent")),
		ReasonCode:   textOf(child(el, "ReasonCode")),
		Reason:       textOf(child(el, "Reason")),
	}
	if t := child(el, "CategoryTradeTax"); t != nil {
		in.TaxCategoryCode = textOf(child(t, "CategoryCode"))
		in.TaxTypeCode = textOf(child(t, "TypeCode"))
		in.TaxRate = r.number(child(t, "RateApplicablePercent"))
	}
	return r.values.AllowanceCharge(in)
}

func (r *reader) price(el *etree.Element) *model.TradePrice {
	if el == nil {
		return nil
	}
	q := child(el, "BasisQuantity")
	p := r.values.Price(r.number(child(el, "ChargeAmount")), r.number(q), attrOf(q, "unitCode"))
	if p == nil {
		p = &model.TradePrice{}
	}
	if t := r.tax(child(el, "IncludedTradeTax")); t != nil {
		p.IncludedTax = t
	}
	for _, ac := range children(el, "AppliedTradeAllowanceCharge") {
		if v := r.allowanceCharge(ac); v != nil {
			p.AllowanceCharges = append(p.AllowanceCharges, v)
		}
	}
	if p.ChargeAmount == nil && p.BasisQuantity == nil && p.IncludedTax == nil && len(p.AllowanceCharges) == 0 {
		return nil
	}
	return p
}

func (r *reader) event(el *etree.Element) *model.SupplyChainEvent {
	if el == nil {
		return nil
	}
	at := r.date(child(el, "OccurrenceDateTime"))
	if at != nil {
		return &model.SupplyChainEvent{OccurrenceDateTime: at}
	}
	start := r.date(child(el, "OccurrenceSpecifiedPeriod", "StartDateTime"))
	end := r.date(child(el, "OccurrenceSpecifiedPeriod", "EndDateTime"))
	if start == nil && end == nil {
		return nil
	}
	return &model.SupplyChainEvent{OccurrencePeriod: &model.Period{StartDateTime: start, EndDateTime: end}}
}

func (r *reader) id(el *etree.Element) *model.ID {
	return r.values.ID(textOf(el), attrOf(el, "schemeID"))
}

func (r *reader) text(el *etree.Element) *model.Text {
	return r.values.Text(textOf(el))
}

func (r *reader) code(el *etree.Element) *model.Code {
	return r.values.CodeWithList(textOf(el), attrOf(el, "listID"), attrOf(el, "listVersionID"))
}

func (r *reader) indicator(el *etree.Element) *model.Indicator {
	v := textOf(child(el, "Indicator"))
	if v == "" {
		return nil
	}
	return r.values.Indicator(v == "true")
}

func (r *reader) quantity(el *etree.Element) *model.Quantity {
	return r.values.Quantity(r.number(el), attrOf(el, "unitCode"))
}

func (r *reader) date(el *etree.Element) *model.DateTime {
	dt, err := r.dateTime(el)
	if err != nil {
		r.record(child(el, "DateTimeString"), "invalid date", err)
		return nil
	}
	return dt
}

// dateTime decodes a udt:DateTimeString child honoring its format attribute
func (r *reader) dateTime(el *etree.Element) (*model.DateTime, error) {
	s := child(el, "DateTimeString")
	if s == nil {
		return nil, nil
	}
	dt, err := r.values.DateTimeFromString(textOf(s), s.SelectAttrValue("format", model.DateFormatYYYYMMDD))
	if err != nil {
		return nil, err
	}
	if dt != nil {
		dt.Format = s.SelectAttrValue("format", model.DateFormatYYYYMMDD)
	}
	return dt, nil
}

// child follows a path of local element names, ignoring prefixes
func child(el *etree.Element, path ...string) *etree.Element {
	for _, tag := range path {
		if el == nil {
			return nil
		}
		var next *etree.Element
		for _, c := range el.ChildElements() {
			if c.Tag == tag {
				next = c
				break
			}
		}
		el = next
	}
	return el
}

func children(el *etree.Element, tag string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

func textOf(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

func attrOf(el *etree.Element, key string) string {
	if el == nil {
		return ""
	}
	return el.SelectAttrValue(key, "")
}

func schemeOf(id *model.ID) string {
	if id == nil {
		return ""
	}
	return id.SchemeID
}

func (r *reader) number(el *etree.Element) decimal.NullDecimal {
	n, err := dec.NullFromString(textOf(el))
	if err != nil {
		r.record(el, "invalid number", err)
		return decimal.NullDecimal{}
	}
	return n
}

func appendID(s []*model.ID, v *model.ID) []*model.ID {
	if v == nil {
		return s
	}
	return append(s, v)
}

func appendRef(s []*model.ReferencedDocument, v *model.ReferencedDocument) []*model.ReferencedDocument {
	if v == nil {
		return s
	}
	return append(s, v)
}
