package orderxml

import (
	"encoding/base64"
	"fmt"

	"github.com/beevik/etree"

	"github.com/rezonia/orderx/internal/decimal"
	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/profile"
	"github.com/rezonia/orderx/internal/values"
)

// Marshal serializes order for the profile def. Absent values produce no
// element; the message, document, transaction and trade branch containers
// are always written.
func Marshal(order *model.Order, def profile.Definition) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("marshal: nil order")
	}
	w := &writer{def: def}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(def.RootElement)
	root.CreateAttr("xmlns:rsm", NSMessage)
	root.CreateAttr("xmlns:ram", NSAggregate)
	root.CreateAttr("xmlns:udt", NSUnqualified)
	if w.qualified() {
		root.CreateAttr("xmlns:qdt", NSQualified)
	}

	w.context(root.CreateElement("rsm:ExchangedDocumentContext"), &order.Context)
	w.document(root.CreateElement("rsm:ExchangedDocument"), &order.Document)
	w.transaction(root.CreateElement("rsm:SupplyChainTradeTransaction"), &order.Transaction)

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return out, nil
}

type writer struct {
	def profile.Definition
}

func (w *writer) qualified() bool {
	return w.def.Has(profile.FieldReferencedDocumentDate)
}

func (w *writer) context(el *etree.Element, c *model.ExchangedDocumentContext) {
	indicator(el, "ram:TestIndicator", c.TestIndicator)
	if c.BusinessProcess != nil {
		id(el.CreateElement("ram:BusinessProcessSpecifiedDocumentContextParameter"), "ram:ID", c.BusinessProcess.ID)
	}
	if c.Guideline != nil {
		id(el.CreateElement("ram:GuidelineSpecifiedDocumentContextParameter"), "ram:ID", c.Guideline.ID)
	}
}

func (w *writer) document(el *etree.Element, d *model.ExchangedDocument) {
	id(el, "ram:ID", d.ID)
	text(el, "ram:Name", d.Name)
	code(el, "ram:TypeCode", d.TypeCode)
	dateTime(el, "ram:IssueDateTime", d.IssueDateTime)
	indicator(el, "ram:CopyIndicator", d.CopyIndicator)
	id(el, "ram:LanguageID", d.LanguageID)
	notes(el, d.Notes)
	code(el, "ram:PurposeCode", d.PurposeCode)
	code(el, "ram:RequestedResponseTypeCode", d.RequestedResponseTypeCode)
}

func (w *writer) transaction(el *etree.Element, t *model.SupplyChainTradeTransaction) {
	for _, item := range t.LineItems {
		if item != nil {
			w.lineItem(el.CreateElement("ram:IncludedSupplyChainTradeLineItem"), item)
		}
	}
	w.headerAgreement(el.CreateElement("ram:ApplicableHeaderTradeAgreement"), t.Agreement)
	w.headerDelivery(el.CreateElement("ram:ApplicableHeaderTradeDelivery"), t.Delivery)
	w.headerSettlement(el.CreateElement("ram:ApplicableHeaderTradeSettlement"), t.Settlement)
}

func (w *writer) headerAgreement(el *etree.Element, a *model.HeaderTradeAgreement) {
	if a == nil {
		return
	}
	text(el, "ram:BuyerReference", a.BuyerReference)
	w.party(el, "ram:SellerTradeParty", a.Seller)
	w.party(el, "ram:BuyerTradeParty", a.Buyer)
	w.party(el, "ram:BuyerRequisitionerTradeParty", a.BuyerRequisitioner)
	w.party(el, "ram:ProductEndUserTradeParty", a.ProductEndUser)
	deliveryTerms(el, a.DeliveryTerms)
	w.reference(el, "ram:SellerOrderReferencedDocument", a.SellerOrderReferencedDocument)
	w.reference(el, "ram:BuyerOrderReferencedDocument", a.BuyerOrderReferencedDocument)
	w.reference(el, "ram:QuotationReferencedDocument", a.QuotationReferencedDocument)
	w.reference(el, "ram:ContractReferencedDocument", a.ContractReferencedDocument)
	w.reference(el, "ram:RequisitionReferencedDocument", a.RequisitionReferencedDocument)
	for _, r := range a.AdditionalReferencedDocuments {
		w.reference(el, "ram:AdditionalReferencedDocument", r)
	}
	w.reference(el, "ram:BlanketOrderReferencedDocument", a.BlanketOrderReferencedDocument)
	w.reference(el, "ram:PreviousOrderReferencedDocument", a.PreviousOrderReferencedDocument)
	w.reference(el, "ram:PreviousOrderChangeReferencedDocument", a.PreviousOrderChangeReferencedDocument)
	w.reference(el, "ram:PreviousOrderResponseReferencedDocument", a.PreviousOrderResponseReferencedDocument)
	w.reference(el, "ram:CatalogueReferencedDocument", a.CatalogueReferencedDocument)
	if p := a.ProcuringProject; p != nil {
		pe := el.CreateElement("ram:SpecifiedProcuringProject")
		id(pe, "ram:ID", p.ID)
		text(pe, "ram:Name", p.Name)
	}
}

func (w *writer) headerDelivery(el *etree.Element, d *model.HeaderTradeDelivery) {
	if d == nil {
		return
	}
	w.party(el, "ram:ShipToTradeParty", d.ShipTo)
	w.party(el, "ram:ShipFromTradeParty", d.ShipFrom)
	event(el, "ram:RequestedDeliverySupplyChainEvent", d.RequestedDeliveryEvent)
	event(el, "ram:RequestedDespatchSupplyChainEvent", d.RequestedDespatchEvent)
}

func (w *writer) headerSettlement(el *etree.Element, s *model.HeaderTradeSettlement) {
	if s == nil {
		return
	}
	code(el, "ram:OrderCurrencyCode", s.Currency)
	w.party(el, "ram:InvoiceeTradeParty", s.Invoicee)
	for _, pm := range s.PaymentMeans {
		pe := el.CreateElement("ram:SpecifiedTradePaymentMeans")
		code(pe, "ram:TypeCode", pm.TypeCode)
		text(pe, "ram:Information", pm.Information)
	}
	for _, t := range s.Taxes {
		tax(el, "ram:ApplicableTradeTax", t)
	}
	for _, ac := range s.AllowanceCharges {
		allowanceCharge(el, "ram:SpecifiedTradeAllowanceCharge", ac)
	}
	for _, pt := range s.PaymentTerms {
		pe := el.CreateElement("ram:SpecifiedTradePaymentTerms")
		text(pe, "ram:Description", pt.Description)
		dateTime(pe, "ram:DueDateDateTime", pt.DueDateTime)
	}
	if m := s.MonetarySummation; m != nil {
		me := el.CreateElement("ram:SpecifiedTradeSettlementHeaderMonetarySummation")
		amount(me, "ram:LineTotalAmount", m.LineTotalAmount)
		amount(me, "ram:ChargeTotalAmount", m.ChargeTotalAmount)
		amount(me, "ram:AllowanceTotalAmount", m.AllowanceTotalAmount)
		amount(me, "ram:TaxBasisTotalAmount", m.TaxBasisTotalAmount)
		amount(me, "ram:TaxTotalAmount", m.TaxTotalAmount)
		amount(me, "ram:GrandTotalAmount", m.GrandTotalAmount)
	}
	account(el, s.ReceivableAccount)
}

func (w *writer) lineItem(el *etree.Element, item *model.LineItem) {
	if d := item.LineDocument; d != nil {
		de := el.CreateElement("ram:AssociatedDocumentLineDocument")
		id(de, "ram:LineID", d.LineID)
		code(de, "ram:LineStatusCode", d.LineStatusCode)
		notes(de, d.Notes)
	}
	if item.Product != nil {
		w.product(el.CreateElement("ram:SpecifiedTradeProduct"), item.Product)
	}
	w.lineAgreement(el.CreateElement("ram:SpecifiedLineTradeAgreement"), item.Agreement)
	w.lineDelivery(el.CreateElement("ram:SpecifiedLineTradeDelivery"), item.Delivery)
	w.lineSettlement(el.CreateElement("ram:SpecifiedLineTradeSettlement"), item.Settlement)
}

func (w *writer) product(el *etree.Element, p *model.TradeProduct) {
	id(el, "ram:GlobalID", p.GlobalID)
	id(el, "ram:SellerAssignedID", p.SellerAssignedID)
	id(el, "ram:BuyerAssignedID", p.BuyerAssignedID)
	id(el, "ram:IndustryAssignedID", p.IndustryAssignedID)
	text(el, "ram:Name", p.Name)
	text(el, "ram:Description", p.Description)
	id(el, "ram:BatchID", p.BatchID)
	text(el, "ram:BrandName", p.BrandName)
	for _, c := range p.Characteristics {
		ce := el.CreateElement("ram:ApplicableProductCharacteristic")
		code(ce, "ram:TypeCode", c.TypeCode)
		text(ce, "ram:Description", c.Description)
		measure(ce, "ram:ValueMeasure", c.ValueMeasure)
		text(ce, "ram:Value", c.Value)
	}
	for _, c := range p.Classifications {
		ce := el.CreateElement("ram:DesignatedProductClassification")
		code(ce, "ram:ClassCode", c.ClassCode)
		text(ce, "ram:ClassName", c.ClassName)
	}
	for _, i := range p.Instances {
		ie := el.CreateElement("ram:IndividualTradeProductInstance")
		id(ie, "ram:BatchID", i.BatchID)
		id(ie, "ram:SerialID", i.SerialID)
	}
	if pk := p.Packaging; pk != nil {
		pe := el.CreateElement("ram:ApplicableSupplyChainPackaging")
		code(pe, "ram:TypeCode", pk.TypeCode)
		if pk.Width != nil || pk.Length != nil || pk.Height != nil {
			de := pe.CreateElement("ram:LinearSpatialDimension")
			measure(de, "ram:WidthMeasure", pk.Width)
			measure(de, "ram:LengthMeasure", pk.Length)
			measure(de, "ram:HeightMeasure", pk.Height)
		}
	}
	if p.OriginCountry != nil {
		code(el.CreateElement("ram:OriginTradeCountry"), "ram:ID", p.OriginCountry)
	}
	for _, r := range p.ReferencedDocuments {
		w.reference(el, "ram:AdditionalReferenceReferencedDocument", r)
	}
}

func (w *writer) lineAgreement(el *etree.Element, a *model.LineTradeAgreement) {
	if a == nil {
		return
	}
	w.reference(el, "ram:BuyerOrderReferencedDocument", a.BuyerOrderReferencedDocument)
	w.reference(el, "ram:QuotationReferencedDocument", a.QuotationReferencedDocument)
	w.reference(el, "ram:ContractReferencedDocument", a.ContractReferencedDocument)
	for _, r := range a.AdditionalReferencedDocuments {
		w.reference(el, "ram:AdditionalReferencedDocument", r)
	}
	if p := a.GrossPrice; p != nil {
		pe := price(el, "ram:GrossPriceProductTradePrice", p)
		for _, ac := range p.AllowanceCharges {
			allowanceCharge(pe, "ram:AppliedTradeAllowanceCharge", ac)
		}
	}
	if p := a.NetPrice; p != nil {
		pe := price(el, "ram:NetPriceProductTradePrice", p)
		if p.IncludedTax != nil {
			tax(pe, "ram:IncludedTradeTax", p.IncludedTax)
		}
	}
	w.reference(el, "ram:BlanketOrderReferencedDocument", a.BlanketOrderReferencedDocument)
	w.reference(el, "ram:CatalogueReferencedDocument", a.CatalogueReferencedDocument)
	for _, r := range a.UltimateCustomerOrderReferencedDocuments {
		w.reference(el, "ram:UltimateCustomerOrderReferencedDocument", r)
	}
}

func (w *writer) lineDelivery(el *etree.Element, d *model.LineTradeDelivery) {
	if d == nil {
		return
	}
	indicator(el, "ram:PartialDeliveryAllowedIndicator", d.PartialDeliveryAllowed)
	quantity(el, "ram:RequestedQuantity", d.RequestedQuantity)
	quantity(el, "ram:AgreedQuantity", d.AgreedQuantity)
	quantity(el, "ram:PackageQuantity", d.PackageQuantity)
	event(el, "ram:RequestedDeliverySupplyChainEvent", d.RequestedDeliveryEvent)
	event(el, "ram:RequestedDespatchSupplyChainEvent", d.RequestedDespatchEvent)
}

func (w *writer) lineSettlement(el *etree.Element, s *model.LineTradeSettlement) {
	if s == nil {
		return
	}
	for _, t := range s.Taxes {
		tax(el, "ram:ApplicableTradeTax", t)
	}
	for _, ac := range s.AllowanceCharges {
		allowanceCharge(el, "ram:SpecifiedTradeAllowanceCharge", ac)
	}
	if m := s.MonetarySummation; m != nil {
		me := el.CreateElement("ram:SpecifiedTradeSettlementLineMonetarySummation")
		amount(me, "ram:LineTotalAmount", m.LineTotalAmount)
		amount(me, "ram:TotalAllowanceChargeAmount", m.TotalAllowanceChargeAmount)
	}
	account(el, s.ReceivableAccount)
}

func (w *writer) party(parent *etree.Element, tag string, p *model.TradeParty) {
	if p == nil {
		return
	}
	el := parent.CreateElement(tag)
	for _, v := range p.IDs {
		id(el, "ram:ID", v)
	}
	for _, v := range p.GlobalIDs {
		id(el, "ram:GlobalID", v)
	}
	text(el, "ram:Name", p.Name)
	text(el, "ram:Description", p.Description)
	if l := p.LegalOrganization; l != nil {
		le := el.CreateElement("ram:SpecifiedLegalOrganization")
		id(le, "ram:ID", l.ID)
		text(le, "ram:TradingBusinessName", l.TradingBusinessName)
	}
	for _, c := range p.Contacts {
		ce := el.CreateElement("ram:DefinedTradeContact")
		text(ce, "ram:PersonName", c.PersonName)
		text(ce, "ram:DepartmentName", c.DepartmentName)
		code(ce, "ram:TypeCode", c.TypeCode)
		communication(ce, "ram:TelephoneUniversalCommunication", c.Telephone)
		communication(ce, "ram:FaxUniversalCommunication", c.Fax)
		communication(ce, "ram:EmailURIUniversalCommunication", c.Email)
	}
	if a := p.Address; a != nil {
		ae := el.CreateElement("ram:PostalTradeAddress")
		code(ae, "ram:PostcodeCode", a.PostcodeCode)
		text(ae, "ram:LineOne", a.LineOne)
		text(ae, "ram:LineTwo", a.LineTwo)
		text(ae, "ram:LineThree", a.LineThree)
		text(ae, "ram:CityName", a.CityName)
		code(ae, "ram:CountryID", a.CountryID)
		for _, s := range a.CountrySubDivisionNames {
			text(ae, "ram:CountrySubDivisionName", s)
		}
	}
	for _, c := range p.Communications {
		communication(el, "ram:URIUniversalCommunication", c)
	}
	for _, r := range p.TaxRegistrations {
		id(el.CreateElement("ram:SpecifiedTaxRegistration"), "ram:ID", r.ID)
	}
}

func (w *writer) reference(parent *etree.Element, tag string, r *model.ReferencedDocument) {
	if r == nil {
		return
	}
	el := parent.CreateElement(tag)
	id(el, "ram:IssuerAssignedID", r.IssuerAssignedID)
	id(el, "ram:URIID", r.URIID)
	id(el, "ram:LineID", r.LineID)
	code(el, "ram:TypeCode", r.TypeCode)
	text(el, "ram:Name", r.Name)
	if b := r.AttachmentBinaryObject; b != nil {
		be := el.CreateElement("ram:AttachmentBinaryObject")
		if b.MimeCode != "" {
			be.CreateAttr("mimeCode", b.MimeCode)
		}
		if b.Filename != "" {
			be.CreateAttr("filename", b.Filename)
		}
		be.SetText(base64.StdEncoding.EncodeToString(b.Data))
	}
	code(el, "ram:ReferenceTypeCode", r.ReferenceTypeCode)
	if f := r.FormattedIssueDateTime; f != nil && w.qualified() {
		de := el.CreateElement("ram:FormattedIssueDateTime").CreateElement("qdt:DateTimeString")
		de.CreateAttr("format", model.DateFormatYYYYMMDD)
		de.SetText(values.EncodeDate(f.Value))
	}
}

func notes(parent *etree.Element, ns []*model.Note) {
	for _, n := range ns {
		el := parent.CreateElement("ram:IncludedNote")
		code(el, "ram:ContentCode", n.ContentCode)
		text(el, "ram:Content", n.Content)
		code(el, "ram:SubjectCode", n.SubjectCode)
	}
}

func deliveryTerms(parent *etree.Element, d *model.DeliveryTerms) {
	if d == nil {
		return
	}
	el := parent.CreateElement("ram:ApplicableTradeDeliveryTerms")
	code(el, "ram:DeliveryTypeCode", d.DeliveryTypeCode)
	text(el, "ram:Description", d.Description)
	code(el, "ram:FunctionCode", d.FunctionCode)
	if d.LocationID != nil || d.LocationName != nil {
		le := el.CreateElement("ram:RelevantTradeLocation")
		id(le, "ram:ID", d.LocationID)
		text(le, "ram:Name", d.LocationName)
	}
}

func tax(parent *etree.Element, tag string, t *model.TradeTax) {
	if t == nil {
		return
	}
	el := parent.CreateElement(tag)
	amount(el, "ram:CalculatedAmount", t.CalculatedAmount)
	code(el, "ram:TypeCode", t.TypeCode)
	text(el, "ram:ExemptionReason", t.ExemptionReason)
	amount(el, "ram:BasisAmount", t.BasisAmount)
	code(el, "ram:CategoryCode", t.CategoryCode)
	code(el, "ram:ExemptionReasonCode", t.ExemptionReasonCode)
	percent(el, "ram:RateApplicablePercent", t.RateApplicablePercent)
}

func allowanceCharge(parent *etree.Element, tag string, ac *model.AllowanceCharge) {
	if ac == nil {
		return
	}
	el := parent.CreateElement(tag)
	indicator(el, "ram:ChargeIndicator", ac.ChargeIndicator)
	percent(el, "ram:CalculationPercent", ac.CalculationPercent)
	amount(el, "ram:BasisAmount", ac.BasisAmount)
	amount(el, "ram:ActualAmount", ac.ActualAmount)
	code(el, "ram:ReasonCode", ac.ReasonCode)
	text(el, "ram:Reason", ac.Reason)
	tax(el, "ram:CategoryTradeTax", ac.CategoryTradeTax)
}

func price(parent *etree.Element, tag string, p *model.TradePrice) *etree.Element {
	el := parent.CreateElement(tag)
	amount(el, "ram:ChargeAmount", p.ChargeAmount)
	quantity(el, "ram:BasisQuantity", p.BasisQuantity)
	return el
}

func event(parent *etree.Element, tag string, e *model.SupplyChainEvent) {
	if e == nil {
		return
	}
	el := parent.CreateElement(tag)
	dateTime(el, "ram:OccurrenceDateTime", e.OccurrenceDateTime)
	if p := e.OccurrencePeriod; p != nil {
		pe := el.CreateElement("ram:OccurrenceSpecifiedPeriod")
		dateTime(pe, "ram:StartDateTime", p.StartDateTime)
		dateTime(pe, "ram:EndDateTime", p.EndDateTime)
	}
}

func account(parent *etree.Element, a *model.AccountingAccount) {
	if a == nil {
		return
	}
	el := parent.CreateElement("ram:ReceivableSpecifiedTradeAccountingAccount")
	id(el, "ram:ID", a.ID)
	code(el, "ram:TypeCode", a.TypeCode)
}

func communication(parent *etree.Element, tag string, c *model.UniversalCommunication) {
	if c == nil {
		return
	}
	el := parent.CreateElement(tag)
	id(el, "ram:URIID", c.URIID)
	text(el, "ram:CompleteNumber", c.CompleteNumber)
}

func id(parent *etree.Element, tag string, v *model.ID) {
	if v == nil {
		return
	}
	el := parent.CreateElement(tag)
	if v.SchemeID != "" {
		el.CreateAttr("schemeID", v.SchemeID)
	}
	el.SetText(v.Value)
}

func text(parent *etree.Element, tag string, v *model.Text) {
	if v == nil {
		return
	}
	parent.CreateElement(tag).SetText(v.Value)
}

func code(parent *etree.Element, tag string, v *model.Code) {
	if v == nil {
		return
	}
	el := parent.CreateElement(tag)
	if v.ListID != "" {
		el.CreateAttr("listID", v.ListID)
	}
	if v.ListVersionID != "" {
		el.CreateAttr("listVersionID", v.ListVersionID)
	}
	el.SetText(v.Value)
}

func indicator(parent *etree.Element, tag string, v *model.Indicator) {
	if v == nil {
		return
	}
	s := "false"
	if v.Value {
		s = "true"
	}
	parent.CreateElement(tag).CreateElement("udt:Indicator").SetText(s)
}

func dateTime(parent *etree.Element, tag string, v *model.DateTime) {
	if v == nil {
		return
	}
	el := parent.CreateElement(tag).CreateElement("udt:DateTimeString")
	el.CreateAttr("format", model.DateFormatYYYYMMDD)
	el.SetText(values.EncodeDate(v.Value))
}

func amount(parent *etree.Element, tag string, v *model.Amount) {
	if v == nil {
		return
	}
	el := parent.CreateElement(tag)
	if v.CurrencyID != "" {
		el.CreateAttr("currencyID", v.CurrencyID)
	}
	el.SetText(decimal.FormatAmount(v.Value))
}

func quantity(parent *etree.Element, tag string, v *model.Quantity) {
	if v == nil {
		return
	}
	el := parent.CreateElement(tag)
	if v.UnitCode != "" {
		el.CreateAttr("unitCode", v.UnitCode)
	}
	el.SetText(decimal.FormatQuantity(v.Value))
}

func measure(parent *etree.Element, tag string, v *model.Measure) {
	if v == nil {
		return
	}
	el := parent.CreateElement(tag)
	if v.UnitCode != "" {
		el.CreateAttr("unitCode", v.UnitCode)
	}
	el.SetText(decimal.FormatQuantity(v.Value))
}

func percent(parent *etree.Element, tag string, v *model.Percent) {
	if v == nil {
		return
	}
	parent.CreateElement(tag).SetText(decimal.FormatPercent(v.Value))
}
