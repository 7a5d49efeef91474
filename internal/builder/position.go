package builder

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/profile"
)

// LineReferenceKind selects a single-valued line document reference
type LineReferenceKind int

const (
	LineBuyerOrderReference LineReferenceKind = iota
	LineQuotationReference
	LineContractReference
	LineBlanketOrderReference
	LineCatalogueReference
)

var lineReferenceKindNames = map[LineReferenceKind]string{
	LineBuyerOrderReference:   "buyer_order",
	LineQuotationReference:    "quotation",
	LineContractReference:     "contract",
	LineBlanketOrderReference: "blanket_order",
	LineCatalogueReference:    "catalogue",
}

func (k LineReferenceKind) String() string {
	if s, ok := lineReferenceKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseLineReferenceKind resolves a line reference kind from its name
func ParseLineReferenceKind(s string) (LineReferenceKind, bool) {
	for k, name := range lineReferenceKindNames {
		if name == s {
			return k, true
		}
	}
	return LineBuyerOrderReference, false
}

// AddNewPosition appends a line item and opens the cursor on it
func (b *Builder) AddNewPosition(lineID string) *Builder {
	return b.AddNewPositionWithStatus(lineID, "")
}

// AddNewPositionWithStatus appends a line item with a line status code
func (b *Builder) AddNewPositionWithStatus(lineID, statusCode string) *Builder {
	if !b.supports(profile.FieldLineStatus) {
		statusCode = ""
	}
	t := &b.order.Transaction
	t.LineItems = append(t.LineItems, &model.LineItem{
		LineDocument: b.values.LineDocument(lineID, statusCode),
		Agreement:    &model.LineTradeAgreement{},
		Delivery:     &model.LineTradeDelivery{},
		Settlement:   &model.LineTradeSettlement{},
	})
	b.cursor = cursor{state: positionOpen, index: len(t.LineItems) - 1}
	return b
}

// RemoveLatestPosition drops the last line item. The cursor moves to the new
// last item or closes when none is left. Without line items it does nothing.
func (b *Builder) RemoveLatestPosition() *Builder {
	t := &b.order.Transaction
	n := len(t.LineItems)
	if n == 0 {
		b.cursor = cursor{}
		return b
	}
	t.LineItems[n-1] = nil
	t.LineItems = t.LineItems[:n-1]
	if n == 1 {
		t.LineItems = nil
		b.cursor = cursor{}
	} else {
		b.cursor = cursor{state: positionOpen, index: n - 2}
	}
	return b
}

// HasOpenPosition reports whether position mutators may be called
func (b *Builder) HasOpenPosition() bool {
	return b.cursor.state == positionOpen
}

// CurrentPosition returns the line item under the cursor
func (b *Builder) CurrentPosition() (*model.LineItem, bool) {
	if b.cursor.state != positionOpen {
		return nil, false
	}
	return b.order.Transaction.LineItems[b.cursor.index], true
}

// PositionCount returns the number of line items
func (b *Builder) PositionCount() int {
	return len(b.order.Transaction.LineItems)
}

// position returns the open line item or panics
func (b *Builder) position(op string) *model.LineItem {
	item, ok := b.CurrentPosition()
	if !ok {
		panic(model.NewUsageError(op, model.ErrNoOpenPosition))
	}
	return item
}

func (b *Builder) product(op string) *model.TradeProduct {
	item := b.position(op)
	if item.Product == nil {
		item.Product = &model.TradeProduct{}
	}
	return item.Product
}

// AddPositionNote appends a note to the open line item
func (b *Builder) AddPositionNote(content, contentCode, subjectCode string) *Builder {
	item := b.position("AddPositionNote")
	if n := b.values.Note(content, contentCode, subjectCode); n != nil {
		if item.LineDocument == nil {
			item.LineDocument = &model.DocumentLineDocument{}
		}
		item.LineDocument.Notes = append(item.LineDocument.Notes, n)
	}
	return b
}

// SetPositionNote replaces the notes of the open line item
func (b *Builder) SetPositionNote(content, contentCode, subjectCode string) *Builder {
	item := b.position("SetPositionNote")
	if n := b.values.Note(content, contentCode, subjectCode); n != nil {
		if item.LineDocument == nil {
			item.LineDocument = &model.DocumentLineDocument{}
		}
		item.LineDocument.Notes = []*model.Note{n}
	}
	return b
}

// SetPositionProduct sets the product details of the open line item.
// Industry id, batch and brand are dropped where the profile lacks them.
func (b *Builder) SetPositionProduct(in ProductInput) *Builder {
	item := b.position("SetPositionProduct")
	if !b.supports(profile.FieldProductIndustryID) {
		in.IndustryID = ""
	}
	if !b.supports(profile.FieldProductBatchAndBrand) {
		in.BatchID, in.BrandName = "", ""
	}

	p := item.Product
	if p == nil {
		p = &model.TradeProduct{}
	}
	p.GlobalID = b.values.ID(in.GlobalID, in.GlobalIDType)
	p.SellerAssignedID = b.values.ID(in.SellerID, "")
	p.BuyerAssignedID = b.values.ID(in.BuyerID, "")
	p.IndustryAssignedID = b.values.ID(in.IndustryID, "")
	p.Name = b.values.Text(in.Name)
	p.Description = b.values.Text(in.Description)
	p.BatchID = b.values.ID(in.BatchID, "")
	p.BrandName = b.values.Text(in.BrandName)

	if productEmpty(p) {
		item.Product = nil
	} else {
		item.Product = p
	}
	return b
}

// productEmpty reports whether p carries neither details nor any of the
// product branches
func productEmpty(p *model.TradeProduct) bool {
	return p.GlobalID == nil && p.SellerAssignedID == nil && p.BuyerAssignedID == nil &&
		p.IndustryAssignedID == nil && p.Name == nil && p.Description == nil &&
		p.BatchID == nil && p.BrandName == nil &&
		len(p.Characteristics) == 0 && len(p.Classifications) == 0 && len(p.Instances) == 0 &&
		p.Packaging == nil && p.OriginCountry == nil && len(p.ReferencedDocuments) == 0
}

// AddPositionProductCharacteristic appends a product characteristic
func (b *Builder) AddPositionProductCharacteristic(in CharacteristicInput) *Builder {
	b.position("AddPositionProductCharacteristic")
	if !b.supports(profile.FieldProductCharacteristic) {
		return b
	}
	if c := b.values.ProductCharacteristic(in); c != nil {
		p := b.product("AddPositionProductCharacteristic")
		p.Characteristics = append(p.Characteristics, c)
	}
	return b
}

// SetPositionProductCharacteristic replaces the product characteristics
func (b *Builder) SetPositionProductCharacteristic(in CharacteristicInput) *Builder {
	b.position("SetPositionProductCharacteristic")
	if !b.supports(profile.FieldProductCharacteristic) {
		return b
	}
	if c := b.values.ProductCharacteristic(in); c != nil {
		b.product("SetPositionProductCharacteristic").Characteristics = []*model.ProductCharacteristic{c}
	}
	return b
}

// AddPositionProductClassification appends a product classification
func (b *Builder) AddPositionProductClassification(classCode, listID, listVersionID, className string) *Builder {
	b.position("AddPositionProductClassification")
	if !b.supports(profile.FieldProductClassification) {
		return b
	}
	if c := b.values.ProductClassification(classCode, listID, listVersionID, className); c != nil {
		p := b.product("AddPositionProductClassification")
		p.Classifications = append(p.Classifications, c)
	}
	return b
}

// SetPositionProductClassification replaces the product classifications
func (b *Builder) SetPositionProductClassification(classCode, listID, listVersionID, className string) *Builder {
	b.position("SetPositionProductClassification")
	if !b.supports(profile.FieldProductClassification) {
		return b
	}
	if c := b.values.ProductClassification(classCode, listID, listVersionID, className); c != nil {
		b.product("SetPositionProductClassification").Classifications = []*model.ProductClassification{c}
	}
	return b
}

// AddPositionProductInstance appends a product instance
func (b *Builder) AddPositionProductInstance(batchID, serialID string) *Builder {
	b.position("AddPositionProductInstance")
	if !b.supports(profile.FieldProductInstance) {
		return b
	}
	if i := b.values.ProductInstance(batchID, serialID); i != nil {
		p := b.product("AddPositionProductInstance")
		p.Instances = append(p.Instances, i)
	}
	return b
}

// SetPositionProductInstance replaces the product instances
func (b *Builder) SetPositionProductInstance(batchID, serialID string) *Builder {
	b.position("SetPositionProductInstance")
	if !b.supports(profile.FieldProductInstance) {
		return b
	}
	if i := b.values.ProductInstance(batchID, serialID); i != nil {
		b.product("SetPositionProductInstance").Instances = []*model.ProductInstance{i}
	}
	return b
}

// SetPositionProductPackaging sets the packaging of the product
func (b *Builder) SetPositionProductPackaging(in PackagingInput) *Builder {
	b.position("SetPositionProductPackaging")
	if !b.supports(profile.FieldProductPackaging) {
		return b
	}
	if v := b.values.Packaging(in); v != nil {
		b.product("SetPositionProductPackaging").Packaging = v
	}
	return b
}

// SetPositionProductOriginCountry sets the country of origin
func (b *Builder) SetPositionProductOriginCountry(country string) *Builder {
	b.position("SetPositionProductOriginCountry")
	if !b.supports(profile.FieldProductOriginCountry) {
		return b
	}
	if v := b.values.Code(country); v != nil {
		b.product("SetPositionProductOriginCountry").OriginCountry = v
	}
	return b
}

// AddPositionProductReference appends a document referenced by the product
func (b *Builder) AddPositionProductReference(in ReferenceInput) *Builder {
	b.position("AddPositionProductReference")
	if !b.supports(profile.FieldProductReferencedDocument) {
		return b
	}
	if r := b.values.ReferencedDocument(in); r != nil {
		p := b.product("AddPositionProductReference")
		p.ReferencedDocuments = append(p.ReferencedDocuments, r)
	}
	return b
}

// SetPositionReference sets a line document reference
func (b *Builder) SetPositionReference(kind LineReferenceKind, in ReferenceInput) *Builder {
	a := b.position("SetPositionReference").Agreement
	if !b.supports(profile.FieldLineReference) {
		return b
	}
	r := b.values.ReferencedDocument(in)
	switch kind {
	case LineBuyerOrderReference:
		a.BuyerOrderReferencedDocument = r
	case LineQuotationReference:
		a.QuotationReferencedDocument = r
	case LineContractReference:
		a.ContractReferencedDocument = r
	case LineBlanketOrderReference:
		a.BlanketOrderReferencedDocument = r
	case LineCatalogueReference:
		a.CatalogueReferencedDocument = r
	}
	return b
}

// AddPositionAdditionalReference appends an additional line reference
func (b *Builder) AddPositionAdditionalReference(in ReferenceInput) *Builder {
	a := b.position("AddPositionAdditionalReference").Agreement
	if b.supports(profile.FieldLineReference) {
		a.AdditionalReferencedDocuments = appendIf(a.AdditionalReferencedDocuments, b.values.ReferencedDocument(in))
	}
	return b
}

// SetPositionAdditionalReference replaces the additional line references
func (b *Builder) SetPositionAdditionalReference(in ReferenceInput) *Builder {
	a := b.position("SetPositionAdditionalReference").Agreement
	if b.supports(profile.FieldLineReference) {
		a.AdditionalReferencedDocuments = replaceWith(a.AdditionalReferencedDocuments, b.values.ReferencedDocument(in))
	}
	return b
}

// AddPositionUltimateCustomerOrderReference appends a reference to the order
// of the ultimate customer
func (b *Builder) AddPositionUltimateCustomerOrderReference(in ReferenceInput) *Builder {
	a := b.position("AddPositionUltimateCustomerOrderReference").Agreement
	if b.supports(profile.FieldUltimateCustomerOrderReference) {
		a.UltimateCustomerOrderReferencedDocuments = appendIf(a.UltimateCustomerOrderReferencedDocuments, b.values.ReferencedDocument(in))
	}
	return b
}

// SetPositionGrossPrice sets the gross price. Allowances and charges added
// to the gross price before are kept.
func (b *Builder) SetPositionGrossPrice(amount, basisQuantity decimal.NullDecimal, unit string) *Builder {
	a := b.position("SetPositionGrossPrice").Agreement
	if !b.supports(profile.FieldGrossPrice) {
		return b
	}
	var kept []*model.AllowanceCharge
	if a.GrossPrice != nil {
		kept = a.GrossPrice.AllowanceCharges
	}
	p := b.values.Price(amount, basisQuantity, unit)
	if p == nil && len(kept) > 0 {
		p = &model.TradePrice{}
	}
	if p != nil {
		p.AllowanceCharges = kept
	}
	a.GrossPrice = p
	return b
}

// AddPositionGrossPriceAllowanceCharge appends an allowance or charge to the
// gross price. The order does not matter relative to SetPositionGrossPrice.
func (b *Builder) AddPositionGrossPriceAllowanceCharge(in AllowanceChargeInput) *Builder {
	a := b.position("AddPositionGrossPriceAllowanceCharge").Agreement
	if !b.supports(profile.FieldGrossPrice) || !b.supports(profile.FieldPriceAllowanceCharge) {
		return b
	}
	ac := b.values.AllowanceCharge(in)
	if ac == nil {
		return b
	}
	if a.GrossPrice == nil {
		a.GrossPrice = &model.TradePrice{}
	}
	a.GrossPrice.AllowanceCharges = append(a.GrossPrice.AllowanceCharges, ac)
	return b
}

// SetPositionNetPrice sets the net price
func (b *Builder) SetPositionNetPrice(amount, basisQuantity decimal.NullDecimal, unit string) *Builder {
	a := b.position("SetPositionNetPrice").Agreement
	a.NetPrice = b.values.Price(amount, basisQuantity, unit)
	return b
}

// SetPositionNetPriceTax sets the tax included in the net price
func (b *Builder) SetPositionNetPriceTax(in TaxInput) *Builder {
	a := b.position("SetPositionNetPriceTax").Agreement
	if !b.supports(profile.FieldPriceIncludedTax) || a.NetPrice == nil {
		return b
	}
	a.NetPrice.IncludedTax = b.values.Tax(in)
	return b
}

// SetPositionPartialDelivery sets whether partial delivery is allowed
func (b *Builder) SetPositionPartialDelivery(allowed bool) *Builder {
	d := b.position("SetPositionPartialDelivery").Delivery
	if b.supports(profile.FieldPartialDelivery) {
		d.PartialDeliveryAllowed = b.values.Indicator(allowed)
	}
	return b
}

// SetPositionQuantity sets the requested quantity
func (b *Builder) SetPositionQuantity(quantity decimal.NullDecimal, unit string) *Builder {
	d := b.position("SetPositionQuantity").Delivery
	d.RequestedQuantity = b.values.Quantity(quantity, unit)
	return b
}

// SetPositionAgreedQuantity sets the agreed quantity
func (b *Builder) SetPositionAgreedQuantity(quantity decimal.NullDecimal, unit string) *Builder {
	d := b.position("SetPositionAgreedQuantity").Delivery
	if b.supports(profile.FieldAgreedQuantity) {
		d.AgreedQuantity = b.values.Quantity(quantity, unit)
	}
	return b
}

// SetPositionPackageQuantity sets the package quantity
func (b *Builder) SetPositionPackageQuantity(quantity decimal.NullDecimal, unit string) *Builder {
	d := b.position("SetPositionPackageQuantity").Delivery
	if b.supports(profile.FieldPackageQuantity) {
		d.PackageQuantity = b.values.Quantity(quantity, unit)
	}
	return b
}

// SetPositionRequestedDeliveryDate sets the requested delivery date of the line
func (b *Builder) SetPositionRequestedDeliveryDate(at time.Time) *Builder {
	d := b.position("SetPositionRequestedDeliveryDate").Delivery
	if b.supports(profile.FieldLineRequestedDelivery) {
		d.RequestedDeliveryEvent = b.values.Event(at)
	}
	return b
}

// SetPositionRequestedDeliveryPeriod sets the requested delivery period of the line
func (b *Builder) SetPositionRequestedDeliveryPeriod(start, end time.Time) *Builder {
	d := b.position("SetPositionRequestedDeliveryPeriod").Delivery
	if b.supports(profile.FieldLineRequestedDelivery) {
		d.RequestedDeliveryEvent = b.values.PeriodEvent(start, end)
	}
	return b
}

// SetPositionRequestedDespatchDate sets the requested pick-up date of the line
func (b *Builder) SetPositionRequestedDespatchDate(at time.Time) *Builder {
	d := b.position("SetPositionRequestedDespatchDate").Delivery
	if b.supports(profile.FieldLineRequestedDespatch) {
		d.RequestedDespatchEvent = b.values.Event(at)
	}
	return b
}

// SetPositionRequestedDespatchPeriod sets the requested pick-up period of the line
func (b *Builder) SetPositionRequestedDespatchPeriod(start, end time.Time) *Builder {
	d := b.position("SetPositionRequestedDespatchPeriod").Delivery
	if b.supports(profile.FieldLineRequestedDespatch) {
		d.RequestedDespatchEvent = b.values.PeriodEvent(start, end)
	}
	return b
}

// AddPositionTax appends a line tax
func (b *Builder) AddPositionTax(in TaxInput) *Builder {
	s := b.position("AddPositionTax").Settlement
	s.Taxes = appendIf(s.Taxes, b.values.Tax(in))
	return b
}

// SetPositionTax replaces the line taxes
func (b *Builder) SetPositionTax(in TaxInput) *Builder {
	s := b.position("SetPositionTax").Settlement
	s.Taxes = replaceWith(s.Taxes, b.values.Tax(in))
	return b
}

// AddPositionAllowanceCharge appends a line allowance or charge
func (b *Builder) AddPositionAllowanceCharge(in AllowanceChargeInput) *Builder {
	s := b.position("AddPositionAllowanceCharge").Settlement
	if b.supports(profile.FieldLineAllowanceCharge) {
		s.AllowanceCharges = appendIf(s.AllowanceCharges, b.values.AllowanceCharge(in))
	}
	return b
}

// SetPositionAllowanceCharge replaces the line allowances and charges
func (b *Builder) SetPositionAllowanceCharge(in AllowanceChargeInput) *Builder {
	s := b.position("SetPositionAllowanceCharge").Settlement
	if b.supports(profile.FieldLineAllowanceCharge) {
		s.AllowanceCharges = replaceWith(s.AllowanceCharges, b.values.AllowanceCharge(in))
	}
	return b
}

// SetPositionSummation sets the line totals
func (b *Builder) SetPositionSummation(lineTotal, allowanceChargeTotal decimal.NullDecimal) *Builder {
	s := b.position("SetPositionSummation").Settlement
	s.MonetarySummation = b.values.LineSummation(lineTotal, allowanceChargeTotal)
	return b
}

// SetPositionReceivableAccount sets the buyer accounting reference of the line
func (b *Builder) SetPositionReceivableAccount(id, typeCode string) *Builder {
	s := b.position("SetPositionReceivableAccount").Settlement
	if b.supports(profile.FieldLineReceivableAccount) {
		s.ReceivableAccount = b.values.AccountingAccount(id, typeCode)
	}
	return b
}
