package values

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/profile"
)

// AddressInput names every optional leaf of a postal address
type AddressInput struct {
	LineOne      string
	LineTwo      string
	LineThree    string
	Postcode     string
	City         string
	Country      string
	Subdivisions []string
}

// ContactInput names every optional leaf of a contact
type ContactInput struct {
	PersonName     string
	DepartmentName string
	TypeCode       string
	Phone          string
	Fax            string
	Email          string
}

// DeliveryTermsInput names every optional leaf of the delivery terms
type DeliveryTermsInput struct {
	Code         string
	Description  string
	FunctionCode string
	LocationID   string
	LocationName string
}

// ReferenceInput names every optional leaf of a referenced document
type ReferenceInput struct {
	ID                string
	LineID            string
	URI               string
	TypeCode          string
	Name              string
	ReferenceTypeCode string
	IssueDate         time.Time
	Attachment        []byte
	AttachmentMime    string
	AttachmentName    string
}

// TaxInput names every optional leaf of a tax
type TaxInput struct {
	CategoryCode        string
	TypeCode            string
	Rate                decimal.NullDecimal
	BasisAmount         decimal.NullDecimal
	CalculatedAmount    decimal.NullDecimal
	ExemptionReason     string
	ExemptionReasonCode string
}

// AllowanceChargeInput names every optional leaf of an allowance or charge
type AllowanceChargeInput struct {
	IsCharge        bool
	ActualAmount    decimal.NullDecimal
	BasisAmount     decimal.NullDecimal
	Percent         decimal.NullDecimal
	ReasonCode      string
	Reason          string
	TaxCategoryCode string
	TaxTypeCode     string
	TaxRate         decimal.NullDecimal
}

// SummationInput holds the six optional document totals
type SummationInput struct {
	LineTotal      decimal.NullDecimal
	ChargeTotal    decimal.NullDecimal
	AllowanceTotal decimal.NullDecimal
	TaxBasisTotal  decimal.NullDecimal
	TaxTotal       decimal.NullDecimal
	GrandTotal     decimal.NullDecimal
}

// ProductInput names the optional leaves of a product description
type ProductInput struct {
	Name         string
	Description  string
	SellerID     string
	BuyerID      string
	GlobalID     string
	GlobalIDType string
	IndustryID   string
	BatchID      string
	BrandName    string
}

// CharacteristicInput names the optional leaves of a product characteristic
type CharacteristicInput struct {
	Description string
	Value       string
	TypeCode    string
	Measure     decimal.NullDecimal
	MeasureUnit string
}

// PackagingInput names the optional leaves of a packaging
type PackagingInput struct {
	TypeCode string
	Width    decimal.NullDecimal
	Length   decimal.NullDecimal
	Height   decimal.NullDecimal
	Unit     string
}

// TradeParty creates a party with its name, one id and a description
func (f *Factory) TradeParty(name, id, description string) *model.TradeParty {
	p := &model.TradeParty{
		Name:        f.Text(name),
		Description: f.Text(description),
	}
	if i := f.ID(id, ""); i != nil {
		p.IDs = append(p.IDs, i)
	}
	if p.Name == nil && p.Description == nil && len(p.IDs) == 0 {
		return nil
	}
	return p
}

// Address creates a postal address
func (f *Factory) Address(in AddressInput) *model.TradeAddress {
	a := &model.TradeAddress{
		PostcodeCode:            f.Code(in.Postcode),
		LineOne:                 f.Text(in.LineOne),
		LineTwo:                 f.Text(in.LineTwo),
		LineThree:               f.Text(in.LineThree),
		CityName:                f.Text(in.City),
		CountryID:               f.Code(in.Country),
		CountrySubDivisionNames: f.Texts(in.Subdivisions...),
	}
	if a.PostcodeCode == nil && a.LineOne == nil && a.LineTwo == nil && a.LineThree == nil &&
		a.CityName == nil && a.CountryID == nil && len(a.CountrySubDivisionNames) == 0 {
		return nil
	}
	return a
}

// LegalOrganization creates a legal registration
func (f *Factory) LegalOrganization(id, scheme, tradingName string) *model.LegalOrganization {
	l := &model.LegalOrganization{
		ID:                  f.ID(id, scheme),
		TradingBusinessName: f.Text(tradingName),
	}
	if l.ID == nil && l.TradingBusinessName == nil {
		return nil
	}
	return l
}

// Contact creates a contact
func (f *Factory) Contact(in ContactInput) *model.TradeContact {
	c := &model.TradeContact{
		PersonName:     f.Text(in.PersonName),
		DepartmentName: f.Text(in.DepartmentName),
		TypeCode:       f.Code(in.TypeCode),
		Telephone:      f.PhoneNumber(in.Phone),
		Fax:            f.PhoneNumber(in.Fax),
		Email:          f.Communication(in.Email, ""),
	}
	if c.PersonName == nil && c.DepartmentName == nil && c.TypeCode == nil &&
		c.Telephone == nil && c.Fax == nil && c.Email == nil {
		return nil
	}
	return c
}

// PhoneNumber creates a communication carrying a complete number
func (f *Factory) PhoneNumber(number string) *model.UniversalCommunication {
	t := f.Text(number)
	if t == nil {
		return nil
	}
	return &model.UniversalCommunication{CompleteNumber: t}
}

// Communication creates a communication carrying a URI
func (f *Factory) Communication(uri, scheme string) *model.UniversalCommunication {
	id := f.ID(uri, scheme)
	if id == nil {
		return nil
	}
	return &model.UniversalCommunication{URIID: id}
}

// TaxRegistration creates a tax registration. scheme is VA or FC.
func (f *Factory) TaxRegistration(scheme, id string) *model.TaxRegistration {
	i := f.ID(id, scheme)
	if i == nil {
		return nil
	}
	return &model.TaxRegistration{ID: i}
}

// DeliveryTerms creates delivery terms
func (f *Factory) DeliveryTerms(in DeliveryTermsInput) *model.DeliveryTerms {
	d := &model.DeliveryTerms{
		DeliveryTypeCode: f.Code(in.Code),
		Description:      f.Text(in.Description),
		FunctionCode:     f.Code(in.FunctionCode),
		LocationID:       f.ID(in.LocationID, ""),
		LocationName:     f.Text(in.LocationName),
	}
	if d.DeliveryTypeCode == nil && d.Description == nil && d.FunctionCode == nil &&
		d.LocationID == nil && d.LocationName == nil {
		return nil
	}
	return d
}

// ReferencedDocument creates a referenced document. The issue date is only
// attached when the profile carries formatted reference dates.
func (f *Factory) ReferencedDocument(in ReferenceInput) *model.ReferencedDocument {
	r := &model.ReferencedDocument{
		IssuerAssignedID:       f.ID(in.ID, ""),
		URIID:                  f.ID(in.URI, ""),
		LineID:                 f.ID(in.LineID, ""),
		TypeCode:               f.Code(in.TypeCode),
		Name:                   f.Text(in.Name),
		AttachmentBinaryObject: f.BinaryObject(in.Attachment, in.AttachmentMime, in.AttachmentName),
		ReferenceTypeCode:      f.Code(in.ReferenceTypeCode),
	}
	if f.Supports(profile.FieldReferencedDocumentDate) {
		r.FormattedIssueDateTime = f.FormattedDateTime(in.IssueDate)
	}
	if r.IssuerAssignedID == nil && r.URIID == nil && r.LineID == nil && r.TypeCode == nil &&
		r.Name == nil && r.AttachmentBinaryObject == nil && r.ReferenceTypeCode == nil &&
		r.FormattedIssueDateTime == nil {
		return nil
	}
	return r
}

// ProcuringProject creates a project reference
func (f *Factory) ProcuringProject(id, name string) *model.ProcuringProject {
	p := &model.ProcuringProject{ID: f.ID(id, ""), Name: f.Text(name)}
	if p.ID == nil && p.Name == nil {
		return nil
	}
	return p
}

// Note creates a note
func (f *Factory) Note(content, contentCode, subjectCode string) *model.Note {
	n := &model.Note{
		Content:     f.Text(content),
		ContentCode: f.Code(contentCode),
		SubjectCode: f.Code(subjectCode),
	}
	if n.Content == nil && n.ContentCode == nil && n.SubjectCode == nil {
		return nil
	}
	return n
}

// PaymentMeans creates a payment means
func (f *Factory) PaymentMeans(typeCode, information string) *model.PaymentMeans {
	p := &model.PaymentMeans{TypeCode: f.Code(typeCode), Information: f.Text(information)}
	if p.TypeCode == nil && p.Information == nil {
		return nil
	}
	return p
}

// PaymentTerms creates payment terms
func (f *Factory) PaymentTerms(description string, due time.Time) *model.PaymentTerms {
	p := &model.PaymentTerms{Description: f.Text(description), DueDateTime: f.DateTime(due)}
	if p.Description == nil && p.DueDateTime == nil {
		return nil
	}
	return p
}

// Tax creates a tax. Amounts carry no currency attribute.
func (f *Factory) Tax(in TaxInput) *model.TradeTax {
	t := &model.TradeTax{
		CalculatedAmount:      f.Amount(in.CalculatedAmount, ""),
		TypeCode:              f.Code(in.TypeCode),
		ExemptionReason:       f.Text(in.ExemptionReason),
		BasisAmount:           f.Amount(in.BasisAmount, ""),
		CategoryCode:          f.Code(in.CategoryCode),
		ExemptionReasonCode:   f.Code(in.ExemptionReasonCode),
		RateApplicablePercent: f.Percent(in.Rate),
	}
	if t.CalculatedAmount == nil && t.TypeCode == nil && t.ExemptionReason == nil && t.BasisAmount == nil &&
		t.CategoryCode == nil && t.ExemptionReasonCode == nil && t.RateApplicablePercent == nil {
		return nil
	}
	return t
}

// AllowanceCharge creates an allowance or charge. The charge indicator alone
// does not make a node.
func (f *Factory) AllowanceCharge(in AllowanceChargeInput) *model.AllowanceCharge {
	a := &model.AllowanceCharge{
		CalculationPercent: f.Percent(in.Percent),
		BasisAmount:        f.Amount(in.BasisAmount, ""),
		ActualAmount:       f.Amount(in.ActualAmount, ""),
		ReasonCode:         f.Code(in.ReasonCode),
		Reason:             f.Text(in.Reason),
		CategoryTradeTax: f.Tax(TaxInput{
			CategoryCode: in.TaxCategoryCode,
			TypeCode:     in.TaxTypeCode,
			Rate:         in.TaxRate,
		}),
	}
	if a.CalculationPercent == nil && a.BasisAmount == nil && a.ActualAmount == nil &&
		a.ReasonCode == nil && a.Reason == nil && a.CategoryTradeTax == nil {
		return nil
	}
	a.ChargeIndicator = f.Indicator(in.IsCharge)
	return a
}

// Summation creates the document totals
func (f *Factory) Summation(in SummationInput) *model.MonetarySummation {
	s := &model.MonetarySummation{
		LineTotalAmount:      f.Amount(in.LineTotal, ""),
		ChargeTotalAmount:    f.Amount(in.ChargeTotal, ""),
		AllowanceTotalAmount: f.Amount(in.AllowanceTotal, ""),
		TaxBasisTotalAmount:  f.Amount(in.TaxBasisTotal, ""),
		TaxTotalAmount:       f.Amount(in.TaxTotal, ""),
		GrandTotalAmount:     f.Amount(in.GrandTotal, ""),
	}
	if s.LineTotalAmount == nil && s.ChargeTotalAmount == nil && s.AllowanceTotalAmount == nil &&
		s.TaxBasisTotalAmount == nil && s.TaxTotalAmount == nil && s.GrandTotalAmount == nil {
		return nil
	}
	return s
}

// LineSummation creates the line totals
func (f *Factory) LineSummation(lineTotal, allowanceChargeTotal decimal.NullDecimal) *model.LineMonetarySummation {
	s := &model.LineMonetarySummation{
		LineTotalAmount:            f.Amount(lineTotal, ""),
		TotalAllowanceChargeAmount: f.Amount(allowanceChargeTotal, ""),
	}
	if s.LineTotalAmount == nil && s.TotalAllowanceChargeAmount == nil {
		return nil
	}
	return s
}

// AccountingAccount creates a buyer accounting reference
func (f *Factory) AccountingAccount(id, typeCode string) *model.AccountingAccount {
	a := &model.AccountingAccount{ID: f.ID(id, ""), TypeCode: f.Code(typeCode)}
	if a.ID == nil && a.TypeCode == nil {
		return nil
	}
	return a
}

// Price creates a gross or net price
func (f *Factory) Price(amount, basisQuantity decimal.NullDecimal, unit string) *model.TradePrice {
	p := &model.TradePrice{
		ChargeAmount:  f.Amount(amount, ""),
		BasisQuantity: f.Quantity(basisQuantity, unit),
	}
	if p.ChargeAmount == nil && p.BasisQuantity == nil {
		return nil
	}
	return p
}

// LineDocument creates the line identification
func (f *Factory) LineDocument(lineID, statusCode string) *model.DocumentLineDocument {
	d := &model.DocumentLineDocument{LineID: f.ID(lineID, ""), LineStatusCode: f.Code(statusCode)}
	if d.LineID == nil && d.LineStatusCode == nil {
		return nil
	}
	return d
}

// ProductCharacteristic creates a product characteristic
func (f *Factory) ProductCharacteristic(in CharacteristicInput) *model.ProductCharacteristic {
	c := &model.ProductCharacteristic{
		TypeCode:     f.Code(in.TypeCode),
		Description:  f.Text(in.Description),
		ValueMeasure: f.Measure(in.Measure, in.MeasureUnit),
		Value:        f.Text(in.Value),
	}
	if c.TypeCode == nil && c.Description == nil && c.ValueMeasure == nil && c.Value == nil {
		return nil
	}
	return c
}

// ProductClassification creates a product classification
func (f *Factory) ProductClassification(classCode, listID, listVersionID, className string) *model.ProductClassification {
	c := &model.ProductClassification{
		ClassCode: f.CodeWithList(classCode, listID, listVersionID),
		ClassName: f.Text(className),
	}
	if c.ClassCode == nil && c.ClassName == nil {
		return nil
	}
	return c
}

// ProductInstance creates a product instance
func (f *Factory) ProductInstance(batchID, serialID string) *model.ProductInstance {
	i := &model.ProductInstance{BatchID: f.ID(batchID, ""), SerialID: f.ID(serialID, "")}
	if i.BatchID == nil && i.SerialID == nil {
		return nil
	}
	return i
}

// Packaging creates a packaging description
func (f *Factory) Packaging(in PackagingInput) *model.Packaging {
	p := &model.Packaging{
		TypeCode: f.Code(in.TypeCode),
		Width:    f.Measure(in.Width, in.Unit),
		Length:   f.Measure(in.Length, in.Unit),
		Height:   f.Measure(in.Height, in.Unit),
	}
	if p.TypeCode == nil && p.Width == nil && p.Length == nil && p.Height == nil {
		return nil
	}
	return p
}
