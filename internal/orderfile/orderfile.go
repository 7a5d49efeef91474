// Package orderfile reads order definitions written in YAML or JSON and
// replays them onto a document builder.
package orderfile

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rezonia/orderx/internal/builder"
	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/profile"
)

// Load reads an order definition from path
func Load(path string) (*Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order file: %w", err)
	}
	return Parse(data)
}

// Parse decodes an order definition. JSON input is accepted as YAML.
// Unknown keys are rejected.
func Parse(data []byte) (*Order, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var o Order
	if err := dec.Decode(&o); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, model.NewParseError("orderfile", "document", "empty order definition", model.ErrMissingField)
		}
		return nil, model.NewParseError("orderfile", "document", "invalid order definition", err)
	}
	return &o, nil
}

// Build replays the definition onto a new builder. The profile defaults to
// BASIC when the definition names none.
func (o *Order) Build() (*builder.Builder, error) {
	p := profile.Basic
	if o.Profile != "" {
		parsed, err := profile.Parse(o.Profile)
		if err != nil {
			return nil, model.NewParseError("orderfile", "profile", "unknown profile", err)
		}
		p = parsed
	}
	b := builder.New(p)

	if err := o.applyDocument(b); err != nil {
		return nil, err
	}
	if err := o.applyParties(b); err != nil {
		return nil, err
	}
	if err := o.applyReferences(b); err != nil {
		return nil, err
	}
	o.applyDelivery(b)
	o.applySettlement(b)

	for i := range o.Lines {
		if err := applyLine(b, &o.Lines[i]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// invalid reports a definition that parsed but breaks a field rule
func invalid(field string, value any, rule, message string) error {
	return model.NewParseError("orderfile", field, message, model.NewValidationError(field, value, rule, message))
}

func fieldError(field string, err error) error {
	return model.NewParseError("orderfile", field, err.Error(), err)
}

func (o *Order) applyDocument(b *builder.Builder) error {
	d := o.Document
	if d.ID == "" {
		return invalid("document.id", nil, "required", "order id is required")
	}
	typeCode := d.TypeCode
	if typeCode == "" {
		typeCode = model.DocumentTypeOrder
	}
	b.SetDocumentInformation(d.ID, typeCode, d.Issued.Time, d.Currency).
		SetDocumentName(d.Name).
		SetDocumentLanguage(d.Language).
		SetDocumentPurposeCode(d.PurposeCode).
		SetDocumentRequestedResponseTypeCode(d.RequestedResponseTypeCode).
		SetBusinessProcess(d.BusinessProcess).
		SetBuyerReference(d.BuyerReference)
	if d.Copy != nil {
		b.SetDocumentCopyIndicator(*d.Copy)
	}
	if d.Test != nil {
		b.SetTestIndicator(*d.Test)
	}
	for _, n := range d.Notes {
		b.AddDocumentNote(n.Content, n.ContentCode, n.SubjectCode)
	}
	if d.ProcuringProject != nil {
		b.SetProcuringProject(d.ProcuringProject.ID, d.ProcuringProject.Name)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o *Order) applyParties(b *builder.Builder) error {
	for _, name := range sortedKeys(o.Parties) {
		role, ok := builder.ParsePartyRole(name)
		if !ok {
			return invalid("parties."+name, name, "party_role", "unknown party role")
		}
		p := o.Parties[name]

		ids := p.IDs
		var first string
		if len(ids) > 0 {
			first, ids = ids[0], ids[1:]
		}
		b.SetParty(role, p.Name, first, p.Description)
		for _, id := range ids {
			b.AddPartyID(role, id)
		}
		for _, g := range p.GlobalIDs {
			b.AddPartyGlobalID(role, g.ID, g.Scheme)
		}
		for _, t := range p.TaxRegistrations {
			b.AddPartyTaxRegistration(role, t.Scheme, t.ID)
		}
		if p.Address != nil {
			b.SetPartyAddress(role, builder.AddressInput{
				LineOne:      p.Address.LineOne,
				LineTwo:      p.Address.LineTwo,
				LineThree:    p.Address.LineThree,
				Postcode:     p.Address.Postcode,
				City:         p.Address.City,
				Country:      p.Address.Country,
				Subdivisions: p.Address.Subdivisions,
			})
		}
		if lo := p.LegalOrganization; lo != nil {
			b.SetPartyLegalOrganization(role, lo.ID, lo.Scheme, lo.TradingName)
		}
		for _, c := range p.Contacts {
			b.AddPartyContact(role, builder.ContactInput{
				PersonName:     c.PersonName,
				DepartmentName: c.Department,
				TypeCode:       c.TypeCode,
				Phone:          c.Phone,
				Fax:            c.Fax,
				Email:          c.Email,
			})
		}
		for _, c := range p.Communications {
			b.AddPartyCommunication(role, c.ID, c.Scheme)
		}
	}
	return nil
}

func (r Reference) input(field string) (builder.ReferenceInput, error) {
	in := builder.ReferenceInput{
		ID:                r.ID,
		LineID:            r.LineID,
		URI:               r.URI,
		TypeCode:          r.TypeCode,
		Name:              r.Name,
		ReferenceTypeCode: r.ReferenceTypeCode,
		IssueDate:         r.IssueDate.Time,
		AttachmentMime:    r.AttachmentMime,
		AttachmentName:    r.AttachmentName,
	}
	if r.Attachment != "" {
		data, err := base64.StdEncoding.DecodeString(r.Attachment)
		if err != nil {
			return in, fieldError(field+".attachment", err)
		}
		in.Attachment = data
	}
	return in, nil
}

func (o *Order) applyReferences(b *builder.Builder) error {
	for _, name := range sortedKeys(o.References) {
		kind, ok := builder.ParseReferenceKind(name)
		if !ok {
			return invalid("references."+name, name, "reference_kind", "unknown reference kind")
		}
		in, err := o.References[name].input("references." + name)
		if err != nil {
			return err
		}
		b.SetReference(kind, in)
	}
	for i, r := range o.AdditionalReferences {
		in, err := r.input(fmt.Sprintf("additional_references[%d]", i))
		if err != nil {
			return err
		}
		b.AddAdditionalReference(in)
	}
	return nil
}

func (o *Order) applyDelivery(b *builder.Builder) {
	d := o.Delivery
	if t := d.Terms; t != nil {
		b.SetDeliveryTerms(builder.DeliveryTermsInput{
			Code:         t.Code,
			Description:  t.Description,
			FunctionCode: t.FunctionCode,
			LocationID:   t.LocationID,
			LocationName: t.LocationName,
		})
	}
	if d.DeliveryPeriod != nil {
		b.SetRequestedDeliveryPeriod(d.DeliveryPeriod.Start.Time, d.DeliveryPeriod.End.Time)
	} else {
		b.SetRequestedDeliveryDate(d.DeliveryDate.Time)
	}
	if d.DespatchPeriod != nil {
		b.SetRequestedDespatchPeriod(d.DespatchPeriod.Start.Time, d.DespatchPeriod.End.Time)
	} else {
		b.SetRequestedDespatchDate(d.DespatchDate.Time)
	}
}

func (t Tax) input() builder.TaxInput {
	return builder.TaxInput{
		CategoryCode:        t.CategoryCode,
		TypeCode:            t.TypeCode,
		Rate:                t.Rate.NullDecimal,
		BasisAmount:         t.BasisAmount.NullDecimal,
		CalculatedAmount:    t.CalculatedAmount.NullDecimal,
		ExemptionReason:     t.ExemptionReason,
		ExemptionReasonCode: t.ExemptionReasonCode,
	}
}

func (a AllowanceCharge) input() builder.AllowanceChargeInput {
	return builder.AllowanceChargeInput{
		IsCharge:        a.Charge,
		ActualAmount:    a.ActualAmount.NullDecimal,
		BasisAmount:     a.BasisAmount.NullDecimal,
		Percent:         a.Percent.NullDecimal,
		ReasonCode:      a.ReasonCode,
		Reason:          a.Reason,
		TaxCategoryCode: a.TaxCategoryCode,
		TaxTypeCode:     a.TaxTypeCode,
		TaxRate:         a.TaxRate.NullDecimal,
	}
}

func (o *Order) applySettlement(b *builder.Builder) {
	s := o.Settlement
	for _, m := range s.PaymentMeans {
		b.AddPaymentMeans(m.TypeCode, m.Information)
	}
	for _, t := range s.PaymentTerms {
		b.AddPaymentTerms(t.Description, t.Due.Time)
	}
	for _, t := range s.Taxes {
		b.AddTax(t.input())
	}
	for _, a := range s.AllowanceCharges {
		b.AddAllowanceCharge(a.input())
	}
	if m := s.Summation; m != nil {
		b.SetSummation(builder.SummationInput{
			LineTotal:      m.LineTotal.NullDecimal,
			ChargeTotal:    m.ChargeTotal.NullDecimal,
			AllowanceTotal: m.AllowanceTotal.NullDecimal,
			TaxBasisTotal:  m.TaxBasisTotal.NullDecimal,
			TaxTotal:       m.TaxTotal.NullDecimal,
			GrandTotal:     m.GrandTotal.NullDecimal,
		})
	}
	if a := s.ReceivableAccount; a != nil {
		b.SetReceivableAccount(a.ID, a.TypeCode)
	}
}

func applyLine(b *builder.Builder, l *Line) error {
	if l.ID == "" {
		return invalid("lines.id", nil, "required", "line id is required")
	}
	field := "lines[" + l.ID + "]"
	b.AddNewPositionWithStatus(l.ID, l.Status)

	for _, n := range l.Notes {
		b.AddPositionNote(n.Content, n.ContentCode, n.SubjectCode)
	}

	p := l.Product
	b.SetPositionProduct(builder.ProductInput{
		Name:         p.Name,
		Description:  p.Description,
		SellerID:     p.SellerID,
		BuyerID:      p.BuyerID,
		GlobalID:     p.GlobalID,
		GlobalIDType: p.GlobalIDType,
		IndustryID:   p.IndustryID,
		BatchID:      p.BatchID,
		BrandName:    p.BrandName,
	})
	for _, c := range p.Characteristics {
		b.AddPositionProductCharacteristic(builder.CharacteristicInput{
			Description: c.Description,
			Value:       c.Value,
			TypeCode:    c.TypeCode,
			Measure:     c.Measure.NullDecimal,
			MeasureUnit: c.MeasureUnit,
		})
	}
	for _, c := range p.Classifications {
		b.AddPositionProductClassification(c.Code, c.ListID, c.ListVersionID, c.Name)
	}
	for _, i := range p.Instances {
		b.AddPositionProductInstance(i.BatchID, i.SerialID)
	}
	if pk := p.Packaging; pk != nil {
		b.SetPositionProductPackaging(builder.PackagingInput{
			TypeCode: pk.TypeCode,
			Width:    pk.Width.NullDecimal,
			Length:   pk.Length.NullDecimal,
			Height:   pk.Height.NullDecimal,
			Unit:     pk.Unit,
		})
	}
	b.SetPositionProductOriginCountry(p.OriginCountry)
	for i, r := range p.References {
		in, err := r.input(fmt.Sprintf("%s.product.references[%d]", field, i))
		if err != nil {
			return err
		}
		b.AddPositionProductReference(in)
	}

	for _, name := range sortedKeys(l.References) {
		kind, ok := builder.ParseLineReferenceKind(name)
		if !ok {
			return invalid(field+".references."+name, name, "line_reference_kind", "unknown reference kind")
		}
		in, err := l.References[name].input(field + ".references." + name)
		if err != nil {
			return err
		}
		b.SetPositionReference(kind, in)
	}
	for i, r := range l.AdditionalReferences {
		in, err := r.input(fmt.Sprintf("%s.additional_references[%d]", field, i))
		if err != nil {
			return err
		}
		b.AddPositionAdditionalReference(in)
	}
	for i, r := range l.UltimateCustomerOrders {
		in, err := r.input(fmt.Sprintf("%s.ultimate_customer_orders[%d]", field, i))
		if err != nil {
			return err
		}
		b.AddPositionUltimateCustomerOrderReference(in)
	}

	if gp := l.GrossPrice; gp != nil {
		b.SetPositionGrossPrice(gp.Amount.NullDecimal, gp.BasisQuantity.NullDecimal, gp.Unit)
		for _, a := range gp.AllowanceCharges {
			b.AddPositionGrossPriceAllowanceCharge(a.input())
		}
	}
	if np := l.NetPrice; np != nil {
		b.SetPositionNetPrice(np.Amount.NullDecimal, np.BasisQuantity.NullDecimal, np.Unit)
		if np.Tax != nil {
			b.SetPositionNetPriceTax(np.Tax.input())
		}
	}

	if l.PartialDelivery != nil {
		b.SetPositionPartialDelivery(*l.PartialDelivery)
	}
	if q := l.Quantity; q != nil {
		b.SetPositionQuantity(q.Value.NullDecimal, q.Unit)
	}
	if q := l.AgreedQuantity; q != nil {
		b.SetPositionAgreedQuantity(q.Value.NullDecimal, q.Unit)
	}
	if q := l.PackageQuantity; q != nil {
		b.SetPositionPackageQuantity(q.Value.NullDecimal, q.Unit)
	}
	if l.DeliveryPeriod != nil {
		b.SetPositionRequestedDeliveryPeriod(l.DeliveryPeriod.Start.Time, l.DeliveryPeriod.End.Time)
	} else {
		b.SetPositionRequestedDeliveryDate(l.DeliveryDate.Time)
	}
	if l.DespatchPeriod != nil {
		b.SetPositionRequestedDespatchPeriod(l.DespatchPeriod.Start.Time, l.DespatchPeriod.End.Time)
	} else {
		b.SetPositionRequestedDespatchDate(l.DespatchDate.Time)
	}

	for _, t := range l.Taxes {
		b.AddPositionTax(t.input())
	}
	for _, a := range l.AllowanceCharges {
		b.AddPositionAllowanceCharge(a.input())
	}
	b.SetPositionSummation(l.LineTotal.NullDecimal, l.AllowanceChargeTotal.NullDecimal)
	if a := l.ReceivableAccount; a != nil {
		b.SetPositionReceivableAccount(a.ID, a.TypeCode)
	}
	return nil
}
