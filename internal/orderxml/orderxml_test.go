package orderxml_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/orderx/internal/builder"
	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/orderxml"
	"github.com/rezonia/orderx/internal/profile"
)

var issued = time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func sampleOrder(p profile.Profile) *builder.Builder {
	b := builder.New(p)
	b.SetDocumentInformation("PO123456789", model.DocumentTypeOrder, issued, "EUR").
		AddDocumentNote("Deliver to gate 4", "", "").
		SetParty(builder.Seller, "SELLER_NAME", "SUP-1", "").
		AddPartyTaxRegistration(builder.Seller, "VA", "DE123456789").
		SetPartyAddress(builder.Seller, builder.AddressInput{LineOne: "Main Street 1", Postcode: "10115", City: "Berlin", Country: "DE"}).
		SetParty(builder.Buyer, "BUYER_NAME", "", "").
		SetReference(builder.QuotationReference, builder.ReferenceInput{ID: "Q-7", IssueDate: issued.AddDate(0, 0, -31)}).
		SetSummation(builder.SummationInput{LineTotal: nd("100"), GrandTotal: nd("119")})
	b.AddNewPosition("1").
		SetPositionProduct(builder.ProductInput{Name: "Gear", SellerID: "G-1"}).
		SetPositionNetPrice(nd("10"), decimal.NullDecimal{}, "").
		SetPositionQuantity(nd("10"), "C62").
		SetPositionSummation(nd("100"), decimal.NullDecimal{})
	b.AddNewPosition("2").
		SetPositionProduct(builder.ProductInput{Name: "Bolt"}).
		SetPositionQuantity(nd("2.5"), "KGM")
	return b
}

func TestMarshal_Basic(t *testing.T) {
	b := sampleOrder(profile.Basic)
	data, err := orderxml.Marshal(b.Order(), b.Definition())
	require.NoError(t, err)
	s := string(data)

	assert.True(t, strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, s, "<rsm:SCRDMCCBDACIOMessageStructure")
	assert.Contains(t, s, `xmlns:rsm="`+orderxml.NSMessage+`"`)
	assert.Contains(t, s, `xmlns:ram="`+orderxml.NSAggregate+`"`)
	assert.Contains(t, s, `xmlns:udt="`+orderxml.NSUnqualified+`"`)
	assert.NotContains(t, s, "xmlns:qdt")
	assert.Contains(t, s, "<ram:ID>urn:order-x.eu:1p0:basic</ram:ID>")
	assert.Contains(t, s, "<ram:TypeCode>220</ram:TypeCode>")
	assert.Contains(t, s, `<udt:DateTimeString format="102">20221231</udt:DateTimeString>`)
	assert.Contains(t, s, "<ram:GrandTotalAmount>119.00</ram:GrandTotalAmount>")
	assert.Contains(t, s, `<ram:RequestedQuantity unitCode="KGM">2.5</ram:RequestedQuantity>`)
	assert.Contains(t, s, "<udt:Indicator>false</udt:Indicator>")
	// quotation references are not part of BASIC
	assert.NotContains(t, s, "QuotationReferencedDocument")
	assert.NotContains(t, s, "ChargeTotalAmount")
	assert.Equal(t, 2, strings.Count(s, "<ram:IncludedSupplyChainTradeLineItem>"))
}

func TestMarshal_ExtendedDeclaresQualifiedTypes(t *testing.T) {
	b := sampleOrder(profile.Extended)
	data, err := orderxml.Marshal(b.Order(), b.Definition())
	require.NoError(t, err)
	s := string(data)

	assert.Contains(t, s, `xmlns:qdt="`+orderxml.NSQualified+`"`)
	assert.Contains(t, s, "<ram:QuotationReferencedDocument>")
	assert.Contains(t, s, `<qdt:DateTimeString format="102">20221130</qdt:DateTimeString>`)
}

func TestMarshal_MandatoryContainersOnEmptyOrder(t *testing.T) {
	b := builder.New(profile.Comfort)
	data, err := b.XML()
	require.NoError(t, err)
	s := string(data)

	for _, tag := range []string{
		"rsm:ExchangedDocumentContext",
		"rsm:ExchangedDocument",
		"rsm:SupplyChainTradeTransaction",
		"ram:ApplicableHeaderTradeAgreement",
		"ram:ApplicableHeaderTradeDelivery",
		"ram:ApplicableHeaderTradeSettlement",
	} {
		assert.Contains(t, s, "<"+tag, tag)
	}
	assert.NotContains(t, s, "SellerTradeParty")
}

func TestMarshal_NilOrder(t *testing.T) {
	_, err := orderxml.Marshal(nil, profile.Lookup(profile.Basic))
	assert.Error(t, err)
}

func TestRead_RoundTrip(t *testing.T) {
	for _, p := range []profile.Profile{profile.Basic, profile.Comfort, profile.Extended} {
		t.Run(p.String(), func(t *testing.T) {
			b := sampleOrder(p)
			data, err := b.XML()
			require.NoError(t, err)

			doc, err := orderxml.Read(data)
			require.NoError(t, err)
			assert.Equal(t, p, doc.Profile())

			raw, err := doc.XML()
			require.NoError(t, err)
			assert.Equal(t, data, raw)

			o := doc.Order()
			assert.Equal(t, "PO123456789", model.IDValue(o.Document.ID))
			assert.Equal(t, "220", model.CodeValue(o.Document.TypeCode))
			require.NotNil(t, o.Document.IssueDateTime)
			assert.True(t, issued.Equal(o.Document.IssueDateTime.Value))
			require.Len(t, o.Document.Notes, 1)
			assert.Equal(t, "SELLER_NAME", model.TextValue(o.Transaction.Agreement.Seller.Name))
			require.Len(t, o.Transaction.Agreement.Seller.TaxRegistrations, 1)
			assert.Equal(t, "Berlin", model.TextValue(o.Transaction.Agreement.Seller.Address.CityName))
			assert.Equal(t, "EUR", model.CodeValue(o.Transaction.Settlement.Currency))
			require.Len(t, o.Transaction.LineItems, 2)
			assert.Equal(t, "2", o.Transaction.LineItems[1].LineID())
			assert.True(t, o.Transaction.LineItems[1].Delivery.RequestedQuantity.Value.Equal(decimal.RequireFromString("2.5")))

			again, err := orderxml.Marshal(o, doc.Definition())
			require.NoError(t, err)
			assert.Equal(t, string(data), string(again))
		})
	}
}

func TestRead_HonorsDateFormat(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<rsm:SCRDMCCBDACIOMessageStructure xmlns:rsm="` + orderxml.NSMessage + `" xmlns:ram="` + orderxml.NSAggregate + `" xmlns:udt="` + orderxml.NSUnqualified + `">
  <rsm:ExchangedDocumentContext>
    <ram:GuidelineSpecifiedDocumentContextParameter><ram:ID>urn:order-x.eu:1p0:extended</ram:ID></ram:GuidelineSpecifiedDocumentContextParameter>
  </rsm:ExchangedDocumentContext>
  <rsm:ExchangedDocument>
    <ram:ID>PO-9</ram:ID>
    <ram:TypeCode>231</ram:TypeCode>
    <ram:IssueDateTime><udt:DateTimeString format="204">20230102153045</udt:DateTimeString></ram:IssueDateTime>
  </rsm:ExchangedDocument>
  <rsm:SupplyChainTradeTransaction/>
</rsm:SCRDMCCBDACIOMessageStructure>`

	doc, err := orderxml.Read([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, profile.Extended, doc.Profile())
	dt := doc.Order().Document.IssueDateTime
	require.NotNil(t, dt)
	assert.True(t, time.Date(2023, 1, 2, 15, 30, 45, 0, time.UTC).Equal(dt.Value))
	assert.Equal(t, "204", dt.Format)

	summary := orderxml.Summarize(doc)
	assert.Equal(t, "Order Response", summary.TypeName)
	assert.Equal(t, "2023-01-02", summary.IssueDate)
	assert.Equal(t, 0, summary.LineCount)
}

func TestRead_Errors(t *testing.T) {
	const head = `<rsm:SCRDMCCBDACIOMessageStructure xmlns:rsm="x" xmlns:ram="y" xmlns:udt="z">`
	const tail = `</rsm:SCRDMCCBDACIOMessageStructure>`

	tests := []struct {
		name    string
		content string
		missing bool
		unknown bool
	}{
		{name: "not xml", content: "not xml at all <"},
		{name: "wrong root", content: `<Invoice><ID>1</ID></Invoice>`},
		{name: "missing guideline", content: head + `<rsm:ExchangedDocumentContext/>` + tail, missing: true},
		{name: "unknown guideline", content: head + `<rsm:ExchangedDocumentContext><ram:GuidelineSpecifiedDocumentContextParameter><ram:ID>urn:other</ram:ID></ram:GuidelineSpecifiedDocumentContextParameter></rsm:ExchangedDocumentContext>` + tail},
		{
			name: "unknown date format",
			content: head + `<rsm:ExchangedDocumentContext><ram:GuidelineSpecifiedDocumentContextParameter><ram:ID>urn:order-x.eu:1p0:basic</ram:ID></ram:GuidelineSpecifiedDocumentContextParameter></rsm:ExchangedDocumentContext>` +
				`<rsm:ExchangedDocument><ram:IssueDateTime><udt:DateTimeString format="999">20221231</udt:DateTimeString></ram:IssueDateTime></rsm:ExchangedDocument><rsm:SupplyChainTradeTransaction/>` + tail,
			unknown: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := orderxml.Read([]byte(tt.content))
			require.Error(t, err)
			var perr *model.ParseError
			assert.True(t, errors.As(err, &perr))
			if tt.missing {
				assert.ErrorIs(t, err, model.ErrMissingField)
			}
			if tt.unknown {
				assert.ErrorIs(t, err, model.ErrUnknownDateFormat)
			}
		})
	}
}

func TestRead_MalformedLeavesFail(t *testing.T) {
	tests := []struct {
		name    string
		profile profile.Profile
		old     string
		new     string
		field   string
	}{
		{"grand total", profile.Basic, "<ram:GrandTotalAmount>119.00<", "<ram:GrandTotalAmount>12,50<", "GrandTotalAmount"},
		{"quantity", profile.Basic, `unitCode="C62">10<`, `unitCode="C62">ten<`, "RequestedQuantity"},
		{"reference date", profile.Extended, `format="102">20221130<`, `format="102">2022-11-30<`, "DateTimeString"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := sampleOrder(tt.profile).XML()
			require.NoError(t, err)
			require.Contains(t, string(data), tt.old)

			_, err = orderxml.Read([]byte(strings.Replace(string(data), tt.old, tt.new, 1)))
			require.Error(t, err)
			var perr *model.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.field, perr.Field)
			assert.Equal(t, tt.profile.String(), perr.Profile)
		})
	}
}

func TestDetectAndCanRead(t *testing.T) {
	data, err := sampleOrder(profile.Comfort).XML()
	require.NoError(t, err)

	assert.True(t, orderxml.CanRead(data))
	assert.False(t, orderxml.CanRead([]byte("<Invoice/>")))

	def, err := orderxml.Detect(data)
	require.NoError(t, err)
	assert.Equal(t, profile.Comfort, def.Profile)
}

func TestParse_Reader(t *testing.T) {
	data, err := sampleOrder(profile.Basic).XML()
	require.NoError(t, err)

	doc, err := orderxml.Parse(context.Background(), strings.NewReader(string(data)))
	require.NoError(t, err)

	s := orderxml.Summarize(doc)
	assert.Equal(t, "BASIC", s.Profile)
	assert.Equal(t, "PO123456789", s.OrderID)
	assert.Equal(t, "Order", s.TypeName)
	assert.Equal(t, "SELLER_NAME", s.Seller)
	assert.Equal(t, "BUYER_NAME", s.Buyer)
	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, "119.00", s.GrandTotal)
	assert.Equal(t, []string{"1", "2"}, s.LineIDs)
}
