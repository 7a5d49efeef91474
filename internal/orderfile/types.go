package orderfile

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	dec "github.com/rezonia/orderx/internal/decimal"
	"github.com/rezonia/orderx/internal/values"
)

// Order is the file representation of an order document
type Order struct {
	Profile              string               `yaml:"profile"`
	Document             Document             `yaml:"document"`
	Parties              map[string]Party     `yaml:"parties"`
	References           map[string]Reference `yaml:"references"`
	AdditionalReferences []Reference          `yaml:"additional_references"`
	Delivery             Delivery             `yaml:"delivery"`
	Settlement           Settlement           `yaml:"settlement"`
	Lines                []Line               `yaml:"lines"`
}

// Document holds the header fields
type Document struct {
	ID                        string   `yaml:"id"`
	TypeCode                  string   `yaml:"type_code"`
	Issued                    Date     `yaml:"issued"`
	Currency                  string   `yaml:"currency"`
	Name                      string   `yaml:"name"`
	Language                  string   `yaml:"language"`
	PurposeCode               string   `yaml:"purpose_code"`
	RequestedResponseTypeCode string   `yaml:"requested_response_type_code"`
	Copy                      *bool    `yaml:"copy"`
	Test                      *bool    `yaml:"test"`
	BusinessProcess           string   `yaml:"business_process"`
	BuyerReference            string   `yaml:"buyer_reference"`
	Notes                     []Note   `yaml:"notes"`
	ProcuringProject          *Project `yaml:"procuring_project"`
}

type Note struct {
	Content     string `yaml:"content"`
	ContentCode string `yaml:"content_code"`
	SubjectCode string `yaml:"subject_code"`
}

type Project struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Party is keyed by role name in Order.Parties
type Party struct {
	Name              string             `yaml:"name"`
	Description       string             `yaml:"description"`
	IDs               Strings            `yaml:"ids"`
	GlobalIDs         []SchemeID         `yaml:"global_ids"`
	TaxRegistrations  []SchemeID         `yaml:"tax_registrations"`
	Address           *Address           `yaml:"address"`
	LegalOrganization *LegalOrganization `yaml:"legal_organization"`
	Contacts          []Contact          `yaml:"contacts"`
	Communications    []SchemeID         `yaml:"communications"`
}

// SchemeID is an identifier qualified by a scheme
type SchemeID struct {
	ID     string `yaml:"id"`
	Scheme string `yaml:"scheme"`
}

type Address struct {
	LineOne      string  `yaml:"line_one"`
	LineTwo      string  `yaml:"line_two"`
	LineThree    string  `yaml:"line_three"`
	Postcode     string  `yaml:"postcode"`
	City         string  `yaml:"city"`
	Country      string  `yaml:"country"`
	Subdivisions Strings `yaml:"subdivisions"`
}

type LegalOrganization struct {
	ID          string `yaml:"id"`
	Scheme      string `yaml:"scheme"`
	TradingName string `yaml:"trading_name"`
}

type Contact struct {
	PersonName string `yaml:"person_name"`
	Department string `yaml:"department"`
	TypeCode   string `yaml:"type_code"`
	Phone      string `yaml:"phone"`
	Fax        string `yaml:"fax"`
	Email      string `yaml:"email"`
}

// Reference describes a referenced document. Attachment is base64.
type Reference struct {
	ID                string `yaml:"id"`
	LineID            string `yaml:"line_id"`
	URI               string `yaml:"uri"`
	TypeCode          string `yaml:"type_code"`
	Name              string `yaml:"name"`
	ReferenceTypeCode string `yaml:"reference_type_code"`
	IssueDate         Date   `yaml:"issue_date"`
	Attachment        string `yaml:"attachment"`
	AttachmentMime    string `yaml:"attachment_mime"`
	AttachmentName    string `yaml:"attachment_name"`
}

type Period struct {
	Start Date `yaml:"start"`
	End   Date `yaml:"end"`
}

type DeliveryTerms struct {
	Code         string `yaml:"code"`
	Description  string `yaml:"description"`
	FunctionCode string `yaml:"function_code"`
	LocationID   string `yaml:"location_id"`
	LocationName string `yaml:"location_name"`
}

type Delivery struct {
	Terms          *DeliveryTerms `yaml:"terms"`
	DeliveryDate   Date           `yaml:"delivery_date"`
	DeliveryPeriod *Period        `yaml:"delivery_period"`
	DespatchDate   Date           `yaml:"despatch_date"`
	DespatchPeriod *Period        `yaml:"despatch_period"`
}

type PaymentMeans struct {
	TypeCode    string `yaml:"type_code"`
	Information string `yaml:"information"`
}

type PaymentTerms struct {
	Description string `yaml:"description"`
	Due         Date   `yaml:"due"`
}

type Tax struct {
	CategoryCode        string `yaml:"category_code"`
	TypeCode            string `yaml:"type_code"`
	Rate                Number `yaml:"rate"`
	BasisAmount         Number `yaml:"basis_amount"`
	CalculatedAmount    Number `yaml:"calculated_amount"`
	ExemptionReason     string `yaml:"exemption_reason"`
	ExemptionReasonCode string `yaml:"exemption_reason_code"`
}

type AllowanceCharge struct {
	Charge          bool   `yaml:"charge"`
	ActualAmount    Number `yaml:"actual_amount"`
	BasisAmount     Number `yaml:"basis_amount"`
	Percent         Number `yaml:"percent"`
	ReasonCode      string `yaml:"reason_code"`
	Reason          string `yaml:"reason"`
	TaxCategoryCode string `yaml:"tax_category_code"`
	TaxTypeCode     string `yaml:"tax_type_code"`
	TaxRate         Number `yaml:"tax_rate"`
}

type Summation struct {
	LineTotal      Number `yaml:"line_total"`
	ChargeTotal    Number `yaml:"charge_total"`
	AllowanceTotal Number `yaml:"allowance_total"`
	TaxBasisTotal  Number `yaml:"tax_basis_total"`
	TaxTotal       Number `yaml:"tax_total"`
	GrandTotal     Number `yaml:"grand_total"`
}

type Account struct {
	ID       string `yaml:"id"`
	TypeCode string `yaml:"type_code"`
}

type Settlement struct {
	PaymentMeans      []PaymentMeans    `yaml:"payment_means"`
	PaymentTerms      []PaymentTerms    `yaml:"payment_terms"`
	Taxes             []Tax             `yaml:"taxes"`
	AllowanceCharges  []AllowanceCharge `yaml:"allowance_charges"`
	Summation         *Summation        `yaml:"summation"`
	ReceivableAccount *Account          `yaml:"receivable_account"`
}

// Line is one order position
type Line struct {
	ID                     string               `yaml:"id"`
	Status                 string               `yaml:"status"`
	Notes                  []Note               `yaml:"notes"`
	Product                Product              `yaml:"product"`
	References             map[string]Reference `yaml:"references"`
	AdditionalReferences   []Reference          `yaml:"additional_references"`
	UltimateCustomerOrders []Reference          `yaml:"ultimate_customer_orders"`
	GrossPrice             *Price               `yaml:"gross_price"`
	NetPrice               *Price               `yaml:"net_price"`
	PartialDelivery        *bool                `yaml:"partial_delivery"`
	Quantity               *Quantity            `yaml:"quantity"`
	AgreedQuantity         *Quantity            `yaml:"agreed_quantity"`
	PackageQuantity        *Quantity            `yaml:"package_quantity"`
	DeliveryDate           Date                 `yaml:"delivery_date"`
	DeliveryPeriod         *Period              `yaml:"delivery_period"`
	DespatchDate           Date                 `yaml:"despatch_date"`
	DespatchPeriod         *Period              `yaml:"despatch_period"`
	Taxes                  []Tax                `yaml:"taxes"`
	AllowanceCharges       []AllowanceCharge    `yaml:"allowance_charges"`
	LineTotal              Number               `yaml:"line_total"`
	AllowanceChargeTotal   Number               `yaml:"allowance_charge_total"`
	ReceivableAccount      *Account             `yaml:"receivable_account"`
}

type Product struct {
	Name            string           `yaml:"name"`
	Description     string           `yaml:"description"`
	SellerID        string           `yaml:"seller_id"`
	BuyerID         string           `yaml:"buyer_id"`
	GlobalID        string           `yaml:"global_id"`
	GlobalIDType    string           `yaml:"global_id_type"`
	IndustryID      string           `yaml:"industry_id"`
	BatchID         string           `yaml:"batch_id"`
	BrandName       string           `yaml:"brand_name"`
	Characteristics []Characteristic `yaml:"characteristics"`
	Classifications []Classification `yaml:"classifications"`
	Instances       []Instance       `yaml:"instances"`
	Packaging       *Packaging       `yaml:"packaging"`
	OriginCountry   string           `yaml:"origin_country"`
	References      []Reference      `yaml:"references"`
}

type Characteristic struct {
	Description string `yaml:"description"`
	Value       string `yaml:"value"`
	TypeCode    string `yaml:"type_code"`
	Measure     Number `yaml:"measure"`
	MeasureUnit string `yaml:"measure_unit"`
}

type Classification struct {
	Code          string `yaml:"code"`
	ListID        string `yaml:"list_id"`
	ListVersionID string `yaml:"list_version_id"`
	Name          string `yaml:"name"`
}

type Instance struct {
	BatchID  string `yaml:"batch_id"`
	SerialID string `yaml:"serial_id"`
}

type Packaging struct {
	TypeCode string `yaml:"type_code"`
	Width    Number `yaml:"width"`
	Length   Number `yaml:"length"`
	Height   Number `yaml:"height"`
	Unit     string `yaml:"unit"`
}

// Price is a gross or net unit price
type Price struct {
	Amount           Number            `yaml:"amount"`
	BasisQuantity    Number            `yaml:"basis_quantity"`
	Unit             string            `yaml:"unit"`
	AllowanceCharges []AllowanceCharge `yaml:"allowance_charges"`
	Tax              *Tax              `yaml:"tax"`
}

type Quantity struct {
	Value Number `yaml:"value"`
	Unit  string `yaml:"unit"`
}

// Number is an optional decimal written as a YAML scalar. Values are parsed
// from their literal text so no precision is lost to float64.
type Number struct {
	decimal.NullDecimal
}

func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	if node.Tag == "!!null" {
		n.NullDecimal = decimal.NullDecimal{}
		return nil
	}
	d, err := dec.NullFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid number %q: %w", node.Line, node.Value, err)
	}
	n.NullDecimal = d
	return nil
}

var dateLayouts = []string{
	"2006-01-02",
	"20060102",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Date is an optional calendar date. The zero value is absent.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a date", node.Line)
	}
	if node.Tag == "!!null" || node.Value == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, node.Value, time.UTC); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("line %d: invalid date %q", node.Line, node.Value)
}

// Strings accepts a scalar or a sequence of scalars
type Strings []string

func (s *Strings) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	*s = values.StringSlice(v)
	return nil
}
