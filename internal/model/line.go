package model

// LineItem is one position of the order
type LineItem struct {
	LineDocument *DocumentLineDocument `json:"line_document,omitempty"`
	Product      *TradeProduct         `json:"product,omitempty"`
	Agreement    *LineTradeAgreement   `json:"agreement"`
	Delivery     *LineTradeDelivery    `json:"delivery"`
	Settlement   *LineTradeSettlement  `json:"settlement"`
}

// LineID returns the line id of the item or ""
func (l *LineItem) LineID() string {
	if l == nil || l.LineDocument == nil {
		return ""
	}
	return IDValue(l.LineDocument.LineID)
}

// DocumentLineDocument identifies a line and carries its notes
type DocumentLineDocument struct {
	LineID         *ID     `json:"line_id,omitempty"`
	LineStatusCode *Code   `json:"line_status_code,omitempty"`
	Notes          []*Note `json:"notes,omitempty"`
}

// TradeProduct describes the ordered product
type TradeProduct struct {
	GlobalID            *ID                      `json:"global_id,omitempty"`
	SellerAssignedID    *ID                      `json:"seller_assigned_id,omitempty"`
	BuyerAssignedID     *ID                      `json:"buyer_assigned_id,omitempty"`
	IndustryAssignedID  *ID                      `json:"industry_assigned_id,omitempty"`
	Name                *Text                    `json:"name,omitempty"`
	Description         *Text                    `json:"description,omitempty"`
	BatchID             *ID                      `json:"batch_id,omitempty"`
	BrandName           *Text                    `json:"brand_name,omitempty"`
	Characteristics     []*ProductCharacteristic `json:"characteristics,omitempty"`
	Classifications     []*ProductClassification `json:"classifications,omitempty"`
	Instances           []*ProductInstance       `json:"instances,omitempty"`
	Packaging           *Packaging               `json:"packaging,omitempty"`
	OriginCountry       *Code                    `json:"origin_country,omitempty"`
	ReferencedDocuments []*ReferencedDocument    `json:"referenced_documents,omitempty"`
}

// ProductCharacteristic is a product attribute
type ProductCharacteristic struct {
	TypeCode     *Code    `json:"type_code,omitempty"`
	Description  *Text    `json:"description,omitempty"`
	ValueMeasure *Measure `json:"value_measure,omitempty"`
	Value        *Text    `json:"value,omitempty"`
}

// ProductClassification is a product class in some classification scheme
type ProductClassification struct {
	ClassCode *Code `json:"class_code,omitempty"`
	ClassName *Text `json:"class_name,omitempty"`
}

// ProductInstance identifies a single product instance
type ProductInstance struct {
	BatchID  *ID `json:"batch_id,omitempty"`
	SerialID *ID `json:"serial_id,omitempty"`
}

// Packaging describes the product packaging
type Packaging struct {
	TypeCode *Code    `json:"type_code,omitempty"`
	Width    *Measure `json:"width,omitempty"`
	Length   *Measure `json:"length,omitempty"`
	Height   *Measure `json:"height,omitempty"`
}

// LineTradeAgreement holds line references and prices
type LineTradeAgreement struct {
	BuyerOrderReferencedDocument             *ReferencedDocument   `json:"buyer_order_reference,omitempty"`
	QuotationReferencedDocument              *ReferencedDocument   `json:"quotation_reference,omitempty"`
	ContractReferencedDocument               *ReferencedDocument   `json:"contract_reference,omitempty"`
	AdditionalReferencedDocuments            []*ReferencedDocument `json:"additional_references,omitempty"`
	GrossPrice                               *TradePrice           `json:"gross_price,omitempty"`
	NetPrice                                 *TradePrice           `json:"net_price,omitempty"`
	BlanketOrderReferencedDocument           *ReferencedDocument   `json:"blanket_order_reference,omitempty"`
	CatalogueReferencedDocument              *ReferencedDocument   `json:"catalogue_reference,omitempty"`
	UltimateCustomerOrderReferencedDocuments []*ReferencedDocument `json:"ultimate_customer_order_references,omitempty"`
}

// TradePrice is a gross or net price
type TradePrice struct {
	ChargeAmount     *Amount            `json:"charge_amount,omitempty"`
	BasisQuantity    *Quantity          `json:"basis_quantity,omitempty"`
	AllowanceCharges []*AllowanceCharge `json:"allowance_charges,omitempty"`
	IncludedTax      *TradeTax          `json:"included_tax,omitempty"`
}

// LineTradeDelivery holds quantities and requested events of a line
type LineTradeDelivery struct {
	PartialDeliveryAllowed *Indicator        `json:"partial_delivery_allowed,omitempty"`
	RequestedQuantity      *Quantity         `json:"requested_quantity,omitempty"`
	AgreedQuantity         *Quantity         `json:"agreed_quantity,omitempty"`
	PackageQuantity        *Quantity         `json:"package_quantity,omitempty"`
	RequestedDeliveryEvent *SupplyChainEvent `json:"requested_delivery,omitempty"`
	RequestedDespatchEvent *SupplyChainEvent `json:"requested_despatch,omitempty"`
}

// LineTradeSettlement holds line taxes, allowances and totals
type LineTradeSettlement struct {
	Taxes             []*TradeTax            `json:"taxes,omitempty"`
	AllowanceCharges  []*AllowanceCharge     `json:"allowance_charges,omitempty"`
	MonetarySummation *LineMonetarySummation `json:"monetary_summation,omitempty"`
	ReceivableAccount *AccountingAccount     `json:"receivable_account,omitempty"`
}

// LineMonetarySummation holds the line totals
type LineMonetarySummation struct {
	LineTotalAmount            *Amount `json:"line_total,omitempty"`
	TotalAllowanceChargeAmount *Amount `json:"total_allowance_charge,omitempty"`
}
