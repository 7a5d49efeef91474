package model

// Order is the root message structure of an Order-X document
type Order struct {
	Context     ExchangedDocumentContext    `json:"context"`
	Document    ExchangedDocument           `json:"document"`
	Transaction SupplyChainTradeTransaction `json:"transaction"`
}

// ExchangedDocumentContext carries the profile and processing parameters
type ExchangedDocumentContext struct {
	TestIndicator   *Indicator                `json:"test_indicator,omitempty"`
	BusinessProcess *DocumentContextParameter `json:"business_process,omitempty"`
	Guideline       *DocumentContextParameter `json:"guideline,omitempty"`
}

// DocumentContextParameter is a context parameter identified by ID
type DocumentContextParameter struct {
	ID *ID `json:"id,omitempty"`
}

// ExchangedDocument is the document header
type ExchangedDocument struct {
	ID                        *ID        `json:"id,omitempty"`
	Name                      *Text      `json:"name,omitempty"`
	TypeCode                  *Code      `json:"type_code,omitempty"`
	IssueDateTime             *DateTime  `json:"issue_date_time,omitempty"`
	CopyIndicator             *Indicator `json:"copy_indicator,omitempty"`
	LanguageID                *ID        `json:"language_id,omitempty"`
	Notes                     []*Note    `json:"notes,omitempty"`
	PurposeCode               *Code      `json:"purpose_code,omitempty"`
	RequestedResponseTypeCode *Code      `json:"requested_response_type_code,omitempty"`
}

// Note is a free text note with optional subject and content codes
type Note struct {
	ContentCode *Code `json:"content_code,omitempty"`
	Content     *Text `json:"content,omitempty"`
	SubjectCode *Code `json:"subject_code,omitempty"`
}

// SupplyChainTradeTransaction groups the line items and the three header branches
type SupplyChainTradeTransaction struct {
	LineItems  []*LineItem            `json:"line_items,omitempty"`
	Agreement  *HeaderTradeAgreement  `json:"agreement"`
	Delivery   *HeaderTradeDelivery   `json:"delivery"`
	Settlement *HeaderTradeSettlement `json:"settlement"`
}

// HeaderTradeAgreement holds parties, delivery terms and referenced documents
type HeaderTradeAgreement struct {
	BuyerReference     *Text          `json:"buyer_reference,omitempty"`
	Seller             *TradeParty    `json:"seller,omitempty"`
	Buyer              *TradeParty    `json:"buyer,omitempty"`
	BuyerRequisitioner *TradeParty    `json:"buyer_requisitioner,omitempty"`
	ProductEndUser     *TradeParty    `json:"product_end_user,omitempty"`
	DeliveryTerms      *DeliveryTerms `json:"delivery_terms,omitempty"`

	SellerOrderReferencedDocument           *ReferencedDocument   `json:"seller_order_reference,omitempty"`
	BuyerOrderReferencedDocument            *ReferencedDocument   `json:"buyer_order_reference,omitempty"`
	QuotationReferencedDocument             *ReferencedDocument   `json:"quotation_reference,omitempty"`
	ContractReferencedDocument              *ReferencedDocument   `json:"contract_reference,omitempty"`
	RequisitionReferencedDocument           *ReferencedDocument   `json:"requisition_reference,omitempty"`
	AdditionalReferencedDocuments           []*ReferencedDocument `json:"additional_references,omitempty"`
	BlanketOrderReferencedDocument          *ReferencedDocument   `json:"blanket_order_reference,omitempty"`
	PreviousOrderReferencedDocument         *ReferencedDocument   `json:"previous_order_reference,omitempty"`
	PreviousOrderChangeReferencedDocument   *ReferencedDocument   `json:"previous_order_change_reference,omitempty"`
	PreviousOrderResponseReferencedDocument *ReferencedDocument   `json:"previous_order_response_reference,omitempty"`
	CatalogueReferencedDocument             *ReferencedDocument   `json:"catalogue_reference,omitempty"`
	ProcuringProject                        *ProcuringProject     `json:"procuring_project,omitempty"`
}

// HeaderTradeDelivery holds ship-to/ship-from parties and requested events
type HeaderTradeDelivery struct {
	ShipTo                 *TradeParty       `json:"ship_to,omitempty"`
	ShipFrom               *TradeParty       `json:"ship_from,omitempty"`
	RequestedDeliveryEvent *SupplyChainEvent `json:"requested_delivery,omitempty"`
	RequestedDespatchEvent *SupplyChainEvent `json:"requested_despatch,omitempty"`
}

// HeaderTradeSettlement holds currency, payment and totals
type HeaderTradeSettlement struct {
	Currency          *Code              `json:"currency,omitempty"`
	Invoicee          *TradeParty        `json:"invoicee,omitempty"`
	PaymentMeans      []*PaymentMeans    `json:"payment_means,omitempty"`
	Taxes             []*TradeTax        `json:"taxes,omitempty"`
	AllowanceCharges  []*AllowanceCharge `json:"allowance_charges,omitempty"`
	PaymentTerms      []*PaymentTerms    `json:"payment_terms,omitempty"`
	MonetarySummation *MonetarySummation `json:"monetary_summation,omitempty"`
	ReceivableAccount *AccountingAccount `json:"receivable_account,omitempty"`
}

// TradeParty is a party taking part in the order
type TradeParty struct {
	IDs               []*ID                     `json:"ids,omitempty"`
	GlobalIDs         []*ID                     `json:"global_ids,omitempty"`
	Name              *Text                     `json:"name,omitempty"`
	Description       *Text                     `json:"description,omitempty"`
	LegalOrganization *LegalOrganization        `json:"legal_organization,omitempty"`
	Contacts          []*TradeContact           `json:"contacts,omitempty"`
	Address           *TradeAddress             `json:"address,omitempty"`
	Communications    []*UniversalCommunication `json:"communications,omitempty"`
	TaxRegistrations  []*TaxRegistration        `json:"tax_registrations,omitempty"`
}

// LegalOrganization is the legal registration of a party
type LegalOrganization struct {
	ID                  *ID   `json:"id,omitempty"`
	TradingBusinessName *Text `json:"trading_business_name,omitempty"`
}

// TradeContact is a contact person or department
type TradeContact struct {
	PersonName     *Text                   `json:"person_name,omitempty"`
	DepartmentName *Text                   `json:"department_name,omitempty"`
	TypeCode       *Code                   `json:"type_code,omitempty"`
	Telephone      *UniversalCommunication `json:"telephone,omitempty"`
	Fax            *UniversalCommunication `json:"fax,omitempty"`
	Email          *UniversalCommunication `json:"email,omitempty"`
}

// UniversalCommunication is a phone number or URI
type UniversalCommunication struct {
	URIID          *ID   `json:"uri_id,omitempty"`
	CompleteNumber *Text `json:"complete_number,omitempty"`
}

// TradeAddress is a postal address
type TradeAddress struct {
	PostcodeCode            *Code   `json:"postcode,omitempty"`
	LineOne                 *Text   `json:"line_one,omitempty"`
	LineTwo                 *Text   `json:"line_two,omitempty"`
	LineThree               *Text   `json:"line_three,omitempty"`
	CityName                *Text   `json:"city,omitempty"`
	CountryID               *Code   `json:"country,omitempty"`
	CountrySubDivisionNames []*Text `json:"subdivisions,omitempty"`
}

// TaxRegistration is a tax number of a party, scheme VA or FC
type TaxRegistration struct {
	ID *ID `json:"id,omitempty"`
}

// DeliveryTerms are the agreed delivery terms (Incoterms)
type DeliveryTerms struct {
	DeliveryTypeCode *Code `json:"delivery_type_code,omitempty"`
	Description      *Text `json:"description,omitempty"`
	FunctionCode     *Code `json:"function_code,omitempty"`
	LocationID       *ID   `json:"location_id,omitempty"`
	LocationName     *Text `json:"location_name,omitempty"`
}

// ReferencedDocument is a reference to another document
type ReferencedDocument struct {
	IssuerAssignedID       *ID                `json:"issuer_assigned_id,omitempty"`
	URIID                  *ID                `json:"uri_id,omitempty"`
	LineID                 *ID                `json:"line_id,omitempty"`
	TypeCode               *Code              `json:"type_code,omitempty"`
	Name                   *Text              `json:"name,omitempty"`
	AttachmentBinaryObject *BinaryObject      `json:"attachment,omitempty"`
	ReferenceTypeCode      *Code              `json:"reference_type_code,omitempty"`
	FormattedIssueDateTime *FormattedDateTime `json:"issue_date_time,omitempty"`
}

// ProcuringProject identifies the project the order belongs to
type ProcuringProject struct {
	ID   *ID   `json:"id,omitempty"`
	Name *Text `json:"name,omitempty"`
}

// SupplyChainEvent is a requested delivery or despatch event
type SupplyChainEvent struct {
	OccurrenceDateTime *DateTime `json:"occurrence_date_time,omitempty"`
	OccurrencePeriod   *Period   `json:"occurrence_period,omitempty"`
}

// Period is a time span
type Period struct {
	StartDateTime *DateTime `json:"start,omitempty"`
	EndDateTime   *DateTime `json:"end,omitempty"`
}

// PaymentMeans describes how the order will be paid
type PaymentMeans struct {
	TypeCode    *Code `json:"type_code,omitempty"`
	Information *Text `json:"information,omitempty"`
}

// PaymentTerms describes payment conditions
type PaymentTerms struct {
	Description *Text     `json:"description,omitempty"`
	DueDateTime *DateTime `json:"due_date_time,omitempty"`
}

// TradeTax is a tax breakdown or tax category
type TradeTax struct {
	CalculatedAmount      *Amount  `json:"calculated_amount,omitempty"`
	TypeCode              *Code    `json:"type_code,omitempty"`
	ExemptionReason       *Text    `json:"exemption_reason,omitempty"`
	BasisAmount           *Amount  `json:"basis_amount,omitempty"`
	CategoryCode          *Code    `json:"category_code,omitempty"`
	ExemptionReasonCode   *Code    `json:"exemption_reason_code,omitempty"`
	RateApplicablePercent *Percent `json:"rate,omitempty"`
}

// AllowanceCharge is an allowance (discount) or a charge
type AllowanceCharge struct {
	ChargeIndicator    *Indicator `json:"charge_indicator,omitempty"`
	CalculationPercent *Percent   `json:"calculation_percent,omitempty"`
	BasisAmount        *Amount    `json:"basis_amount,omitempty"`
	ActualAmount       *Amount    `json:"actual_amount,omitempty"`
	ReasonCode         *Code      `json:"reason_code,omitempty"`
	Reason             *Text      `json:"reason,omitempty"`
	CategoryTradeTax   *TradeTax  `json:"category_trade_tax,omitempty"`
}

// MonetarySummation holds the document totals
type MonetarySummation struct {
	LineTotalAmount      *Amount `json:"line_total,omitempty"`
	ChargeTotalAmount    *Amount `json:"charge_total,omitempty"`
	AllowanceTotalAmount *Amount `json:"allowance_total,omitempty"`
	TaxBasisTotalAmount  *Amount `json:"tax_basis_total,omitempty"`
	TaxTotalAmount       *Amount `json:"tax_total,omitempty"`
	GrandTotalAmount     *Amount `json:"grand_total,omitempty"`
}

// AccountingAccount is a buyer accounting reference
type AccountingAccount struct {
	ID       *ID   `json:"id,omitempty"`
	TypeCode *Code `json:"type_code,omitempty"`
}
