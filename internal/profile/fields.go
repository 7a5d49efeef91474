package profile

// Field is a bit set of profile-conditional document branches
type Field uint64

// Header branches
const (
	FieldBusinessProcess Field = 1 << iota
	FieldCopyIndicator
	FieldDocumentName
	FieldPurposeCode
	FieldRequestedResponseType
	FieldBuyerRequisitioner
	FieldProductEndUser
	FieldShipFrom
	FieldInvoicee
	FieldPartyDescription
	FieldPartyGlobalID
	FieldPartyContact
	FieldPartyCommunication
	FieldDeliveryTerms
	FieldQuotationReference
	FieldContractReference
	FieldRequisitionReference
	FieldBlanketOrderReference
	FieldPreviousOrderReference
	FieldPreviousOrderChangeReference
	FieldPreviousOrderResponseReference
	FieldCatalogueReference
	FieldAdditionalReference
	FieldReferencedDocumentDate
	FieldProcuringProject
	FieldRequestedDespatch
	FieldPaymentMeans
	FieldPaymentTerms
	FieldHeaderTax
	FieldReceivableAccount

	// Line branches
	FieldLineStatus
	FieldProductIndustryID
	FieldProductBatchAndBrand
	FieldProductCharacteristic
	FieldProductClassification
	FieldProductInstance
	FieldProductPackaging
	FieldProductOriginCountry
	FieldProductReferencedDocument
	FieldLineReference
	FieldUltimateCustomerOrderReference
	FieldGrossPrice
	FieldPriceAllowanceCharge
	FieldPriceIncludedTax
	FieldPartialDelivery
	FieldAgreedQuantity
	FieldPackageQuantity
	FieldLineRequestedDelivery
	FieldLineRequestedDespatch
	FieldLineAllowanceCharge
	FieldLineReceivableAccount
)

const basicFields = FieldDocumentName |
	FieldPurposeCode |
	FieldRequestedResponseType |
	FieldPartyGlobalID

const comfortFields = basicFields |
	FieldBusinessProcess |
	FieldBuyerRequisitioner |
	FieldShipFrom |
	FieldInvoicee |
	FieldPartyContact |
	FieldPartyCommunication |
	FieldDeliveryTerms |
	FieldQuotationReference |
	FieldContractReference |
	FieldBlanketOrderReference |
	FieldCatalogueReference |
	FieldAdditionalReference |
	FieldProcuringProject |
	FieldPaymentMeans |
	FieldPaymentTerms |
	FieldHeaderTax |
	FieldReceivableAccount |
	FieldProductCharacteristic |
	FieldProductClassification |
	FieldProductOriginCountry |
	FieldLineReference |
	FieldGrossPrice |
	FieldPriceAllowanceCharge |
	FieldPartialDelivery |
	FieldPackageQuantity |
	FieldLineRequestedDelivery |
	FieldLineAllowanceCharge

const extendedFields = comfortFields |
	FieldCopyIndicator |
	FieldProductEndUser |
	FieldPartyDescription |
	FieldRequisitionReference |
	FieldPreviousOrderReference |
	FieldPreviousOrderChangeReference |
	FieldPreviousOrderResponseReference |
	FieldReferencedDocumentDate |
	FieldRequestedDespatch |
	FieldLineStatus |
	FieldProductIndustryID |
	FieldProductBatchAndBrand |
	FieldProductInstance |
	FieldProductPackaging |
	FieldProductReferencedDocument |
	FieldUltimateCustomerOrderReference |
	FieldPriceIncludedTax |
	FieldAgreedQuantity |
	FieldLineRequestedDespatch |
	FieldLineReceivableAccount
