package model

// DocumentType is an UNTDID 1001 order message type
type DocumentType struct {
	Code string
	Name string
}

// Document type codes
const (
	DocumentTypeOrder         = "220"
	DocumentTypeOrderChange   = "230"
	DocumentTypeOrderResponse = "231"
)

// The first entry is the fallback for unknown codes.
var documentTypes = []DocumentType{
	{Code: DocumentTypeOrder, Name: "Order"},
	{Code: DocumentTypeOrderChange, Name: "Order Change"},
	{Code: DocumentTypeOrderResponse, Name: "Order Response"},
}

// DocumentTypes returns the closed document type table
func DocumentTypes() []DocumentType {
	out := make([]DocumentType, len(documentTypes))
	copy(out, documentTypes)
	return out
}

// LookupDocumentType returns the entry for code, falling back to Order
func LookupDocumentType(code string) DocumentType {
	for _, t := range documentTypes {
		if t.Code == code {
			return t
		}
	}
	return documentTypes[0]
}

// DocumentTypeName returns the display name for code
func DocumentTypeName(code string) string {
	return LookupDocumentType(code).Name
}

// NormalizeDocumentType returns the effective code for code
func NormalizeDocumentType(code string) string {
	return LookupDocumentType(code).Code
}
