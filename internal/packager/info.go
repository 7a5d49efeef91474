package packager

import (
	"fmt"
	"time"

	"github.com/rezonia/orderx/internal/model"
)

// ISODateLayout is the layout of the created and modified dates
const ISODateLayout = "2006-01-02T15:04:05-07:00"

// OrderInfo holds the display facts read from a finished order
type OrderInfo struct {
	OrderID          string
	DocumentTypeName string
	SellerName       string
	IssueDate        time.Time
}

// IssueDateISO returns the issue date in ISO 8601 form
func (i OrderInfo) IssueDateISO() string {
	return i.IssueDate.Format(ISODateLayout)
}

// Metadata holds the document metadata of a hybrid PDF
type Metadata struct {
	Author       string
	Keywords     string
	Title        string
	Subject      string
	CreatedDate  string
	ModifiedDate string
	Issued       time.Time
}

// ExtractOrderInfo reads the order id, document type, seller name and issue
// date from o. Each of them must be present.
func ExtractOrderInfo(o *model.Order) (OrderInfo, error) {
	if o == nil {
		return OrderInfo{}, missing("order")
	}
	var info OrderInfo

	if o.Document.ID == nil {
		return OrderInfo{}, missing("order id")
	}
	info.OrderID = o.Document.ID.Value

	if o.Document.TypeCode == nil {
		return OrderInfo{}, missing("document type code")
	}
	info.DocumentTypeName = model.DocumentTypeName(o.Document.TypeCode.Value)

	a := o.Transaction.Agreement
	if a == nil || a.Seller == nil || a.Seller.Name == nil {
		return OrderInfo{}, missing("seller name")
	}
	info.SellerName = a.Seller.Name.Value

	if o.Document.IssueDateTime == nil {
		return OrderInfo{}, missing("issue date")
	}
	info.IssueDate = o.Document.IssueDateTime.Value

	return info, nil
}

func missing(what string) error {
	return model.NewExtractionError("ExtractOrderInfo", what+" not set", fmt.Errorf("%s: %w", what, model.ErrMissingField))
}

// DeriveMetadata computes the PDF metadata strings from info
func DeriveMetadata(info OrderInfo) Metadata {
	iso := info.IssueDateISO()
	return Metadata{
		Author:   info.SellerName,
		Keywords: fmt.Sprintf("%s, Order-X", info.DocumentTypeName),
		Title:    fmt.Sprintf("%s, %s %s", info.SellerName, info.DocumentTypeName, info.OrderID),
		Subject: fmt.Sprintf("Order-X %s %s dated %s issued by %s",
			info.DocumentTypeName, info.OrderID, info.IssueDate.Format("2006-01-02"), info.SellerName),
		CreatedDate:  iso,
		ModifiedDate: iso,
		Issued:       info.IssueDate,
	}
}
