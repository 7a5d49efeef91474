package orderxml

import (
	"github.com/rezonia/orderx/internal/decimal"
	"github.com/rezonia/orderx/internal/model"
)

// Summary holds the header facts of an order for display
type Summary struct {
	Profile     string   `json:"profile"`
	GuidelineID string   `json:"guideline_id"`
	OrderID     string   `json:"order_id"`
	TypeCode    string   `json:"type_code"`
	TypeName    string   `json:"type_name"`
	IssueDate   string   `json:"issue_date,omitempty"`
	Seller      string   `json:"seller,omitempty"`
	Buyer       string   `json:"buyer,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	GrandTotal  string   `json:"grand_total,omitempty"`
	LineCount   int      `json:"line_count"`
	LineIDs     []string `json:"line_ids,omitempty"`
}

// Summarize extracts the summary of d
func Summarize(d *Document) Summary {
	o := d.Order()
	s := Summary{
		Profile:     d.def.DisplayName,
		GuidelineID: d.def.GuidelineID,
		OrderID:     model.IDValue(o.Document.ID),
		TypeCode:    model.CodeValue(o.Document.TypeCode),
		TypeName:    model.DocumentTypeName(model.CodeValue(o.Document.TypeCode)),
		LineCount:   len(o.Transaction.LineItems),
	}
	if dt := o.Document.IssueDateTime; dt != nil {
		s.IssueDate = dt.Value.Format("2006-01-02")
	}
	if a := o.Transaction.Agreement; a != nil {
		if a.Seller != nil {
			s.Seller = model.TextValue(a.Seller.Name)
		}
		if a.Buyer != nil {
			s.Buyer = model.TextValue(a.Buyer.Name)
		}
	}
	if st := o.Transaction.Settlement; st != nil {
		s.Currency = model.CodeValue(st.Currency)
		if m := st.MonetarySummation; m != nil && m.GrandTotalAmount != nil {
			s.GrandTotal = decimal.FormatAmount(m.GrandTotalAmount.Value)
		}
	}
	for _, item := range o.Transaction.LineItems {
		s.LineIDs = append(s.LineIDs, item.LineID())
	}
	return s
}
