package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/orderx/internal/model"
)

func TestDocumentTypeName(t *testing.T) {
	assert.Equal(t, "Order", model.DocumentTypeName(model.DocumentTypeOrder))
	assert.Equal(t, "Order Change", model.DocumentTypeName(model.DocumentTypeOrderChange))
	assert.Equal(t, "Order Response", model.DocumentTypeName(model.DocumentTypeOrderResponse))
}

func TestDocumentTypeName_UnknownFallsBackToOrder(t *testing.T) {
	assert.Equal(t, "Order", model.DocumentTypeName("999"))
	assert.Equal(t, "Order", model.DocumentTypeName(""))
	assert.Equal(t, model.DocumentTypeOrder, model.NormalizeDocumentType("380"))
}

func TestDocumentTypes_ReturnsCopy(t *testing.T) {
	types := model.DocumentTypes()
	require.Len(t, types, 3)
	types[0].Name = "changed"

	assert.Equal(t, "Order", model.DocumentTypes()[0].Name)
}

func TestLineItem_LineID(t *testing.T) {
	var nilItem *model.LineItem
	assert.Equal(t, "", nilItem.LineID())

	item := &model.LineItem{LineDocument: &model.DocumentLineDocument{LineID: &model.ID{Value: "1"}}}
	assert.Equal(t, "1", item.LineID())
}

func TestValueAccessors(t *testing.T) {
	assert.Equal(t, "", model.IDValue(nil))
	assert.Equal(t, "", model.TextValue(nil))
	assert.Equal(t, "", model.CodeValue(nil))
	assert.Equal(t, "A", model.IDValue(&model.ID{Value: "A"}))
	assert.Equal(t, "B", model.TextValue(&model.Text{Value: "B"}))
	assert.Equal(t, "C", model.CodeValue(&model.Code{Value: "C"}))
}

func TestParseError(t *testing.T) {
	err := &model.ParseError{
		Profile: "EXTENDED",
		Field:   "IssueDateTime",
		Message: "invalid format",
	}

	require.Contains(t, err.Error(), "EXTENDED")
	require.Contains(t, err.Error(), "IssueDateTime")
	require.Contains(t, err.Error(), "invalid format")
}

func TestParseError_WithCause(t *testing.T) {
	cause := assert.AnError
	err := model.NewParseError("BASIC", "ID", "parse failed", cause)

	require.Contains(t, err.Error(), "BASIC")
	require.Contains(t, err.Error(), "ID")
	require.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	err := model.NewValidationError("Currency", "EURO", "length", "must be 3 letters")

	require.Contains(t, err.Error(), "Currency")
	require.Contains(t, err.Error(), "EURO")
	require.Contains(t, err.Error(), "3 letters")
}

func TestExtractionError(t *testing.T) {
	err := model.NewExtractionError("seller", "seller name not set", model.ErrMissingField)

	require.Contains(t, err.Error(), "seller")
	require.ErrorIs(t, err, model.ErrMissingField)
}

func TestUsageError(t *testing.T) {
	err := model.NewUsageError("SetDocumentPositionNote", model.ErrNoOpenPosition)

	assert.Equal(t, "SetDocumentPositionNote: no open position", err.Error())
	require.ErrorIs(t, err, model.ErrNoOpenPosition)
}
