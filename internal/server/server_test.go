package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/orderx/internal/server"
)

const orderYAML = `document:
  id: PO123456789
  type_code: "220"
  issued: 2022-12-31
  currency: EUR
parties:
  seller:
    name: SELLER_NAME
  buyer:
    name: BUYER_NAME
settlement:
  summation:
    grand_total: 119
lines:
  - id: "1"
    product:
      name: Gear
    quantity:
      value: 10
      unit: C62
`

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Profile: "comfort",
		Debug:   true,
	}
	return server.NewServer(config)
}

func do(srv *server.Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func buildXML(t *testing.T, srv *server.Server, query string) []byte {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/xml"+query, strings.NewReader(orderYAML))
	w := do(srv, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return w.Body.Bytes()
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	w := do(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestRequestID(t *testing.T) {
	srv := newTestServer()

	w := do(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc")
	w = do(srv, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
}

func TestProfilesEndpoint(t *testing.T) {
	srv := newTestServer()

	w := do(srv, httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response server.ProfilesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Profiles, 3)
	assert.Equal(t, "BASIC", response.Profiles[0].DisplayName)
	assert.Equal(t, "urn:order-x.eu:1p0:extended", response.Profiles[2].GuidelineID)
}

func TestBuildXMLEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/xml", strings.NewReader(orderYAML))
	w := do(srv, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "COMFORT", w.Header().Get("X-Order-Profile"))
	assert.Contains(t, w.Body.String(), "<ram:ID>urn:order-x.eu:1p0:comfort</ram:ID>")
	assert.Contains(t, w.Body.String(), "PO123456789")
}

func TestBuildXMLEndpoint_ProfileQuery(t *testing.T) {
	srv := newTestServer()
	out := buildXML(t, srv, "?profile=extended")
	assert.Contains(t, string(out), "urn:order-x.eu:1p0:extended")
}

func TestBuildXMLEndpoint_Errors(t *testing.T) {
	srv := newTestServer()

	w := do(srv, httptest.NewRequest(http.MethodPost, "/api/v1/orders/xml", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(srv, httptest.NewRequest(http.MethodPost, "/api/v1/orders/xml", strings.NewReader("document: [")))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(srv, httptest.NewRequest(http.MethodPost, "/api/v1/orders/xml?profile=gold", strings.NewReader(orderYAML)))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "invalid order definition", response.Error)
	assert.NotEmpty(t, response.RequestID)
}

func TestInfoEndpoint(t *testing.T) {
	srv := newTestServer()
	xmlData := buildXML(t, srv, "")

	w := do(srv, httptest.NewRequest(http.MethodPost, "/api/v1/info", bytes.NewReader(xmlData)))
	require.Equal(t, http.StatusOK, w.Code)

	var response server.InfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "COMFORT", response.Profile)
	assert.Equal(t, "PO123456789", response.OrderID)
	assert.Equal(t, "Order", response.TypeName)
	assert.Equal(t, "SELLER_NAME", response.Seller)
	assert.Equal(t, "119.00", response.GrandTotal)
	assert.Equal(t, 1, response.LineCount)
	assert.Equal(t, len(xmlData), response.Size)
}

func TestInfoEndpoint_InvalidXML(t *testing.T) {
	srv := newTestServer()

	w := do(srv, httptest.NewRequest(http.MethodPost, "/api/v1/info", strings.NewReader("not xml")))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer()
	xmlData := buildXML(t, srv, "")

	w := do(srv, httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader(xmlData)))
	require.Equal(t, http.StatusOK, w.Code)

	var response server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Valid)
	assert.Equal(t, "COMFORT", response.Profile)
	assert.Empty(t, response.Warnings)
}

func TestValidateEndpoint_MissingSeller(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/xml", strings.NewReader("document:\n  id: PO-1\n  issued: 2023-01-01\n"))
	w := do(srv, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(srv, httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader(w.Body.Bytes())))
	require.Equal(t, http.StatusOK, w.Code)

	var response server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Valid)
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "packaging", response.Errors[0].Field)
	assert.Equal(t, "required", response.Errors[0].Rule)
	assert.Contains(t, response.Errors[0].Message, "seller name")
	assert.Contains(t, response.Warnings, server.ValidationIssue{Field: "lines", Rule: "min_count", Message: "order has no line items"})
}

func TestValidateEndpoint_MalformedXML(t *testing.T) {
	srv := newTestServer()

	w := do(srv, httptest.NewRequest(http.MethodPost, "/api/v1/validate", strings.NewReader("not xml")))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Valid)
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "xml", response.Errors[0].Field)
	assert.Equal(t, "parse", response.Errors[0].Rule)
}

func minimalPDF() []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << >> >>",
	}
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func multipartRequest(t *testing.T, order string, pdf []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if order != "" {
		require.NoError(t, mw.WriteField("order", order))
	}
	if pdf != nil {
		part, err := mw.CreateFormFile("pdf", "in.pdf")
		require.NoError(t, err)
		_, err = part.Write(pdf)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/pdf", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestBuildPDFEndpoint(t *testing.T) {
	srv := newTestServer()

	w := do(srv, multipartRequest(t, orderYAML, minimalPDF()))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="PO123456789.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
	assert.Contains(t, w.Body.String(), "order-x.xml")
}

func TestBuildPDFEndpoint_MissingParts(t *testing.T) {
	srv := newTestServer()

	w := do(srv, multipartRequest(t, "", minimalPDF()))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(srv, multipartRequest(t, orderYAML, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Benchmark tests

func BenchmarkBuildXML(b *testing.B) {
	srv := newTestServer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/xml", strings.NewReader(orderYAML))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
	}
}

func BenchmarkHealth(b *testing.B) {
	srv := newTestServer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
	}
}
