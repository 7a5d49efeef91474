package packager_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/orderx/internal/builder"
	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/orderxml"
	"github.com/rezonia/orderx/internal/packager"
	"github.com/rezonia/orderx/internal/profile"
)

var issued = time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)

type recordingEmbedder struct {
	job   packager.Job
	input []byte
	err   error
}

func (r *recordingEmbedder) Embed(src io.ReadSeeker, dst io.Writer, job packager.Job) error {
	if r.err != nil {
		return r.err
	}
	in, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	r.input = in
	r.job = job
	_, err = dst.Write(append([]byte("embedded:"), in...))
	return err
}

func order(p profile.Profile, typeCode string) *builder.Builder {
	b := builder.New(p)
	b.SetDocumentInformation("PO123456789", typeCode, issued, "EUR").
		SetParty(builder.Seller, "SELLER_NAME", "", "").
		SetParty(builder.Buyer, "BUYER_NAME", "", "")
	b.AddNewPosition("1").SetPositionProduct(builder.ProductInput{Name: "Gear"})
	return b
}

func TestDeriveMetadata(t *testing.T) {
	info, err := packager.ExtractOrderInfo(order(profile.Basic, model.DocumentTypeOrder).Order())
	require.NoError(t, err)

	meta := packager.DeriveMetadata(info)
	assert.Equal(t, "SELLER_NAME", meta.Author)
	assert.Equal(t, "Order, Order-X", meta.Keywords)
	assert.Equal(t, "SELLER_NAME, Order PO123456789", meta.Title)
	assert.Equal(t, "Order-X Order PO123456789 dated 2022-12-31 issued by SELLER_NAME", meta.Subject)
	assert.Equal(t, "2022-12-31T00:00:00+00:00", meta.CreatedDate)
	assert.Equal(t, meta.CreatedDate, meta.ModifiedDate)
}

func TestDeriveMetadata_DocumentTypes(t *testing.T) {
	tests := []struct {
		code string
		name string
	}{
		{model.DocumentTypeOrder, "Order"},
		{model.DocumentTypeOrderChange, "Order Change"},
		{model.DocumentTypeOrderResponse, "Order Response"},
		{"999", "Order"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			info, err := packager.ExtractOrderInfo(order(profile.Comfort, tt.code).Order())
			require.NoError(t, err)
			assert.Equal(t, tt.name, info.DocumentTypeName)
			assert.Equal(t, "SELLER_NAME, "+tt.name+" PO123456789", packager.DeriveMetadata(info).Title)
		})
	}
}

func TestDeriveMetadata_UnknownTypeFallsBackToOrder(t *testing.T) {
	known, err := packager.ExtractOrderInfo(order(profile.Extended, model.DocumentTypeOrder).Order())
	require.NoError(t, err)
	unknown, err := packager.ExtractOrderInfo(order(profile.Extended, "999").Order())
	require.NoError(t, err)

	assert.Equal(t, packager.DeriveMetadata(known), packager.DeriveMetadata(unknown))
}

func TestExtractOrderInfo_Missing(t *testing.T) {
	tests := []struct {
		name  string
		build func() *builder.Builder
		want  string
	}{
		{"id", func() *builder.Builder {
			b := builder.New(profile.Basic)
			b.SetDocumentTypeCode(model.DocumentTypeOrder).SetParty(builder.Seller, "S", "", "")
			return b
		}, "order id"},
		{"type", func() *builder.Builder {
			b := builder.New(profile.Basic)
			b.SetDocumentInformation("PO1", "", issued, "EUR").SetParty(builder.Seller, "S", "", "")
			return b
		}, "document type code"},
		{"seller", func() *builder.Builder {
			b := builder.New(profile.Basic)
			b.SetDocumentInformation("PO1", model.DocumentTypeOrder, issued, "EUR").SetParty(builder.Seller, "", "S-1", "")
			return b
		}, "seller name"},
		{"issue date", func() *builder.Builder {
			b := builder.New(profile.Basic)
			b.SetDocumentInformation("PO1", model.DocumentTypeOrder, time.Time{}, "EUR").SetParty(builder.Seller, "S", "", "")
			return b
		}, "issue date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := packager.ExtractOrderInfo(tt.build().Order())
			require.Error(t, err)
			var ee *model.ExtractionError
			require.True(t, errors.As(err, &ee))
			assert.ErrorIs(t, err, model.ErrMissingField)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := packager.ExtractOrderInfo(nil)
	assert.ErrorIs(t, err, model.ErrMissingField)
}

func TestBuildXMP(t *testing.T) {
	info, err := packager.ExtractOrderInfo(order(profile.Extended, model.DocumentTypeOrder).Order())
	require.NoError(t, err)

	xmp, err := packager.BuildXMP(packager.DeriveMetadata(info), profile.Extended.Definition(), orderxml.AttachmentName, "orderx")
	require.NoError(t, err)
	s := string(xmp)

	assert.True(t, strings.HasPrefix(s, "<?xpacket begin="))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(s), `<?xpacket end="w"?>`))
	assert.Contains(t, s, "<pdfaid:part>3</pdfaid:part>")
	assert.Contains(t, s, "<pdfaid:conformance>B</pdfaid:conformance>")
	assert.Contains(t, s, `xmlns:fx="`+packager.NSOrderX+`"`)
	assert.Contains(t, s, "<fx:DocumentType>ORDER</fx:DocumentType>")
	assert.Contains(t, s, "<fx:DocumentFileName>order-x.xml</fx:DocumentFileName>")
	assert.Contains(t, s, "<fx:Version>1.0</fx:Version>")
	assert.Contains(t, s, "<fx:ConformanceLevel>EXTENDED</fx:ConformanceLevel>")
	assert.Contains(t, s, "SELLER_NAME, Order PO123456789")
	assert.Contains(t, s, "<xmp:CreateDate>2022-12-31T00:00:00+00:00</xmp:CreateDate>")
	assert.Contains(t, s, "<pdfaSchema:prefix>fx</pdfaSchema:prefix>")
}

func TestGenerate_HandsJobToEmbedder(t *testing.T) {
	rec := &recordingEmbedder{}
	p := packager.New(packager.WithEmbedder(rec), packager.WithCreator("acme"))

	b := order(profile.Basic, model.DocumentTypeOrder)
	out, err := p.Generate(b, packager.SourceBytes([]byte("%PDF-1.7")))
	require.NoError(t, err)
	assert.Equal(t, "embedded:%PDF-1.7", string(out))

	want, err := b.XML()
	require.NoError(t, err)
	assert.Equal(t, want, rec.job.Attachment.Content)
	assert.Equal(t, "order-x.xml", rec.job.Attachment.Name)
	assert.True(t, rec.job.Attachment.ModTime.Equal(issued))
	assert.Equal(t, "acme", rec.job.Creator)
	assert.Equal(t, "SELLER_NAME", rec.job.Metadata.Author)
	assert.Contains(t, string(rec.job.XMP), "<xmp:CreatorTool>acme</xmp:CreatorTool>")
}

func TestGenerate_ParsedDocument(t *testing.T) {
	rec := &recordingEmbedder{}
	p := packager.New(packager.WithEmbedder(rec))

	data, err := order(profile.Comfort, model.DocumentTypeOrderChange).XML()
	require.NoError(t, err)
	doc, err := orderxml.Read(data)
	require.NoError(t, err)

	_, err = p.Generate(doc, packager.SourceBytes([]byte("%PDF")))
	require.NoError(t, err)
	assert.Equal(t, data, rec.job.Attachment.Content)
	assert.Equal(t, "Order Change, Order-X", rec.job.Metadata.Keywords)
	assert.Contains(t, string(rec.job.XMP), "<fx:ConformanceLevel>COMFORT</fx:ConformanceLevel>")
}

func TestGenerate_Errors(t *testing.T) {
	rec := &recordingEmbedder{}
	p := packager.New(packager.WithEmbedder(rec))

	b := builder.New(profile.Basic)
	_, err := p.Generate(b, packager.SourceBytes(nil))
	assert.ErrorIs(t, err, model.ErrMissingField)
	assert.Nil(t, rec.input)

	_, err = p.Generate(order(profile.Basic, model.DocumentTypeOrder), packager.SourceFile(filepath.Join(t.TempDir(), "missing.pdf")))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	rec.err = errors.New("boom")
	_, err = p.Generate(order(profile.Basic, model.DocumentTypeOrder), packager.SourceBytes([]byte("%PDF")))
	assert.EqualError(t, err, "boom")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4"), 0o644))

	p := packager.New(packager.WithEmbedder(&recordingEmbedder{}))
	dest := filepath.Join(dir, "out.pdf")
	require.NoError(t, p.WriteFile(order(profile.Basic, model.DocumentTypeOrder), packager.SourceFile(src), dest))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "embedded:%PDF-1.4", string(got))
}

// minimalPDF renders a one page PDF with a correct cross reference table
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

func TestGenerate_PDFCPU(t *testing.T) {
	p := packager.New()
	out, err := p.Generate(order(profile.Basic, model.DocumentTypeOrder), packager.SourceBytes(minimalPDF()))
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "%PDF-"))
	assert.Contains(t, s, "order-x.xml")
	assert.Contains(t, s, "AFRelationship")
	assert.Contains(t, s, "SELLER_NAME, Order PO123456789")
	assert.Contains(t, s, packager.NSOrderX)
}

func infoEntry(t *testing.T, info types.Dict, key string) string {
	t.Helper()
	switch v := info[key].(type) {
	case types.StringLiteral:
		s, err := types.StringLiteralToString(v)
		require.NoError(t, err)
		return s
	case types.HexLiteral:
		s, err := types.HexLiteralToString(v)
		require.NoError(t, err)
		return s
	default:
		t.Fatalf("info %s: unexpected %T", key, v)
		return ""
	}
}

func TestGenerate_PDFCPU_InfoMatchesXMP(t *testing.T) {
	b := builder.New(profile.Basic)
	b.SetDocumentInformation("PO123456789", model.DocumentTypeOrder, issued, "EUR").
		SetParty(builder.Seller, "Müller GmbH", "", "")

	out, err := packager.New(packager.WithCreator("acme")).Generate(b, packager.SourceBytes(minimalPDF()))
	require.NoError(t, err)

	ctx, err := api.ReadContext(bytes.NewReader(out), pdfmodel.NewDefaultConfiguration())
	require.NoError(t, err)
	require.NotNil(t, ctx.XRefTable.Info)
	info, err := ctx.XRefTable.DereferenceDict(*ctx.XRefTable.Info)
	require.NoError(t, err)

	begin := bytes.Index(out, []byte("<?xpacket begin="))
	end := bytes.Index(out, []byte(`<?xpacket end="w"?>`))
	require.True(t, begin >= 0 && end > begin)
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out[begin:end+len(`<?xpacket end="w"?>`)]))
	xmp := func(path string) string {
		el := doc.FindElement(path)
		require.NotNil(t, el, path)
		return el.Text()
	}

	assert.Equal(t, xmp("//pdf:Producer"), infoEntry(t, info, "Producer"))
	assert.Equal(t, xmp("//xmp:CreatorTool"), infoEntry(t, info, "Creator"))
	assert.Equal(t, xmp("//pdf:Keywords"), infoEntry(t, info, "Keywords"))
	assert.Equal(t, xmp("//dc:title/rdf:Alt/rdf:li"), infoEntry(t, info, "Title"))
	assert.Equal(t, xmp("//dc:creator/rdf:Seq/rdf:li"), infoEntry(t, info, "Author"))
	assert.Equal(t, "Müller GmbH", infoEntry(t, info, "Author"))
	assert.Equal(t, xmp("//dc:description/rdf:Alt/rdf:li"), infoEntry(t, info, "Subject"))

	assert.Equal(t, "2022-12-31T00:00:00+00:00", xmp("//xmp:CreateDate"))
	assert.Equal(t, "2022-12-31T00:00:00+00:00", xmp("//xmp:ModifyDate"))
	assert.Equal(t, types.DateString(issued), infoEntry(t, info, "CreationDate"))
	assert.Equal(t, types.DateString(issued), infoEntry(t, info, "ModDate"))
}

func TestSetXMPProducer_KeepsPacketLength(t *testing.T) {
	info, err := packager.ExtractOrderInfo(order(profile.Basic, model.DocumentTypeOrder).Order())
	require.NoError(t, err)
	packet, err := packager.BuildXMP(packager.DeriveMetadata(info), profile.Basic.Definition(), orderxml.AttachmentName, "orderx")
	require.NoError(t, err)

	updated, err := packager.SetXMPProducer(packet, "pdfcpu v0.11.1 dev")
	require.NoError(t, err)
	assert.Len(t, updated, len(packet))
	assert.Contains(t, string(updated), "<pdf:Producer>pdfcpu v0.11.1 dev</pdf:Producer>")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(updated)), `<?xpacket end="w"?>`))

	_, err = packager.SetXMPProducer(packet, strings.Repeat("x", 4096))
	assert.Error(t, err)
}
