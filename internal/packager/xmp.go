package packager

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"

	"github.com/rezonia/orderx/internal/profile"
)

// XMP namespaces
const (
	nsX          = "adobe:ns:meta/"
	nsRDF        = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsPDFAID     = "http://www.aiim.org/pdfa/ns/id/"
	nsDC         = "http://purl.org/dc/elements/1.1/"
	nsPDF        = "http://ns.adobe.com/pdf/1.3/"
	nsXMP        = "http://ns.adobe.com/xap/1.0/"
	nsPDFAExt    = "http://www.aiim.org/pdfa/ns/extension/"
	nsPDFASchema = "http://www.aiim.org/pdfa/ns/schema#"
	nsPDFAProp   = "http://www.aiim.org/pdfa/ns/property#"

	// NSOrderX is the namespace of the Order-X XMP extension schema
	NSOrderX = "urn:factur-x:pdfa:CrossIndustryDocument:1p0#"
)

const xpacketID = "W5M0MpCehiHzreSzNTczkc9d"

// xmpPadding is the whitespace reserved in front of the packet trailer for
// in-place updates
const xmpPadding = 2048

var xpacketEnd = []byte("<?xpacket end=")

// BuildXMP renders the XMP packet of a hybrid order PDF: PDF/A-3B
// identification, Dublin Core title/creator/description, keywords, dates and
// the Order-X extension schema describing the attachment.
func BuildXMP(meta Metadata, def profile.Definition, attachmentName, creator string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xpacket", fmt.Sprintf(`begin="%s" id="%s"`, "\ufeff", xpacketID))

	root := doc.CreateElement("x:xmpmeta")
	root.CreateAttr("xmlns:x", nsX)
	rdf := root.CreateElement("rdf:RDF")
	rdf.CreateAttr("xmlns:rdf", nsRDF)

	pdfaid := description(rdf, "pdfaid", nsPDFAID)
	pdfaid.CreateElement("pdfaid:part").SetText("3")
	pdfaid.CreateElement("pdfaid:conformance").SetText("B")

	dc := description(rdf, "dc", nsDC)
	dc.CreateElement("dc:format").SetText("application/pdf")
	langAlt(dc, "dc:title", meta.Title)
	seq := dc.CreateElement("dc:creator").CreateElement("rdf:Seq")
	seq.CreateElement("rdf:li").SetText(meta.Author)
	langAlt(dc, "dc:description", meta.Subject)

	pdf := description(rdf, "pdf", nsPDF)
	pdf.CreateElement("pdf:Keywords").SetText(meta.Keywords)
	pdf.CreateElement("pdf:Producer").SetText(creator)

	xmp := description(rdf, "xmp", nsXMP)
	xmp.CreateElement("xmp:CreatorTool").SetText(creator)
	xmp.CreateElement("xmp:CreateDate").SetText(meta.CreatedDate)
	xmp.CreateElement("xmp:ModifyDate").SetText(meta.ModifiedDate)
	xmp.CreateElement("xmp:MetadataDate").SetText(meta.ModifiedDate)

	fx := description(rdf, "fx", NSOrderX)
	fx.CreateElement("fx:DocumentType").SetText("ORDER")
	fx.CreateElement("fx:DocumentFileName").SetText(attachmentName)
	fx.CreateElement("fx:Version").SetText("1.0")
	fx.CreateElement("fx:ConformanceLevel").SetText(def.DisplayName)

	extensionSchema(rdf)

	doc.CreateProcInst("xpacket", `end="w"`)
	doc.Indent(1)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("build xmp: %w", err)
	}
	return pad(out, len(out)+xmpPadding)
}

// SetXMPProducer replaces pdf:Producer in packet. The result has the length
// of packet so it can overwrite it in place.
func SetXMPProducer(packet []byte, producer string) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(packet); err != nil {
		return nil, fmt.Errorf("read xmp: %w", err)
	}
	el := doc.FindElement("//pdf:Producer")
	if el == nil {
		return nil, fmt.Errorf("read xmp: pdf:Producer missing")
	}
	el.SetText(producer)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("write xmp: %w", err)
	}
	return pad(out, len(packet))
}

// pad resizes the whitespace before the packet trailer so the packet is
// exactly size bytes long
func pad(packet []byte, size int) ([]byte, error) {
	i := bytes.LastIndex(packet, xpacketEnd)
	if i < 0 {
		return nil, fmt.Errorf("xmp: packet trailer missing")
	}
	head := bytes.TrimRight(packet[:i], " \t\r\n")
	tail := packet[i:]
	n := size - len(head) - len(tail)
	if n < 1 {
		return nil, fmt.Errorf("xmp: packet exceeds %d bytes", size)
	}

	out := make([]byte, 0, size)
	out = append(out, head...)
	for j := 0; j < n; j++ {
		if j%100 == 0 || j == n-1 {
			out = append(out, '\n')
		} else {
			out = append(out, ' ')
		}
	}
	return append(out, tail...), nil
}

func description(rdf *etree.Element, prefix, ns string) *etree.Element {
	d := rdf.CreateElement("rdf:Description")
	d.CreateAttr("rdf:about", "")
	d.CreateAttr("xmlns:"+prefix, ns)
	return d
}

func langAlt(parent *etree.Element, tag, value string) {
	li := parent.CreateElement(tag).CreateElement("rdf:Alt").CreateElement("rdf:li")
	li.CreateAttr("xml:lang", "x-default")
	li.SetText(value)
}

var orderXProperties = []struct {
	name        string
	description string
}{
	{"DocumentFileName", "The name of the embedded XML document"},
	{"DocumentType", "The type of the hybrid document in capital letters, e.g. ORDER"},
	{"Version", "The actual version of the standard applying to the embedded XML document"},
	{"ConformanceLevel", "The conformance level of the embedded XML document"},
}

// extensionSchema declares the fx properties as required by PDF/A
func extensionSchema(rdf *etree.Element) {
	d := rdf.CreateElement("rdf:Description")
	d.CreateAttr("rdf:about", "")
	d.CreateAttr("xmlns:pdfaExtension", nsPDFAExt)
	d.CreateAttr("xmlns:pdfaSchema", nsPDFASchema)
	d.CreateAttr("xmlns:pdfaProperty", nsPDFAProp)

	schema := d.CreateElement("pdfaExtension:schemas").CreateElement("rdf:Bag").CreateElement("rdf:li")
	schema.CreateAttr("rdf:parseType", "Resource")
	schema.CreateElement("pdfaSchema:schema").SetText("Order-X PDFA Extension Schema")
	schema.CreateElement("pdfaSchema:namespaceURI").SetText(NSOrderX)
	schema.CreateElement("pdfaSchema:prefix").SetText("fx")

	seq := schema.CreateElement("pdfaSchema:property").CreateElement("rdf:Seq")
	for _, p := range orderXProperties {
		li := seq.CreateElement("rdf:li")
		li.CreateAttr("rdf:parseType", "Resource")
		li.CreateElement("pdfaProperty:name").SetText(p.name)
		li.CreateElement("pdfaProperty:valueType").SetText("Text")
		li.CreateElement("pdfaProperty:category").SetText("external")
		li.CreateElement("pdfaProperty:description").SetText(p.description)
	}
}
