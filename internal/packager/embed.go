package packager

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Attachment is the XML file embedded into the PDF
type Attachment struct {
	Name        string
	Description string
	Content     []byte
	ModTime     time.Time
}

// Job describes one embedding run
type Job struct {
	Attachment Attachment
	Metadata   Metadata
	Creator    string
	XMP        []byte
}

// Embedder attaches an order XML to a PDF and writes the result
type Embedder interface {
	Embed(src io.ReadSeeker, dst io.Writer, job Job) error
}

// PDFCPUEmbedder embeds with pdfcpu. The attachment is registered in the
// EmbeddedFiles name tree and the catalog AF array with relationship
// Alternative, the XMP packet replaces the catalog metadata stream and the
// info dictionary receives the derived metadata.
type PDFCPUEmbedder struct{}

func init() {
	api.DisableConfigDir()
}

// Embed implements Embedder
func (PDFCPUEmbedder) Embed(src io.ReadSeeker, dst io.Writer, job Job) error {
	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false

	ctx, err := api.ReadContext(src, conf)
	if err != nil {
		return fmt.Errorf("read pdf: %w", err)
	}

	fileSpec, err := attach(ctx, job.Attachment)
	if err != nil {
		return err
	}

	catalog, err := ctx.XRefTable.Catalog()
	if err != nil {
		return fmt.Errorf("pdf catalog: %w", err)
	}
	catalog.Update("AF", types.Array{*types.NewIndirectRef(fileSpec, 0)})

	if len(job.XMP) > 0 {
		sd := types.StreamDict{Dict: types.NewDict(), Content: job.XMP}
		sd.InsertName("Type", "Metadata")
		sd.InsertName("Subtype", "XML")
		if err := sd.Encode(); err != nil {
			return fmt.Errorf("encode xmp: %w", err)
		}
		ir, err := ctx.XRefTable.IndRefForNewObject(sd)
		if err != nil {
			return fmt.Errorf("add xmp: %w", err)
		}
		catalog.Update("Metadata", *ir)
	}

	if err := writeInfo(ctx, job); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	out, err := reconcile(buf.Bytes(), job)
	if err != nil {
		return err
	}
	if _, err := dst.Write(out); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// attach adds the file and returns the object number of its file spec
func attach(ctx *model.Context, a Attachment) (int, error) {
	before := make(map[int]bool, len(ctx.XRefTable.Table))
	for nr := range ctx.XRefTable.Table {
		before[nr] = true
	}

	mod := a.ModTime
	err := ctx.AddAttachment(model.Attachment{
		Reader:   bytes.NewReader(a.Content),
		ID:       a.Name,
		FileName: a.Name,
		Desc:     a.Description,
		ModTime:  &mod,
	}, false)
	if err != nil {
		return 0, fmt.Errorf("attach %s: %w", a.Name, err)
	}

	for nr, entry := range ctx.XRefTable.Table {
		if before[nr] || entry == nil {
			continue
		}
		d, ok := entry.Object.(types.Dict)
		if !ok || d.Type() == nil || *d.Type() != "Filespec" {
			continue
		}
		d.Update("AFRelationship", types.Name("Alternative"))
		markXML(ctx, d)
		return nr, nil
	}
	return 0, fmt.Errorf("attach %s: file spec not found", a.Name)
}

func markXML(ctx *model.Context, fileSpec types.Dict) {
	ef, ok := fileSpec["EF"].(types.Dict)
	if !ok {
		return
	}
	ir, ok := ef["F"].(types.IndirectRef)
	if !ok {
		return
	}
	entry, ok := ctx.XRefTable.Table[ir.ObjectNumber.Value()]
	if !ok || entry == nil {
		return
	}
	if sd, ok := entry.Object.(types.StreamDict); ok {
		sd.Update("Subtype", types.Name("text/xml"))
		entry.Object = sd
	}
}

func writeInfo(ctx *model.Context, job Job) error {
	var info types.Dict
	if ctx.XRefTable.Info != nil {
		d, err := ctx.XRefTable.DereferenceDict(*ctx.XRefTable.Info)
		if err != nil {
			return fmt.Errorf("pdf info: %w", err)
		}
		info = d
	}
	if info == nil {
		info = types.NewDict()
		ir, err := ctx.XRefTable.IndRefForNewObject(info)
		if err != nil {
			return fmt.Errorf("add pdf info: %w", err)
		}
		ctx.XRefTable.Info = ir
	}

	m := job.Metadata
	entries := []struct{ key, value string }{
		{"Author", m.Author},
		{"Keywords", m.Keywords},
		{"Title", m.Title},
		{"Subject", m.Subject},
		{"Creator", job.Creator},
		{"Producer", job.Creator},
	}
	for _, e := range entries {
		v, err := pdfString(e.value)
		if err != nil {
			return fmt.Errorf("pdf info %s: %w", e.key, err)
		}
		info.Update(e.key, v)
	}
	date := types.StringLiteral(types.DateString(m.Issued))
	info.Update("CreationDate", date)
	info.Update("ModDate", date)
	return nil
}

// reconcile aligns the written info dictionary with the XMP packet. The
// writer stamps its own producer and the current time into the info
// dictionary; the dates are put back to the issue date and the XMP producer
// takes over the stamped value. Both edits keep every byte offset intact.
func reconcile(out []byte, job Job) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadContext(bytes.NewReader(out), conf)
	if err != nil {
		return nil, fmt.Errorf("reread pdf: %w", err)
	}
	if ctx.XRefTable.Info == nil {
		return out, nil
	}
	info, err := ctx.XRefTable.DereferenceDict(*ctx.XRefTable.Info)
	if err != nil {
		return nil, fmt.Errorf("reread pdf info: %w", err)
	}
	entry, ok := ctx.XRefTable.Table[ctx.XRefTable.Info.ObjectNumber.Value()]
	if !ok || entry == nil || entry.Offset == nil {
		return nil, fmt.Errorf("reread pdf info: object not found")
	}

	start := int(*entry.Offset)
	end := bytes.Index(out[start:], []byte("endobj"))
	if end < 0 {
		return nil, fmt.Errorf("reread pdf info: unterminated object")
	}
	region := out[start : start+end]

	want := "(" + types.DateString(job.Metadata.Issued) + ")"
	for _, key := range []string{"CreationDate", "ModDate"} {
		stamped, ok := info[key].(types.StringLiteral)
		if !ok {
			continue
		}
		have := "(" + string(stamped) + ")"
		if have == want {
			continue
		}
		if len(have) != len(want) {
			return nil, fmt.Errorf("pdf info %s: cannot replace %s with %s", key, have, want)
		}
		i := bytes.Index(region, []byte(have))
		if i < 0 {
			return nil, fmt.Errorf("pdf info %s: %s not found", key, have)
		}
		copy(region[i:], want)
	}

	if len(job.XMP) == 0 {
		return out, nil
	}
	producer, err := infoString(info["Producer"])
	if err != nil {
		return nil, fmt.Errorf("pdf info Producer: %w", err)
	}
	at := bytes.Index(out, job.XMP)
	if at < 0 {
		return nil, fmt.Errorf("xmp packet not found in output")
	}
	packet, err := SetXMPProducer(job.XMP, producer)
	if err != nil {
		return nil, err
	}
	copy(out[at:], packet)
	return out, nil
}

func infoString(o types.Object) (string, error) {
	switch v := o.(type) {
	case nil:
		return "", nil
	case types.StringLiteral:
		return types.StringLiteralToString(v)
	case types.HexLiteral:
		return types.HexLiteralToString(v)
	default:
		return "", fmt.Errorf("unexpected %T", o)
	}
}

// pdfString encodes s as a text string literal, UTF-16BE when it leaves ASCII
func pdfString(s string) (types.StringLiteral, error) {
	enc := s
	for _, r := range s {
		if r > 0x7e {
			enc = types.EncodeUTF16String(s)
			break
		}
	}
	esc, err := types.Escape(enc)
	if err != nil {
		return "", err
	}
	return types.StringLiteral(*esc), nil
}
