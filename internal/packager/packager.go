// Package packager turns a finished order and an existing PDF into a hybrid
// Order-X PDF: the order XML travels as an embedded file next to PDF/A-3
// metadata describing it.
package packager

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/orderxml"
	"github.com/rezonia/orderx/internal/profile"
)

// DefaultCreator is written as creator tool unless overridden
const DefaultCreator = "orderx"

// Document is a finished order: a builder or a parsed XML document
type Document interface {
	Definition() profile.Definition
	Order() *model.Order
	XML() ([]byte, error)
}

// Source is the PDF the order is embedded into
type Source interface {
	open() (io.ReadSeekCloser, error)
}

type fileSource string

func (s fileSource) open() (io.ReadSeekCloser, error) {
	f, err := os.Open(string(s))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return f, nil
}

type bytesSource []byte

type nopCloser struct{ *bytes.Reader }

func (nopCloser) Close() error { return nil }

func (s bytesSource) open() (io.ReadSeekCloser, error) {
	return nopCloser{bytes.NewReader(s)}, nil
}

// SourceFile reads the PDF from path
func SourceFile(path string) Source { return fileSource(path) }

// SourceBytes reads the PDF from memory
func SourceBytes(b []byte) Source { return bytesSource(b) }

// Packager generates hybrid order PDFs
type Packager struct {
	embedder Embedder
	logger   *slog.Logger
	creator  string
}

// Option configures a Packager
type Option func(*Packager)

// WithEmbedder replaces the pdfcpu embedder
func WithEmbedder(e Embedder) Option {
	return func(p *Packager) {
		if e != nil {
			p.embedder = e
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(p *Packager) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithCreator sets the creator tool written to the metadata
func WithCreator(name string) Option {
	return func(p *Packager) {
		if name != "" {
			p.creator = name
		}
	}
}

// New creates a packager
func New(opts ...Option) *Packager {
	p := &Packager{
		embedder: PDFCPUEmbedder{},
		logger:   slog.New(slog.DiscardHandler),
		creator:  DefaultCreator,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate embeds doc into src and returns the resulting PDF
func (p *Packager) Generate(doc Document, src Source) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Write(doc, src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile embeds doc into src and writes the result to dest
func (p *Packager) WriteFile(doc Document, src Source, dest string) error {
	out, err := p.Generate(doc, src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

// Write embeds doc into src and writes the result to w
func (p *Packager) Write(doc Document, src Source, w io.Writer) error {
	if doc == nil {
		return fmt.Errorf("package order: %w", model.ErrMissingField)
	}
	info, err := ExtractOrderInfo(doc.Order())
	if err != nil {
		return err
	}
	meta := DeriveMetadata(info)
	def := doc.Definition()

	content, err := doc.XML()
	if err != nil {
		return fmt.Errorf("serialize order: %w", err)
	}
	xmp, err := BuildXMP(meta, def, orderxml.AttachmentName, p.creator)
	if err != nil {
		return err
	}

	r, err := src.open()
	if err != nil {
		return err
	}
	defer r.Close()

	p.logger.Info("embedding order",
		"order_id", info.OrderID,
		"type", info.DocumentTypeName,
		"profile", def.DisplayName,
		"xml_bytes", len(content))

	job := Job{
		Attachment: Attachment{
			Name:        orderxml.AttachmentName,
			Description: "Order-X " + info.DocumentTypeName,
			Content:     content,
			ModTime:     info.IssueDate,
		},
		Metadata: meta,
		Creator:  p.creator,
		XMP:      xmp,
	}
	if err := p.embedder.Embed(r, w, job); err != nil {
		p.logger.Error("embedding failed", "order_id", info.OrderID, "error", err)
		return err
	}
	return nil
}
