package orderx

import (
	"context"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/rezonia/orderx/internal/builder"
	dec "github.com/rezonia/orderx/internal/decimal"
	"github.com/rezonia/orderx/internal/orderfile"
	"github.com/rezonia/orderx/internal/orderxml"
	"github.com/rezonia/orderx/internal/packager"
	"github.com/rezonia/orderx/internal/profile"
)

// NewBuilder creates a builder for the given profile
func NewBuilder(p Profile) *Builder {
	return builder.New(p)
}

// Number wraps v as a present optional amount, quantity or rate
func Number(v float64) decimal.NullDecimal {
	return dec.NullFromFloat(v)
}

// ParseNumber parses s as an optional amount, quantity or rate. An empty
// string is absent.
func ParseNumber(s string) (decimal.NullDecimal, error) {
	return dec.NullFromString(s)
}

// ParseProfile resolves a profile from its name or guideline id
func ParseProfile(s string) (Profile, error) {
	return profile.Parse(s)
}

// Profiles returns the definitions of all supported profiles
func Profiles() []ProfileDefinition {
	return profile.All()
}

// ReadXML parses an Order-X document
func ReadXML(content []byte) (*Document, error) {
	return orderxml.Read(content)
}

// ParseXML parses an Order-X document from r
func ParseXML(ctx context.Context, r io.Reader) (*Document, error) {
	return orderxml.Parse(ctx, r)
}

// Summarize extracts the header facts of a parsed document
func Summarize(d *Document) Summary {
	return orderxml.Summarize(d)
}

// LoadDefinition reads a YAML or JSON order definition and replays it onto
// a new builder
func LoadDefinition(path string) (*Builder, error) {
	def, err := orderfile.Load(path)
	if err != nil {
		return nil, err
	}
	return def.Build()
}

// ParseDefinition is LoadDefinition for in-memory content
func ParseDefinition(data []byte) (*Builder, error) {
	def, err := orderfile.Parse(data)
	if err != nil {
		return nil, err
	}
	return def.Build()
}

// SourceFile reads the source PDF from path
func SourceFile(path string) Source {
	return packager.SourceFile(path)
}

// SourceBytes reads the source PDF from memory
func SourceBytes(b []byte) Source {
	return packager.SourceBytes(b)
}

// PackagerOptions configures a Packager
type PackagerOptions struct {
	// Creator is written as creator tool and producer (default: orderx)
	Creator string
	// Logger receives progress and failures (default: discarded)
	Logger *slog.Logger
	// Embedder replaces the pdfcpu based embedder
	Embedder Embedder
}

// DefaultPackagerOptions returns default packager options
func DefaultPackagerOptions() PackagerOptions {
	return PackagerOptions{Creator: packager.DefaultCreator}
}

// NewPackager creates a packager with the given options
func NewPackager(opts PackagerOptions) *Packager {
	return packager.New(
		packager.WithCreator(opts.Creator),
		packager.WithLogger(opts.Logger),
		packager.WithEmbedder(opts.Embedder),
	)
}

// ExtractOrderInfo reads the facts the packager derives metadata from
func ExtractOrderInfo(o *Order) (OrderInfo, error) {
	return packager.ExtractOrderInfo(o)
}

// DeriveMetadata computes PDF metadata from order facts
func DeriveMetadata(info OrderInfo) Metadata {
	return packager.DeriveMetadata(info)
}
