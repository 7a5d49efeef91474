package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/orderx/internal/orderxml"
	"github.com/rezonia/orderx/internal/packager"
)

var (
	packPDF    string
	packOutput string
)

var packCmd = &cobra.Command{
	Use:   "pack <order.yaml|order.xml>",
	Short: "Embed an order into a PDF",
	Long: `Create a hybrid Order-X PDF: the order XML is attached as order-x.xml
with relationship Alternative, and the document metadata (title, author,
subject, keywords, XMP) is derived from the order.

The input is either an order definition or an existing Order-X XML file.
The source PDF is never modified. For a conforming PDF/A-3 result the source
must already be PDF/A (fonts embedded, output intent present).

Examples:
  orderx pack order.yaml --pdf printout.pdf -o order-x.pdf
  orderx pack order-x.xml --pdf printout.pdf -o order-x.pdf --creator "ACME ERP"`,
	Args: cobra.ExactArgs(1),
	RunE: runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringVar(&packPDF, "pdf", "", "Source PDF (required)")
	packCmd.Flags().StringVarP(&packOutput, "output", "o", "", "Output PDF (required)")
	_ = packCmd.MarkFlagRequired("pdf")
	_ = packCmd.MarkFlagRequired("output")
}

// loadDocument reads an Order-X XML file or replays a definition
func loadDocument(path string) (packager.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if orderxml.CanRead(data) {
		printVerbose("Reading Order-X XML %s\n", path)
		return orderxml.Read(data)
	}
	return loadDefinition(path)
}

func runPack(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	p := packager.New(
		packager.WithCreator(creator),
		packager.WithLogger(logger()),
	)
	if err := p.WriteFile(doc, packager.SourceFile(packPDF), packOutput); err != nil {
		return err
	}
	fmt.Printf("Hybrid PDF written to %s\n", packOutput)
	return nil
}
