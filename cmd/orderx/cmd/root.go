package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	profileName  string
	creator      string
)

var rootCmd = &cobra.Command{
	Use:   "orderx",
	Short: "Create Order-X purchase order documents",
	Long: `orderx builds Order-X (UN/CEFACT SCRDM CI) order documents and packages
them into hybrid PDF/A-3 files.

Supports:
  - Profiles: BASIC, COMFORT, EXTENDED
  - Document types: Order (220), Order Change (230), Order Response (231)
  - Order definitions in YAML or JSON

Examples:
  # Build the XML for an order definition
  orderx build order.yaml -o order.xml

  # Embed the order into an existing PDF
  orderx pack order.yaml --pdf order.pdf -o order-x.pdf

  # Inspect Order-X documents
  orderx info *.xml`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "Profile override: basic, comfort, extended (env: ORDERX_PROFILE)")
	rootCmd.PersistentFlags().StringVar(&creator, "creator", "", "Creator tool written to PDF metadata (env: ORDERX_CREATOR)")

	// Load from environment variables if not set via flags
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	_ = godotenv.Load()

	if profileName == "" {
		profileName = os.Getenv("ORDERX_PROFILE")
	}
	if creator == "" {
		creator = os.Getenv("ORDERX_CREATOR")
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// logger returns a stderr logger in verbose mode and a silent one otherwise
func logger() *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
