package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/orderx/internal/orderxml"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show information about Order-X documents",
	Long: `Display the header facts of Order-X XML documents.

Shows:
  - Profile and guideline
  - Order id, document type and issue date
  - Seller, buyer, currency and grand total
  - Line ids

Examples:
  orderx info order.xml
  orderx info orders/ -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// InfoResult is the info output of one file
type InfoResult struct {
	File    string            `json:"file"`
	Summary *orderxml.Summary `json:"summary,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found")
	}

	results := make([]InfoResult, 0, len(files))
	for _, file := range files {
		printVerbose("Reading: %s\n", file)
		results = append(results, readInfo(file))
	}

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	default:
		for _, r := range results {
			printInfo(r)
			fmt.Println()
		}
		return nil
	}
}

func readInfo(file string) InfoResult {
	r := InfoResult{File: file}
	data, err := os.ReadFile(file)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	doc, err := orderxml.Read(data)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	s := orderxml.Summarize(doc)
	r.Summary = &s
	return r
}

func printInfo(r InfoResult) {
	fmt.Printf("File: %s\n", r.File)
	if r.Error != "" {
		fmt.Printf("  Error: %s\n", r.Error)
		return
	}
	s := r.Summary
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Profile:\t%s (%s)\n", s.Profile, s.GuidelineID)
	fmt.Fprintf(w, "  Order:\t%s\n", s.OrderID)
	fmt.Fprintf(w, "  Type:\t%s (%s)\n", s.TypeName, s.TypeCode)
	fmt.Fprintf(w, "  Issued:\t%s\n", s.IssueDate)
	fmt.Fprintf(w, "  Seller:\t%s\n", s.Seller)
	fmt.Fprintf(w, "  Buyer:\t%s\n", s.Buyer)
	if s.GrandTotal != "" {
		fmt.Fprintf(w, "  Total:\t%s %s\n", s.GrandTotal, s.Currency)
	}
	fmt.Fprintf(w, "  Lines:\t%d %s\n", s.LineCount, strings.Join(s.LineIDs, ", "))
	_ = w.Flush()
}

// collectFiles expands globs and walks directories for XML files
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}

		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				return nil, fmt.Errorf("file not found: %s", m)
			}
			if !info.IsDir() {
				files = append(files, m)
				continue
			}
			err = filepath.Walk(m, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walk %s: %w", m, err)
			}
		}
	}

	return files, nil
}
