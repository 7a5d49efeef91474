package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/orderx/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List supported Order-X profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

type profileRow struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	GuidelineID string `json:"guideline_id"`
	Schematron  string `json:"schematron"`
}

func runProfiles(cmd *cobra.Command, args []string) error {
	var rows []profileRow
	for _, d := range profile.All() {
		rows = append(rows, profileRow{
			Name:        d.Name,
			DisplayName: d.DisplayName,
			GuidelineID: d.GuidelineID,
			Schematron:  d.SchematronFile,
		})
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPROFILE\tGUIDELINE\tSCHEMATRON")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, r.DisplayName, r.GuidelineID, r.Schematron)
	}
	return w.Flush()
}
