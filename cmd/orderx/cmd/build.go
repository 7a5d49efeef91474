package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/orderx/internal/builder"
	"github.com/rezonia/orderx/internal/orderfile"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build <order.yaml>",
	Short: "Build the Order-X XML of an order definition",
	Long: `Read an order definition (YAML or JSON) and write the Order-X XML.

The profile is taken from --profile, then from the definition, then
defaults to BASIC. Fields the profile does not carry are dropped.

Examples:
  orderx build order.yaml
  orderx build order.json -p extended -o order.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output file (default: stdout)")
}

// loadDefinition reads and replays an order definition
func loadDefinition(path string) (*builder.Builder, error) {
	def, err := orderfile.Load(path)
	if err != nil {
		return nil, err
	}
	if profileName != "" {
		def.Profile = profileName
	}
	b, err := def.Build()
	if err != nil {
		return nil, err
	}
	printVerbose("Loaded %s: profile %s, %d positions\n", path, b.Definition().DisplayName, b.PositionCount())
	return b, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	b, err := loadDefinition(args[0])
	if err != nil {
		return err
	}

	if buildOutput == "" {
		return b.WriteXML(os.Stdout)
	}
	if err := b.WriteFile(buildOutput); err != nil {
		return err
	}
	fmt.Printf("Order written to %s\n", buildOutput)
	return nil
}
