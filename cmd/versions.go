package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/getlawrence/stenum/internal/syntax"
	"github.com/getlawrence/stenum/internal/ui"
)

var versionsFormat string

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List target syntax versions and the features they enable",
	Example: `  stenum versions
  stenum versions -o json`,
	Args: cobra.NoArgs,
	RunE: runVersions,
}

func init() {
	rootCmd.AddCommand(versionsCmd)
	versionsCmd.Flags().StringVarP(&versionsFormat, "output", "o", "text", "output format (text, json, yaml)")
}

// versionsListing is the machine readable form of the versions table
type versionsListing struct {
	Default  syntax.Version   `json:"default" yaml:"default"`
	Versions []syntax.Version `json:"versions" yaml:"versions"`
	Features []syntax.Gate    `json:"features" yaml:"features"`
}

func runVersions(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	listing := versionsListing{
		Default:  syntax.Max(),
		Versions: syntax.All(),
		Features: syntax.Gates(),
	}

	switch versionsFormat {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(listing)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(listing); err != nil {
			return err
		}
		return encoder.Close()
	case "text", "":
		fmt.Fprint(out, ui.RenderVersions(listing.Versions, listing.Features))
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", versionsFormat)
	}
}
