package main

import (
	"fmt"

	"github.com/phravins/projectgen/internal/catalog"
	"github.com/phravins/projectgen/internal/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var catalogCmd = &cobra.Command{
	Use:       "catalog [styles|frameworks] [query]",
	Short:     "List or search the available styles and CSS frameworks",
	Long:      "Lists the catalog offered to web projects. With a query, entries are fuzzy-matched on name and description, best match first.",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"styles", "frameworks"},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		var entries []catalog.Entry
		switch args[0] {
		case "styles":
			entries = catalog.Styles()
		case "frameworks":
			entries = catalog.Frameworks()
		default:
			return fmt.Errorf("unknown catalog %q: use styles or frameworks", args[0])
		}

		query := ""
		if len(args) > 1 {
			query = args[1]
		}
		results := catalog.Search(entries, query)

		report := tui.NewReporter(cmd.OutOrStdout())
		if len(results) == 0 {
			report.Info(p.Sprintf("No match for %q", query))
			return nil
		}
		report.Entries(results, func(s string) string { return p.Sprintf(s) })
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective settings",
	Long:  "Prints the settings after merging ~/.projectgen.yaml, PROJECTGEN_* environment variables and flags.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("encoding settings: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}
