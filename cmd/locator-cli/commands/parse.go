package commands

import (
	"log/slog"
	"os"

	"restaurant-locator/lib/serviceutil"

	"github.com/spf13/cobra"
)

var parseReset bool

func init() {
	parseCmd.Flags().BoolVar(&parseReset, "reset", false,
		"drop the stored listing, enrichment results included, before importing")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <listing.md>",
	Short: "Parses a Markdown master listing into the local store.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		service, database := openStore(cfg)
		defer database.Close()

		if parseReset {
			err := service.ResetListing(cmd.Context())
			if err != nil {
				serviceutil.Fatal("failed to reset listing", err)
			}
		}

		f, err := os.Open(args[0])
		if err != nil {
			serviceutil.Fatal("failed to open listing file", err)
		}
		defer f.Close()

		stats, err := service.ImportListing(cmd.Context(), f)
		if err != nil {
			serviceutil.Fatal("failed to parse listing", err)
		}
		slog.Info("parsed listing",
			"cuisines", stats.Cuisines,
			"locations", stats.Locations,
		)
	},
}
