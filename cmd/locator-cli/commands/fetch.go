package commands

import (
	"log/slog"

	"restaurant-locator/lib/serviceutil"

	"github.com/spf13/cobra"
)

var fetchForce *bool

func init() {
	fetchForce = fetchCmd.Flags().Bool("force", false, "Re-download blog data that is already stored.")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [--force]",
	Short: "Downloads the wp-json article record for every matched location.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		service, database := openService(cfg)
		defer database.Close()

		results, err := service.Fetch(cmd.Context(), *fetchForce)
		if err != nil {
			serviceutil.Fatal("fetch failed", err)
		}

		fetched, skipped, failed := 0, 0, 0
		for _, r := range results {
			switch {
			case r.Skipped:
				skipped++
			case r.Err != nil:
				failed++
			default:
				fetched++
			}
		}
		slog.Info("fetch finished", "fetched", fetched, "skipped", skipped, "failed", failed)
	},
}
