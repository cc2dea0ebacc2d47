package commands

import (
	"log/slog"

	"restaurant-locator/lib/serviceutil"

	"github.com/spf13/cobra"
)

var scrapeForce *bool

func init() {
	scrapeForce = scrapeCmd.Flags().Bool("force", false, "Re-scrape locations that already have scrape results.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--force]",
	Short: "Classifies article links and normalizes metadata for every fetched location.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		service, database := openService(cfg)
		defer database.Close()

		results, err := service.Scrape(cmd.Context(), *scrapeForce)
		if err != nil {
			serviceutil.Fatal("scrape failed", err)
		}

		scraped, skipped, failed := 0, 0, 0
		for _, r := range results {
			switch {
			case r.Skipped:
				skipped++
			case r.Err != nil:
				failed++
			default:
				scraped++
			}
		}
		slog.Info("scrape finished", "scraped", scraped, "skipped", skipped, "failed", failed)
	},
}
