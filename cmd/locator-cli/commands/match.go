package commands

import (
	"log/slog"

	"restaurant-locator/lib/serviceutil"

	"github.com/spf13/cobra"
)

var matchForce *bool

func init() {
	matchForce = matchCmd.Flags().Bool("force", false, "Re-match locations that already have a blog url.")
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match [--force]",
	Short: "Finds a blog article url for every parsed location.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		service, database := openService(cfg)
		defer database.Close()

		results, err := service.Match(cmd.Context(), *matchForce)
		if err != nil {
			serviceutil.Fatal("match failed", err)
		}

		matched, skipped, missed := 0, 0, 0
		for _, r := range results {
			switch {
			case r.Skipped:
				skipped++
			case r.URL != "":
				matched++
			default:
				missed++
			}
		}
		slog.Info("match finished", "matched", matched, "skipped", skipped, "missed", missed)
	},
}
