package commands

import (
	"log/slog"
	"os"
	"time"

	"restaurant-locator/lib/serviceutil"
	"restaurant-locator/lib/telemetry"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <listing.md>",
	Short: "Runs the whole pipeline: parse, match, fetch, scrape, export.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		service, database := openService(cfg)
		defer database.Close()

		ctx := serviceutil.SignalContext()
		telemetry.InstrumentPerfStats(ctx)

		f, err := os.Open(args[0])
		if err != nil {
			serviceutil.Fatal("failed to open listing file", err)
		}
		stats, err := service.ImportListing(ctx, f)
		f.Close()
		if err != nil {
			serviceutil.Fatal("failed to parse listing", err)
		}
		slog.Info("parsed listing", "cuisines", stats.Cuisines, "locations", stats.Locations)

		t1 := time.Now()
		if _, err := service.Match(ctx, false); err != nil {
			serviceutil.Fatal("match failed", err)
		}
		if _, err := service.Fetch(ctx, false); err != nil {
			serviceutil.Fatal("fetch failed", err)
		}
		if _, err := service.Scrape(ctx, false); err != nil {
			serviceutil.Fatal("scrape failed", err)
		}
		slog.Info("pipeline time", "seconds", time.Since(t1).Seconds())

		err = service.Export(ctx, cfg.ExportDir, false)
		if err != nil {
			serviceutil.Fatal("export failed", err)
		}
	},
}
