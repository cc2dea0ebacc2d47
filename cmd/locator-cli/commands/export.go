package commands

import (
	"restaurant-locator/lib/serviceutil"

	"github.com/spf13/cobra"
)

var exportBlogData *bool

func init() {
	exportBlogData = exportCmd.Flags().Bool("blog-data", false, "Keep the raw wp-json payload in the exported locations.")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [dir] [--blog-data]",
	Short: "Writes cuisines.json and locations.json.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		service, database := openStore(cfg)
		defer database.Close()

		dir := cfg.ExportDir
		if len(args) > 0 {
			dir = args[0]
		}

		err := service.Export(cmd.Context(), dir, *exportBlogData)
		if err != nil {
			serviceutil.Fatal("export failed", err)
		}
	},
}
