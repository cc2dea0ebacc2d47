package commands

import (
	"os"
	"strings"

	"restaurant-locator/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

func mark(done bool) string {
	if done {
		return "x"
	}
	return ""
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints the stored locations and their pipeline progress.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		service, database := openStore(cfg)
		defer database.Close()

		locations, err := service.Locations(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to load locations", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Slug", "Name", "Cuisines", "Matched", "Fetched", "Scraped"})
		for _, loc := range locations {
			t.AppendRow(table.Row{
				loc.Slug,
				loc.Name,
				strings.Join(loc.Cuisines, ", "),
				mark(loc.HasMatch()),
				mark(loc.HasPost()),
				mark(loc.HasScrape()),
			})
		}
		t.Render()
	},
}
