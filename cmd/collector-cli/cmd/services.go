package cmd

import (
	"os"

	"seoulopendata/lib/seoulapi"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(servicesCmd)
}

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Lists the dataset services in the known catalog.",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetOutputMirror(os.Stdout)

		t.AppendHeader(table.Row{"Service", "Description"})
		for _, service := range seoulapi.Catalog {
			t.AppendRow(table.Row{service.Name, service.Description})
		}
		t.Render()
	},
}
