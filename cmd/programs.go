package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zionmelson/shredstream-tui/programs"
)

var programsCmd = cobra.Command{
	Use:   "programs",
	Short: "Print the known-program registry and tip accounts",
	Run: func(cmd *cobra.Command, args []string) {
		reg := programs.NewRegistry()

		type row struct {
			id   string
			info programs.ProgramInfo
		}
		rows := make([]row, 0, reg.Len())
		for key, info := range reg.All() {
			rows = append(rows, row{id: key.String(), info: info})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].info.Category != rows[j].info.Category {
				return rows[i].info.Category < rows[j].info.Category
			}
			return rows[i].info.Name < rows[j].info.Name
		})

		for _, r := range rows {
			fmt.Printf("%-8s %-18s %s\n", r.info.Category, r.info.Name, r.id)
		}

		fmt.Println("\nTip accounts:")
		for _, tip := range reg.TipAccounts() {
			fmt.Println("  " + tip.String())
		}
	},
}

func init() {
	RootCmd.AddCommand(&programsCmd)
}
