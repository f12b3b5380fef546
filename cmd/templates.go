package cmd

import (
	"fmt"

	"github.com/abhi9vaidya/Guitariz-sub000/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Prints the chord template catalog",
	Long:  `Prints the chord template catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		templates()
	},
}

func templates() {
	for _, t := range catalog.All {
		fmt.Printf("%-18s %-8s intervals=%v weight=%v\n", t.Name, t.Format(0), t.Intervals, t.Weight)
	}
}
