package cmd

import (
	"github.com/PullupGuy/bioinfo-project/internal/asmcompare"
	"github.com/spf13/cobra"
)

// plotCmd renders the comparison charts.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render comparison charts (length distribution, coverage, quality, phyla)",
	Run:   asmcompare.RunPlot,
}

// set flags
func init() {
	plotCmd.Flags().StringP("out-dir", "o", "plots", "directory to write PNG charts to")

	RootCmd.AddCommand(plotCmd)
}
