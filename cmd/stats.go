package cmd

import (
	"github.com/PullupGuy/bioinfo-project/internal/asmcompare"
	"github.com/spf13/cobra"
)

// statsCmd prints descriptive statistics per assembler.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-assembler contig statistics (size, N50, quality, phyla)",
	Run:   asmcompare.RunStats,
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
