package cmd

import (
	"github.com/PullupGuy/bioinfo-project/internal/asmcompare"
	"github.com/spf13/cobra"
)

// compileCmd merges the three input sources into the per-contig table.
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile headers, quality and taxonomy into one per-contig table",
	Long: `Parses the assembly headers of both assemblers, left-joins the CheckM2
quality report and GTDB-Tk classifications onto them by contig id, and
writes one TSV row per contig.

Contigs missing from the quality or taxonomy sources keep their rows
with NA markers. Recompiling the same inputs writes identical bytes`,
	Run: asmcompare.RunCompile,
}

// set flags
func init() {
	compileCmd.Flags().StringP("out", "o", "", "output TSV file name (default stdout)")

	RootCmd.AddCommand(compileCmd)
}
