package asmcompare

import (
	"os"

	"github.com/PullupGuy/bioinfo-project/config"
	"github.com/spf13/cobra"
)

// RunCompile is the entry for `asmcompare compile`. It compiles the
// per-contig table and writes it as TSV to --out, or stdout.
func RunCompile(cmd *cobra.Command, args []string) {
	c := config.New()

	t, err := Compile(c)
	if err != nil {
		stderr.Fatalf("failed to compile: %v", err)
	}
	t.LogSkipped()

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		if err := t.WriteTSV(os.Stdout); err != nil {
			stderr.Fatalf("failed to write table: %v", err)
		}
		return
	}

	if err := t.Write(out); err != nil {
		stderr.Fatalf("failed to write %s: %v", out, err)
	}
	stderr.Printf("wrote %d records to %s", len(t.Records), out)
}

// RunStats is the entry for `asmcompare stats`. It compiles the table
// and prints per-assembler descriptive statistics.
func RunStats(cmd *cobra.Command, args []string) {
	c := config.New()

	t, err := Compile(c)
	if err != nil {
		stderr.Fatalf("failed to compile: %v", err)
	}
	t.LogSkipped()

	if err := WriteStats(os.Stdout, Summarize(t, c.AssemblerOrder)); err != nil {
		stderr.Fatalf("failed to write stats: %v", err)
	}
}

// RunPlot is the entry for `asmcompare plot`. It compiles the table and
// renders the comparison charts into --out-dir.
func RunPlot(cmd *cobra.Command, args []string) {
	c := config.New()

	t, err := Compile(c)
	if err != nil {
		stderr.Fatalf("failed to compile: %v", err)
	}
	t.LogSkipped()

	outDir, _ := cmd.Flags().GetString("out-dir")
	if err := PlotAll(t, c, outDir); err != nil {
		stderr.Fatalf("failed to plot: %v", err)
	}
	stderr.Printf("wrote charts to %s", outDir)
}
