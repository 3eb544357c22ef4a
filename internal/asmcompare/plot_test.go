package asmcompare

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_PlotAll(t *testing.T) {
	c := testConfig()

	table, err := Compile(c)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	outDir := t.TempDir()
	if err := PlotAll(table, c, outDir); err != nil {
		t.Fatalf("PlotAll() error = %v", err)
	}

	charts := []string{
		"length_distribution.png",
		"length_vs_coverage.png",
		"large_circular_quality.png",
		"large_circular_phyla.png",
	}
	for _, chart := range charts {
		info, err := os.Stat(filepath.Join(outDir, chart))
		if err != nil {
			t.Errorf("PlotAll() missing %s: %v", chart, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("PlotAll() wrote empty %s", chart)
		}
	}
}
