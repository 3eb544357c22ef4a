package asmcompare

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// AssemblerStats are descriptive statistics over one assembler's contigs
// in the compiled table.
type AssemblerStats struct {
	Assembler string

	// Contigs is the number of records
	Contigs int

	// TotalLength is the assembly size in bp
	TotalLength int

	MinLength int
	MaxLength int

	MeanLength   float64
	MedianLength float64

	// N50 is the length of the shortest contig at half the assembly size
	N50 int

	// Circular and LargeCircular contig counts
	Circular      int
	LargeCircular int

	// Categories counts records per quality category
	Categories map[Category]int

	// Phyla counts classified records per phylum
	Phyla map[string]int
}

// Summarize computes per-assembler statistics in the given order.
// Assemblers with no records are skipped.
func Summarize(t *Table, order []string) []AssemblerStats {
	var all []AssemblerStats

	for _, assembler := range order {
		var lengths []float64
		s := AssemblerStats{
			Assembler:  assembler,
			Categories: map[Category]int{},
			Phyla:      map[string]int{},
		}

		for _, r := range t.Records {
			if r.Assembler != assembler {
				continue
			}

			s.Contigs++
			s.TotalLength += r.Length
			lengths = append(lengths, float64(r.Length))

			if s.MinLength == 0 || r.Length < s.MinLength {
				s.MinLength = r.Length
			}
			if r.Length > s.MaxLength {
				s.MaxLength = r.Length
			}
			if r.Circular {
				s.Circular++
			}
			if r.LargeCircular {
				s.LargeCircular++
			}

			s.Categories[r.Category]++
			if r.Lineage.Phylum != "" {
				s.Phyla[r.Lineage.Phylum]++
			}
		}

		if s.Contigs == 0 {
			continue
		}

		sort.Float64s(lengths)
		s.MeanLength = stat.Mean(lengths, nil)
		s.MedianLength = stat.Quantile(0.5, stat.Empirical, lengths, nil)
		s.N50 = n50(lengths, s.TotalLength)

		all = append(all, s)
	}

	return all
}

// n50 finds the length of the shortest contig in the minimal set of
// longest contigs covering half the assembly. Lengths must be sorted
// ascending.
func n50(lengths []float64, totalLength int) int {
	half := float64(totalLength) / 2
	sum := 0.0
	for i := len(lengths) - 1; i >= 0; i-- {
		sum += lengths[i]
		if sum >= half {
			return int(lengths[i])
		}
	}
	return 0
}

// WriteStats renders the per-assembler summaries as text.
func WriteStats(w io.Writer, all []AssemblerStats) error {
	bw := bufio.NewWriter(w)

	for _, s := range all {
		fmt.Fprintf(bw, "%s\n", s.Assembler)
		fmt.Fprintf(bw, "  contigs:        %d\n", s.Contigs)
		fmt.Fprintf(bw, "  assembly size:  %d bp\n", s.TotalLength)
		fmt.Fprintf(bw, "  min/max length: %d / %d bp\n", s.MinLength, s.MaxLength)
		fmt.Fprintf(bw, "  mean length:    %.1f bp\n", s.MeanLength)
		fmt.Fprintf(bw, "  median length:  %.1f bp\n", s.MedianLength)
		fmt.Fprintf(bw, "  N50:            %d bp\n", s.N50)
		fmt.Fprintf(bw, "  circular:       %d (%d large circular)\n", s.Circular, s.LargeCircular)

		fmt.Fprintf(bw, "  quality:        ")
		for i, category := range []Category{CategoryHigh, CategoryMedium, CategoryLow, CategoryUnknown} {
			if i > 0 {
				fmt.Fprint(bw, ", ")
			}
			fmt.Fprintf(bw, "%s=%d", category, s.Categories[category])
		}
		fmt.Fprintln(bw)

		for _, phylum := range sortedPhyla(s.Phyla) {
			fmt.Fprintf(bw, "  p__%s: %d\n", phylum, s.Phyla[phylum])
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// sortedPhyla orders phyla by descending count, name as tie-break.
func sortedPhyla(phyla map[string]int) []string {
	names := make([]string, 0, len(phyla))
	for name := range phyla {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if phyla[names[i]] != phyla[names[j]] {
			return phyla[names[i]] > phyla[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
