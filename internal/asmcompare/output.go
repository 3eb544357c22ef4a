package asmcompare

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Absent marks a missing value in the compiled table: a join miss or an
// unresolved taxonomic rank. It is never conflated with zero or false.
const Absent = "NA"

// Columns is the contract surface consumed by downstream reporting and
// plotting. Nothing downstream may assume anything about the original
// file formats, only these columns.
var Columns = []string{
	"contig_id", "assembler", "length", "is_circular", "coverage",
	"completeness", "contamination", "quality_category",
	"domain", "phylum", "class", "order", "family", "genus", "species",
	"is_large_circular",
}

// WriteTSV writes the table in row order. Output depends only on the
// records, so recompiling identical inputs writes identical bytes.
func (t *Table) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, strings.Join(Columns, "\t"))
	for _, r := range t.Records {
		fmt.Fprintln(bw, strings.Join(r.row(), "\t"))
	}

	return bw.Flush()
}

// Write writes the table as TSV to the named file.
func (t *Table) Write(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return t.WriteTSV(out)
}

// row renders one record's cells in Columns order.
func (r *Record) row() []string {
	coverage := Absent
	if r.HasCoverage {
		coverage = formatFloat(r.Coverage)
	}

	completeness, contamination := Absent, Absent
	if r.Assessed {
		completeness = formatFloat(r.Quality.Completeness)
		contamination = formatFloat(r.Quality.Contamination)
	}

	return []string{
		r.ID,
		r.Assembler,
		strconv.Itoa(r.Length),
		strconv.FormatBool(r.Circular),
		coverage,
		completeness,
		contamination,
		string(r.Category),
		rank(r.Lineage.Domain),
		rank(r.Lineage.Phylum),
		rank(r.Lineage.Class),
		rank(r.Lineage.Order),
		rank(r.Lineage.Family),
		rank(r.Lineage.Genus),
		rank(r.Lineage.Species),
		strconv.FormatBool(r.LargeCircular),
	}
}

// rank renders a lineage rank, using the absent marker for unresolved.
func rank(name string) string {
	if name == "" {
		return Absent
	}
	return name
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
