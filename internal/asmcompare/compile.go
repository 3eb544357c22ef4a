package asmcompare

import (
	"fmt"
	"log"
	"os"

	"github.com/PullupGuy/bioinfo-project/config"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// LargeContigLength is the size cutoff in base pairs above which a
// circular contig counts as "large circular" (a likely complete genome).
const LargeContigLength = 500000

// Record is one row of the compiled table: a contig's header metadata
// with quality and taxonomy left-joined on.
type Record struct {
	Contig

	// Quality is only meaningful when Assessed is true. An unbinned
	// contig has no assessment, which is not the same as a bad one
	Quality  Quality
	Assessed bool

	// Lineage is only meaningful when Classified is true
	Lineage    Lineage
	Classified bool

	// Category derived from the assessment
	Category Category

	// LargeCircular is Circular && Length > LargeContigLength
	LargeCircular bool
}

// Table is the compiled per-contig dataset. It is built once per run and
// read-only afterwards; all reporting and plotting consume it.
type Table struct {
	// Records in header-parse order, assemblers in configured order
	Records []Record

	// Skipped records across all sources, reported as a summary
	Skipped []*ParseError
}

// Compile parses the header, quality and taxonomy sources for each
// configured assembler and merges them into one table. Headers form the
// backbone; quality and taxonomy are left-joined by contig identifier,
// so join misses keep their rows with absent markers.
func Compile(c *config.Config) (*Table, error) {
	t := &Table{}

	for _, assembler := range c.AssemblerOrder {
		files, err := c.Files(assembler)
		if err != nil {
			return nil, err
		}
		format, err := FormatFor(assembler)
		if err != nil {
			return nil, err
		}

		contigs, headerStats, err := ReadHeaders(files.Headers, format, c.StrictHeaders)
		if err != nil {
			return nil, err
		}
		if len(contigs) == 0 {
			return nil, fmt.Errorf("%s: no parsable contig headers in %s", assembler, files.Headers)
		}
		t.Skipped = append(t.Skipped, headerStats.Skipped...)

		quality := map[string]Quality{}
		if files.QualityReport != "" {
			var qualityStats ParseStats
			quality, qualityStats, err = ReadQualityReport(files.QualityReport, assembler)
			if err != nil {
				return nil, err
			}
			t.Skipped = append(t.Skipped, qualityStats.Skipped...)
		}

		lineages, taxonomyStats, err := ReadTaxonomy(files.ArchaealSummary, files.BacterialSummary, assembler)
		if err != nil {
			return nil, err
		}
		t.Skipped = append(t.Skipped, taxonomyStats.Skipped...)

		for _, contig := range contigs {
			r := Record{Contig: contig}

			if q, ok := quality[contig.ID]; ok {
				r.Quality = q
				r.Assessed = true
			}
			if l, ok := lineages[contig.ID]; ok {
				r.Lineage = l
				r.Classified = true
			}

			r.Category = QualityCategory(r.Quality, r.Assessed)
			r.LargeCircular = contig.Circular && contig.Length > LargeContigLength

			t.Records = append(t.Records, r)
		}
	}

	return t, nil
}

// LogSkipped writes a one-line summary of skipped records, if any.
func (t *Table) LogSkipped() {
	if len(t.Skipped) == 0 {
		return
	}

	sources := map[string]int{}
	for _, perr := range t.Skipped {
		sources[perr.Source]++
	}
	stderr.Printf("skipped %d malformed records across %d sources", len(t.Skipped), len(sources))
}
