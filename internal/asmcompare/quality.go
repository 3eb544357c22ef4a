package asmcompare

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Category is a genome quality label derived from CheckM2 completeness
// and contamination.
type Category string

// Quality categories, following the MIMAG-style completeness and
// contamination cutoffs. Unknown is for contigs that were never binned
// and assessed.
const (
	CategoryHigh    Category = "High"
	CategoryMedium  Category = "Medium"
	CategoryLow     Category = "Low"
	CategoryUnknown Category = "Unknown"
)

// Quality is the CheckM2 assessment for one genome/bin.
type Quality struct {
	// Completeness is the estimated recovered fraction of the genome, 0-100
	Completeness float64

	// Contamination is the estimated foreign sequence fraction, 0-100
	Contamination float64
}

// QualityCategory derives the categorical label from an assessment.
// Checks run High first, then Medium; the first match wins. A contig
// with no assessment at all is Unknown, an assessment below both
// cutoffs is Low.
func QualityCategory(q Quality, assessed bool) Category {
	if !assessed {
		return CategoryUnknown
	}
	if q.Completeness > 90 && q.Contamination < 5 {
		return CategoryHigh
	}
	if q.Completeness > 50 && q.Contamination < 10 {
		return CategoryMedium
	}
	return CategoryLow
}

// ReadQualityReport parses a CheckM2 quality_report.tsv into a map from
// genome identifier to its assessment. The header row names the columns;
// only Name, Completeness and Contamination are read. Rows with missing
// or non-numeric cells are skipped and counted, not fatal.
func ReadQualityReport(path, assembler string) (map[string]Quality, ParseStats, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, ParseStats{}, &MissingFileError{Path: path, Err: err}
	}

	lines := strings.Split(string(dat), "\n")
	nameCol, compCol, contCol := -1, -1, -1

	quality := make(map[string]Quality)
	var stats ParseStats

	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, "\t")

		// first non-empty line names the columns
		if nameCol < 0 {
			for j, col := range cols {
				switch strings.TrimSpace(col) {
				case "Name":
					nameCol = j
				case "Completeness":
					compCol = j
				case "Contamination":
					contCol = j
				}
			}
			if nameCol < 0 || compCol < 0 || contCol < 0 {
				return nil, stats, fmt.Errorf(
					"%s: missing Name/Completeness/Contamination columns in header %q", path, line)
			}
			continue
		}

		skip := func(err error) {
			stats.Skipped = append(stats.Skipped, &ParseError{
				Assembler: assembler,
				Source:    path,
				Line:      i + 1,
				Text:      line,
				Err:       err,
			})
		}

		if len(cols) <= nameCol || len(cols) <= compCol || len(cols) <= contCol {
			skip(fmt.Errorf("expected at least %d columns, got %d", maxCol(nameCol, compCol, contCol)+1, len(cols)))
			continue
		}

		name := strings.TrimSpace(cols[nameCol])
		if name == "" {
			skip(fmt.Errorf("empty genome name"))
			continue
		}
		if _, dup := quality[name]; dup {
			skip(fmt.Errorf("duplicate genome name %q", name))
			continue
		}

		comp, err := strconv.ParseFloat(strings.TrimSpace(cols[compCol]), 64)
		if err != nil {
			skip(fmt.Errorf("bad completeness: %v", err))
			continue
		}
		cont, err := strconv.ParseFloat(strings.TrimSpace(cols[contCol]), 64)
		if err != nil {
			skip(fmt.Errorf("bad contamination: %v", err))
			continue
		}

		quality[name] = Quality{Completeness: comp, Contamination: cont}
		stats.Parsed++
	}

	if nameCol < 0 {
		return nil, stats, fmt.Errorf("%s: empty quality report", path)
	}
	if stats.Parsed == 0 {
		return nil, stats, fmt.Errorf("%s: no parsable quality records", path)
	}

	return quality, stats, nil
}

func maxCol(cols ...int) int {
	max := cols[0]
	for _, c := range cols[1:] {
		if c > max {
			max = c
		}
	}
	return max
}
