package asmcompare

import (
	"fmt"
	"os"
	"strings"
)

// Lineage is a GTDB-style taxonomic classification from domain down to
// species. An empty rank is unresolved.
type Lineage struct {
	Domain  string
	Phylum  string
	Class   string
	Order   string
	Family  string
	Genus   string
	Species string
}

// Ranks lists the lineage ranks in order, matching the compiled table's
// taxonomy columns.
var Ranks = []string{"domain", "phylum", "class", "order", "family", "genus", "species"}

// Resolved reports whether any rank of the lineage is populated.
func (l Lineage) Resolved() bool {
	return l != Lineage{}
}

// ParseLineage splits a semicolon-delimited classification string like
// "d__Bacteria;p__Bacillota;c__;..." into rank fields, stripping the
// rank prefixes. Segments with an empty name are left unresolved.
// "Unclassified" classifications yield a fully unresolved lineage.
func ParseLineage(classification string) Lineage {
	var l Lineage

	for _, segment := range strings.Split(classification, ";") {
		segment = strings.TrimSpace(segment)
		if len(segment) < 3 || segment[1:3] != "__" {
			continue
		}

		name := segment[3:]
		if name == "" || strings.Contains(name, "Unclassified") {
			continue
		}

		switch segment[0] {
		case 'd':
			l.Domain = name
		case 'p':
			l.Phylum = name
		case 'c':
			l.Class = name
		case 'o':
			l.Order = name
		case 'f':
			l.Family = name
		case 'g':
			l.Genus = name
		case 's':
			l.Species = name
		}
	}

	return l
}

// ReadTaxonomySummary parses one GTDB-Tk summary table into a map from
// genome identifier to its lineage. The header row must name a
// user_genome and a classification column. Malformed rows are skipped
// and counted.
func ReadTaxonomySummary(path, assembler string) (map[string]Lineage, ParseStats, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, ParseStats{}, &MissingFileError{Path: path, Err: err}
	}

	lines := strings.Split(string(dat), "\n")
	genomeCol, classCol := -1, -1

	lineages := make(map[string]Lineage)
	var stats ParseStats

	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, "\t")

		if genomeCol < 0 {
			for j, col := range cols {
				switch strings.TrimSpace(col) {
				case "user_genome":
					genomeCol = j
				case "classification":
					classCol = j
				}
			}
			if genomeCol < 0 || classCol < 0 {
				return nil, stats, fmt.Errorf(
					"%s: missing user_genome/classification columns in header %q", path, line)
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

		if len(cols) <= genomeCol || len(cols) <= classCol {
			skip(fmt.Errorf("expected at least %d columns, got %d", maxCol(genomeCol, classCol)+1, len(cols)))
			continue
		}

		genome := strings.TrimSpace(cols[genomeCol])
		if genome == "" {
			skip(fmt.Errorf("empty genome name"))
			continue
		}
		if _, dup := lineages[genome]; dup {
			skip(fmt.Errorf("duplicate genome name %q", genome))
			continue
		}

		lineages[genome] = ParseLineage(cols[classCol])
		stats.Parsed++
	}

	if genomeCol < 0 {
		return nil, stats, fmt.Errorf("%s: empty taxonomy summary", path)
	}

	return lineages, stats, nil
}

// ReadTaxonomy reads the archaeal and bacterial summaries for one
// assembler and merges them into a single identifier to lineage map.
// A genome classified in both tables is ambiguous and fatal.
func ReadTaxonomy(archaealPath, bacterialPath, assembler string) (map[string]Lineage, ParseStats, error) {
	var stats ParseStats
	merged := make(map[string]Lineage)

	read := func(path string) (map[string]Lineage, error) {
		if path == "" {
			return nil, nil
		}
		lineages, s, err := ReadTaxonomySummary(path, assembler)
		if err != nil {
			return nil, err
		}
		stats.Parsed += s.Parsed
		stats.Skipped = append(stats.Skipped, s.Skipped...)
		return lineages, nil
	}

	archaeal, err := read(archaealPath)
	if err != nil {
		return nil, stats, err
	}
	bacterial, err := read(bacterialPath)
	if err != nil {
		return nil, stats, err
	}

	for genome, lineage := range archaeal {
		merged[genome] = lineage
	}
	for genome, lineage := range bacterial {
		if _, dup := merged[genome]; dup {
			return nil, stats, &DuplicateClassificationError{
				ID:     genome,
				First:  archaealPath,
				Second: bacterialPath,
			}
		}
		merged[genome] = lineage
	}

	return merged, stats, nil
}
