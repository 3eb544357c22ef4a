package asmcompare

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/PullupGuy/bioinfo-project/config"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Contig is one assembled sequence's header metadata. It is the backbone
// row of the compiled table, before quality and taxonomy are joined on.
type Contig struct {
	// ID is unique within one assembler's output, not globally
	ID string

	// Assembler that produced the contig
	Assembler string

	// Length of the contig in base pairs
	Length int

	// Circular is whether the assembler marked the contig as circular
	Circular bool

	// Coverage is the read depth reported in the header. Only meaningful
	// when HasCoverage is true: a missing coverage token is unknown, not zero
	Coverage    float64
	HasCoverage bool
}

// HeaderFormat describes how one assembler encodes contig metadata in its
// FASTA headers. Each pattern's first capture group is the field value.
type HeaderFormat struct {
	// Assembler this format belongs to
	Assembler string

	// id extracts the contig identifier
	id *regexp.Regexp

	// length extracts the mandatory contig length
	length *regexp.Regexp

	// coverage extracts the read depth, if present
	coverage *regexp.Regexp

	// circular extracts the circularity marker, if present
	circular *regexp.Regexp

	// circularValues are the marker values that count as circular.
	// Anything else, including a missing marker, is non-circular
	circularValues map[string]bool
}

// MyloasmFormat matches headers like
// >ctg_u2193_len-612843_circular-yes_depth-41.2
// where "possible" also counts as circular.
var MyloasmFormat = &HeaderFormat{
	Assembler:      config.Myloasm,
	id:             regexp.MustCompile(`^(.+?)_len-`),
	length:         regexp.MustCompile(`_len-(\d+)`),
	coverage:       regexp.MustCompile(`_depth-([\d.]+)`),
	circular:       regexp.MustCompile(`_circular-(\w+)`),
	circularValues: map[string]bool{"yes": true, "possible": true},
}

// MetaMDBGFormat matches headers like
// >ctg1284 length=612843 coverage=41.2 circular=yes
// with "=", "_" or ":" accepted between key and value.
var MetaMDBGFormat = &HeaderFormat{
	Assembler:      config.MetaMDBG,
	id:             regexp.MustCompile(`^(\S+)`),
	length:         regexp.MustCompile(`length[=_:](\d+)`),
	coverage:       regexp.MustCompile(`coverage[=_:]([\d.]+)`),
	circular:       regexp.MustCompile(`circular[=_:](\w+)`),
	circularValues: map[string]bool{"yes": true},
}

// FormatFor returns the header format for the named assembler.
func FormatFor(assembler string) (*HeaderFormat, error) {
	switch assembler {
	case config.Myloasm:
		return MyloasmFormat, nil
	case config.MetaMDBG:
		return MetaMDBGFormat, nil
	}
	return nil, fmt.Errorf("no header format for assembler %q", assembler)
}

// ParseStats is the outcome of parsing one source: how many records were
// kept and which were skipped. Skipped records are reported once as a
// summary, not per-row.
type ParseStats struct {
	Parsed  int
	Skipped []*ParseError
}

// ParseHeader extracts one Contig from a single header line. The leading
// ">" is optional. Length is mandatory and must be a positive integer;
// coverage and circularity are optional.
func (f *HeaderFormat) ParseHeader(line string) (Contig, error) {
	header := strings.TrimPrefix(strings.TrimSpace(line), ">")

	c := Contig{Assembler: f.Assembler}

	idMatch := f.id.FindStringSubmatch(header)
	if idMatch == nil {
		return c, fmt.Errorf("no contig id")
	}
	c.ID = idMatch[1]

	lenMatch := f.length.FindStringSubmatch(header)
	if lenMatch == nil {
		return c, fmt.Errorf("no length token")
	}
	length, err := strconv.Atoi(lenMatch[1])
	if err != nil {
		return c, fmt.Errorf("bad length %q: %v", lenMatch[1], err)
	}
	if length <= 0 {
		return c, fmt.Errorf("non-positive length %d", length)
	}
	c.Length = length

	if covMatch := f.coverage.FindStringSubmatch(header); covMatch != nil {
		cov, err := strconv.ParseFloat(covMatch[1], 64)
		if err != nil {
			return c, fmt.Errorf("bad coverage %q: %v", covMatch[1], err)
		}
		if cov < 0 {
			return c, fmt.Errorf("negative coverage %v", cov)
		}
		c.Coverage = cov
		c.HasCoverage = true
	}

	if circMatch := f.circular.FindStringSubmatch(header); circMatch != nil {
		c.Circular = f.circularValues[strings.ToLower(circMatch[1])]
	}

	return c, nil
}

// ParseHeaders extracts Contigs from raw header lines. Lines without a ">"
// prefix are ignored so a full FASTA body can be passed as-is. With strict
// set, the first malformed header aborts; otherwise malformed headers are
// skipped and accumulated in the returned stats.
func (f *HeaderFormat) ParseHeaders(lines []string, source string, strict bool) ([]Contig, ParseStats, error) {
	var contigs []Contig
	var stats ParseStats

	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), ">") {
			continue
		}

		c, err := f.ParseHeader(line)
		if err != nil {
			perr := &ParseError{
				Assembler: f.Assembler,
				Source:    source,
				Line:      i + 1,
				Text:      strings.TrimSpace(line),
				Err:       err,
			}
			if strict {
				return nil, stats, perr
			}
			stats.Skipped = append(stats.Skipped, perr)
			continue
		}

		contigs = append(contigs, c)
		stats.Parsed++
	}

	return contigs, stats, nil
}

// ReadHeaders parses all contig headers from the file at path. FASTA
// files (.fa, .fasta, .fna) are read with biogo so headers and sequences
// stay paired; anything else is treated as a header dump with one ">"
// line per contig.
func ReadHeaders(path string, f *HeaderFormat, strict bool) ([]Contig, ParseStats, error) {
	if isFASTA(path) {
		lines, err := readFASTAHeaders(path)
		if err != nil {
			return nil, ParseStats{}, err
		}
		return f.ParseHeaders(lines, path, strict)
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, ParseStats{}, &MissingFileError{Path: path, Err: err}
	}

	return f.ParseHeaders(strings.Split(string(dat), "\n"), path, strict)
}

// isFASTA reports whether the path has a FASTA extension.
func isFASTA(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".fa") ||
		strings.HasSuffix(lower, ".fasta") ||
		strings.HasSuffix(lower, ".fna")
}

// readFASTAHeaders reconstructs the ">" header lines of a FASTA file.
func readFASTAHeaders(path string) ([]string, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, &MissingFileError{Path: path, Err: err}
	}
	defer in.Close()

	t := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(fasta.NewReader(in, t))

	var lines []string
	for sc.Next() {
		s := sc.Seq()
		header := ">" + s.Name()
		if desc := s.Description(); desc != "" {
			header += " " + desc
		}
		lines = append(lines, header)
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed reading %s: %v", path, err)
	}

	return lines, nil
}
