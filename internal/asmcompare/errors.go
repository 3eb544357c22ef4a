package asmcompare

import "fmt"

// ParseError is a single malformed header line or report row. Malformed
// records are skipped and counted; the run only aborts if a required
// source yields zero valid records.
type ParseError struct {
	// Assembler whose output contained the record
	Assembler string

	// Source file or table the record came from
	Source string

	// Line number within the source (1-based)
	Line int

	// Text of the offending record
	Text string

	// Err is the underlying cause
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s line %d: %v: %q", e.Assembler, e.Source, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFileError is a required input file whose path does not resolve.
// Always fatal to the run.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing input file %s: %v", e.Path, e.Err)
}

func (e *MissingFileError) Unwrap() error { return e.Err }

// DuplicateClassificationError is a genome identifier classified in both
// the archaeal and bacterial taxonomy tables for one assembler. The
// ground truth is ambiguous, so compilation halts.
type DuplicateClassificationError struct {
	// ID of the genome classified twice
	ID string

	// First and Second are the two summary tables naming the ID
	First  string
	Second string
}

func (e *DuplicateClassificationError) Error() string {
	return fmt.Sprintf("genome %s classified in both %s and %s", e.ID, e.First, e.Second)
}
