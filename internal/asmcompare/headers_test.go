package asmcompare

import (
	"errors"
	"path/filepath"
	"testing"
)

func Test_ParseHeader(t *testing.T) {
	type args struct {
		format *HeaderFormat
		line   string
	}
	tests := []struct {
		name    string
		args    args
		want    Contig
		wantErr bool
	}{
		{
			"myloasm circular contig",
			args{
				MyloasmFormat,
				">ctg_u2193_len-612843_circular-yes_depth-41.2",
			},
			Contig{
				ID:          "ctg_u2193",
				Assembler:   "myloasm",
				Length:      612843,
				Circular:    true,
				Coverage:    41.2,
				HasCoverage: true,
			},
			false,
		},
		{
			"myloasm possible circularity counts as circular",
			args{
				MyloasmFormat,
				">ctg_u4_len-530000_circular-possible_depth-3.9",
			},
			Contig{
				ID:          "ctg_u4",
				Assembler:   "myloasm",
				Length:      530000,
				Circular:    true,
				Coverage:    3.9,
				HasCoverage: true,
			},
			false,
		},
		{
			"myloasm missing coverage token stays unknown",
			args{
				MyloasmFormat,
				">ctg_u5_len-1200_circular-no",
			},
			Contig{
				ID:        "ctg_u5",
				Assembler: "myloasm",
				Length:    1200,
			},
			false,
		},
		{
			"metaMDBG header",
			args{
				MetaMDBGFormat,
				">ctg1284 length=612843 coverage=41.2 circular=yes",
			},
			Contig{
				ID:          "ctg1284",
				Assembler:   "metaMDBG",
				Length:      612843,
				Circular:    true,
				Coverage:    41.2,
				HasCoverage: true,
			},
			false,
		},
		{
			"metaMDBG possible is not circular",
			args{
				MetaMDBGFormat,
				">ctg9 length=900 coverage=2.5 circular=possible",
			},
			Contig{
				ID:          "ctg9",
				Assembler:   "metaMDBG",
				Length:      900,
				Coverage:    2.5,
				HasCoverage: true,
			},
			false,
		},
		{
			"non-numeric length fails",
			args{
				MyloasmFormat,
				">ctg_u4_len-broken_circular-no_depth-1.0",
			},
			Contig{},
			true,
		},
		{
			"missing length token fails",
			args{
				MetaMDBGFormat,
				">ctg77 coverage=8.1 circular=no",
			},
			Contig{},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.args.format.ParseHeader(tt.args.line)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHeader() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseHeader() = %+v, want %+v", got, tt.want)
			}
			if got.Length <= 0 {
				t.Errorf("ParseHeader() non-positive length %d", got.Length)
			}
		})
	}
}

func Test_ReadHeaders(t *testing.T) {
	contigs, stats, err := ReadHeaders(
		filepath.Join("..", "..", "test", "myloasm_assembly_headers.txt"),
		MyloasmFormat,
		false,
	)
	if err != nil {
		t.Fatalf("ReadHeaders() error = %v", err)
	}

	// the broken _len-broken line is skipped, not fatal
	if len(contigs) != 4 {
		t.Errorf("ReadHeaders() parsed %d contigs, want 4", len(contigs))
	}
	if len(stats.Skipped) != 1 {
		t.Errorf("ReadHeaders() skipped %d records, want 1", len(stats.Skipped))
	}

	// order is header-parse order
	if contigs[0].ID != "ctg_u1" || contigs[3].ID != "ctg_u5" {
		t.Errorf("ReadHeaders() wrong order: first=%s last=%s", contigs[0].ID, contigs[3].ID)
	}

	// ctg_u5 has no depth token, coverage must stay unknown, not 0.0
	last := contigs[3]
	if last.HasCoverage {
		t.Errorf("ReadHeaders() coverage for %s = %v, want unknown", last.ID, last.Coverage)
	}
}

func Test_ReadHeaders_strict(t *testing.T) {
	_, _, err := ReadHeaders(
		filepath.Join("..", "..", "test", "myloasm_assembly_headers.txt"),
		MyloasmFormat,
		true,
	)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ReadHeaders() error = %v, want *ParseError", err)
	}
	if perr.Assembler != "myloasm" || perr.Line != 4 {
		t.Errorf("ReadHeaders() ParseError = %+v, want myloasm line 4", perr)
	}
}

func Test_ReadHeaders_fasta(t *testing.T) {
	contigs, stats, err := ReadHeaders(
		filepath.Join("..", "..", "test", "myloasm_assembly.fa"),
		MyloasmFormat,
		false,
	)
	if err != nil {
		t.Fatalf("ReadHeaders() error = %v", err)
	}
	if len(contigs) != 2 || len(stats.Skipped) != 0 {
		t.Fatalf("ReadHeaders() parsed %d contigs (%d skipped), want 2 (0 skipped)",
			len(contigs), len(stats.Skipped))
	}
	if contigs[0].ID != "ctg_u1" || contigs[0].Length != 612843 {
		t.Errorf("ReadHeaders() first contig = %+v", contigs[0])
	}
}

func Test_ReadHeaders_missing(t *testing.T) {
	_, _, err := ReadHeaders("no_such_file.txt", MyloasmFormat, false)

	var merr *MissingFileError
	if !errors.As(err, &merr) {
		t.Fatalf("ReadHeaders() error = %v, want *MissingFileError", err)
	}
}
