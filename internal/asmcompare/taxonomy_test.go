package asmcompare

import (
	"errors"
	"path/filepath"
	"testing"
)

func Test_ParseLineage(t *testing.T) {
	tests := []struct {
		name           string
		classification string
		want           Lineage
	}{
		{
			"partially resolved lineage",
			"d__Bacteria;p__Proteobacteria;c__;o__;f__;g__;s__",
			Lineage{Domain: "Bacteria", Phylum: "Proteobacteria"},
		},
		{
			"fully resolved lineage",
			"d__Bacteria;p__Bacillota;c__Bacilli;o__Lactobacillales;f__Lactobacillaceae;g__Lactobacillus;s__Lactobacillus gasseri",
			Lineage{
				Domain:  "Bacteria",
				Phylum:  "Bacillota",
				Class:   "Bacilli",
				Order:   "Lactobacillales",
				Family:  "Lactobacillaceae",
				Genus:   "Lactobacillus",
				Species: "Lactobacillus gasseri",
			},
		},
		{
			"unclassified genome",
			"Unclassified Bacteria",
			Lineage{},
		},
		{
			"unclassified rank is unresolved",
			"d__Archaea;p__Unclassified Archaea;c__;o__;f__;g__;s__",
			Lineage{Domain: "Archaea"},
		},
		{
			"empty classification",
			"",
			Lineage{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLineage(tt.classification); got != tt.want {
				t.Errorf("ParseLineage() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLineage_Resolved(t *testing.T) {
	if (Lineage{}).Resolved() {
		t.Error("Resolved() = true for the zero lineage")
	}
	if !(Lineage{Domain: "Bacteria"}).Resolved() {
		t.Error("Resolved() = false with a resolved domain")
	}
}

func Test_ReadTaxonomy(t *testing.T) {
	lineages, stats, err := ReadTaxonomy(
		filepath.Join("..", "..", "test", "gtdbtk.myloasm.ar53.summary.tsv"),
		filepath.Join("..", "..", "test", "gtdbtk.myloasm.bac120.summary.tsv"),
		"myloasm",
	)
	if err != nil {
		t.Fatalf("ReadTaxonomy() error = %v", err)
	}
	if stats.Parsed != 2 || len(stats.Skipped) != 0 {
		t.Errorf("ReadTaxonomy() parsed %d skipped %d, want 2 and 0",
			stats.Parsed, len(stats.Skipped))
	}

	archaeon, ok := lineages["ctg_u3"]
	if !ok {
		t.Fatal("ReadTaxonomy() missing archaeal genome ctg_u3")
	}
	if archaeon.Domain != "Archaea" || archaeon.Phylum != "Halobacteriota" {
		t.Errorf("ReadTaxonomy() ctg_u3 = %+v", archaeon)
	}

	bacterium, ok := lineages["ctg_u1"]
	if !ok {
		t.Fatal("ReadTaxonomy() missing bacterial genome ctg_u1")
	}
	if bacterium.Phylum != "Proteobacteria" || bacterium.Class != "" {
		t.Errorf("ReadTaxonomy() ctg_u1 = %+v", bacterium)
	}
}

func Test_ReadTaxonomy_duplicate(t *testing.T) {
	arPath := filepath.Join("..", "..", "test", "gtdbtk.dup.ar53.summary.tsv")
	bacPath := filepath.Join("..", "..", "test", "gtdbtk.dup.bac120.summary.tsv")

	_, _, err := ReadTaxonomy(arPath, bacPath, "myloasm")

	var derr *DuplicateClassificationError
	if !errors.As(err, &derr) {
		t.Fatalf("ReadTaxonomy() error = %v, want *DuplicateClassificationError", err)
	}
	if derr.ID != "ctg_dup" {
		t.Errorf("ReadTaxonomy() duplicate ID = %s, want ctg_dup", derr.ID)
	}
	if derr.First != arPath || derr.Second != bacPath {
		t.Errorf("ReadTaxonomy() duplicate sources = %s, %s", derr.First, derr.Second)
	}
}

func Test_ReadTaxonomy_optional(t *testing.T) {
	// archaeal-only runs are normal; an empty path just yields no joins
	lineages, _, err := ReadTaxonomy(
		"",
		filepath.Join("..", "..", "test", "gtdbtk.myloasm.bac120.summary.tsv"),
		"myloasm",
	)
	if err != nil {
		t.Fatalf("ReadTaxonomy() error = %v", err)
	}
	if len(lineages) != 1 {
		t.Errorf("ReadTaxonomy() len = %d, want 1", len(lineages))
	}
}
