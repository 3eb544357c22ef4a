// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Myloasm and MetaMDBG are the two assemblers whose output is compared.
const (
	Myloasm  = "myloasm"
	MetaMDBG = "metaMDBG"
)

// AssemblerFiles are the input files produced for one assembler's output.
type AssemblerFiles struct {
	// path to the assembly headers, either a header dump (one ">" line
	// per contig) or a full assembly FASTA
	Headers string `mapstructure:"headers"`

	// path to the CheckM2 quality_report.tsv
	QualityReport string `mapstructure:"quality-report"`

	// path to the GTDB-Tk archaeal summary (gtdbtk.ar53.summary.tsv)
	ArchaealSummary string `mapstructure:"archaeal-summary"`

	// path to the GTDB-Tk bacterial summary (gtdbtk.bac120.summary.tsv)
	BacterialSummary string `mapstructure:"bacterial-summary"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line
type Config struct {
	// input files for the myloasm assembly
	Myloasm AssemblerFiles `mapstructure:"myloasm"`

	// input files for the metaMDBG assembly
	MetaMDBG AssemblerFiles `mapstructure:"metamdbg"`

	// order in which assemblers are compiled, plotted and reported
	AssemblerOrder []string `mapstructure:"assembler-order"`

	// plot color per assembler name
	Palette map[string]string `mapstructure:"palette"`

	// abort on the first malformed header line rather than skip-and-count
	StrictHeaders bool `mapstructure:"strict-headers"`
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments
func New() *Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}

// Files returns the input files for the named assembler.
func (c *Config) Files(assembler string) (AssemblerFiles, error) {
	switch assembler {
	case Myloasm:
		return c.Myloasm, nil
	case MetaMDBG:
		return c.MetaMDBG, nil
	}
	return AssemblerFiles{}, fmt.Errorf("unrecognized assembler %q", assembler)
}

// setDefaults registers fallbacks for settings not in the settings
// file or on the command line
func setDefaults() {
	viper.SetDefault("assembler-order", []string{Myloasm, MetaMDBG})
	viper.SetDefault("palette", map[string]string{
		Myloasm:  "red",
		MetaMDBG: "blue",
	})
	viper.SetDefault("strict-headers", false)
}
