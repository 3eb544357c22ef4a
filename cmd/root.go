// Package cmd is for command line interactions with the asmcompare application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var settingsFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "asmcompare",
	Short: `Compare metagenomic assemblies from myloasm and metaMDBG.
Joins per-contig header metadata with CheckM2 quality reports and
GTDB-Tk classifications into one per-contig table`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(&settingsFile, "settings", "s", "", "path to a settings.yaml with input file paths")

	RootCmd.PersistentFlags().String("myloasm-headers", "", "myloasm assembly headers or FASTA")
	RootCmd.PersistentFlags().String("myloasm-quality", "", "myloasm CheckM2 quality_report.tsv")
	RootCmd.PersistentFlags().String("myloasm-ar-summary", "", "myloasm GTDB-Tk archaeal summary")
	RootCmd.PersistentFlags().String("myloasm-bac-summary", "", "myloasm GTDB-Tk bacterial summary")
	RootCmd.PersistentFlags().String("metamdbg-headers", "", "metaMDBG assembly headers or FASTA")
	RootCmd.PersistentFlags().String("metamdbg-quality", "", "metaMDBG CheckM2 quality_report.tsv")
	RootCmd.PersistentFlags().String("metamdbg-ar-summary", "", "metaMDBG GTDB-Tk archaeal summary")
	RootCmd.PersistentFlags().String("metamdbg-bac-summary", "", "metaMDBG GTDB-Tk bacterial summary")
	RootCmd.PersistentFlags().Bool("strict-headers", false, "abort on the first malformed header line")

	// bind the parameters to viper
	viper.BindPFlag("myloasm.headers", RootCmd.PersistentFlags().Lookup("myloasm-headers"))
	viper.BindPFlag("myloasm.quality-report", RootCmd.PersistentFlags().Lookup("myloasm-quality"))
	viper.BindPFlag("myloasm.archaeal-summary", RootCmd.PersistentFlags().Lookup("myloasm-ar-summary"))
	viper.BindPFlag("myloasm.bacterial-summary", RootCmd.PersistentFlags().Lookup("myloasm-bac-summary"))
	viper.BindPFlag("metamdbg.headers", RootCmd.PersistentFlags().Lookup("metamdbg-headers"))
	viper.BindPFlag("metamdbg.quality-report", RootCmd.PersistentFlags().Lookup("metamdbg-quality"))
	viper.BindPFlag("metamdbg.archaeal-summary", RootCmd.PersistentFlags().Lookup("metamdbg-ar-summary"))
	viper.BindPFlag("metamdbg.bacterial-summary", RootCmd.PersistentFlags().Lookup("metamdbg-bac-summary"))
	viper.BindPFlag("strict-headers", RootCmd.PersistentFlags().Lookup("strict-headers"))
}

// initConfig reads the settings file, if one is present.
func initConfig() {
	if settingsFile != "" {
		viper.SetConfigFile(settingsFile)
	} else {
		viper.SetConfigName("settings")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing {
			log.Fatalf("failed to read settings: %v", err)
		}
	}
}
