// Command seqstat reports length and GC statistics for FASTA and FASTQ files.
//
// Usage:
//
//	seqstat [flags] <input>
//
// The format is taken from --format or, when absent, from the input file
// extension. Report sections are enabled individually (--gc-global,
// --gc-per-sequence, --show-sequences, --show-read-statistics, --show-n50,
// --histograms) or all at once with --all.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aria-lang/seqstat-go/pkg/seqstat"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	logLevel   string
	format     string
	minLength  int
	maxLength  int
	output     string
	json       bool

	all                bool
	gcGlobal           bool
	gcPerSequence      bool
	showSequences      bool
	showReadStatistics bool
	showN50            bool
	histograms         bool
}

func rootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "seqstat [flags] <input>",
		Short: "Length, GC and N50 statistics for FASTA/FASTQ files",
		Long: `Parse a FASTA or FASTQ file, optionally filter records by length, and
write a report with per-record and global GC content, read length statistics
(min, max, mean, median) and N50. Use '-' as input to read stdin (requires
--format) and '-o -' to write the report to stdout.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVarP(&opts.format, "format", "f", "", "Input format (fasta, fa, fastq, fq); detected from the extension if empty")
	flags.IntVarP(&opts.minLength, "min-length", "m", 0, "Minimum sequence length to keep")
	flags.IntVarP(&opts.maxLength, "max-length", "M", 0, "Maximum sequence length to keep (0 = unbounded)")
	flags.StringVarP(&opts.output, "output", "o", "output.txt", "Report destination ('-' for stdout)")
	flags.BoolVar(&opts.json, "json", false, "Write the report as JSON")
	flags.BoolVarP(&opts.all, "all", "a", false, "Enable every report section")
	flags.BoolVar(&opts.gcGlobal, "gc-global", false, "Show global GC statistics")
	flags.BoolVar(&opts.gcPerSequence, "gc-per-sequence", false, "Show GC percentage per sequence")
	flags.BoolVar(&opts.showSequences, "show-sequences", false, "Show all sequences")
	flags.BoolVar(&opts.showReadStatistics, "show-read-statistics", false, "Show read length statistics")
	flags.BoolVar(&opts.showN50, "show-n50", false, "Show the N50 value")
	flags.BoolVar(&opts.histograms, "histograms", false, "Show GC content and length histograms")

	cmd.AddCommand(versionCommand())

	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), seqstat.Info())
		},
	}
}
