package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"github.com/aria-lang/seqstat-go/internal/config"
	"github.com/aria-lang/seqstat-go/internal/logging"
	"github.com/aria-lang/seqstat-go/internal/quality"
	"github.com/aria-lang/seqstat-go/internal/report"
	"github.com/aria-lang/seqstat-go/pkg/seqstat"
)

// settings merges the config file with flags that were set explicitly.
func settings(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("min-length") {
		cfg.MinLength = opts.minLength
	}
	if flags.Changed("max-length") {
		cfg.MaxLength = opts.maxLength
	}
	if flags.Changed("output") || cfg.Output == "" {
		cfg.Output = opts.output
	}
	return cfg, nil
}

func run(cmd *cobra.Command, input string, opts options) error {
	cfg, err := settings(cmd, opts)
	if err != nil {
		// The configured level is unknown until the config loads.
		logging.New(cmd.ErrOrStderr(), opts.logLevel).Error("loading config", "path", opts.configPath, "err", err)
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err := analyze(logger, cmd.InOrStdin(), input, cfg, opts); err != nil {
		logger.Error("seqstat failed", "input", input, "err", err)
		return err
	}
	return nil
}

func analyze(logger *log.Logger, stdin io.Reader, input string, cfg *config.Config, opts options) error {
	kind, err := resolveFormat(input, opts.format)
	if err != nil {
		return err
	}

	filter := cfg.Filter()
	a, err := analyzeInput(stdin, input, kind, filter)
	if err != nil {
		return err
	}

	logger.Info("parsed input",
		"input", input,
		"format", kind,
		"records", len(a.Records),
		"filtered", a.Dropped.Filtered,
		"empty", a.Dropped.Empty)
	if a.Dropped.Malformed > 0 {
		logger.Warn("dropped malformed FASTQ records", "count", a.Dropped.Malformed)
	}
	if a.Empty() {
		logger.Warn("no records passed the length filter",
			"min_length", filter.MinLength, "max_length", filter.MaxLength)
	} else {
		logger.Debug("summary\n" + a.Summary.String())
		logQuality(logger, a.Summary.Quality)
	}

	ropts := report.Options{
		InputName:          input,
		Filter:             filter,
		ShowReadStatistics: opts.all || opts.showReadStatistics,
		ShowGCPerSequence:  opts.all || opts.gcPerSequence,
		ShowGCGlobal:       opts.all || opts.gcGlobal,
		ShowSequences:      opts.all || opts.showSequences,
		ShowN50:            opts.all || opts.showN50,
		ShowHistograms:     opts.all || opts.histograms,
	}

	outfh, err := xopen.Wopen(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if opts.json {
		err = report.WriteJSON(outfh, a.Records, a.Summary, ropts)
	} else {
		err = report.WriteText(outfh, a.Records, a.Summary, ropts)
	}
	if cerr := outfh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	logger.Debug("report written", "output", cfg.Output)
	return nil
}

func logQuality(logger *log.Logger, q *quality.Summary) {
	if q == nil {
		return
	}
	logger.Info("read quality",
		"mean", fmt.Sprintf("%.1f", q.MeanQuality),
		"q30_bases", fmt.Sprintf("%.2f%%", q.Q30Ratio*100),
		"acceptable_reads", fmt.Sprintf("%.2f%%", q.Distribution.AcceptableRatio()*100))
	if q.Mismatched > 0 {
		logger.Warn("quality length differs from sequence length", "reads", q.Mismatched)
	}
	if q.Undecodable > 0 {
		logger.Warn("quality strings outside Phred+33", "reads", q.Undecodable)
	}
}

func resolveFormat(input, name string) (seqstat.Kind, error) {
	if name != "" {
		return seqstat.ParseFormat(name)
	}
	if input == "-" {
		return 0, fmt.Errorf("--format is required when reading stdin")
	}
	return seqstat.DetectFormat(input)
}

func analyzeInput(stdin io.Reader, input string, kind seqstat.Kind, filter seqstat.Filter) (*seqstat.Analysis, error) {
	if input == "-" {
		return seqstat.Analyze(stdin, kind, filter)
	}
	return seqstat.AnalyzeFile(input, kind, filter)
}
