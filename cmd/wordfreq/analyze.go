package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordfreq/internal/analysis"
	"wordfreq/internal/config"
	"wordfreq/internal/logging"
)

type analysisOptions struct {
	filepath   string
	configPath string
	logLevel   string
	topN       int
	topNSet    bool
	minLength  int
	minLenSet  bool
	asJSON     bool
}

func runAnalysis(cmd *cobra.Command, opts analysisOptions) error {
	cfg, _, _, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("Configuration error: %w", err)
	}

	topN := cfg.Analysis.TopN
	if opts.topNSet {
		topN = opts.topN
	}
	minLength := cfg.Analysis.MinLength
	if opts.minLenSet {
		minLength = opts.minLength
	}

	analysisCfg, err := analysis.New(opts.filepath, topN, minLength)
	if err != nil {
		return fmt.Errorf("Configuration error: %w", err)
	}

	level := cfg.Logging.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger, err := logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("Configuration error: %w", err)
	}

	outcome, err := analysis.NewAnalyzer(logger).Analyze(analysisCfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outcome.Empty() {
		if opts.asJSON {
			return emitJSON(out, noticePayload{Notice: outcome.Notice})
		}
		fmt.Fprintln(out, outcome.Notice)
		return nil
	}

	if opts.asJSON {
		return emitJSON(out, outcome.Result)
	}
	fmt.Fprint(out, renderReport(outcome.Result))
	return nil
}

type noticePayload struct {
	Notice string `json:"notice"`
}
