package analysis

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"wordfreq/internal/logging"
)

// NoticeNoWords is the user-facing message for an analysis where no tokens
// survive the minimum-length filter.
const NoticeNoWords = "No words found matching the criteria."

// Outcome reports the result of an analysis run. Exactly one field is set:
// Result when the analysis produced something to show, Notice with the
// user-facing explanation when it did not.
type Outcome struct {
	Result *Result
	Notice string
}

// Empty reports whether the run produced no result.
func (o Outcome) Empty() bool { return o.Result == nil }

// Analyzer orchestrates one analysis run per call. It holds no per-run state;
// a fresh invocation with the same file and config yields an identical Result.
type Analyzer struct {
	log *slog.Logger

	// DisableSampleBootstrap skips materializing the built-in sample document
	// when the input file is missing, turning that case into an ErrIO failure.
	// Intended for tests and callers that require the file to pre-exist.
	DisableSampleBootstrap bool
}

// NewAnalyzer constructs an Analyzer logging through the provided logger.
// A nil logger silences diagnostics.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	return &Analyzer{log: logging.NewComponentLogger(logger, "analysis")}
}

// Analyze runs the full pipeline for cfg. IO problems and result-model
// invariant violations come back as errors tagged ErrIO and ErrValidation
// respectively; an input where nothing matches the criteria is an expected
// condition reported through the Outcome notice.
func (a *Analyzer) Analyze(cfg Config) (Outcome, error) {
	if !a.DisableSampleBootstrap {
		if err := a.ensureSampleFile(cfg.Filepath); err != nil {
			return Outcome{}, err
		}
	}

	content, err := os.ReadFile(cfg.Filepath)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: read %s: %v", ErrIO, cfg.Filepath, err)
	}
	if !utf8.Valid(content) {
		return Outcome{}, fmt.Errorf("%w: %s is not valid UTF-8 text", ErrIO, cfg.Filepath)
	}

	normalized := Normalize(string(content))
	counts, order, total := TokenizeAndCount(normalized, cfg.MinLength)
	if total == 0 {
		a.log.Info("no words matched the criteria",
			logging.String("filepath", cfg.Filepath),
			logging.Int("min_length", cfg.MinLength),
		)
		return Outcome{Notice: NoticeNoWords}, nil
	}

	entries := Rank(counts, order, cfg.TopN)
	frequencies := make([]WordFrequency, 0, len(entries))
	for _, entry := range entries {
		percentage := roundPercentage(100 * float64(entry.Count) / float64(total))
		frequency, err := NewWordFrequency(entry.Word, entry.Count, percentage)
		if err != nil {
			return Outcome{}, err
		}
		frequencies = append(frequencies, frequency)
	}

	result, err := NewResult(cfg.Filepath, total, len(counts), frequencies, cfg)
	if err != nil {
		return Outcome{}, err
	}

	a.log.Debug("analysis complete",
		logging.String("filepath", cfg.Filepath),
		logging.Int("total_words", result.TotalWords),
		logging.Int("unique_words", result.UniqueWords),
		logging.Int("ranked_words", len(result.WordFrequencies)),
	)
	return Outcome{Result: result}, nil
}
