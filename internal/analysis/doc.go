// Package analysis implements the word-frequency pipeline: text
// normalization, whitespace tokenization with a minimum-length filter,
// occurrence counting, ranking, and the validated result model.
//
// Data flows strictly forward through the stages; the Analyzer orchestrates
// one full pass per input file. An analysis that produces nothing to report
// (no tokens survive the filter) is an expected outcome carried by Outcome,
// not an error.
package analysis
