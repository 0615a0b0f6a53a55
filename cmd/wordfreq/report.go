package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"wordfreq/internal/analysis"
)

// renderReport formats a completed analysis for terminal output: summary
// header, frequency table, and an echo of the effective options.
func renderReport(result *analysis.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Word Frequency Analysis: %s\n", result.Filepath)
	fmt.Fprintf(&b, "Total words analyzed: %d\n", result.TotalWords)
	fmt.Fprintf(&b, "Unique words found: %d\n", result.UniqueWords)
	fmt.Fprintf(&b, "Showing top %d words\n\n", len(result.WordFrequencies))

	b.WriteString(renderFrequencyTable(result.WordFrequencies))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "\nOptions: top %d, minimum word length %d\n",
		result.Config.TopN, result.Config.MinLength)
	return b.String()
}

func renderFrequencyTable(frequencies []analysis.WordFrequency) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Word", "Count", "Percentage"})
	for _, frequency := range frequencies {
		tw.AppendRow(table.Row{
			frequency.Word,
			frequency.Count,
			fmt.Sprintf("%.1f%%", frequency.Percentage),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
