package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag   string
		logLevelFlag string
		topFlag      int
		minLenFlag   int
		jsonFlag     bool
	)

	rootCmd := &cobra.Command{
		Use:   "wordfreq [flags] FILE",
		Short: "Report the most frequent words in a text file",
		Long: `Analyze word frequency in a text file and report the top-ranked words.

Text is lowercased and stripped of punctuation before counting; words shorter
than the minimum length are ignored. When FILE does not exist a built-in
sample document is written there first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, analysisOptions{
				filepath:   args[0],
				configPath: configFlag,
				logLevel:   logLevelFlag,
				topN:       topFlag,
				topNSet:    cmd.Flags().Changed("top"),
				minLength:  minLenFlag,
				minLenSet:  cmd.Flags().Changed("min-length"),
				asJSON:     jsonFlag,
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")
	rootCmd.Flags().IntVarP(&topFlag, "top", "n", 0, "Number of top words to show (default 10)")
	rootCmd.Flags().IntVarP(&minLenFlag, "min-length", "m", 0, "Minimum word length (default 3)")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the result as JSON instead of a table")

	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}
