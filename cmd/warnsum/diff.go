package main

import (
	"os"

	"github.com/spf13/cobra"

	"warnsum/internal/config"
	"warnsum/internal/report"
	"warnsum/internal/tally"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old-log> <new-log>",
	Short: "Show the signed warning-count delta between two build logs",
	Long: `diff extracts warnings from both logs and prints the per-key count
delta for each summary dimension. Positive values mean the first log has
more occurrences of that key; keys with equal counts are omitted.

Both logs are compared in memory; nothing is persisted between runs.`,
	Args:         cobra.ExactArgs(2),
	RunE:         runDiff,
	SilenceUsage: true,
}

func init() {
	registerSummaryFlags(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	applyColorMode(flagColor, os.Stdout)

	workDir, _ := os.Getwd()
	cfg, err := config.Load(workDir)
	if err != nil {
		return err
	}
	topN, opts := resolveOptions(cfg, summaryFlagValues(cmd), workDir)

	oldContent, err := readLog(args[0])
	if err != nil {
		return err
	}
	newContent, err := readLog(args[1])
	if err != nil {
		return err
	}

	delta := tally.Collect(oldContent, opts).Diff(tally.Collect(newContent, opts))
	printSections(cmd.OutOrStdout(), report.DeltaSections(delta, topN))
	return nil
}
