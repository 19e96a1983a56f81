// Package main provides the warnsum CLI: it summarises compiler warnings
// found in build-log text into four sortable count tables (warning names,
// files, directories, interesting keywords).
//
// Modes:
//   - SUMMARY : warnsum <logfile> [-n N] [-k LEN] [-i KW]...
//   - DIFF    : warnsum diff <old.log> <new.log> [flags]
//   - VERSION : warnsum version
//
// Key design goals:
//   - Deterministic output (fixed sort order, byte-stable report blocks)
//   - Thin shell: file reading and flags here, all logic in internal/
//   - Optional per-directory defaults via .warnsum.toml
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "warnsum <logfile>",
	Short: "Summarise compiler warnings from a build log",
	Long: `warnsum scans raw build-log text for compiler warnings (gcc/clang and
gfortran diagnostic formats), tallies them by warning name, file, directory
and excerpt keyword, and prints four sorted summary tables.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runSummary,
	SilenceUsage:  true,
	SilenceErrors: false,
}

var flagColor string

func main() {
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "colorize section labels (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyColorMode configures the process-wide color state. Report bytes are
// never affected; only section labels and version output are tinted.
func applyColorMode(mode string, out *os.File) {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(out)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
