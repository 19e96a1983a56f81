package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"warnsum/internal/config"
	"warnsum/internal/extract"
	"warnsum/internal/report"
	"warnsum/internal/tally"
	"warnsum/internal/textutil"
)

var (
	flagTopN       int
	flagKeywordLen int
	flagIgnore     []string
)

func init() {
	registerSummaryFlags(rootCmd)
}

// registerSummaryFlags attaches the shared summary/diff tuning flags to a
// command. Defaults here are placeholders; effective values come from
// resolveOptions so that .warnsum.toml can supply them.
func registerSummaryFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&flagTopN, "top", "n", config.DefaultTopN, "top N items to display in each category (0 = all)")
	cmd.Flags().IntVarP(&flagKeywordLen, "keyword-len", "k", config.DefaultKeywordMinLen, "minimum length of interesting keywords")
	cmd.Flags().StringSliceVarP(&flagIgnore, "ignore", "i", nil, "keywords to ignore (repeatable or comma-separated)")
}

// flagValues captures which tuning flags were set explicitly, so that flag >
// config file > built-in default precedence can be resolved.
type flagValues struct {
	top        int
	topSet     bool
	keywordLen int
	keywordSet bool
	ignore     []string
}

func summaryFlagValues(cmd *cobra.Command) flagValues {
	return flagValues{
		top:        flagTopN,
		topSet:     cmd.Flags().Changed("top"),
		keywordLen: flagKeywordLen,
		keywordSet: cmd.Flags().Changed("keyword-len"),
		ignore:     flagIgnore,
	}
}

// resolveOptions merges config-file defaults with explicit flag values.
// Ignore lists are additive: config entries and flag entries both apply.
func resolveOptions(cfg config.Config, fl flagValues, workDir string) (topN int, opts extract.Options) {
	topN = cfg.Report.Top
	if fl.topSet {
		topN = fl.top
	}
	minLen := cfg.Keywords.MinLength
	if fl.keywordSet {
		minLen = fl.keywordLen
	}
	ignore := append([]string(nil), cfg.Keywords.Ignore...)
	ignore = append(ignore, fl.ignore...)

	opts = extract.Options{
		KeywordMinLen: minLen,
		Ignored:       extract.IgnoreSet(ignore),
		WorkDir:       workDir,
	}
	return topN, opts
}

func runSummary(cmd *cobra.Command, args []string) error {
	applyColorMode(flagColor, os.Stdout)

	workDir, _ := os.Getwd()
	cfg, err := config.Load(workDir)
	if err != nil {
		return err
	}
	topN, opts := resolveOptions(cfg, summaryFlagValues(cmd), workDir)

	content, err := readLog(args[0])
	if err != nil {
		return err
	}

	collection := tally.Collect(content, opts)
	printSections(cmd.OutOrStdout(), report.Sections(collection, topN))
	return nil
}

// readLog loads the whole log into memory; extraction is not streaming.
// Line endings are normalized because the warning patterns are LF anchored.
func readLog(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file `%s`: %w", path, err)
	}
	return string(textutil.NormalizeUTF8LF(b)), nil
}

var labelColor = color.New(color.Bold)

// printSections writes the labeled report blocks separated by blank lines.
// Only the labels are tinted, so piped output stays byte-stable.
func printSections(w io.Writer, sections []report.Section) {
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, labelColor.Sprint(s.Label))
		if s.Body != "" {
			fmt.Fprintln(w, s.Body)
		}
	}
}
