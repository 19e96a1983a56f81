package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"warnsum/internal/meta"
)

var (
	versionNameColor = color.New(color.FgGreen, color.Bold)
	versionDimColor  = color.New(color.Faint)
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show warnsum build information",
	Run: func(cmd *cobra.Command, args []string) {
		applyColorMode(flagColor, os.Stdout)
		printVersion(cmd.OutOrStdout(), meta.Detect())
	},
}

func printVersion(w io.Writer, inf meta.Info) {
	ver := inf.Version
	if ver == "" {
		ver = "(devel)"
	}
	fmt.Fprintf(w, "%s %s\n", versionNameColor.Sprint("warnsum"), ver)
	if rev := inf.ShortRevision(); rev != "" {
		dirty := ""
		if inf.Modified {
			dirty = " (modified)"
		}
		fmt.Fprintf(w, "  %s %s%s\n", versionDimColor.Sprint("commit:"), rev, dirty)
	}
	if inf.Time != "" {
		fmt.Fprintf(w, "  %s %s\n", versionDimColor.Sprint("built: "), inf.Time)
	}
	if inf.GoVer != "" {
		fmt.Fprintf(w, "  %s %s\n", versionDimColor.Sprint("go:    "), inf.GoVer)
	}
}
