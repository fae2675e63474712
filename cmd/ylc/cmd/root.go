// Package cmd wires the ylc command tree with cobra, following the
// teacher/pack convention (CWBudde-go-dws's cmd/dwscript/cmd) of one
// file per subcommand, a shared rootCmd, and persistent flags bound to
// package-level vars via init().
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ylc/internal/config"
	"ylc/internal/diag"
)

var opts config.Options

var rootCmd = &cobra.Command{
	Use:     "ylc",
	Short:   "Compiler front-end and semantic analyzer for the YL language",
	Version: config.AppVersion,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&opts.Out, "out", "o", "", "output file (stdout if omitted)")
	rootCmd.PersistentFlags().BoolVar(&opts.Verbose, "vb", false, "print resolver/CFG statistics")
	rootCmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "emit diagnostics as line-delimited JSON")
}

// printDiagnostics writes every entry in sink to stderr, colorized by
// severity when stderr is a terminal (fatih/color auto-detects this),
// or as line-delimited JSON when opts.JSON is set.
func printDiagnostics(sink *diag.Sink) {
	if opts.JSON {
		lines, err := diag.MarshalJSONLines(sink.Entries())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Fprint(os.Stderr, lines)
		return
	}

	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)
	for _, e := range sink.Entries() {
		if e.IsWarning {
			warnColor.Fprintf(os.Stderr, "%s\n", e)
		} else {
			errColor.Fprintf(os.Stderr, "%s\n", e)
		}
	}
}

// openOutput opens opts.Out for writing, or returns nil for stdout.
func openOutput() (*os.File, error) {
	if opts.Out == "" {
		return nil, nil
	}
	return os.OpenFile(opts.Out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
}
