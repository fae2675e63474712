package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ylc/internal/config"
	"ylc/internal/diag"
	"ylc/internal/frontend"
	"ylc/internal/sema"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Resolve and flow-check a source file, reporting diagnostics only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts.Src = args[0]
		src, err := config.ReadSource(opts)
		if err != nil {
			return fmt.Errorf("reading %s: %w", opts.Src, err)
		}

		fns, err := frontend.Parse(opts.Src, src)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", opts.Src, err)
		}

		var sink diag.Sink
		prog, ok := sema.ResolveProgram(fns, &sink)
		printDiagnostics(&sink)
		if opts.Verbose && ok {
			fmt.Fprintf(os.Stderr, "resolved %d function(s)\n", len(prog.Functions))
		}
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
