package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ylc/internal/config"
	"ylc/internal/diag"
	"ylc/internal/frontend"
	"ylc/internal/ioutil"
	"ylc/internal/ir"
	"ylc/internal/sema"
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Resolve a source file and print its resolved tree",
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
		if !ok {
			printDiagnostics(&sink)
			os.Exit(1)
		}

		out, err := openOutput()
		if err != nil {
			return fmt.Errorf("opening output: %w", err)
		}
		l := ioutil.Listen(out)
		w := l.NewWriter()
		w.WriteString(ir.PrintForest(prog.Functions))
		w.Flush()
		l.Close()
		if out != nil {
			out.Close()
		}

		if opts.Verbose {
			fmt.Fprintf(os.Stderr, "resolved %d function(s), %d decl(s) in arena\n",
				len(prog.Functions), prog.Arena.Len())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
