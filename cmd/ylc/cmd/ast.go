package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ylc/internal/ast"
	"ylc/internal/config"
	"ylc/internal/frontend"
	"ylc/internal/ioutil"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the parsed (pre-Sema) syntax tree for a source file",
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

		out, err := openOutput()
		if err != nil {
			return fmt.Errorf("opening output: %w", err)
		}
		l := ioutil.Listen(out)
		w := l.NewWriter()
		w.WriteString(ast.PrintForest(fns))
		w.Flush()
		l.Close()
		if out != nil {
			out.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
