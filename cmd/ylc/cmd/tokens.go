package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ylc/internal/config"
	"ylc/internal/frontend"
	"ylc/internal/ioutil"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts.Src = args[0]
		src, err := config.ReadSource(opts)
		if err != nil {
			return fmt.Errorf("reading %s: %w", opts.Src, err)
		}

		items, err := frontend.Tokenize(opts.Src, src)
		if err != nil {
			return fmt.Errorf("tokenizing %s: %w", opts.Src, err)
		}

		out, err := openOutput()
		if err != nil {
			return fmt.Errorf("opening output: %w", err)
		}
		l := ioutil.Listen(out)
		w := l.NewWriter()
		for _, it := range items {
			w.Write("%s\n", it)
		}
		w.Flush()
		l.Close()
		if out != nil {
			out.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
