// Package config holds the flag values every cmd/ylc subcommand fills
// in, the same role the teacher's util.Options plays for its flat
// flag switch (src/util/args.go). Unlike the teacher, parsing itself
// is cobra's job (cmd/ylc); this package only defines the values and
// the handful of option-dependent helpers that don't belong in a
// cobra command function.
package config

import (
	"errors"
	"os"
)

// Options are the flag values shared across the build/tokens/ast/check
// subcommands.
type Options struct {
	Src     string // path to source file; required
	Out     string // path to output file; "" writes stdout
	Verbose bool   // print resolver/CFG statistics
	JSON    bool   // emit diagnostics as line-delimited JSON
}

const AppVersion = "ylc 1.0"

// ReadSource reads source code from opt.Src. Unlike the teacher's
// util.ReadSource it has no stdin fallback: an empty opt.Src is an
// error (cobra commands here are always invoked with an explicit
// positional file argument; see DESIGN.md).
func ReadSource(opt Options) (string, error) {
	if opt.Src == "" {
		return "", errors.New("no source file given")
	}
	b, err := os.ReadFile(opt.Src)
	return string(b), err
}
