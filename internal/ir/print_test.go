package ir_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"ylc/internal/diag"
	"ylc/internal/frontend"
	"ylc/internal/ir"
	"ylc/internal/sema"
)

// TestPrintForestGolden snapshots the resolved-tree dump of every
// clean fixture under testdata, the same fixture-driven snapshot shape
// CWBudde-go-dws's interp fixture tests use.
func TestPrintForestGolden(t *testing.T) {
	clean := []string{"mutable_ok.yl", "constant_fold.yl", "forward_reference.yl"}

	for _, name := range clean {
		name := name
		t.Run(name, func(t *testing.T) {
			path := filepath.Join("..", "..", "testdata", name)
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading %s: %s", path, err)
			}

			fns, err := frontend.Parse(path, string(src))
			if err != nil {
				t.Fatalf("parsing %s: %s", path, err)
			}

			var sink diag.Sink
			prog, ok := sema.ResolveProgram(fns, &sink)
			if !ok {
				t.Fatalf("resolving %s: %v", path, sink.Entries())
			}

			snaps.MatchSnapshot(t, name, ir.PrintForest(prog.Functions))
		})
	}
}
