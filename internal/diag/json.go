package diag

import (
	"strings"

	"github.com/tidwall/sjson"
)

// MarshalJSONLines renders each diagnostic as one JSON object per line,
// built field-by-field with sjson rather than struct tags - this
// mirrors the ad hoc JSON assembly the CWBudde-go-dws snapshot tooling
// does with the same tidwall stack, and keeps diag free of an
// encoding/json struct mirror of Diagnostic.
func MarshalJSONLines(entries []Diagnostic) (string, error) {
	var sb strings.Builder
	for _, e := range entries {
		line := "{}"
		var err error
		if line, err = sjson.Set(line, "file", e.Loc.File); err != nil {
			return "", err
		}
		if line, err = sjson.Set(line, "line", e.Loc.Line); err != nil {
			return "", err
		}
		if line, err = sjson.Set(line, "col", e.Loc.Col); err != nil {
			return "", err
		}
		if line, err = sjson.Set(line, "kind", e.Kind.String()); err != nil {
			return "", err
		}
		if line, err = sjson.Set(line, "message", e.Msg); err != nil {
			return "", err
		}
		if line, err = sjson.Set(line, "warning", e.IsWarning); err != nil {
			return "", err
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
