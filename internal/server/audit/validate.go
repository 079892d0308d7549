// Package audit checks uploaded CSV headers against a template's required
// columns.
package audit

import (
	"strings"

	"github.com/dmitrijs2005/runaudit/internal/common"
)

// MissingColumnsPrefix starts the single error reported for a failed run.
const MissingColumnsPrefix = "Missing columns: "

// Validate reports whether every required column is present in header.
// Matching is exact and case-sensitive. Missing names keep the order of
// required and are reported as one aggregated error string.
func Validate(required, header []string) (string, []string) {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}

	var missing []string
	for _, col := range required {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}

	if len(missing) == 0 {
		return common.RunStatusPass, []string{}
	}
	return common.RunStatusFail, []string{MissingColumnsPrefix + strings.Join(missing, ", ")}
}
