package report

import (
	"fmt"
	"strings"

	"lookup-bench/internal/core/domain"
)

// Render formats one data size block: a header line, one line per
// measurement in measurement order, then a blank separator line.
func Render(size, iterations int, result domain.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Data size: %d, Iterations: %d\n", size, iterations)
	for _, m := range result.Measurements {
		fmt.Fprintf(&b, "%s: %.4fms\n", m.Kind, m.Milliseconds())
	}
	b.WriteString("\n")
	return b.String()
}
