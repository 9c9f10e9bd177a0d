// Package view holds the lookup structures compared by the benchmark.
// Every variant implements ports.View so the runner can measure a new
// representation without knowing its type.
package view

import "lookup-bench/internal/core/ports"

var (
	_ ports.View = (*Linear)(nil)
	_ ports.View = (*HashMap)(nil)
	_ ports.View = (*Dictionary)(nil)
)
