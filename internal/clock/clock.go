package clock

import (
	"time"

	"lookup-bench/internal/core/ports"
)

var _ ports.Clock = System{}

// System reads the monotonic wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (System) Since(t time.Time) time.Duration { return time.Since(t) }
