package service

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"lookup-bench/internal/clock"
	"lookup-bench/internal/core/domain"
	"lookup-bench/internal/core/ports"
	"lookup-bench/internal/dataset"
	"lookup-bench/internal/observability"
	"lookup-bench/internal/report"
	"lookup-bench/internal/store"

	"github.com/rs/zerolog"
)

// State is a step of the per-size benchmark lifecycle.
type State string

const (
	StateConfigured         State = "Configured"
	StateDatasetBuilt       State = "DatasetBuilt"
	StateStructuresPrepared State = "StructuresPrepared"
	StateKeysSampled        State = "KeysSampled"
	StateMeasured           State = "Measured"
	StateReported           State = "Reported"
)

// Runner measures lookup passes over every structure for each data size.
// It is strictly sequential and not safe for concurrent use.
type Runner struct {
	sizes      []int
	iterations int

	rnd       ports.Rand
	keyOpts   []dataset.KeyOption
	factories []store.Factory
	clock     ports.Clock
	log       zerolog.Logger

	builder *dataset.Builder
	sampler *dataset.Sampler
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces the system clock.
func WithClock(c ports.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithFactories replaces the structures measured for each size.
func WithFactories(f ...store.Factory) Option {
	return func(r *Runner) { r.factories = f }
}

// WithKeyOptions tunes the key generator.
func WithKeyOptions(opts ...dataset.KeyOption) Option {
	return func(r *Runner) { r.keyOpts = opts }
}

// New creates a runner for the given sizes and iteration count. Key
// generation and key sampling both draw from rnd, so a seeded source makes
// the whole run reproducible.
func New(sizes []int, iterations int, rnd ports.Rand, opts ...Option) *Runner {
	r := &Runner{
		sizes:      append([]int(nil), sizes...),
		iterations: iterations,
		rnd:        rnd,
		factories:  store.DefaultFactories,
		clock:      clock.System{},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.builder = dataset.NewBuilder(dataset.NewKeyGenerator(rnd, r.keyOpts...))
	r.sampler = dataset.NewSampler(rnd)
	return r
}

// Run benchmarks every configured size in order and writes one report block
// per size to w as soon as it completes. The first error aborts the run;
// nothing is written for the failing size.
func (r *Runner) Run(w io.Writer) error {
	if r.iterations < 1 {
		return fmt.Errorf("iterations %d: %w", r.iterations, domain.ErrInvalidConfiguration)
	}
	for _, size := range r.sizes {
		result, err := r.RunSize(size)
		if err != nil {
			return fmt.Errorf("data size %d: %w", size, err)
		}
		if _, err := io.WriteString(w, report.Render(size, r.iterations, result)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		observability.SizesCompletedTotal.Inc()
		r.log.Debug().Int("size", size).Str("state", string(StateReported)).Msg("transition")
		r.log.Info().Int("size", size).Int("iterations", r.iterations).Msg("data size reported")
	}
	return nil
}

// RunSize builds a fresh dataset of the given size, prepares the structures,
// samples one shared key sequence and times a full lookup pass per structure.
func (r *Runner) RunSize(size int) (domain.Result, error) {
	var result domain.Result
	r.transition(size, StateConfigured)

	ds, err := r.builder.Build(size)
	if err != nil {
		observability.RunFailuresTotal.WithLabelValues("dataset").Inc()
		return result, err
	}
	r.transition(size, StateDatasetBuilt)

	set := store.PrepareWith(ds, r.factories...)
	r.transition(size, StateStructuresPrepared)

	keys, err := r.sampler.Sample(ds, r.iterations)
	if err != nil {
		observability.RunFailuresTotal.WithLabelValues("sample").Inc()
		return result, err
	}
	r.transition(size, StateKeysSampled)

	for _, v := range set.Views() {
		elapsed := r.measure(v, keys)
		result.Add(v.Kind(), elapsed)
		r.record(size, v.Kind(), len(keys), elapsed)
		r.log.Debug().
			Int("size", size).
			Str("state", string(StateMeasured)).
			Str("kind", string(v.Kind())).
			Dur("elapsed", elapsed).
			Msg("transition")
	}
	return result, nil
}

// measure times one lookup per key, in sequence order. Found records are
// discarded.
func (r *Runner) measure(v ports.View, keys []string) time.Duration {
	start := r.clock.Now()
	for _, key := range keys {
		v.Lookup(key)
	}
	elapsed := r.clock.Since(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

func (r *Runner) record(size int, kind domain.Kind, lookups int, elapsed time.Duration) {
	k := string(kind)
	observability.LookupsTotal.WithLabelValues(k).Add(float64(lookups))
	observability.PassDurationSeconds.WithLabelValues(k).Observe(elapsed.Seconds())
	observability.LastPassMilliseconds.WithLabelValues(k, strconv.Itoa(size)).
		Set(float64(elapsed) / float64(time.Millisecond))
}

func (r *Runner) transition(size int, s State) {
	r.log.Debug().Int("size", size).Str("state", string(s)).Msg("transition")
}
