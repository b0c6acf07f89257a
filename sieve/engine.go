package sieve

import (
	"context"

	"github.com/google/uuid"

	"github.com/primekit/primekit/errors"
	"github.com/primekit/primekit/logger"
	"github.com/primekit/primekit/observability"
	"github.com/primekit/primekit/util"
)

// firstCandidate is where the natural-number stream starts; the first prime
// is always 2.
const firstCandidate int64 = 2

// State describes the engine lifecycle.
type State int

const (
	// StateInit means no candidate has been pulled yet.
	StateInit State = iota
	// StateRunning means at least one candidate has been pulled.
	StateRunning
	// StateExhausted means the engine was closed after a bounded take;
	// further pulls fail with SEQUENCE_EXHAUSTED.
	StateExhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateRunning:
		return "RUNNING"
	case StateExhausted:
		return "EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

// Engine drives the pull loop of the sieve. It owns the ordered stage list
// and the position in the raw natural-number stream. Engines are single
// consumer and not safe for concurrent use; evaluation is pull-driven and
// nothing advances between calls to Next.
type Engine struct {
	id      string
	stages  []Stage
	next    int64
	state   State
	log     *logger.Logger
	metrics *observability.SieveMetrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-prime debug logging.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) { e.log = l.WithComponent("sieve") }
}

// WithMetrics enables metric recording for candidates and primes.
func WithMetrics(m *observability.SieveMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// NewEngine creates an engine positioned at the start of the natural-number
// stream, with no primes discovered yet.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		id:    uuid.NewString(),
		next:  firstCandidate,
		state: StateInit,
		log:   logger.WithComponent("sieve"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the engine's sequence id, used to correlate logs and metrics.
func (e *Engine) ID() string { return e.id }

// State returns the engine lifecycle state.
func (e *Engine) State() State { return e.state }

// StageDepth returns the number of stages composed so far, equal to the
// number of primes discovered.
func (e *Engine) StageDepth() int { return len(e.stages) }

// Stages returns a copy of the stage list in discovery order.
func (e *Engine) Stages() []Stage {
	out := make([]Stage, len(e.stages))
	copy(out, e.stages)
	return out
}

// Discovered returns a copy of the primes emitted so far, in order.
func (e *Engine) Discovered() []int64 {
	out := make([]int64, len(e.stages))
	for i, s := range e.stages {
		out[i] = s.divisor
	}
	return out
}

// Next pulls the next prime. It inspects raw candidates in order, rejecting
// each composite at the first stage whose divisor divides it, and accepts the
// first survivor as prime. The accepted value is bound into a new Stage
// before Next returns, extending the chain for subsequent pulls.
func (e *Engine) Next(ctx context.Context) (int64, error) {
	if e.state == StateExhausted {
		return 0, errors.Exhausted("prime sequence")
	}
	e.state = StateRunning

	for {
		candidate := e.next
		incremented, ok := util.CheckedAdd(candidate, 1)
		if !ok {
			return 0, errors.Overflow("candidate increment", candidate)
		}
		e.next = incremented

		if e.metrics != nil {
			e.metrics.RecordCandidate(ctx, e.id)
		}
		if e.rejected(candidate) {
			continue
		}

		stage := newStage(candidate, len(e.stages))
		e.stages = append(e.stages, stage)
		if e.metrics != nil {
			e.metrics.RecordPrime(ctx, e.id)
		}
		e.log.Debug("prime emitted", logger.Fields(
			logger.FieldSequenceID, e.id,
			logger.FieldDivisor, candidate,
			logger.FieldStageDepth, len(e.stages),
		))
		return candidate, nil
	}
}

// rejected scans the stage list in discovery order. The scan is iterative so
// the pull depth is constant regardless of how many stages exist; a composite
// is rejected by the first stage whose frozen divisor divides it.
func (e *Engine) rejected(candidate int64) bool {
	for _, s := range e.stages {
		if s.Rejects(candidate) {
			return true
		}
	}
	return false
}

// Close marks the engine exhausted. Pulling after Close fails with
// SEQUENCE_EXHAUSTED; the infinite sequence itself never ends on its own.
func (e *Engine) Close() error {
	e.state = StateExhausted
	return nil
}
