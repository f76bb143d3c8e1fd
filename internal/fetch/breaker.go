package fetch

import (
	"sort"
	"sync"
	"time"

	"github.com/mealscout/recipe-scout/internal/clock"
	"github.com/mealscout/recipe-scout/internal/recipe"
)

// circuitState is the lifecycle of one origin's breaker.
type circuitState int

const (
	stateClosed circuitState = iota
	stateOpen
	stateHalfOpen
)

func (s circuitState) String() string {
	switch s {
	case stateOpen:
		return "open"
	case stateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// circuit tracks consecutive failures for a single origin. Created
// lazily on first fetch, never destroyed.
type circuit struct {
	state       circuitState
	failures    int
	lastFailure time.Time
	trialOut    bool
}

// BreakerRegistry holds a circuit per origin. Safe for concurrent use;
// no network I/O happens under its lock.
type BreakerRegistry struct {
	mu           sync.Mutex
	circuits     map[string]*circuit
	threshold    int
	cooldown     time.Duration
	clock        clock.Clock
	onTransition func(origin, state string)
}

// NewBreakerRegistry builds a registry. Threshold is the consecutive
// failure count that opens a circuit; cooldown is how long it stays open
// before a half-open trial is admitted.
func NewBreakerRegistry(threshold int, cooldown time.Duration, clk clock.Clock) *BreakerRegistry {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &BreakerRegistry{
		circuits:  make(map[string]*circuit),
		threshold: threshold,
		cooldown:  cooldown,
		clock:     clk,
	}
}

// OnTransition registers a hook invoked with the origin and new state
// whenever a circuit changes state. Must be called before first use.
func (r *BreakerRegistry) OnTransition(fn func(origin, state string)) {
	r.onTransition = fn
}

// Allow checks the origin's circuit before a network attempt. Returns a
// CircuitOpenError when the circuit is open, or when a half-open trial
// is already in flight.
func (r *BreakerRegistry) Allow(origin string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.circuit(origin)
	switch c.state {
	case stateOpen:
		if r.clock.Now().Sub(c.lastFailure) < r.cooldown {
			return &CircuitOpenError{Origin: origin}
		}
		// Cooldown elapsed: admit exactly one trial request.
		r.transition(origin, c, stateHalfOpen)
		c.trialOut = true
		return nil
	case stateHalfOpen:
		if c.trialOut {
			return &CircuitOpenError{Origin: origin}
		}
		c.trialOut = true
		return nil
	default:
		return nil
	}
}

// RecordSuccess registers a terminal fetch success for the origin.
func (r *BreakerRegistry) RecordSuccess(origin string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.circuit(origin)
	c.failures = 0
	r.transition(origin, c, stateClosed)
	c.trialOut = false
}

// RecordFailure registers a terminal fetch failure for the origin,
// opening the circuit once the threshold is reached. A failed half-open
// trial reopens immediately.
func (r *BreakerRegistry) RecordFailure(origin string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.circuit(origin)
	c.failures++
	c.lastFailure = r.clock.Now()
	if c.state == stateHalfOpen || c.failures >= r.threshold {
		r.transition(origin, c, stateOpen)
	}
	c.trialOut = false
}

// Snapshot returns a read-only view of every tracked origin, sorted by
// origin for stable diagnostics output.
func (r *BreakerRegistry) Snapshot() []recipe.CircuitSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]recipe.CircuitSnapshot, 0, len(r.circuits))
	for origin, c := range r.circuits {
		out = append(out, recipe.CircuitSnapshot{
			Origin:      origin,
			State:       c.state.String(),
			Failures:    c.failures,
			LastFailure: c.lastFailure,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Origin < out[j].Origin })
	return out
}

func (r *BreakerRegistry) transition(origin string, c *circuit, next circuitState) {
	if c.state == next {
		return
	}
	c.state = next
	if r.onTransition != nil {
		r.onTransition(origin, next.String())
	}
}

func (r *BreakerRegistry) circuit(origin string) *circuit {
	c, ok := r.circuits[origin]
	if !ok {
		c = &circuit{state: stateClosed}
		r.circuits[origin] = c
	}
	return c
}
