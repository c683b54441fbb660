// Package breaker isolates failing external platforms from the sync path.
package breaker

import (
	"fmt"
	"sync"
	"time"
)

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Config configures breaker behaviour.
type Config struct {
	// FailureThreshold is the number of failures since the last success that trips the breaker.
	FailureThreshold int `yaml:"failure_threshold"`

	// ResetTimeout is how long the breaker stays open before letting a trial call through.
	ResetTimeout time.Duration `yaml:"reset_timeout"`

	// HalfOpenMaxAttempts caps concurrent trial calls while half-open.
	HalfOpenMaxAttempts int `yaml:"half_open_max_attempts"`

	// OnStateChange is called synchronously, outside the breaker lock.
	OnStateChange func(key string, from, to State) `yaml:"-"`
}

func (c Config) Validate() error {
	if c.FailureThreshold <= 0 {
		return fmt.Errorf("failure threshold must be greater than 0")
	}
	if c.ResetTimeout <= 0 {
		return fmt.Errorf("reset timeout must be greater than 0")
	}
	if c.HalfOpenMaxAttempts <= 0 {
		return fmt.Errorf("half-open max attempts must be greater than 0")
	}
	return nil
}

// Stats is a point-in-time snapshot of one breaker.
type Stats struct {
	Key            string    `json:"key"`
	State          State     `json:"state"`
	Failures       int       `json:"failures"`
	TotalSuccesses int64     `json:"totalSuccesses"`
	TotalFailures  int64     `json:"totalFailures"`
	TotalRejected  int64     `json:"totalRejected"`
	HalfOpenTrials int       `json:"halfOpenTrials"`
	OpenedAt       time.Time `json:"openedAt,omitempty"`
}

// Breaker is a closed/open/half-open state machine. It performs no I/O and
// every transition happens under one mutex together with the counter it reads.
type Breaker struct {
	key    string
	config Config
	now    func() time.Time

	mu             sync.Mutex
	state          State
	failures       int
	trials         int
	openedAt       time.Time
	totalSuccesses int64
	totalFailures  int64
	totalRejected  int64
}

func New(key string, cfg Config) (*Breaker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Breaker{
		key:    key,
		config: cfg,
		now:    time.Now,
		state:  StateClosed,
	}, nil
}

func (b *Breaker) Key() string {
	return b.key
}

// CanExecute reports whether a call may proceed. Every true result from an
// open or half-open breaker takes a trial slot that the following
// RecordSuccess or RecordFailure gives back.
func (b *Breaker) CanExecute() bool {
	b.mu.Lock()
	allowed, from, to := b.canExecuteLocked()
	b.mu.Unlock()

	b.notify(from, to)
	return allowed
}

func (b *Breaker) canExecuteLocked() (bool, State, State) {
	switch b.state {
	case StateClosed:
		return true, StateClosed, StateClosed

	case StateOpen:
		if b.now().Sub(b.openedAt) < b.config.ResetTimeout {
			b.totalRejected++
			return false, StateOpen, StateOpen
		}
		b.state = StateHalfOpen
		b.trials = 1
		return true, StateOpen, StateHalfOpen

	case StateHalfOpen:
		if b.trials >= b.config.HalfOpenMaxAttempts {
			b.totalRejected++
			return false, StateHalfOpen, StateHalfOpen
		}
		b.trials++
		return true, StateHalfOpen, StateHalfOpen
	}
	return false, b.state, b.state
}

func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	from := b.state
	b.failures = 0
	b.totalSuccesses++
	if b.state == StateHalfOpen {
		b.state = StateClosed
		b.trials = 0
		b.openedAt = time.Time{}
	}
	to := b.state
	b.mu.Unlock()

	b.notify(from, to)
}

func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	from := b.state
	b.failures++
	b.totalFailures++
	switch b.state {
	case StateClosed:
		if b.failures >= b.config.FailureThreshold {
			b.trip()
		}
	case StateHalfOpen:
		// a failed trial reopens immediately, regardless of threshold
		b.trip()
	}
	to := b.state
	b.mu.Unlock()

	b.notify(from, to)
}

// Release gives back a trial slot for a call that neither proved nor
// disproved platform health, such as a request rejected by local validation.
func (b *Breaker) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateHalfOpen && b.trials > 0 {
		b.trials--
	}
}

func (b *Breaker) trip() {
	b.state = StateOpen
	b.trials = 0
	b.openedAt = b.now()
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) FailureCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}

func (b *Breaker) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Stats{
		Key:            b.key,
		State:          b.state,
		Failures:       b.failures,
		TotalSuccesses: b.totalSuccesses,
		TotalFailures:  b.totalFailures,
		TotalRejected:  b.totalRejected,
		HalfOpenTrials: b.trials,
		OpenedAt:       b.openedAt,
	}
}

func (b *Breaker) notify(from, to State) {
	if from != to && b.config.OnStateChange != nil {
		b.config.OnStateChange(b.key, from, to)
	}
}
