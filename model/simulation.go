package model

import (
	"time"

	"github.com/pkg/errors"
)

// Buffer identifies one of the two ping-pong grids of a simulation
type Buffer int

const (
	BufferA Buffer = iota // holds the initial grid
	BufferB
)

// Other returns the opposite buffer
func (b Buffer) Other() Buffer {
	return 1 - b
}

func (b Buffer) String() string {
	if b == BufferB {
		return "B"
	}
	return "A"
}

// Observer is notified after every completed generation
type Observer func(generation int, current *Grid, elapsed time.Duration)

// Simulation advances a grid by alternating between two equally sized buffers
type Simulation struct {
	buffers    [2]*Grid
	current    Buffer
	generation int

	workers  int
	pool     *GridPool
	observer Observer
}

// Option configures a Simulation
type Option func(*Simulation)

// WithWorkers sets the number of row workers per generation, <= 0 means one per CPU
func WithWorkers(workers int) Option {
	return func(s *Simulation) {
		s.workers = workers
	}
}

// WithPool draws the secondary buffer from a pool
func WithPool(pool *GridPool) Option {
	return func(s *Simulation) {
		s.pool = pool
	}
}

// WithObserver registers a callback invoked after each generation
func WithObserver(fn Observer) Option {
	return func(s *Simulation) {
		s.observer = fn
	}
}

// NewSimulation uses initial as buffer A and allocates an all-dead buffer B
func NewSimulation(initial *Grid, opts ...Option) *Simulation {
	s := &Simulation{current: BufferA}
	for _, opt := range opts {
		opt(s)
	}

	var secondary *Grid
	if s.pool != nil {
		secondary = s.pool.Get(initial.Rows(), initial.Cols())
	} else {
		secondary = NewGrid(initial.Rows(), initial.Cols())
	}
	s.buffers = [2]*Grid{initial, secondary}

	return s
}

// Run advances exactly generations steps and returns the buffer holding the result
func (s *Simulation) Run(generations int) (Buffer, error) {
	if generations < 0 {
		return s.current, errors.Errorf("[Run] invalid generation count: %d", generations)
	}

	for range generations {
		var (
			start = time.Now()
			src   = s.buffers[s.current]
			dst   = s.buffers[s.current.Other()]
		)
		if err := Step(src, dst, s.workers); err != nil {
			return s.current, errors.Wrapf(err, "[Run] generation %d", s.generation)
		}

		s.current = s.current.Other()
		s.generation++

		if s.observer != nil {
			s.observer(s.generation, dst, time.Since(start))
		}
	}

	return s.current, nil
}

// Grid returns the grid stored in the given buffer
func (s *Simulation) Grid(b Buffer) *Grid {
	return s.buffers[b]
}

// Result returns the grid holding the latest generation
func (s *Simulation) Result() *Grid {
	return s.buffers[s.current]
}

// Current returns the buffer holding the latest generation
func (s *Simulation) Current() Buffer {
	return s.current
}

// Generation returns the number of completed generations
func (s *Simulation) Generation() int {
	return s.generation
}

// Release hands buffer B back to the pool. The simulation must not be used afterwards.
func (s *Simulation) Release() {
	GridToPool(s.buffers[BufferB], s.pool)
	s.buffers[BufferB] = nil
}
