package model

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

func TestSimulationParity(t *testing.T) {
	for generations, want := range []Buffer{BufferA, BufferB, BufferA, BufferB, BufferA} {
		sim := NewSimulation(NewGrid(3, 3), WithWorkers(1))
		got, err := sim.Run(generations)
		if err != nil {
			t.Fatalf("Run(%d): %v", generations, err)
		}
		if got != want || sim.Current() != want {
			t.Errorf("Run(%d) result in buffer %s, want %s", generations, got, want)
		}
		if sim.Result() != sim.Grid(want) {
			t.Errorf("Run(%d) Result does not match buffer %s", generations, want)
		}
		if sim.Generation() != generations {
			t.Errorf("Generation() = %d, want %d", sim.Generation(), generations)
		}
	}
}

func TestSimulationPatterns(t *testing.T) {
	tests := []struct {
		name        string
		in          []string
		generations int
		want        []string
	}{
		{
			name:        "empty grid",
			in:          []string{"...", "...", "..."},
			generations: 1,
			want:        []string{"...", "...", "..."},
		},
		{
			name:        "single cell dies",
			in:          []string{"...", ".*.", "..."},
			generations: 1,
			want:        []string{"...", "...", "..."},
		},
		{
			name:        "block is still",
			in:          []string{"....", ".**.", ".**.", "...."},
			generations: 7,
			want:        []string{"....", ".**.", ".**.", "...."},
		},
		{
			name:        "blinker after one",
			in:          []string{".....", ".....", ".***.", ".....", "....."},
			generations: 1,
			want:        []string{".....", "..*..", "..*..", "..*..", "....."},
		},
		{
			name:        "blinker after two",
			in:          []string{".....", ".....", ".***.", ".....", "....."},
			generations: 2,
			want:        []string{".....", ".....", ".***.", ".....", "....."},
		},
		{
			name:        "zero generations",
			in:          []string{"*..", ".*.", "..*"},
			generations: 0,
			want:        []string{"*..", ".*.", "..*"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := NewSimulation(gridFromRows(t, tt.in...), WithWorkers(2))
			if _, err := sim.Run(tt.generations); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if got := interiorRows(sim.Result()); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if !sim.Grid(BufferA).BorderIsDead() || !sim.Grid(BufferB).BorderIsDead() {
				t.Error("border is not dead")
			}
		})
	}
}

func TestSimulationGliderHitsBorder(t *testing.T) {
	// a glider walking into the dead border collapses into a block
	sim := NewSimulation(gridFromRows(t,
		".*....",
		"..*...",
		"***...",
		"......",
		"......",
		"......",
	), WithWorkers(1))
	if _, err := sim.Run(40); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{
		"......",
		"......",
		"......",
		"......",
		"....**",
		"....**",
	}
	if got := interiorRows(sim.Result()); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSimulationDeterministicAcrossWorkers(t *testing.T) {
	initial := randomGrid(40, 33, 0.3, 1)

	reference := NewSimulation(copyGrid(initial), WithWorkers(1))
	if _, err := reference.Run(25); err != nil {
		t.Fatal(err)
	}

	pool := NewGridPool()
	for _, workers := range []int{0, 2, 4, 7, 16} {
		sim := NewSimulation(copyGrid(initial), WithWorkers(workers), WithPool(pool))
		if _, err := sim.Run(25); err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if sim.Result().GetGridHash() != reference.Result().GetGridHash() {
			t.Errorf("workers=%d diverged from the sequential run", workers)
		}
		sim.Release()
	}
}

func TestSimulationRunContinues(t *testing.T) {
	blinker := []string{".....", ".....", ".***.", ".....", "....."}

	sim := NewSimulation(gridFromRows(t, blinker...))
	if _, err := sim.Run(1); err != nil {
		t.Fatal(err)
	}
	buf, err := sim.Run(2)
	if err != nil {
		t.Fatal(err)
	}
	if buf != BufferB || sim.Generation() != 3 {
		t.Fatalf("after 3 generations: buffer %s, generation %d", buf, sim.Generation())
	}
}

func TestSimulationObserver(t *testing.T) {
	var seen []int
	sim := NewSimulation(NewGrid(4, 4), WithObserver(func(generation int, current *Grid, _ time.Duration) {
		if current == nil {
			t.Error("observer received nil grid")
		}
		seen = append(seen, generation)
	}))

	if _, err := sim.Run(3); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(seen, []int{1, 2, 3}) {
		t.Errorf("observer saw %v", seen)
	}
}

func TestSimulationNegativeGenerations(t *testing.T) {
	sim := NewSimulation(NewGrid(2, 2))
	if _, err := sim.Run(-1); err == nil {
		t.Fatal("expected error for negative generation count")
	}
}

func TestSimulationReleaseRecyclesBuffer(t *testing.T) {
	pool := NewGridPool()

	first := NewSimulation(gridFromRows(t, "***", "***", "***"), WithPool(pool), WithWorkers(1))
	if _, err := first.Run(1); err != nil {
		t.Fatal(err)
	}
	first.Release()
	if first.Grid(BufferB) != nil {
		t.Fatal("Release kept buffer B")
	}

	second := NewSimulation(NewGrid(2, 4), WithPool(pool), WithWorkers(1))
	b := second.Grid(BufferB)
	if b.Rows() != 2 || b.Cols() != 4 {
		t.Fatalf("buffer B is %dx%d, want 2x4", b.Rows(), b.Cols())
	}
	if b.CountLivingCells() != 0 || !b.BorderIsDead() {
		t.Fatal("recycled buffer B was not cleared")
	}
}

func TestBufferOther(t *testing.T) {
	if BufferA.Other() != BufferB || BufferB.Other() != BufferA {
		t.Fatal("Other did not swap buffers")
	}
}

func copyGrid(g *Grid) *Grid {
	c := NewGrid(g.Rows(), g.Cols())
	copy(c.cells, g.cells)
	return c
}

// Each benchmark runs 100 generations
const benchLength = 100

func BenchmarkSimulation(b *testing.B) {
	initial := randomGrid(512, 512, 0.25, 99)

	for _, workers := range []int{1, 2, 4, 8, 16} {
		name := fmt.Sprintf("%dx%dx%d-%d", initial.Rows(), initial.Cols(), benchLength, workers)

		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sim := NewSimulation(copyGrid(initial), WithWorkers(workers))
				if _, err := sim.Run(benchLength); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
