package prover

import (
	"time"

	"github.com/xDarkicex/prover/formula"
	"github.com/xDarkicex/prover/saturate"
)

// Operation is a single named Solve invocation to benchmark.
type Operation struct {
	// Name is a descriptive label for the run being measured.
	Name string

	// Config and Target are the arguments passed to Solve.
	Config saturate.Config
	Target formula.Formula
}

// BenchmarkRun is one Operation's outcome: whether it proved its target,
// how long Solve took, and any error Solve returned.
type BenchmarkRun struct {
	Name     string
	Proved   bool
	Duration time.Duration
	Err      error
}

// Benchmark times a batch of Solve calls against each other, for
// comparing e.g. different LengthFactor or BootstrapHilbert settings on
// the same target.
type Benchmark struct {
	operations []Operation

	// Results holds one BenchmarkRun per Operation, in Add order, after
	// Run has executed.
	Results []BenchmarkRun
}

// NewBenchmark returns an empty Benchmark.
func NewBenchmark() *Benchmark {
	return &Benchmark{}
}

// Add queues op to run the next time Run is called.
func (b *Benchmark) Add(op Operation) {
	b.operations = append(b.operations, op)
}

// Run executes every queued Operation in order and records its timing.
func (b *Benchmark) Run() {
	b.Results = make([]BenchmarkRun, len(b.operations))

	for i, op := range b.operations {
		start := time.Now()
		result, err := Solve(op.Config, op.Target)
		elapsed := time.Since(start)

		run := BenchmarkRun{Name: op.Name, Duration: elapsed, Err: err}
		if err == nil {
			run.Proved = result.Proved
		}
		b.Results[i] = run
	}
}
