// Package engine implements the validation core: it consumes placement
// records for both sides, aggregates occupancy and piece counts per
// side, and derives a structured report of valid, conflicting, invalid,
// missing, and extra placements. The engine is stateless across runs;
// every run recomputes its aggregates from scratch.
package engine

import (
	"sync"

	"lineup/internal/layout"
	"lineup/internal/parse"
	"lineup/pkg/models"
)

// Options controls a validation run.
type Options struct {
	// Workers is the number of input partitions aggregated in parallel.
	// Values below 2 run a single partition. Partitioning never changes
	// the result: partial aggregates merge before conflict detection
	// and delta computation.
	Workers int
	// StrictPieces rejects non-canonical piece type tokens at the
	// parser instead of passing them through.
	StrictPieces bool
}

// Engine validates placement records against a starting layout set.
// The layout set is immutable shared configuration; the engine itself
// holds no per-run state and is safe for repeated runs.
type Engine struct {
	layouts *layout.Set
	opts    Options
}

// New creates an engine over the given layout set.
func New(layouts *layout.Set, opts Options) *Engine {
	return &Engine{layouts: layouts, opts: opts}
}

// Result is the outcome of one validation run.
type Result struct {
	// Reports holds one report per side, White first.
	Reports []*Report `json:"reports"`
	// Dropped counts lines discarded without a report entry: wrong
	// token count or unrecognized side.
	Dropped int `json:"dropped"`
}

// Report returns the report for one side, or nil if absent.
func (r *Result) Report(side models.Side) *Report {
	for _, rep := range r.Reports {
		if rep.Side == side {
			return rep
		}
	}
	return nil
}

// partial holds one partition's aggregates for both sides.
type partial struct {
	white, black *Aggregate
	dropped      int
}

// newPartial returns empty aggregates for one partition.
func newPartial() *partial {
	return &partial{
		white: NewAggregate(models.SideWhite),
		black: NewAggregate(models.SideBlack),
	}
}

// consume classifies one raw line into the partition's aggregates.
func (p *partial) consume(raw string, opts parse.Options) {
	rec, class := parse.Line(raw, opts)

	var agg *Aggregate
	switch rec.Side {
	case models.SideWhite:
		agg = p.white
	case models.SideBlack:
		agg = p.black
	}

	switch class {
	case parse.ClassValid:
		agg.Record(rec)
	case parse.ClassInvalidSquare:
		agg.RecordInvalid(rec, ReasonSquare)
	case parse.ClassInvalidPiece:
		agg.RecordInvalid(rec, ReasonPiece)
	case parse.ClassDropped:
		p.dropped++
	}
}

// merge folds another partition into this one.
func (p *partial) merge(other *partial) {
	p.white.Merge(other.white)
	p.black.Merge(other.black)
	p.dropped += other.dropped
}

// Validate runs one validation over the full set of raw lines. All
// lines must be collected before the call; conflict and count results
// depend on having seen every record for a side.
func (e *Engine) Validate(lines []string) *Result {
	merged := e.aggregate(lines)

	return &Result{
		Reports: []*Report{
			buildReport(merged.white, e.layouts),
			buildReport(merged.black, e.layouts),
		},
		Dropped: merged.dropped,
	}
}

// aggregate builds the merged aggregates, fanning out over input
// partitions when more than one worker is configured.
func (e *Engine) aggregate(lines []string) *partial {
	parseOpts := parse.Options{StrictPieces: e.opts.StrictPieces}

	workers := e.opts.Workers
	if workers < 2 || len(lines) < workers {
		p := newPartial()
		for _, raw := range lines {
			p.consume(raw, parseOpts)
		}
		return p
	}

	partials := make([]*partial, workers)
	chunk := (len(lines) + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := i * chunk
		if lo > len(lines) {
			lo = len(lines)
		}
		hi := lo + chunk
		if hi > len(lines) {
			hi = len(lines)
		}

		partials[i] = newPartial()
		wg.Add(1)
		go func(p *partial, part []string) {
			defer wg.Done()
			for _, raw := range part {
				p.consume(raw, parseOpts)
			}
		}(partials[i], lines[lo:hi])
	}
	wg.Wait()

	// Merge in partition order. Merging is commutative, but a fixed
	// order keeps invalid-entry accumulation deterministic before the
	// report's final sort.
	merged := partials[0]
	for _, p := range partials[1:] {
		merged.merge(p)
	}
	return merged
}
