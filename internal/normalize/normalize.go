// Package normalize implements first-normal-form expansion: every record
// whose fields hold multiple sub-values is expanded into the full cross
// product of those sub-values, and the resulting fixed-width tuples are
// collected into a duplicate-free set that preserves first-insertion
// order.
package normalize

import (
	"go.uber.org/zap"

	"tsvnf/internal/record"
)

// Engine expands multi-valued fields into atomic tuples.
type Engine struct {
	dialect *record.Dialect
	logger  *zap.Logger
}

// New returns an Engine over dialect. dialect may be nil for the default
// tab/colon dialect, logger may be nil for a no-op logger.
func New(dialect *record.Dialect, logger *zap.Logger) *Engine {
	if dialect == nil {
		dialect = record.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{dialect: dialect, logger: logger}
}

// Expand produces every tuple obtainable from recs by choosing one
// sub-value per column, deduplicated by exact tuple equality with
// first-insertion order preserved. An empty field splits into a single
// empty sub-value, so every record contributes at least one tuple.
//
// A record whose columns split into n0, n1, ... sub-values yields
// n0*n1*... candidate tuples before dedup. The blow-up across
// multi-valued columns is the point of the operation; callers are
// expected to bound per-field cardinality.
func (e *Engine) Expand(recs []record.Record) []record.Record {
	set := newTupleSet()
	for _, rec := range recs {
		e.expand(rec, 0, make(record.Record, len(rec)), set)
	}

	e.logger.Debug("records normalized",
		zap.Int("records", len(recs)),
		zap.Int("tuples", set.len()))
	return set.tuples
}

// expand walks rec column by column; at each column it branches once per
// sub-value, and a completed assignment of current is inserted into set.
// Recursion depth equals the record width.
func (e *Engine) expand(rec record.Record, col int, current record.Record, set *tupleSet) {
	if col == len(rec) {
		set.insert(current)
		return
	}
	for _, v := range e.dialect.Value.Split(rec[col]) {
		current[col] = v
		e.expand(rec, col+1, current, set)
	}
}
