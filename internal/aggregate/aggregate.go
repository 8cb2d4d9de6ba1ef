// Package aggregate implements the pivot/fold engine: records are grouped
// by their first field and each remaining column is folded across the
// group into a single compound value, producing one output record per
// distinct key.
package aggregate

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"tsvnf/internal/record"
)

// Engine folds records by first-field key. It holds no per-run state and
// is safe to reuse across inputs.
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

// Fold groups recs by first field and emits one record per distinct key,
// in ascending lexicographic key order. Column c of the output is the
// value-join of column c across the group's members, in input order; a
// member too short for column c contributes an empty segment. A group of
// one therefore reproduces its member's own fields with no join literal
// inserted.
//
// Fold tolerates ragged input: each group is folded out to its widest
// member, and out-of-range columns read as empty. With width
// reconciliation upstream every group is exactly header width, but Fold
// does not depend on it.
func (e *Engine) Fold(recs []record.Record) []record.Record {
	groups := make(map[string][]record.Record)
	var keys []string
	for _, rec := range recs {
		if len(rec) == 0 {
			continue
		}
		key := rec[0]
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], rec)
	}
	sort.Strings(keys)

	out := make([]record.Record, 0, len(keys))
	for _, key := range keys {
		out = append(out, e.foldGroup(key, groups[key]))
	}

	e.logger.Debug("records aggregated",
		zap.Int("records", len(recs)),
		zap.Int("groups", len(out)))
	return out
}

func (e *Engine) foldGroup(key string, members []record.Record) record.Record {
	maxColumns := 0
	for _, m := range members {
		if len(m) > maxColumns {
			maxColumns = len(m)
		}
	}

	folded := record.Record{key}
	segments := make([]string, len(members))
	for col := 1; col < maxColumns; col++ {
		for i, m := range members {
			if col < len(m) {
				segments[i] = m[col]
			} else {
				segments[i] = ""
			}
		}
		folded = append(folded, strings.Join(segments, e.dialect.ValueJoin))
	}
	return folded
}
