package normalize

import (
	"strings"

	"tsvnf/internal/record"
)

// tupleSet is an insertion-ordered set of records: membership is checked
// before appending, and iteration order is first-insertion order. Keys
// join fields on NUL so a field containing the output join literal cannot
// alias a distinct tuple.
type tupleSet struct {
	seen   map[string]struct{}
	tuples []record.Record
}

func newTupleSet() *tupleSet {
	return &tupleSet{seen: make(map[string]struct{})}
}

// insert appends a copy of t unless an equal tuple was inserted before.
func (s *tupleSet) insert(t record.Record) {
	key := strings.Join(t, "\x00")
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	cp := make(record.Record, len(t))
	copy(cp, t)
	s.tuples = append(s.tuples, cp)
}

func (s *tupleSet) len() int {
	return len(s.tuples)
}
