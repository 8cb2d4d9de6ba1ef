package record

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// LineMirror receives each raw line as it passes through a Reader or
// Writer, for diagnostic display. Implementations must tolerate being
// called on every line of the run; errors are theirs to swallow.
type LineMirror interface {
	Line(line string)
}

// Reader parses delimited text lines into width-reconciled records. The
// first line read fixes the header width for the run; every line,
// including the first, is reconciled to it before being returned.
type Reader struct {
	dialect *Dialect
	mirror  LineMirror
	logger  *zap.Logger
	width   int
}

// NewReader returns a Reader over dialect. mirror may be nil to disable
// echoing, logger may be nil for a no-op logger.
func NewReader(dialect *Dialect, mirror LineMirror, logger *zap.Logger) *Reader {
	if dialect == nil {
		dialect = Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{dialect: dialect, mirror: mirror, logger: logger}
}

// HeaderWidth reports the width fixed by the first line of the most recent
// ReadAll, 0 if nothing has been read.
func (r *Reader) HeaderWidth() int {
	return r.width
}

// ReadAll consumes src to EOF and returns one record per line. The whole
// input is materialized before any caller sees a record; there is no
// streaming. Empty input yields no records and no error.
func (r *Reader) ReadAll(src io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	r.width = 0
	var recs []Record
	for sc.Scan() {
		line := sc.Text()
		if r.mirror != nil {
			r.mirror.Line(line)
		}
		fields := Record(r.dialect.Field.Split(line))
		if recs == nil {
			r.width = len(fields)
		}
		recs = append(recs, Reconcile(fields, r.width))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	r.logger.Debug("input read",
		zap.Int("records", len(recs)),
		zap.Int("header_width", r.width))
	return recs, nil
}
