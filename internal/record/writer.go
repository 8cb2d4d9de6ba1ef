package record

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Writer serializes records back to delimited text, one record per line,
// each line terminated by a newline.
type Writer struct {
	dialect *Dialect
	mirror  LineMirror
}

// NewWriter returns a Writer over dialect. mirror may be nil to disable
// echoing.
func NewWriter(dialect *Dialect, mirror LineMirror) *Writer {
	if dialect == nil {
		dialect = Default()
	}
	return &Writer{dialect: dialect, mirror: mirror}
}

// WriteAll writes every record to dst, joining fields with the dialect's
// field join literal. On error a prefix of the output may already have
// been flushed.
func (w *Writer) WriteAll(dst io.Writer, recs []Record) error {
	bw := bufio.NewWriter(dst)
	for _, rec := range recs {
		line := strings.Join(rec, w.dialect.FieldJoin)
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if w.mirror != nil {
			w.mirror.Line(line)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
