// Package record defines the shared record model for the tsvnf engines:
// an ordered, fixed-width tuple of opaque string fields, the delimiter
// dialect used to split and join it, and the reader/writer pair that moves
// records between text lines and memory.
//
// Width is fixed per run by the first line read (the header width). Every
// record handed to an engine has exactly that many fields; Reconcile
// enforces this by padding short tuples with empty strings and truncating
// long ones.
package record

// Record is an ordered tuple of string fields. Fields are opaque values
// and may be empty.
type Record []string

// Reconcile returns fields adjusted to exactly width entries: shorter
// inputs are padded with trailing empty strings, longer inputs lose their
// trailing excess. A slice already at width is returned unchanged. Total
// for any width >= 0.
func Reconcile(fields Record, width int) Record {
	switch {
	case len(fields) < width:
		out := make(Record, width)
		copy(out, fields)
		return out
	case len(fields) > width:
		return fields[:width]
	default:
		return fields
	}
}
