package record

const (
	defaultFieldDelimiter = "\t"
	defaultValueDelimiter = ":"
)

// Dialect bundles the two delimiter roles of a run: the field delimiter
// separating fields within a line, and the value delimiter separating
// sub-values within a field. Splitting is pattern based (an alternation of
// literals), joining always uses a single literal. A Dialect is built once
// before a run and treated as read-only by the engines.
type Dialect struct {
	Field *Pattern // splits a line into fields
	Value *Pattern // splits a field into sub-values

	FieldJoin string // literal between fields on output
	ValueJoin string // literal between segments of a compound value
}

// Default returns the tab/colon dialect: fields split on tab, sub-values
// on ":".
func Default() *Dialect {
	return &Dialect{
		Field:     NewPattern(defaultFieldDelimiter),
		Value:     NewPattern(defaultValueDelimiter),
		FieldJoin: defaultFieldDelimiter,
		ValueJoin: defaultValueDelimiter,
	}
}

// ReplaceField makes lit the only field delimiter, for splitting and
// joining both.
func (d *Dialect) ReplaceField(lit string) {
	d.Field.Replace(lit)
	d.FieldJoin = lit
}

// AddField recognizes lit as an additional field delimiter when splitting.
// The join literal is unchanged: an alternation has no single literal to
// join with.
func (d *Dialect) AddField(lit string) {
	d.Field.Add(lit)
}

// ReplaceValue makes lit the only sub-value delimiter, for splitting and
// joining both.
func (d *Dialect) ReplaceValue(lit string) {
	d.Value.Replace(lit)
	d.ValueJoin = lit
}

// AddValue recognizes lit as an additional sub-value delimiter when
// splitting.
func (d *Dialect) AddValue(lit string) {
	d.Value.Add(lit)
}
