package record

import "regexp"

// Pattern is a compiled alternation of literal delimiters. Every literal
// is regex-quoted before compilation, so delimiters like "." or "|" match
// themselves, never as metacharacters.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern returns a pattern that matches exactly lit.
func NewPattern(lit string) *Pattern {
	return &Pattern{re: regexp.MustCompile(regexp.QuoteMeta(lit))}
}

// Add alternates lit into the pattern: anything the pattern matched before
// still matches, and lit now matches too.
func (p *Pattern) Add(lit string) {
	p.re = regexp.MustCompile(p.re.String() + "|" + regexp.QuoteMeta(lit))
}

// Replace discards all prior alternates and matches only lit.
func (p *Pattern) Replace(lit string) {
	p.re = regexp.MustCompile(regexp.QuoteMeta(lit))
}

// Split splits s on every match with no limit, preserving empty segments
// between and after matches. Splitting the empty string yields one empty
// segment, never zero.
func (p *Pattern) Split(s string) []string {
	return p.re.Split(s, -1)
}

// ReplaceAll substitutes repl for every match in s. Used by the console
// mirror to render delimiters visibly.
func (p *Pattern) ReplaceAll(s, repl string) string {
	return p.re.ReplaceAllLiteralString(s, repl)
}

// String returns the compiled regular expression source.
func (p *Pattern) String() string {
	return p.re.String()
}
