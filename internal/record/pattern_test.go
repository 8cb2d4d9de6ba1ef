package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPattern_Split(t *testing.T) {
	p := NewPattern("\t")

	t.Run("trailing empty fields preserved", func(t *testing.T) {
		assert.Equal(t, []string{"a", "", ""}, p.Split("a\t\t"))
	})

	t.Run("empty string splits to one empty field", func(t *testing.T) {
		assert.Equal(t, []string{""}, p.Split(""))
	})

	t.Run("no match yields whole string", func(t *testing.T) {
		assert.Equal(t, []string{"a,b"}, p.Split("a,b"))
	})
}

func TestPattern_Add(t *testing.T) {
	p := NewPattern("\t")
	p.Add(",")

	assert.Equal(t, []string{"a", "b", "c"}, p.Split("a\tb,c"),
		"both the original and the added delimiter should split")
}

func TestPattern_Replace(t *testing.T) {
	p := NewPattern("\t")
	p.Add(",")
	p.Replace(";")

	assert.Equal(t, []string{"a\tb,c", "d"}, p.Split("a\tb,c;d"),
		"replace should discard all prior delimiters")
}

func TestPattern_LiteralsAreQuoted(t *testing.T) {
	p := NewPattern(".")
	assert.Equal(t, []string{"a", "b"}, p.Split("a.b"))
	assert.Equal(t, []string{"axb"}, p.Split("axb"),
		"a dot delimiter must not match as a regex wildcard")

	p = NewPattern("|")
	assert.Equal(t, []string{"a", "b"}, p.Split("a|b"))
}

func TestPattern_ReplaceAll(t *testing.T) {
	p := NewPattern("\t")
	p.Add(",")
	assert.Equal(t, "a→b→c", p.ReplaceAll("a\tb,c", "→"))
}
