package record

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteAll(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Default(), nil)
	err := w.WriteAll(&buf, []Record{
		{"beverage", ":coke", ":"},
		{"fruit", "apple:banana", "green:"},
		{"pet", "dog", "loyal"},
	})
	require.NoError(t, err)

	want := "beverage\t:coke\t:\n" +
		"fruit\tapple:banana\tgreen:\n" +
		"pet\tdog\tloyal\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(nil, nil).WriteAll(&buf, nil))
	assert.Zero(t, buf.Len(), "no records should produce an empty file")
}

func TestWriter_CustomJoin(t *testing.T) {
	d := Default()
	d.ReplaceField(",")

	var buf bytes.Buffer
	require.NoError(t, NewWriter(d, nil).WriteAll(&buf, []Record{{"a", "b"}}))
	assert.Equal(t, "a,b\n", buf.String())
}

func TestWriter_EchoesWrittenLines(t *testing.T) {
	mirror := &captureMirror{}
	var buf bytes.Buffer
	require.NoError(t, NewWriter(Default(), mirror).WriteAll(&buf, []Record{{"a", "b"}, {"c", "d"}}))
	assert.Equal(t, []string{"a\tb", "c\td"}, mirror.lines)
}
