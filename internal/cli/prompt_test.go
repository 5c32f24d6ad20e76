package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes short", "y\n", true},
		{"yes full word", "YES\n", true},
		{"no", "n\n", false},
		{"empty defaults to no", "\n", false},
		{"eof defaults to no", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(bytes.Buffer)
			kit := NewLinePromptKit(strings.NewReader(tt.input), out)

			got, err := kit.Confirm("Does this summary look correct?")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Does this summary look correct? [y/N]")
		})
	}
}

func TestLinePromptSharesReader(t *testing.T) {
	out := new(bytes.Buffer)
	kit := NewLinePromptKit(strings.NewReader("monday 9-5\ny\nlast line"), out)

	line, err := kit.Prompt(">")
	require.NoError(t, err)
	assert.Equal(t, "monday 9-5", line)

	ok, err := kit.Confirm("Apply?")
	require.NoError(t, err)
	assert.True(t, ok)

	line, err = kit.Prompt(">")
	require.NoError(t, err)
	assert.Equal(t, "last line", line)

	_, err = kit.Prompt(">")
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineSelect(t *testing.T) {
	out := new(bytes.Buffer)
	kit := NewLinePromptKit(strings.NewReader("2\n9\n"), out)

	idx, err := kit.Select("Pick one", []string{"weekdays", "weekends"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "2) weekends")

	_, err = kit.Select("Pick one", []string{"weekdays", "weekends"})
	assert.Error(t, err)
}

func TestAlwaysYes(t *testing.T) {
	ok, err := AlwaysYes()("anything")
	require.NoError(t, err)
	assert.True(t, ok)
}
