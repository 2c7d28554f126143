package testutils

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedPrompter(t *testing.T) {
	p := NewScriptedPrompter("1", "alice")

	answer, err := p.Prompt("choice")
	require.NoError(t, err)
	assert.Equal(t, "1", answer)
	assert.Equal(t, 1, p.Remaining())

	answer, err = p.Prompt("username")
	require.NoError(t, err)
	assert.Equal(t, "alice", answer)

	_, err = p.Prompt("again")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"choice", "username", "again"}, p.Labels)
}

func TestRecorders(t *testing.T) {
	o := &RecordingOpener{}
	require.NoError(t, o.Open("https://a"))
	assert.Equal(t, []string{"https://a"}, o.Opened)

	o.Err = errors.New("no browser")
	assert.Error(t, o.Open("https://b"))
	assert.Len(t, o.Opened, 1)

	c := &RecordingClipboard{}
	require.NoError(t, c.Copy("x"))
	assert.Equal(t, []string{"x"}, c.Copied)
}

func TestDiff(t *testing.T) {
	diff := Diff("1) Google\n2) Bing", "1) Google\n2) Yandex")
	assert.Contains(t, diff, `- "Bing"`)
	assert.Contains(t, diff, `+ "Yandex"`)

	assert.True(t, AssertGolden(t, "same\n", "same"))
}

func TestCreateTempFile(t *testing.T) {
	path := CreateTempFile(t, "a.yaml", "root: main")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "root: main", string(data))
}
