package util

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToFileReplacesContent(t *testing.T) {
	file := path.Join(t.TempDir(), "out.txt")

	require.NoError(t, WriteToFile(file, "one", "two"))
	bs, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", string(bs))

	require.NoError(t, WriteToFile(file, "three"))
	bs, err = os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "three", string(bs))
}

func TestAppendToFileAccumulatesLines(t *testing.T) {
	file := path.Join(t.TempDir(), "out.txt")

	require.NoError(t, AppendToFile(file, "one"))
	require.NoError(t, AppendToFile(file, "two", "three"))

	bs, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\n", string(bs))
}
