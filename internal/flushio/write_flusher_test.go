package flushio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewWriteFlusher(t *testing.T) {
	assert.Equal(t, discardWriteFlusher, NewWriteFlusher(io.Discard))

	var buf bytes.Buffer
	assert.Equal(t, nopFlusher{&buf}, NewWriteFlusher(&buf))
	var sb strings.Builder
	assert.Equal(t, nopFlusher{&sb}, NewWriteFlusher(&sb))

	bw := bufio.NewWriter(&buf)
	assert.Equal(t, bw, NewWriteFlusher(bw), "already flushable")

	f, err := os.Create(filepath.Join(t.TempDir(), "out.ntf"))
	require.NoError(t, err)
	defer f.Close()
	wf := NewWriteFlusher(f)
	_, isBuffered := wf.(*bufio.Writer)
	require.True(t, isBuffered, "files get buffered")

	_, err = io.WriteString(wf, "$^W")
	require.NoError(t, err)
	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size(), "nothing written before flush")
	require.NoError(t, wf.Flush())
	info, err = f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())
}
