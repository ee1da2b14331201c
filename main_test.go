package main

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/m3c/internal/logio"
)

type failWriter struct{ err error }

func (fw failWriter) Write(p []byte) (int, error) { return 0, fw.err }

func Test_flushHandler(t *testing.T) {
	t.Run("flushes", func(t *testing.T) {
		var (
			out    strings.Builder
			log    logio.Logger
			exited []int
		)
		w := bufio.NewWriter(&out)
		w.WriteString("$^W")
		flushHandler(&log, w, func(code int) { exited = append(exited, code) })()
		assert.Equal(t, "$^W", out.String())
		assert.Empty(t, exited)
		assert.Equal(t, 0, log.ExitCode())
	})

	t.Run("flush error", func(t *testing.T) {
		var (
			stderr strings.Builder
			log    logio.Logger
			exited []int
		)
		log.SetOutput(&stderr)
		w := bufio.NewWriter(failWriter{errors.New("broken pipe")})
		w.WriteString("$^W")
		flushHandler(&log, w, func(code int) { exited = append(exited, code) })()
		assert.Equal(t, []int{1}, exited)
		assert.Equal(t, "ERROR: broken pipe\n", stderr.String())
	})
}
