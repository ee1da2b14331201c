package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/m3c/asm"
	"github.com/jcorbin/m3c/internal/fileinput"
	"github.com/jcorbin/m3c/internal/logio"
	"github.com/jcorbin/m3c/internal/panicerr"
	"github.com/jcorbin/m3c/ntf"
	"github.com/jcorbin/m3c/program"
)

// app runs one command over a list of files.
type app struct {
	cfg    Config
	log    *logio.Logger
	stdin  io.Reader
	stdout io.Writer

	write bool // fmt rewrites files in place
	trace bool // trace the codec through the logger
	color bool // color tables written to stdout
}

// source is a decoded file.
type source struct {
	*fileinput.Input
	prog  *program.Program
	diags ntf.Diagnostics
}

// command handles one successfully decoded file, writing any output to out.
type command func(app *app, src *source, out *bytes.Buffer) error

var commands = map[string]command{
	"check": (*app).check,
	"fmt":   (*app).format,
	"asm":   (*app).listing,
	"grid":  (*app).grid,
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// errFailed reports that a file was logged as failed; it carries no message
// of its own.
var errFailed = errors.New("failed")

// run decodes every file concurrently, then writes their outputs in argument
// order. Decoding problems and panics are logged per file, a panic along with
// its stack; io errors stop the remaining work and are returned.
func (app *app) run(ctx context.Context, name string, files []string) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, must be one of %v", name, strings.Join(commandNames(), ", "))
	}
	if len(files) == 0 {
		files = []string{fileinput.Stdin}
	}

	outs := make([]bytes.Buffer, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			label := file
			if label == fileinput.Stdin {
				label = "<stdin>"
			}
			err := panicerr.Recover(label, func() error {
				return app.runFile(cmd, file, &outs[i])
			})
			switch {
			case err == errFailed:
				return nil
			case panicerr.IsPanic(err):
				app.log.Errorf("internal error: %+v", err)
				return nil
			case panicerr.IsExit(err):
				app.log.Errorf("internal error: %v", err)
				return nil
			}
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i := range outs {
		out := &outs[i]
		if out.Len() == 0 {
			continue
		}
		if len(files) > 1 {
			// NTF output has no final line feed, since one would be a directive
			if b := out.Bytes(); b[len(b)-1] != '\n' {
				out.WriteByte('\n')
			}
			if _, err := fmt.Fprintf(app.stdout, "==> %v <==\n", files[i]); err != nil {
				return err
			}
		}
		if _, err := out.WriteTo(app.stdout); err != nil {
			return err
		}
	}
	return nil
}

func (app *app) runFile(cmd command, file string, out *bytes.Buffer) error {
	in, err := fileinput.Open(file, app.stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	var opts []ntf.Option
	if app.trace {
		trace := app.log.Leveledf("TRACE")
		opts = append(opts, ntf.WithLogf(func(mess string, args ...interface{}) {
			trace(in.Name+": "+mess, args...)
		}))
	}

	var prog program.Program
	diags, err := ntf.NewDecoder(in, opts...).Decode(&prog)
	app.report(in, diags)
	var capErr ntf.CapacityError
	if errors.As(err, &capErr) {
		app.log.Errorf("%v: %v", in.At(capErr.At), capErr.Err)
		return errFailed
	} else if err != nil {
		return fmt.Errorf("%v: %w", in.Name, err)
	}
	if app.cfg.Check.Strict && len(diags) > 0 {
		return errFailed
	}
	return cmd(app, &source{in, &prog, diags}, out)
}

// report logs diagnostics as warnings, or as errors in strict mode.
func (app *app) report(in *fileinput.Input, diags ntf.Diagnostics) {
	logf := app.log.Leveledf("WARN")
	if app.cfg.Check.Strict {
		logf = app.log.Errorf
	}
	for i, d := range diags {
		if limit := app.cfg.Check.MaxDiagnostics; limit > 0 && i >= limit {
			logf("%v: %v more diagnostics", in.Name, len(diags)-limit)
			return
		}
		logf("%v: [%v] %v", in.At(d.Start), d.ID, d.ID.Message())
	}
}

func (app *app) check(src *source, out *bytes.Buffer) error {
	app.log.Printf("INFO", "%v: %v instructions", src.Name, countInstructions(src.prog))
	return nil
}

// format writes the canonical text to out, or over the file with -w. A file
// with diagnostics is never rewritten, since its unknown text would be lost.
func (app *app) format(src *source, out *bytes.Buffer) error {
	if !app.write || src.IsStdin() {
		return ntf.NewEncoder(out).Encode(src.prog)
	}
	if n := len(src.diags); n > 0 {
		app.log.Errorf("%v: not rewritten, %v diagnostics", src.Name, n)
		return errFailed
	}
	var buf bytes.Buffer
	if err := ntf.NewEncoder(&buf).Encode(src.prog); err != nil {
		return err
	}
	if err := fileinput.ReplaceFile(src.Name, buf.Bytes()); err != nil {
		return err
	}
	app.log.Printf("INFO", "%v: formatted", src.Name)
	return nil
}

func (app *app) listing(src *source, out *bytes.Buffer) error {
	return asm.NewWriter(out).Write(src.prog)
}

func (app *app) grid(src *source, out *bytes.Buffer) error {
	return writeGrid(out, src.Name, src.prog, app.color)
}

func countInstructions(prog *program.Program) (n int) {
	for i := range prog {
		if !prog[i].IsEmpty() {
			n++
		}
	}
	return n
}
