// Package asm writes programs as an Assembly listing: one line per
// instruction slot, using the client's instruction identifiers. The listing
// is meant for reading; there is no parser for it.
package asm

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jcorbin/m3c/internal/flushio"
	"github.com/jcorbin/m3c/program"
)

// Writer writes Assembly listings.
type Writer struct {
	out flushio.WriteFlusher
	buf lineBuffer
}

// NewWriter creates a Writer; output is flushed after every listing.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: flushio.NewWriteFlusher(w)}
}

// Write lists every slot of prog up to its last non Empty instruction.
// Page and row starts are marked with "; page N" and "; row N" comments,
// labels are written unindented as "name:", and every other instruction is
// indented by four spaces.
func (w *Writer) Write(prog *program.Program) error {
	for i, n := 0, prog.Len(); i < n; i++ {
		pos, _ := program.PositionOf(i)
		if pos.Column() == 0 {
			if pos.Row() == 0 {
				fmt.Fprintf(&w.buf, "; page %v", pos.Page())
				if err := w.buf.writeLine(w.out); err != nil {
					return err
				}
			}
			fmt.Fprintf(&w.buf, "; row %v", pos.Row())
			if err := w.buf.writeLine(w.out); err != nil {
				return err
			}
		}
		formatInstruction(&w.buf, prog[i])
		if err := w.buf.writeLine(w.out); err != nil {
			return err
		}
	}
	return w.out.Flush()
}

func formatInstruction(buf *lineBuffer, ins program.Instruction) {
	if ins.ID() == program.Label {
		label, _ := ins.Label()
		buf.WriteString(label.String())
		buf.WriteByte(':')
		return
	}
	buf.WriteString("    ")
	buf.WriteString(ins.ID().String())
	switch ins.Kind() {
	case program.LabelKind:
		label, _ := ins.Label()
		buf.writeOperand(label.String())
	case program.VarCmpKind:
		name, value, _ := ins.VarCmp()
		buf.writeOperand(name.String())
		buf.writeOperand(value.String())
	case program.StringKind:
		text, _ := ins.Text()
		buf.writeOperand(text.String())
	}
}

// lineBuffer accumulates one line of output.
type lineBuffer struct{ bytes.Buffer }

func (buf *lineBuffer) writeOperand(s string) {
	if s != "" {
		buf.WriteByte(' ')
		buf.WriteString(s)
	}
}

// writeLine writes the buffered line and a line feed, then resets.
func (buf *lineBuffer) writeLine(w io.Writer) error {
	buf.WriteByte('\n')
	_, err := buf.Buffer.WriteTo(w)
	buf.Reset()
	return err
}
