package ntf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/m3c/internal/flushio"
	"github.com/jcorbin/m3c/program"
)

// Encoder writes programs in New Text Format.
type Encoder struct {
	core
	out flushio.WriteFlusher
	buf []byte
}

// Encode returns the New Text Format text of prog.
func Encode(prog *program.Program, opts ...Option) string {
	var sb strings.Builder
	if err := NewEncoder(&sb, opts...).Encode(prog); err != nil {
		// strings.Builder never fails to write
		panic(err)
	}
	return sb.String()
}

// NewEncoder creates an Encoder writing to w; output is buffered unless w
// is an in memory buffer, and flushed after every program.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	enc := &Encoder{out: flushio.NewWriteFlusher(w)}
	enc.apply(opts...)
	return enc
}

// Encode writes the magic followed by every non Empty instruction of prog,
// each preceded by the directives that move the cursor from the slot after
// the previous instruction to its own slot.
func (enc *Encoder) Encode(prog *program.Program) error {
	defer enc.withLogPrefix("encode: ")()

	buf := append(enc.buf[:0], Magic)
	var cursor program.Position
	for i := range prog {
		ins := prog[i]
		if ins.IsEmpty() {
			continue
		}
		at, _ := program.PositionOf(i)
		n := len(buf)
		buf = appendDelta(buf, cursor, at)
		if len(buf) > n {
			enc.logf("move %v -> %v %q", cursor, at, buf[n:])
		}
		buf = AppendInstruction(buf, ins)
		enc.logf("place %v @%v", ins, at)
		cursor = at
		if cursor.MoveForward() != nil {
			// the last slot; no instruction can follow
			break
		}
	}
	enc.buf = buf

	if _, err := enc.out.Write(buf); err != nil {
		return err
	}
	return enc.out.Flush()
}

// appendDelta appends the directives moving from to to; to must not precede
// from. Pages are crossed with '~', rows with '\n', and columns with '_'
// per three columns then ' ' for the rest.
func appendDelta(buf []byte, from, to program.Position) []byte {
	if to.Index() < from.Index() {
		panic(fmt.Sprintf("ntf: cannot move back from %v to %v", from, to))
	}
	column := from.Column()
	if pages := to.Page() - from.Page(); pages > 0 {
		buf = appendRepeat(buf, '~', pages)
		buf = appendRepeat(buf, '\n', to.Row())
		column = 0
	} else if rows := to.Row() - from.Row(); rows > 0 {
		buf = appendRepeat(buf, '\n', rows)
		column = 0
	}
	cols := to.Column() - column
	buf = appendRepeat(buf, '_', cols/3)
	buf = appendRepeat(buf, ' ', cols%3)
	return buf
}

func appendRepeat(buf []byte, b byte, n int) []byte {
	for ; n > 0; n-- {
		buf = append(buf, b)
	}
	return buf
}

// AppendInstruction appends the token of a non Empty instruction to buf.
// It panics for the Empty instruction, or if the token table does not fit
// the instruction's payload.
func AppendInstruction(buf []byte, ins program.Instruction) []byte {
	parts, ok := tokenParts(ins.ID())
	if !ok {
		panic(fmt.Sprintf("ntf: no token for %v", ins.ID()))
	}
	for _, p := range parts {
		if p.lit == 0 {
			buf = append(buf, p.text...)
			continue
		}
		buf = appendLiteral(buf, ins, p.lit)
	}
	return buf
}

func appendLiteral(buf []byte, ins program.Instruction, lt program.LiteralType) []byte {
	switch lt {
	case program.LabelIdentifier:
		if label, ok := ins.Label(); ok {
			return append(buf, label.String()...)
		}
	case program.String:
		if text, ok := ins.Text(); ok {
			return append(buf, text.String()...)
		}
	case program.VariableIdentifier:
		if name, _, ok := ins.VarCmp(); ok {
			return append(buf, name.String()...)
		}
	case program.VariableValue:
		if _, value, ok := ins.VarCmp(); ok {
			return strconv.AppendInt(buf, int64(value.Value()), 10)
		}
	}
	panic(fmt.Sprintf("ntf: %v placeholder does not fit %v instruction %v", lt, ins.Kind(), ins.ID()))
}
