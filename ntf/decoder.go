package ntf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/m3c/internal/runeio"
	"github.com/jcorbin/m3c/program"
)

// Magic must start every New Text Format document.
const Magic = '$'

// CapacityError aborts decoding when a token would place an instruction or
// move the cursor past the last program slot.
type CapacityError struct {
	At  CharPosition
	Err error
}

func (err CapacityError) Error() string {
	return fmt.Sprintf("program capacity exceeded at %v: %v", err.At, err.Err)
}

func (err CapacityError) Unwrap() error { return err.Err }

// Decoder decodes New Text Format into a Program, recovering from unknown
// tokens and invalid literals by recording Diagnostics.
type Decoder struct {
	core
	sc *runeio.Scanner

	prog     *program.Program
	pos      program.Position
	full     bool
	overflow error

	run   illegalRun
	diags Diagnostics
}

// illegalRun tracks a sequence of characters that start no known token.
type illegalRun struct {
	active     bool
	start, end CharPosition
	text       strings.Builder
}

// registers hold the literals of the token being decoded along with any
// problems found scanning them; they only take effect once the token
// completes.
type registers struct {
	label program.LabelLiteral
	text  program.StringLiteral
	name  program.VariableLiteral
	value program.ValueLiteral
	diags Diagnostics
}

// decoded is a complete token: either a directive or an instruction.
type decoded struct {
	at  CharPosition
	dir directive
	ins program.Instruction
}

// Decode decodes text into prog, see Decoder.Decode.
func Decode(prog *program.Program, text string, opts ...Option) (Diagnostics, error) {
	return NewDecoder(strings.NewReader(text), opts...).Decode(prog)
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	dec := &Decoder{sc: runeio.NewScanner(r)}
	dec.apply(opts...)
	return dec
}

// Decode resets prog and then reads the rest of the input into it.
//
// A nil error with no diagnostics means a clean decode; diagnostics with a
// nil error mean the program was decoded with caveats. A non-nil error
// aborts decoding: a CapacityError, or an error from the underlying reader.
// The diagnostics so far and the partial program are still valid then.
func (dec *Decoder) Decode(prog *program.Program) (Diagnostics, error) {
	defer dec.withLogPrefix("decode: ")()

	prog.Reset()
	dec.prog = prog
	dec.pos = program.Position{}
	dec.full, dec.overflow = false, nil
	dec.resetRun()
	dec.diags = nil

	if err := dec.checkMagic(); err != nil {
		return dec.diags, err
	}

	for {
		tok, regs, err := dec.nextToken()
		if err == io.EOF {
			dec.flushRun()
			return dec.diags, nil
		} else if err != nil {
			return dec.diags, err
		}
		dec.flushRun()
		for _, d := range regs.diags {
			dec.report(d)
		}
		if err := dec.exec(tok); err != nil {
			return dec.diags, err
		}
	}
}

func (dec *Decoder) checkMagic() error {
	r, _, err := dec.sc.ReadRune()
	if err == nil && r == Magic {
		return nil
	}
	dec.report(Diagnostic{ID: NoMagicFound})
	if err == io.EOF {
		return nil
	} else if err != nil {
		return err
	}
	return dec.sc.UnreadRune()
}

func (dec *Decoder) report(d Diagnostic) {
	dec.logf("%v", d)
	dec.diags = append(dec.diags, d)
}

// extendRun adds the characters captured since the current token started to
// the illegal run.
func (dec *Decoder) extendRun(start, end CharPosition) {
	if !dec.run.active {
		dec.run.active = true
		dec.run.start = start
	}
	dec.run.end = end
	dec.run.text.WriteString(dec.sc.Captured())
}

func (dec *Decoder) flushRun() {
	if !dec.run.active {
		return
	}
	d := Diagnostic{UnknownToken, dec.run.start, dec.run.end}
	dec.logf("%v: %v", d, runeio.Quote(dec.run.text.String()))
	dec.diags = append(dec.diags, d)
	dec.resetRun()
}

func (dec *Decoder) resetRun() {
	dec.run.active = false
	dec.run.start, dec.run.end = CharPosition{}, CharPosition{}
	dec.run.text.Reset()
}

// nextToken reads until a token completes, extending the illegal run over
// anything that does not start or continue a token. It returns io.EOF once
// the input ends, even if that happens inside a token.
func (dec *Decoder) nextToken() (decoded, registers, error) {
	for {
		dec.sc.Capture()
		r, _, err := dec.sc.ReadRune()
		if err != nil {
			return decoded{}, registers{}, err
		}
		start := dec.sc.Last()
		nd := root.child(r)
		if nd == nil {
			dec.extendRun(start, start)
			continue
		}
		if tok, regs, ok, err := dec.walk(nd, start); err != nil || ok {
			return tok, regs, err
		}
	}
}

// walk follows the trie from the node reached by a token's first character.
// On a mismatch the illegal run is extended up to the last matched character
// and the mismatching rune is pushed back to be retried as a token start.
func (dec *Decoder) walk(nd *node, start CharPosition) (tok decoded, regs registers, ok bool, err error) {
	tok.at = start
	last := start
	for {
		switch nd.kind {
		case commandNode:
			tok.dir = nd.dir
			return tok, regs, true, nil

		case idNode:
			tok.ins = regs.instruction(nd.id)
			return tok, regs, true, nil

		case literalNode:
			if err := regs.scan(dec.sc, nd.lit); err != nil {
				return tok, regs, false, err
			}
			last = dec.sc.Last()
			nd = nd.next

		case charsNode:
			r, _, err := dec.sc.ReadRune()
			if err == io.EOF {
				dec.extendRun(start, last)
				return tok, regs, false, io.EOF
			} else if err != nil {
				return tok, regs, false, err
			}
			child := nd.child(r)
			if child == nil {
				err := dec.sc.UnreadRune()
				dec.extendRun(start, last)
				return tok, regs, false, err
			}
			last = dec.sc.Last()
			nd = child

		default:
			panic(fmt.Sprintf("ntf: invalid trie node kind %v", nd.kind))
		}
	}
}

// scan reads a literal of the given type into its register. Literals that
// are too long are truncated and invalid values are zeroed; both are noted
// for an InvalidLiteral diagnostic.
func (regs *registers) scan(sc *runeio.Scanner, lt program.LiteralType) (err error) {
	var (
		litStart = sc.Next()
		n        int
		invalid  bool
	)
	switch lt {
	case program.LabelIdentifier:
		regs.label, n, err = program.ScanLabelLiteral(sc)
	case program.String:
		regs.text, n, err = program.ScanStringLiteral(sc)
	case program.VariableIdentifier:
		regs.name, n, err = program.ScanVariableLiteral(sc)
	case program.VariableValue:
		regs.value, _, err = program.ScanValueLiteral(sc)
		var valErr program.IllegalVariableValueError
		if errors.As(err, &valErr) {
			err, invalid = nil, true
		}
	default:
		panic(fmt.Sprintf("ntf: invalid literal type %v", lt))
	}
	if err != nil {
		return err
	}
	if invalid || n > program.MaxIdentifierLength {
		end := sc.Last()
		if end.Index < litStart.Index {
			end = litStart
		}
		regs.diags = append(regs.diags, Diagnostic{InvalidLiteral, litStart, end})
	}
	return nil
}

// instruction builds the instruction for a completed token.
func (regs *registers) instruction(id program.InstructionID) program.Instruction {
	var (
		ins program.Instruction
		err error
	)
	switch id.Kind() {
	case program.SimpleKind:
		ins, err = program.NewSimple(id)
	case program.LabelKind:
		ins, err = program.NewLabel(id, regs.label)
	case program.VarCmpKind:
		ins, err = program.NewVarCmp(id, regs.name, regs.value)
	case program.StringKind:
		ins, err = program.NewString(id, regs.text)
	}
	if err != nil {
		panic(fmt.Sprintf("ntf: token table holds %v: %v", id, err))
	}
	return ins
}

// exec places an instruction or moves the cursor for a directive. Once an
// instruction fills the last slot, the next token of either kind is fatal.
func (dec *Decoder) exec(tok decoded) error {
	if dec.full {
		return CapacityError{tok.at, dec.overflow}
	}
	if tok.dir != 0 {
		if err := tok.dir.move(&dec.pos); err != nil {
			return CapacityError{tok.at, err}
		}
		dec.logf("%v to %v", tok.dir, dec.pos)
		return nil
	}
	dec.prog.Put(dec.pos, tok.ins)
	dec.logf("place %v @%v", tok.ins, dec.pos)
	if err := dec.pos.MoveForward(); err != nil {
		dec.full, dec.overflow = true, err
	}
	return nil
}
