package ntf

import (
	"fmt"
	"strings"

	"github.com/jcorbin/m3c/internal/runeio"
)

// CharPosition locates a source character: rune index, line and column, all
// zero based. Line feeds end lines.
type CharPosition = runeio.Pos

// DiagnosticID identifies a kind of recoverable decoding problem.
type DiagnosticID uint8

// Diagnostic ids.
const (
	NoMagicFound   DiagnosticID = 1 // N01
	UnknownToken   DiagnosticID = 2 // N02
	InvalidLiteral DiagnosticID = 3 // N03
)

// String returns the prefixed id, e.g. "N02".
func (id DiagnosticID) String() string { return fmt.Sprintf("N%02d", uint8(id)) }

// Message describes the diagnostic kind.
func (id DiagnosticID) Message() string {
	switch id {
	case NoMagicFound:
		return "no magic ('$') found at the start of the line"
	case UnknownToken:
		return "unknown token found"
	case InvalidLiteral:
		return "invalid literal, too long or out of range"
	}
	return "unknown diagnostic"
}

// Diagnostic is a recoverable problem found while decoding, spanning the
// inclusive source range Start..End.
type Diagnostic struct {
	ID    DiagnosticID
	Start CharPosition
	End   CharPosition
}

// Position returns the start of the range.
func (d Diagnostic) Position() CharPosition { return d.Start }

// String renders "line:col[-line:col]: [Nxx] message" with one based
// positions; single character ranges print only their start.
func (d Diagnostic) String() string {
	if d.End != d.Start {
		return fmt.Sprintf("%v-%v: [%v] %v", d.Start, d.End, d.ID, d.ID.Message())
	}
	return fmt.Sprintf("%v: [%v] %v", d.Start, d.ID, d.ID.Message())
}

// Diagnostics lists diagnostics in source order.
type Diagnostics []Diagnostic

// String renders one diagnostic per line.
func (ds Diagnostics) String() string {
	var sb strings.Builder
	for i, d := range ds {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.String())
	}
	return sb.String()
}

// Count returns how many diagnostics have the given id.
func (ds Diagnostics) Count(id DiagnosticID) (n int) {
	for _, d := range ds {
		if d.ID == id {
			n++
		}
	}
	return n
}
