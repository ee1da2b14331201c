package runeio

import (
	"errors"
	"fmt"
	"io"
)

// Pos locates a rune by its rune index, line and column, all zero based.
type Pos struct {
	Index  int
	Line   int
	Column int
}

// String formats the position as one based "line:column".
func (pos Pos) String() string { return fmt.Sprintf("%v:%v", pos.Line+1, pos.Column+1) }

// ErrUnread is returned by UnreadRune when there is no rune to push back.
var ErrUnread = errors.New("runeio: no rune to unread")

// Scanner is an io.RuneScanner that tracks the position of every rune it
// hands out. A line feed ends its line: the rune after it starts at column 0
// of the next line.
type Scanner struct {
	rr io.RuneReader

	next Pos // position of the next rune to be read
	last Pos // position of the last rune read
	prev Pos // last, before the last read; restored by UnreadRune

	r      rune
	size   int
	have   bool
	backed bool

	capturing bool
	captured  []rune
}

// NewScanner scans runes from r, see NewReader.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{rr: NewReader(r)}
}

// ReadRune reads the next rune, advancing Next and Last.
func (sc *Scanner) ReadRune() (rune, int, error) {
	if sc.backed {
		sc.backed = false
	} else {
		r, size, err := sc.rr.ReadRune()
		if err != nil {
			return 0, 0, err
		}
		sc.r, sc.size = r, size
	}
	sc.have = true
	if sc.capturing {
		sc.captured = append(sc.captured, sc.r)
	}
	sc.prev = sc.last
	sc.last = sc.next
	sc.next.Index++
	if sc.r == '\n' {
		sc.next.Line++
		sc.next.Column = 0
	} else {
		sc.next.Column++
	}
	return sc.r, sc.size, nil
}

// UnreadRune pushes back the last rune read; only one rune may be pushed
// back at a time.
func (sc *Scanner) UnreadRune() error {
	if !sc.have || sc.backed {
		return ErrUnread
	}
	sc.backed = true
	if n := len(sc.captured); sc.capturing && n > 0 {
		sc.captured = sc.captured[:n-1]
	}
	sc.next = sc.last
	sc.last = sc.prev
	return nil
}

// Next returns the position of the rune that the next ReadRune will return.
func (sc *Scanner) Next() Pos { return sc.next }

// Last returns the position of the most recently read rune, or the zero Pos
// before any read.
func (sc *Scanner) Last() Pos { return sc.last }

// Capture starts recording the runes read, dropping any earlier record.
// Runes pushed back by UnreadRune are taken off the record.
func (sc *Scanner) Capture() {
	sc.capturing = true
	sc.captured = sc.captured[:0]
}

// Captured returns the runes read since the last Capture.
func (sc *Scanner) Captured() string { return string(sc.captured) }
