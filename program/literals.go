package program

import (
	"fmt"
	"io"
	"strconv"
)

// MaxIdentifierLength is the longest label, string, or variable identifier.
const MaxIdentifierLength = 3

// Variable values are limited to this inclusive range.
const (
	MinVariableValue = -9999
	MaxVariableValue = 99999
)

// LiteralType names the kind of literal embedded in an instruction token.
type LiteralType uint8

// Literal types; the zero value is deliberately not a literal.
const (
	LabelIdentifier LiteralType = iota + 1
	String
	VariableIdentifier
	VariableValue
)

func (lt LiteralType) String() string {
	switch lt {
	case LabelIdentifier:
		return "label identifier"
	case String:
		return "string"
	case VariableIdentifier:
		return "variable identifier"
	case VariableValue:
		return "variable value"
	}
	return fmt.Sprintf("LiteralType(%d)", uint8(lt))
}

// IllegalCharError indicates a character that may not appear in a literal.
type IllegalCharError struct {
	Index int
	Char  rune
}

func (err IllegalCharError) Error() string {
	return fmt.Sprintf("illegal literal character %q at index %v", err.Char, err.Index)
}

// LiteralTooLongError indicates an identifier over MaxIdentifierLength.
type LiteralTooLongError struct {
	Length int
}

func (err LiteralTooLongError) Error() string {
	return fmt.Sprintf("literal is too long: %v characters, at most %v allowed", err.Length, MaxIdentifierLength)
}

// IllegalVariableValueError indicates a variable value out of range, or text
// that holds no digits at all.
type IllegalVariableValueError struct {
	Text string
}

func (err IllegalVariableValueError) Error() string {
	return fmt.Sprintf("illegal variable value %q, must be an integer in [%v, %v]",
		err.Text, MinVariableValue, MaxVariableValue)
}

func isIdentifierChar(r rune) bool {
	return ('0' <= r && r <= '9') ||
		('A' <= r && r <= 'Z') ||
		('a' <= r && r <= 'z')
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// identifier holds up to MaxIdentifierLength characters followed by a NUL
// terminator; unused tail bytes are always zero.
type identifier struct {
	data [MaxIdentifierLength + 1]byte
}

func newIdentifier(s string) (id identifier, err error) {
	if len(s) > MaxIdentifierLength {
		return id, LiteralTooLongError{len(s)}
	}
	for i, r := range s {
		if !isIdentifierChar(r) {
			return identifier{}, IllegalCharError{i, r}
		}
		id.data[i] = byte(r)
	}
	return id, nil
}

func identifierFromBuffer(buf [MaxIdentifierLength + 1]byte) (identifier, error) {
	end := false
	for i, b := range buf {
		switch {
		case b == 0:
			end = true
		case end || i == MaxIdentifierLength || !isIdentifierChar(rune(b)):
			return identifier{}, IllegalCharError{i, rune(b)}
		}
	}
	return identifier{buf}, nil
}

// scanIdentifier consumes identifier characters from rs until it reads any
// other rune, which is pushed back. Characters past MaxIdentifierLength are
// consumed and counted but not stored.
func scanIdentifier(rs io.RuneScanner) (id identifier, n int, err error) {
	for {
		r, _, err := rs.ReadRune()
		if err == io.EOF {
			return id, n, nil
		} else if err != nil {
			return id, n, err
		}
		if !isIdentifierChar(r) {
			return id, n, rs.UnreadRune()
		}
		if n < MaxIdentifierLength {
			id.data[n] = byte(r)
		}
		n++
	}
}

// Len returns the number of stored characters.
func (id identifier) Len() int {
	for i, b := range id.data {
		if b == 0 {
			return i
		}
	}
	return len(id.data)
}

func (id identifier) String() string { return string(id.data[:id.Len()]) }

// Buffer returns the NUL terminated storage.
func (id identifier) Buffer() [MaxIdentifierLength + 1]byte { return id.data }

// LabelLiteral names a jump target.
type LabelLiteral struct{ identifier }

// StringLiteral is a short debug string.
type StringLiteral struct{ identifier }

// VariableLiteral names a variable.
type VariableLiteral struct{ identifier }

// NewLabelLiteral validates s as a label identifier.
func NewLabelLiteral(s string) (LabelLiteral, error) {
	id, err := newIdentifier(s)
	return LabelLiteral{id}, err
}

// NewStringLiteral validates s as a string literal.
func NewStringLiteral(s string) (StringLiteral, error) {
	id, err := newIdentifier(s)
	return StringLiteral{id}, err
}

// NewVariableLiteral validates s as a variable identifier.
func NewVariableLiteral(s string) (VariableLiteral, error) {
	id, err := newIdentifier(s)
	return VariableLiteral{id}, err
}

// LabelLiteralFromBuffer validates a NUL terminated buffer; the returned
// IllegalCharError carries the offset of the first offending byte.
func LabelLiteralFromBuffer(buf [MaxIdentifierLength + 1]byte) (LabelLiteral, error) {
	id, err := identifierFromBuffer(buf)
	return LabelLiteral{id}, err
}

// StringLiteralFromBuffer is like LabelLiteralFromBuffer.
func StringLiteralFromBuffer(buf [MaxIdentifierLength + 1]byte) (StringLiteral, error) {
	id, err := identifierFromBuffer(buf)
	return StringLiteral{id}, err
}

// VariableLiteralFromBuffer is like LabelLiteralFromBuffer.
func VariableLiteralFromBuffer(buf [MaxIdentifierLength + 1]byte) (VariableLiteral, error) {
	id, err := identifierFromBuffer(buf)
	return VariableLiteral{id}, err
}

// ScanLabelLiteral greedily reads a label identifier from rs, returning the
// number of runes consumed; the rune that stopped the scan is unread.
// A count over MaxIdentifierLength means the literal was truncated.
func ScanLabelLiteral(rs io.RuneScanner) (LabelLiteral, int, error) {
	id, n, err := scanIdentifier(rs)
	return LabelLiteral{id}, n, err
}

// ScanStringLiteral is like ScanLabelLiteral.
func ScanStringLiteral(rs io.RuneScanner) (StringLiteral, int, error) {
	id, n, err := scanIdentifier(rs)
	return StringLiteral{id}, n, err
}

// ScanVariableLiteral is like ScanLabelLiteral.
func ScanVariableLiteral(rs io.RuneScanner) (VariableLiteral, int, error) {
	id, n, err := scanIdentifier(rs)
	return VariableLiteral{id}, n, err
}

// ValueLiteral is a variable comparison operand.
type ValueLiteral struct {
	value int32
}

// NewValueLiteral checks that n is within [MinVariableValue, MaxVariableValue].
func NewValueLiteral(n int) (ValueLiteral, error) {
	if n < MinVariableValue || n > MaxVariableValue {
		return ValueLiteral{}, IllegalVariableValueError{strconv.Itoa(n)}
	}
	return ValueLiteral{int32(n)}, nil
}

// Value returns the integer value.
func (v ValueLiteral) Value() int { return int(v.value) }

func (v ValueLiteral) String() string { return strconv.Itoa(int(v.value)) }

// ScanValueLiteral greedily reads an optional '-' followed by digits from
// rs, unreading the rune that stopped the scan, and returns the number of
// runes consumed. Digits are weighted most significant first and the sign
// is applied last. A scan without digits, or one whose value is out of
// range, returns a zero literal and an IllegalVariableValueError.
func ScanValueLiteral(rs io.RuneScanner) (ValueLiteral, int, error) {
	var (
		text   []byte
		digits []byte
		n      int
	)
	for {
		r, _, err := rs.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return ValueLiteral{}, n, err
		}
		if r == '-' && n == 0 {
			text = append(text, '-')
		} else if isDigit(r) {
			text = append(text, byte(r))
			digits = append(digits, byte(r-'0'))
		} else {
			if err := rs.UnreadRune(); err != nil {
				return ValueLiteral{}, n, err
			}
			break
		}
		n++
	}

	if len(digits) == 0 {
		return ValueLiteral{}, n, IllegalVariableValueError{string(text)}
	}
	for len(digits) > 1 && digits[0] == 0 {
		digits = digits[1:]
	}
	// anything longer could only be out of range, and could overflow below
	const maxDigits = 6
	if len(digits) > maxDigits {
		return ValueLiteral{}, n, IllegalVariableValueError{string(text)}
	}

	value, weight := 0, 1
	for i := len(digits) - 1; i >= 0; i-- {
		value += int(digits[i]) * weight
		weight *= 10
	}
	if text[0] == '-' {
		value = -value
	}
	lit, err := NewValueLiteral(value)
	if err != nil {
		return ValueLiteral{}, n, IllegalVariableValueError{string(text)}
	}
	return lit, n, nil
}
