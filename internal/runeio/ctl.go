package runeio

import (
	"strconv"
	"strings"
)

// ControlRune represents a named control unicode codepoint.
type ControlRune struct {
	N string
	R rune
}

// C0Ctls contains the classic ASCII control characters.
var C0Ctls = [32]ControlRune{
	{"<NUL>", 0x00},
	{"<SOH>", 0x01},
	{"<STX>", 0x02},
	{"<ETX>", 0x03},
	{"<EOT>", 0x04},
	{"<ENQ>", 0x05},
	{"<ACK>", 0x06},
	{"<BEL>", 0x07},
	{"<BS>", 0x08},
	{"<HT>", 0x09},
	{"<NL>", 0x0A},
	{"<VT>", 0x0B},
	{"<NP>", 0x0C},
	{"<CR>", 0x0D},
	{"<SO>", 0x0E},
	{"<SI>", 0x0F},
	{"<DLE>", 0x10},
	{"<DC1>", 0x11},
	{"<DC2>", 0x12},
	{"<DC3>", 0x13},
	{"<DC4>", 0x14},
	{"<NAK>", 0x15},
	{"<SYN>", 0x16},
	{"<ETB>", 0x17},
	{"<CAN>", 0x18},
	{"<EM>", 0x19},
	{"<SUB>", 0x1A},
	{"<ESC>", 0x1B},
	{"<FS>", 0x1C},
	{"<GS>", 0x1D},
	{"<RS>", 0x1E},
	{"<US>", 0x1F},
}

// PseudoCtls provides the typical mneumonics for space and delete.
var PseudoCtls = [2]ControlRune{
	{"<SP>", 0x20},
	{"<DEL>", 0x7F},
}

// ControlName returns the mnemonic of a C0 control, space or delete rune, or
// "" for any other rune.
func ControlName(r rune) string {
	switch {
	case 0 <= r && r < 0x20:
		return C0Ctls[r].N
	case r == PseudoCtls[0].R:
		return PseudoCtls[0].N
	case r == PseudoCtls[1].R:
		return PseudoCtls[1].N
	}
	return ""
}

// Quote renders source text for a one line message: printable ASCII is kept,
// controls and spaces become mnemonics like <NL>, anything else is escaped
// like strconv.QuoteRuneToASCII does.
func Quote(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if name := ControlName(r); name != "" {
			sb.WriteString(name)
		} else if r < 0x80 {
			sb.WriteRune(r)
		} else {
			q := strconv.QuoteRuneToASCII(r)
			sb.WriteString(q[1 : len(q)-1])
		}
	}
	return sb.String()
}
