/*
Package ntf reads and writes programs in the New Text Format.

A document starts with the magic character '$', followed by a stream of
tokens. Every instruction token places its instruction at the cursor and
advances the cursor by one slot. Four directive tokens only move the cursor:

	' '   one step forward
	'_'   three steps forward
	'\n'  to the start of the next row
	'~'   to the start of the next page

Instruction tokens are short punctuation sequences such as "^W" (move W) or
"<|" (return). Some carry literal payloads: labels, strings and variable
names are up to three characters, values are integers within the value
literal range, as in "|lp:" (label lp) or "(x<-5)" (is variable x less than -5).

The Decoder recovers from anything it does not understand: characters that
start no token, and characters breaking off a token, are gathered into runs
reported as a single UnknownToken Diagnostic; a bad literal is reported as
InvalidLiteral, keeping the first three characters of a long name or
reading a bad value as 0. Only running out of program slots, or an error
from the underlying reader, stops decoding.

The Encoder writes the canonical form: directives chosen for the shortest
path between occupied slots, nothing after the last instruction.
*/
package ntf
