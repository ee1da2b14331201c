package ntf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/m3c/program"
)

func Test_Encode_fixtures(t *testing.T) {
	for _, tc := range []struct {
		name string
		prog func(t *testing.T) *program.Program
		text string
	}{
		{"all simple", allSimpleProgram, allSimpleText},
		{"commands", commandsProgram, commandsText},
		{"literals", literalsProgram, literalsText},
		{"empty", func(t *testing.T) *program.Program { return &program.Program{} }, "$"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.text, Encode(tc.prog(t), WithLogf(t.Logf)))
		})
	}
}

func Test_Encode_deltas(t *testing.T) {
	pb := newProgramBuilder(t)
	for _, tc := range []struct {
		name     string
		from, to program.Position
		delta    string
	}{
		{"none", pb.at(0, 0, 0), pb.at(0, 0, 0), ""},
		{"one column", pb.at(0, 0, 0), pb.at(0, 0, 1), " "},
		{"two columns", pb.at(0, 0, 3), pb.at(0, 0, 5), "  "},
		{"three columns", pb.at(0, 0, 1), pb.at(0, 0, 4), "_"},
		{"rest of row", pb.at(0, 0, 0), pb.at(0, 0, 15), "_____"},
		{"eight columns", pb.at(2, 3, 4), pb.at(2, 3, 12), "__  "},
		{"next row", pb.at(0, 0, 9), pb.at(0, 1, 0), "\n"},
		{"rows then columns", pb.at(0, 0, 9), pb.at(0, 3, 7), "\n\n\n__ "},
		{"next page", pb.at(0, 4, 5), pb.at(1, 0, 0), "~"},
		{"pages rows columns", pb.at(0, 4, 5), pb.at(3, 2, 1), "~~~\n\n "},
		{"last slot", pb.at(0, 0, 0), pb.at(15, 11, 15), "~~~~~~~~~~~~~~~\n\n\n\n\n\n\n\n\n\n\n_____"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			delta := string(appendDelta(nil, tc.from, tc.to))
			assert.Equal(t, tc.delta, delta)

			// the delta must land exactly on the target
			pos := tc.from
			for _, r := range delta {
				nd := root.child(r)
				require.NotNil(t, nd)
				require.Equal(t, commandNode, nd.kind)
				require.NoError(t, nd.dir.move(&pos))
			}
			assert.Equal(t, tc.to, pos)
		})
	}

	assert.Panics(t, func() {
		appendDelta(nil, pb.at(0, 0, 2), pb.at(0, 0, 1))
	}, "must not move backwards")
}

func Test_Encode_roundTrip(t *testing.T) {
	pb := newProgramBuilder(t)
	for _, tc := range []struct {
		name string
		prog func() *program.Program
	}{
		{"consecutive", func() *program.Program {
			return &newProgramBuilder(t).simpleSeq(program.MoveW, program.MoveS).prog
		}},
		{"sparse", func() *program.Program {
			var prog program.Program
			prog.Put(pb.at(0, 0, 7), pb.label(program.Label, "a"))
			prog.Put(pb.at(0, 5, 1), pb.varCmp(program.VarLess, "x", -9999))
			prog.Put(pb.at(4, 11, 15), pb.simple(program.CcGun))
			prog.Put(pb.at(5, 0, 0), pb.label(program.GoTo, "a"))
			prog.Put(pb.at(15, 11, 15), pb.str(program.DebugBreak, "end"))
			return &prog
		}},
		{"every instruction", func() *program.Program {
			var prog program.Program
			for i, id := range program.InstructionIDs() {
				var ins program.Instruction
				switch id.Kind() {
				case program.SimpleKind:
					ins = pb.simple(id)
				case program.LabelKind:
					ins = pb.label(id, "L1")
				case program.VarCmpKind:
					ins = pb.varCmp(id, "v", 99999)
				case program.StringKind:
					ins = pb.str(id, "s0z")
				}
				prog[i*5] = ins // Empty included
			}
			return &prog
		}},
		{"full", func() *program.Program {
			var prog program.Program
			for i := range prog {
				prog[i] = pb.label(program.IfGoTo, "x")
			}
			return &prog
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			want := tc.prog()
			text := Encode(want)
			for _, b := range []byte(text) {
				require.Less(t, b, byte(0x80), "output must be ascii")
			}

			var got program.Program
			diags, err := Decode(&got, text)
			require.NoError(t, err)
			assert.Empty(t, diags)
			assert.Equal(t, *want, got)
			assert.Equal(t, text, Encode(&got), "re-encode must be stable")
		})
	}
}

func Test_Encoder_writer(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.Encode(commandsProgram(t)))
	require.NoError(t, enc.Encode(literalsProgram(t)))
	assert.Equal(t, commandsText+literalsText, buf.String())
}

func Test_AppendInstruction(t *testing.T) {
	pb := newProgramBuilder(t)
	buf := []byte("$")
	buf = AppendInstruction(buf, pb.varCmp(program.VarMore, "va2", -5))
	buf = AppendInstruction(buf, pb.simple(program.RotateCw))
	buf = AppendInstruction(buf, pb.label(program.OnResp, ""))
	assert.Equal(t, "$(va2>-5)CW;#R<", string(buf))

	assert.Panics(t, func() {
		AppendInstruction(nil, program.Instruction{})
	}, "empty has no token")
}

func Test_appendLiteral_mismatch(t *testing.T) {
	pb := newProgramBuilder(t)
	assert.Panics(t, func() {
		appendLiteral(nil, pb.simple(program.MoveW), program.LabelIdentifier)
	})
	assert.Panics(t, func() {
		appendLiteral(nil, pb.label(program.GoTo, "a"), program.VariableValue)
	})
}
