package ntf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcorbin/m3c/program"
)

const allSimpleText = "$<|<-|<=|" +
	"^F^W^D^S^A" +
	"adswzghrbq," +
	"[F][W][WA][D][DW][S][SD][A][AS][r][l][f][w][d][s][a]" +
	"=G=n=e=f=c=a=b=s=k=d=A" +
	"=B=K=g=y=r=o=q=x=R" +
	"=hp50=hp-" +
	"#S#E" +
	"B1;B3;B2;BEEP;RAND;VB;GEO;ZZ;POLY;C190;CRAFT;UP;NANO;REM;" +
	"BUILD;DIGG;HEAL;MINE;" +
	"AUT+AUT-AGR+AGR-" +
	"ANDOR" +
	"CCW;CW;" +
	"FLIP;" +
	"FILL;" +
	"iaidisiw" +
	"Hand+Hand-" +
	"<|"

var allSimpleIDs = []program.InstructionID{
	program.Return, program.Return1, program.ReturnF,
	program.MoveF, program.MoveW, program.MoveD, program.MoveS, program.MoveA,
	program.LookA, program.LookD, program.LookS, program.LookW,
	program.Digg, program.ActionGeo, program.ActionHeal, program.ActionRoad,
	program.ActionBuild, program.ActionQuadro, program.Back,
	program.CellF, program.CellW, program.CellWa, program.CellD, program.CellDw,
	program.CellS, program.CellSd, program.CellA, program.CellAs,
	program.CellRightHand, program.CellLeftHand,
	program.CellFf, program.CellWw, program.CellDd, program.CellSs, program.CellAa,
	program.CcGun, program.CcNotEmpty, program.CcEmpty, program.CcGravity,
	program.CcCrystall, program.CcAlive, program.CcBolder, program.CcSand,
	program.CcRock, program.CcDead, program.CcAcid,
	program.CccBlackRock, program.CccRedRock, program.CccGreenBlock,
	program.CccYellowBlock, program.CccRedBlock, program.CccOpor,
	program.CccQuadro, program.CccBox, program.CccRoad,
	program.CbHp50, program.CbHp,
	program.Start, program.End,
	program.ActionB1, program.ActionB2, program.ActionB3,
	program.ActionBibika, program.ActionRandom, program.ActionWb,
	program.ActionGeopack, program.ActionZm, program.ActionPoly,
	program.ActionC190, program.ActionCraft, program.ActionUp,
	program.ActionNano, program.ActionRembot,
	program.StdBuild, program.StdDigg, program.StdHeal, program.StdMine,
	program.ModeAutodiggOn, program.ModeAutodiggOff,
	program.ModeAgrOn, program.ModeAgrOff,
	program.BoolModeAnd, program.BoolModeOr,
	program.RotateCcw, program.RotateCw,
	program.ProgFlip, program.FillGun,
	program.InvDirA, program.InvDirD, program.InvDirS, program.InvDirW,
	program.HandModeOn, program.HandModeOff,
	program.Return,
}

const commandsText = "$^W\n^A~^D_^F ^S"

const literalsText = "$" +
	"|:|hi:|012:" +
	">abc|:>zxc>->s12>=>sbf>" +
	"!?if<?ifn<" +
	"#Rrsp<" +
	"(va0<0)(a=99999)(va2>-5)" +
	"{dst}!{bp}"

// programBuilder fills a program slot by slot.
type programBuilder struct {
	t    *testing.T
	prog program.Program
}

func newProgramBuilder(t *testing.T) *programBuilder { return &programBuilder{t: t} }

func (pb *programBuilder) at(page, row, column int) program.Position {
	pos, err := program.NewPosition(page, row, column)
	require.NoError(pb.t, err)
	return pos
}

func (pb *programBuilder) put(index int, ins program.Instruction) *programBuilder {
	pos, err := program.PositionOf(index)
	require.NoError(pb.t, err)
	pb.prog.Put(pos, ins)
	return pb
}

func (pb *programBuilder) simple(id program.InstructionID) program.Instruction {
	ins, err := program.NewSimple(id)
	require.NoError(pb.t, err)
	return ins
}

func (pb *programBuilder) label(id program.InstructionID, s string) program.Instruction {
	label, err := program.NewLabelLiteral(s)
	require.NoError(pb.t, err)
	ins, err := program.NewLabel(id, label)
	require.NoError(pb.t, err)
	return ins
}

func (pb *programBuilder) varCmp(id program.InstructionID, name string, value int) program.Instruction {
	nameLit, err := program.NewVariableLiteral(name)
	require.NoError(pb.t, err)
	valueLit, err := program.NewValueLiteral(value)
	require.NoError(pb.t, err)
	ins, err := program.NewVarCmp(id, nameLit, valueLit)
	require.NoError(pb.t, err)
	return ins
}

func (pb *programBuilder) str(id program.InstructionID, s string) program.Instruction {
	lit, err := program.NewStringLiteral(s)
	require.NoError(pb.t, err)
	ins, err := program.NewString(id, lit)
	require.NoError(pb.t, err)
	return ins
}

// seq puts the given instructions at consecutive slots from index 0.
func (pb *programBuilder) seq(inss ...program.Instruction) *programBuilder {
	for i, ins := range inss {
		pb.put(i, ins)
	}
	return pb
}

func (pb *programBuilder) simpleSeq(ids ...program.InstructionID) *programBuilder {
	for i, id := range ids {
		pb.put(i, pb.simple(id))
	}
	return pb
}

func allSimpleProgram(t *testing.T) *program.Program {
	return &newProgramBuilder(t).simpleSeq(allSimpleIDs...).prog
}

func commandsProgram(t *testing.T) *program.Program {
	pb := newProgramBuilder(t)
	pb.prog.Put(pb.at(0, 0, 0), pb.simple(program.MoveW))
	pb.prog.Put(pb.at(0, 1, 0), pb.simple(program.MoveA))
	pb.prog.Put(pb.at(1, 0, 0), pb.simple(program.MoveD))
	pb.prog.Put(pb.at(1, 0, 4), pb.simple(program.MoveF))
	pb.prog.Put(pb.at(1, 0, 6), pb.simple(program.MoveS))
	return &pb.prog
}

func literalsProgram(t *testing.T) *program.Program {
	pb := newProgramBuilder(t)
	return &pb.seq(
		pb.label(program.Label, ""),
		pb.label(program.Label, "hi"),
		pb.label(program.Label, "012"),
		pb.label(program.GoTo, "abc"),
		pb.label(program.GoSub, "zxc"),
		pb.label(program.GoSub1, "s12"),
		pb.label(program.GoSubF, "sbf"),
		pb.label(program.IfGoTo, "if"),
		pb.label(program.IfNotGoTo, "ifn"),
		pb.label(program.OnResp, "rsp"),
		pb.varCmp(program.VarLess, "va0", 0),
		pb.varCmp(program.VarEqual, "a", 99999),
		pb.varCmp(program.VarMore, "va2", -5),
		pb.str(program.DebugSet, "dst"),
		pb.str(program.DebugBreak, "bp"),
	).prog
}

// cp builds a CharPosition on a single line document.
func cp(index int) CharPosition { return CharPosition{Index: index, Column: index} }
