package program

import "fmt"

// InstructionID identifies an instruction.
//
// Values are taken from the game client and lie in [0, 182]; there are no
// instructions for 13, 34, 41-42, 55-56, 61-73, 75, 78-118, 121-122, 124-130
// and 150-155. The client's LAST (13) and RESTART (200) pseudo instructions
// are not representable.
type InstructionID uint8

// Instruction ids.
const (
	Empty InstructionID = 0
	Back  InstructionID = 1

	Start InstructionID = 2
	End   InstructionID = 3

	MoveW InstructionID = 4
	MoveA InstructionID = 5
	MoveS InstructionID = 6
	MoveD InstructionID = 7

	Digg InstructionID = 8

	LookW InstructionID = 9
	LookA InstructionID = 10
	LookS InstructionID = 11
	LookD InstructionID = 12

	MoveF InstructionID = 14

	RotateCcw InstructionID = 15
	RotateCw  InstructionID = 16

	ActionBuild  InstructionID = 17
	ActionGeo    InstructionID = 18
	ActionRoad   InstructionID = 19
	ActionHeal   InstructionID = 20
	ActionQuadro InstructionID = 21
	ActionRandom InstructionID = 22
	ActionBibika InstructionID = 23

	GoTo    InstructionID = 24
	GoSub   InstructionID = 25
	GoSub1  InstructionID = 26
	Return  InstructionID = 27
	Return1 InstructionID = 28

	CellWa InstructionID = 29
	CellSd InstructionID = 30
	CellW  InstructionID = 31
	CellDw InstructionID = 32
	CellA  InstructionID = 33
	CellD  InstructionID = 35
	CellAs InstructionID = 36
	CellS  InstructionID = 37

	BoolModeOr  InstructionID = 38
	BoolModeAnd InstructionID = 39

	Label InstructionID = 40

	CcNotEmpty     InstructionID = 43
	CcEmpty        InstructionID = 44
	CcGravity      InstructionID = 45
	CcCrystall     InstructionID = 46
	CcAlive        InstructionID = 47
	CcBolder       InstructionID = 48
	CcSand         InstructionID = 49
	CcRock         InstructionID = 50
	CcDead         InstructionID = 51
	CccRedRock     InstructionID = 52
	CccBlackRock   InstructionID = 53
	CcAcid         InstructionID = 54
	CccQuadro      InstructionID = 57
	CccRoad        InstructionID = 58
	CccRedBlock    InstructionID = 59
	CccYellowBlock InstructionID = 60
	CccBox         InstructionID = 74
	CccOpor        InstructionID = 76
	CccGreenBlock  InstructionID = 77

	VarMore  InstructionID = 119
	VarLess  InstructionID = 120
	VarEqual InstructionID = 123

	CellWw InstructionID = 131
	CellAa InstructionID = 132
	CellSs InstructionID = 133
	CellDd InstructionID = 134
	CellF  InstructionID = 135
	CellFf InstructionID = 136

	GoSubF  InstructionID = 137
	ReturnF InstructionID = 138

	IfNotGoTo InstructionID = 139
	IfGoTo    InstructionID = 140

	StdDigg  InstructionID = 141
	StdBuild InstructionID = 142
	StdHeal  InstructionID = 143
	ProgFlip InstructionID = 144
	StdMine  InstructionID = 145

	CcGun   InstructionID = 146
	FillGun InstructionID = 147

	CbHp   InstructionID = 148
	CbHp50 InstructionID = 149

	CellRightHand InstructionID = 156
	CellLeftHand  InstructionID = 157

	ModeAutodiggOn  InstructionID = 158
	ModeAutodiggOff InstructionID = 159
	ModeAgrOn       InstructionID = 160
	ModeAgrOff      InstructionID = 161

	ActionB1 InstructionID = 162
	ActionB3 InstructionID = 163
	ActionB2 InstructionID = 164
	ActionWb InstructionID = 165

	OnResp InstructionID = 166

	ActionGeopack InstructionID = 167
	ActionZm      InstructionID = 168
	ActionC190    InstructionID = 169
	ActionPoly    InstructionID = 170
	ActionUp      InstructionID = 171
	ActionCraft   InstructionID = 172
	ActionNano    InstructionID = 173
	ActionRembot  InstructionID = 174

	InvDirW InstructionID = 175
	InvDirA InstructionID = 176
	InvDirS InstructionID = 177
	InvDirD InstructionID = 178

	HandModeOn  InstructionID = 179
	HandModeOff InstructionID = 180

	DebugBreak InstructionID = 181
	DebugSet   InstructionID = 182
)

// InstructionKind determines the payload carried by an instruction.
type InstructionKind uint8

// Instruction kinds.
const (
	SimpleKind InstructionKind = iota // no payload
	LabelKind                         // a LabelLiteral
	VarCmpKind                        // a VariableLiteral and a ValueLiteral
	StringKind                        // a StringLiteral
)

func (kind InstructionKind) String() string {
	switch kind {
	case SimpleKind:
		return "simple"
	case LabelKind:
		return "label"
	case VarCmpKind:
		return "variable comparison"
	case StringKind:
		return "string"
	}
	return fmt.Sprintf("InstructionKind(%d)", uint8(kind))
}

// Kind classifies id by payload shape; everything outside the label,
// comparison and string groups is simple.
func (id InstructionID) Kind() InstructionKind {
	switch id {
	case GoTo, GoSub, GoSub1, Label, GoSubF, IfNotGoTo, IfGoTo, OnResp:
		return LabelKind
	case VarMore, VarLess, VarEqual:
		return VarCmpKind
	case DebugBreak, DebugSet:
		return StringKind
	}
	return SimpleKind
}

// Valid returns true if id is in the catalog.
func (id InstructionID) Valid() bool {
	return int(id) < len(clientNames) && clientNames[id] != ""
}

// String returns the client identifier, e.g. "MOVE_W".
func (id InstructionID) String() string {
	if id.Valid() {
		return clientNames[id]
	}
	return fmt.Sprintf("InstructionID(%d)", uint8(id))
}

// InstructionIDs returns every catalogued id in ascending order.
func InstructionIDs() []InstructionID {
	ids := make([]InstructionID, 0, 107)
	for i, name := range clientNames {
		if name != "" {
			ids = append(ids, InstructionID(i))
		}
	}
	return ids
}

// clientNames maps ids to client identifiers; gaps are empty.
var clientNames = [...]string{
	Empty:           "EMPTY",
	Back:            "BACK",
	Start:           "START",
	End:             "END",
	MoveW:           "MOVE_W",
	MoveA:           "MOVE_A",
	MoveS:           "MOVE_S",
	MoveD:           "MOVE_D",
	Digg:            "DIGG",
	LookW:           "LOOK_W",
	LookA:           "LOOK_A",
	LookS:           "LOOK_S",
	LookD:           "LOOK_D",
	MoveF:           "MOVE_F",
	RotateCcw:       "ROTATE_CCW",
	RotateCw:        "ROTATE_CW",
	ActionBuild:     "ACTION_BUILD",
	ActionGeo:       "ACTION_GEO",
	ActionRoad:      "ACTION_ROAD",
	ActionHeal:      "ACTION_HEAL",
	ActionQuadro:    "ACTION_QUADRO",
	ActionRandom:    "ACTION_RANDOM",
	ActionBibika:    "ACTION_BIBIKA",
	GoTo:            "GOTO",
	GoSub:           "GOSUB",
	GoSub1:          "GOSUB1",
	Return:          "RETURN",
	Return1:         "RETURN1",
	CellWa:          "CELL_WA",
	CellSd:          "CELL_SD",
	CellW:           "CELL_W",
	CellDw:          "CELL_DW",
	CellA:           "CELL_A",
	CellD:           "CELL_D",
	CellAs:          "CELL_AS",
	CellS:           "CELL_S",
	BoolModeOr:      "BOOLMODE_OR",
	BoolModeAnd:     "BOOLMODE_AND",
	Label:           "LABEL",
	CcNotEmpty:      "CC_NOTEMPTY",
	CcEmpty:         "CC_EMPTY",
	CcGravity:       "CC_GRAVITY",
	CcCrystall:      "CC_CRYSTALL",
	CcAlive:         "CC_ALIVE",
	CcBolder:        "CC_BOLDER",
	CcSand:          "CC_SAND",
	CcRock:          "CC_ROCK",
	CcDead:          "CC_DEAD",
	CccRedRock:      "CCC_REDROCK",
	CccBlackRock:    "CCC_BLACKROCK",
	CcAcid:          "CC_ACID",
	CccQuadro:       "CCC_QUADRO",
	CccRoad:         "CCC_ROAD",
	CccRedBlock:     "CCC_REDBLOCK",
	CccYellowBlock:  "CCC_YELLOWBLOCK",
	CccBox:          "CCC_BOX",
	CccOpor:         "CCC_OPOR",
	CccGreenBlock:   "CCC_GREENBLOCK",
	VarMore:         "VAR_MORE",
	VarLess:         "VAR_LESS",
	VarEqual:        "VAR_EQUAL",
	CellWw:          "CELL_WW",
	CellAa:          "CELL_AA",
	CellSs:          "CELL_SS",
	CellDd:          "CELL_DD",
	CellF:           "CELL_F",
	CellFf:          "CELL_FF",
	GoSubF:          "GOSUBF",
	ReturnF:         "RETURNF",
	IfNotGoTo:       "IF_NOT_GOTO",
	IfGoTo:          "IF_GOTO",
	StdDigg:         "STD_DIGG",
	StdBuild:        "STD_BUILD",
	StdHeal:         "STD_HEAL",
	ProgFlip:        "PROG_FLIP",
	StdMine:         "STD_MINE",
	CcGun:           "CC_GUN",
	FillGun:         "FILL_GUN",
	CbHp:            "CB_HP",
	CbHp50:          "CB_HP50",
	CellRightHand:   "CELL_RIGHT_HAND",
	CellLeftHand:    "CELL_LEFT_HAND",
	ModeAutodiggOn:  "MODE_AUTODIGG_ON",
	ModeAutodiggOff: "MODE_AUTODIGG_OFF",
	ModeAgrOn:       "MODE_AGR_ON",
	ModeAgrOff:      "MODE_AGR_OFF",
	ActionB1:        "ACTION_B1",
	ActionB3:        "ACTION_B3",
	ActionB2:        "ACTION_B2",
	ActionWb:        "ACTION_WB",
	OnResp:          "ON_RESP",
	ActionGeopack:   "ACTION_GEOPACK",
	ActionZm:        "ACTION_ZM",
	ActionC190:      "ACTION_C190",
	ActionPoly:      "ACTION_POLY",
	ActionUp:        "ACTION_UP",
	ActionCraft:     "ACTION_CRAFT",
	ActionNano:      "ACTION_NANO",
	ActionRembot:    "ACTION_REMBOT",
	InvDirW:         "INVDIR_W",
	InvDirA:         "INVDIR_A",
	InvDirS:         "INVDIR_S",
	InvDirD:         "INVDIR_D",
	HandModeOn:      "HANDMODE_ON",
	HandModeOff:     "HANDMODE_OFF",
	DebugBreak:      "DEBUG_BREAK",
	DebugSet:        "DEBUG_SET",
}
