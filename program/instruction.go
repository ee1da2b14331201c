package program

import "fmt"

// Instruction pairs an id with the payload its kind requires. Only the
// constructors below can build one, so the payload always matches
// id.Kind(). The zero value is the Empty instruction.
type Instruction struct {
	id    InstructionID
	label LabelLiteral
	text  StringLiteral
	name  VariableLiteral
	value ValueLiteral
}

// UnsupportedInstructionIDError indicates an id that is either not in the
// catalog or not of the kind the caller tried to construct.
type UnsupportedInstructionIDError struct {
	ID   InstructionID
	Kind InstructionKind
}

func (err UnsupportedInstructionIDError) Error() string {
	if !err.ID.Valid() {
		return fmt.Sprintf("unsupported instruction id %v", uint8(err.ID))
	}
	return fmt.Sprintf("instruction %v is of %v kind, not %v", err.ID, err.ID.Kind(), err.Kind)
}

func checkKind(id InstructionID, kind InstructionKind) error {
	if !id.Valid() || id.Kind() != kind {
		return UnsupportedInstructionIDError{id, kind}
	}
	return nil
}

// NewSimple builds a payload-less instruction.
func NewSimple(id InstructionID) (Instruction, error) {
	if err := checkKind(id, SimpleKind); err != nil {
		return Instruction{}, err
	}
	return Instruction{id: id}, nil
}

// NewLabel builds a label kind instruction, e.g. GoTo.
func NewLabel(id InstructionID, label LabelLiteral) (Instruction, error) {
	if err := checkKind(id, LabelKind); err != nil {
		return Instruction{}, err
	}
	return Instruction{id: id, label: label}, nil
}

// NewVarCmp builds a variable comparison instruction.
func NewVarCmp(id InstructionID, name VariableLiteral, value ValueLiteral) (Instruction, error) {
	if err := checkKind(id, VarCmpKind); err != nil {
		return Instruction{}, err
	}
	return Instruction{id: id, name: name, value: value}, nil
}

// NewString builds a string kind instruction, e.g. DebugSet.
func NewString(id InstructionID, s StringLiteral) (Instruction, error) {
	if err := checkKind(id, StringKind); err != nil {
		return Instruction{}, err
	}
	return Instruction{id: id, text: s}, nil
}

// ID returns the instruction id.
func (ins Instruction) ID() InstructionID { return ins.id }

// Kind returns the payload kind.
func (ins Instruction) Kind() InstructionKind { return ins.id.Kind() }

// IsEmpty returns true for the Empty instruction.
func (ins Instruction) IsEmpty() bool { return ins.id == Empty }

// Label returns the label payload of a label kind instruction.
func (ins Instruction) Label() (LabelLiteral, bool) {
	if ins.Kind() != LabelKind {
		return LabelLiteral{}, false
	}
	return ins.label, true
}

// Text returns the payload of a string kind instruction.
func (ins Instruction) Text() (StringLiteral, bool) {
	if ins.Kind() != StringKind {
		return StringLiteral{}, false
	}
	return ins.text, true
}

// VarCmp returns the payload of a variable comparison instruction.
func (ins Instruction) VarCmp() (VariableLiteral, ValueLiteral, bool) {
	if ins.Kind() != VarCmpKind {
		return VariableLiteral{}, ValueLiteral{}, false
	}
	return ins.name, ins.value, true
}

// String returns an assembly-like form, e.g. "GOTO abc" or "VAR_LESS x -5".
func (ins Instruction) String() string {
	switch ins.Kind() {
	case LabelKind:
		return fmt.Sprintf("%v %v", ins.id, ins.label)
	case VarCmpKind:
		return fmt.Sprintf("%v %v %v", ins.id, ins.name, ins.value)
	case StringKind:
		return fmt.Sprintf("%v %v", ins.id, ins.text)
	}
	return ins.id.String()
}
