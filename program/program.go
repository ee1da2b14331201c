// Package program models a robot program: a fixed grid of Size
// instructions addressed by flat index or by Position.
package program

// Program owns exactly Size instruction slots; the zero value is all Empty.
type Program [Size]Instruction

// Reset overwrites every slot with the Empty instruction.
func (prog *Program) Reset() {
	*prog = Program{}
}

// At returns the instruction at pos.
func (prog *Program) At(pos Position) Instruction { return prog[pos.Index()] }

// Put stores ins at pos.
func (prog *Program) Put(pos Position, ins Instruction) { prog[pos.Index()] = ins }

// Len returns one past the index of the last non-Empty instruction, or 0 for
// an empty program.
func (prog *Program) Len() int {
	for i := len(prog) - 1; i >= 0; i-- {
		if !prog[i].IsEmpty() {
			return i + 1
		}
	}
	return 0
}
