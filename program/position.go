package program

import "fmt"

// Program geometry.
const (
	Pages   = 16
	Rows    = 12
	Columns = 16

	PageSize = Rows * Columns
	Size     = Pages * PageSize
)

// Position addresses an instruction slot by page, row and column. It is a
// plain value: it holds no reference to any Program.
type Position struct {
	page, row, column uint8
}

// PositionConstructionError indicates an out of range page, row or column.
type PositionConstructionError struct {
	Page, Row, Column int
}

func (err PositionConstructionError) Error() string {
	return fmt.Sprintf("invalid instruction position (%v, %v, %v), must be within (%v, %v, %v)",
		err.Page, err.Row, err.Column, Pages, Rows, Columns)
}

// PositionOverflowError indicates a move past the last program slot.
type PositionOverflowError struct {
	From Position
	Op   string
}

func (err PositionOverflowError) Error() string {
	return fmt.Sprintf("instruction position overflow by %v from %v", err.Op, err.From)
}

// NewPosition checks all three coordinates before building a Position.
func NewPosition(page, row, column int) (Position, error) {
	if page < 0 || page >= Pages ||
		row < 0 || row >= Rows ||
		column < 0 || column >= Columns {
		return Position{}, PositionConstructionError{page, row, column}
	}
	return Position{uint8(page), uint8(row), uint8(column)}, nil
}

// PositionOf converts a flat index into a Position.
func PositionOf(index int) (Position, error) {
	if index < 0 || index >= Size {
		return Position{}, PositionConstructionError{
			index / PageSize, index % PageSize / Columns, index % Columns,
		}
	}
	return Position{
		uint8(index / PageSize),
		uint8(index % PageSize / Columns),
		uint8(index % Columns),
	}, nil
}

// Page returns the page coordinate.
func (pos Position) Page() int { return int(pos.page) }

// Row returns the row coordinate.
func (pos Position) Row() int { return int(pos.row) }

// Column returns the column coordinate.
func (pos Position) Column() int { return int(pos.column) }

// Index returns the flat index: page*PageSize + row*Columns + column.
func (pos Position) Index() int {
	return int(pos.page)*PageSize + int(pos.row)*Columns + int(pos.column)
}

func (pos Position) String() string {
	return fmt.Sprintf("(%v, %v, %v)", pos.page, pos.row, pos.column)
}

// MoveForward advances one column, wrapping into the next row and page.
func (pos *Position) MoveForward() error {
	if pos.column+1 < Columns {
		pos.column++
		return nil
	}
	next := *pos
	if err := next.MoveToNextRow(); err != nil {
		return PositionOverflowError{*pos, "move forward"}
	}
	*pos = next
	return nil
}

// MoveThreeStepsForward is three MoveForward calls in one bounded jump; it
// either lands or leaves pos untouched.
func (pos *Position) MoveThreeStepsForward() error {
	index := pos.Index() + 3
	if index >= Size {
		return PositionOverflowError{*pos, "move three steps forward"}
	}
	*pos, _ = PositionOf(index)
	return nil
}

// MoveToNextRow goes to column 0 of the next row, or of the first row on the
// next page when on the last row.
func (pos *Position) MoveToNextRow() error {
	if pos.row+1 < Rows {
		pos.row++
		pos.column = 0
		return nil
	}
	next := *pos
	if err := next.MoveToNextPage(); err != nil {
		return PositionOverflowError{*pos, "move to next row"}
	}
	*pos = next
	return nil
}

// MoveToNextPage goes to the start of the next page; there is no page after
// the last one.
func (pos *Position) MoveToNextPage() error {
	if pos.page+1 >= Pages {
		return PositionOverflowError{*pos, "move to next page"}
	}
	*pos = Position{page: pos.page + 1}
	return nil
}
