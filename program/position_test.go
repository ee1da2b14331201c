package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPosition(t *testing.T, page, row, column int) Position {
	pos, err := NewPosition(page, row, column)
	require.NoError(t, err, "must build position")
	return pos
}

func Test_NewPosition(t *testing.T) {
	pos := mustPosition(t, 15, 11, 15)
	assert.Equal(t, Size-1, pos.Index())

	for _, bad := range [][3]int{
		{16, 0, 0},
		{0, 12, 0},
		{0, 0, 16},
		{-1, 0, 0},
		{1, 1, -1},
	} {
		_, err := NewPosition(bad[0], bad[1], bad[2])
		assert.Equal(t, PositionConstructionError{bad[0], bad[1], bad[2]}, err)
	}
}

func Test_PositionOf(t *testing.T) {
	for index := 0; index < Size; index++ {
		pos, err := PositionOf(index)
		require.NoError(t, err)
		require.Equal(t, index, pos.Index(), "index round trip")
		require.Equal(t, pos, mustPosition(t, pos.Page(), pos.Row(), pos.Column()))
	}
	_, err := PositionOf(Size)
	assert.Error(t, err)
	_, err = PositionOf(-1)
	assert.Error(t, err)

	var zero Position
	assert.Equal(t, 0, zero.Index())
}

func Test_Position_moves(t *testing.T) {
	type move struct {
		name string
		f    func(pos *Position) error
	}
	var (
		forward    = move{"forward", (*Position).MoveForward}
		three      = move{"three", (*Position).MoveThreeStepsForward}
		nextRow    = move{"next row", (*Position).MoveToNextRow}
		nextPage   = move{"next page", (*Position).MoveToNextPage}
		noOverflow = ""
	)

	for _, tc := range []struct {
		move     move
		from, to [3]int
		overflow string
	}{
		{forward, [3]int{0, 0, 0}, [3]int{0, 0, 1}, noOverflow},
		{forward, [3]int{1, 2, 15}, [3]int{1, 3, 0}, noOverflow},
		{forward, [3]int{1, 11, 15}, [3]int{2, 0, 0}, noOverflow},
		{forward, [3]int{15, 11, 15}, [3]int{15, 11, 15}, "move forward"},

		{three, [3]int{0, 0, 0}, [3]int{0, 0, 3}, noOverflow},
		{three, [3]int{0, 0, 14}, [3]int{0, 1, 1}, noOverflow},
		{three, [3]int{3, 11, 15}, [3]int{4, 0, 2}, noOverflow},
		{three, [3]int{15, 11, 12}, [3]int{15, 11, 15}, noOverflow},
		{three, [3]int{15, 11, 13}, [3]int{15, 11, 13}, "move three steps forward"},

		{nextRow, [3]int{0, 0, 7}, [3]int{0, 1, 0}, noOverflow},
		{nextRow, [3]int{2, 11, 3}, [3]int{3, 0, 0}, noOverflow},
		{nextRow, [3]int{15, 11, 0}, [3]int{15, 11, 0}, "move to next row"},

		{nextPage, [3]int{0, 5, 7}, [3]int{1, 0, 0}, noOverflow},
		{nextPage, [3]int{15, 0, 0}, [3]int{15, 0, 0}, "move to next page"},
	} {
		from := mustPosition(t, tc.from[0], tc.from[1], tc.from[2])
		t.Run(tc.move.name+" from "+from.String(), func(t *testing.T) {
			pos := from
			err := tc.move.f(&pos)
			if tc.overflow != "" {
				assert.Equal(t, PositionOverflowError{from, tc.overflow}, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, mustPosition(t, tc.to[0], tc.to[1], tc.to[2]), pos)
		})
	}
}

func Test_Position_threeStepsMatchesForward(t *testing.T) {
	for index := 0; index < Size; index++ {
		start, _ := PositionOf(index)
		jump, step := start, start
		jumpErr := jump.MoveThreeStepsForward()
		var stepErr error
		for i := 0; i < 3 && stepErr == nil; i++ {
			stepErr = step.MoveForward()
		}
		if stepErr != nil {
			require.Error(t, jumpErr, "from %v", start)
			require.Equal(t, start, jump, "no partial advance from %v", start)
		} else {
			require.NoError(t, jumpErr, "from %v", start)
			require.Equal(t, step, jump, "from %v", start)
		}
	}
}
