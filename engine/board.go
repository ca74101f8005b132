package engine

import "strings"

// Board dimensions. The three vanish rows above the visible field are
// addressed with negative y and are collidable.
const (
	BoardWidth    = 10
	VisibleHeight = 20
	VanishRows    = 3

	totalHeight = VisibleHeight + VanishRows
	boardCells  = totalHeight * BoardWidth
)

// Cell is one board cell: 0 empty, 1-7 a piece color, 8 garbage.
type Cell uint8

// Cell values outside the piece colors.
const (
	Empty   Cell = 0
	Garbage Cell = 8
)

// Board is an immutable grid snapshot. The zero value is an empty board;
// every mutating method returns a new Board with a fresh backing array, so a
// Board can be shared read-only across any number of search nodes or
// goroutines.
type Board struct {
	cells    []Cell
	occupied int
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// NewBoardFromRows builds a board from visible rows given top-first. Rows
// shorter than the board width are left-aligned; missing bottom rows stay
// empty. Intended for tests and tooling.
func NewBoardFromRows(rows ...[]Cell) Board {
	b := Board{cells: make([]Cell, boardCells)}
	top := VisibleHeight - len(rows)
	for i, row := range rows {
		if len(row) > BoardWidth {
			panic("row wider than board")
		}
		for x, v := range row {
			if v != Empty {
				b.cells[(top+i+VanishRows)*BoardWidth+x] = v
				b.occupied++
			}
		}
	}
	return b
}

func (b Board) check() {
	if b.cells != nil && len(b.cells) != boardCells {
		panic("corrupt board: backing array length")
	}
}

// Cell returns the value at (x, y). y may be negative down to -VanishRows.
func (b Board) Cell(x, y int) Cell {
	if x < 0 || x >= BoardWidth || y < -VanishRows || y >= VisibleHeight {
		panic("board cell out of range")
	}
	if b.cells == nil {
		return Empty
	}
	b.check()
	return b.cells[(y+VanishRows)*BoardWidth+x]
}

// SetCell returns a new board with (x, y) set to v.
func (b Board) SetCell(x, y int, v Cell) Board {
	if x < 0 || x >= BoardWidth || y < -VanishRows || y >= VisibleHeight {
		panic("board cell out of range")
	}
	b.check()
	next := Board{cells: make([]Cell, boardCells), occupied: b.occupied}
	copy(next.cells, b.cells)
	idx := (y+VanishRows)*BoardWidth + x
	if next.cells[idx] != Empty {
		next.occupied--
	}
	if v != Empty {
		next.occupied++
	}
	next.cells[idx] = v
	return next
}

// IsEmpty reports whether no cell is occupied.
func (b Board) IsEmpty() bool {
	return b.occupied == 0
}

// CanPlace reports whether every cell of the piece's footprint is inside the
// field (the vanish zone counts as inside) and lands on an empty cell.
func (b Board) CanPlace(p ActivePiece) bool {
	b.check()
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= BoardWidth || c.Y >= VisibleHeight || c.Y < -VanishRows {
			return false
		}
		if b.cells != nil && b.cells[(c.Y+VanishRows)*BoardWidth+c.X] != Empty {
			return false
		}
	}
	return true
}

// CanMove reports whether the piece translated by (dx, dy) still places.
func (b Board) CanMove(p ActivePiece, dx, dy int) bool {
	return b.CanPlace(p.translated(dx, dy))
}

// MoveToWall translates the piece one cell at a time in the given horizontal
// direction (-1 left, +1 right) until blocked, as a sonic DAS would.
func (b Board) MoveToWall(p ActivePiece, dir int) ActivePiece {
	for b.CanMove(p, dir, 0) {
		p = p.translated(dir, 0)
	}
	return p
}

// DropToBottom translates the piece down until blocked. Used for hard-drop
// resolution and for computing resting occupancy.
func (b Board) DropToBottom(p ActivePiece) ActivePiece {
	for b.CanMove(p, 0, 1) {
		p = p.translated(0, 1)
	}
	return p
}

// Lock returns a new board with the piece's cells filled with its color.
func (b Board) Lock(p ActivePiece) Board {
	b.check()
	next := Board{cells: make([]Cell, boardCells), occupied: b.occupied}
	copy(next.cells, b.cells)
	for _, c := range p.Cells() {
		idx := (c.Y+VanishRows)*BoardWidth + c.X
		if next.cells[idx] == Empty {
			next.occupied++
		}
		next.cells[idx] = Cell(p.Kind)
	}
	return next
}

// ClearLines removes every full visible row, shifts the rows above down and
// returns the new board with the number of cleared rows.
func (b Board) ClearLines() (Board, int) {
	b.check()
	if b.cells == nil {
		return b, 0
	}
	next := Board{cells: make([]Cell, boardCells)}
	dst := totalHeight - 1
	cleared := 0
	for src := totalHeight - 1; src >= 0; src-- {
		full := src >= VanishRows
		for x := 0; full && x < BoardWidth; x++ {
			if b.cells[src*BoardWidth+x] == Empty {
				full = false
			}
		}
		if full {
			cleared++
			continue
		}
		copy(next.cells[dst*BoardWidth:(dst+1)*BoardWidth], b.cells[src*BoardWidth:(src+1)*BoardWidth])
		dst--
	}
	if cleared == 0 {
		return b, 0
	}
	for _, v := range next.cells {
		if v != Empty {
			next.occupied++
		}
	}
	return next, cleared
}

// String renders the visible field for debugging, one row per line.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < VisibleHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if b.Cell(x, y) == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
