package engine

import "math/rand"

// Piece identifies one of the seven standard tetrominoes.
type Piece uint8

// The seven pieces. Values double as board cell colors, so they start at 1
// (0 is the empty cell).
const (
	T Piece = iota + 1
	L
	J
	S
	Z
	O
	I
)

// Pieces is an ordered array of all seven pieces.
var Pieces = [7]Piece{T, L, J, S, Z, O, I}

func (p Piece) String() string {
	switch p {
	case T:
		return "T"
	case L:
		return "L"
	case J:
		return "J"
	case S:
		return "S"
	case Z:
		return "Z"
	case O:
		return "O"
	case I:
		return "I"
	}
	panic("unknown piece")
}

// Rotation is one of the four SRS rotation states.
type Rotation uint8

// Rotation states in clockwise order.
const (
	Spawn Rotation = iota
	Right
	Two
	Left
)

func (r Rotation) String() string {
	switch r {
	case Spawn:
		return "spawn"
	case Right:
		return "right"
	case Two:
		return "two"
	case Left:
		return "left"
	}
	panic("unknown rotation")
}

// CW returns the adjacent rotation state clockwise. There is never a direct
// 180° transition; a half turn is two calls.
func (r Rotation) CW() Rotation { return (r + 1) % 4 }

// CCW returns the adjacent rotation state counter-clockwise.
func (r Rotation) CCW() Rotation { return (r + 3) % 4 }

// Offset is a cell offset relative to a piece anchor, y pointing down.
type Offset struct {
	DX, DY int
}

// Point is an absolute board cell position. Negative Y is the vanish zone.
type Point struct {
	X, Y int
}

// ActivePiece is a falling piece: kind, rotation state and anchor position.
// Its identity for search purposes is the full 4-tuple.
type ActivePiece struct {
	Kind Piece
	Rot  Rotation
	X, Y int
}

// shapes holds the SRS footprint for each piece and rotation state: the four
// occupied cells relative to the anchor (top-left of the bounding box),
// y down. O is identical in all four states.
var shapes = [8][4][4]Offset{
	T: {
		Spawn: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		Right: {{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		Two:   {{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		Left:  {{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	L: {
		Spawn: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		Right: {{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		Two:   {{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		Left:  {{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	J: {
		Spawn: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		Right: {{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		Two:   {{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		Left:  {{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	S: {
		Spawn: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		Right: {{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		Two:   {{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		Left:  {{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	Z: {
		Spawn: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		Right: {{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		Two:   {{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		Left:  {{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	O: {
		Spawn: {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		Right: {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		Two:   {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		Left:  {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	I: {
		Spawn: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		Right: {{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		Two:   {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		Left:  {{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
}

// Shape returns the four cell offsets of a piece in a given rotation state.
func Shape(kind Piece, rot Rotation) [4]Offset {
	if kind < T || kind > I || rot > Left {
		panic("shape lookup for unknown piece or rotation")
	}
	return shapes[kind][rot]
}

// Cells returns the absolute board cells occupied by the piece.
func (p ActivePiece) Cells() [4]Point {
	var cells [4]Point
	for i, off := range Shape(p.Kind, p.Rot) {
		cells[i] = Point{X: p.X + off.DX, Y: p.Y + off.DY}
	}
	return cells
}

// translated returns the piece moved by (dx, dy).
func (p ActivePiece) translated(dx, dy int) ActivePiece {
	p.X += dx
	p.Y += dy
	return p
}

// SpawnPiece returns a piece at its spawn anchor, partially inside the
// vanish zone.
func SpawnPiece(kind Piece) ActivePiece {
	return ActivePiece{Kind: kind, Rot: Spawn, X: 3, Y: -2}
}

// RandBag appends one 7-bag permutation of all pieces using the given
// source, for drill and stress tooling.
func RandBag(rng *rand.Rand, dst []Piece) []Piece {
	for _, i := range rng.Perm(7) {
		dst = append(dst, Pieces[i])
	}
	return dst
}
