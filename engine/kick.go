package engine

// The SRS kick tables are authored in the standard y-up convention; the
// board is y-down, so the vertical component of an offset is negated before
// it is applied. Tables are keyed by (from state, turn direction) and only
// cover adjacent transitions; there is no entry for a direct 180° turn.

// RotDir is a turn direction.
type RotDir uint8

// Turn directions.
const (
	Clockwise RotDir = iota
	CounterClockwise
)

// jlstzKicks is the kick table shared by the J, L, S, T and Z pieces,
// indexed by [from][dir].
var jlstzKicks = [4][2][5]Offset{
	Spawn: {
		Clockwise:        {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		CounterClockwise: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	Right: {
		Clockwise:        {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		CounterClockwise: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	Two: {
		Clockwise:        {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		CounterClockwise: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	},
	Left: {
		Clockwise:        {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		CounterClockwise: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
}

// iKicks is the I piece's own kick table, indexed by [from][dir].
var iKicks = [4][2][5]Offset{
	Spawn: {
		Clockwise:        {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		CounterClockwise: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	},
	Right: {
		Clockwise:        {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		CounterClockwise: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	},
	Two: {
		Clockwise:        {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		CounterClockwise: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	},
	Left: {
		Clockwise:        {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		CounterClockwise: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	},
}

// KickResult reports the outcome of a rotation attempt. Piece is nil when no
// kick candidate placed; Index is 0 for an in-place rotation, 1-4 for a
// kicked one and -1 on failure. Offset is the raw table offset (y-up).
type KickResult struct {
	Piece  *ActivePiece
	Index  int
	Offset Offset
}

// KickClass categorizes a successful rotation's kick.
type KickClass uint8

// Kick classes.
const (
	KickNone KickClass = iota
	KickWall
	KickFloor
)

func (c KickClass) String() string {
	switch c {
	case KickNone:
		return "none"
	case KickWall:
		return "wall"
	case KickFloor:
		return "floor"
	}
	panic("unknown kick class")
}

// Class returns KickNone for index 0, KickFloor when the y-up offset lifted
// the piece clear of the floor or stack, and KickWall otherwise.
func (r KickResult) Class() KickClass {
	if r.Index <= 0 {
		return KickNone
	}
	if r.Offset.DY > 0 {
		return KickFloor
	}
	return KickWall
}

// RotateTo attempts to rotate the piece to target on the given board, trying
// each kick candidate in table order. Only adjacent transitions are legal: a
// request for a direct 180° turn fails outright. The O piece has no kick
// table entries; rotating it to any state other than its current one fails.
func RotateTo(b Board, p ActivePiece, target Rotation) KickResult {
	if p.Kind == O {
		if target == p.Rot {
			return KickResult{Piece: &p, Index: 0}
		}
		return KickResult{Piece: nil, Index: -1}
	}

	var dir RotDir
	switch target {
	case p.Rot.CW():
		dir = Clockwise
	case p.Rot.CCW():
		dir = CounterClockwise
	default:
		return KickResult{Piece: nil, Index: -1}
	}

	table := &jlstzKicks
	if p.Kind == I {
		table = &iKicks
	}

	for i, off := range table[p.Rot][dir] {
		candidate := ActivePiece{Kind: p.Kind, Rot: target, X: p.X + off.DX, Y: p.Y - off.DY}
		if b.CanPlace(candidate) {
			return KickResult{Piece: &candidate, Index: i, Offset: off}
		}
	}
	return KickResult{Piece: nil, Index: -1}
}
