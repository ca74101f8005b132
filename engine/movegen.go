package engine

// Edge is one single-input transition out of a piece state.
type Edge struct {
	Action Action
	Piece  ActivePiece
}

// Neighbors returns every state reachable from p by exactly one canonical
// input, at most six edges. HardDrop never appears here; the search appends
// it once when it accepts a goal state.
//
// A DAS edge is emitted only when it actually moves the piece, and SoftDrop
// only on a non-empty board: on an empty field every descent is already
// implied by the terminal hard drop and the extra vertical states would only
// widen the frontier.
func Neighbors(b Board, p ActivePiece) []Edge {
	edges := make([]Edge, 0, 6)

	if b.CanMove(p, -1, 0) {
		edges = append(edges, Edge{Action: MoveLeft, Piece: p.translated(-1, 0)})
	}
	if b.CanMove(p, 1, 0) {
		edges = append(edges, Edge{Action: MoveRight, Piece: p.translated(1, 0)})
	}

	if walled := b.MoveToWall(p, -1); walled.X != p.X {
		edges = append(edges, Edge{Action: DASLeft, Piece: walled})
	}
	if walled := b.MoveToWall(p, 1); walled.X != p.X {
		edges = append(edges, Edge{Action: DASRight, Piece: walled})
	}

	if res := RotateTo(b, p, p.Rot.CW()); res.Piece != nil {
		edges = append(edges, Edge{Action: RotateCW, Piece: *res.Piece})
	}
	if res := RotateTo(b, p, p.Rot.CCW()); res.Piece != nil {
		edges = append(edges, Edge{Action: RotateCCW, Piece: *res.Piece})
	}

	if !b.IsEmpty() && b.CanMove(p, 0, 1) {
		edges = append(edges, Edge{Action: SoftDrop, Piece: p.translated(0, 1)})
	}

	return edges
}
