package engine

import "fmt"

// FaultKind labels one finesse fault. ExtraInput and SuboptimalPath come out
// of Analyze; the remaining kinds belong to mode-level checks (drill target
// verification, piece mixups) that report through the same structure.
type FaultKind uint8

// All fault kinds.
const (
	FaultExtraInput FaultKind = iota
	FaultSuboptimalPath
	FaultUnnecessaryRotation
	FaultWrongPiece
	FaultWrongTarget
)

func (k FaultKind) String() string {
	switch k {
	case FaultExtraInput:
		return "extra_input"
	case FaultSuboptimalPath:
		return "suboptimal_path"
	case FaultUnnecessaryRotation:
		return "unnecessary_rotation"
	case FaultWrongPiece:
		return "wrong_piece"
	case FaultWrongTarget:
		return "wrong_target"
	}
	panic("unknown fault kind")
}

// Fault is one judgment against a player's sequence. Position, when present,
// indexes into the player's sequence.
type Fault struct {
	Kind        FaultKind
	Description string
	Position    *int
}

// Result is the verdict for one placement. Optimal is the union tag: when
// false, Faults holds at least one entry. OptimalSequences carries every
// minimal-length witness collected by the search (empty for soft-dropped
// placements, which are not graded).
type Result struct {
	Optimal          bool
	Faults           []Fault
	OptimalSequences [][]Action
	PlayerSequence   []Action
}

// Analyze grades a normalized player sequence for one piece lock against the
// minimal sequence reaching (targetX, targetRot) from start. The search runs
// with the orientation constraint off, so any rotational path producing the
// same final occupancy counts.
//
// The judgment is length-only: a player sequence of minimal length is graded
// optimal without verifying which cells it actually reached. Wrong-placement
// detection is the mode layer's FaultWrongTarget channel, not this one.
func Analyze(b Board, start ActivePiece, targetX int, targetRot Rotation, player []Action, cfg SearchConfig) Result {
	if ContainsSoftDrop(player) {
		return Result{Optimal: true, PlayerSequence: player}
	}

	optimal := OptimalSequences(b, start, targetX, targetRot, false, cfg)
	res := Result{
		OptimalSequences: optimal,
		PlayerSequence:   player,
	}
	if len(optimal) == 0 {
		// Unreachable target within budget: nothing to grade against.
		res.Optimal = true
		return res
	}

	minLen := len(optimal[0])
	switch {
	case len(player) == minLen:
		res.Optimal = true
	case len(player) > minLen:
		pos := minLen
		res.Faults = []Fault{{
			Kind:        FaultExtraInput,
			Description: fmt.Sprintf("used %d inputs where %d suffice", len(player), minLen),
			Position:    &pos,
		}}
	default:
		pos := len(player)
		res.Faults = []Fault{{
			Kind:        FaultSuboptimalPath,
			Description: fmt.Sprintf("sequence of %d inputs cannot reach the target (optimal is %d)", len(player), minLen),
			Position:    &pos,
		}}
	}
	return res
}
