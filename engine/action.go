package engine

// Action is one canonical single-intent input. A finesse sequence is a
// non-empty ordered list of actions ending in exactly one HardDrop.
type Action uint8

// All canonical inputs.
const (
	MoveLeft Action = iota
	MoveRight
	DASLeft
	DASRight
	RotateCW
	RotateCCW
	SoftDrop
	HardDrop
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "Move_Left"
	case MoveRight:
		return "Move_Right"
	case DASLeft:
		return "DAS_Left"
	case DASRight:
		return "DAS_Right"
	case RotateCW:
		return "Rotate_CW"
	case RotateCCW:
		return "Rotate_CCW"
	case SoftDrop:
		return "Soft_Drop"
	case HardDrop:
		return "Hard_Drop"
	}
	panic("unknown action")
}

// ContainsSoftDrop reports whether the sequence has any SoftDrop input.
// Soft-dropped placements are exempt from finesse grading.
func ContainsSoftDrop(seq []Action) bool {
	for _, a := range seq {
		if a == SoftDrop {
			return true
		}
	}
	return false
}
