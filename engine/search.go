package engine

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// SearchConfig bounds the minimal-sequence search. The zero value selects
// the defaults.
type SearchConfig struct {
	// MaxVisitedNodes caps how many nodes may be dequeued before the search
	// gives up. Hitting the cap is not an error: the result is simply "no
	// solution found within budget".
	MaxVisitedNodes int
	// MaxSolutions caps how many minimal-length witnesses are collected.
	MaxSolutions int
}

// Default search bounds.
const (
	DefaultMaxVisitedNodes = 40000
	DefaultMaxSolutions    = 1
)

func (c SearchConfig) withDefaults() SearchConfig {
	if c.MaxVisitedNodes <= 0 {
		c.MaxVisitedNodes = DefaultMaxVisitedNodes
	}
	if c.MaxSolutions <= 0 {
		c.MaxSolutions = DefaultMaxSolutions
	}
	return c
}

// stateKey packs a piece state into a single integer for the visited map.
// The coordinate bias keeps both fields non-negative for every anchor a
// 4-cell footprint can take on the board.
func stateKey(p ActivePiece) uint32 {
	return uint32(p.Kind)<<24 | uint32(p.Rot)<<16 |
		uint32(uint8(p.X+8))<<8 | uint32(uint8(p.Y+8))
}

// occupancyKey is the goal-equivalence signature: the sorted set of absolute
// cells the piece covers once dropped to rest, packed one storage index per
// byte. Two placements with equal keys are the same final occupancy no
// matter which rotational path produced them.
func occupancyKey(b Board, p ActivePiece) uint32 {
	rest := b.DropToBottom(p)
	var idx [4]int
	for i, c := range rest.Cells() {
		idx[i] = (c.Y+VanishRows)*BoardWidth + c.X
	}
	sort.Ints(idx[:])
	return uint32(idx[0])<<24 | uint32(idx[1])<<16 | uint32(idx[2])<<8 | uint32(idx[3])
}

// normFootprints holds, per piece and rotation, the footprint normalized by
// its own minimum offsets. Rotation states with identical values are pure
// translations of each other (O in all four states, I/S/Z under a half
// turn), which is what an orientation constraint actually means for them.
var normFootprints = precomputeFootprints()

func precomputeFootprints() [8][4]uint32 {
	var table [8][4]uint32
	for _, kind := range Pieces {
		for rot := Spawn; rot <= Left; rot++ {
			offs := Shape(kind, rot)
			minX, minY := offs[0].DX, offs[0].DY
			for _, o := range offs[1:] {
				minX = min(minX, o.DX)
				minY = min(minY, o.DY)
			}
			cells := make([]int, 4)
			for i, o := range offs {
				cells[i] = (o.DY-minY)<<4 | (o.DX - minX)
			}
			sort.Ints(cells)
			table[kind][rot] = uint32(cells[0])<<24 | uint32(cells[1])<<16 |
				uint32(cells[2])<<8 | uint32(cells[3])
		}
	}
	return table
}

type searchNode struct {
	piece ActivePiece
	path  []Action
}

// OptimalSequences runs a breadth-first search from start and returns every
// collected minimal input sequence reaching the target placement, each
// terminated by HardDrop. The goal is occupancy equivalence: a node is
// accepted when its own resting occupancy matches the target's. With strict
// set, the node's orientation must additionally be a pure translation of
// targetRot's footprint.
//
// Returns nil when the target is unreachable, not placeable, or the node
// budget runs out first.
func OptimalSequences(b Board, start ActivePiece, targetX int, targetRot Rotation, strict bool, cfg SearchConfig) [][]Action {
	cfg = cfg.withDefaults()

	target := ActivePiece{Kind: start.Kind, Rot: targetRot, X: targetX, Y: start.Y}
	if !b.CanPlace(start) || !b.CanPlace(target) {
		return nil
	}
	goalKey := occupancyKey(b, target)
	goalFoot := normFootprints[start.Kind][targetRot]

	isGoal := func(p ActivePiece) bool {
		if strict && normFootprints[p.Kind][p.Rot] != goalFoot {
			return false
		}
		return occupancyKey(b, p) == goalKey
	}

	// bestDepthByState guards the frontier: a state is only (re-)enqueued
	// when it improves on the best depth recorded for it, so the queue stays
	// ordered by non-decreasing depth and the first accepted goal is
	// globally minimal.
	best := intmap.New[uint32, int32](256)
	best.Put(stateKey(start), 0)

	queue := make([]searchNode, 1, 64)
	queue[0] = searchNode{piece: start}

	var solutions [][]Action
	foundDepth := -1
	visited := 0

	for head := 0; head < len(queue); head++ {
		if visited++; visited > cfg.MaxVisitedNodes {
			break
		}
		n := queue[head]
		depth := len(n.path)
		if foundDepth >= 0 && depth > foundDepth {
			break
		}

		if isGoal(n.piece) {
			seq := make([]Action, depth+1)
			copy(seq, n.path)
			seq[depth] = HardDrop
			solutions = append(solutions, seq)
			foundDepth = depth
			if len(solutions) >= cfg.MaxSolutions {
				break
			}
			continue
		}
		if foundDepth >= 0 {
			// Same-depth nodes may still be goals, but their children can't.
			continue
		}

		for _, e := range Neighbors(b, n.piece) {
			key := stateKey(e.Piece)
			childDepth := int32(depth + 1)
			if prev, ok := best.Get(key); ok && prev <= childDepth {
				continue
			}
			best.Put(key, childDepth)
			path := make([]Action, depth+1)
			copy(path, n.path)
			path[depth] = e.Action
			queue = append(queue, searchNode{piece: e.Piece, path: path})
		}
	}
	return solutions
}

// CalculateOptimal returns one minimal input sequence placing the piece at
// (targetX, targetRot) on the board, or nil when the target is unreachable.
// The orientation constraint is strict; pass the zero Board for an empty
// field.
func CalculateOptimal(b Board, start ActivePiece, targetX int, targetRot Rotation) []Action {
	seqs := OptimalSequences(b, start, targetX, targetRot, true, SearchConfig{})
	if len(seqs) == 0 {
		return nil
	}
	return seqs[0]
}
