package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateOptimalDASToWall(t *testing.T) {
	var b Board
	seq := CalculateOptimal(b, SpawnPiece(T), 0, Spawn)
	assert.Equal(t, []Action{DASLeft, HardDrop}, seq)
}

func TestCalculateOptimalInPlace(t *testing.T) {
	var b Board
	seq := CalculateOptimal(b, SpawnPiece(T), 3, Spawn)
	assert.Equal(t, []Action{HardDrop}, seq, "the spawn column needs only the drop")
}

func TestCalculateOptimalSingleTap(t *testing.T) {
	var b Board
	seq := CalculateOptimal(b, SpawnPiece(T), 2, Spawn)
	assert.Equal(t, []Action{MoveLeft, HardDrop}, seq)
}

func TestCalculateOptimalEndsInExactlyOneHardDrop(t *testing.T) {
	var b Board
	for _, kind := range Pieces {
		for x := -2; x < BoardWidth; x++ {
			for rot := Spawn; rot <= Left; rot++ {
				seq := CalculateOptimal(b, SpawnPiece(kind), x, rot)
				if seq == nil {
					continue
				}
				require.NotEmpty(t, seq)
				assert.Equal(t, HardDrop, seq[len(seq)-1])
				for _, a := range seq[:len(seq)-1] {
					assert.NotEqual(t, HardDrop, a, "%v to (%d,%v): HardDrop before the end", kind, x, rot)
				}
			}
		}
	}
}

func TestCalculateOptimalUnreachableColumn(t *testing.T) {
	var b Board
	// A T in spawn orientation cannot anchor at x=8: its right cell would
	// leave the board.
	assert.Nil(t, CalculateOptimal(b, SpawnPiece(T), 8, Spawn))
}

func TestCalculateOptimalWalledOffTarget(t *testing.T) {
	// A full garbage column splits the field; the target is placeable but
	// the piece cannot cross. The bounded search must return nil, not hang.
	b := NewBoard()
	for y := -VanishRows; y < VisibleHeight; y++ {
		b = b.SetCell(6, y, Garbage)
	}
	start := SpawnPiece(T)
	require.True(t, b.CanPlace(start))
	require.True(t, b.CanPlace(ActivePiece{Kind: T, Rot: Spawn, X: 7, Y: start.Y}))

	assert.Nil(t, CalculateOptimal(b, start, 7, Spawn))
}

func TestOrientationEquivalenceO(t *testing.T) {
	var b Board
	for x := -1; x <= 7; x++ {
		spawn := CalculateOptimal(b, SpawnPiece(O), x, Spawn)
		right := CalculateOptimal(b, SpawnPiece(O), x, Right)
		require.NotNil(t, spawn, "x=%d", x)
		require.NotNil(t, right, "x=%d", x)
		assert.Len(t, right, len(spawn), "all O rotation states share one footprint")
	}
}

func TestOrientationEquivalenceIHalfTurn(t *testing.T) {
	var b Board
	spawn := CalculateOptimal(b, SpawnPiece(I), 3, Spawn)
	two := CalculateOptimal(b, SpawnPiece(I), 3, Two)
	require.NotNil(t, spawn)
	require.NotNil(t, two)
	assert.Len(t, two, len(spawn), "a flat I is its own half turn")
}

func TestStrictOrientationRequiresRotation(t *testing.T) {
	var b Board
	// A T on its side is never a translation of its spawn footprint.
	seq := CalculateOptimal(b, SpawnPiece(T), 3, Right)
	require.NotNil(t, seq)
	assert.Contains(t, seq, RotateCW)
}

// reachesIn reports whether any sequence of at most maxInputs inputs drops to
// the goal occupancy, by exhaustive enumeration. Independent check of the
// BFS optimality claim.
func reachesIn(b Board, p ActivePiece, goal uint32, maxInputs int) bool {
	if occupancyKey(b, p) == goal {
		return true
	}
	if maxInputs == 0 {
		return false
	}
	for _, e := range Neighbors(b, p) {
		if reachesIn(b, e.Piece, goal, maxInputs-1) {
			return true
		}
	}
	return false
}

func TestOptimalityExhaustive(t *testing.T) {
	var b Board
	targets := []struct {
		kind Piece
		x    int
		rot  Rotation
	}{
		{J, 0, Right},
		{J, 7, Two},
		{L, 5, Left},
		{S, 1, Spawn},
		{I, 0, Right},
		{T, 6, Two},
	}
	for _, tt := range targets {
		start := SpawnPiece(tt.kind)
		seqs := OptimalSequences(b, start, tt.x, tt.rot, false, SearchConfig{})
		require.NotEmpty(t, seqs, "%v to (%d,%v)", tt.kind, tt.x, tt.rot)

		inputs := len(seqs[0]) - 1 // trailing HardDrop carries no search depth
		goal := occupancyKey(b, ActivePiece{Kind: tt.kind, Rot: tt.rot, X: tt.x, Y: start.Y})
		assert.True(t, reachesIn(b, start, goal, inputs),
			"%v to (%d,%v): reported optimum unreachable", tt.kind, tt.x, tt.rot)
		if inputs > 0 {
			assert.False(t, reachesIn(b, start, goal, inputs-1),
				"%v to (%d,%v): found shorter than reported optimum", tt.kind, tt.x, tt.rot)
		}
	}
}

func TestSearchNodeCapTruncates(t *testing.T) {
	b := NewBoard().SetCell(0, 19, Garbage)
	seqs := OptimalSequences(b, SpawnPiece(T), 7, Two, false, SearchConfig{MaxVisitedNodes: 1})
	assert.Empty(t, seqs, "a one-node budget cannot reach a rotated far column")
}

func TestStateKeyDistinct(t *testing.T) {
	seen := map[uint32]ActivePiece{}
	for _, kind := range Pieces {
		for rot := Spawn; rot <= Left; rot++ {
			for x := -4; x < BoardWidth; x++ {
				for y := -VanishRows; y < VisibleHeight; y++ {
					p := ActivePiece{Kind: kind, Rot: rot, X: x, Y: y}
					k := stateKey(p)
					if prev, ok := seen[k]; ok {
						t.Fatalf("state key collision: %+v and %+v", prev, p)
					}
					seen[k] = p
				}
			}
		}
	}
}

func TestOccupancyKeySymmetric(t *testing.T) {
	var b Board
	// O shares one footprint across all states; S in two is its spawn
	// footprint shifted one row, which dropping cancels out.
	assert.Equal(t,
		occupancyKey(b, ActivePiece{Kind: O, Rot: Spawn, X: 4, Y: 0}),
		occupancyKey(b, ActivePiece{Kind: O, Rot: Left, X: 4, Y: 0}))
	assert.Equal(t,
		occupancyKey(b, ActivePiece{Kind: S, Rot: Spawn, X: 4, Y: 0}),
		occupancyKey(b, ActivePiece{Kind: S, Rot: Two, X: 4, Y: 0}))
}
