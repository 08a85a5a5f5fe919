package blocks

import (
	"reflect"
	"testing"
)

// scriptedRand returns a fixed sequence of values, for deterministic piece
// generation in tests.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

func TestRotatedDimensions(t *testing.T) {
	i := TetrominoFor(KindI)

	if i.Height() != 1 || i.Width() != 4 {
		t.Fatalf("I spawn shape should be 1x4, got %dx%d", i.Height(), i.Width())
	}

	vertical := i.Rotated()
	if vertical.Height() != 4 || vertical.Width() != 1 {
		t.Errorf("rotated I should be 4x1, got %dx%d", vertical.Height(), vertical.Width())
	}

	horizontal := vertical.Rotated()
	if horizontal.Height() != 1 || horizontal.Width() != 4 {
		t.Errorf("twice-rotated I should be 1x4 again, got %dx%d", horizontal.Height(), horizontal.Width())
	}
}

func TestRotatedMapping(t *testing.T) {
	// Cell (i, j) of an RxC shape maps to (j, R-1-i) of the CxR result.
	j := TetrominoFor(KindJ)
	rotated := j.Rotated()

	expected := [][]int{
		{1, 1},
		{1, 0},
		{1, 0},
	}
	if !reflect.DeepEqual(rotated.Shape, expected) {
		t.Errorf("rotated J = %v, want %v", rotated.Shape, expected)
	}
}

func TestRotationCycleRestoresShape(t *testing.T) {
	for k := KindI; k <= KindL; k++ {
		t.Run(k.String(), func(t *testing.T) {
			original := TetrominoFor(k)

			rotated := original
			for i := 0; i < 4; i++ {
				rotated = rotated.Rotated()
			}

			if !reflect.DeepEqual(rotated.Shape, original.Shape) {
				t.Errorf("four rotations of %s changed the shape:\ngot  %v\nwant %v",
					k, rotated.Shape, original.Shape)
			}
			if rotated.Kind != original.Kind || rotated.Color != original.Color {
				t.Error("rotation should preserve kind and color")
			}
		})
	}
}

func TestRotatedDoesNotMutate(t *testing.T) {
	s := TetrominoFor(KindS)
	before := make([][]int, len(s.Shape))
	for i, row := range s.Shape {
		before[i] = append([]int(nil), row...)
	}

	s.Rotated()

	if !reflect.DeepEqual(s.Shape, before) {
		t.Error("Rotated must not modify the source shape")
	}
}

func TestRandomTetrominoCoversAllKinds(t *testing.T) {
	rng := &scriptedRand{vals: []int{0, 1, 2, 3, 4, 5, 6}}

	seen := make(map[Kind]bool)
	for i := 0; i < 7; i++ {
		seen[RandomTetromino(rng).Kind] = true
	}

	if len(seen) != 7 {
		t.Errorf("expected all 7 kinds reachable, got %d", len(seen))
	}
}

func TestEveryTetrominoHasFourCells(t *testing.T) {
	for k := KindI; k <= KindL; k++ {
		cells := 0
		for _, row := range TetrominoFor(k).Shape {
			for _, v := range row {
				if v != 0 {
					cells++
				}
			}
		}
		if cells != 4 {
			t.Errorf("%s has %d occupied cells, want 4", k, cells)
		}
	}
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{
		KindI: "I", KindO: "O", KindT: "T", KindS: "S",
		KindZ: "Z", KindJ: "J", KindL: "L",
	}
	for k, want := range names {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}
