package sat

import "testing"

// Property 3 (spec.md §8): unrollVector is strictly monotone once literals
// are recorded, starts at 0, and its last entry never exceeds the trail
// size.
func TestTrail_UnrollVectorInvariants(t *testing.T) {
	tr := newTrail()
	if got := tr.unrollVector[0]; got != 0 {
		t.Fatalf("unrollVector[0] = %d, want 0", got)
	}

	tr.push(PosLiteral(1))
	tr.openLevel()
	tr.push(PosLiteral(2))
	tr.push(NegLiteral(3))
	tr.openLevel()
	tr.push(PosLiteral(4))

	for i := 1; i < len(tr.unrollVector); i++ {
		if tr.unrollVector[i] <= tr.unrollVector[i-1] {
			t.Errorf("unrollVector not strictly monotone at %d: %v", i, tr.unrollVector)
		}
	}
	if boundary := tr.unrollVector[tr.currentLevel()]; boundary > tr.size() {
		t.Errorf("unrollVector[currentLevel] = %d > trail size %d", boundary, tr.size())
	}
}

func TestTrail_UnrollUndoesInOrder(t *testing.T) {
	tr := newTrail()
	tr.push(PosLiteral(1))
	tr.openLevel()
	tr.push(PosLiteral(2))
	tr.openLevel()
	tr.push(NegLiteral(3))
	tr.push(PosLiteral(4))

	var undone []Literal
	tr.unroll(1, func(l Literal) { undone = append(undone, l) })

	want := []Literal{PosLiteral(4), NegLiteral(3)}
	if len(undone) != len(want) {
		t.Fatalf("undone %d literals, want %d", len(undone), len(want))
	}
	for i := range want {
		if undone[i] != want[i] {
			t.Errorf("undone[%d] = %v, want %v (most-recent-first)", i, undone[i], want[i])
		}
	}
	if tr.currentLevel() != 1 {
		t.Errorf("currentLevel() = %d after unroll(1), want 1", tr.currentLevel())
	}
	if tr.size() != 2 {
		t.Errorf("size() = %d after unroll(1), want 2", tr.size())
	}
}
