package obstacle

import (
	"testing"

	"github.com/vovakirdan/pushout/internal/core"
)

type fixedBody struct {
	pos core.Vec3
}

func (b *fixedBody) Position() core.Vec3 { return b.pos }

// countingRemover removes from a set and records each call.
type countingRemover struct {
	set   *Set
	calls int
}

func (r *countingRemover) RemoveObstacle(id ID) bool {
	r.calls++
	_, ok := r.set.Remove(id)
	return ok
}

func TestBoundsOutside(t *testing.T) {
	b := DefaultBounds()

	tests := []struct {
		name     string
		pos      core.Vec3
		expected bool
	}{
		{"resting on platform", core.Vec3{X: 1, Y: 0.5, Z: 2}, false},
		{"falling in from above", core.Vec3{Y: 8}, false},
		{"at low boundary", core.Vec3{Y: -1}, false},
		{"below low boundary", core.Vec3{Y: -1.01}, true},
		{"at far boundary", core.Vec3{Y: 0.5, Z: 6}, false},
		{"past far boundary", core.Vec3{Y: 0.5, Z: 6.2}, true},
		{"behind the back wall", core.Vec3{Y: 0.5, Z: -9}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Outside(tc.pos); got != tc.expected {
				t.Errorf("Outside(%+v) = %v, expected %v", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestSweepRemovesOnlyOutOfBounds(t *testing.T) {
	set := NewSet(4)
	set.Add(New(1, 1, &fixedBody{pos: core.Vec3{Y: 0.5}}))
	set.Add(New(2, 1, &fixedBody{pos: core.Vec3{Y: -3}}))
	set.Add(New(3, 1, &fixedBody{pos: core.Vec3{Y: 0.5, Z: 7}}))
	set.Add(New(4, 1, &fixedBody{pos: core.Vec3{Y: 0.5, Z: -4}}))

	r := &countingRemover{set: set}
	removed := Sweep(set.All(), DefaultBounds(), r)

	if removed != 2 {
		t.Errorf("Sweep() removed %d, expected 2", removed)
	}
	if set.Contains(2) || set.Contains(3) {
		t.Error("out-of-bounds obstacles should be removed")
	}
	if !set.Contains(1) || !set.Contains(4) {
		t.Error("in-bounds obstacles should stay")
	}
}

func TestSweepTwiceCountsOnce(t *testing.T) {
	set := NewSet(1)
	o := New(7, 1, &fixedBody{pos: core.Vec3{Y: -5}})
	set.Add(o)
	r := &countingRemover{set: set}

	snapshot := set.All()
	first := Sweep(snapshot, DefaultBounds(), r)
	second := Sweep(snapshot, DefaultBounds(), r)

	if first != 1 || second != 0 {
		t.Errorf("Sweep() = %d then %d, expected 1 then 0", first, second)
	}
}

func TestSetOrderAndRemove(t *testing.T) {
	set := NewSet(0)
	for id := ID(1); id <= 4; id++ {
		set.Add(New(id, 1, nil))
	}

	if _, ok := set.Remove(2); !ok {
		t.Fatal("Remove(2) should succeed")
	}
	if _, ok := set.Remove(2); ok {
		t.Error("second Remove(2) should report absence")
	}

	got := set.All()
	expected := []ID{1, 3, 4}
	if len(got) != len(expected) {
		t.Fatalf("All() returned %d obstacles, expected %d", len(got), len(expected))
	}
	for i, o := range got {
		if o.ID != expected[i] {
			t.Errorf("All()[%d] = %d, expected %d", i, o.ID, expected[i])
		}
	}
	if set.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", set.Len())
	}
}

func TestObstacleWithoutBody(t *testing.T) {
	o := New(1, 1, nil)
	if o.Position() != (core.Vec3{}) {
		t.Error("obstacle without body should report the origin")
	}
}
