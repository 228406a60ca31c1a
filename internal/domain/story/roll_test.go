package story

import "testing"

func TestRollTotal_AssistRollsCeilAndCap(t *testing.T) {
	a := &Action{
		Tuning: RollTuning{
			Assists: PointCost{Divisor: 3, Cap: 5},
		},
	}

	// ceil(10/3) = 4, under the cap.
	if got := a.RollTotal(0, []int{4, 3, 3}); got != 4 {
		t.Fatalf("expected 4 assist points, got %d", got)
	}
	// ceil(20/3) = 7, clamped to 5.
	if got := a.RollTotal(0, []int{10, 10}); got != 5 {
		t.Fatalf("expected cap at 5, got %d", got)
	}
}

func TestRollTotal_OwnerRollAndModifier(t *testing.T) {
	a := &Action{Tuning: RollTuning{AdditionalModifier: 7}}
	if got := a.RollTotal(12, nil); got != 19 {
		t.Fatalf("expected 19, got %d", got)
	}
}

func TestRollTotal_OwnResourcesRideAtFaceValue(t *testing.T) {
	a := &Action{
		Pool: ResourcePool{Economic: 4},
		Tuning: RollTuning{
			Economic: PointCost{Divisor: 1000, Cap: 20},
		},
		Assists: []Assist{
			{Pool: ResourcePool{Economic: 2500}},
		},
	}
	// Assists contribute ceil(2500/1000) = 3; the owner's 4 ride along
	// undivided.
	if got := a.RollTotal(0, nil); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestRollTotal_CapZeroDisablesSourceIncludingOwnPool(t *testing.T) {
	a := &Action{
		Pool: ResourcePool{Silver: 100000},
		Tuning: RollTuning{
			Silver: PointCost{Divisor: 100000, Cap: 0},
		},
		Assists: []Assist{
			{Pool: ResourcePool{Silver: 200000}},
		},
	}
	if got := a.RollTotal(0, nil); got != 0 {
		t.Fatalf("expected disabled silver source, got %d", got)
	}
}

func TestRollTotal_EffortPointsNeverScore(t *testing.T) {
	a := &Action{
		Pool: ResourcePool{ActionPoints: 500},
		Tuning: RollTuning{
			ActionPoints: PointCost{Divisor: 100, Cap: 100},
		},
		Assists: []Assist{
			{Pool: ResourcePool{ActionPoints: 900}},
		},
	}
	if got := a.RollTotal(0, nil); got != 0 {
		t.Fatalf("expected effort points to be excluded, got %d", got)
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct {
		n, d, want int
	}{
		{0, 3, 0},
		{-5, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
	}
	for _, c := range cases {
		if got := ceilDiv(c.n, c.d); got != c.want {
			t.Fatalf("ceilDiv(%d,%d) = %d, want %d", c.n, c.d, got, c.want)
		}
	}
}
