package core

import "testing"

func TestInputFrameAxes(t *testing.T) {
	tests := []struct {
		name   string
		set    []Action
		dx, dy int
	}{
		{"none", nil, 0, 0},
		{"up", []Action{ActionUp}, 0, -1},
		{"down right", []Action{ActionDown, ActionRight}, 1, 1},
		{"left right cancel", []Action{ActionLeft, ActionRight}, 0, 0},
		{"up down cancel keeps x", []Action{ActionUp, ActionDown, ActionLeft}, -1, 0},
		{"non-directional ignored", []Action{ActionPause, ActionConfirm}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.set {
				f.Set(a)
			}
			dx, dy := f.Axes()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Axes() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)

	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionDown)
	if !zero.Has(ActionDown) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
