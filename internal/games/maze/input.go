package maze

import (
	platformcore "github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/maze/core"
)

// holdState turns key presses into held movement. Terminals report presses
// but not releases, so a press keeps its axis held for a number of ticks.
type holdState struct {
	holdTicks int
	dx, dy    int
	xLeft     int
	yLeft     int
}

func newHoldState(holdTicks int) holdState {
	return holdState{holdTicks: max(holdTicks, 1)}
}

// Update folds this tick's input in and returns the movement intent.
// A press on an axis replaces that axis; opposing presses in one frame cancel.
func (h *holdState) Update(in platformcore.InputFrame) core.Intent {
	dx, dy := in.Axes()
	if in.Has(platformcore.ActionLeft) || in.Has(platformcore.ActionRight) {
		h.dx, h.xLeft = dx, h.holdTicks
	}
	if in.Has(platformcore.ActionUp) || in.Has(platformcore.ActionDown) {
		h.dy, h.yLeft = dy, h.holdTicks
	}

	intent := core.Intent{DX: h.dx, DY: h.dy}

	if h.xLeft > 0 {
		h.xLeft--
		if h.xLeft == 0 {
			h.dx = 0
		}
	}
	if h.yLeft > 0 {
		h.yLeft--
		if h.yLeft == 0 {
			h.dy = 0
		}
	}
	return intent
}

// Release drops every held direction.
func (h *holdState) Release() {
	h.dx, h.dy, h.xLeft, h.yLeft = 0, 0, 0, 0
}
