package controller

import "github.com/gogpu/gpucontext"

// Action is a key press translated into a controller command.
// The same bindings drive every lab so the keys feel alike across them.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	// ActionZoomIn magnifies the content: the clip window shrinks, or the
	// transformed shape grows.
	ActionZoomIn
	ActionZoomOut
	ActionRotateCCW
	ActionRotateCW
	ActionToggle
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionUp:        "up",
	ActionDown:      "down",
	ActionZoomIn:    "zoom-in",
	ActionZoomOut:   "zoom-out",
	ActionRotateCCW: "rotate-ccw",
	ActionRotateCW:  "rotate-cw",
	ActionToggle:    "toggle",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Action(?)"
}

// ActionForKey returns the action bound to key, or ActionNone.
//
//	arrows   pan the clip window / translate the shape
//	W, S     zoom in / zoom out
//	A, D     rotate counterclockwise / clockwise
//	Space    toggle clipping
func ActionForKey(key gpucontext.Key) Action {
	switch key {
	case gpucontext.KeyLeft:
		return ActionLeft
	case gpucontext.KeyRight:
		return ActionRight
	case gpucontext.KeyUp:
		return ActionUp
	case gpucontext.KeyDown:
		return ActionDown
	case gpucontext.KeyW:
		return ActionZoomIn
	case gpucontext.KeyS:
		return ActionZoomOut
	case gpucontext.KeyA:
		return ActionRotateCCW
	case gpucontext.KeyD:
		return ActionRotateCW
	case gpucontext.KeySpace:
		return ActionToggle
	}
	return ActionNone
}
