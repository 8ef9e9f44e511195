package components

import (
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData is written by the host's input poller once per frame.
type PlayerInputData struct {
	Move gamemath.Vec2 // X right, Y forward
	Slam ActionState
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
