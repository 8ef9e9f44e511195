package scenes

import (
	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveForward
	ActionMoveBack
	ActionSlam
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// analogDeadzone is the left stick deadzone (0.0 to 1.0).
const analogDeadzone = 0.25

var bindings = map[ActionID]InputBinding{
	ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionMoveForward: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionMoveBack: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionSlam: {
		Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionRestart: {
		Keys: []ebiten.Key{ebiten.KeyR},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

type inputState struct {
	current  [ActionCount]bool
	previous [ActionCount]bool
	stick    gamemath.Vec2
}

// poll swaps buffers and reads every binding plus the left stick.
func (s *inputState) poll() {
	s.previous = s.current
	s.current = [ActionCount]bool{}
	s.stick = gamemath.Vec2{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.current[actionID] = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h*h+v*v > analogDeadzone*analogDeadzone {
			// Stick up is negative.
			s.stick = gamemath.Vec2{X: h, Y: -v}
		}
	}
}

func (s *inputState) pressed(a ActionID) bool     { return s.current[a] }
func (s *inputState) justPressed(a ActionID) bool { return s.current[a] && !s.previous[a] }

func (s *inputState) justReleased(a ActionID) bool {
	return !s.current[a] && s.previous[a]
}

// move combines the digital directions with the stick.
func (s *inputState) move() gamemath.Vec2 {
	m := s.stick
	if s.pressed(ActionMoveLeft) {
		m.X--
	}
	if s.pressed(ActionMoveRight) {
		m.X++
	}
	if s.pressed(ActionMoveForward) {
		m.Y++
	}
	if s.pressed(ActionMoveBack) {
		m.Y--
	}
	m.X = gamemath.Clamp(m.X, -1, 1)
	m.Y = gamemath.Clamp(m.Y, -1, 1)
	return m
}

// writePlayerInput publishes this frame's input onto the player.
func (s *inputState) writePlayerInput(player *donburi.Entry) {
	if player == nil || !player.Valid() || !player.HasComponent(components.PlayerInput) {
		return
	}
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		Move: s.move(),
		Slam: components.ActionState{
			Pressed:      s.pressed(ActionSlam),
			JustPressed:  s.justPressed(ActionSlam),
			JustReleased: s.justReleased(ActionSlam),
		},
	})
}

// debugToggled uses inpututil so the toggle fires once per key press even
// when a frame is skipped.
func debugToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
