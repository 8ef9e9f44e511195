package components

import (
	"github.com/automoto/slambounce/config"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PlayerData is the combat and traversal state of the player.
//
// SlamCharge is a single pending slam. It is cleared in the same step that
// sets IsSlamming and is only earned back through an Enhanced or Super bounce.
type PlayerData struct {
	SlamCharge    bool
	IsSlamming    bool
	BounceType    config.BounceType
	SlamStartTime float64 // scene seconds at activation

	HasCheckpoint bool
	Checkpoint    gamemath.Vec3

	GameOver bool

	InputEnabled         bool
	FallDetectionEnabled bool

	// Derived each frame from a downward probe and vertical velocity.
	Airborne bool

	// Contacts of the previous physics step; a contact raises a collision
	// event only on the step it first appears.
	Touching map[*resolv.Object]struct{}
}

var Player = donburi.NewComponentType[PlayerData]()

// NewPlayerData returns the initial state: no charge, no checkpoint, input
// and fall detection enabled.
func NewPlayerData() PlayerData {
	return PlayerData{
		BounceType:           config.BounceNormal,
		InputEnabled:         true,
		FallDetectionEnabled: true,
		Touching:             map[*resolv.Object]struct{}{},
	}
}

// CanSlam reports whether an ability input would start a slam.
func (p *PlayerData) CanSlam() bool {
	return p.SlamCharge && !p.IsSlamming && !p.GameOver && p.InputEnabled
}
