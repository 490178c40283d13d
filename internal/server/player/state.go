package player

import (
	"github.com/G2-Games/minecraft-alpha-server/internal/gamedata"
	mcnet "github.com/G2-Games/minecraft-alpha-server/internal/server/net"
)

// InvalidEntityID marks a State that has not logged in yet.
const InvalidEntityID int32 = -1

// eyeHeight is the distance from a player's feet to the stance coordinate.
const eyeHeight = 1.62

// State is a connected player as seen by the rest of the server. Values are
// copied between the session and the registry; nothing in it is shared.
type State struct {
	EntityID     int32
	Username     string
	Holding      gamedata.Identifier
	PositionLook mcnet.PlayerPositionLook
}

// Invalid returns the placeholder state a session holds before login.
func Invalid() State {
	return State{EntityID: InvalidEntityID}
}

// New returns a logged-in player standing at the given spawn.
func New(username string, entityID int32, spawn mcnet.PlayerPositionLook) State {
	return State{
		EntityID:     entityID,
		Username:     username,
		Holding:      gamedata.Unknown,
		PositionLook: spawn,
	}
}

// Valid reports whether the state belongs to a logged-in, named player.
// Only valid states are published to the registry.
func (s State) Valid() bool {
	return s.EntityID >= 0 && s.Username != ""
}

// SetPosition replaces the position, keeping the look.
func (s *State) SetPosition(p mcnet.PlayerPosition) {
	s.PositionLook.Position = p
}

// SetLook replaces the look, keeping the position.
func (s *State) SetLook(l mcnet.PlayerLook) {
	s.PositionLook.Look = l
}

// SpawnAt returns the position and look for a player placed with its feet
// at x, y, z facing yaw 0, pitch 0.
func SpawnAt(x, y, z float64) mcnet.PlayerPositionLook {
	return mcnet.PlayerPositionLook{
		Position: mcnet.PlayerPosition{X: x, Y: y, Stance: y + eyeHeight, Z: z},
	}
}
