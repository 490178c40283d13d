package conn

import (
	"fmt"
	"math"

	"github.com/G2-Games/minecraft-alpha-server/internal/server/packet"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/player"
)

func handleLogin(c *Connection, p packet.Packet) (bool, error) {
	login := p.(*packet.LoginRequest)

	if login.ProtocolVersion != packet.ProtocolVersion {
		c.log.Warn("unexpected protocol version", "version", login.ProtocolVersion, "want", packet.ProtocolVersion)
	}

	// A second login on the same stream replaces the first identity.
	if c.self.Valid() && c.self.Username != login.Username {
		c.shared.Players.Remove(c.self.Username, c.self.EntityID)
	}

	cfg := c.shared.Config
	eid := c.shared.EntityIDs.Next()
	c.self = player.New(login.Username, eid, player.SpawnAt(cfg.Spawn.X, cfg.Spawn.Y, cfg.Spawn.Z))
	c.log = c.log.With("player", login.Username)

	if err := c.writePacket(packet.LoginSuccess{
		EntityID:  eid,
		Seed:      cfg.Seed,
		Dimension: cfg.Dimension,
	}); err != nil {
		return true, fmt.Errorf("write login success: %w", err)
	}

	worldBytes, err := c.shared.World.WriteChunkGrid(c.w)
	if err != nil {
		return true, fmt.Errorf("write chunk grid: %w", err)
	}

	if err := c.writePacket(packet.SpawnPosition{
		X: int32(math.Floor(cfg.Spawn.X)),
		Y: int32(c.shared.World.SpawnHeight()),
		Z: int32(math.Floor(cfg.Spawn.Z)),
	}); err != nil {
		return true, fmt.Errorf("write spawn position: %w", err)
	}

	if err := c.writePacket(packet.PlayerPositionAndLookClientbound{
		PositionLook: c.self.PositionLook,
		OnGround:     true,
	}); err != nil {
		return true, fmt.Errorf("write position and look: %w", err)
	}

	c.state = StatePlaying
	c.shared.Metrics.LoggedIn(worldBytes)
	c.log.Info("login success", "entity_id", eid, "protocol", login.ProtocolVersion, "world_bytes", worldBytes)
	return false, nil
}
