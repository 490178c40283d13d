package conn

import (
	"github.com/G2-Games/minecraft-alpha-server/internal/server/packet"
)

func handleChat(c *Connection, p packet.Packet) (bool, error) {
	msg := p.(*packet.Chat)
	c.log.Info("chat", "message", msg.Message)
	return false, nil
}

func handlePlayer(_ *Connection, _ packet.Packet) (bool, error) {
	return false, nil
}

func handlePlayerPosition(c *Connection, p packet.Packet) (bool, error) {
	c.self.SetPosition(p.(*packet.PlayerPosition).Position)
	return false, nil
}

func handlePlayerLook(c *Connection, p packet.Packet) (bool, error) {
	c.self.SetLook(p.(*packet.PlayerLook).Look)
	return false, nil
}

func handlePlayerPositionAndLook(c *Connection, p packet.Packet) (bool, error) {
	c.self.PositionLook = p.(*packet.PlayerPositionAndLook).PositionLook
	return false, nil
}

func handlePlayerDigging(c *Connection, p packet.Packet) (bool, error) {
	d := p.(*packet.PlayerDigging)
	c.log.Debug("digging", "status", d.Status, "x", d.X, "y", d.Y, "z", d.Z, "face", d.Face)
	return false, nil
}

func handleBlockPlacement(c *Connection, p packet.Packet) (bool, error) {
	bp := p.(*packet.BlockPlacement)
	args := []any{"item", bp.Item, "x", bp.X, "y", bp.Y, "z", bp.Z, "direction", bp.Direction}
	if bp.Stack != nil {
		args = append(args, "amount", bp.Stack.Count, "damage", bp.Stack.Damage)
	}
	c.log.Debug("block placement", args...)
	return false, nil
}

func handleHoldingChange(c *Connection, p packet.Packet) (bool, error) {
	h := p.(*packet.HoldingChange)
	c.self.Holding = h.Item(c.shared.Decoder.Catalog())
	c.log.Debug("holding change", "item", c.self.Holding)
	return false, nil
}

func handleAnimation(c *Connection, p packet.Packet) (bool, error) {
	a := p.(*packet.Animation)
	c.log.Debug("animation", "entity_id", a.EntityID, "animation", a.Animation)
	return false, nil
}
