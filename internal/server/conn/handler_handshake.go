package conn

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/G2-Games/minecraft-alpha-server/internal/server/packet"
)

// handler processes one decoded message. It reports whether the session
// should end after it.
type handler func(c *Connection, p packet.Packet) (bool, error)

var handlers = map[packet.Opcode]handler{
	packet.OpKeepAlive:             handleKeepAlive,
	packet.OpHandshake:             handleHandshake,
	packet.OpLogin:                 handleLogin,
	packet.OpChat:                  handleChat,
	packet.OpPlayer:                handlePlayer,
	packet.OpPlayerPosition:        handlePlayerPosition,
	packet.OpPlayerLook:            handlePlayerLook,
	packet.OpPlayerPositionAndLook: handlePlayerPositionAndLook,
	packet.OpPlayerDigging:         handlePlayerDigging,
	packet.OpBlockPlacement:        handleBlockPlacement,
	packet.OpHoldingChange:         handleHoldingChange,
	packet.OpAnimation:             handleAnimation,
	packet.OpDisconnect:            handleDisconnect,
}

func handleKeepAlive(c *Connection, _ packet.Packet) (bool, error) {
	c.log.Debug("keepalive")
	return false, nil
}

func handleHandshake(c *Connection, p packet.Packet) (bool, error) {
	hs := p.(*packet.Handshake)

	token, err := newToken()
	if err != nil {
		return true, err
	}
	if err := c.writePacket(packet.HandshakeReply{Token: token}); err != nil {
		return true, fmt.Errorf("write handshake reply: %w", err)
	}

	c.log.Info("handshake", "username", hs.Username)
	if c.state == StateAwaitingHandshake {
		c.state = StateAwaitingLogin
	}
	return false, nil
}

func handleDisconnect(c *Connection, p packet.Packet) (bool, error) {
	d := p.(*packet.Disconnect)
	c.log.Info("client disconnected", "reason", d.Reason)
	return true, nil
}

// newToken returns the hex MD5 digest of 16 random bytes, the form of
// connection hash Beta clients expect.
func newToken() (string, error) {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	sum := md5.Sum(seed[:])
	return hex.EncodeToString(sum[:]), nil
}
