package conn

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/G2-Games/minecraft-alpha-server/internal/server/config"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/metrics"
	mcnet "github.com/G2-Games/minecraft-alpha-server/internal/server/net"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/packet"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/player"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/world"
)

// State represents the connection state.
type State int

const (
	StateAwaitingHandshake State = iota
	StateAwaitingLogin
	StatePlaying
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateAwaitingHandshake:
		return "awaiting_handshake"
	case StateAwaitingLogin:
		return "awaiting_login"
	case StatePlaying:
		return "playing"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Shared is the server-wide state every session reads from or publishes to.
type Shared struct {
	Config    *config.Config
	World     *world.World
	Players   *player.Registry
	EntityIDs *player.EntityIDs
	Decoder   *packet.Decoder
	Metrics   *metrics.Metrics
}

// Connection runs the protocol for a single client stream.
type Connection struct {
	conn      net.Conn
	r         *bufio.Reader
	w         *bufio.Writer
	shared    *Shared
	log       *slog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	transport string

	// Only touched from the Handle goroutine.
	state State
	self  player.State
}

// NewConnection wraps an accepted stream. transport names the listener it
// came from and is used for logs and metrics.
func NewConnection(ctx context.Context, c net.Conn, shared *Shared, log *slog.Logger, transport string) *Connection {
	ctx, cancel := context.WithCancel(ctx)
	return &Connection{
		conn:      c,
		r:         bufio.NewReader(c),
		w:         bufio.NewWriter(c),
		shared:    shared,
		log:       log.With("addr", c.RemoteAddr().String(), "conn", uuid.NewString(), "transport", transport),
		ctx:       ctx,
		cancel:    cancel,
		transport: transport,
		state:     StateAwaitingHandshake,
		self:      player.Invalid(),
	}
}

// Handle runs the connection until the client leaves, the stream fails or
// the context is cancelled. It always closes the stream before returning.
func (c *Connection) Handle() {
	stop := context.AfterFunc(c.ctx, func() { c.conn.Close() })
	defer func() {
		stop()
		if c.self.Valid() {
			c.shared.Players.Remove(c.self.Username, c.self.EntityID)
		}
		c.cancel()
		c.conn.Close()
		c.state = StateClosed
		c.shared.Metrics.SessionClosed()
		c.log.Info("connection closed")
	}()

	c.shared.Metrics.SessionOpened(c.transport)
	c.log.Info("connection accepted")

	for {
		done, err := c.handleNextPacket()
		if err != nil {
			c.logError(err)
			return
		}
		if done {
			return
		}
	}
}

// handleNextPacket processes one client message: decode, dispatch, publish
// the local player state and echo a keepalive. It reports whether the
// session is over.
func (c *Connection) handleNextPacket() (bool, error) {
	if timeout := c.shared.Config.IdleTimeout; timeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return true, fmt.Errorf("set read deadline: %w", mcnet.IOError(err))
		}
	}

	p, err := c.shared.Decoder.Decode(c.r)
	if err != nil {
		return true, err
	}
	c.shared.Metrics.PacketReceived(p.Opcode().String())

	h, ok := handlers[p.Opcode()]
	if !ok {
		return true, fmt.Errorf("%w 0x%02X", packet.ErrUnknownOpcode, uint8(p.Opcode()))
	}
	done, err := h(c, p)
	if err != nil {
		return true, fmt.Errorf("handle %s: %w", p.Opcode(), err)
	}

	c.reconcile()
	if done {
		return true, nil
	}

	if err := c.writePacket(packet.KeepAlive{}); err != nil {
		return true, err
	}
	if err := c.w.Flush(); err != nil {
		return true, fmt.Errorf("flush: %w", mcnet.IOError(err))
	}
	return false, nil
}

// reconcile publishes the local player state if it differs from the
// registry's copy.
func (c *Connection) reconcile() {
	if !c.self.Valid() {
		return
	}
	if c.shared.Players.Upsert(c.self) {
		c.log.Debug("player state published", "player", c.self.Username)
	}
}

// writePacket buffers p; it reaches the client on the next flush.
func (c *Connection) writePacket(p packet.Packet) error {
	return packet.Write(c.w, p)
}

func (c *Connection) logError(err error) {
	if c.ctx.Err() != nil {
		c.log.Debug("connection cancelled", "state", c.state)
		return
	}
	if errors.Is(err, io.EOF) {
		c.log.Info("client hung up", "state", c.state)
		return
	}

	kind := mcnet.Classify(err)
	c.shared.Metrics.SessionError(kind.String())
	switch kind {
	case mcnet.KindIO:
		c.log.Warn("connection failed", "state", c.state, "error", err)
	case mcnet.KindMalformed:
		c.log.Warn("protocol error", "state", c.state, "error", err)
	default:
		c.log.Error("handling packet", "state", c.state, "error", err)
	}
}
