package conn

import (
	"bufio"
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/G2-Games/minecraft-alpha-server/internal/gamedata"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/config"
	mcnet "github.com/G2-Games/minecraft-alpha-server/internal/server/net"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/packet"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/player"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/world"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/world/gen"
)

type testClient struct {
	t    *testing.T
	conn net.Conn
	r    *bufio.Reader
	done chan struct{}
}

func newShared(radius int) *Shared {
	cfg := config.DefaultConfig()
	cfg.PlayAreaRadius = radius
	return &Shared{
		Config:    cfg,
		World:     world.NewWorld(gen.FlatGenerator{}, radius),
		Players:   player.NewRegistry(),
		EntityIDs: &player.EntityIDs{},
		Decoder:   packet.NewDecoder(nil),
	}
}

// startSession runs a Connection on one end of a pipe and returns the other.
func startSession(t *testing.T, shared *Shared) *testClient {
	t.Helper()
	server, client := net.Pipe()
	require.NoError(t, client.SetDeadline(time.Now().Add(10*time.Second)))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewConnection(context.Background(), server, shared, log, "pipe")

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Handle()
	}()
	t.Cleanup(func() {
		client.Close()
		<-done
	})
	return &testClient{t: t, conn: client, r: bufio.NewReader(client), done: done}
}

func (tc *testClient) send(p packet.Packet) {
	tc.t.Helper()
	require.NoError(tc.t, packet.Write(tc.conn, p))
}

func (tc *testClient) sendRaw(b []byte) {
	tc.t.Helper()
	_, err := tc.conn.Write(b)
	require.NoError(tc.t, err)
}

// expect reads one message and decodes it into p, which must match the
// opcode on the wire.
func (tc *testClient) expect(p packet.Packet) {
	tc.t.Helper()
	op, err := tc.r.ReadByte()
	require.NoError(tc.t, err, "reading opcode for %s", p.Opcode())
	require.Equal(tc.t, p.Opcode(), packet.Opcode(op))
	require.NoError(tc.t, packet.DecodeBody(tc.r, p))
}

func (tc *testClient) expectKeepAlive() {
	tc.t.Helper()
	tc.expect(&packet.KeepAlive{})
}

// expectClosed asserts the server sends nothing more and hangs up.
func (tc *testClient) expectClosed() {
	tc.t.Helper()
	b, err := tc.r.ReadByte()
	require.ErrorIs(tc.t, err, io.EOF, "unexpected byte 0x%02X", b)
	select {
	case <-tc.done:
	case <-time.After(5 * time.Second):
		tc.t.Fatal("session did not finish")
	}
}

func (tc *testClient) login(name string) packet.LoginSuccess {
	tc.t.Helper()
	tc.send(packet.Handshake{Username: name})
	var reply packet.HandshakeReply
	tc.expect(&reply)
	tc.expectKeepAlive()

	tc.send(packet.LoginRequest{ProtocolVersion: packet.ProtocolVersion, Username: name})
	var ok packet.LoginSuccess
	tc.expect(&ok)
	return ok
}

func TestHandshakeReply(t *testing.T) {
	tc := startSession(t, newShared(1))

	tc.send(packet.Handshake{Username: "Alice"})
	var reply packet.HandshakeReply
	tc.expect(&reply)
	tc.expectKeepAlive()

	require.Len(t, reply.Token, 32)
	_, err := hex.DecodeString(reply.Token)
	assert.NoError(t, err, "token is hex")
}

func TestLoginStreamsWorld(t *testing.T) {
	shared := newShared(1)
	tc := startSession(t, shared)

	ok := tc.login("Alice")
	assert.GreaterOrEqual(t, ok.EntityID, int32(0))
	assert.Empty(t, ok.Reserved1)
	assert.Empty(t, ok.Reserved2)

	// Radius 1 → chunks -1..0 on both axes, PreChunk then MapChunk each.
	for cx := int32(-1); cx < 1; cx++ {
		for cz := int32(-1); cz < 1; cz++ {
			var pre packet.PreChunk
			tc.expect(&pre)
			assert.Equal(t, packet.NewPreChunkLoad(cx, cz), pre)

			var m packet.MapChunk
			tc.expect(&m)
			assert.Equal(t, cx*16, m.X)
			assert.Equal(t, cz*16, m.Z)
			assert.Equal(t, []uint8{15, 127, 15}, []uint8{m.SizeX, m.SizeY, m.SizeZ})

			a, err := world.Decompress(m.Data)
			require.NoError(t, err)
			assert.Equal(t, gamedata.BlockGrass, a.BlockAt(3, 7, 9))
		}
	}

	var spawn packet.SpawnPosition
	tc.expect(&spawn)
	assert.Equal(t, packet.SpawnPosition{X: 0, Y: 8, Z: 0}, spawn)

	var pos packet.PlayerPositionAndLookClientbound
	tc.expect(&pos)
	assert.Equal(t, 0.5, pos.PositionLook.Position.X)
	assert.Equal(t, 9.63, pos.PositionLook.Position.Y)
	assert.InDelta(t, 11.25, pos.PositionLook.Position.Stance, 1e-9)

	tc.expectKeepAlive()

	// Published before the keepalive was written.
	got, found := shared.Players.Get("Alice")
	require.True(t, found)
	assert.Equal(t, ok.EntityID, got.EntityID)
	assert.Equal(t, gamedata.Unknown, got.Holding)
}

func (tc *testClient) drainLogin() {
	tc.t.Helper()
	for {
		op, err := tc.r.ReadByte()
		require.NoError(tc.t, err)
		switch packet.Opcode(op) {
		case packet.OpPreChunk:
			require.NoError(tc.t, packet.DecodeBody(tc.r, &packet.PreChunk{}))
		case packet.OpMapChunk:
			require.NoError(tc.t, packet.DecodeBody(tc.r, &packet.MapChunk{}))
		case packet.OpSpawnPosition:
			require.NoError(tc.t, packet.DecodeBody(tc.r, &packet.SpawnPosition{}))
		case packet.OpPlayerPositionAndLook:
			require.NoError(tc.t, packet.DecodeBody(tc.r, &packet.PlayerPositionAndLookClientbound{}))
		case packet.OpKeepAlive:
			return
		default:
			tc.t.Fatalf("unexpected opcode %s during login", packet.Opcode(op))
		}
	}
}

func TestMovementUpdatesRegistry(t *testing.T) {
	shared := newShared(1)
	tc := startSession(t, shared)
	tc.login("Alice")
	tc.drainLogin()

	pos := mcnet.PlayerPosition{X: 4, Y: 8, Stance: 9.62, Z: -2}
	tc.send(packet.PlayerPosition{Position: pos, OnGround: true})
	tc.expectKeepAlive()

	got, _ := shared.Players.Get("Alice")
	assert.Equal(t, pos, got.PositionLook.Position)

	look := mcnet.PlayerLook{Yaw: 90, Pitch: 15}
	tc.send(packet.PlayerLook{Look: look})
	tc.expectKeepAlive()

	got, _ = shared.Players.Get("Alice")
	assert.Equal(t, look, got.PositionLook.Look)
	assert.Equal(t, pos, got.PositionLook.Position, "look keeps position")

	both := mcnet.PlayerPositionLook{
		Position: mcnet.PlayerPosition{X: 1, Y: 2, Stance: 3.62, Z: 4},
		Look:     mcnet.PlayerLook{Yaw: 5, Pitch: 6},
	}
	tc.send(packet.PlayerPositionAndLook{PositionLook: both})
	tc.expectKeepAlive()

	got, _ = shared.Players.Get("Alice")
	assert.Equal(t, both, got.PositionLook)

	tc.send(packet.HoldingChange{EntityID: got.EntityID, ItemID: 280})
	tc.expectKeepAlive()

	got, _ = shared.Players.Get("Alice")
	assert.Equal(t, gamedata.ItemIdentifier(gamedata.ItemStick), got.Holding)
}

func TestLogOnlyMessagesEchoKeepAlive(t *testing.T) {
	tc := startSession(t, newShared(0))
	tc.login("Alice")
	tc.drainLogin()

	msgs := []packet.Packet{
		packet.KeepAlive{},
		packet.Chat{Message: "hello"},
		packet.Player{OnGround: true},
		packet.PlayerDigging{Status: packet.DiggingStarted, X: 1, Y: 7, Z: 1, Face: packet.FacePosY},
		packet.BlockPlacement{Item: gamedata.Unknown, X: -1, Y: 255, Z: -1, Direction: packet.FaceNone},
		packet.BlockPlacement{
			Item: gamedata.BlockIdentifier(gamedata.BlockDirt), X: 0, Y: 8, Z: 0, Direction: packet.FacePosY,
			Stack: &gamedata.ItemStack{Identifier: gamedata.BlockIdentifier(gamedata.BlockDirt), Count: 3},
		},
		packet.Animation{EntityID: 0, Animation: 1},
	}
	for _, m := range msgs {
		tc.send(m)
		tc.expectKeepAlive()
	}
}

func TestKeepAliveBeforeLogin(t *testing.T) {
	shared := newShared(1)
	tc := startSession(t, shared)

	tc.send(packet.KeepAlive{})
	tc.expectKeepAlive()
	assert.Equal(t, 0, shared.Players.Len())
}

func TestLoginWithoutHandshake(t *testing.T) {
	tc := startSession(t, newShared(0))
	tc.send(packet.LoginRequest{ProtocolVersion: 13, Username: "Old"})

	var ok packet.LoginSuccess
	tc.expect(&ok)
	tc.drainLogin()
}

func TestLoginWithEmptyUsernameIsNotPublished(t *testing.T) {
	shared := newShared(0)
	tc := startSession(t, shared)
	tc.send(packet.LoginRequest{ProtocolVersion: packet.ProtocolVersion, Username: ""})

	var ok packet.LoginSuccess
	tc.expect(&ok)
	tc.drainLogin()
	assert.Equal(t, 0, shared.Players.Len())

	tc.send(packet.PlayerPosition{Position: mcnet.PlayerPosition{X: 1, Y: 8, Stance: 9.62, Z: 1}})
	tc.expectKeepAlive()
	_, found := shared.Players.Get("")
	assert.False(t, found)
	assert.Equal(t, 0, shared.Players.Len())
}

func TestUnknownOpcodeClosesSilently(t *testing.T) {
	shared := newShared(1)
	tc := startSession(t, shared)
	tc.login("Alice")
	tc.drainLogin()

	tc.sendRaw([]byte{0x99})
	tc.expectClosed()

	_, found := shared.Players.Get("Alice")
	assert.False(t, found, "entry removed when the session ends")
}

func TestDisconnectClosesWithoutKeepAlive(t *testing.T) {
	tc := startSession(t, newShared(0))
	tc.send(packet.Handshake{Username: "Bob"})
	tc.expect(&packet.HandshakeReply{})
	tc.expectKeepAlive()

	tc.send(packet.Disconnect{Reason: "Quitting"})
	tc.expectClosed()
}

func TestTruncatedMessageClosesSilently(t *testing.T) {
	tc := startSession(t, newShared(0))
	// Handshake opcode with a length prefix promising more than is sent.
	tc.sendRaw([]byte{0x02, 0x00, 0x10, 'A'})
	tc.conn.Close()
	select {
	case <-tc.done:
	case <-time.After(5 * time.Second):
		t.Fatal("session did not finish")
	}
}

func TestIDsDistinctAcrossSessions(t *testing.T) {
	shared := newShared(0)
	a := startSession(t, shared)
	b := startSession(t, shared)

	okA := a.login("Alice")
	a.drainLogin()
	okB := b.login("Bob")
	b.drainLogin()

	assert.NotEqual(t, okA.EntityID, okB.EntityID)
	assert.Equal(t, 2, shared.Players.Len())
}

func TestContextCancelClosesSession(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewConnection(ctx, server, newShared(0), log, "pipe")

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Handle()
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Handle did not return after cancel")
	}
	assert.Equal(t, StateClosed, c.state)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "awaiting_handshake", StateAwaitingHandshake.String())
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "state(9)", State(9).String())
}
