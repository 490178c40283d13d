package packet

// ProtocolVersion is the protocol number spoken by Beta 1.1_02 clients.
const ProtocolVersion = 14

// KeepAlive has no body. The server echoes one after every message.
type KeepAlive struct{}

func (KeepAlive) Opcode() Opcode { return OpKeepAlive }

// Handshake opens a connection with the player's name (serverbound 0x02).
type Handshake struct {
	Username string `mc:"string"`
}

func (Handshake) Opcode() Opcode { return OpHandshake }

// HandshakeReply carries the connection token back to the client (clientbound 0x02).
type HandshakeReply struct {
	Token string `mc:"string"`
}

func (HandshakeReply) Opcode() Opcode { return OpHandshake }

// LoginRequest is sent once the handshake has been answered (serverbound 0x01).
type LoginRequest struct {
	ProtocolVersion int32  `mc:"i32"`
	Username        string `mc:"string"`
	Password        string `mc:"string"`
	Seed            int64  `mc:"i64"`
	Dimension       int8   `mc:"i8"`
}

func (LoginRequest) Opcode() Opcode { return OpLogin }

// LoginSuccess admits the player and assigns its entity ID (clientbound 0x01).
// The two strings are unused by the client and always empty.
type LoginSuccess struct {
	EntityID  int32  `mc:"i32"`
	Reserved1 string `mc:"string"`
	Reserved2 string `mc:"string"`
	Seed      int64  `mc:"i64"`
	Dimension int8   `mc:"i8"`
}

func (LoginSuccess) Opcode() Opcode { return OpLogin }

// Chat is a chat line in either direction (0x03).
type Chat struct {
	Message string `mc:"string"`
}

func (Chat) Opcode() Opcode { return OpChat }

// Disconnect ends the session with a reason in either direction (0xFF).
type Disconnect struct {
	Reason string `mc:"string"`
}

func (Disconnect) Opcode() Opcode { return OpDisconnect }
