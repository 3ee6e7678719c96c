package protocol

// KeepAlive has no body. The client sends one periodically so the server
// does not drop the connection as idle.
type KeepAlive struct{}

func (*KeepAlive) Opcode() Opcode { return OpKeepAlive }
func (*KeepAlive) encode(*writer) {}

func decodeKeepAlive(*reader) Packet { return &KeepAlive{} }

// LoginRequest is sent by the client with its protocol version and username,
// and echoed by the server with the assigned entity id, map seed, and
// dimension. The client sends zero for the last two.
//
// Wire format:
//
//	[ID: i32][Username: string16][MapSeed: i64][Dimension: i8]
type LoginRequest struct {
	EntityID  int32 // Protocol version when sent by the client
	Username  string
	MapSeed   int64
	Dimension Dimension
}

// NewLoginRequest creates the client's login packet.
func NewLoginRequest(username string) *LoginRequest {
	return &LoginRequest{EntityID: Version, Username: username}
}

func (*LoginRequest) Opcode() Opcode { return OpLoginRequest }

func (p *LoginRequest) encode(w *writer) {
	w.i32(p.EntityID)
	w.s16(p.Username)
	w.i64(p.MapSeed)
	w.i8(int8(p.Dimension))
}

func decodeLoginRequest(r *reader) Packet {
	return &LoginRequest{
		EntityID:  r.i32(),
		Username:  r.s16(),
		MapSeed:   r.i64(),
		Dimension: Dimension(r.i8()),
	}
}

// Handshake carries the username from the client and the connection hash
// from the server. A hash of "-" means the server runs without
// authentication.
type Handshake struct {
	Value string
}

func (*Handshake) Opcode() Opcode { return OpHandshake }

func (p *Handshake) encode(w *writer) {
	w.s16(p.Value)
}

func decodeHandshake(r *reader) Packet {
	return &Handshake{Value: r.s16()}
}

// Chat is a chat line in either direction.
type Chat struct {
	Message string
}

// NewChat creates a chat packet, truncating the message to MaxChatLength
// characters.
func NewChat(message string) *Chat {
	runes := []rune(message)
	if len(runes) > MaxChatLength {
		message = string(runes[:MaxChatLength])
	}
	return &Chat{Message: message}
}

func (*Chat) Opcode() Opcode { return OpChat }

func (p *Chat) encode(w *writer) {
	w.s16(p.Message)
}

func decodeChat(r *reader) Packet {
	return &Chat{Message: r.s16()}
}

// TimeUpdate reports the world time in ticks.
type TimeUpdate struct {
	Time int64
}

func (*TimeUpdate) Opcode() Opcode { return OpTimeUpdate }

func (p *TimeUpdate) encode(w *writer) {
	w.i64(p.Time)
}

func decodeTimeUpdate(r *reader) Packet {
	return &TimeUpdate{Time: r.i64()}
}

// SpawnPosition is the world spawn point, used for the compass.
type SpawnPosition struct {
	X, Y, Z int32
}

func (*SpawnPosition) Opcode() Opcode { return OpSpawnPosition }

func (p *SpawnPosition) encode(w *writer) {
	w.i32(p.X)
	w.i32(p.Y)
	w.i32(p.Z)
}

func decodeSpawnPosition(r *reader) Packet {
	return &SpawnPosition{X: r.i32(), Y: r.i32(), Z: r.i32()}
}

// UpdateHealth sets the player's health (0-20, half hearts).
type UpdateHealth struct {
	Health int16
}

func (*UpdateHealth) Opcode() Opcode { return OpUpdateHealth }

func (p *UpdateHealth) encode(w *writer) {
	w.i16(p.Health)
}

func decodeUpdateHealth(r *reader) Packet {
	return &UpdateHealth{Health: r.i16()}
}

// Respawn is sent by the client after death and echoed by the server.
type Respawn struct {
	Dimension Dimension
}

func (*Respawn) Opcode() Opcode { return OpRespawn }

func (p *Respawn) encode(w *writer) {
	w.i8(int8(p.Dimension))
}

func decodeRespawn(r *reader) Packet {
	return &Respawn{Dimension: Dimension(r.i8())}
}

// DisconnectKick closes the connection with a reason.
type DisconnectKick struct {
	Reason string
}

func (*DisconnectKick) Opcode() Opcode { return OpDisconnectKick }

func (p *DisconnectKick) encode(w *writer) {
	w.s16(p.Reason)
}

func decodeDisconnectKick(r *reader) Packet {
	return &DisconnectKick{Reason: r.s16()}
}
