// Package session drives one client connection through login and keeps it
// alive.
//
// A Session moves through these states:
//
//	Disconnected -> Connecting -> AwaitingHandshake -> AwaitingLogin -> Ready -> Ended
//
// Connect dials the server and sends the Handshake. The server's Handshake
// reply carries the connection hash; the session answers with a
// LoginRequest. The server's LoginRequest carries the entity id, map seed,
// and dimension, after which the session is Ready and sends a KeepAlive
// every KeepAliveInterval. Any state can end: on a kick, a transport close,
// or a fatal decode error.
//
// # Delivering Data
//
// Callers that own the transport feed bytes in with HandleData. Run is a
// read loop that does this for a session opened with Connect:
//
//	cfg := session.DefaultConfig()
//	cfg.Username = "Steve"
//	s, err := session.New(cfg)
//	if err != nil {
//	    return err
//	}
//	session.On(s, func(p *protocol.Chat) { fmt.Println(p.Message) })
//	s.OnEnd(func(err error) { log.Println("ended:", err) })
//	if err := s.Connect(ctx); err != nil {
//	    return err
//	}
//	return s.Run(ctx)
//
// Frames in one delivery are processed in wire order: the session updates
// its own state first, then calls subscribers. Subscribers run on the
// delivering goroutine and must not block.
//
// # Errors
//
// An unknown opcode is returned from HandleData but the session stays
// connected; the rest of that delivery is dropped because its length cannot
// be known. Truncated or malformed packets end the session.
package session
