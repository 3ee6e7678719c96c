// Package servertest provides a scripted protocol 14 server for tests.
//
// A Server accepts client connections over TCP or a websocket bridge and
// plays the server side of the login: it answers the client's Handshake
// with a connection hash and its LoginRequest with an entity id, map seed,
// and dimension. Everything else the client sends is recorded so tests can
// wait for it.
//
// # Quick Start
//
//	srv := servertest.New(servertest.WithEntityID(42))
//	defer srv.Close()
//
//	cfg := session.DefaultConfig()
//	cfg.Username = "Steve"
//	cfg.Host, cfg.Port = srv.Host(), srv.Port()
//	s, err := session.New(cfg, session.WithDialer(srv.Dialer()))
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if err := s.Connect(ctx); err != nil {
//	    t.Fatal(err)
//	}
//	go s.Run(ctx)
//
//	peer, _ := srv.Accept(ctx)
//	peer.WaitFor(ctx, protocol.OpLoginRequest)
//	peer.Send(&protocol.TimeUpdate{Time: 6000})
//	peer.Kick("Server closed")
//
// # Websocket Bridge
//
// NewWebSocket serves the same script behind an HTTP upgrade, the way a
// websocket-to-TCP bridge would present a server. Its Dialer returns a
// transport.WebSocketDialer pointed at the server's URL.
package servertest
