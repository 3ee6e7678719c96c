// Package transport provides the byte-stream connections a session runs on.
//
// The protocol itself is a plain TCP stream. Some deployments put a
// websocket bridge in front of the server instead; WebSocketDialer adapts
// that bridge back into a stream by sending each write as one binary message
// and reading message payloads back to back.
//
//	conn, err := transport.TCPDialer{Timeout: 5 * time.Second}.Dial(ctx, "localhost:25565")
//	conn, err := transport.WebSocketDialer{URL: "ws://localhost:8080/"}.Dial(ctx, "")
package transport
