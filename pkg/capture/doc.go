// Package capture records raw packets exchanged by a session.
//
// Every frame becomes one Record holding exactly the bytes seen on the
// wire, opcode included. Sinks persist records: FileSink writes one file
// per packet into a directory, S3Sink uploads them to a bucket, and Multi
// fans out to several sinks. Files are named so a directory listing shows
// the conversation in order:
//
//	0001-out-handshake.bin
//	0002-in-handshake.bin
//	0003-out-login-request.bin
//
// A captured file can be decoded again with protocol.Decode.
package capture
