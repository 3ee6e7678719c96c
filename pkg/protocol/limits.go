package protocol

import "errors"

// Allocation limits to prevent DoS attacks via malicious length prefixes.
const (
	// DefaultMaxAllocation caps a single length-prefixed byte payload (4MB).
	// A full 16x128x16 chunk compresses to far less than this.
	DefaultMaxAllocation = 4 * 1024 * 1024

	// HardMaxAllocation caps the decompressed size of a chunk payload (16MB).
	HardMaxAllocation = 16 * 1024 * 1024

	// MaxCollectionCount is the maximum number of items in a counted array.
	// This prevents OOM from huge counts with small per-item overhead.
	MaxCollectionCount = 100_000

	// DefaultMaxPending is the default ceiling on bytes a Reassembler holds
	// while waiting for the rest of a frame (1MB).
	DefaultMaxPending = 1024 * 1024
)

// Protocol constants.
const (
	// Version is the protocol version sent in LoginRequest (Beta 1.7.x).
	Version = 14

	// MaxUsernameLength is the longest username the server accepts.
	MaxUsernameLength = 16

	// MaxChatLength is the longest chat message the server accepts.
	MaxChatLength = 119
)

// Limit errors.
var (
	ErrAllocationTooLarge = errors.New("protocol: allocation size exceeds limit")
	ErrCollectionTooLarge = errors.New("protocol: collection count exceeds limit")
)
