package errors

import (
	stderrors "errors"

	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/session"
)

// Classify maps an error from the library packages onto a registered code.
// Errors that are already *Error are returned unchanged; anything
// unrecognized gets fallback.
func Classify(err error, fallback string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}

	var kick *session.KickError
	var se *session.SessionError
	switch {
	case stderrors.As(err, &kick):
		return New("E201").Wrap(err).WithDetail("Reason: " + kick.Reason)
	case stderrors.Is(err, protocol.ErrUnknownOpcode):
		return New("E301").Wrap(err)
	case stderrors.Is(err, protocol.ErrBoundsViolation):
		return New("E302").Wrap(err)
	case stderrors.Is(err, protocol.ErrAllocationTooLarge),
		stderrors.Is(err, protocol.ErrCollectionTooLarge),
		stderrors.Is(err, protocol.ErrFrameTooLarge):
		return New("E304").Wrap(err)
	case stderrors.Is(err, protocol.ErrMalformed):
		return New("E303").Wrap(err)
	case stderrors.Is(err, session.ErrInvalidConfig):
		return New("E101").Wrap(err)
	case stderrors.As(err, &se) && se.Op == "dial":
		return New("E200").Wrap(err)
	case stderrors.As(err, &se) && (se.Op == "read" || se.Op == "send"):
		return New("E202").Wrap(err)
	}
	return New(fallback).Wrap(err)
}

// Offset returns the input offset carried by a protocol error, if any.
func Offset(err error) (int, bool) {
	var unknown *protocol.UnknownOpcodeError
	var partial *protocol.PartialFrameError
	var decode *protocol.DecodeError
	switch {
	case stderrors.As(err, &unknown):
		return unknown.Offset, true
	case stderrors.As(err, &partial):
		return partial.Offset, true
	case stderrors.As(err, &decode):
		return decode.Offset, true
	}
	return 0, false
}
