package nbt

import "errors"

// MaxDepth limits how deeply lists and compounds may nest. It keeps a
// hostile payload from exhausting the stack.
const MaxDepth = 512

// Errors returned by the codec. Bounds and length failures are reported with
// the protocol package's sentinels.
var (
	ErrMaxDepthExceeded = errors.New("nbt: max nesting depth exceeded")
	ErrUnknownTagType   = errors.New("nbt: unknown tag type")
	ErrNilTag           = errors.New("nbt: nil tag")
)

// depthContext tracks nesting while walking a tree.
type depthContext struct {
	current int
	max     int
}

func newDepthContext(max int) *depthContext {
	return &depthContext{max: max}
}

// enter increments the depth, failing once the limit is reached.
func (dc *depthContext) enter() error {
	if dc.current >= dc.max {
		return ErrMaxDepthExceeded
	}
	dc.current++
	return nil
}

func (dc *depthContext) leave() {
	dc.current--
}
