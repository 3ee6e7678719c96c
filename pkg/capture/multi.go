package capture

import (
	"context"
	"errors"
)

// Multi returns a sink that writes every record to each of sinks. All sinks
// are attempted; their errors are joined.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Write(ctx context.Context, rec Record) error {
	var errs []error
	for _, s := range m {
		if err := s.Write(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
