package time

import (
	"context"
	"time"
)

type (
	Clock interface {
		Now(context.Context) time.Time
	}

	systemClock struct{}

	fixedClock struct {
		t time.Time
	}
)

func NewClock() Clock {
	return systemClock{}
}

// NewFixedClock always reports t, used by tests.
func NewFixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}

func (systemClock) Now(context.Context) time.Time {
	return time.Now().UTC()
}

func (c fixedClock) Now(context.Context) time.Time {
	return c.t
}
