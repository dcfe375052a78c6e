package ui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/klwxsrx/profile-client/internal/profile/app/ui"
)

// Navigator prints every requested route on its own line.
type Navigator struct {
	mutex sync.Mutex
	out   io.Writer
}

func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

func (n *Navigator) Push(_ context.Context, route ui.Route) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	_, _ = fmt.Fprintf(n.out, "-> %s\n", route)
}
