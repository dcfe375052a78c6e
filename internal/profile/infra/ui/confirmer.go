package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/klwxsrx/profile-client/internal/profile/app/ui"
)

type (
	promptConfirmer struct {
		mutex  sync.Mutex
		reader *bufio.Reader
		out    io.Writer
	}

	staticConfirmer bool
)

// NewPromptConfirmer asks on out and reads the answer from in, anything but y or yes declines.
func NewPromptConfirmer(in io.Reader, out io.Writer) ui.Confirmer {
	return &promptConfirmer{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (c *promptConfirmer) Confirm(ctx context.Context, question string) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if ctx.Err() != nil {
		return false
	}

	_, _ = fmt.Fprintf(c.out, "%s [y/N]: ", question)
	answer, err := c.reader.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func NewStaticConfirmer(answer bool) ui.Confirmer {
	return staticConfirmer(answer)
}

func (c staticConfirmer) Confirm(context.Context, string) bool {
	return bool(c)
}
