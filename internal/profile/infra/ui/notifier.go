package ui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/klwxsrx/profile-client/internal/profile/app/ui"
	"github.com/klwxsrx/profile-client/pkg/log"
)

type (
	terminalNotifier struct {
		mutex sync.Mutex
		out   io.Writer
	}

	loggerNotifier struct {
		logger log.Logger
	}

	multiNotifier []ui.Notifier
)

// NewTerminalNotifier prints one line per notification, prefixed with its severity.
func NewTerminalNotifier(out io.Writer) ui.Notifier {
	return &terminalNotifier{out: out}
}

func (n *terminalNotifier) Notify(_ context.Context, msg string, severity ui.Severity) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	if severity == ui.SeverityDefault {
		_, _ = fmt.Fprintln(n.out, msg)
		return
	}

	_, _ = fmt.Fprintf(n.out, "[%s] %s\n", severity, msg)
}

func NewLoggerNotifier(logger log.Logger) ui.Notifier {
	return loggerNotifier{logger: logger}
}

func (n loggerNotifier) Notify(ctx context.Context, msg string, severity ui.Severity) {
	level := log.LevelInfo
	if severity == ui.SeverityDanger {
		level = log.LevelWarn
	}

	n.logger.WithField("severity", string(severity)).Log(ctx, level, msg)
}

func NewMultiNotifier(notifiers ...ui.Notifier) ui.Notifier {
	return multiNotifier(notifiers)
}

func (n multiNotifier) Notify(ctx context.Context, msg string, severity ui.Severity) {
	for _, notifier := range n {
		notifier.Notify(ctx, msg, severity)
	}
}
