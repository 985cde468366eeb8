// Package sigctx ties a context to process termination signals.
package sigctx

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Shutdown lists the signals that stop the storefront binaries.
var Shutdown = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}

// WithSignals returns a context canceled on the first of sigs, or on
// [Shutdown] when sigs is empty. The received signal is logged and
// available through [context.Cause].
func WithSignals(
	parent context.Context, sigs ...os.Signal,
) (context.Context, context.CancelFunc) {
	if len(sigs) == 0 {
		sigs = Shutdown
	}

	ctx, cancel := context.WithCancelCause(parent)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			slog.Info("signal received, shutting down", "signal", sig.String())
			cancel(&SignalError{Signal: sig})
		case <-ctx.Done():
		}
	}()

	return ctx, func() { cancel(context.Canceled) }
}

// SignalError is the cancel cause of a context stopped by a signal.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return "received signal " + e.Signal.String()
}
