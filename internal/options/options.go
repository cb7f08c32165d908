package options

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Programie/LoxoneStats2InfluxDB/internal/global"

	"github.com/go-logr/logr"
)

var Flags struct {
	Config  string
	Quiet   bool
	Verbose bool
	Json    bool
	Yaml    bool
}

// CommandLineContext builds the context shared by all commands: it carries
// the logger and version, and is cancelled on SIGINT/SIGTERM so an in-flight
// request or retry delay is interrupted instead of finishing first.
func CommandLineContext(log logr.Logger, version string) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, global.LogKey, log)
	ctx = context.WithValue(ctx, global.VersionKey, version)

	ctx, cancel := context.WithCancel(ctx)
	ctx = context.WithValue(ctx, global.CancelKey, cancel)

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt)
		signal.Notify(signals, syscall.SIGTERM)
		<-signals
		log.Info("Received signal, shutting down")
		cancel()
	}()

	return ctx
}

// Done cancels the command context. Commands defer it so the context is
// released once the run finishes.
func Done(ctx context.Context) {
	if cancel, ok := ctx.Value(global.CancelKey).(context.CancelFunc); ok {
		cancel()
	}
}
