// CLI клиента LapLogger: вход, пловцы, результаты, сводка.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/laplogger/internal/commands"
	"github.com/laplogger/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	logger.SetPrefix("cli")
	if os.Getenv("LAPLOGGER_LOG_STDERR") == "" {
		logger.SetOutput(io.Discard)
	}
	commands.SetVersion(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := commands.Execute(ctx, os.Args[1:])
	stop()
	logger.Flush(time.Second)
	if err != nil {
		fmt.Fprintln(os.Stderr, commands.Describe(err))
		os.Exit(1)
	}
}
