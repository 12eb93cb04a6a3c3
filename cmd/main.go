package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/alumnihub/internal/cli"
	"github.com/okian/alumnihub/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Commands reconfigure the logger once the config is loaded.
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := cli.Execute(ctx, os.Args[1:]); err != nil {
		os.Stderr.WriteString("alumnihub: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
