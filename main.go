package main

import (
	"context"
	"os"
	"os/signal"

	"releaseinstallergo/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.ExecuteContext(ctx)
	stop()
	os.Exit(code)
}
