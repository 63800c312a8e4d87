// Command service-scheduler serves the home-care scheduling HTTP API.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"homecare-scheduler/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildContainer(ctx)
	app.NewRunner().MustRun(container)
}
