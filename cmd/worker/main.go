// Command worker consumes patient events from kafka and refreshes patient coordinates.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"homecare-scheduler/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.NewWorkerRunner().MustRun(app.MustBuildWorkerContainer(ctx))
}
