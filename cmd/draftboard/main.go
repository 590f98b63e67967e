// Command draftboard is a terminal draft board for fantasy football ADP
// data. `draftboard serve` publishes a CSV of ADP rows as the JSON
// endpoint the board reads.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"draftboard/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "draftboard: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = newRootCmd(&cfg).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
