package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	interrupted := ctx.Err() != nil
	stop()

	switch {
	case err == nil && interrupted:
		// Tasks that never started are already reported as failed.
		os.Exit(130)
	case err == nil:
		return
	case !errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
