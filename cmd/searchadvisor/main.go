// Command searchadvisor asks four questions about a search problem and lists
// the uninformed graph-search algorithms that suit it.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(submain(context.Background()))
}

func submain(ctx context.Context) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	// After the first signal restore default handling so a second one kills
	// the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	a := newApp()
	if err := a.command().ExecuteContext(ctx); err != nil {
		a.fail(os.Stderr, err)
		return 1
	}

	return 0
}
