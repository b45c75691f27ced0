package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/PolarWolf314/gistenv/cmd"
	"github.com/PolarWolf314/gistenv/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.GistenvCmd.ExecuteContext(ctx); err != nil {
		if !cmd.IsReported(err) {
			fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:")+" "+err.Error())
		}
		stop()
		os.Exit(1)
	}
}
