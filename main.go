package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/marcodamonte/golessons/internal/cli"
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run keeps process concerns out of the command so it can be tested with
// in-memory streams.
func run(in io.Reader, out, errOut io.Writer, args []string) error {
	// The first Ctrl+C cancels ctx and restores the default handler, so the
	// menu stops once the pending line arrives and a second Ctrl+C kills the
	// process while it is still blocked on input.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	context.AfterFunc(ctx, stop)

	cmd := cli.NewRootCommand(in, out, errOut)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
