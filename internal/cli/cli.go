package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/golessons/internal/config"
	"github.com/marcodamonte/golessons/internal/lessons"
	"github.com/marcodamonte/golessons/internal/logger"
	"github.com/marcodamonte/golessons/internal/menu"
)

// Exit codes returned through ExitError.
const (
	ExitFailure     = 1   // the input stream failed
	ExitUsage       = 2   // bad flags, bad config or unknown lesson
	ExitInterrupted = 130 // interrupted, 128 + SIGINT
)

// ExitError is an error that carries the process exit code. An empty Message
// means the condition was already reported through the logger.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// NewRootCommand builds the golessons command. Lessons and the menu write to
// out, logs go to errOut and selections are read from in.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:   "golessons",
		Short: "Interactive lessons on core Go language topics",
		Long: `golessons prints a numbered menu of ten lessons on the Go language.
Pick a number to run a lesson, press Enter to return to the menu and
type q to quit.`,
		Example: `  golessons              # interactive menu
  golessons --list       # print the menu and exit
  golessons -l 9         # run the generics lesson and exit`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(fmt.Errorf("unexpected argument %q", args[0]))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(flags)
			if err != nil {
				return usageError(err)
			}

			log, err := logger.New(cfg.LogLevel, cfg.LogFormat, errOut)
			if err != nil {
				return usageError(err)
			}
			defer log.Sync()

			mode := "interactive"
			switch {
			case cfg.List:
				mode = "list"
			case cfg.Lesson != "":
				mode = "lesson"
			}
			log = log.With("mode", mode)

			d := menu.New(lessons.Catalog(), in, out, menu.WithLogger(log))
			log.Debug("starting", "lesson", cfg.Lesson)

			if !cfg.Interactive() {
				return runOnce(d, cfg, out)
			}

			err = d.Run(cmd.Context())
			switch {
			case err == nil:
				return nil
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return &ExitError{Code: ExitInterrupted}
			default:
				return &ExitError{Code: ExitFailure, Message: err.Error()}
			}
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	f := cmd.Flags()
	f.StringVarP(&flags.Lesson, "lesson", "l", "", "run a single lesson by number and exit")
	f.BoolVar(&flags.List, "list", false, "print the lesson menu and exit")
	f.StringVar(&flags.LogLevel, "log-level", "warn", "log level: debug, info, warn or error")
	f.StringVar(&flags.LogFormat, "log-format", "console", "log format: console or json")

	return cmd
}

// runOnce handles the non-interactive modes: print the menu or run a
// single lesson.
func runOnce(d *menu.Dispatcher, cfg *config.Config, out io.Writer) error {
	if cfg.List {
		d.RenderMenu()
		fmt.Fprintln(out)
		return nil
	}
	if err := d.RunLesson(cfg.Lesson); err != nil {
		if errors.Is(err, menu.ErrUnknownLesson) {
			return usageError(err)
		}
		return err
	}
	return nil
}
