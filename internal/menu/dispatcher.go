package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/marcodamonte/golessons/internal/logger"
)

var (
	// ErrInputClosed means the input stream ended before a line was read.
	ErrInputClosed = errors.New("input stream closed")
	// ErrUnknownLesson is returned by RunLesson for an ID not in the catalog.
	ErrUnknownLesson = errors.New("unknown lesson")
)

// State is the dispatcher's position in its loop.
type State int

const (
	Prompting State = iota
	Executing
	Terminated
)

var stateNames = [...]string{"prompting", "executing", "terminated"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Selection classifies one normalized input line.
type Selection int

const (
	SelectInvalid Selection = iota
	SelectLesson
	SelectQuit
)

// Texts holds every fixed string the dispatcher prints.
type Texts struct {
	Header   string
	Subtitle string
	Quit     string // menu label next to the quit token
	Prompt   string
	Continue string
	Invalid  string
	Farewell string
}

// DefaultTexts are used unless WithTexts overrides them.
var DefaultTexts = Texts{
	Header:   "=== Go Lessons ===",
	Subtitle: "Choose a topic:",
	Quit:     "Quit",
	Prompt:   "Enter your choice: ",
	Continue: "Press Enter to continue...",
	Invalid:  "Invalid choice, please try again.",
	Farewell: "Thanks for learning with Go Lessons. Goodbye!",
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithTexts replaces the menu strings. Empty fields keep their default.
func WithTexts(t Texts) Option {
	return func(d *Dispatcher) {
		merge := func(dst *string, src string) {
			if src != "" {
				*dst = src
			}
		}
		merge(&d.texts.Header, t.Header)
		merge(&d.texts.Subtitle, t.Subtitle)
		merge(&d.texts.Quit, t.Quit)
		merge(&d.texts.Prompt, t.Prompt)
		merge(&d.texts.Continue, t.Continue)
		merge(&d.texts.Invalid, t.Invalid)
		merge(&d.texts.Farewell, t.Farewell)
	}
}

// Dispatcher runs the read-select-execute loop over a catalog.
// It is not safe for concurrent use.
type Dispatcher struct {
	catalog Catalog
	in      *bufio.Reader
	out     io.Writer
	log     *logger.Logger
	texts   Texts
	state   State
}

// New returns a dispatcher reading lines from in and writing to out.
// Lesson actions receive out as their writer.
func New(catalog Catalog, in io.Reader, out io.Writer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		catalog: catalog,
		in:      bufio.NewReader(in),
		out:     out,
		log:     logger.Nop(),
		texts:   DefaultTexts,
		state:   Prompting,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State reports where the loop is.
func (d *Dispatcher) State() State { return d.state }

// Resolve classifies an already-normalized token.
func (d *Dispatcher) Resolve(token string) (Entry, Selection) {
	if e, ok := d.catalog.Lookup(token); ok {
		return e, SelectLesson
	}
	if strings.EqualFold(token, DefaultQuitToken) {
		return Entry{}, SelectQuit
	}
	return Entry{}, SelectInvalid
}

// Run drives the menu until the quit token is entered, the input fails or
// ctx is cancelled. Cancellation is observed before each prompt, after each
// read and after each lesson; a read in progress keeps blocking until a line
// arrives or the stream ends. A line read after cancellation is discarded.
//
// Run returns nil after quit and ctx.Err() after cancellation. Any read
// failure is returned wrapped and must be treated as fatal by the caller.
func (d *Dispatcher) Run(ctx context.Context) error {
	if d.state == Terminated {
		return nil
	}
	for {
		if err := d.interrupted(ctx); err != nil {
			return err
		}

		d.RenderMenu()
		line, err := d.readLine()
		if err != nil {
			d.log.Debug("read selection failed", "error", err)
			return fmt.Errorf("read selection: %w", err)
		}
		if err := d.interrupted(ctx); err != nil {
			return err
		}

		token := strings.TrimSpace(line)
		entry, sel := d.Resolve(token)
		switch sel {
		case SelectQuit:
			fmt.Fprintln(d.out, d.texts.Farewell)
			d.transition(Terminated)
			return nil

		case SelectInvalid:
			d.log.Info("invalid choice", "input", token)
			fmt.Fprintln(d.out, d.texts.Invalid)
			fmt.Fprintln(d.out)
			continue
		}

		d.execute(entry)
		if err := d.interrupted(ctx); err != nil {
			return err
		}

		fmt.Fprintf(d.out, "\n%s\n", d.texts.Continue)
		if _, err := d.readLine(); err != nil {
			d.log.Debug("read continue prompt failed", "error", err)
			return fmt.Errorf("read continue prompt: %w", err)
		}
	}
}

func (d *Dispatcher) interrupted(ctx context.Context) error {
	err := ctx.Err()
	if err != nil {
		d.log.Warn("menu interrupted", "state", d.state.String(), "cause", context.Cause(ctx))
	}
	return err
}

// RunLesson runs a single lesson by ID without entering the loop.
func (d *Dispatcher) RunLesson(id string) error {
	entry, ok := d.catalog.Lookup(strings.TrimSpace(id))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLesson, id)
	}
	d.execute(entry)
	return nil
}

// RenderMenu writes the catalog, the quit line and the prompt.
func (d *Dispatcher) RenderMenu() {
	fmt.Fprintln(d.out, d.texts.Header)
	fmt.Fprintln(d.out, d.texts.Subtitle)
	for _, e := range d.catalog.entries {
		fmt.Fprintf(d.out, "%s. %s\n", e.ID, e.Title)
	}
	fmt.Fprintf(d.out, "%s. %s\n", DefaultQuitToken, d.texts.Quit)
	fmt.Fprint(d.out, d.texts.Prompt)
}

func (d *Dispatcher) execute(e Entry) {
	d.transition(Executing)
	d.log.Debug("lesson started", "id", e.ID, "title", e.Title)
	e.Action(d.out)
	d.log.Debug("lesson finished", "id", e.ID)
	d.transition(Prompting)
}

func (d *Dispatcher) transition(to State) {
	d.log.Debug("state transition", "from", d.state.String(), "to", to.String())
	d.state = to
}

// readLine blocks for one line. A final line without a newline is still a
// line; an empty read at end of stream is ErrInputClosed.
func (d *Dispatcher) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF) && line != "":
		return line, nil
	case errors.Is(err, io.EOF):
		return "", ErrInputClosed
	default:
		return "", err
	}
}
