package menu_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/golessons/internal/menu"
)

// recorder builds a catalog of n fake lessons that log every call.
type recorder struct {
	calls []string
}

func (r *recorder) catalog(n int) menu.Catalog {
	entries := make([]menu.Entry, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprint(i)
		entries = append(entries, menu.Entry{
			ID:    id,
			Title: "Lesson " + id,
			Action: func(w io.Writer) {
				r.calls = append(r.calls, id)
				fmt.Fprintf(w, "<lesson %s body>\n", id)
			},
		})
	}
	return menu.MustCatalog(entries...)
}

func run(t *testing.T, input string) (*recorder, *menu.Dispatcher, string, error) {
	t.Helper()
	rec := &recorder{}
	var out bytes.Buffer
	d := menu.New(rec.catalog(10), strings.NewReader(input), &out)
	err := d.Run(context.Background())
	return rec, d, out.String(), err
}

func TestEveryIDRunsOnlyItsLesson(t *testing.T) {
	for i := 1; i <= 10; i++ {
		id := fmt.Sprint(i)
		t.Run(id, func(t *testing.T) {
			rec, _, out, err := run(t, id+"\n\nq\n")
			require.NoError(t, err)
			assert.Equal(t, []string{id}, rec.calls)

			body := strings.Index(out, "<lesson "+id+" body>")
			cont := strings.Index(out, menu.DefaultTexts.Continue)
			require.GreaterOrEqual(t, body, 0)
			require.Greater(t, cont, body)
			assert.Equal(t, 1, strings.Count(out, "body>"))
		})
	}
}

func TestQuitBothCases(t *testing.T) {
	for _, in := range []string{"q\n", "Q\n", "  q  \r\n", "q"} {
		rec, d, out, err := run(t, in)
		require.NoError(t, err, "input %q", in)
		assert.Empty(t, rec.calls)
		assert.NotContains(t, out, menu.DefaultTexts.Continue)
		assert.True(t, strings.HasSuffix(out, menu.DefaultTexts.Farewell+"\n"))
		assert.Equal(t, menu.Terminated, d.State())
	}
}

func TestInvalidChoice(t *testing.T) {
	for _, in := range []string{"99", "", "   ", "0", "qq", "1 0", "one"} {
		rec, _, out, err := run(t, in+"\nq\n")
		require.NoError(t, err, "input %q", in)
		assert.Empty(t, rec.calls, "input %q", in)
		assert.Equal(t, 1, strings.Count(out, menu.DefaultTexts.Invalid), "input %q", in)
		assert.NotContains(t, out, menu.DefaultTexts.Continue, "input %q", in)
		assert.Equal(t, 2, strings.Count(out, menu.DefaultTexts.Header), "menu re-rendered once")
	}
}

func TestWhitespaceIsTrimmed(t *testing.T) {
	rec, _, _, err := run(t, " 3 \n\nq\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, rec.calls)

	rec, _, _, err = run(t, "\t7\r\n\nq\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, rec.calls)
}

func TestContinueLineIsNotASelection(t *testing.T) {
	// "2" after lesson 5 is swallowed by the continue prompt.
	rec, _, out, err := run(t, "5\n2\nq\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, rec.calls)
	assert.NotContains(t, out, menu.DefaultTexts.Invalid)
}

func TestScenarioLessonBlankQuit(t *testing.T) {
	rec, _, out, err := run(t, "5\n\nq\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, rec.calls)

	var want strings.Builder
	d := menu.New((&recorder{}).catalog(10), strings.NewReader(""), &want)
	d.RenderMenu()
	want.WriteString("<lesson 5 body>\n")
	want.WriteString("\n" + menu.DefaultTexts.Continue + "\n")
	d.RenderMenu()
	want.WriteString(menu.DefaultTexts.Farewell + "\n")

	if diff := cmp.Diff(want.String(), out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioInvalidThenClosed(t *testing.T) {
	rec, d, out, err := run(t, "99\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, menu.ErrInputClosed)
	assert.Empty(t, rec.calls)
	assert.Equal(t, 1, strings.Count(out, menu.DefaultTexts.Invalid))
	assert.Equal(t, menu.Prompting, d.State())
}

func TestClosedDuringContinuePrompt(t *testing.T) {
	rec, _, _, err := run(t, "4\n")
	assert.ErrorIs(t, err, menu.ErrInputClosed)
	assert.Contains(t, err.Error(), "continue prompt")
	assert.Equal(t, []string{"4"}, rec.calls)
}

func TestEmptyInputIsFatal(t *testing.T) {
	_, _, out, err := run(t, "")
	assert.ErrorIs(t, err, menu.ErrInputClosed)
	assert.Contains(t, out, menu.DefaultTexts.Header)
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestReadErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	d := menu.New((&recorder{}).catalog(1), failingReader{boom}, io.Discard)
	err := d.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, menu.ErrInputClosed)
}

func TestMenuOrderStableAcrossIterations(t *testing.T) {
	_, _, out, err := run(t, "x\ny\nq\n")
	require.NoError(t, err)

	var first strings.Builder
	d := menu.New((&recorder{}).catalog(10), strings.NewReader(""), &first)
	d.RenderMenu()

	assert.Equal(t, 3, strings.Count(out, first.String()))
	lines := strings.Split(first.String(), "\n")
	assert.Equal(t, "1. Lesson 1", lines[2])
	assert.Equal(t, "10. Lesson 10", lines[11])
	assert.Equal(t, "q. Quit", lines[12])
}

func TestSameLessonTwiceSameOutput(t *testing.T) {
	rec, _, out, err := run(t, "6\n\n6\n\nq\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "6"}, rec.calls)
	assert.Equal(t, 2, strings.Count(out, "<lesson 6 body>"))
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	var out bytes.Buffer
	d := menu.New(rec.catalog(2), strings.NewReader("1\n\nq\n"), &out)
	err := d.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
	assert.Empty(t, rec.calls)
}

func TestCancelFromInsideLessonStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls []string
	catalog := menu.MustCatalog(
		menu.Entry{ID: "1", Title: "Stops", Action: func(w io.Writer) {
			calls = append(calls, "1")
			cancel()
		}},
		menu.Entry{ID: "2", Title: "Never", Action: func(w io.Writer) {
			calls = append(calls, "2")
		}},
	)

	var out bytes.Buffer
	d := menu.New(catalog, strings.NewReader("1\n\n2\n\nq\n"), &out)
	err := d.Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"1"}, calls)
	assert.NotContains(t, out.String(), menu.DefaultTexts.Continue)
	assert.NotContains(t, out.String(), menu.DefaultTexts.Farewell)
	assert.Equal(t, 1, strings.Count(out.String(), menu.DefaultTexts.Header))
	assert.Equal(t, menu.Prompting, d.State())
}

// cancelOnRead cancels its context the first time it is read, as if the
// interrupt arrived while the prompt was waiting for input.
type cancelOnRead struct {
	r      io.Reader
	cancel context.CancelFunc
}

func (c *cancelOnRead) Read(p []byte) (int, error) {
	c.cancel()
	return c.r.Read(p)
}

func TestLineReadAfterCancelIsDiscarded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{}
	var out bytes.Buffer
	in := &cancelOnRead{r: strings.NewReader("5\n\nq\n"), cancel: cancel}
	d := menu.New(rec.catalog(10), in, &out)

	err := d.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.calls)
	assert.NotContains(t, out.String(), menu.DefaultTexts.Continue)
}

func TestRunAfterTerminatedIsNoop(t *testing.T) {
	rec := &recorder{}
	var out bytes.Buffer
	d := menu.New(rec.catalog(1), strings.NewReader("q\n1\n"), &out)
	require.NoError(t, d.Run(context.Background()))
	out.Reset()

	require.NoError(t, d.Run(context.Background()))
	assert.Empty(t, out.String())
}

func TestRunLesson(t *testing.T) {
	rec := &recorder{}
	var out bytes.Buffer
	d := menu.New(rec.catalog(3), strings.NewReader(""), &out)

	require.NoError(t, d.RunLesson(" 2 "))
	assert.Equal(t, []string{"2"}, rec.calls)
	assert.Equal(t, "<lesson 2 body>\n", out.String())
	assert.Equal(t, menu.Prompting, d.State())

	err := d.RunLesson("9")
	assert.ErrorIs(t, err, menu.ErrUnknownLesson)
}

func TestResolve(t *testing.T) {
	d := menu.New((&recorder{}).catalog(3), strings.NewReader(""), io.Discard)

	e, sel := d.Resolve("3")
	assert.Equal(t, menu.SelectLesson, sel)
	assert.Equal(t, "3", e.ID)

	_, sel = d.Resolve("Q")
	assert.Equal(t, menu.SelectQuit, sel)

	_, sel = d.Resolve("")
	assert.Equal(t, menu.SelectInvalid, sel)
}

func TestWithTexts(t *testing.T) {
	var out bytes.Buffer
	d := menu.New((&recorder{}).catalog(1), strings.NewReader("zz\nq\n"), &out,
		menu.WithTexts(menu.Texts{Invalid: "nope", Farewell: "bye"}))
	require.NoError(t, d.Run(context.Background()))

	assert.Contains(t, out.String(), "nope\n")
	assert.True(t, strings.HasSuffix(out.String(), "bye\n"))
	assert.Contains(t, out.String(), menu.DefaultTexts.Header, "unset fields keep defaults")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "prompting", menu.Prompting.String())
	assert.Equal(t, "executing", menu.Executing.String())
	assert.Equal(t, "terminated", menu.Terminated.String())
	assert.Equal(t, "State(7)", menu.State(7).String())
}

func TestExecutingStateVisibleToLesson(t *testing.T) {
	var d *menu.Dispatcher
	var seen menu.State
	c := menu.MustCatalog(menu.Entry{ID: "1", Title: "probe", Action: func(io.Writer) {
		seen = d.State()
	}})
	d = menu.New(c, strings.NewReader("1\n\nq\n"), io.Discard)
	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, menu.Executing, seen)
}
