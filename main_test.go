package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/golessons/internal/cli"
)

func TestRun_QuitImmediately(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(strings.NewReader("Q\n"), &out, &errOut, nil)
	require.NoError(t, err)

	want := `=== Go Lessons ===
Choose a topic:
1. Variables and Data Types
2. Functions and Control Flow
3. Structs
4. Enums
5. Pattern Matching
6. Collections
7. Packages and Modules
8. Error Handling
9. Generics
10. Lifetimes
q. Quit
Enter your choice: Thanks for learning with Go Lessons. Goodbye!
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	require.Empty(t, errOut.String())
}

func TestRun_InvalidThenQuit(t *testing.T) {
	var out bytes.Buffer

	err := run(strings.NewReader("banana\n\nq\n"), &out, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out.String(), "Invalid choice, please try again."))
	require.NotContains(t, out.String(), "Press Enter to continue...")
	require.Equal(t, 3, strings.Count(out.String(), "=== Go Lessons ==="))
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		code  int
	}{
		{"closed input", "", nil, cli.ExitFailure},
		{"closed during continue prompt", "1\n", nil, cli.ExitFailure},
		{"unknown lesson", "", []string{"-l", "0"}, cli.ExitUsage},
		{"bad flag", "", []string{"--verbose"}, cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(strings.NewReader(tt.input), &bytes.Buffer{}, &bytes.Buffer{}, tt.args)
			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr), "got %v", err)
			require.Equal(t, tt.code, exitErr.Code)
		})
	}
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader(""), &out, &bytes.Buffer{}, []string{"--help"}))
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "--lesson")
}
