package errhandling

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// ValidationError carries fields a caller can inspect.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %q: %s", e.Field, e.Message)
}

func validateAge(s string) error {
	switch s {
	case "":
		return &ValidationError{Field: "age", Message: "must not be empty"}
	case "abc":
		return fmt.Errorf("signup: %w", &ValidationError{Field: "age", Message: "must be a number"})
	}
	return nil
}

func demoCustomTypes(w io.Writer) {
	for _, in := range []string{"", "abc", "30"} {
		err := validateAge(in)
		var ve *ValidationError
		switch {
		case err == nil:
			fmt.Fprintf(w, "  validateAge(%q) → ok\n", in)
		case errors.As(err, &ve):
			fmt.Fprintf(w, "  validateAge(%q) → field=%s msg=%q\n", in, ve.Field, ve.Message)
		}
	}

	// The nil-interface trap: a typed nil pointer is a non-nil error.
	var ptr *ValidationError
	var err error = ptr
	fmt.Fprintf(w, "  var err error = (*ValidationError)(nil); err != nil → %v  ← return a literal nil instead\n", err != nil)
}

// OpError follows net.OpError and fs.PathError: operation, resource, cause.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }

func (e *OpError) Unwrap() error { return e.Err }

var ErrConnectionRefused = errors.New("connection refused")

// dial is the low level; query converts the low-level error into the
// caller's vocabulary while keeping the cause reachable.
func dial(addr string) error {
	return &OpError{Op: "dial", Path: addr, Err: ErrConnectionRefused}
}

func query(addr, sql string) error {
	if err := dial(addr); err != nil {
		return &OpError{Op: "query", Path: sql, Err: err}
	}
	return nil
}

func demoConversion(w io.Writer) {
	err := query("db:5432", "SELECT 1")
	fmt.Fprintf(w, "  error: %v\n", err)

	var op *OpError
	if errors.As(err, &op) {
		fmt.Fprintf(w, "  outermost OpError → op=%s path=%s\n", op.Op, op.Path)
	}
	fmt.Fprintf(w, "  errors.Is(err, ErrConnectionRefused) → %v\n", errors.Is(err, ErrConnectionRefused))
}

// StatusError matches by code in errors.Is, ignoring the message.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string { return fmt.Sprintf("status %d: %s", e.Code, e.Message) }

func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	return ok && t.Code == e.Code
}

var ErrStatusNotFound = &StatusError{Code: 404}

func demoChaining(w io.Writer) {
	err := fmt.Errorf("handler: %w", &StatusError{Code: 404, Message: "post 7 not found"})
	fmt.Fprintf(w, "  errors.Is(404 with message, ErrStatusNotFound) → %v\n", errors.Is(err, ErrStatusNotFound))
	other := &StatusError{Code: 500, Message: "boom"}
	fmt.Fprintf(w, "  errors.Is(500, ErrStatusNotFound)              → %v\n", errors.Is(other, ErrStatusNotFound))

	// errors.Join collects independent failures; Is/As search every branch.
	form := map[string]string{"username": "", "email": "nope", "age": "30"}
	var errs []error
	for _, field := range []string{"username", "email", "age"} {
		v := form[field]
		switch {
		case v == "":
			errs = append(errs, &ValidationError{Field: field, Message: "required"})
		case field == "email" && !strings.Contains(v, "@"):
			errs = append(errs, &ValidationError{Field: field, Message: "invalid format"})
		}
	}
	joined := errors.Join(errs...)
	fmt.Fprintf(w, "  errors.Join of %d errors:\n", len(errs))
	for _, line := range strings.Split(joined.Error(), "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
	var ve *ValidationError
	fmt.Fprintf(w, "  errors.As finds the first: %v (%s)\n", errors.As(joined, &ve), ve.Field)
	fmt.Fprintf(w, "  errors.Join(nil, nil) == nil → %v\n", errors.Join(nil, nil) == nil)

	// Joined errors expose Unwrap() []error.
	if u, ok := joined.(interface{ Unwrap() []error }); ok {
		fields := lo.Map(u.Unwrap(), func(e error, _ int) string {
			var v *ValidationError
			if errors.As(e, &v) {
				return v.Field
			}
			return "?"
		})
		fmt.Fprintf(w, "  fields from Unwrap() []error → %v\n", fields)
	}
}
