package gxgl

import (
	"errors"
	"fmt"
	"os"
)

// Error kinds returned by Context methods. Every returned error wraps exactly
// one of them; match with errors.Is.
var (
	// ErrInvalidEnum reports a token outside the set a call accepts.
	ErrInvalidEnum = errors.New("gxgl: invalid enum")

	// ErrInvalidValue reports a numeric argument out of its legal range.
	ErrInvalidValue = errors.New("gxgl: invalid value")

	// ErrInvalidOperation reports a call made in a state that does not
	// allow it, such as uploading to an unbound texture.
	ErrInvalidOperation = errors.New("gxgl: invalid operation")

	// ErrStackOverflow reports a push onto a full matrix stack.
	ErrStackOverflow = errors.New("gxgl: matrix stack overflow")

	// ErrStackUnderflow reports a pop from a matrix stack at depth zero.
	ErrStackUnderflow = errors.New("gxgl: matrix stack underflow")

	// ErrOutOfBounds reports a read or write past the end of buffer,
	// index or pixel data.
	ErrOutOfBounds = errors.New("gxgl: out of bounds")
)

// ErrorHandler is called once for every failed call, with the same error the
// call returns.
type ErrorHandler func(err error)

// exit is replaced in tests.
var exit = os.Exit

// FatalErrorHandler prints err to standard error and terminates the process.
// Install it with WithErrorHandler to make every invalid call fatal.
func FatalErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "gxgl: fatal error: %v\n", err)
	exit(1)
}

// Strictness selects how a Context reacts to invalid calls.
type Strictness uint8

const (
	// StrictnessStrict validates every call and returns an error for
	// invalid ones. This is the default.
	StrictnessStrict Strictness = iota

	// StrictnessLenient turns invalid calls into silent no-ops. They are
	// logged at debug level and return nil.
	StrictnessLenient
)

// String returns the name of the strictness level.
func (s Strictness) String() string {
	switch s {
	case StrictnessStrict:
		return "Strict"
	case StrictnessLenient:
		return "Lenient"
	default:
		return "Unknown"
	}
}

// fail builds the error for a rejected call, reports it and returns it.
// In lenient mode the call is logged and nil is returned.
func (c *Context) fail(op string, kind error, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	if c.opts.strictness == StrictnessLenient {
		c.log.Debug("gxgl: ignored invalid call", "op", op, "kind", kind, "detail", detail)
		return nil
	}
	err := fmt.Errorf("gxgl: %s: %w: %s", op, kind, detail)
	if c.opts.errorHandler != nil {
		c.opts.errorHandler(err)
	}
	return err
}

// rejection records why an internal check refused a call. The public entry
// point reports it with its own name through report.
type rejection struct {
	kind   error
	detail string
}

func reject(kind error, format string, args ...any) *rejection {
	return &rejection{kind: kind, detail: fmt.Sprintf(format, args...)}
}

func (c *Context) report(op string, r *rejection) error {
	return c.fail(op, r.kind, "%s", r.detail)
}
