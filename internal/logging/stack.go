package logging

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// StackTracer is implemented by errors that carry the stack of their origin.
type StackTracer interface {
	StackTrace() string
}

// PanicError wraps a value recovered from a panicking case body.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// StackTrace implements StackTracer.
func (e *PanicError) StackTrace() string {
	return e.Stack
}

// Unwrap exposes a panicked error value to errors.Is and errors.As.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func stackOf(err error) string {
	var st StackTracer
	if errors.As(err, &st) {
		return st.StackTrace()
	}

	return captureStack(3)
}

// captureStack formats the caller's stack, skipping frames inside this
// package and the runtime.
func captureStack(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder

	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "internal/logging.") && !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&b, "  at %s (%s:%d)\n", frame.Function, frame.File, frame.Line)
		}

		if !more {
			break
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}
