package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in a new goroutine, turning a panic or a runtime.Goexit
// call into a non-nil error return: a PanicError or an ExitError.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			select {
			case errch <- ExitError{name}:
			default:
				// the happy path or a panic already sent
			}
		}()
		defer func() {
			if e := recover(); e != nil {
				errch <- PanicError{name, e, debug.Stack()}
			}
		}()
		errch <- f()
	}()
	return <-errch
}

// PanicError is a recovered panic.
type PanicError struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (pe PanicError) Error() string { return fmt.Sprint(pe) }

// Format adds the panic stack under "%+v".
func (pe PanicError) Format(f fmt.State, c rune) {
	if pe.Name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.Value)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.Name, pe.Value)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.Stack)
	}
}

// Unwrap returns the panic value if it is an error.
func (pe PanicError) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// ExitError is a recovered runtime.Goexit call.
type ExitError struct {
	Name string
}

func (xe ExitError) Error() string {
	if xe.Name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", xe.Name)
}

// IsPanic returns true if err indicates a recovered panic.
func IsPanic(err error) bool {
	var pe PanicError
	return errors.As(err, &pe)
}

// IsExit returns true if err indicates a recovered goroutine exit.
func IsExit(err error) bool {
	var xe ExitError
	return errors.As(err, &xe)
}
