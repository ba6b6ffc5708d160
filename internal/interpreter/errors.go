package interpreter

import "errors"

// ErrorKind tells rejected input apart from failures while applying it.
type ErrorKind int

const (
	SyntaxError ErrorKind = iota
	RuntimeError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case RuntimeError:
		return "RuntimeError"
	}
	return "UnknownError"
}

// Error is returned by Parse and by every command handler.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func syntaxErr(msg string) error {
	return &Error{Kind: SyntaxError, Message: msg}
}

func runtimeErr(msg string) error {
	return &Error{Kind: RuntimeError, Message: msg}
}

func kindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsSyntax reports whether err, or any error it wraps, is a SyntaxError.
func IsSyntax(err error) bool {
	k, ok := kindOf(err)
	return ok && k == SyntaxError
}

// IsRuntime reports whether err, or any error it wraps, is a RuntimeError.
func IsRuntime(err error) bool {
	k, ok := kindOf(err)
	return ok && k == RuntimeError
}
