package log

import (
	"errors"
	"fmt"
)

// Errors that abort a run. Each carries a stable code for log consumers.
var (
	ErrMalformedConfig   = newFatalErrorWithReason("ERR_MALFORMED_CONFIG", "config is malformed")
	ErrBadFlags          = newFatalErrorWithReason("ERR_BAD_FLAGS", "bad CLI flags")
	ErrGenerateIdentity  = newFatalErrorWithReason("ERR_GENERATE_IDENTITY", "could not generate node identity")
	ErrLocate            = newFatalErrorWithReason("ERR_LOCATE", "could not fetch GPS coordinates")
	ErrUnsupportedFormat = newFatalErrorWithArgs("ERR_UNSUPPORTED_FORMAT", "unsupported log encoder %q")
)

// FatalError describes an error that terminates the process.
type FatalError struct {
	Code   string
	Text   string
	Args   []any
	Reason error
}

func newFatalErrorWithArgs(code, text string) func(args ...any) *FatalError {
	return func(args ...any) *FatalError {
		return &FatalError{
			Code: code,
			Text: text,
			Args: args,
		}
	}
}

func newFatalErrorWithReason(code, text string) func(reason error) *FatalError {
	return func(reason error) *FatalError {
		return &FatalError{
			Code:   code,
			Text:   text,
			Reason: reason,
		}
	}
}

func (fe FatalError) Error() string {
	if fe.Reason != nil {
		return fmt.Sprintf("%v: %v", fe.Text, fe.Reason)
	}

	if len(fe.Args) != 0 {
		return fmt.Sprintf(fe.Text, fe.Args...)
	}

	return fe.Text
}

// Unwrap returns the underlying reason, if any.
func (fe FatalError) Unwrap() error {
	return fe.Reason
}

func (fe FatalError) Field() Field { return Inline(fe) }

// MarshalLogObject implements logging encoder for FatalError.
func (fe FatalError) MarshalLogObject(encoder ObjectEncoder) error {
	encoder.AddString("code", fe.Code)
	encoder.AddString("error", fe.Error())
	if len(fe.Args) == 0 {
		return nil
	}
	if err := encoder.AddArray("args", arrayMarshaler(fe.Args)); err != nil {
		return fmt.Errorf("add array: %w", err)
	}
	return nil
}

type arrayMarshaler []any

func (args arrayMarshaler) MarshalLogArray(encoder ArrayEncoder) error {
	for _, arg := range args {
		if err := encoder.AppendReflected(arg); err != nil {
			return fmt.Errorf("append reflected: %w", err)
		}
	}
	return nil
}

// ErrField returns the coded form of a FatalError found in err's chain,
// or a plain error field otherwise.
func ErrField(err error) LoggableField {
	var fe *FatalError
	if errors.As(err, &fe) {
		return fe
	}
	return Err(err)
}
