package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is, re-exported so callers need a single errors import
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// outermost returns the first *Error in err's chain
func outermost(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// GetCode returns the code of the outermost *Error. Plain errors are
// Internal and nil is OK.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := outermost(err); ok {
		return e.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetMeta returns the metadata of the outermost *Error
func GetMeta(err error) map[string]interface{} {
	if e, ok := outermost(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage returns the user-facing message, falling back to err.Error()
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := outermost(err); ok {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }
func IsFailedPrecondition(err error) bool { return HasCode(err, CodeFailedPrecondition) }
func IsInternal(err error) bool { return HasCode(err, CodeInternal) }
func IsUnavailable(err error) bool { return HasCode(err, CodeUnavailable) }
func IsCanceled(err error) bool { return HasCode(err, CodeCanceled) }
