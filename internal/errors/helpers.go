package errors

import "errors"

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is forwards to the standard library errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of err, CodeOK for nil and CodeInternal for
// errors that are not *Error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMessage returns the user facing message of err
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// GetMeta returns the metadata attached to err, if any
func GetMeta(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// IsNotFound reports whether err carries CodeNotFound
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument reports whether err carries CodeInvalidArgument
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsAlreadyExists reports whether err carries CodeAlreadyExists
func IsAlreadyExists(err error) bool { return GetCode(err) == CodeAlreadyExists }

// IsFailedPrecondition reports whether err carries CodeFailedPrecondition
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

// IsInternal reports whether err carries CodeInternal
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

// IsUnavailable reports whether err carries CodeUnavailable
func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }
