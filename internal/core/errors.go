package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const formatErrorPrefix = "could not detect file format"

// errFormat is the cause attached to every FormatError.
var errFormat = errors.New("file format not detected")

// newFormatError builds the FormatError returned by FileDescriptor.Validate.
func newFormatError(filename string, formatString string) error {
	var msg strings.Builder
	msg.WriteString(formatErrorPrefix)
	if formatString != "" {
		fmt.Fprintf(&msg, " from format string '%s'", formatString)
	}
	if filename == "" {
		msg.WriteString(" for stdin/stdout")
	} else {
		fmt.Fprintf(&msg, " for filename '%s'", filename)
	}
	msg.WriteString(".")
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg.String()).
		WithCause(errFormat)
}

// ErrorMessage returns the builder message of err when it has one, and
// err.Error() otherwise.
func ErrorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

// IsFormatError reports whether err, or anything it wraps, is a FormatError.
func IsFormatError(err error) bool {
	return errors.Is(err, errFormat)
}
