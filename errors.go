package envelope

import (
	"errors"

	"github.com/samber/oops"
)

// Error codes attached to every error this package returns. Codes are
// stable API: match on them with ErrorCode rather than on error messages.
const (
	// CodeConfigError is returned when exactly one of secret and method is
	// configured; they must be provided together or not at all.
	CodeConfigError = "CONFIG_ERROR"

	// CodeUnsupportedMethod is returned when a configured method name is
	// not in the transform registry.
	CodeUnsupportedMethod = "UNSUPPORTED_METHOD"

	// CodePackError is returned when payload serialization fails.
	CodePackError = "PACK_ERROR"

	// CodeVersionMismatch is returned when a buffer's format version byte
	// differs from Version.
	CodeVersionMismatch = "VERSION_MISMATCH"

	// CodeMethodMismatch is returned when a buffer's stored transform
	// differs from the method this packer is configured for.
	CodeMethodMismatch = "METHOD_MISMATCH"

	// CodeInvalidLength is returned when a buffer is shorter than the
	// header or its declared payload length exceeds the buffer.
	CodeInvalidLength = "INVALID_LENGTH"

	// CodeUnpackError is returned when payload decoding or parsing fails.
	CodeUnpackError = "UNPACK_ERROR"

	// CodeInvalidText is returned when a transport string is not valid
	// radix-64 text.
	CodeInvalidText = "INVALID_TEXT"
)

// ErrorCode returns the code carried by err, or the empty string if err
// carries none. Codes survive wrapping.
func ErrorCode(err error) string {
	var oopsErr oops.OopsError
	if errors.As(err, &oopsErr) {
		return oopsErr.Code()
	}
	return ""
}
