package service

import "fmt"

// ErrorKind classifies tool failures so handlers can tell user mistakes apart
// from unexpected runtime faults.
type ErrorKind int

const (
	// KindValidation covers out-of-range or missing inputs (e.g. count outside [1,100]).
	KindValidation ErrorKind = iota
	// KindFormat covers malformed input text (bad UUID form, wrong JWT segment count).
	KindFormat
	// KindDecode covers inputs that look structurally right but fail to decode
	// (invalid Base64, invalid JSON).
	KindDecode
	// KindUnsupportedAlgorithm covers JWT algorithms outside HS256/384/512.
	KindUnsupportedAlgorithm
	// KindInternal covers unexpected runtime faults.
	KindInternal
)

// Error is the discriminated failure result of a tool operation.
// Every tool operation returns either a typed result or an *Error; nothing panics
// and nothing is fatal to the process.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func newFormatError(format string, args ...any) *Error {
	return &Error{Kind: KindFormat, Message: fmt.Sprintf(format, args...)}
}

func newDecodeError(format string, args ...any) *Error {
	return &Error{Kind: KindDecode, Message: fmt.Sprintf(format, args...)}
}

func newUnsupportedAlgorithmError(format string, args ...any) *Error {
	return &Error{Kind: KindUnsupportedAlgorithm, Message: fmt.Sprintf(format, args...)}
}
