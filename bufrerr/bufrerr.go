// Package bufrerr defines the typed error kinds surfaced by the query/reshape
// engine (spec.md §7), shared by the query, frame, and resultset packages so
// callers can errors.As down to a specific Kind regardless of which package
// raised it.
package bufrerr

import (
	"errors"
	"fmt"

	"hermannm.dev/enumnames"
)

// Kind is one of the error conditions the engine can raise. No operation
// recovers from these internally; they all surface to the caller.
type Kind uint8

const (
	KindEmptyResultSet Kind = iota + 1
	KindNoSuchField
	KindPathMismatch
	KindUnsupportedConversion
	KindUnknownType
	KindUnknownName
)

var kindNames = enumnames.NewMap(map[Kind]string{
	KindEmptyResultSet:        "EmptyResultSet",
	KindNoSuchField:           "NoSuchField",
	KindPathMismatch:          "PathMismatch",
	KindUnsupportedConversion: "UnsupportedConversion",
	KindUnknownType:           "UnknownType",
	KindUnknownName:           "UnknownName",
})

func (kind Kind) IsValid() bool {
	return kindNames.ContainsEnumValue(kind)
}

func (kind Kind) String() string {
	return kindNames.GetNameOrFallback(kind, "UNKNOWN_ERROR_KIND")
}

func (kind Kind) MarshalJSON() ([]byte, error) {
	return kindNames.MarshalToNameJSON(kind)
}

func (kind *Kind) UnmarshalJSON(bytes []byte) error {
	return kindNames.UnmarshalFromNameJSON(bytes, kind)
}

// Error pairs a Kind with a message and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (err *Error) Error() string {
	if err.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", err.Kind, err.Message, err.Cause)
	}
	return fmt.Sprintf("%s: %s", err.Kind, err.Message)
}

func (err *Error) Unwrap() error {
	return err.Cause
}

// New builds an Error of the given Kind with no wrapped cause.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an Error of the given Kind with a formatted message.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given Kind around a lower-level cause.
func Wrap(kind Kind, cause error, message string) error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err is (or wraps) a bufrerr.Error of the given Kind.
func Is(err error, kind Kind) bool {
	var bufrErr *Error
	if errors.As(err, &bufrErr) {
		return bufrErr.Kind == kind
	}
	return false
}
