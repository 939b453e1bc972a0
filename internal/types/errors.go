package types

import (
	"errors"
	"fmt"
	"strings"
)

// Error kind names.
const (
	KindUnsupportedLanguage = "UnsupportedLanguageError"
	KindFormat              = "FormatError"
	KindParse               = "ParseError"
	KindMissingField        = "MissingFieldError"
	KindInvalidType         = "InvalidTypeError"
	KindInvalidRange        = "InvalidRangeError"
)

// KindedError is implemented by every error in the evaluation taxonomy.
type KindedError interface {
	error
	Kind() string
}

// UnsupportedLanguageError reports input text containing non-ASCII characters.
type UnsupportedLanguageError struct {
	Offset int // byte offset of the first offending rune
}

func (e *UnsupportedLanguageError) Error() string {
	return "unsupported language detected, please use ENGLISH"
}

func (e *UnsupportedLanguageError) Kind() string { return KindUnsupportedLanguage }

// FormatError reports an unrecognized input format tag.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid data format %q, please provide CSV or JSON", e.Format)
}

func (e *FormatError) Kind() string { return KindFormat }

// ParseError reports malformed input for the declared format.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed %s input: %v", strings.ToUpper(e.Format), e.Err)
}

func (e *ParseError) Kind() string { return KindParse }

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError lists every required field absent from a record.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "missing required field(s): " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldError) Kind() string { return KindMissingField }

// InvalidTypeError reports a score value that cannot be read as a number.
type InvalidTypeError struct {
	SupplierID string
	Field      string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid data type in %s: %s, please provide numeric values", e.SupplierID, e.Field)
}

func (e *InvalidTypeError) Kind() string { return KindInvalidType }

// InvalidRangeError reports a score outside [MinScore, MaxScore].
type InvalidRangeError struct {
	SupplierID string
	Field      string
	Value      float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid value in %s: %s, please provide scores between %d and %d",
		e.SupplierID, e.Field, MinScore, MaxScore)
}

func (e *InvalidRangeError) Kind() string { return KindInvalidRange }

// KindOf returns the taxonomy kind of err, looking through wrapping.
// It returns an empty string for errors outside the taxonomy.
func KindOf(err error) string {
	var ke KindedError
	if errors.As(err, &ke) {
		return ke.Kind()
	}
	return ""
}
