// Package validate checks raw supplier records and turns them into scored suppliers.
//
// Checks run in a fixed order and stop at the first violation: required
// fields, then numeric type of every score, then score range. Input text is
// gated once, before parsing, by CheckLanguage.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/dotcommander/vendorsel/internal/parser"
	"github.com/dotcommander/vendorsel/internal/scoring"
	"github.com/dotcommander/vendorsel/internal/types"
	"github.com/spf13/cast"
)

var errNotNumeric = errors.New("value is not numeric")

// CheckLanguage fails with *types.UnsupportedLanguageError unless every
// character of text is 7-bit ASCII.
func CheckLanguage(text string) error {
	for i, r := range text {
		if r > unicode.MaxASCII {
			return &types.UnsupportedLanguageError{Offset: i}
		}
	}
	return nil
}

// Result is the outcome of validating one record.
type Result struct {
	Index    int // zero-based position in the batch
	Supplier scoring.Supplier
	Err      error
}

// OK reports whether the record produced a supplier.
func (r Result) OK() bool { return r.Err == nil }

// SupplierID returns the best-known identifier for the record, even when it failed.
func (r Result) SupplierID() string {
	if r.OK() {
		return r.Supplier.ID
	}
	var te *types.InvalidTypeError
	if errors.As(r.Err, &te) {
		return te.SupplierID
	}
	var re *types.InvalidRangeError
	if errors.As(r.Err, &re) {
		return re.SupplierID
	}
	return ""
}

// Check validates the record at index and wraps the outcome in a Result.
func Check(index int, rec parser.Record) Result {
	s, err := Record(rec)
	return Result{Index: index, Supplier: s, Err: err}
}

// Record validates rec and constructs its Supplier with the overall score computed.
func Record(rec parser.Record) (scoring.Supplier, error) {
	if missing := MissingFields(rec); len(missing) > 0 {
		return scoring.Supplier{}, &types.MissingFieldError{Fields: missing}
	}

	id := SupplierID(rec)

	// Every score is coerced before any range check runs.
	values := make([]float64, len(types.ScoreFields))
	for i, field := range types.ScoreFields {
		v, err := ToNumber(rec[field])
		if err != nil {
			return scoring.Supplier{}, &types.InvalidTypeError{SupplierID: id, Field: field}
		}
		values[i] = v
	}

	for i, field := range types.ScoreFields {
		if !InRange(values[i]) {
			return scoring.Supplier{}, &types.InvalidRangeError{SupplierID: id, Field: field, Value: values[i]}
		}
	}

	return scoring.NewSupplier(id, values[0], values[1], values[2]), nil
}

// MissingFields returns every required field absent from rec, in canonical order.
func MissingFields(rec parser.Record) []string {
	var missing []string
	for _, field := range types.RequiredFields {
		if _, ok := rec[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// SupplierID renders the record's supplier_id as text.
func SupplierID(rec parser.Record) string {
	switch v := rec[types.FieldSupplierID].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return cast.ToString(v)
	}
}

// ToNumber coerces a raw field value to float64.
// Strings and JSON numbers are trimmed and parsed the same way, so an
// out-of-range literal becomes ±Inf; other scalars go through cast. Nil, empty
// strings, objects and arrays are rejected.
func ToNumber(raw any) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, errNotNumeric
	case string:
		return parseNumeric(v)
	case json.Number:
		return parseNumeric(v.String())
	case map[string]any, []any:
		return 0, errNotNumeric
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errNotNumeric, err)
		}
		return f, nil
	}
}

func parseNumeric(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errNotNumeric
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		// Out-of-range literals still parse to ±Inf and fail the range check instead.
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, nil
		}
		return 0, fmt.Errorf("%w: %q", errNotNumeric, raw)
	}
	return f, nil
}

// InRange reports whether v lies in [types.MinScore, types.MaxScore]. NaN never does.
func InRange(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	return v >= types.MinScore && v <= types.MaxScore
}
