// Package parser turns raw supplier text into untyped field mappings.
//
// Two dialects are understood: CSV with a header row, and a JSON object
// carrying a "suppliers" array. Parsing is lazy; records are produced as the
// caller ranges over the returned sequence.
package parser

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/dotcommander/vendorsel/internal/types"
)

// SuppliersKey is the JSON object key holding the supplier array.
const SuppliersKey = "suppliers"

// Record is one supplier's raw field mapping prior to validation.
type Record map[string]any

// Parse returns a lazy sequence of records for text in the declared format.
// An unknown format fails immediately with *types.FormatError. Malformed
// input is yielded as a *types.ParseError, after which iteration stops.
func Parse(text, format string) (iter.Seq2[Record, error], error) {
	switch format {
	case types.FormatCSV:
		return parseCSV(text), nil
	case types.FormatJSON:
		return parseJSON(text), nil
	default:
		return nil, &types.FormatError{Format: format}
	}
}

// IsSupportedFormat reports whether format is a recognized input format tag.
func IsSupportedFormat(format string) bool {
	return format == types.FormatCSV || format == types.FormatJSON
}

func parseCSV(text string) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		r := csv.NewReader(strings.NewReader(text))
		r.FieldsPerRecord = -1

		header, err := r.Read()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			yield(nil, &types.ParseError{Format: types.FormatCSV, Err: err})
			return
		}
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}

		for {
			row, err := r.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, &types.ParseError{Format: types.FormatCSV, Err: err})
				return
			}

			// Short rows leave trailing columns absent; extra cells are dropped.
			rec := make(Record, len(header))
			for i, name := range header {
				if i < len(row) {
					rec[name] = row[i]
				}
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func parseJSON(text string) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		items, err := decodeSuppliers(text)
		if err != nil {
			yield(nil, &types.ParseError{Format: types.FormatJSON, Err: err})
			return
		}
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// decodeSuppliers decodes the document and extracts the supplier objects.
func decodeSuppliers(text string) ([]Record, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.New("top-level value must be an object")
	}

	raw, ok := obj[SuppliersKey]
	if !ok {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%q must be an array", SuppliersKey)
	}

	records := make([]Record, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be an object", SuppliersKey, i)
		}
		records = append(records, Record(m))
	}
	return records, nil
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[Record, error]) ([]Record, error) {
	var out []Record
	for rec, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}
