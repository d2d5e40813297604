package widget

import (
	"encoding/json"
	"errors"
	"reflect"
)

// ErrInvalidResult is wrapped by all errors returned for results that
// violate a variant's input contract.
var ErrInvalidResult = errors.New("invalid widget result")

// Normalizer converts one widget variant's raw result into its canonical
// payload tree.
type Normalizer interface {
	// Variant returns the widget variant name.
	Variant() string
	// Normalize validates result against the variant's input contract and
	// returns the payload tree.
	Normalize(result any) (any, error)
}

// Raw is the identity normalizer: the result is rendered exactly as
// returned. It backs widget types that need no conversion.
var Raw Normalizer = rawWidget{}

type rawWidget struct{}

func (rawWidget) Variant() string { return "raw" }

func (rawWidget) Normalize(result any) (any, error) { return result, nil }

// AsSequence converts slice and array values of any element type to
// []any. ok is false for everything else: strings and byte slices count as
// scalars, not sequences. Renderers and custom normalizers share this
// definition of "sequence".
func AsSequence(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		return t, true
	case string, []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

// seq applies the auto-wrap rule shared by all variants: where a contract
// accepts a value or a list of values, a bare value means a one-element
// list.
func seq(v any) []any {
	if s, ok := AsSequence(v); ok {
		return s
	}
	return []any{v}
}

// toFloat converts any numeric scalar, including json.Number, to float64.
func toFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}

	return 0, false
}
