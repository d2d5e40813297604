package widget

import "fmt"

// Meter renders the gauge widget. The result is a (value, min, max)
// tuple; min and max are a bound value or a (value, text) pair, with text
// displayed next to the bound.
var Meter Normalizer = meterWidget{}

type meterWidget struct{}

func (meterWidget) Variant() string { return "meter" }

func (meterWidget) Normalize(result any) (any, error) {
	parts, ok := AsSequence(result)
	if !ok {
		return nil, fmt.Errorf("%w: meter expects (value, min, max), got %T", ErrInvalidResult, result)
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: meter expects (value, min, max), got %d elements", ErrInvalidResult, len(parts))
	}

	p := NewPayload().Set("item", parts[0])
	for _, bound := range []struct {
		key string
		val any
	}{{"max", parts[2]}, {"min", parts[1]}} {
		entry := seq(bound.val)
		if len(entry) == 0 {
			return nil, fmt.Errorf("%w: meter %s must not be empty", ErrInvalidResult, bound.key)
		}

		b := NewPayload().Set("value", entry[0])
		if len(entry) > 1 {
			b.Set("text", entry[1])
		}
		p.Set(bound.key, b)
	}

	return p, nil
}
