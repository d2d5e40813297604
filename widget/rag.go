package widget

import "fmt"

// RAG renders the red-amber-green widget. The result is a sequence of up
// to three entries ordered red, amber, green, each a value or a
// (value, text) pair. A nil value renders as the empty string.
var RAG Normalizer = ragWidget{}

type ragWidget struct{}

func (ragWidget) Variant() string { return "rag" }

func (ragWidget) Normalize(result any) (any, error) {
	elems, ok := AsSequence(result)
	if !ok {
		return nil, fmt.Errorf("%w: rag expects a sequence of entries, got %T", ErrInvalidResult, result)
	}

	items := []any{}
	for _, elem := range elems {
		entry := seq(elem)
		if len(entry) == 0 {
			return nil, fmt.Errorf("%w: rag entries must not be empty", ErrInvalidResult)
		}

		item := NewPayload()
		if entry[0] == nil {
			item.Set("value", "")
		} else {
			item.Set("value", entry[0])
		}
		if len(entry) > 1 {
			item.Set("text", entry[1])
		}
		items = append(items, item)
	}

	return NewPayload().Set("item", items), nil
}
