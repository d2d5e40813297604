package widget

import "fmt"

// PieChart renders the pie chart widget. The result is a sequence of
// segment entries: a value, a (value, label) pair or a
// (value, label, colour) triple, colour in RRGGBB[TT] form.
var PieChart Normalizer = pieChart{}

type pieChart struct{}

func (pieChart) Variant() string { return "pie" }

func (pieChart) Normalize(result any) (any, error) {
	segments, ok := AsSequence(result)
	if !ok {
		return nil, fmt.Errorf("%w: pie chart expects a sequence of segments, got %T", ErrInvalidResult, result)
	}

	items := []any{}
	for _, segment := range segments {
		entry := seq(segment)
		if len(entry) == 0 {
			return nil, fmt.Errorf("%w: pie chart segments must not be empty", ErrInvalidResult)
		}

		item := NewPayload().Set("value", entry[0])
		if len(entry) > 1 {
			item.Set("label", entry[1])
		}
		if len(entry) > 2 {
			item.Set("colour", entry[2])
		}
		items = append(items, item)
	}

	return NewPayload().Set("item", items), nil
}
