package widget

// Number renders the big-number widget: a current value and an optional
// previous value for the trend indicator. The result is a value or a
// sequence of values; nil entries are dropped.
var Number Normalizer = numberWidget{}

type numberWidget struct{}

func (numberWidget) Variant() string { return "number" }

func (numberWidget) Normalize(result any) (any, error) {
	items := []any{}
	for _, v := range seq(result) {
		if v == nil {
			continue
		}
		items = append(items, NewPayload().Set("value", v))
	}

	return NewPayload().Set("item", items), nil
}
