package widget

import "fmt"

// Annotation types for text widget messages.
const (
	TextNone = 0
	TextInfo = 2
	TextWarn = 1
)

// Text renders the text widget: one or more messages shown in rotation.
// The result is a message or a sequence of entries, each a message or a
// (message, type) pair. The type is one of TextNone, TextInfo or TextWarn
// and defaults to TextNone.
var Text Normalizer = textWidget{}

type textWidget struct{}

func (textWidget) Variant() string { return "text" }

func (textWidget) Normalize(result any) (any, error) {
	items := []any{}
	for _, elem := range seq(result) {
		entry := seq(elem)
		if len(entry) == 0 {
			return nil, fmt.Errorf("%w: text entries must not be empty", ErrInvalidResult)
		}

		item := NewPayload().Set("text", entry[0])
		if len(entry) > 1 && entry[1] != nil {
			item.Set("type", entry[1])
		} else {
			item.Set("type", TextNone)
		}
		items = append(items, item)
	}

	return NewPayload().Set("item", items), nil
}
