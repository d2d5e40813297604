package widget

import (
	"cmp"
	"fmt"
	"slices"
)

// Funnel renders the funnel widget.
var Funnel Normalizer = funnelWidget{}

// FunnelItem is one step of a funnel. Label may be empty.
type FunnelItem struct {
	Value any
	Label string
}

// FunnelResult is the funnel variant's input contract.
type FunnelResult struct {
	// Items holds the funnel steps, topmost first.
	Items []FunnelItem
	// Type orders the funnel colours: "standard" (the default) or
	// "reverse".
	Type string
	// Percentage shows or hides the percentage figures: "show" (the
	// default) or "hide".
	Percentage string
	// Sort reorders Items by descending value. Items with equal values
	// keep their input order.
	Sort bool
}

type funnelWidget struct{}

func (funnelWidget) Variant() string { return "funnel" }

func (funnelWidget) Normalize(result any) (any, error) {
	var fr FunnelResult
	switch t := result.(type) {
	case FunnelResult:
		fr = t
	case *FunnelResult:
		if t == nil {
			return nil, fmt.Errorf("%w: funnel expects a FunnelResult, got nil", ErrInvalidResult)
		}
		fr = *t
	default:
		return nil, fmt.Errorf("%w: funnel expects a FunnelResult, got %T", ErrInvalidResult, result)
	}

	items := slices.Clone(fr.Items)
	if fr.Sort {
		for _, item := range items {
			if _, ok := toFloat(item.Value); !ok {
				return nil, fmt.Errorf("%w: funnel sort requires numeric values, got %T", ErrInvalidResult, item.Value)
			}
		}
		slices.SortStableFunc(items, func(a, b FunnelItem) int {
			av, _ := toFloat(a.Value)
			bv, _ := toFloat(b.Value)
			return cmp.Compare(bv, av)
		})
	}

	steps := []any{}
	for _, item := range items {
		steps = append(steps, NewPayload().Set("value", item.Value).Set("label", item.Label))
	}

	p := NewPayload().Set("item", steps)
	p.Set("type", cmp.Or(fr.Type, "standard"))
	p.Set("percentage", cmp.Or(fr.Percentage, "show"))

	return p, nil
}
