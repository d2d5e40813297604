package widget

import "fmt"

// LineChart renders the line chart widget. The result is a tuple of one
// to four elements: (values[, xAxis[, yAxis[, colour]]]). The values
// element is a sequence of data points. An axis element is a label or a
// list of labels placed evenly along the axis; nil means a single empty
// label. The colour element is an RRGGBB[TT] string.
var LineChart Normalizer = lineChart{}

type lineChart struct{}

func (lineChart) Variant() string { return "line" }

func (lineChart) Normalize(result any) (any, error) {
	parts, ok := AsSequence(result)
	if !ok || len(parts) == 0 {
		return nil, fmt.Errorf("%w: line chart expects (values[, x axis[, y axis[, colour]]]), got %T", ErrInvalidResult, result)
	}
	values, ok := AsSequence(parts[0])
	if !ok {
		return nil, fmt.Errorf("%w: line chart values must be a sequence, got %T", ErrInvalidResult, parts[0])
	}

	p := NewPayload().Set("item", values)
	settings := NewPayload()
	p.Set("settings", settings)

	if len(parts) > 1 {
		settings.Set("axisx", axisLabels(parts[1]))
	}
	if len(parts) > 2 {
		settings.Set("axisy", axisLabels(parts[2]))
	}
	if len(parts) > 3 {
		settings.Set("colour", parts[3])
	}

	return p, nil
}

// axisLabels applies the nil and auto-wrap conversions shared by both
// axes.
func axisLabels(v any) []any {
	if v == nil {
		v = ""
	}
	return seq(v)
}
