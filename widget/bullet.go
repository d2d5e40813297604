package widget

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// BulletGraph renders the bullet graph widget.
var BulletGraph Normalizer = bulletGraph{}

// BulletBand is a region on the bullet graph's measuring axis.
type BulletBand struct {
	Start float64
	End   float64
}

// BulletRange holds the qualitative background bands.
type BulletRange struct {
	Red   BulletBand
	Amber BulletBand
	Green BulletBand
}

// BulletMeasure holds the featured measure and its projection.
type BulletMeasure struct {
	Current   BulletBand
	Projected BulletBand
}

// BulletAxis places the labels along the measuring axis. Non-empty Points
// are used verbatim. Otherwise Count labels are generated, spread evenly
// between Min and Max and rounded to Precision decimal places, truncated
// to whole numbers when Precision is 0. Count must be at least 1; a Count
// of 1 produces the two labels Min and Max.
type BulletAxis struct {
	Points    []float64
	Min       float64
	Max       float64
	Count     int
	Precision int
}

// points resolves the axis labels, generating them when not explicit.
func (a BulletAxis) points() ([]float64, error) {
	if len(a.Points) > 0 {
		return a.Points, nil
	}
	if a.Count < 1 {
		return nil, fmt.Errorf("%w: bullet graph axis needs at least 1 point, got %d", ErrInvalidResult, a.Count)
	}

	var pts []float64
	if a.Count == 1 {
		pts = []float64{a.Min, a.Max}
	} else {
		step := (a.Max - a.Min) / float64(a.Count-1)
		pts = make([]float64, a.Count)
		for i := range pts {
			pts[i] = a.Min + step*float64(i)
		}
	}

	for i, pt := range pts {
		pts[i] = roundTo(pt, a.Precision)
	}

	return pts, nil
}

// roundTo rounds to prec decimal places. Zero and negative precision
// truncate to a whole number.
func roundTo(v float64, prec int) float64 {
	if prec <= 0 {
		return math.Trunc(v)
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', prec, 64), 64)
	if err != nil {
		return v
	}

	return r
}

// BulletItem describes a single bullet graph.
type BulletItem struct {
	Label       string
	Sublabel    string
	Axis        BulletAxis
	Range       BulletRange
	Measure     BulletMeasure
	Comparative []float64
}

// BulletResult is the bullet graph variant's input contract.
type BulletResult struct {
	// Orientation is "horizontal" (the default) or "vertical".
	Orientation string
	Item        BulletItem
}

type bulletGraph struct{}

func (bulletGraph) Variant() string { return "bullet" }

func (bulletGraph) Normalize(result any) (any, error) {
	var br BulletResult
	switch t := result.(type) {
	case BulletResult:
		br = t
	case *BulletResult:
		if t == nil {
			return nil, fmt.Errorf("%w: bullet graph expects a BulletResult, got nil", ErrInvalidResult)
		}
		br = *t
	default:
		return nil, fmt.Errorf("%w: bullet graph expects a BulletResult, got %T", ErrInvalidResult, result)
	}

	points, err := br.Item.Axis.points()
	if err != nil {
		return nil, err
	}
	comparative := br.Item.Comparative
	if comparative == nil {
		comparative = []float64{}
	}

	item := NewPayload().
		Set("label", br.Item.Label).
		Set("sublabel", br.Item.Sublabel).
		Set("axis", NewPayload().Set("point", points)).
		Set("range", NewPayload().
			Set("red", bandPayload(br.Item.Range.Red)).
			Set("amber", bandPayload(br.Item.Range.Amber)).
			Set("green", bandPayload(br.Item.Range.Green))).
		Set("measure", NewPayload().
			Set("current", bandPayload(br.Item.Measure.Current)).
			Set("projected", bandPayload(br.Item.Measure.Projected))).
		Set("comparative", NewPayload().Set("point", comparative))

	p := NewPayload().
		Set("item", item).
		Set("orientation", cmp.Or(br.Orientation, "horizontal"))

	return p, nil
}

func bandPayload(b BulletBand) *Payload {
	return NewPayload().Set("start", b.Start).Set("end", b.End)
}
