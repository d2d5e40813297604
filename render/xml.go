package render

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"go.hackfix.me/dashfeed/widget"
)

// NameXML is the markup renderer's name.
const NameXML = "xml"

// XML renders payload trees as markup wrapped in a single <root> element.
// A mapping entry becomes a child element named after its key. A sequence
// never gets a container element: it emits one sibling element per entry.
// Scalars become text nodes, and attributes are not used at all.
var XML Renderer = xmlRenderer{}

type xmlRenderer struct{}

func (xmlRenderer) Name() string { return NameXML }

func (xmlRenderer) ContentType() string { return "application/xml" }

func (xmlRenderer) Render(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	root := xml.StartElement{Name: xml.Name{Local: "root"}}
	err := enc.EncodeToken(root)
	if err == nil {
		err = writeValue(enc, v)
	}
	if err == nil {
		err = enc.EncodeToken(root.End())
	}
	if err == nil {
		err = enc.Flush()
	}
	if err != nil {
		return nil, fmt.Errorf("failed rendering XML payload: %w", err)
	}

	return buf.Bytes(), nil
}

// writeValue writes v inside the current element: mapping entries become
// child elements, sequence entries flatten into the parent, scalars become
// text.
func writeValue(enc *xml.Encoder, v any) error {
	if p, ok := v.(*widget.Payload); ok {
		for key, val := range p.All() {
			if err := writeEntry(enc, key, val); err != nil {
				return err
			}
		}
		return nil
	}
	if s, ok := widget.AsSequence(v); ok {
		for _, item := range s {
			if err := writeValue(enc, item); err != nil {
				return err
			}
		}
		return nil
	}

	return enc.EncodeToken(xml.CharData(text(v)))
}

// writeEntry writes one mapping entry. A sequence value emits one element
// named key per entry.
func writeEntry(enc *xml.Encoder, key string, v any) error {
	if s, ok := widget.AsSequence(v); ok {
		for _, item := range s {
			if err := writeElement(enc, key, item); err != nil {
				return err
			}
		}
		return nil
	}

	return writeElement(enc, key, v)
}

func writeElement(enc *xml.Encoder, key string, v any) error {
	start := xml.StartElement{Name: xml.Name{Local: key}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := writeValue(enc, v); err != nil {
		return err
	}

	return enc.EncodeToken(start.End())
}

// text renders a scalar as character data. A nil value renders empty.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return formatFloat(t)
	case float32:
		return formatFloat(float64(t))
	}

	return fmt.Sprint(v)
}

// formatFloat avoids exponent notation for integral values so numbers show
// the same digits in both wire formats.
func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
