package widget

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Payload is the ordered mapping node of a widget payload tree. Dashboard
// hosts are sensitive to element order in the markup format, so key order
// is insertion order everywhere: construction, JSON and XML.
type Payload struct {
	om *orderedmap.OrderedMap[string, any]
}

// NewPayload returns an empty mapping.
func NewPayload() *Payload {
	return &Payload{om: orderedmap.New[string, any]()}
}

// Set stores value under key and returns p for chaining. A key that is
// already present keeps its original position.
func (p *Payload) Set(key string, value any) *Payload {
	if p.om == nil {
		p.om = orderedmap.New[string, any]()
	}
	p.om.Set(key, value)

	return p
}

// Get returns the value stored under key.
func (p *Payload) Get(key string) (any, bool) {
	if p == nil || p.om == nil {
		return nil, false
	}
	return p.om.Get(key)
}

// Len returns the number of keys.
func (p *Payload) Len() int {
	if p == nil || p.om == nil {
		return 0
	}
	return p.om.Len()
}

// Keys returns all keys in insertion order.
func (p *Payload) Keys() []string {
	keys := make([]string, 0, p.Len())
	for key := range p.All() {
		keys = append(keys, key)
	}

	return keys
}

// All iterates over the entries in insertion order.
func (p *Payload) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if p == nil || p.om == nil {
			return
		}
		for pair := p.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the mapping with keys in insertion order.
func (p *Payload) MarshalJSON() ([]byte, error) {
	if p == nil || p.om == nil {
		return []byte("{}"), nil
	}
	return p.om.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, preserving its key order at every
// nesting depth. Numbers decode as json.Number so re-encoding reproduces
// the input digits exactly.
func (p *Payload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed decoding payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("failed decoding payload: not a JSON object")
	}

	dp, err := decodeObject(dec)
	if err != nil {
		return fmt.Errorf("failed decoding payload: %w", err)
	}
	*p = *dp

	return nil
}

func decodeObject(dec *json.Decoder) (*Payload, error) {
	p := NewPayload()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		p.Set(key, val)
	}

	// Consume the closing brace.
	_, err := dec.Token()

	return p, err
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	vals := []any{}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}

	// Consume the closing bracket.
	_, err := dec.Token()

	return vals, err
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected token %v", delim)
	}

	return tok, nil
}
