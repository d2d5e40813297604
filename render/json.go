package render

import (
	"encoding/json"
	"fmt"
)

// NameJSON is the object notation renderer's name.
const NameJSON = "json"

// JSON renders payload trees in object notation, e.g.
// {"item":[{"value":10}]}. Mapping keys keep their insertion order.
var JSON Renderer = jsonRenderer{}

type jsonRenderer struct{}

func (jsonRenderer) Name() string { return NameJSON }

func (jsonRenderer) ContentType() string { return "application/json" }

func (jsonRenderer) Render(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed rendering JSON payload: %w", err)
	}

	return data, nil
}
