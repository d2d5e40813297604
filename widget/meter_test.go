package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result any
		exp    string
		expErr string
	}{
		{
			name:   "ok/scalars",
			result: []any{2, 1, 3},
			exp:    `{"item":2,"max":{"value":3},"min":{"value":1}}`,
		},
		{
			name:   "ok/bound_texts",
			result: []any{2, []any{1, "min"}, []any{3, "max"}},
			exp:    `{"item":2,"max":{"value":3,"text":"max"},"min":{"value":1,"text":"min"}}`,
		},
		{
			name:   "err/scalar_result",
			result: 2,
			expErr: "meter expects (value, min, max)",
		},
		{
			name:   "err/wrong_arity",
			result: []any{2, 1},
			expErr: "got 2 elements",
		},
		{
			name:   "err/empty_bound",
			result: []any{2, []any{}, 3},
			expErr: "meter min must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := Meter.Normalize(tt.result)

			if tt.expErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidResult)
				assert.Contains(t, err.Error(), tt.expErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.exp, mustJSON(t, out))
			}
		})
	}
}
