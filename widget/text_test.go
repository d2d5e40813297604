package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result any
		exp    string
		expErr string
	}{
		{
			name:   "ok/string",
			result: "test message",
			exp:    `{"item":[{"text":"test message","type":0}]}`,
		},
		{
			name:   "ok/list",
			result: []string{"test1", "test2"},
			exp:    `{"item":[{"text":"test1","type":0},{"text":"test2","type":0}]}`,
		},
		{
			name:   "ok/typed_messages",
			result: []any{[]any{"test1", TextNone}, []any{"test2", TextInfo}, []any{"test3", TextWarn}},
			exp:    `{"item":[{"text":"test1","type":0},{"text":"test2","type":2},{"text":"test3","type":1}]}`,
		},
		{
			name:   "ok/nil_type_defaults",
			result: []any{[]any{"test1", nil}},
			exp:    `{"item":[{"text":"test1","type":0}]}`,
		},
		{
			name:   "err/empty_entry",
			result: []any{[]any{}},
			expErr: "text entries must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := Text.Normalize(tt.result)

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
