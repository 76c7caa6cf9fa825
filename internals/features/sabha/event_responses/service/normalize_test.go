package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBoolArray(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  []bool
	}{
		{
			name:  "mixed bools and strings",
			input: []interface{}{true, "false", "true", "x"},
			want:  []bool{true, false, true, false},
		},
		{
			name:  "short input pads with false",
			input: []interface{}{true},
			want:  []bool{true, false, false, false},
		},
		{
			name:  "long input truncates",
			input: []interface{}{true, true, true, true, true, true},
			want:  []bool{true, true, true, true},
		},
		{
			name:  "non-array input",
			input: "nope",
			want:  []bool{false, false, false, false},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []bool{false, false, false, false},
		},
		{
			name:  "numbers are not truthy",
			input: []interface{}{float64(1), float64(0), true, false},
			want:  []bool{false, false, true, false},
		},
		{
			name:  "string conversion is case-sensitive",
			input: []interface{}{"True", "TRUE", "true", "false"},
			want:  []bool{false, false, true, false},
		},
		{
			name:  "empty array",
			input: []interface{}{},
			want:  []bool{false, false, false, false},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeBoolArray(tc.input, AnswerCount))
		})
	}
}

func TestNormalizeBoolArrayFromJSON(t *testing.T) {
	// Exercise the exact shape json.Unmarshal hands the controller.
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(`[true, "false", "true", null]`), &v))
	assert.Equal(t, []bool{true, false, true, false}, NormalizeBoolArray(v, AnswerCount))
}
