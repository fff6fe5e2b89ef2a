package model_test

import (
	"encoding/json"
	"testing"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestValue_Text(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		value    model.Value
		expected string
	}{
		{name: "integer", value: model.Int(42), expected: "42"},
		{name: "fraction", value: model.Number(2.5), expected: "2.5"},
		{name: "negative", value: model.Number(-3), expected: "-3"},
		{name: "large integer has no exponent", value: model.Number(12345678901), expected: "12345678901"},
		{name: "string", value: model.String("Hello"), expected: "Hello"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, tc.value.Text())
		})
	}
}

func TestValue_Compare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		a, b     model.Value
		expected int
	}{
		{name: "numbers numerically", a: model.Int(9), b: model.Int(10), expected: -1},
		{name: "equal numbers", a: model.Int(3), b: model.Number(3), expected: 0},
		{name: "strings lexicographically", a: model.String("9"), b: model.String("10"), expected: 1},
		{name: "upper case sorts before lower", a: model.String("B"), b: model.String("a"), expected: -1},
		{name: "mixed kinds by text", a: model.Int(2), b: model.String("10"), expected: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, tc.a.Compare(tc.b))
		})
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(map[string]model.Value{"id": model.Int(7), "title": model.String(`say "hi"`)})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":7,"title":"say \"hi\""}`, string(out))
}
