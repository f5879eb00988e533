package unb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	testcases := []struct {
		name     string
		body     string
		expected Amount
	}{
		{"bare integer", `500`, Amount{Value: 500}},
		{"negative integer", `-200`, Amount{Value: -200}},
		{"quoted integer", `"12345"`, Amount{Value: 12345}},
		{"infinity", `"Infinity"`, Amount{Infinite: true}},
		{"negative infinity", `"-Infinity"`, Amount{Infinite: true, Value: -1}},
		{"float notation", `1.5e3`, Amount{Value: 1500}},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tc.body), &a))
			require.Equal(t, tc.expected, a)
		})
	}
}

func TestAmountUnmarshalNull(t *testing.T) {
	var payload struct {
		Stock Amount `json:"stock"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"stock":null}`), &payload))
	require.Equal(t, Amount{}, payload.Stock)
}

func TestAmountUnmarshalRejectsGarbage(t *testing.T) {
	var a Amount
	require.Error(t, json.Unmarshal([]byte(`"lots"`), &a))
}

func TestAmountMarshal(t *testing.T) {
	testcases := []struct {
		name     string
		amount   Amount
		expected string
	}{
		{"integer", Amount{Value: 500}, `500`},
		{"negative integer", Amount{Value: -200}, `-200`},
		{"infinity", Amount{Infinite: true}, `"Infinity"`},
		{"negative infinity", Amount{Infinite: true, Value: -1}, `"-Infinity"`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.amount)
			require.NoError(t, err)
			require.Equal(t, tc.expected, string(b))
		})
	}
}

func TestAmountRoundTrip(t *testing.T) {
	for _, a := range []Amount{{Value: 0}, {Value: 7707}, {Value: -40}, {Infinite: true}, {Infinite: true, Value: -1}} {
		b, err := json.Marshal(a)
		require.NoError(t, err)

		var back Amount
		require.NoError(t, json.Unmarshal(b, &back))
		require.Equal(t, a.Infinite, back.Infinite)
		require.Equal(t, a.String(), back.String())
	}
}

func TestAmountString(t *testing.T) {
	require.Equal(t, "42", Amount{Value: 42}.String())
	require.Equal(t, "Infinity", Amount{Infinite: true}.String())
	require.Equal(t, "-Infinity", Amount{Infinite: true, Value: -1}.String())
}

func TestAmountHelpers(t *testing.T) {
	require.Equal(t, &Amount{Value: 400}, AmountOf(400))
	require.Equal(t, &Amount{Infinite: true}, Unlimited())
}
