package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"8.00", 800},
		{"8", 800},
		{"8.5", 850},
		{"0.01", 1},
		{"11.50", 1150},
		{"8.005", 801}, // rounds half-up beyond two digits
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := Parse("pas un prix")
	require.Error(t, err)
}

func TestStringAlwaysTwoDigits(t *testing.T) {
	require.Equal(t, "9.00", Cents(900).String())
	require.Equal(t, "0.50", Cents(50).String())
	require.Equal(t, "18.00", Cents(1800).String())
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Cents(950))
	require.NoError(t, err)
	require.Equal(t, "9.50", string(b))

	var c Cents
	require.NoError(t, json.Unmarshal([]byte("9.50"), &c))
	require.Equal(t, Cents(950), c)

	// quoted input also accepted
	require.NoError(t, json.Unmarshal([]byte(`"8.00"`), &c))
	require.Equal(t, Cents(800), c)
}

func TestNoFloatDrift(t *testing.T) {
	// 0.10 added ten times must be exactly 1.00
	var sum Cents
	dime, _ := Parse("0.10")
	for i := 0; i < 10; i++ {
		sum += dime
	}
	require.Equal(t, Cents(100), sum)
	require.Equal(t, "1.00", sum.String())
}

func TestMul(t *testing.T) {
	require.Equal(t, Cents(1800), Cents(900).Mul(2))
	require.Equal(t, Cents(0), Cents(900).Mul(0))
}
