package byteconv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numtext/numtext.go/conventions"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    uint8
		format   string
		expected string
	}{
		{"zero", 0, "G", "0"},
		{"max", 255, "G", "255"},
		{"lowercase general", 255, "g", "255"},
		{"empty token", 5, "", "5"},
		{"general ignores width", 7, "G5", "7"},

		{"hex upper", 255, "X", "FF"},
		{"hex lower", 255, "x", "ff"},
		{"hex zero", 0, "X", "0"},
		{"hex padded", 255, "X4", "00FF"},
		{"hex padded lower", 10, "x2", "0a"},
		{"hex width smaller than digits", 255, "x1", "ff"},

		{"grouped default scale", 255, "N", "255.00"},
		{"grouped lowercase", 255, "n", "255.00"},
		{"grouped no fraction", 255, "N0", "255"},
		{"grouped wide fraction", 1, "N3", "1.000"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rendered, err := Format(test.value, test.format, nil)
			require.NoError(t, err)
			require.Equal(t, test.expected, rendered)
		})
	}
}

func TestFormatInvalidToken(t *testing.T) {
	for _, format := range []string{"Q", "Gx", "X4x", "N123", "x999", "G "} {
		t.Run(format, func(t *testing.T) {
			_, err := Format(1, format, nil)
			require.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestFormatCustomConventions(t *testing.T) {
	conv := &conventions.Conventions{
		NegativeSign:     "-",
		DecimalSeparator: ",",
		GroupSeparator:   ".",
		CurrencySymbol:   "$",
	}

	rendered, err := Format(255, "N", conv)
	require.NoError(t, err)
	require.Equal(t, "255,00", rendered)
}

func TestFormatUsesCurrentSnapshot(t *testing.T) {
	defer func() {
		require.NoError(t, conventions.SetCurrent(conventions.Default()))
	}()

	profile := conventions.Default()
	profile.DecimalSeparator = ";"
	require.NoError(t, conventions.SetCurrent(profile))

	rendered, err := Format(9, "N1", nil)
	require.NoError(t, err)
	require.Equal(t, "9;0", rendered)
}

var benchmarkRendered string

func BenchmarkFormat(b *testing.B) {
	conv := conventions.Default()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rendered, _ := Format(255, "N", conv)
		benchmarkRendered = rendered
	}
}
