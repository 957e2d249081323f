package numstyle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleBits(t *testing.T) {
	style := None.SetBits(AllowLeadingWhite | AllowLeadingSign)

	require.True(t, style.HasBits(AllowLeadingWhite))
	require.True(t, style.HasBits(AllowLeadingSign))
	require.False(t, style.HasBits(AllowTrailingWhite))

	style = style.ClearBits(AllowLeadingSign)
	require.False(t, style.HasBits(AllowLeadingSign))
	require.Equal(t, AllowLeadingWhite, style)
}

func TestComposites(t *testing.T) {
	require.Equal(t, AllowLeadingWhite|AllowTrailingWhite|AllowLeadingSign, Integer)
	require.Equal(t, AllowLeadingWhite|AllowTrailingWhite|AllowHexSpecifier, HexNumber)
	require.True(t, Currency.HasBits(AllowCurrencySymbol))
	require.False(t, Any.HasBits(AllowHexSpecifier))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		valid bool
	}{
		{"none", None, true},
		{"integer", Integer, true},
		{"hex number", HexNumber, true},
		{"bare hex specifier", AllowHexSpecifier, true},
		{"currency", Currency, true},
		{"any", Any, true},
		{"hex with parentheses", HexNumber | AllowParentheses, false},
		{"hex with sign", AllowHexSpecifier | AllowLeadingSign, false},
		{"hex with thousands", AllowHexSpecifier | AllowThousands, false},
		{"hex with decimal point", AllowHexSpecifier | AllowDecimalPoint, false},
		{"hex with currency symbol", AllowHexSpecifier | AllowCurrencySymbol, false},
		{"undefined bits", Style(1 << 12), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.style.Validate()
			if test.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidStyle)
			}
		})
	}
}
