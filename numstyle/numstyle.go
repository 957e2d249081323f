// Package numstyle defines the set of leniencies a numeric parser may apply
// when reading a number from text.
package numstyle

import (
	"errors"
	"fmt"
)

// Style is a bitset of independently toggleable parsing leniencies.
type Style uint16

const (
	// AllowLeadingWhite tolerates whitespace before the number.
	AllowLeadingWhite Style = 1 << iota
	// AllowTrailingWhite tolerates whitespace after the number.
	AllowTrailingWhite
	// AllowLeadingSign tolerates a leading negative or positive sign token.
	AllowLeadingSign
	// AllowParentheses reads a parenthesized number as negative.
	AllowParentheses
	// AllowDecimalPoint tolerates a zero-valued fractional part.
	AllowDecimalPoint
	// AllowThousands tolerates group separators between digits.
	AllowThousands
	// AllowCurrencySymbol tolerates a currency symbol before the digits.
	AllowCurrencySymbol
	// AllowHexSpecifier reads the digits in base 16 instead of base 10.
	AllowHexSpecifier
)

const (
	// None disables every leniency.
	None Style = 0
	// Integer is the default style for integer parsing.
	Integer = AllowLeadingWhite | AllowTrailingWhite | AllowLeadingSign
	// Number additionally tolerates group separators and a fractional part.
	Number = Integer | AllowThousands | AllowDecimalPoint
	// HexNumber reads hexadecimal digits surrounded by optional whitespace.
	HexNumber = AllowLeadingWhite | AllowTrailingWhite | AllowHexSpecifier
	// Currency tolerates every decimal notation element including the currency symbol.
	Currency = Integer | AllowParentheses | AllowThousands | AllowDecimalPoint | AllowCurrencySymbol
	// Any enables every leniency except the hexadecimal specifier.
	Any = Integer | AllowParentheses | AllowThousands | AllowDecimalPoint | AllowCurrencySymbol
)

// styleMask covers all defined flags.
const styleMask = AllowHexSpecifier<<1 - 1

// ErrInvalidStyle gets returned when a style bitset combines flags that cannot be used together.
var ErrInvalidStyle = errors.New("invalid number style")

// SetBits sets the bits in the given style.
func (s Style) SetBits(bits Style) Style {
	return s | bits
}

// ClearBits clears the bits in the given style.
func (s Style) ClearBits(bits Style) Style {
	return s & ^bits
}

// HasBits checks whether any of the given bits are set.
func (s Style) HasBits(bits Style) bool {
	return s&bits > 0
}

// Validate checks the style bitset for undefined bits and forbidden flag combinations.
// The hexadecimal specifier tolerates the two whitespace flags and nothing else.
func (s Style) Validate() error {
	if undefined := s & ^styleMask; undefined != 0 {
		return fmt.Errorf("%w: undefined style bits %#04x", ErrInvalidStyle, uint16(undefined))
	}

	if s.HasBits(AllowHexSpecifier) && s.ClearBits(AllowLeadingWhite|AllowTrailingWhite|AllowHexSpecifier) != None {
		return fmt.Errorf("%w: the hex specifier can only be combined with whitespace flags", ErrInvalidStyle)
	}

	return nil
}
