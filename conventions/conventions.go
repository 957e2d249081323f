// Package conventions holds the locale-dependent tokens that numeric
// formatting and parsing operate with. A Conventions value is an immutable
// snapshot; the process-wide current snapshot can be swapped atomically but
// is never mutated in place.
package conventions

import (
	"errors"
	"fmt"
)

// ErrInvalidConventions gets returned when a conventions profile carries unusable tokens.
var ErrInvalidConventions = errors.New("invalid conventions profile")

// Conventions bundles the sign, separator and currency tokens of a numeric notation.
// All tokens are matched ordinally, without case folding.
type Conventions struct {
	// NegativeSign prefixes negative numbers.
	NegativeSign string `koanf:"negative_sign"`
	// DecimalSeparator separates the integral from the fractional digits.
	DecimalSeparator string `koanf:"decimal_separator"`
	// GroupSeparator separates digit groups in the integral part.
	GroupSeparator string `koanf:"group_separator"`
	// CurrencySymbol gets recognized in currency-style parsing.
	CurrencySymbol string `koanf:"currency_symbol"`
}

// Default returns the invariant conventions profile.
func Default() *Conventions {
	return &Conventions{
		NegativeSign:     "-",
		DecimalSeparator: ".",
		GroupSeparator:   ",",
		CurrencySymbol:   "$",
	}
}

// Validate checks that every token is usable for parsing.
func (c *Conventions) Validate() error {
	if c.NegativeSign == "" || c.DecimalSeparator == "" || c.GroupSeparator == "" || c.CurrencySymbol == "" {
		return fmt.Errorf("%w: tokens must not be empty", ErrInvalidConventions)
	}

	if c.DecimalSeparator == c.GroupSeparator {
		return fmt.Errorf("%w: decimal and group separators must differ", ErrInvalidConventions)
	}

	return nil
}
