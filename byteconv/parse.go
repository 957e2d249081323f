package byteconv

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/numtext/numtext.go/conventions"
	"github.com/numtext/numtext.go/numstyle"
)

// positiveSign is the literal plus token; it is not part of the conventions
// profile.
const positiveSign = "+"

// Parse converts the given text to an 8-bit unsigned integer under the given
// style bitset and conventions profile. A nil profile resolves to the
// process-wide snapshot. Failures are classified: ErrInvalidStyle before any
// text inspection, ErrSyntax for structural defects and ErrRange for
// well-formed numbers outside [0, 255].
func Parse(text string, style numstyle.Style, conv *conventions.Conventions) (uint8, error) {
	return parse(text, style, conv)
}

// ParseBytes is like Parse but reads from a byte slice. A nil slice fails
// with ErrNilInput.
func ParseBytes(text []byte, style numstyle.Style, conv *conventions.Conventions) (uint8, error) {
	if text == nil {
		return 0, ErrNilInput
	}

	return parse(string(text), style, conv)
}

// TryParse reports whether the text converts under the given style and
// conventions, returning the zero value on failure instead of an error. An
// invalid style bitset is a programming error of the caller and panics.
func TryParse(text string, style numstyle.Style, conv *conventions.Conventions) (uint8, bool) {
	if err := style.Validate(); err != nil {
		panic(err)
	}

	value, err := parse(text, style, conv)
	if err != nil {
		return 0, false
	}

	return value, true
}

func parse(text string, style numstyle.Style, conv *conventions.Conventions) (uint8, error) {
	if err := style.Validate(); err != nil {
		return 0, err
	}

	if conv == nil {
		conv = conventions.Current()
	}

	s := text
	if style.HasBits(numstyle.AllowLeadingWhite) {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
	}

	negative := false
	parenthesized := false
	switch {
	case style.HasBits(numstyle.AllowParentheses) && strings.HasPrefix(s, "("):
		negative = true
		parenthesized = true
		s = s[1:]
	case style.HasBits(numstyle.AllowLeadingSign) && conv.NegativeSign != "" && strings.HasPrefix(s, conv.NegativeSign):
		negative = true
		s = s[len(conv.NegativeSign):]
	case style.HasBits(numstyle.AllowLeadingSign) && strings.HasPrefix(s, positiveSign):
		s = s[len(positiveSign):]
	}

	if style.HasBits(numstyle.AllowCurrencySymbol) {
		s = strings.TrimPrefix(s, conv.CurrencySymbol)
	}

	var magnitude int64
	var digits int
	var overflowed bool

	if style.HasBits(numstyle.AllowHexSpecifier) {
		for len(s) > 0 {
			digit, ok := hexDigit(s[0])
			if !ok {
				break
			}

			digits++
			if !overflowed {
				magnitude = magnitude<<4 | int64(digit)
				overflowed = magnitude > math.MaxInt32
			}
			s = s[1:]
		}
	} else {
		s, magnitude, digits, overflowed = scanDecimal(s, style, conv)

		if style.HasBits(numstyle.AllowDecimalPoint) && digits > 0 && conv.DecimalSeparator != "" && strings.HasPrefix(s, conv.DecimalSeparator) {
			s = s[len(conv.DecimalSeparator):]
			for len(s) > 0 && s[0] == '0' {
				s = s[1:]
			}
			if len(s) > 0 && s[0] >= '1' && s[0] <= '9' {
				return 0, fmt.Errorf("%w: fractional digits must be zero", ErrSyntax)
			}
		}
	}

	if parenthesized {
		if !strings.HasPrefix(s, ")") {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		s = s[1:]
	}

	if style.HasBits(numstyle.AllowTrailingWhite) {
		s = strings.TrimRightFunc(s, unicode.IsSpace)
	}

	if digits == 0 {
		return 0, fmt.Errorf("%w: no digits", ErrSyntax)
	}

	if len(s) != 0 {
		return 0, fmt.Errorf("%w: unexpected trailing characters %q", ErrSyntax, s)
	}

	// two-stage range check: first against the wide intermediate domain,
	// then narrowing down to 8 bits
	if overflowed {
		return 0, fmt.Errorf("%w: magnitude exceeds the intermediate domain", ErrRange)
	}

	if magnitude > int64(MaxValue) {
		return 0, fmt.Errorf("%w: %d does not fit into 8 bits", ErrRange, magnitude)
	}

	if negative && magnitude != 0 {
		return 0, fmt.Errorf("%w: negative value", ErrRange)
	}

	return uint8(magnitude), nil
}

// scanDecimal consumes a run of decimal digits, tolerating group separators
// between digits when the style allows them. Separators are positional noise;
// their grouping width is never validated.
func scanDecimal(s string, style numstyle.Style, conv *conventions.Conventions) (rest string, magnitude int64, digits int, overflowed bool) {
	allowThousands := style.HasBits(numstyle.AllowThousands) && conv.GroupSeparator != ""

	for len(s) > 0 {
		switch {
		case s[0] >= '0' && s[0] <= '9':
			digits++
			if !overflowed {
				magnitude = magnitude*10 + int64(s[0]-'0')
				overflowed = magnitude > math.MaxInt32
			}
			s = s[1:]

		case allowThousands && digits > 0 && strings.HasPrefix(s, conv.GroupSeparator) && startsWithDigit(s[len(conv.GroupSeparator):]):
			s = s[len(conv.GroupSeparator):]

		default:
			return s, magnitude, digits, overflowed
		}
	}

	return s, magnitude, digits, overflowed
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
