package byteconv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/numtext/numtext.go/conventions"
)

// defaultScale is the number of fractional zero digits the grouped format
// renders when the token carries no width suffix.
const defaultScale = 2

// Format renders the given value under a format token. Recognized tokens are
// "G"/"g" (plain decimal), "X"/"x" (hexadecimal, token case selects digit
// case, optional zero-pad width suffix) and "N"/"n" (grouped decimal with a
// fixed run of fractional zeros, width suffix overrides the default of 2).
// The empty token renders as "G". A nil conventions profile resolves to the
// process-wide snapshot.
func Format(value uint8, format string, conv *conventions.Conventions) (string, error) {
	verb, width, err := parseFormatToken(format)
	if err != nil {
		return "", err
	}

	switch verb {
	case 'X', 'x':
		digits := strconv.FormatUint(uint64(value), 16)
		if verb == 'X' {
			digits = strings.ToUpper(digits)
		}
		if pad := width - len(digits); pad > 0 {
			digits = strings.Repeat("0", pad) + digits
		}

		return digits, nil

	case 'N', 'n':
		if conv == nil {
			conv = conventions.Current()
		}
		scale := defaultScale
		if width >= 0 {
			scale = width
		}

		return formatGrouped(value, scale, conv), nil

	default: // 'G', 'g'
		return strconv.FormatUint(uint64(value), 10), nil
	}
}

// parseFormatToken splits a format token into its verb and optional width
// suffix. A missing suffix yields width -1.
func parseFormatToken(format string) (verb byte, width int, err error) {
	if format == "" {
		return 'G', -1, nil
	}

	verb = format[0]
	switch verb {
	case 'G', 'g', 'X', 'x', 'N', 'n':
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}

	width = -1
	if suffix := format[1:]; suffix != "" {
		// the source notation caps the width suffix at two digits
		if len(suffix) > 2 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
		}

		width = 0
		for i := 0; i < len(suffix); i++ {
			if suffix[i] < '0' || suffix[i] > '9' {
				return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
			}
			width = width*10 + int(suffix[i]-'0')
		}
	}

	return verb, width, nil
}

// formatGrouped renders the decimal digits in groups of three and appends a
// run of fractional zeros. Both insertions are purely textual.
func formatGrouped(value uint8, scale int, conv *conventions.Conventions) string {
	digits := strconv.FormatUint(uint64(value), 10)

	var builder strings.Builder
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			builder.WriteString(conv.GroupSeparator)
		}
		builder.WriteByte(digits[i])
	}

	if scale > 0 {
		builder.WriteString(conv.DecimalSeparator)
		builder.WriteString(strings.Repeat("0", scale))
	}

	return builder.String()
}
