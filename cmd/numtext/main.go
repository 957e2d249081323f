// numtext reads 8-bit unsigned integers from its arguments and prints them
// under the requested format token and conventions profile.
package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/numtext/numtext.go/byteconv"
	"github.com/numtext/numtext.go/conventions"
	"github.com/numtext/numtext.go/numstyle"
)

var (
	formatToken = flag.StringP("format", "f", "G", "output format token (G, X, x or N, optional width suffix)")
	styleName   = flag.StringP("style", "s", "integer", "parse style (none, integer, number, hex, currency, any)")
	profilePath = flag.StringP("conventions", "c", "", "path to a conventions profile (.json, .toml, .yaml)")
)

var styles = map[string]numstyle.Style{
	"none":     numstyle.None,
	"integer":  numstyle.Integer,
	"number":   numstyle.Number,
	"hex":      numstyle.HexNumber,
	"currency": numstyle.Currency,
	"any":      numstyle.Any,
}

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Sugar()

	if *profilePath != "" {
		profile, err := conventions.Load(*profilePath)
		if err != nil {
			log.Fatalf("loading conventions profile: %s", err)
		}
		if err := conventions.SetCurrent(profile); err != nil {
			log.Fatalf("installing conventions profile: %s", err)
		}
	}

	style, ok := styles[strings.ToLower(*styleName)]
	if !ok {
		log.Fatalf("unknown parse style %q", *styleName)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	for _, arg := range flag.Args() {
		value, err := byteconv.Parse(arg, style, nil)
		if err != nil {
			log.Fatalf("parsing %q: %s", arg, err)
		}

		rendered, err := byteconv.Format(value, *formatToken, nil)
		if err != nil {
			log.Fatalf("formatting %d: %s", value, err)
		}

		fmt.Println(rendered)
	}
}
