// Package colorspec parses the color strings accepted on the command line and
// in configuration files.
package colorspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/tau/pkg/polar"
)

var (
	// ErrSyntax is returned for input that is not a color expression.
	ErrSyntax = errors.New("invalid color syntax")
	// ErrChannelRange is returned when a channel lies outside [0,255].
	ErrChannelRange = errors.New("color channel out of range")
	// ErrUnknownName is returned for an unrecognised color name or function.
	ErrUnknownName = errors.New("unknown color name")
)

var named = map[string]polar.Color{
	"black":       polar.Opaque(0, 0, 0),
	"white":       polar.Opaque(255, 255, 255),
	"red":         polar.Opaque(255, 0, 0),
	"green":       polar.Opaque(0, 128, 0),
	"lime":        polar.Opaque(0, 255, 0),
	"blue":        polar.Opaque(0, 0, 255),
	"yellow":      polar.Opaque(255, 255, 0),
	"cyan":        polar.Opaque(0, 255, 255),
	"magenta":     polar.Opaque(255, 0, 255),
	"gray":        polar.Opaque(128, 128, 128),
	"grey":        polar.Opaque(128, 128, 128),
	"orange":      polar.Opaque(255, 165, 0),
	"purple":      polar.Opaque(128, 0, 128),
	"transparent": polar.RGBA(0, 0, 0, 0),
}

// Parse converts a color string to a Color. Colors given without alpha are
// opaque.
func Parse(s string) (polar.Color, error) {
	expr, err := colorParser.ParseString("", s)
	if err != nil {
		return polar.Color{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}
	if expr.Hex == "" && expr.Name == "" {
		return polar.Color{}, fmt.Errorf("%w: empty color", ErrSyntax)
	}
	switch {
	case expr.Hex != "":
		return parseHex(expr.Hex)
	case expr.Call:
		return parseCall(strings.ToLower(expr.Name), expr.Args)
	default:
		c, ok := named[strings.ToLower(expr.Name)]
		if !ok {
			return polar.Color{}, fmt.Errorf("%w: %q", ErrUnknownName, expr.Name)
		}
		return c, nil
	}
}

// MustParse is Parse for color literals known to be valid.
func MustParse(s string) polar.Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseList parses every entry of specs, stopping at the first error.
func ParseList(specs []string) ([]polar.Color, error) {
	colors := make([]polar.Color, 0, len(specs))
	for _, s := range specs {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func parseHex(lit string) (polar.Color, error) {
	digits := strings.TrimPrefix(lit, "#")
	var short bool
	switch len(digits) {
	case 3, 4:
		short = true
	case 6, 8:
	default:
		return polar.Color{}, fmt.Errorf("%w: %q needs 3, 4, 6 or 8 hex digits", ErrSyntax, lit)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return polar.Color{}, fmt.Errorf("%w: %q: %v", ErrSyntax, lit, err)
	}

	var ch [4]uint8
	ch[3] = 255
	n := len(digits)
	if short {
		for i := 0; i < n; i++ {
			nib := uint8(v>>(4*(n-1-i))) & 0xf
			ch[i] = nib<<4 | nib
		}
	} else {
		for i := 0; i < n/2; i++ {
			ch[i] = uint8(v >> (8 * (n/2 - 1 - i)))
		}
	}
	return polar.RGBA(ch[0], ch[1], ch[2], ch[3]), nil
}

func parseCall(name string, args []int) (polar.Color, error) {
	want := 0
	switch name {
	case "rgb":
		want = 3
	case "rgba":
		want = 4
	default:
		return polar.Color{}, fmt.Errorf("%w: function %q", ErrUnknownName, name)
	}
	if len(args) != want {
		return polar.Color{}, fmt.Errorf("%w: %s() takes %d channels, got %d", ErrSyntax, name, want, len(args))
	}

	ch := [4]uint8{3: 255}
	for i, v := range args {
		if v < 0 || v > 255 {
			return polar.Color{}, fmt.Errorf("%w: %s() channel %d is %d", ErrChannelRange, name, i, v)
		}
		ch[i] = uint8(v)
	}
	return polar.RGBA(ch[0], ch[1], ch[2], ch[3]), nil
}
