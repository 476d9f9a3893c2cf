package settings

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultColor is shown for companies with no stored color.
const DefaultColor = "blue"

// Palette maps the selectable company colors to their hex values.
var Palette = map[string]string{
	"blue":   "#3B82F6",
	"green":  "#22C55E",
	"red":    "#EF4444",
	"yellow": "#EAB308",
	"purple": "#A855F7",
	"orange": "#F97316",
	"teal":   "#14B8A6",
	"gray":   "#6B7280",
}

// ColorNames lists the palette in alphabetical order.
func ColorNames() []string {
	names := make([]string, 0, len(Palette))
	for name := range Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hex returns the hex value for color, or the default color's value.
func Hex(color string) string {
	if hex, ok := Palette[color]; ok {
		return hex
	}
	return Palette[DefaultColor]
}

func validateColor(color string) error {
	if _, ok := Palette[color]; !ok {
		return fmt.Errorf("unknown color %q (choose one of %s)", color, strings.Join(ColorNames(), ", "))
	}
	return nil
}
