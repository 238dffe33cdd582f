package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor accepts an SVG colour name or #rrggbb / #rrggbbaa
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	hexStr, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hexStr) != 6 && len(hexStr) != 8) {
		return nil, fmt.Errorf("unknown colour %q", s)
	}
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, fmt.Errorf("bad colour %q: %w", s, err)
	}
	c := color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}
