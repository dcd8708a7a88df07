package templates

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// minContrastRatio is the WCAG AA threshold for normal text
const minContrastRatio = 4.5

// ContrastRatio computes the WCAG 2.1 contrast ratio between two hex colors.
// Returns an error for colors that cannot be parsed.
func ContrastRatio(colorA, colorB string) (float64, error) {
	lumA, err := relativeLuminance(colorA)
	if err != nil {
		return 0, err
	}
	lumB, err := relativeLuminance(colorB)
	if err != nil {
		return 0, err
	}
	lighter, darker := lumA, lumB
	if darker > lighter {
		lighter, darker = darker, lighter
	}
	return (lighter + 0.05) / (darker + 0.05), nil
}

// relativeLuminance computes WCAG relative luminance for a hex color
func relativeLuminance(hex string) (float64, error) {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		return 0, err
	}
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b), nil
}

// linearize converts an 8-bit sRGB channel to its linear value
func linearize(channel uint8) float64 {
	c := float64(channel) / 255.0
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// parseHexColor accepts #rgb and #rrggbb forms
func parseHexColor(hex string) (r, g, b uint8, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
		// Already expanded.
	default:
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return uint8(value >> 16), uint8(value >> 8), uint8(value), nil
}
