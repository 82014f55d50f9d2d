// Package theme defines the symbolic color tokens charts are compiled
// against. Tokens are assigned by the option compiler and resolved against
// live computed styles by the renderer bridge at apply time; the compiler
// itself never resolves them.
package theme

import "strings"

// Token is a symbolic color reference such as "chart-1". A token is not a
// paint value until the bridge resolves it.
type Token string

// The chart series palette. Series without an explicit color cycle through
// these five tokens in declaration order.
const (
	Chart1 Token = "chart-1"
	Chart2 Token = "chart-2"
	Chart3 Token = "chart-3"
	Chart4 Token = "chart-4"
	Chart5 Token = "chart-5"
)

// ChartPalette lists the palette tokens in cycling order.
var ChartPalette = [...]Token{Chart1, Chart2, Chart3, Chart4, Chart5}

// PaletteColor returns the palette token for a zero-based series index,
// wrapping around for the sixth series onward.
func PaletteColor(index int) Token {
	if index < 0 {
		index = 0
	}
	return ChartPalette[index%len(ChartPalette)]
}

// Var returns the CSS custom property form of the token, e.g.
// "var(--chart-1)". Only the bridge should need this; compiled documents
// carry the bare token.
func (t Token) Var() string {
	return "var(--" + string(t) + ")"
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return string(t)
}

// IsToken reports whether s names a theme token rather than a literal
// paint value. Literal values (hex strings, rgb()/rgba() expressions,
// named colors with spaces) are passed through untouched by the bridge.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "#") || strings.Contains(s, "(") {
		return false
	}
	return strings.HasPrefix(s, "chart-") || strings.HasPrefix(s, "--") || knownTokens[Token(s)]
}

var knownTokens = map[Token]bool{
	Chart1: true,
	Chart2: true,
	Chart3: true,
	Chart4: true,
	Chart5: true,
}
