package bridge

import (
	"github.com/jimmyps/shadeui/pkg/echarts"
	"github.com/jimmyps/shadeui/pkg/theme"
)

// TokenResolver resolves a theme token against live computed styles. A
// resolver is consulted immediately before a document crosses the bridge;
// the compiler only ever assigns tokens.
type TokenResolver interface {
	ResolveToken(token theme.Token) (string, bool)
}

// StyleMap is a TokenResolver backed by a plain map. Hosts snapshot their
// computed styles into one; tests use it directly.
type StyleMap map[theme.Token]string

// ResolveToken implements TokenResolver.
func (m StyleMap) ResolveToken(token theme.Token) (string, bool) {
	value, ok := m[token]
	return value, ok
}

// ResolveTokens walks the delivered document and replaces residual theme
// tokens in every color-bearing field. Tokens the resolver cannot answer
// and literal color values are left untouched. A nil resolver is a no-op.
func ResolveTokens(doc *echarts.Option, resolver TokenResolver) {
	if doc == nil || resolver == nil {
		return
	}

	resolveAxis(doc.XAxis, resolver)
	resolveAxis(doc.YAxis, resolver)

	for _, s := range doc.Series {
		if s == nil {
			continue
		}
		if s.ItemStyle != nil {
			s.ItemStyle.Color = resolvePaint(s.ItemStyle.Color, resolver)
		}
		if s.LineStyle != nil {
			s.LineStyle.Color = resolvePaint(s.LineStyle.Color, resolver)
		}
		if s.AreaStyle != nil {
			s.AreaStyle.Color = resolvePaint(s.AreaStyle.Color, resolver)
		}
	}
}

func resolveAxis(axis *echarts.Axis, resolver TokenResolver) {
	if axis == nil || axis.SplitLine == nil || axis.SplitLine.LineStyle == nil {
		return
	}
	axis.SplitLine.LineStyle.Color = resolvePaint(axis.SplitLine.LineStyle.Color, resolver)
}

// resolvePaint resolves a single paint value: a token string is replaced by
// its resolved color, a gradient has each stop resolved in place.
func resolvePaint(color any, resolver TokenResolver) any {
	switch v := color.(type) {
	case string:
		return resolveString(v, resolver)
	case *echarts.LinearGradient:
		if v == nil {
			return v
		}
		for i := range v.ColorStops {
			v.ColorStops[i].Color = resolveString(v.ColorStops[i].Color, resolver)
		}
		return v
	default:
		return color
	}
}

func resolveString(s string, resolver TokenResolver) string {
	if !theme.IsToken(s) {
		return s
	}
	if resolved, ok := resolver.ResolveToken(theme.Token(s)); ok {
		return resolved
	}
	return s
}
