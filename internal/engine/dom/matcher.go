package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Matcher is one prioritized lookup rule, kept as plain data so field specs
// are a table, not code. Zero-value fields are wildcards.
type Matcher struct {
	Tag      string // element name, e.g. "h1"
	Class    string // class attribute substring
	Attr     string // attribute that must be present
	AttrVal  string // required attribute value substring (with Attr)
	TextAttr string // attribute to read instead of text content, e.g. "src"

	// Filter rejects an otherwise-matching element. Used for
	// placeholder/ghost-content detection. Nil accepts everything.
	Filter func(n *html.Node, value string) bool
}

// FieldSpec is a priority-ordered matcher list for one profile field.
// Earlier matchers represent higher-confidence, version-specific markup;
// later ones are looser, more generic fallbacks.
type FieldSpec struct {
	Name     string
	Matchers []Matcher
}

// matches reports whether n satisfies m's structural constraints.
func (m Matcher) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if m.Tag != "" && n.Data != m.Tag {
		return false
	}
	if m.Class != "" && !HasClass(n, m.Class) {
		return false
	}
	if m.Attr != "" {
		v := Attr(n, m.Attr)
		if v == "" {
			return false
		}
		if m.AttrVal != "" && !strings.Contains(v, m.AttrVal) {
			return false
		}
	}
	return true
}

// value extracts the matched value: trimmed text content, or the TextAttr
// attribute when set.
func (m Matcher) value(n *html.Node) string {
	if m.TextAttr != "" {
		return strings.TrimSpace(Attr(n, m.TextAttr))
	}
	return CleanText(n)
}

// FindBestMatch evaluates the spec's matchers in order and returns the first
// element whose extracted value is non-empty and passes the matcher's filter.
// Returns nil and "" when nothing matches — absence is a normal outcome.
func FindBestMatch(root *html.Node, spec FieldSpec) (*html.Node, string) {
	for _, m := range spec.Matchers {
		var hit *html.Node
		var val string
		Walk(root, func(n *html.Node) bool {
			if !m.matches(n) {
				return true
			}
			v := m.value(n)
			if v == "" {
				return true
			}
			if m.Filter != nil && !m.Filter(n, v) {
				return true
			}
			hit, val = n, v
			return false
		})
		if hit != nil {
			return hit, val
		}
	}
	return nil, ""
}

// FirstValue is FindBestMatch for callers that only need the text.
func FirstValue(root *html.Node, spec FieldSpec) string {
	_, v := FindBestMatch(root, spec)
	return v
}
