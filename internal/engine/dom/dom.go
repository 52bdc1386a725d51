// Package dom provides read-only helpers over golang.org/x/net/html trees
// plus a data-driven prioritized matcher for locating profile fields in
// unstable, undocumented markup.
package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the value of an attribute on a node, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasClass checks if a node's class attribute contains the given class name.
func HasClass(n *html.Node, className string) bool {
	return strings.Contains(Attr(n, "class"), className)
}

// Text recursively extracts all text from a node.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(Text(c))
	}
	return sb.String()
}

// CleanText returns the node's text with whitespace runs collapsed and trimmed.
func CleanText(n *html.Node) string {
	return strings.Join(strings.Fields(Text(n)), " ")
}

// FindByClass finds the first descendant element whose class contains className.
func FindByClass(n *html.Node, className string) *html.Node {
	if n.Type == html.ElementNode && HasClass(n, className) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByClass(c, className); found != nil {
			return found
		}
	}
	return nil
}

// FindByTag finds all descendant elements with the given tag name.
func FindByTag(n *html.Node, tag string) []*html.Node {
	var results []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		results = append(results, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		results = append(results, FindByTag(c, tag)...)
	}
	return results
}

// Walk visits every element node in depth-first order. Returning false from
// the visitor stops the walk.
func Walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n.Type == html.ElementNode {
		if !visit(n) {
			return false
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !Walk(c, visit) {
			return false
		}
	}
	return true
}

// headingTags are elements treated as section headings when locating
// collection containers by their localized title text.
var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true,
}

// FindSectionByHeading locates the nearest ancestor container of a heading
// whose text contains any of the given localized names (case-insensitive).
// LinkedIn renders each profile section as a sibling of its heading, so the
// returned node is the heading's enclosing <section> (or its parent when no
// section element wraps it).
func FindSectionByHeading(root *html.Node, names []string) *html.Node {
	var found *html.Node
	Walk(root, func(n *html.Node) bool {
		if !headingTags[n.Data] && !HasClass(n, "pvs-header__title") {
			return true
		}
		text := strings.ToLower(CleanText(n))
		if text == "" || len(text) > 80 {
			return true
		}
		for _, name := range names {
			if strings.Contains(text, strings.ToLower(name)) {
				found = sectionAncestor(n)
				return false
			}
		}
		return true
	})
	return found
}

// sectionAncestor climbs from a heading to its enclosing section container.
func sectionAncestor(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && (p.Data == "section" || HasClass(p, "artdeco-card")) {
			return p
		}
	}
	if n.Parent != nil {
		return n.Parent
	}
	return n
}

// ListItems returns the list-item-like children under a section container:
// <li> elements, or elements carrying LinkedIn's entity classes when the
// section renders without semantic lists.
func ListItems(section *html.Node) []*html.Node {
	items := FindByTag(section, "li")
	if len(items) > 0 {
		return items
	}
	var entities []*html.Node
	Walk(section, func(n *html.Node) bool {
		if HasClass(n, "pvs-entity") || HasClass(n, "artdeco-list__item") {
			entities = append(entities, n)
		}
		return true
	})
	return entities
}
