package markup

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/jolanger/attrline"
)

// Fragment is the result of parsing a markup fragment: the plain text and
// the attribute spans the tags described, with codepoint offsets.
type Fragment struct {
	Text  string
	Spans []attrline.Span
}

// ParseFragment rebuilds text and spans from a markup fragment.
// <b> and <strong> map to Bold, <i> and <em> to Italic; unknown elements
// contribute their text content only.
func ParseFragment(input io.Reader) (Fragment, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return Fragment{}, err
	}
	c := &collector{}
	for _, n := range nodes {
		c.walk(n)
	}
	return Fragment{Text: c.text.String(), Spans: c.spans}, nil
}

// ParseString parses a markup fragment given as a string.
func ParseString(s string) (Fragment, error) {
	return ParseFragment(strings.NewReader(s))
}

type collector struct {
	text  strings.Builder
	off   int // codepoint offset
	spans []attrline.Span
}

func (c *collector) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.text.WriteString(n.Data)
		c.off += utf8.RuneCountInString(n.Data)
		return
	case html.ElementNode:
		if kind, styled := kindForElement(n.Data); styled {
			start := c.off
			c.walkChildren(n)
			c.spans = append(c.spans, attrline.Span{
				Kind:  kind,
				Start: start,
				End:   attrline.Bounded(c.off),
			})
			return
		}
	}
	c.walkChildren(n)
}

func (c *collector) walkChildren(n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walk(child)
	}
}

func kindForElement(name string) (attrline.Kind, bool) {
	switch name {
	case "b", "strong":
		return attrline.Bold, true
	case "i", "em":
		return attrline.Italic, true
	}
	return 0, false
}
