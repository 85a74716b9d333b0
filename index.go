package langswap

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// BuildIndex scans the document once for text nodes carrying language
// markup and records an IndexedNode for each. The walk is depth-first
// pre-order, so the index follows reading order. Text nodes without
// markup are skipped and never touched again; subsequent calls are
// no-ops (the page does not support re-scanning).
func (e *Engine) BuildIndex() {
	if e.indexed {
		return
	}
	e.indexed = true

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if IgnoredTags[strings.ToLower(n.Data)] {
				return
			}
			for _, attr := range n.Attr {
				if attr.Key == SkipAttr {
					return
				}
			}
		}

		if n.Type == html.TextNode && HasMarkup(n.Data) {
			e.indexTextNode(n)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	e.doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})
}

// indexTextNode parses one text node's markup and records it,
// synthesizing the default-language entry if the author left it out.
func (e *Engine) indexTextNode(n *html.Node) {
	dict := ParseMarkup(n.Data)
	if len(dict) == 0 {
		return
	}

	codes := tagCodes(n.Data)
	if len(codes) > len(dict) {
		// Likely an authoring error: the later occurrence won.
		e.logger.Debug("duplicate language tag in text node", "text", n.Data)
	}

	if _, ok := dict[e.defaultLang]; !ok {
		// Copy the first-authored entry into the default slot so the
		// fallback chain always terminates in real text.
		first := codes[0]
		dict[e.defaultLang] = dict[first]
		e.logger.Warn("text node missing default language entry",
			"default", e.defaultLang, "copied_from", first, "text", n.Data)
	}

	e.index = append(e.index, IndexedNode{Node: n, Dict: dict})
}
