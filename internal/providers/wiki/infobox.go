package wiki

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/inbucket/html2text"
	"golang.org/x/net/html"
)

// ErrNoInfobox means the page rendered fine but has no infobox block
// to scrape.
var ErrNoInfobox = errors.New("page has no infobox")

// FirstInfoboxText locates the first element carrying an "infobox"
// class in the page HTML and flattens that subtree to plain text.
func FirstInfoboxText(pageHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("parse page html: %w", err)
	}

	box := findInfobox(doc)
	if box == nil {
		return "", ErrNoInfobox
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, box); err != nil {
		return "", fmt.Errorf("render infobox: %w", err)
	}

	text, err := html2text.FromString(buf.String(), html2text.Options{OmitLinks: true})
	if err != nil {
		return "", fmt.Errorf("flatten infobox: %w", err)
	}
	return text, nil
}

// findInfobox walks the tree depth-first and returns the first element
// whose class list contains an "infobox" token (Wikipedia renders them
// as e.g. class="infobox vcard").
func findInfobox(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, "infobox") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findInfobox(c); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, token := range strings.Fields(attr.Val) {
			if token == class {
				return true
			}
		}
	}
	return false
}
