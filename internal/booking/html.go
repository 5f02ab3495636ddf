package booking

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// anchorTag matches the opening of an anchor start tag up to its href
// attribute. Quoted attribute values are skipped as a whole.
var anchorTag = regexp.MustCompile(`(?i)<a\s(?:[^>"']|"[^"]*"|'[^']*')*?href\s*=`)

// anchor is an anchor start tag located in the source text.
type anchor struct {
	start, end int // byte span of the start tag
	href       string
}

// looksLikeHTML reports whether text carries at least one anchor element,
// as in mail bodies copied from a web client.
func looksLikeHTML(text string) bool {
	return anchorTag.MatchString(text)
}

// anchors returns every anchor start tag of text with a non-empty href, in
// source order. The href is entity-decoded.
func anchors(text string) []anchor {
	var out []anchor
	for _, loc := range anchorTag.FindAllStringIndex(text, -1) {
		end := tagEnd(text, loc[1])
		href, ok := anchorHref(text[loc[0]:end])
		if !ok {
			continue
		}
		out = append(out, anchor{start: loc[0], end: end, href: href})
	}
	return out
}

// tagEnd returns the offset just past the '>' that closes a tag whose
// attributes continue at from. Quoted attribute values may contain '>'.
// An unterminated tag runs to the end of text.
func tagEnd(text string, from int) int {
	var quote byte
	for i := from; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i + 1
		}
	}
	return len(text)
}

// anchorHref parses a single start tag and returns its href attribute.
func anchorHref(tag string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tag))
	if err != nil {
		return "", false
	}
	href, ok := doc.Find("a[href]").First().Attr("href")
	href = strings.TrimSpace(href)
	return href, ok && href != ""
}
