package booking

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// URL is a booking link that passed the host and path checks. It can be
// handed downstream without further validation.
type URL string

func (u URL) String() string { return string(u) }

// Outcome classifies the result of a scan.
type Outcome int

const (
	OutcomeFound        Outcome = iota
	OutcomeNoCandidates         // no URL-shaped token at all
	OutcomeRejected             // URL-shaped tokens existed, none qualified
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNoCandidates:
		return "no-candidates"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Rejection records why a candidate was discarded.
type Rejection struct {
	Candidate string
	Reason    string
}

// Result is the full outcome of Find.
type Result struct {
	URL        URL
	Outcome    Outcome
	Candidates []string
	Rejected   []Rejection
}

// Found reports whether a booking URL was selected.
func (r Result) Found() bool { return r.Outcome == OutcomeFound }

// tokenPattern matches a generic absolute http(s) URL up to the next
// separator or markup delimiter. Trailing prose punctuation is removed later.
var tokenPattern = regexp.MustCompile("(?i)https?://[^\\s\\p{Z}\\p{Cc}<>\"`]+")

// Extractor selects the first booking link from free-form text.
type Extractor struct {
	pattern Pattern
}

// NewExtractor returns an extractor for p. A zero Pattern means DefaultPattern.
func NewExtractor(p Pattern) *Extractor {
	return &Extractor{pattern: p.Normalized()}
}

// Pattern returns the normalized pattern the extractor filters on.
func (e *Extractor) Pattern() Pattern {
	return e.pattern
}

// Extract returns the first qualifying booking URL in text.
func (e *Extractor) Extract(text string) (URL, bool) {
	res := e.Find(text)
	return res.URL, res.Found()
}

// Valid is the cheap check used to enable a call to action. It has no side
// effects and agrees with Extract.
func (e *Extractor) Valid(text string) bool {
	_, ok := e.Extract(text)
	return ok
}

// Find scans text and reports the selected URL together with every
// candidate that was considered.
func (e *Extractor) Find(text string) Result {
	text = strings.TrimSpace(text)

	res := Result{Outcome: OutcomeNoCandidates}
	res.Candidates = Candidates(text)
	if len(res.Candidates) == 0 {
		return res
	}

	for _, c := range res.Candidates {
		u, err := url.Parse(c)
		if err != nil || u.Host == "" {
			res.Rejected = append(res.Rejected, Rejection{Candidate: c, Reason: ReasonUnparseable})
			continue
		}
		if reason, ok := e.pattern.Check(u); !ok {
			res.Rejected = append(res.Rejected, Rejection{Candidate: c, Reason: reason})
			continue
		}
		res.URL = URL(c)
		res.Outcome = OutcomeFound
		return res
	}

	res.Outcome = OutcomeRejected
	return res
}

// Candidates returns every URL-shaped token in text in source order, with
// trailing punctuation removed and duplicates dropped. For HTML input an
// anchor contributes its decoded href at the position of its start tag, in
// place of the raw tokens inside that tag.
func Candidates(text string) []string {
	type token struct {
		start int
		value string
	}

	var (
		tokens []token
		tags   []anchor
	)
	if looksLikeHTML(text) {
		for _, a := range anchors(text) {
			if loc := tokenPattern.FindStringIndex(a.href); loc != nil && loc[0] == 0 {
				tokens = append(tokens, token{start: a.start, value: a.href[:loc[1]]})
				tags = append(tags, a)
			}
		}
	}

	inTag := func(pos int) bool {
		for _, a := range tags {
			if pos >= a.start && pos < a.end {
				return true
			}
		}
		return false
	}
	for _, loc := range tokenPattern.FindAllStringIndex(text, -1) {
		if inTag(loc[0]) {
			continue
		}
		tokens = append(tokens, token{start: loc[0], value: text[loc[0]:loc[1]]})
	}
	sort.SliceStable(tokens, func(i, j int) bool { return tokens[i].start < tokens[j].start })

	var out []string
	seen := make(map[string]bool)
	for _, t := range tokens {
		c := TrimTrailing(t.value)
		if !tokenPattern.MatchString(c) || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Extract scans text with DefaultPattern.
func Extract(text string) (URL, bool) {
	return NewExtractor(DefaultPattern).Extract(text)
}

// TrimTrailing strips characters that prose tends to glue onto a link:
// sentence punctuation, closing quotes and brackets without an opening
// partner, and anything outside the URL character set.
func TrimTrailing(s string) string {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		switch {
		case r == ')':
			if strings.Count(s, "(") >= strings.Count(s, ")") {
				return s
			}
		case r == ']':
			if strings.Count(s, "[") >= strings.Count(s, "]") {
				return s
			}
		case strings.ContainsRune(".,;:!?'\"}>*", r):
		case isURLRune(r):
			return s
		}
		s = s[:len(s)-size]
	}
	return s
}

// isURLRune reports whether r may end a URL (RFC 3986 unreserved, reserved
// and percent characters, minus the punctuation handled by TrimTrailing).
// Non-ASCII letters and digits are kept so unencoded query values such as
// "ziel=Gießen" stay intact.
func isURLRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r >= utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
		return true
	}
	return strings.ContainsRune("-_~/#@$&+=%", r)
}
