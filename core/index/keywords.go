// Package index derives the search-keyword string attached to each pattern
// in the published page. The string feeds the page's client-side filter via
// a data attribute, so it must be deterministic: identical inputs always
// produce byte-identical output.
package index

import (
	"regexp"
	"sort"
	"strings"
)

// wordPattern matches search-worthy tokens: a letter or underscore followed
// by letters, digits, or underscores.
var wordPattern = regexp.MustCompile(`\b[a-z_][a-z0-9_]*\b`)

// stopwords are common English function words excluded from the index.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "from": {}, "as": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "should": {}, "could": {}, "may": {},
	"might": {}, "can": {}, "using": {}, "use": {}, "uses": {}, "used": {},
}

// Keywords builds the search string for a pattern from its name and
// description: lowercase, tokenize, drop stopwords and tokens of length
// two or less, deduplicate, sort, and join with single spaces.
func Keywords(name, description string) string {
	text := strings.ToLower(name + " " + description)

	seen := make(map[string]struct{})
	var words []string
	for _, w := range wordPattern.FindAllString(text, -1) {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}

	sort.Strings(words)
	return strings.Join(words, " ")
}
