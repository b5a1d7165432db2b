package resolver

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quotedNameRegex matches the fingerprint database's episode display names,
// which quote the show: `"Show Name" Episode Title`.
var quotedNameRegex = regexp.MustCompile(`^"([^"]*)" .*$`)

// titleYearRegex splits a parsed show name into its title and an optional
// trailing year suffix, e.g. `The Flash (2014)`.
var titleYearRegex = regexp.MustCompile(`^(.*?)(?: \((\d{4})\))?$`)

// fuzzRatio scores the similarity of two titles on a 0-100 scale. Titles are
// normalized first so accents and punctuation don't count against a match.
func fuzzRatio(a, b string) float64 {
	sim, err := edlib.StringsSimilarity(normalizeTitle(a), normalizeTitle(b), edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(sim) * 100
}

// normalizeTitle lowercases, strips accents and drops punctuation, keeping
// letters, digits and single spaces.
func normalizeTitle(title string) string {
	s := removeAccents(strings.ToLower(title))

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// unquoteDisplayName strips the fingerprint database's show quoting from an
// episode display name, returning the name unchanged when it isn't quoted.
func unquoteDisplayName(name string) string {
	if m := quotedNameRegex.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

// splitTitleYear separates an optional year suffix from a show name.
// `The Flash (2014)` yields ("The Flash", 2014); a name without a suffix
// yields year 0.
func splitTitleYear(name string) (string, int) {
	m := titleYearRegex.FindStringSubmatch(name)
	if m == nil || m[2] == "" {
		return name, 0
	}
	year, _ := strconv.Atoi(m[2])
	return m[1], year
}
