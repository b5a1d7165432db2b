// Package medianame parses media file names into episode and movie guesses.
package medianame

import (
	"regexp"
	"strconv"
	"strings"
)

// Episode is a TV episode guess extracted from a file name.
type Episode struct {
	Show     string
	Season   int // 0 when AbsoluteNumbering is set
	Episodes []int
	// AbsoluteNumbering is set when the name only carried a running episode
	// count with no season (anime-style releases, e.g. "Show - 112").
	AbsoluteNumbering bool
}

// Movie is a movie guess extracted from a file name.
type Movie struct {
	Title string
	Year  int // 0 when no year was found
}

// Parsed holds the independent episode and movie guesses for one file name.
// Both template families always run; either or both fields may be nil.
type Parsed struct {
	Episode *Episode
	Movie   *Movie
}

type seriesTemplate struct {
	re *regexp.Regexp
	// date-named episodes (show.2010.01.02) carry no usable numbering but
	// must still win over the looser concatenated-digit templates below
	// them, so a match stops the cascade without producing an episode.
	dateOnly bool
}

// Episode templates, most to least specific. First match wins. The list is
// derived from the tvnamer pattern set, reworked for RE2: no backreferences
// (repeated SxxEyy groups accept any season in the middle positions) and no
// lookaheads (trailing CRC groups are matched by the catch-all remainder).
var seriesTemplates = []seriesTemplate{
	// [group] Show - 01-02
	{re: regexp.MustCompile(`(?i)^\[(?P<group>.+?)\] ?(?P<seriesname>.*?) ?[-_] ?(?P<episodenumberstart>\d+)(?:[-_]\d+)*[-_](?P<episodenumberend>\d+)[^/]*$`)},

	// [group] Show - 01
	{re: regexp.MustCompile(`(?i)^\[(?P<group>.+?)\] ?(?P<seriesname>.*) ?[-_] ?(?P<episodenumber>\d+)[^/]*$`)},

	// foo s01e23 s01e24 s01e25
	{re: regexp.MustCompile(`(?i)^(?:(?P<seriesname>.+?)[ ._-])?s(?P<seasonnumber>[0-9]+)[.\- ]?e(?P<episodenumberstart>[0-9]+)(?:[.\- ]+s[0-9]+[.\- ]?e[0-9]+)*[.\- ]+s[0-9]+[.\- ]?e(?P<episodenumberend>[0-9]+)[^/]*$`)},

	// foo.s01e23e24
	{re: regexp.MustCompile(`(?i)^(?:(?P<seriesname>.+?)[ ._-])?s(?P<seasonnumber>[0-9]+)[.\- ]?e(?P<episodenumberstart>[0-9]+)(?:[.\- ]?e[0-9]+)*[.\- ]?e(?P<episodenumberend>[0-9]+)[^/]*$`)},

	// foo.1x23 1x24 1x25
	{re: regexp.MustCompile(`(?i)^(?:(?P<seriesname>.+?)[ ._-])?(?P<seasonnumber>[0-9]+)x(?P<episodenumberstart>[0-9]+)(?:[ ._-]+[0-9]+x[0-9]+)*[ ._-]+[0-9]+x(?P<episodenumberend>[0-9]+)[^/]*$`)},

	// foo.1x23x24
	{re: regexp.MustCompile(`(?i)^(?:(?P<seriesname>.+?)[ ._-])?(?P<seasonnumber>[0-9]+)x(?P<episodenumberstart>[0-9]+)(?:x[0-9]+)*x(?P<episodenumberend>[0-9]+)[^/]*$`)},

	// foo.s01e23-24 (trailing separator required so s01e01-720p is not a range)
	{re: regexp.MustCompile(`(?i)^(?:(?P<seriesname>.+?)[ ._-])?s(?P<seasonnumber>[0-9]+)[.\- ]?e(?P<episodenumberstart>[0-9]+)(?:-e?[0-9]+)*-e?(?P<episodenumberend>[0-9]+)[.\- ][^/]*$`)},

	// foo.1x23-24
	{re: regexp.MustCompile(`(?i)^(?:(?P<seriesname>.+?)[ ._-])?(?P<seasonnumber>[0-9]+)x(?P<episodenumberstart>[0-9]+)(?:[-+][0-9]+)*[-+](?P<episodenumberend>[0-9]+)(?:[.\-+ ].*|$)`)},

	// foo.[1x09-11]
	{re: regexp.MustCompile(`(?i)^(?P<seriesname>.+?)[ ._-]\[?(?P<seasonnumber>[0-9]+)x(?P<episodenumberstart>[0-9]+)(?:[-+] ?[0-9]+)*[-+](?P<episodenumberend>[0-9]+)\][^\\/]*$`)},

	// foo - [012]
	{re: regexp.MustCompile(`(?i)^(?:(?P<seriesname>.+?)[ ._-])?\[(?P<episodenumber>[0-9]+)\][^\\/]*$`)},

	// foo.s0101, foo.0201
	{re: regexp.MustCompile(`(?i)^(?P<seriesname>.+?)[ ._-]s(?P<seasonnumber>[0-9]{2})[.\- ]?(?P<episodenumber>[0-9]{2})[^0-9]*$`)},

	// foo.1x09
	{re: regexp.MustCompile(`(?i)^(?:(?P<seriesname>.+?)[ ._-])?\[?(?P<seasonnumber>[0-9]+)x(?P<episodenumber>[0-9]+)\]?[^\\/]*$`)},

	// foo.s01.e01, foo.s01_e01, "foo.s01 - e01"
	{re: regexp.MustCompile(`(?i)^(?:(?P<seriesname>.+?)[ ._-])?\[?s(?P<seasonnumber>[0-9]+) ?[._\- ]? ?e?(?P<episodenumber>[0-9]+)\]?[^\\/]*$`)},

	// foo.2010.01.02.etc
	{re: regexp.MustCompile(`(?i)^(?:(?P<seriesname>.+?)[ ._-])?(?P<year>\d{4})[ ._-](?P<month>\d{2})[ ._-](?P<day>\d{2})[^/]*$`), dateOnly: true},

	// foo - [01.09]
	{re: regexp.MustCompile(`(?i)^(?P<seriesname>.+?)[ ._-]?\[(?P<seasonnumber>[0-9]+?)\.(?P<episodenumber>[0-9]+?)\][ ._-]?[^\\/]*$`)},

	// Foo - S2 E 02
	{re: regexp.MustCompile(`(?i)^(?P<seriesname>.+?) ?[ ._-] ?s(?P<seasonnumber>[0-9]+)[.\- ]?e? ?(?P<episodenumber>[0-9]+)[^\\/]*$`)},

	// Show - Episode 9999 [S 12 - Ep 131]
	{re: regexp.MustCompile(`(?i)(?P<seriesname>.+) - episode \d+ \[s ?(?P<seasonnumber>\d+)(?: | - |-)(?:e|ep) ?(?P<episodenumber>\d+)\].*$`)},

	// show name 2 of 6
	{re: regexp.MustCompile(`(?i)^(?P<seriesname>.+?)[ ._-](?P<episodenumber>[0-9]+) ?of[ ._-]?\d+(?:[._ -]|$)[^\\/]*$`)},

	// Show.Name.Part.1.and.Part.2
	{re: regexp.MustCompile(`(?i)^(?P<seriesname>.+?)[ ._-](?:part|pt)?[._ -](?P<episodenumberstart>[0-9]+)(?:[ ._-](?:and|&|to)[ ._-](?:part|pt)?[ ._-][0-9]+)*[ ._-](?:and|&|to)[ ._-]?(?:part|pt)?[ ._-](?P<episodenumberend>[0-9]+)[._ -][^\\/]*$`)},

	// Show.Name.Part1
	{re: regexp.MustCompile(`(?i)^(?P<seriesname>.+?)[ ._-]part (?P<episodenumber>[0-9]+)[._ -][^\\/]*$`)},

	// show name Season 01 Episode 20
	{re: regexp.MustCompile(`(?i)^(?P<seriesname>.+?) ?season ?(?P<seasonnumber>[0-9]+) ?episode ?(?P<episodenumber>[0-9]+)[^\\/]*$`)},

	// foo.103
	{re: regexp.MustCompile(`(?i)^(?P<seriesname>.+)[ ._-](?P<seasonnumber>[0-9])(?P<episodenumber>[0-9]{2})[._ -][^\\/]*$`)},

	// foo.0103
	{re: regexp.MustCompile(`(?i)^(?P<seriesname>.+)[ ._-](?P<seasonnumber>[0-9]{2})(?P<episodenumber>[0-9]{2,3})[._ -][^\\/]*$`)},

	// show.name.e123
	{re: regexp.MustCompile(`(?i)^(?P<seriesname>.+?)[ ._-]e(?P<episodenumber>[0-9]+)[._ -][^\\/]*$`)},
}

// Movie templates: scene-tag/year pattern first, then the catch-all.
var movieTemplates = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:\(.*?\)|\[.*?\])?(?: - )? *?(?P<moviename>.*?)(?:dvdrip|xvid| cd[0-9]|dvdscr|brrip|divx|[{(\[]?(?P<year>[0-9]{4})).*$`),
	regexp.MustCompile(`(?i)^(?:\(.*?\)|\[.*?\])?(?: - )? *?(?P<moviename>.+?) *?(?:[\[(]?(?P<year>[0-9]{4})[\])]?.*)?(?:\.[a-zA-Z0-9]{2,4})?$`),
}

// Parse extracts episode and movie guesses from a file name. It never fails;
// a name matching neither family yields an empty Parsed.
func Parse(filename string) Parsed {
	return Parsed{
		Episode: parseEpisode(filename),
		Movie:   parseMovie(filename),
	}
}

func parseEpisode(filename string) *Episode {
	for _, tmpl := range seriesTemplates {
		m := tmpl.re.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		if tmpl.dateOnly {
			return nil
		}

		ep := &Episode{
			Show: cleanName(group(tmpl.re, m, "seriesname")),
		}

		if season := group(tmpl.re, m, "seasonnumber"); season != "" {
			ep.Season, _ = strconv.Atoi(season)
		} else {
			ep.AbsoluteNumbering = true
		}

		if start := group(tmpl.re, m, "episodenumberstart"); start != "" {
			s, _ := strconv.Atoi(start)
			e, _ := strconv.Atoi(group(tmpl.re, m, "episodenumberend"))
			ep.Episodes = expandRange(s, e)
		} else if num := group(tmpl.re, m, "episodenumber"); num != "" {
			n, _ := strconv.Atoi(num)
			ep.Episodes = []int{n}
		} else {
			return nil
		}

		return ep
	}
	return nil
}

func parseMovie(filename string) *Movie {
	for _, re := range movieTemplates {
		m := re.FindStringSubmatch(filename)
		if m == nil {
			continue
		}

		movie := &Movie{
			Title: cleanName(group(re, m, "moviename")),
		}
		if year := group(re, m, "year"); year != "" {
			movie.Year, _ = strconv.Atoi(year)
		}
		return movie
	}
	return nil
}

// group returns the named capture from a match, or "" when the group did not
// participate.
func group(re *regexp.Regexp, m []string, name string) string {
	idx := re.SubexpIndex(name)
	if idx < 0 || idx >= len(m) {
		return ""
	}
	return m[idx]
}

// expandRange returns the inclusive episode sequence between start and end,
// swapping first when start > end (treated as a typo, not an empty range).
func expandRange(start, end int) []int {
	if start > end {
		start, end = end, start
	}
	eps := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		eps = append(eps, i)
	}
	return eps
}

// cleanName normalizes a captured show or movie name: scene dots become
// spaces while dotted abbreviations (S.H.I.E.L.D.) survive, underscores
// become spaces, and separator characters are stripped from the edges.
func cleanName(name string) string {
	rs := []rune(name)

	// Drop any dot that is not part of a dotted-abbreviation run, i.e. not
	// followed by exactly one rune and then another dot or the end.
	pass1 := make([]rune, len(rs))
	for i, r := range rs {
		if r == '.' && !(i+1 < len(rs) && (i+2 == len(rs) || rs[i+2] == '.')) {
			pass1[i] = ' '
			continue
		}
		pass1[i] = r
	}

	// Drop any remaining dot preceded by two runes that are neither dots
	// nor spaces (Show.Name.2019 -> Show Name 2019).
	pass2 := make([]rune, len(pass1))
	for i, r := range pass1 {
		if r == '.' && i >= 2 && !dotOrSpace(pass1[i-1]) && !dotOrSpace(pass1[i-2]) {
			pass2[i] = ' '
			continue
		}
		pass2[i] = r
	}

	name = strings.ReplaceAll(string(pass2), "_", " ")
	return strings.Trim(name, "- ")
}

func dotOrSpace(r rune) bool {
	return r == '.' || r == ' '
}
