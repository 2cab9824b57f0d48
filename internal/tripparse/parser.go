// Package tripparse turns a free-text trip query ("3 days in Melbourne")
// into a structured city + duration result.
//
// Parsing is rule-based: an ordered list of city rules and an ordered list of
// duration rules, each evaluated in sequence with first-match-wins semantics.
// The rules are independent — no shared state, no backtracking — so each one
// is testable on its own and the fall-through order stays auditable.
//
// Parse is a pure function. It never returns an error: a query the rules
// cannot handle yields an empty City and a nil DurationDays.
package tripparse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Result is the structured outcome of parsing one query.
// An empty City means "no city found" — a defined failure state the caller
// must branch on, not an error. A nil DurationDays means "unspecified",
// which is distinct from zero.
type Result struct {
	City         string `json:"city"`
	DurationDays *int   `json:"duration_days,omitempty"`
}

// query bundles the original-case and lower-cased forms of the input so each
// rule can pick the casing it matches against.
type query struct {
	orig  string
	lower string
}

// cityRule is one step in the city extraction sequence.
// extract returns the city and true on a hit; false means fall through to
// the next rule.
type cityRule struct {
	name    string
	extract func(q query) (string, bool)
}

// durationRule is one step in the duration extraction sequence.
type durationRule struct {
	name    string
	extract func(lower string) (int, bool)
}

var (
	// One whole-word pattern per known city, in list order.
	// Word boundaries keep "Rome" from matching inside "Romero".
	knownCityPatterns = compileCityPatterns()

	// Contextual city patterns run against the original-case query so the
	// capitalized-phrase capture groups work.
	cueBeforeCity = regexp.MustCompile(`\b(?:in|to|visiting|going to|traveling to)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	cityBeforeCue = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:for|from|starting)`)

	// Month abbreviations and function words that the contextual patterns
	// capture by accident ("going to May", "The for").
	cityStoplist = map[string]struct{}{
		"nov": {}, "dec": {}, "jan": {}, "feb": {}, "mar": {}, "apr": {},
		"may": {}, "jun": {}, "jul": {}, "aug": {}, "sep": {}, "oct": {},
		"the": {}, "and": {}, "for": {}, "with": {}, "from": {},
	}

	// Strips everything that is not a word character or whitespace. Spelled
	// with Unicode classes rather than \w, which Go restricts to ASCII and
	// would eat accented letters ("Málaga").
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

	// Numeric duration patterns, tried in order against the lower-cased query.
	numericDayPatterns = []*regexp.Regexp{
		regexp.MustCompile(`for\s+(\d+)\s+days?`),
		regexp.MustCompile(`(\d+)\s+days?`),
		regexp.MustCompile(`(\d+)-day`),
		regexp.MustCompile(`(\d+)\s+day\s+trip`),
	}

	oneWeek  = regexp.MustCompile(`(?:a|one|1)\s+week`)
	oneMonth = regexp.MustCompile(`(?:a|one|1)\s+month`)
)

// cityRules is evaluated in order; the first rule to return true wins.
var cityRules = []cityRule{
	{name: "known-city", extract: matchKnownCity},
	{name: "contextual-pattern", extract: matchContextualCity},
	{name: "capitalized-scan", extract: scanCapitalizedWord},
}

// durationRules is evaluated in order; the first rule to return true wins.
// "weekend" is deliberately checked before "week" so a weekend trip is never
// counted as a 7-day week.
var durationRules = []durationRule{
	{name: "numeric-days", extract: matchNumericDays},
	{name: "weekend", extract: matchWeekend},
	{name: "week", extract: matchWeek},
	{name: "month", extract: matchMonth},
}

// Parse extracts a city and a duration from a natural-language trip query.
// Deterministic for a given input; safe for concurrent use.
func Parse(input string) Result {
	q := query{orig: input, lower: strings.ToLower(input)}

	var res Result
	for _, rule := range cityRules {
		if city, ok := rule.extract(q); ok {
			res.City = city
			break
		}
	}
	for _, rule := range durationRules {
		if days, ok := rule.extract(q.lower); ok {
			res.DurationDays = &days
			break
		}
	}
	return res
}

// SuggestionLimit derives how many activity suggestions to request for a
// parsed duration: two per day when the duration is known, else a flat 10.
func SuggestionLimit(durationDays *int) int {
	if durationDays != nil {
		return *durationDays * 2
	}
	return 10
}

func compileCityPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(knownCities))
	for i, city := range knownCities {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(city)) + `\b`)
	}
	return patterns
}

// matchKnownCity returns the canonical spelling of the first reference-list
// city that appears as a whole word in the query, case-insensitively.
// "First" means first in list order, not first in the text.
func matchKnownCity(q query) (string, bool) {
	for i, pattern := range knownCityPatterns {
		if pattern.MatchString(q.lower) {
			return knownCities[i], true
		}
	}
	return "", false
}

// matchContextualCity captures a capitalized word or two-word phrase adjacent
// to a travel cue: "in Melbourne", "visiting Buenos Aires", "Paris for".
//
// Only the first pattern that matches is considered. If its capture is on the
// stoplist the whole rule fails — the second pattern is not retried. That
// no-retry behavior is a documented contract of this parser; changing it
// would alter results for queries like "to May from Berlin".
func matchContextualCity(q query) (string, bool) {
	for _, pattern := range []*regexp.Regexp{cueBeforeCity, cityBeforeCue} {
		m := pattern.FindStringSubmatch(q.orig)
		if m == nil {
			continue
		}
		candidate := m[1]
		if _, stopped := cityStoplist[strings.ToLower(candidate)]; stopped {
			return "", false
		}
		return candidate, true
	}
	return "", false
}

// scanCapitalizedWord is the last-resort heuristic: walk the whitespace-split
// tokens, strip punctuation, and take the first capitalized token that either
// matches a known city (length > 2) or is long enough (length > 3) to be a
// plausible city name. Arbitrary capitalized words can be misidentified here;
// that is an accepted limitation of the heuristic.
func scanCapitalizedWord(q query) (string, bool) {
	for _, word := range strings.Fields(q.orig) {
		clean := punctuation.ReplaceAllString(word, "")
		runes := []rune(clean)
		if len(runes) <= 2 || !unicode.IsUpper(runes[0]) {
			continue
		}
		lower := strings.ToLower(clean)
		for _, city := range knownCities {
			if lower == strings.ToLower(city) {
				return city, true
			}
		}
		if len(runes) > 3 {
			return clean, true
		}
	}
	return "", false
}

// matchNumericDays tries the numeric day patterns in order. A number outside
// 1..365 does not abort the rule — it is treated as if that pattern had not
// matched, and the next pattern is tried.
func matchNumericDays(lower string) (int, bool) {
	for _, pattern := range numericDayPatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		days, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if days >= 1 && days <= 365 {
			return days, true
		}
	}
	return 0, false
}

// matchWeekend maps any mention of "weekend" to 2 days.
func matchWeekend(lower string) (int, bool) {
	if strings.Contains(lower, "weekend") {
		return 2, true
	}
	return 0, false
}

// matchWeek maps "a week" / "one week" / "1 week" to 7 days.
// A bare "week" with no quantifier yields nothing. The weekend rule has
// already claimed "weekend" queries by the time this runs.
func matchWeek(lower string) (int, bool) {
	if !strings.Contains(lower, "week") || strings.Contains(lower, "weekend") {
		return 0, false
	}
	if oneWeek.MatchString(lower) {
		return 7, true
	}
	return 0, false
}

// matchMonth maps "a month" / "one month" / "1 month" to 30 days.
func matchMonth(lower string) (int, bool) {
	if !strings.Contains(lower, "month") {
		return 0, false
	}
	if oneMonth.MatchString(lower) {
		return 30, true
	}
	return 0, false
}
