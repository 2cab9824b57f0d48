package tripparse

// knownCities is the static reference list of destination cities.
// It is read-only after package init and shared by all Parse calls.
//
// Order matters: rule 1 returns the first list entry that matches as a whole
// word, so a query naming several known cities resolves in list order, not
// text order. That ordering is part of the parser's contract.
var knownCities = []string{
	// Australia
	"Melbourne", "Sydney", "Brisbane", "Perth", "Adelaide", "Darwin",
	"Canberra", "Gold Coast", "Cairns", "Hobart", "Newcastle", "Wollongong",
	// Asia
	"Tokyo", "Osaka", "Kyoto", "Seoul", "Bangkok", "Singapore",
	"Hong Kong", "Shanghai", "Beijing", "Taipei", "Manila", "Jakarta",
	// Europe
	"London", "Paris", "Berlin", "Rome", "Barcelona", "Amsterdam",
	"Madrid", "Vienna", "Prague", "Budapest", "Athens", "Lisbon",
	// Americas
	"New York", "Los Angeles", "San Francisco", "Chicago", "Miami", "Boston",
	"Toronto", "Vancouver", "Mexico City", "Buenos Aires", "Rio de Janeiro",
	// Others
	"Dubai", "Cairo", "Cape Town", "Auckland", "Wellington",
}

// Cities returns a copy of the known-city reference list in match order.
// Callers get a copy so the package-level list stays immutable.
func Cities() []string {
	out := make([]string, len(knownCities))
	copy(out, knownCities)
	return out
}
