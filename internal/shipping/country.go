package shipping

import "strings"

var countryAliases = map[string]string{
	"PK":       "Pakistan",
	"PAK":      "Pakistan",
	"PAKISTAN": "Pakistan",
	"US":       "United States",
	"USA":      "United States",
	"UK":       "United Kingdom",
	"GB":       "United Kingdom",
	"AE":       "UAE",
	"UAE":      "UAE",
	"SA":       "Saudi Arabia",
	"KSA":      "Saudi Arabia",
}

// NormalizeCountry collapses known country codes to one canonical name.
// Unknown values are returned trimmed but otherwise untouched.
func NormalizeCountry(country string) string {
	country = strings.TrimSpace(country)
	if canonical, ok := countryAliases[strings.ToUpper(country)]; ok {
		return canonical
	}
	return country
}

func sameCountry(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
