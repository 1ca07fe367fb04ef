// Package territory provides the locale registry used by the data
// generators: a fixed set of country-level bundles, each pairing static
// address data (streets, states, cities) with the formatting rules for
// phone numbers and postal codes in that locale.
//
// The registry is read-only and process-wide. Formatters draw from the
// caller's rng.Source, so the registry itself holds no mutable state.
package territory

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-datagen/pkg/rng"
)

// State is a sub-territory region with its own city, postal, and
// area-code data.
type State struct {
	Key          string
	Name         string
	Cities       []string
	PostalPrefix string
	AreaCodes    []string
}

// FormatFunc renders a locale-specific value (phone number, postal
// code) for the given state, consuming draws from src.
type FormatFunc func(src *rng.Source, state State) string

// Territory bundles a country's address data with its formatters.
// Landline may be nil; Phone falls back to the mobile format then.
type Territory struct {
	Key         string
	Label       string
	Currency    string
	StreetNames []string
	States      []State

	Mobile     FormatFunc
	Landline   FormatFunc
	PostalCode FormatFunc
}

// Phone renders a landline number, falling back to the mobile format
// for territories without a landline rule.
func (t Territory) Phone(src *rng.Source, state State) string {
	if t.Landline != nil {
		return t.Landline(src, state)
	}
	return t.Mobile(src, state)
}

const defaultKey = "australia"

var separators = regexp.MustCompile(`[\s_]+`)

// NormalizeKey canonicalizes a free-text territory or state identifier:
// trimmed, lowercased, whitespace and underscores collapsed to hyphens.
func NormalizeKey(value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	return separators.ReplaceAllString(trimmed, "-")
}

var aliases = map[string]string{
	"au":             "australia",
	"aus":            "australia",
	"australia":      "australia",
	"in":             "india",
	"ind":            "india",
	"india":          "india",
	"uk":             "united-kingdom",
	"united-kingdom": "united-kingdom",
	"gb":             "united-kingdom",
	"great-britain":  "united-kingdom",
	"united-states":  "united-states",
	"usa":            "united-states",
	"us":             "united-states",
	"united-state":   "united-states",
}

// Resolve maps a free-text country identifier to a registry entry.
// Unknown or empty values fall back to the default territory.
func Resolve(country string) Territory {
	normalized := NormalizeKey(country)
	if normalized == "" {
		normalized = defaultKey
	}
	key, ok := aliases[normalized]
	if !ok {
		key = normalized
	}
	if t, ok := registry[key]; ok {
		return t
	}
	return registry[defaultKey]
}

// ResolveState finds the state whose key matches stateParam exactly
// after normalization. When there is no match (or no stateParam) it
// uniformly picks a state, consuming exactly one draw from src.
func ResolveState(t Territory, stateParam string, src *rng.Source) State {
	normalized := NormalizeKey(stateParam)
	for _, state := range t.States {
		if state.Key == normalized {
			return state
		}
	}
	return rng.Pick(src, t.States)
}

// Default returns the fallback territory used for unknown countries.
func Default() Territory {
	return registry[defaultKey]
}

// Keys lists the registered territory keys in registration order.
func Keys() []string {
	return append([]string{}, registryOrder...)
}
