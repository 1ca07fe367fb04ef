// Package generate builds reproducible synthetic banking records:
// customers, their accounts, and account transactions. A run resolves a
// Config once from flat request parameters, then executes the cascading
// stages in order, drawing every random value from the run's own
// rng.Source so identical seed plus parameters yields identical output.
package generate

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-datagen/pkg/rng"
	"github.com/goliatone/go-datagen/pkg/territory"
)

// DefaultEmailDomain is used when no valid domain survives parsing.
const DefaultEmailDomain = "example.com"

// Config is one run's fully-resolved generation parameters. Every
// field has a documented default; resolution never fails.
type Config struct {
	Seed   int64
	Source *rng.Source

	Territory territory.Territory
	State     territory.State

	Customers       int
	MinAccounts     int
	MaxAccounts     int
	MinTransactions int
	MaxTransactions int

	Currency  string
	MinAmount float64
	MaxAmount float64

	StartDate time.Time
	EndDate   time.Time

	EmailDomains []string
}

// ResolveConfig parses flat string parameters into a Config, seeding a
// fresh rng.Source. Malformed or missing values fall back to their
// defaults; max bounds below their min are clamped up, never inverted.
//
// The state-resolution draw happens here, before any counts are read,
// so it occupies a fixed position in the draw sequence.
func ResolveConfig(query url.Values, now time.Time) Config {
	seed := parseCount(query.Get("seed"), now.UnixMilli())
	src := rng.New(uint32(seed))

	terr := territory.Resolve(query.Get("country"))
	state := territory.ResolveState(terr, query.Get("state"), src)

	customers := int(parseCount(query.Get("customers"), 10))
	minAccounts := int(parseCount(query.Get("minAccounts"), 1))
	maxAccounts := maxInt(minAccounts, int(parseCount(query.Get("maxAccounts"), 3)))
	minTransactions := int(parseCount(query.Get("minTransactions"), 3))
	maxTransactions := maxInt(minTransactions, int(parseCount(query.Get("maxTransactions"), 8)))

	currency := query.Get("currency")
	if currency == "" {
		currency = terr.Currency
	}

	minAmount := parseFloat(query.Get("minAmount"), 10)
	maxAmount := math.Max(minAmount, parseFloat(query.Get("maxAmount"), 500))

	endDate := parseDate(query.Get("endDate"), now)
	startDate := parseDate(query.Get("startDate"), endDate.AddDate(0, -1, 0))

	return Config{
		Seed:            seed,
		Source:          src,
		Territory:       terr,
		State:           state,
		Customers:       customers,
		MinAccounts:     minAccounts,
		MaxAccounts:     maxAccounts,
		MinTransactions: minTransactions,
		MaxTransactions: maxTransactions,
		Currency:        currency,
		MinAmount:       minAmount,
		MaxAmount:       maxAmount,
		StartDate:       startDate,
		EndDate:         endDate,
		EmailDomains:    ParseEmailDomains(query.Get("emailDomains")),
	}
}

// parseCount parses a positive integer, flooring fractional input.
// Zero, negative, or unparseable values fall back.
func parseCount(value string, fallback int64) int64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsInf(n, 0) || n <= 0 {
		return fallback
	}
	return int64(math.Floor(n))
}

func parseFloat(value string, fallback float64) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(value string, fallback time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return fallback
}

var domainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`)

// ParseEmailDomains parses a comma-separated domain allowlist:
// case-folded, trimmed, deduplicated in first-seen order, entries that
// fail domain syntax dropped. An empty result yields the default.
func ParseEmailDomains(value string) []string {
	var domains []string
	seen := map[string]bool{}
	for _, entry := range strings.Split(value, ",") {
		domain := strings.ToLower(strings.TrimSpace(entry))
		if domain == "" || seen[domain] || !domainPattern.MatchString(domain) {
			continue
		}
		seen[domain] = true
		domains = append(domains, domain)
	}
	if len(domains) == 0 {
		return []string{DefaultEmailDomain}
	}
	return domains
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
