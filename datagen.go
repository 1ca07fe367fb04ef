// Package datagen orchestrates reproducible synthetic banking data
// generation: it resolves flat request parameters into a seeded run,
// executes the stages the requested resource needs, and assembles the
// response envelope. Each call builds its own RNG and ID counters, so
// concurrent requests never share state.
package datagen

import (
	"net/url"
	"time"

	"github.com/goliatone/go-datagen/pkg/generate"
	"github.com/goliatone/go-datagen/pkg/rng"
)

// CountRange echoes a resolved integer range in response metadata.
type CountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AmountRange echoes the resolved transaction amount range.
type AmountRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DateRange echoes the resolved transaction date window.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Meta echoes the resolved configuration and derived counts for one
// generation run.
type Meta struct {
	Seed         int64        `json:"seed"`
	Customers    int          `json:"customers"`
	Accounts     int          `json:"accounts,omitempty"`
	Transactions int          `json:"transactions,omitempty"`
	PerCustomer  *CountRange  `json:"perCustomer,omitempty"`
	PerAccount   *CountRange  `json:"perAccount,omitempty"`
	AmountRange  *AmountRange `json:"amountRange,omitempty"`
	DateRange    *DateRange   `json:"dateRange,omitempty"`
	Country      string       `json:"country"`
	State        string       `json:"state"`
	Currency     string       `json:"currency"`
}

// Result is a generation response envelope: run metadata plus the
// generated entities (a flat list for customers, nested lists for the
// cascading resources).
type Result struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data"`
}

// AccountsData nests the cascade output for the accounts resource.
type AccountsData struct {
	Customers []generate.Customer `json:"customers"`
	Accounts  []generate.Account  `json:"accounts"`
}

// TransactionsData nests the full cascade output.
type TransactionsData struct {
	Customers    []generate.Customer    `json:"customers"`
	Accounts     []generate.Account     `json:"accounts"`
	Transactions []generate.Transaction `json:"transactions"`
}

// Customers runs the first pipeline stage and envelopes the result.
func Customers(query url.Values, now time.Time) Result {
	cfg := generate.ResolveConfig(query, now)
	customers := generate.Customers(cfg)

	return Result{
		Meta: Meta{
			Seed:      cfg.Seed,
			Customers: len(customers),
			Country:   cfg.Territory.Label,
			State:     cfg.State.Name,
			Currency:  cfg.Currency,
		},
		Data: customers,
	}
}

// Accounts runs the customer and account stages.
func Accounts(query url.Values, now time.Time) Result {
	cfg := generate.ResolveConfig(query, now)
	customers := generate.Customers(cfg)
	accounts := generate.Accounts(cfg, customers, now)

	return Result{
		Meta: Meta{
			Seed:        cfg.Seed,
			Customers:   len(customers),
			Accounts:    len(accounts),
			PerCustomer: &CountRange{Min: cfg.MinAccounts, Max: cfg.MaxAccounts},
			Country:     cfg.Territory.Label,
			State:       cfg.State.Name,
			Currency:    cfg.Currency,
		},
		Data: AccountsData{Customers: customers, Accounts: accounts},
	}
}

// Transactions runs the full cascade.
func Transactions(query url.Values, now time.Time) Result {
	cfg := generate.ResolveConfig(query, now)
	customers := generate.Customers(cfg)
	accounts := generate.Accounts(cfg, customers, now)
	transactions := generate.Transactions(cfg, accounts)

	return Result{
		Meta: Meta{
			Seed:         cfg.Seed,
			Customers:    len(customers),
			Accounts:     len(accounts),
			Transactions: len(transactions),
			PerAccount:   &CountRange{Min: cfg.MinTransactions, Max: cfg.MaxTransactions},
			AmountRange:  &AmountRange{Min: cfg.MinAmount, Max: cfg.MaxAmount},
			DateRange: &DateRange{
				Start: rng.FormatISO(cfg.StartDate),
				End:   rng.FormatISO(cfg.EndDate),
			},
			Country:  cfg.Territory.Label,
			State:    cfg.State.Name,
			Currency: cfg.Currency,
		},
		Data: TransactionsData{
			Customers:    customers,
			Accounts:     accounts,
			Transactions: transactions,
		},
	}
}
