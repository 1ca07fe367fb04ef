package bankdata

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// GuardFunc can reject a request before any generation happens.
type GuardFunc func(r *http.Request) error

type Options struct {
	CustomersPath    string
	AccountsPath     string
	TransactionsPath string
	HealthPath       string

	Guard  GuardFunc
	Logger *zap.Logger

	// Now supplies the wall clock used for time-defaulted parameters
	// (seed, date ranges, account opening window).
	Now func() time.Time
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		CustomersPath:    "/customers",
		AccountsPath:     "/accounts",
		TransactionsPath: "/transactions",
		HealthPath:       "/health",
		Logger:           zap.NewNop(),
		Now:              time.Now,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.CustomersPath == "" {
		opts.CustomersPath = "/customers"
	}
	if opts.AccountsPath == "" {
		opts.AccountsPath = "/accounts"
	}
	if opts.TransactionsPath == "" {
		opts.TransactionsPath = "/transactions"
	}
	if opts.HealthPath == "" {
		opts.HealthPath = "/health"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithClock(now func() time.Time) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Now = now
	}
}
