package payloads

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultMaxDocumentBytes = int64(5 << 20)

type Options struct {
	SpecPath     string
	GeneratePath string

	Logger *zap.Logger

	// HTTPClient fetches specification documents by URL.
	HTTPClient *http.Client
	// MaxDocumentBytes caps the size of a fetched or pasted document.
	MaxDocumentBytes int64

	// Now supplies the wall clock for default seeds and for date and
	// date-time string formats in generated payloads.
	Now func() time.Time
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		SpecPath:         "/spec",
		GeneratePath:     "/generate",
		Logger:           zap.NewNop(),
		HTTPClient:       &http.Client{Timeout: 15 * time.Second},
		MaxDocumentBytes: defaultMaxDocumentBytes,
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
	if opts.SpecPath == "" {
		opts.SpecPath = "/spec"
	}
	if opts.GeneratePath == "" {
		opts.GeneratePath = "/generate"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if opts.MaxDocumentBytes <= 0 {
		opts.MaxDocumentBytes = defaultMaxDocumentBytes
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HTTPClient = client
	}
}

func WithMaxDocumentBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxDocumentBytes = limit
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
