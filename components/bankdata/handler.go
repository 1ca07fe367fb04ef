package bankdata

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	datagen "github.com/goliatone/go-datagen"
	"github.com/goliatone/go-datagen/internal/observe"
)

// HTTPError lets guards attach a status code to a rejection.
type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Resource identifies one of the generation endpoints.
type Resource string

const (
	ResourceCustomers    Resource = "customers"
	ResourceAccounts     Resource = "accounts"
	ResourceTransactions Resource = "transactions"
)

func (r Resource) build(query url.Values, now time.Time) datagen.Result {
	switch r {
	case ResourceAccounts:
		return datagen.Accounts(query, now)
	case ResourceTransactions:
		return datagen.Transactions(query, now)
	default:
		return datagen.Customers(query, now)
	}
}

// Handler builds a handler for one generation resource with default
// options plus any overrides.
func Handler(resource Resource, fns ...OptionFn) http.Handler {
	return HandlerWithOptions(resource, NewOptions(fns...))
}

// HandlerWithOptions builds a handler for one generation resource from
// a pre-constructed Options value.
func HandlerWithOptions(resource Resource, opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	route := "/" + string(resource)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		started := time.Now()
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
			observe.ObserveRequest(route, http.StatusMethodNotAllowed, time.Since(started))
			return
		}
		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				code := writeGuardError(w, err)
				observe.ObserveRequest(route, code, time.Since(started))
				return
			}
		}

		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		result := resource.build(r.URL.Query(), opts.Now())
		elapsed := time.Since(started)

		writeHeaders(w)
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			writeBody(w, result)
		}

		observe.ObserveRequest(route, http.StatusOK, elapsed)
		opts.Logger.Info("generated dataset",
			zap.String("request_id", requestID),
			zap.String("resource", string(resource)),
			zap.Int64("seed", result.Meta.Seed),
			zap.Int("customers", result.Meta.Customers),
			zap.Int("accounts", result.Meta.Accounts),
			zap.Int("transactions", result.Meta.Transactions),
			zap.Duration("elapsed", elapsed),
		)
	})
}

// HealthHandler reports liveness.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeHeaders(w)
		w.WriteHeader(http.StatusOK)
		if r != nil && r.Method == http.MethodHead {
			return
		}
		writeBody(w, map[string]string{"status": "ok"})
	})
}

// NotFoundHandler renders the JSON 404 body used for unknown paths.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
}

func writeHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

func writeBody(w http.ResponseWriter, value any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	enc.SetIndent("", "  ")
	_ = enc.Encode(value)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeHeaders(w)
	w.WriteHeader(code)
	writeBody(w, map[string]string{"error": message})
}

// writeGuardError renders a guard rejection and returns the status
// code it wrote.
func writeGuardError(w http.ResponseWriter, err error) int {
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		if c := httpErr.StatusCode(); c > 0 {
			code = c
		}
	}
	message := http.StatusText(code)
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	writeError(w, code, message)
	return code
}
