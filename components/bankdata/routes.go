package bankdata

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register net/http handlers.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// RegisterRoutes registers the three generation resources and the
// health endpoint under basePath on mux, returning the mounted
// patterns in registration order.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions registers handlers using a pre-built
// Options value. Callers are expected to pass an Options produced by
// NewOptions (or equivalent) so defaults apply.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("bankdata: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	mounts := []struct {
		path    string
		handler http.Handler
	}{
		{opts.CustomersPath, HandlerWithOptions(ResourceCustomers, opts)},
		{opts.AccountsPath, HandlerWithOptions(ResourceAccounts, opts)},
		{opts.TransactionsPath, HandlerWithOptions(ResourceTransactions, opts)},
		{opts.HealthPath, HealthHandler()},
	}

	patterns := make([]string, 0, len(mounts))
	for _, mount := range mounts {
		pattern := mountPath(basePath, mount.path)
		mux.Handle(pattern, mount.handler)
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
