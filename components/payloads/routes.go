package payloads

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

// RegisterRoutes registers the spec and generate endpoints under
// basePath on mux, returning the mounted patterns.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions registers handlers using a pre-built
// Options value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("payloads: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	specPattern := mountPath(basePath, opts.SpecPath)
	generatePattern := mountPath(basePath, opts.GeneratePath)

	mux.Handle(specPattern, SpecHandlerWithOptions(opts))
	mux.Handle(generatePattern, GenerateHandlerWithOptions(opts))

	return []string{specPattern, generatePattern}, nil
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
