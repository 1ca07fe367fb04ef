package bankdata

import "net/http"

// Component is a small, extraction-friendly wrapper around the
// generation handlers, their configuration, and routing helpers.
type Component struct {
	opts Options
}

// New constructs a new component with default options plus overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns a net/http handler for one generation resource.
func (c *Component) Handler(resource Resource) http.Handler {
	if c == nil {
		return Handler(resource)
	}
	return HandlerWithOptions(resource, c.opts)
}

// RegisterRoutes registers the component handlers under basePath.
func (c *Component) RegisterRoutes(mux Mux, basePath string) ([]string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
