package payloads

import "net/http"

// Component is a small, extraction-friendly wrapper around the payload
// tool handlers, their configuration, and routing helpers.
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

// SpecHandler returns the operation-listing handler.
func (c *Component) SpecHandler() http.Handler {
	if c == nil {
		return SpecHandler()
	}
	return SpecHandlerWithOptions(c.opts)
}

// GenerateHandler returns the payload-generation handler.
func (c *Component) GenerateHandler() http.Handler {
	if c == nil {
		return GenerateHandler()
	}
	return GenerateHandlerWithOptions(c.opts)
}

// RegisterRoutes registers the component handlers under basePath.
func (c *Component) RegisterRoutes(mux Mux, basePath string) ([]string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
