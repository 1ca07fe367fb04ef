// Package parser turns raw OpenAPI 3 / Swagger 2 documents into the
// operation list and request-body schemas the payload sampler works
// on. Documents are kept as raw maps so $ref pointers stay intact for
// the sampler's own resolution; kin-openapi is used to syntax-check
// OpenAPI 3 payloads before they are accepted.
package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Dialect identifies the specification flavour of a parsed document.
type Dialect string

const (
	DialectOpenAPI3 Dialect = "oas3"
	DialectSwagger2 Dialect = "oas2"
)

// User-facing parse failures. These are surfaced verbatim by the
// payload endpoints and the CLI.
var (
	ErrNotAnObject      = errors.New("document must be a JSON or YAML object")
	ErrUnsupported      = errors.New("unsupported document: expected an openapi or swagger field")
	ErrNoOperations     = errors.New("no operations with request bodies found")
	ErrNoRequestBody    = errors.New("no request body schema found for this operation")
	ErrUnknownOperation = errors.New("unknown operation")
)

// Document is a parsed specification: the raw root node plus its
// detected dialect.
type Document struct {
	Root    map[string]any
	Dialect Dialect
}

// Operation is one path/method pair. ID is "METHOD /path" with
// trailing slashes stripped, matching what users pick from.
type Operation struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Path   string `json:"path"`

	raw map[string]any
}

// Parse decodes raw JSON or YAML bytes and detects the dialect.
// OpenAPI 3 documents are additionally loaded through kin-openapi so
// malformed payloads fail here instead of during sampling.
func Parse(ctx context.Context, raw []byte) (Document, error) {
	root, err := decode(raw)
	if err != nil {
		return Document{}, err
	}

	var dialect Dialect
	switch {
	case hasVersionField(root, "openapi"):
		dialect = DialectOpenAPI3
	case hasVersionField(root, "swagger"):
		dialect = DialectSwagger2
	default:
		return Document{}, ErrUnsupported
	}

	if dialect == DialectOpenAPI3 {
		loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: false}
		if _, err := loader.LoadFromData(raw); err != nil {
			return Document{}, fmt.Errorf("load openapi document: %w", err)
		}
	}

	return Document{Root: root, Dialect: dialect}, nil
}

func decode(raw []byte) (map[string]any, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, ErrNotAnObject
	}

	if strings.HasPrefix(trimmed, "{") {
		var root map[string]any
		if err := json.Unmarshal(raw, &root); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		return root, nil
	}

	var root map[string]any
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if root == nil {
		return nil, ErrNotAnObject
	}
	return normalizeYAML(root), nil
}

// normalizeYAML rewrites yaml.v3's decoded values into the shapes JSON
// decoding produces: nested map[any]any becomes string-keyed maps, and
// integers become float64 so schema constraints like minItems read the
// same regardless of the document format.
func normalizeYAML(root map[string]any) map[string]any {
	normalized, _ := normalizeValue(root).(map[string]any)
	return normalized
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			out[key] = normalizeValue(entry)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			out[fmt.Sprint(key)] = normalizeValue(entry)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, entry := range v {
			out[i] = normalizeValue(entry)
		}
		return out
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return value
	}
}

// hasVersionField reports whether the document carries a usable
// dialect marker under key. YAML leaves unquoted markers like
// `swagger: 2.0` as numbers, so any non-empty scalar counts.
func hasVersionField(root map[string]any, key string) bool {
	switch v := root[key].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case float64:
		return v != 0
	case bool:
		return v
	default:
		return true
	}
}

var methods = []string{"get", "post", "put", "patch", "delete"}

// Operations lists the document's path operations in path order.
// Bodyless GET operations are skipped; everything else is listed even
// without a body so schema extraction can report the precise error.
func (d Document) Operations() []Operation {
	paths, _ := d.Root["paths"].(map[string]any)

	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	var ops []Operation
	for _, path := range keys {
		item, _ := paths[path].(map[string]any)
		for _, method := range methods {
			op, ok := item[method].(map[string]any)
			if !ok {
				continue
			}
			if method == "get" && !d.hasBody(op) {
				continue
			}
			ops = append(ops, Operation{
				ID:     strings.ToUpper(method) + " " + normalizePath(path),
				Method: strings.ToUpper(method),
				Path:   path,
				raw:    op,
			})
		}
	}
	return ops
}

// FindOperation resolves a user-supplied operation ID.
func (d Document) FindOperation(id string) (Operation, error) {
	for _, op := range d.Operations() {
		if op.ID == id {
			return op, nil
		}
	}
	return Operation{}, fmt.Errorf("%w: %s", ErrUnknownOperation, id)
}

func (d Document) hasBody(op map[string]any) bool {
	if d.Dialect == DialectOpenAPI3 {
		return op["requestBody"] != nil
	}
	params, _ := op["parameters"].([]any)
	for _, raw := range params {
		param, _ := raw.(map[string]any)
		if param["in"] == "body" {
			return true
		}
	}
	return false
}

// RequestBodySchema extracts the operation's JSON request-body schema
// node. The node is returned raw, refs unresolved, for the sampler.
func (d Document) RequestBodySchema(op Operation) (map[string]any, error) {
	if d.Dialect == DialectOpenAPI3 {
		body, _ := op.raw["requestBody"].(map[string]any)
		content, _ := body["content"].(map[string]any)
		media, _ := content["application/json"].(map[string]any)
		if media == nil {
			media, _ = content["application/*+json"].(map[string]any)
		}
		if schema, ok := media["schema"].(map[string]any); ok {
			return schema, nil
		}
		return nil, ErrNoRequestBody
	}

	params, _ := op.raw["parameters"].([]any)
	for _, raw := range params {
		param, _ := raw.(map[string]any)
		if param["in"] != "body" {
			continue
		}
		if schema, ok := param["schema"].(map[string]any); ok {
			return schema, nil
		}
	}
	return nil, ErrNoRequestBody
}

func normalizePath(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}
