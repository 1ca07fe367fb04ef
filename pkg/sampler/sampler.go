// Package sampler produces plausible sample values for JSON
// Schema-like nodes (OpenAPI 3 or Swagger 2 dialect). Sampling is
// recursive and depth-bounded, so cyclic or self-referential schemas
// terminate with a null placeholder instead of looping. Union keywords
// resolve to their first alternative; the goal is a conforming,
// readable payload, not exhaustive schema coverage.
package sampler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-datagen/pkg/rng"
)

// maxDepth bounds recursion across $ref chains, compositions, arrays,
// and nested objects. Nodes deeper than this sample to nil.
const maxDepth = 10

const placeholderUUID = "123e4567-e89b-12d3-a456-426614174000"

var sampleFirstNames = []string{"Alex", "Taylor", "Jordan", "Sam", "Jamie", "Riley", "Morgan", "Avery"}

var sampleLastNames = []string{"Smith", "Johnson", "Patel", "Chen", "Brown", "Garcia", "Singh", "Williams"}

// Sampler walks schema nodes of one root document, drawing every
// random decision from its Source. Not safe for concurrent use.
type Sampler struct {
	root map[string]any
	src  *rng.Source
	now  func() time.Time
}

// New builds a sampler for schemas belonging to the given root
// document. The root is used to resolve local $ref pointers.
func New(root map[string]any, src *rng.Source) *Sampler {
	return &Sampler{root: root, src: src, now: time.Now}
}

// WithClock overrides the wall clock used for date and date-time
// formats. Mainly for tests.
func (s *Sampler) WithClock(now func() time.Time) *Sampler {
	s.now = now
	return s
}

// Sample produces one value conforming to the schema node.
func (s *Sampler) Sample(schema map[string]any) any {
	return s.sample(schema, "", 0)
}

func (s *Sampler) sample(schema map[string]any, keyName string, depth int) any {
	if schema == nil || depth > maxDepth {
		return nil
	}

	if ref, ok := schema["$ref"].(string); ok && ref != "" {
		resolved, _ := resolveRef(s.root, ref).(map[string]any)
		return s.sample(resolved, keyName, depth+1)
	}

	if list := schemaList(schema, "oneOf", "anyOf"); list != nil {
		if len(list) == 0 {
			return nil
		}
		return s.sample(list[0], keyName, depth+1)
	}

	if allOf := schemaList(schema, "allOf"); allOf != nil {
		merged := map[string]any{}
		for _, part := range allOf {
			if obj, ok := s.sample(part, keyName, depth+1).(map[string]any); ok {
				for k, v := range obj {
					merged[k] = v
				}
			}
		}
		return merged
	}

	if schema["type"] == "array" || schema["items"] != nil {
		count := 2
		if min, ok := schema["minItems"].(float64); ok && min > 0 && int(min) < count {
			count = int(min)
		}
		items, _ := schema["items"].(map[string]any)
		if items == nil {
			items = map[string]any{}
		}
		out := make([]any, count)
		for i := range out {
			out[i] = s.sample(items, keyName, depth+1)
		}
		return out
	}

	if schema["type"] == "object" || schema["properties"] != nil {
		props, _ := schema["properties"].(map[string]any)
		required := stringSet(schema["required"])
		obj := map[string]any{}
		// Go maps iterate in random order; sort property names so the
		// draw sequence is a pure function of seed and schema.
		for _, key := range sortedKeys(props) {
			propSchema, _ := props[key].(map[string]any)
			if required[key] || s.src.Draw() > 0.3 {
				obj[key] = s.sample(propSchema, key, depth+1)
			}
		}
		return obj
	}

	if enum, ok := schema["enum"].([]any); ok && len(enum) > 0 {
		return rng.Pick(s.src, enum)
	}

	switch schema["type"] {
	case "integer", "number":
		if min, ok := schema["minimum"]; ok {
			return min
		}
		if min, ok := schema["exclusiveMinimum"]; ok {
			return min
		}
		return 1 + int(s.src.Draw()*1000)
	case "boolean":
		return s.src.Draw() > 0.5
	default:
		return s.sampleString(schema, keyName)
	}
}

func (s *Sampler) sampleString(schema map[string]any, keyName string) any {
	format, _ := schema["format"].(string)
	keyHint := keyName
	if title, ok := schema["title"].(string); ok && title != "" {
		keyHint = title
	}
	keyHint = strings.ToLower(keyHint)

	word := schema["example"]
	if word == nil {
		word = schema["default"]
	}
	if word == nil {
		word = fmt.Sprintf("string-%d", int(s.src.Draw()*1000))
	}

	switch {
	case format == "email" || strings.Contains(keyHint, "email"):
		return strings.ToLower(fmt.Sprintf("%s.%s%d@example.com",
			rng.Pick(s.src, sampleFirstNames),
			rng.Pick(s.src, sampleLastNames),
			int(s.src.Draw()*999)))
	case format == "date-time":
		return rng.FormatISO(s.now())
	case format == "date":
		return s.now().UTC().Format("2006-01-02")
	case format == "uuid":
		return placeholderUUID
	case strings.Contains(keyHint, "firstname") || strings.Contains(keyHint, "first name") || keyHint == "first":
		return rng.Pick(s.src, sampleFirstNames)
	case strings.Contains(keyHint, "lastname") || strings.Contains(keyHint, "last name") || keyHint == "last":
		return rng.Pick(s.src, sampleLastNames)
	case strings.Contains(keyHint, "username"):
		return fmt.Sprintf("%s%d",
			strings.ToLower(rng.Pick(s.src, sampleFirstNames)),
			int(s.src.Draw()*900)+100)
	case strings.Contains(keyHint, "phone"):
		return fmt.Sprintf("+1-%d-%d-%d",
			int(s.src.Draw()*900)+100,
			int(s.src.Draw()*900)+100,
			int(s.src.Draw()*9000)+1000)
	case strings.Contains(keyHint, "password"):
		return fmt.Sprintf("Pass%d!", int(s.src.Draw()*9999))
	}

	return word
}

// schemaList returns the first composition list present under the
// given keys, converted to schema nodes. A present-but-empty list
// still returns non-nil so callers can distinguish it from absence.
func schemaList(schema map[string]any, keys ...string) []map[string]any {
	for _, key := range keys {
		raw, ok := schema[key].([]any)
		if !ok {
			continue
		}
		list := make([]map[string]any, 0, len(raw))
		for _, entry := range raw {
			if node, ok := entry.(map[string]any); ok {
				list = append(list, node)
			}
		}
		return list
	}
	return nil
}

func stringSet(raw any) map[string]bool {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	set := make(map[string]bool, len(list))
	for _, entry := range list {
		if s, ok := entry.(string); ok {
			set[s] = true
		}
	}
	return set
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
