package sampler

import "strings"

// resolveRef walks a local JSON-pointer reference ("#/components/…")
// against the root document. It returns nil when any segment is
// missing or the path crosses a non-object node; callers treat that
// the same as an absent schema.
func resolveRef(root map[string]any, ref string) any {
	pointer := strings.TrimPrefix(ref, "#/")
	if pointer == "" {
		return nil
	}

	var node any = root
	for _, part := range strings.Split(pointer, "/") {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		node = obj[decodePointerSegment(part)]
	}
	return node
}

// decodePointerSegment applies RFC 6901 unescaping: ~1 becomes "/",
// ~0 becomes "~", in that order.
func decodePointerSegment(part string) string {
	part = strings.ReplaceAll(part, "~1", "/")
	return strings.ReplaceAll(part, "~0", "~")
}
