// Package normalize rewrites asset references inside block content
// documents to their single canonical form, the site's own image proxy:
//
//	{PUBLIC_BASE_URL}/api/images/{path}
//
// Historically the stored content accumulated several URL shapes
// (storage-provider object URLs, localhost URLs, bare relative paths).
// This is the one shared tree-walk that replaces the per-script rewrite
// passes; it never mutates its input and is idempotent.
package normalize

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

// storageMarker is the public-object prefix of the hosted storage
// provider. The path segment after it is the bucket name; everything
// after the bucket is the object path.
const storageMarker = "/storage/v1/object/public/"

const proxyPrefix = "/api/images/"

// Stats reports what a normalization pass did.
type Stats struct {
	// Changed counts rewritten asset fields.
	Changed int
	// Malformed lists values that looked like URLs but failed to parse.
	// They are left untouched; one bad record must not abort a batch.
	Malformed []string
}

// Normalizer applies the canonical rewrite rules against one base URL.
type Normalizer struct {
	base string
}

func New(baseURL string) *Normalizer {
	return &Normalizer{base: strings.TrimRight(baseURL, "/")}
}

// Document normalizes a raw JSON content document. The input is never
// mutated; the returned document is freshly marshalled.
func (n *Normalizer) Document(raw json.RawMessage) (json.RawMessage, *Stats, error) {
	if len(raw) == 0 {
		return raw, &Stats{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber() // keep numbers byte-identical across passes
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, err
	}

	stats := &Stats{}
	out := n.walk(doc, stats)

	buf, err := json.Marshal(out)
	if err != nil {
		return nil, nil, err
	}
	return buf, stats, nil
}

// Value normalizes an already-decoded JSON value, returning a deep copy.
func (n *Normalizer) Value(v any) (any, *Stats) {
	stats := &Stats{}
	return n.walk(v, stats), stats
}

// IsAssetKey reports whether an object key denotes an asset reference.
func IsAssetKey(key string) bool {
	return key == "url" || strings.HasSuffix(key, "Url") || strings.HasSuffix(key, "_url")
}

func (n *Normalizer) walk(v any, stats *Stats) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			if s, ok := child.(string); ok && s != "" && IsAssetKey(k) {
				out[k] = n.rewrite(s, stats)
				continue
			}
			out[k] = n.walk(child, stats)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = n.walk(child, stats)
		}
		return out
	default:
		return v
	}
}

// rewrite applies the rule table in priority order; first match wins.
func (n *Normalizer) rewrite(value string, stats *Stats) string {
	// 1. already canonical
	if strings.HasPrefix(value, n.base+proxyPrefix) {
		return value
	}

	// 2. storage-provider public object URL
	if idx := strings.Index(value, storageMarker); idx >= 0 {
		rest := value[idx+len(storageMarker):]
		// drop the bucket segment, keep the object path
		if slash := strings.Index(rest, "/"); slash >= 0 && slash+1 < len(rest) {
			stats.Changed++
			return n.base + proxyPrefix + rest[slash+1:]
		}
		return value
	}

	// 3. localhost-hosted upload URL
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		u, err := url.Parse(value)
		if err != nil {
			stats.Malformed = append(stats.Malformed, value)
			return value
		}
		if isLocalhost(u.Hostname()) && strings.HasPrefix(u.Path, "/uploads/") {
			stats.Changed++
			return n.base + "/api/images" + u.Path
		}
		return value
	}

	// 4. root-relative upload path
	if strings.HasPrefix(value, "/uploads/") {
		stats.Changed++
		return n.base + "/api/images" + value
	}

	// 5. anything else (third-party URLs, fragments, plain strings)
	return value
}

func isLocalhost(host string) bool {
	return host == "localhost" || host == "127.0.0.1"
}
