package verify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Canonicalize returns a deterministic JSON encoding of v for hashing.
// Rules:
// - Marshal v with encoding/json, then re-encode the generic tree
// - Sort object keys alphabetically (recursively)
// - Normalize RFC3339 timestamps to UTC
// - Keep numbers exactly as marshalled
// - Compact output (no extra whitespace)
func Canonicalize(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	tree = normalizeTimestamps(tree)

	var buf bytes.Buffer
	if err := encodeSorted(&buf, tree); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func normalizeTimestamps(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			t[k] = normalizeTimestamps(vv)
		}
		return t
	case []any:
		for i := range t {
			t[i] = normalizeTimestamps(t[i])
		}
		return t
	case string:
		// Best-effort RFC3339 parse; civil dates are left alone
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts.UTC().Format(time.RFC3339)
		}
		return t
	default:
		return t
	}
}

func encodeSorted(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, _ := json.Marshal(k)
			buf.Write(kb)
			buf.WriteByte(':')
			if err := encodeSorted(buf, t[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i, elem := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeSorted(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case json.Number:
		buf.WriteString(t.String())
		return nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
}
