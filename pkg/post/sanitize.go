package post

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// SanitizeBody drops object keys that start with '$' or contain '.', at any depth,
// so operator documents never reach the store. An empty body becomes {}.
func SanitizeBody(raw []byte) ([]byte, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []byte("{}"), nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return json.Marshal(sanitizeValue(doc))
}

func sanitizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			if strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
				delete(val, k)
				continue
			}
			val[k] = sanitizeValue(inner)
		}
		return val
	case []interface{}:
		for i := range val {
			val[i] = sanitizeValue(val[i])
		}
		return val
	default:
		return v
	}
}

// CleanText trims s and strips control characters other than tab and newline.
func CleanText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
