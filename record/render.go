package record

import (
	"sort"
	"strings"
)

// Document is the in-memory representation for producing canonical record
// bytes. Rendered output is always canonical: fixed section order, sorted
// keys, "Key: Value" spacing, exactly one blank line between sections, LF
// line endings and no trailing newline.
type Document struct {
	Meta       map[string]string
	Reaction   map[string]string
	Provenance map[string]string
	Crypto     map[string]string
}

// Render produces canonical record bytes from a Document.
func Render(doc Document) ([]byte, error) {
	sections := []struct {
		name  string
		pairs map[string]string
	}{
		{name: "META", pairs: doc.Meta},
		{name: "REACTION", pairs: doc.Reaction},
		{name: "PROVENANCE", pairs: doc.Provenance},
		{name: "CRYPTO", pairs: doc.Crypto},
	}

	var sb strings.Builder
	sb.WriteString(Preamble)
	sb.WriteString("\n")

	for i, sec := range sections {
		sb.WriteString(sec.name)
		sb.WriteString("\n")

		keys := make([]string, 0, len(sec.pairs))
		for k := range sec.pairs {
			if k == "" {
				return nil, newError(KindRender, "ORD-REND-001", "empty key")
			}
			if !isASCII(k) {
				return nil, newError(KindRender, "ORD-REND-002", "non-ASCII key")
			}
			if strings.ContainsAny(k, ":\n\r") || strings.Contains(k, " ") {
				return nil, newError(KindRender, "ORD-REND-003", "key must not contain spaces, colons or newlines")
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v := sec.pairs[k]
			if v == "" {
				return nil, newError(KindRender, "ORD-REND-010", "empty value for key "+k)
			}
			if strings.HasPrefix(v, " ") {
				return nil, newError(KindRender, "ORD-REND-011", "value must not start with a space")
			}
			if strings.ContainsAny(v, "\n\r") {
				return nil, newError(KindRender, "ORD-REND-012", "value must not contain newlines")
			}
			if strings.HasSuffix(v, " ") || strings.HasSuffix(v, "\t") {
				return nil, newError(KindRender, "ORD-REND-013", "trailing whitespace forbidden")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			sb.WriteString(v)
			sb.WriteString("\n")
		}

		if i != len(sections)-1 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString(Postamble)
	return []byte(sb.String()), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
