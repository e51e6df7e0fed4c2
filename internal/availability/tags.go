package availability

import "strings"

// NormalizeTags flattens raw tag input into a clean required
// set. Every element may itself be a comma-separated list; values are
// trimmed, empties dropped and duplicates removed preserving first-seen
// order. Tag names are case-sensitive and are not checked against the
// catalog: an unknown tag simply matches no user.
func NormalizeTags(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, chunk := range raw {
		for _, name := range strings.Split(chunk, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
