package subst

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vk/varforge/internal/store"
)

// tokenPattern matches a single variable reference, either braced (${name})
// or bare ($name, terminated at a word boundary). Group 1 carries the braced
// name, group 2 the bare one.
var tokenPattern = regexp.MustCompile(`\$\{(.+?)\}|\$(.+?)\b`)

// Substitutor replaces variable references in text with values from a store.
type Substitutor struct {
	store *store.Store
}

// New creates a Substitutor bound to the given store.
func New(s *store.Store) *Substitutor {
	return &Substitutor{store: s}
}

// Substitute returns text with every reference to a currently-set variable
// replaced by its value. References to absent variables are left verbatim so
// that IsUnresolved can detect them later. A braced reference that is never
// terminated is a structural error.
func (s *Substitutor) Substitute(text string) (string, error) {
	if err := checkTerminated(text); err != nil {
		return "", err
	}

	var out strings.Builder
	last := 0
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(text, -1) {
		name := groupAt(text, m, 1)
		if name == "" {
			name = groupAt(text, m, 2)
		}
		value, ok := s.store.Get(name)
		if !ok {
			continue
		}
		out.WriteString(text[last:m[0]])
		out.WriteString(value)
		last = m[1]
	}
	if last == 0 {
		return text, nil
	}
	out.WriteString(text[last:])
	return out.String(), nil
}

// IsUnresolved reports whether text still contains any variable reference.
func IsUnresolved(text string) bool {
	return tokenPattern.MatchString(text)
}

// ReferencedNames returns the sorted set of variable names referenced by any
// of the given strings.
func ReferencedNames(texts ...string) []string {
	seen := make(map[string]struct{})
	for _, text := range texts {
		for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
			for _, name := range m[1:] {
				if name != "" {
					seen[name] = struct{}{}
				}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckSyntax rejects text containing a braced reference that is never
// terminated. It is the static counterpart of the error Substitute returns.
func CheckSyntax(text string) error {
	return checkTerminated(text)
}

// groupAt extracts the capture group at index group from a submatch index
// slice, or "" if the group did not participate in the match.
func groupAt(text string, m []int, group int) string {
	start, end := m[2*group], m[2*group+1]
	if start < 0 {
		return ""
	}
	return text[start:end]
}

// checkTerminated rejects text containing a ${ opener with no closing brace.
func checkTerminated(text string) error {
	for offset := 0; ; {
		idx := strings.Index(text[offset:], "${")
		if idx < 0 {
			return nil
		}
		idx += offset
		end := strings.Index(text[idx:], "}")
		if end < 0 {
			return fmt.Errorf("unterminated variable reference at offset %d", idx)
		}
		offset = idx + end + 1
	}
}
