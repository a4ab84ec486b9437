// Package access holds the route authorization table.
//
// The table is an ordered list of rules written as "METHOD /path" with
// ":name" placeholders, each carrying the role codes allowed to call it.
// Rules are compiled once into anchored regular expressions and evaluated
// linearly; the first matching rule decides.
package access

import (
	"fmt"
	"regexp"
	"strings"

	"carehub/models"
)

// Decision is the outcome of evaluating a request against the table.
type Decision int

const (
	// NoMatch means no rule covers the request.
	NoMatch Decision = iota
	// Allow means the first matching rule lists the caller's role.
	Allow
	// Deny means a rule matched without the caller's role, or the path
	// sits under a prefix that denies unmatched requests.
	Deny
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "no-match"
	}
}

const (
	numericParam      = `[0-9]+`
	alphanumericParam = `[a-zA-Z0-9]+`
)

// Rule maps a method and path pattern to the roles allowed to call it.
type Rule struct {
	Method string
	Path   string
	Roles  []models.Role

	pattern *regexp.Regexp
}

// NewRule builds a rule from a "METHOD /path" key.
func NewRule(key string, roles ...models.Role) Rule {
	method, path, _ := strings.Cut(strings.TrimSpace(key), " ")
	return Rule{
		Method: strings.ToUpper(method),
		Path:   strings.TrimSpace(path),
		Roles:  roles,
	}
}

// Key returns the rule in its "METHOD /path" form.
func (r Rule) Key() string {
	return r.Method + " " + r.Path
}

// Allows reports whether role is in the rule's allow-list.
func (r Rule) Allows(role models.Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Table is an immutable, ordered set of compiled rules.
type Table struct {
	rules        []Rule
	denyPrefixes []string
}

// NewTable compiles rules in order. Requests under any of denyPrefixes that
// match no rule are denied instead of reported as NoMatch.
func NewTable(rules []Rule, denyPrefixes ...string) (*Table, error) {
	compiled := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Method == "" || !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("access: malformed rule %q", r.Key())
		}
		if len(r.Roles) == 0 {
			return nil, fmt.Errorf("access: rule %q allows no roles", r.Key())
		}
		for _, role := range r.Roles {
			if !role.Valid() {
				return nil, fmt.Errorf("access: rule %q has unknown role %q", r.Key(), role)
			}
		}

		pattern, err := regexp.Compile(compilePattern(r.Method, r.Path))
		if err != nil {
			return nil, fmt.Errorf("access: compile %q: %w", r.Key(), err)
		}
		r.pattern = pattern
		r.Roles = append([]models.Role(nil), r.Roles...)
		compiled = append(compiled, r)
	}

	return &Table{
		rules:        compiled,
		denyPrefixes: append([]string(nil), denyPrefixes...),
	}, nil
}

// MustNewTable is NewTable for static rule sets; it panics on error.
func MustNewTable(rules []Rule, denyPrefixes ...string) *Table {
	t, err := NewTable(rules, denyPrefixes...)
	if err != nil {
		panic(err)
	}
	return t
}

// Rules returns a copy of the table's rules in evaluation order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	for i, r := range t.rules {
		r.Roles = append([]models.Role(nil), r.Roles...)
		out[i] = r
	}
	return out
}

// Match returns the first rule matching method and path.
// HEAD is checked against the GET rules, as the router serves it from them.
func (t *Table) Match(method, path string) (Rule, bool) {
	method = strings.ToUpper(method)
	if method == "HEAD" {
		method = "GET"
	}
	route := method + " " + normalizePath(path)
	for _, r := range t.rules {
		if r.pattern.MatchString(route) {
			return r, true
		}
	}
	return Rule{}, false
}

// Decide evaluates a request made by a caller holding role.
func (t *Table) Decide(method, path string, role models.Role) Decision {
	if r, ok := t.Match(method, path); ok {
		if r.Allows(role) {
			return Allow
		}
		return Deny
	}

	path = normalizePath(path)
	for _, prefix := range t.denyPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return Deny
		}
	}
	return NoMatch
}

// compilePattern turns "GET /alerts/:id" into `^GET /alerts/[0-9]+$`.
func compilePattern(method, path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = paramPattern(seg[1:])
			continue
		}
		segments[i] = regexp.QuoteMeta(seg)
	}
	return "^" + regexp.QuoteMeta(method) + " " + strings.Join(segments, "/") + "$"
}

// paramPattern picks the placeholder expression for a parameter name.
// Identifiers are numeric; everything else is a plain alphanumeric token.
func paramPattern(name string) string {
	lower := strings.ToLower(name)
	if lower == "id" || strings.HasSuffix(lower, "id") {
		return numericParam
	}
	return alphanumericParam
}

func normalizePath(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
