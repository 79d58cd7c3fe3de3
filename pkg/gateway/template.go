package gateway

import (
	"net/url"
	"strings"

	"github.com/zeebo/errs"
)

// ErrTemplate means a route template could not be parsed.
var ErrTemplate = errs.Class("route template error")

// Template is a parsed URL path template. Literal segments must match
// exactly, `{field.path}` segments capture one path segment, and a trailing
// `{field.path=**}` segment captures the remainder of the path including
// slashes. Captured fragments are URL-decoded.
type Template struct {
	pattern  string
	segments []templateSegment
}

type templateSegment struct {
	literal  string
	field    string
	wildcard bool
}

// ParseTemplate parses a path template such as
// `/v1/{tenant}/read-object/{selector.object_id}` or `/static/{path=**}`.
func ParseTemplate(pattern string) (*Template, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, ErrTemplate.New("pattern %q must start with /", pattern)
	}
	t := &Template{pattern: pattern}
	for _, raw := range strings.Split(pattern[1:], "/") {
		switch {
		case strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}"):
			inner := raw[1 : len(raw)-1]
			wildcard := false
			if cut := strings.Index(inner, "="); cut >= 0 {
				if inner[cut+1:] != "**" {
					return nil, ErrTemplate.New("pattern %q: only =** is supported", pattern)
				}
				inner, wildcard = inner[:cut], true
			}
			if inner == "" {
				return nil, ErrTemplate.New("pattern %q has an empty capture", pattern)
			}
			t.segments = append(t.segments, templateSegment{field: inner, wildcard: wildcard})
			if wildcard {
				return t, nil
			}
		case strings.ContainsAny(raw, "{}"):
			return nil, ErrTemplate.New("pattern %q has an unbalanced brace", pattern)
		case raw == "" && len(t.segments) > 0:
			return nil, ErrTemplate.New("pattern %q has an empty segment", pattern)
		default:
			t.segments = append(t.segments, templateSegment{literal: raw})
		}
	}
	return t, nil
}

// MustTemplate is ParseTemplate for compile-time route tables.
func MustTemplate(pattern string) *Template {
	t, err := ParseTemplate(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

// Match reports whether path matches the template and returns the captured
// fields keyed by their dotted field paths. Captures are URL-decoded; a
// fragment that does not decode fails the match.
func (t *Template) Match(path string) (fields map[string]string, ok bool) {
	if !strings.HasPrefix(path, "/") {
		return nil, false
	}
	rest := path[1:]
	fields = make(map[string]string)
	for i, seg := range t.segments {
		if seg.wildcard {
			if rest == "" {
				return nil, false
			}
			decoded, err := url.PathUnescape(rest)
			if err != nil {
				return nil, false
			}
			fields[seg.field] = decoded
			return fields, true
		}
		var part string
		if cut := strings.Index(rest, "/"); cut >= 0 {
			part, rest = rest[:cut], rest[cut+1:]
		} else {
			part, rest = rest, ""
			if i != len(t.segments)-1 {
				return nil, false
			}
		}
		if seg.field != "" {
			if part == "" {
				return nil, false
			}
			decoded, err := url.PathUnescape(part)
			if err != nil {
				return nil, false
			}
			fields[seg.field] = decoded
			continue
		}
		if part != seg.literal {
			return nil, false
		}
	}
	if rest != "" {
		return nil, false
	}
	return fields, true
}

// String returns the original pattern.
func (t *Template) String() string { return t.pattern }
