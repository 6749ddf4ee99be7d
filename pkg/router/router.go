// Package router maps named path patterns to route matches and replays
// an in-process history.
//
// Patterns are slash-separated; a segment starting with ':' captures one
// path element by name, and a trailing segment starting with '*' captures
// the remainder:
//
//	r := router.New()
//	r.Handle("home", "/")
//	r.Handle("demo", "/demos/:name")
//	r.Handle("docs", "/docs/*rest")
//
// Navigate resolves a path, records it in history, and notifies
// subscribers with the route name and captured parameters. Back and
// Forward replay history entries and re-emit their matches.
package router

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRoute is returned when no registered pattern matches a path.
var ErrNoRoute = errors.New("router: no route matches path")

// Match is the result of resolving a path against the route table.
type Match struct {
	Name   string            // Route name
	Path   string            // The canonical path that matched
	Params map[string]string // Captured parameters by name
}

type segment struct {
	literal string
	param   string // non-empty for ':name' capture segments
	rest    bool   // true for a trailing '*name' segment
}

type route struct {
	name     string
	pattern  string
	segments []segment
}

type subscriberEntry struct {
	id uint64
	fn func(Match)
}

// Router resolves paths against a route table and tracks history. It is
// not safe for concurrent use; like the rest of the UI core it belongs
// to a single goroutine.
type Router struct {
	routes  []route
	history *History
	subs    []subscriberEntry
	nextSub uint64
}

// New creates an empty router.
func New() *Router {
	return &Router{history: NewHistory()}
}

// Handle registers a named route pattern. Names must be unique; patterns
// must begin with '/'. A '*' capture is only valid in the last segment.
func (r *Router) Handle(name, pattern string) error {
	if name == "" {
		return errors.New("router: route name must not be empty")
	}
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("router: pattern %q must begin with '/'", pattern)
	}
	for _, existing := range r.routes {
		if existing.name == name {
			return fmt.Errorf("router: duplicate route name %q", name)
		}
	}

	segs, err := parsePattern(pattern)
	if err != nil {
		return err
	}
	r.routes = append(r.routes, route{name: name, pattern: pattern, segments: segs})
	return nil
}

func parsePattern(pattern string) ([]segment, error) {
	parts := splitPath(pattern)
	segs := make([]segment, 0, len(parts))
	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, ":"):
			if len(part) == 1 {
				return nil, fmt.Errorf("router: unnamed parameter in %q", pattern)
			}
			segs = append(segs, segment{param: part[1:]})
		case strings.HasPrefix(part, "*"):
			if len(part) == 1 {
				return nil, fmt.Errorf("router: unnamed catch-all in %q", pattern)
			}
			if i != len(parts)-1 {
				return nil, fmt.Errorf("router: catch-all must be the last segment in %q", pattern)
			}
			segs = append(segs, segment{param: part[1:], rest: true})
		default:
			segs = append(segs, segment{literal: part})
		}
	}
	return segs, nil
}

// NavigateOptions configures navigation behavior.
type NavigateOptions struct {
	// Replace replaces the current history entry instead of pushing.
	Replace bool
}

// NavigateOption is a functional option for Navigate.
type NavigateOption func(*NavigateOptions)

// WithReplace replaces the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *NavigateOptions) {
		o.Replace = true
	}
}

// Navigate resolves path against the route table, records it in history,
// and notifies subscribers. An unmatched path returns ErrNoRoute and
// leaves history untouched.
func (r *Router) Navigate(path string, opts ...NavigateOption) (Match, error) {
	var options NavigateOptions
	for _, opt := range opts {
		opt(&options)
	}

	m, ok := r.match(path)
	if !ok {
		return Match{}, fmt.Errorf("%w: %q", ErrNoRoute, path)
	}

	if options.Replace {
		r.history.Replace(m.Path)
	} else {
		r.history.Push(m.Path)
	}

	r.emit(m)
	return m, nil
}

// Back moves one entry back in history and re-emits its match, mirroring
// a history pop. Returns false at the start of history.
func (r *Router) Back() (Match, bool) {
	path, ok := r.history.Back()
	if !ok {
		return Match{}, false
	}
	m, matched := r.match(path)
	if !matched {
		return Match{}, false
	}
	r.emit(m)
	return m, true
}

// Forward moves one entry forward in history and re-emits its match.
func (r *Router) Forward() (Match, bool) {
	path, ok := r.history.Forward()
	if !ok {
		return Match{}, false
	}
	m, matched := r.match(path)
	if !matched {
		return Match{}, false
	}
	r.emit(m)
	return m, true
}

// Current returns the match for the current history entry.
func (r *Router) Current() (Match, bool) {
	path, ok := r.history.Current()
	if !ok {
		return Match{}, false
	}
	return r.match(path)
}

// OnNavigate registers a callback invoked with every emitted match and
// returns its unsubscribe function.
func (r *Router) OnNavigate(fn func(Match)) (unsubscribe func()) {
	if fn == nil {
		panic("router: nil navigation subscriber")
	}
	r.nextSub++
	id := r.nextSub
	r.subs = append(r.subs, subscriberEntry{id: id, fn: fn})

	return func() {
		for i, sub := range r.subs {
			if sub.id == id {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

func (r *Router) emit(m Match) {
	subs := make([]subscriberEntry, len(r.subs))
	copy(subs, r.subs)
	for _, sub := range subs {
		sub.fn(m)
	}
}

// match resolves a path against the route table in registration order.
func (r *Router) match(path string) (Match, bool) {
	canonical := canonicalize(path)
	parts := splitPath(canonical)

	for _, rt := range r.routes {
		params, ok := matchSegments(rt.segments, parts)
		if ok {
			return Match{Name: rt.name, Path: canonical, Params: params}, true
		}
	}
	return Match{}, false
}

func matchSegments(segs []segment, parts []string) (map[string]string, bool) {
	params := make(map[string]string)

	for i, seg := range segs {
		if seg.rest {
			params[seg.param] = strings.Join(parts[i:], "/")
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		if seg.param != "" {
			if parts[i] == "" {
				return nil, false
			}
			params[seg.param] = parts[i]
			continue
		}
		if seg.literal != parts[i] {
			return nil, false
		}
	}

	if len(parts) != len(segs) {
		return nil, false
	}
	return params, true
}

// canonicalize ensures a leading slash and strips a trailing one, except
// for the root path.
func canonicalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

// splitPath splits a canonical path into segments; the root path yields
// an empty slice.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
