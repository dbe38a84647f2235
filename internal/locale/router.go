// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locale implements locale-prefixed routing: every page lives under
// /{locale}/ with a pathname localized for that locale (for example
// /fr/parcourir for /en/browse). The [Router] translates between logical and
// localized paths and its middleware redirects and rewrites page requests.
package locale

import (
	"fmt"
	"slices"
	"sort"

	"golang.org/x/text/language"
)

type route struct {
	logical   string
	pattern   pattern
	localized map[string]pattern
}

// Router holds the supported locales and the localized route table.
type Router struct {
	defaultLocale string
	supported     []string
	matcher       language.Matcher
	routes        []route
}

// NewRouter validates the locale settings and parses pathnames. The default
// locale must be one of supported; every pathname must be given for every
// supported locale.
func NewRouter(defaultLocale string, supported []string, pathnames map[string]map[string]string) (*Router, error) {
	if !slices.Contains(supported, defaultLocale) {
		return nil, fmt.Errorf("default locale %q is not supported", defaultLocale)
	}

	// the matcher falls back to its first tag, so the default goes first
	ordered := append([]string{defaultLocale}, slices.DeleteFunc(slices.Clone(supported), func(l string) bool {
		return l == defaultLocale
	})...)

	tags := make([]language.Tag, 0, len(ordered))
	for _, l := range ordered {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", l, err)
		}
		tags = append(tags, tag)
	}

	logicals := make([]string, 0, len(pathnames))
	for logical := range pathnames {
		logicals = append(logicals, logical)
	}
	sort.Strings(logicals)

	routes := make([]route, 0, len(pathnames))
	for _, logical := range logicals {
		perLocale := pathnames[logical]
		r := route{
			logical:   logical,
			pattern:   parsePattern(logical),
			localized: make(map[string]pattern, len(ordered)),
		}
		for _, l := range ordered {
			p, ok := perLocale[l]
			if !ok {
				return nil, fmt.Errorf("pathname %q has no %q form", logical, l)
			}
			r.localized[l] = parsePattern(p)
		}
		routes = append(routes, r)
	}

	return &Router{
		defaultLocale: defaultLocale,
		supported:     ordered,
		matcher:       language.NewMatcher(tags),
		routes:        routes,
	}, nil
}

// Default returns the default locale.
func (rt *Router) Default() string {
	return rt.defaultLocale
}

// Supported returns the supported locales, default first.
func (rt *Router) Supported() []string {
	return slices.Clone(rt.supported)
}

// IsSupported reports whether locale is routable.
func (rt *Router) IsSupported(locale string) bool {
	return slices.Contains(rt.supported, locale)
}

// Pathname resolves a logical path, with parameters already filled in, to
// its form in locale. Paths outside the table are returned unchanged.
//
//	rt.Pathname("fr", "/browse")    // "/parcourir"
//	rt.Pathname("fr", "/media/42")  // "/medias/42"
func (rt *Router) Pathname(locale, logical string) string {
	segments := splitPath(logical)
	for _, r := range rt.routes {
		params, ok := r.pattern.match(segments)
		if !ok {
			continue
		}
		if p, ok := r.localized[locale]; ok {
			return p.fill(params)
		}
	}
	return logical
}

// Href returns the full localized URL path "/{locale}{pathname}".
func (rt *Router) Href(locale, logical string) string {
	p := rt.Pathname(locale, logical)
	if p == "/" {
		return "/" + locale
	}
	return "/" + locale + p
}

// Logical resolves a path localized for locale back to its logical form.
func (rt *Router) Logical(locale, localized string) (string, bool) {
	segments := splitPath(localized)
	for _, r := range rt.routes {
		p, ok := r.localized[locale]
		if !ok {
			continue
		}
		if params, ok := p.match(segments); ok {
			return r.pattern.fill(params), true
		}
	}
	return "", false
}

// Links returns the localized pathnames of every parameterless route,
// keyed by logical path.
func (rt *Router) Links(locale string) map[string]string {
	links := make(map[string]string, len(rt.routes))
	for _, r := range rt.routes {
		if slices.ContainsFunc(r.pattern, isParam) {
			continue
		}
		links[r.logical] = rt.Href(locale, r.logical)
	}
	return links
}

// lookupAny finds the logical path of localized in any supported locale,
// preferring first.
func (rt *Router) lookupAny(first, localized string) (logical string, ok bool) {
	if logical, ok = rt.Logical(first, localized); ok {
		return logical, true
	}
	for _, l := range rt.supported {
		if l == first {
			continue
		}
		if logical, ok = rt.Logical(l, localized); ok {
			return logical, true
		}
	}
	return "", false
}
