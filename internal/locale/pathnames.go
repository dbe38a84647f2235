// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locale

import "strings"

// DefaultPathnames is the localized route table of the application. Keys
// are logical paths; "[name]" segments are parameters copied verbatim
// between locales.
var DefaultPathnames = map[string]map[string]string{
	"/":                       {"en": "/", "fr": "/"},
	"/browse":                 {"en": "/browse", "fr": "/parcourir"},
	"/media/[id]":             {"en": "/media/[id]", "fr": "/medias/[id]"},
	"/dashboard":              {"en": "/dashboard", "fr": "/tableau-de-bord"},
	"/dashboard/media":        {"en": "/dashboard/media", "fr": "/tableau-de-bord/medias"},
	"/dashboard/reservations": {"en": "/dashboard/reservations", "fr": "/tableau-de-bord/reservations"},
	"/dashboard/campaigns":    {"en": "/dashboard/campaigns", "fr": "/tableau-de-bord/campagnes"},
	"/profile":                {"en": "/profile", "fr": "/profil"},
	"/admin/media":            {"en": "/admin/media", "fr": "/admin/medias"},
	"/admin/businesses":       {"en": "/admin/businesses", "fr": "/admin/entreprises"},
}

// pattern is a parsed path template.
type pattern []string

func parsePattern(p string) pattern {
	return splitPath(p)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func isParam(segment string) bool {
	return len(segment) > 2 && segment[0] == '[' && segment[len(segment)-1] == ']'
}

// match reports whether segments fit p and returns the parameter values.
func (p pattern) match(segments []string) (map[string]string, bool) {
	if len(p) != len(segments) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range p {
		if isParam(seg) {
			if segments[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, 1)
			}
			params[seg] = segments[i]
			continue
		}
		if seg != segments[i] {
			return nil, false
		}
	}
	return params, true
}

// fill renders p with params.
func (p pattern) fill(params map[string]string) string {
	if len(p) == 0 {
		return "/"
	}

	out := make([]string, len(p))
	for i, seg := range p {
		if v, ok := params[seg]; ok && isParam(seg) {
			out[i] = v
			continue
		}
		out[i] = seg
	}
	return "/" + strings.Join(out, "/")
}
