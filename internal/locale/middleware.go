// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locale

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/adspace/internal/logger"
	"golang.org/x/text/language"
)

// PreferenceCookie holds the locale the user picked explicitly.
const PreferenceCookie = "user_preferred_language"

// excludedPrefixes never go through locale routing.
var excludedPrefixes = []string{"/api", "/static", "/_internal", "/healthz"}

type contextKey string

const localeCtxKey = contextKey("locale")

// WithLocale returns a copy of ctx carrying locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeCtxKey, locale)
}

// FromContext returns the locale stored by the middleware, or "" when the
// request was not locale-routed.
func FromContext(ctx context.Context) string {
	l, _ := ctx.Value(localeCtxKey).(string)
	return l
}

// Excluded reports whether path bypasses locale routing: API, static and
// internal paths, and any path whose last segment looks like a file name.
func Excluded(path string) bool {
	for _, prefix := range excludedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	last := path[strings.LastIndex(path, "/")+1:]
	return strings.Contains(last, ".")
}

// Resolve picks the locale for a request without a locale prefix: the
// preference cookie, then Accept-Language, then the default.
func (rt *Router) Resolve(r *http.Request) string {
	if c, err := r.Cookie(PreferenceCookie); err == nil && rt.IsSupported(c.Value) {
		return c.Value
	}

	if header := r.Header.Get("Accept-Language"); header != "" {
		tags, _, err := language.ParseAcceptLanguage(header)
		if err == nil && len(tags) > 0 {
			if _, index, confidence := rt.matcher.Match(tags...); confidence != language.No {
				return rt.supported[index]
			}
		}
	}

	return rt.defaultLocale
}

// Middleware applies locale routing to page requests:
//   - excluded paths pass through untouched;
//   - a path without a supported locale prefix is redirected (307) to its
//     localized form under the resolved locale;
//   - a prefixed path spelled for another locale is redirected to the
//     canonical spelling;
//   - a canonical path is rewritten to /{locale}{logical path} and the
//     locale is stored in the request context.
func (rt *Router) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if Excluded(path) {
			next.ServeHTTP(w, r)
			return
		}

		prefix, rest := splitLocale(path)
		if !rt.IsSupported(prefix) {
			loc := rt.Resolve(r)
			logical, ok := rt.lookupAny(loc, path)
			if !ok {
				logical = path
			}
			rt.redirect(w, r, loc, logical)
			return
		}

		logical, ok := rt.Logical(prefix, rest)
		if !ok {
			if other, found := rt.lookupAny(prefix, rest); found {
				rt.redirect(w, r, prefix, other)
				return
			}
			// unknown page: keep the path so the router answers 404
			logical = rest
		}

		ctx := WithLocale(r.Context(), prefix)
		rewritten := r.Clone(ctx)
		rewritten.URL.Path = "/" + prefix + logical
		rewritten.URL.RawPath = ""
		if logical == "/" {
			rewritten.URL.Path = "/" + prefix + "/"
		}

		next.ServeHTTP(w, rewritten)
	})
}

func (rt *Router) redirect(w http.ResponseWriter, r *http.Request, locale, logical string) {
	target := rt.Href(locale, logical)
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	logger.FromRequest(r).Debug().
		Str("from", r.URL.Path).
		Str("to", target).
		Msg("locale redirect")

	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

// splitLocale splits "/fr/parcourir" into "fr" and "/parcourir". rest is
// "/" when nothing follows the first segment.
func splitLocale(path string) (first, rest string) {
	trimmed := strings.TrimPrefix(path, "/")
	first, rest, _ = strings.Cut(trimmed, "/")
	rest = "/" + rest
	return first, rest
}
