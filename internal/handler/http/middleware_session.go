// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/adspace/internal/locale"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/service"
	"github.com/MKhiriev/adspace/internal/utils"
)

// withSession resolves the session cookie and stores the session in the
// request context. A missing, invalid or expired cookie leaves the request
// anonymous; the stale cookie is cleared. Only a failing session store
// aborts the request.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		log := logger.FromRequest(r)

		session, err := h.services.AuthService.ResolveSession(ctx, cookie.Value)
		if errors.Is(err, service.ErrUnauthorized) {
			log.Debug().Err(err).Msg("session cookie rejected")
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			writeError(w, r, fmt.Errorf("session resolution failed: %w", err))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, &session)))
	})
}

// requireSession answers 401 to anonymous API requests.
func requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionFromContext(r.Context()); !ok {
			writeStatus(w, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requirePageSession sends anonymous page requests to the login flow,
// returning to the page afterwards.
func (h *Handler) requirePageSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionFromContext(r.Context()); !ok {
			target := loginPath + "?returnTo=" + url.QueryEscape(r.RequestURI)
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireRole answers 403 unless the session was granted role. It must run
// after requireSession or requirePageSession.
func requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := utils.GetSessionFromContext(r.Context())
			if !ok {
				writeStatus(w, http.StatusUnauthorized)
				return
			}
			if !session.HasRole(role) {
				logger.FromRequest(r).Warn().
					Str("subject", session.Subject).
					Str("role", role).
					Msg("role required")
				writeStatus(w, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireLocale rejects requests that reached the page routes without going
// through the locale rewrite, such as "/favicon.ico".
func requireLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if locale.FromContext(r.Context()) == "" {
			writeStatus(w, http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
