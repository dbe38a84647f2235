// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/service"
	"github.com/MKhiriev/adspace/internal/utils"
)

const (
	loginPath = "/api/auth/login"

	sessionCookieName = "appSession"

	// stateCookieName holds "<state>.<base64 returnTo>" between the login
	// redirect and the callback.
	stateCookieName   = "auth_state"
	stateCookiePath   = "/api/auth"
	stateCookieMaxAge = 600
)

// login starts the authorization-code flow.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	returnTo := safeReturnTo(r.URL.Query().Get("returnTo"))
	state := rand.Text()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state + "." + base64.RawURLEncoding.EncodeToString([]byte(returnTo)),
		Path:     stateCookiePath,
		MaxAge:   stateCookieMaxAge,
		HttpOnly: true,
		Secure:   h.cookies.secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.services.AuthService.LoginURL(state), http.StatusFound)
}

// callback completes the login, opens the session and returns the browser
// to where the login started.
func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	query := r.URL.Query()

	if providerErr := query.Get("error"); providerErr != "" {
		log.Warn().Str("error", providerErr).Str("description", query.Get("error_description")).Msg("identity provider refused login")
		writeError(w, r, fmt.Errorf("%w: %s", ErrLoginFailed, providerErr))
		return
	}

	expectedState, returnTo := "", "/"
	if cookie, err := r.Cookie(stateCookieName); err == nil {
		expectedState, returnTo = parseStateCookie(cookie.Value)
	}
	h.clearCookie(w, stateCookieName, stateCookiePath)

	session, err := h.services.AuthService.CompleteLogin(ctx, query.Get("code"), query.Get("state"), expectedState)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.SignSession(session)
	if err != nil {
		writeError(w, r, fmt.Errorf("session cookie signing failed: %w", err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cookies.sessionMaxAge,
		HttpOnly: true,
		Secure:   h.cookies.secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, returnTo, http.StatusFound)
}

// logout ends the local session and hands the browser to the identity
// provider's logout endpoint.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	var sessionID string
	if session, ok := utils.GetSessionFromContext(r.Context()); ok {
		sessionID = session.ID
	}

	logoutURL, err := h.services.AuthService.Logout(r.Context(), sessionID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, logoutURL, http.StatusFound)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}
	utils.WriteJSON(w, session.Profile(), http.StatusOK)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	h.clearCookie(w, sessionCookieName, "/")
}

func (h *Handler) clearCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func parseStateCookie(value string) (state, returnTo string) {
	state, encoded, _ := strings.Cut(value, ".")
	decoded, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return state, "/"
	}
	return state, safeReturnTo(string(decoded))
}

// safeReturnTo keeps only same-origin relative paths; anything else
// returns "/".
func safeReturnTo(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, `/\`) {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return raw
}
