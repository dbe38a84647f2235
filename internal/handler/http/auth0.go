// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/adspace/internal/locale"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/service"
	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
	"github.com/go-chi/chi/v5"
)

// languageCookieMaxAge is one year in seconds.
const languageCookieMaxAge = 31536000

// getUser proxies the identity user of the session subject.
//
//	401 - no session
//	403 - {id} is not the session subject
//	404 - the identity provider does not know the user
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.GetUser(r.Context(), subjectParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

// updateUserLanguage stores the preferred language on the identity user and
// mirrors it in the locale preference cookie.
func (h *Handler) updateUserLanguage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := subjectParam(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}
	if session.Subject != userID {
		writeError(w, r, service.ErrForbidden)
		return
	}

	var req models.UpdateLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.UpdateUserLanguage(ctx, userID, req.Locale)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     locale.PreferenceCookie,
		Value:    req.Locale,
		Path:     "/",
		MaxAge:   languageCookieMaxAge,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})

	logger.FromRequest(r).Info().Str("subject", userID).Str("locale", req.Locale).Msg("preferred language updated")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) accessToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.services.AuthService.AccessToken(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.AccessTokenResponse{AccessToken: token}, http.StatusOK)
}

// subjectParam returns the decoded {id} parameter; identity subjects contain
// "|" which browsers escape.
func subjectParam(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
