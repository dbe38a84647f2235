// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/adspace/internal/locale"
	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
)

type homeView struct {
	Locale string            `json:"locale"`
	Links  map[string]string `json:"links"`
}

// mediaCard is a media listing with its price formatted for the page locale
// and the localized link to its details page.
type mediaCard struct {
	models.Media
	FormattedPrice string `json:"formattedPrice"`
	Href           string `json:"href"`
}

type browseView struct {
	Locale    string                 `json:"locale"`
	Media     models.Page[mediaCard] `json:"media"`
	Locations []models.MediaLocation `json:"locations"`
}

type dashboardView struct {
	Locale string `json:"locale"`
	models.DashboardData
	FormattedRevenue string `json:"formattedRevenue"`
}

type listView[T any] struct {
	Locale string `json:"locale"`
	Items  []T    `json:"items"`
}

type pageView[T any] struct {
	Locale string         `json:"locale"`
	Page   models.Page[T] `json:"page"`
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	loc := locale.FromContext(r.Context())
	utils.WriteJSON(w, homeView{Locale: loc, Links: h.locales.Links(loc)}, http.StatusOK)
}

func (h *Handler) browse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := locale.FromContext(ctx)

	filter, err := mediaFilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.services.MediaService.Browse(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cards := make([]mediaCard, 0, len(data.Media.Content))
	for _, m := range data.Media.Content {
		cards = append(cards, h.toMediaCard(loc, m))
	}

	utils.WriteJSON(w, browseView{
		Locale: loc,
		Media: models.Page[mediaCard]{
			Content:       cards,
			Number:        data.Media.Number,
			Size:          data.Media.Size,
			TotalElements: data.Media.TotalElements,
			TotalPages:    data.Media.TotalPages,
		},
		Locations: data.Locations,
	}, http.StatusOK)
}

func (h *Handler) mediaDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	media, err := h.services.MediaService.GetMedia(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.toMediaCard(locale.FromContext(ctx), media), http.StatusOK)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := locale.FromContext(ctx)

	data, err := h.services.BusinessService.Dashboard(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, dashboardView{
		Locale:           loc,
		DashboardData:    data,
		FormattedRevenue: utils.FormatCurrency(data.Metrics.ApprovedRevenue, utils.CurrencyOptions{Locale: loc}),
	}, http.StatusOK)
}

func (h *Handler) dashboardMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := locale.FromContext(ctx)

	media, err := h.services.BusinessService.OwnMedia(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cards := make([]mediaCard, 0, len(media))
	for _, m := range media {
		cards = append(cards, h.toMediaCard(loc, m))
	}
	utils.WriteJSON(w, listView[mediaCard]{Locale: loc, Items: cards}, http.StatusOK)
}

func (h *Handler) dashboardReservations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reservations, err := h.services.BusinessService.OwnReservations(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, listView[models.Reservation]{Locale: locale.FromContext(ctx), Items: reservations}, http.StatusOK)
}

func (h *Handler) dashboardCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	campaigns, err := h.services.BusinessService.OwnCampaigns(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, listView[models.AdCampaign]{Locale: locale.FromContext(ctx), Items: campaigns}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeStatus(w, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, session.Subject)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) adminMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pageable, err := pageableFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.AdminService.PendingMedia(ctx, pageable)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, pageView[models.Media]{Locale: locale.FromContext(ctx), Page: page}, http.StatusOK)
}

func (h *Handler) adminBusinesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pageable, err := pageableFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.AdminService.PendingBusinesses(ctx, pageable)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, pageView[models.Business]{Locale: locale.FromContext(ctx), Page: page}, http.StatusOK)
}

func (h *Handler) toMediaCard(loc string, m models.Media) mediaCard {
	return mediaCard{
		Media:          m,
		FormattedPrice: utils.FormatCurrency(m.Price, utils.CurrencyOptions{Locale: loc}),
		Href:           h.locales.Href(loc, "/media/"+m.ID.String()),
	}
}
