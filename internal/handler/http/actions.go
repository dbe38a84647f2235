// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
)

func (h *Handler) registerBusiness(w http.ResponseWriter, r *http.Request) {
	var business models.Business
	if err := decodeJSON(r, &business); err != nil {
		writeError(w, r, err)
		return
	}

	registered, err := h.services.BusinessService.RegisterBusiness(r.Context(), business)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) createMedia(w http.ResponseWriter, r *http.Request) {
	var media models.Media
	if err := decodeJSON(r, &media); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.MediaService.CreateMedia(r.Context(), media)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteMedia(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MediaService.DeleteMedia(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reserveMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ReservationRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	reservation, err := h.services.ReservationService.Reserve(r.Context(), mediaID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, reservation, http.StatusCreated)
}

func (h *Handler) approveReservation(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	reservation, err := h.services.ReservationService.Approve(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, reservation, http.StatusOK)
}

func (h *Handler) denyReservation(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	reservation, err := h.services.ReservationService.Deny(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, reservation, http.StatusOK)
}

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	var campaign models.AdCampaign
	if err := decodeJSON(r, &campaign); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.CampaignService.CreateCampaign(r.Context(), campaign)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) addAd(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var ad models.Ad
	if err = decodeJSON(r, &ad); err != nil {
		writeError(w, r, err)
		return
	}

	campaign, err := h.services.CampaignService.AddAd(r.Context(), campaignID, ad)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, campaign, http.StatusCreated)
}

func (h *Handler) deleteAd(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	adID, err := uuidParam(r, "adID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CampaignService.DeleteAd(r.Context(), campaignID, adID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	intent, err := h.services.PaymentService.CreatePaymentIntent(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, intent, http.StatusCreated)
}

func (h *Handler) setMediaStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.MediaStatusUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	media, err := h.services.AdminService.SetMediaStatus(r.Context(), id, update.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, media, http.StatusOK)
}

func (h *Handler) setVerificationStatus(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.VerificationUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	verification, err := h.services.AdminService.SetVerificationStatus(r.Context(), businessID, update.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, verification, http.StatusOK)
}
