// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/adspace/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.locales.Middleware)
	router.Use(h.withSession)

	router.Get("/healthz", h.health)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.version)

		// login flow
		r.Route("/auth", func(r chi.Router) {
			r.Get("/login", h.login)
			r.Get("/callback", h.callback)
			r.Get("/logout", h.logout)
			r.With(requireSession).Get("/me", h.me)
		})

		// internal identity routes check the session themselves
		r.Route("/auth0", func(r chi.Router) {
			r.Get("/get-user/{id}", h.getUser)
			r.Patch("/update-user-language/{id}", h.updateUserLanguage)
			r.Get("/token", h.accessToken)
		})

		// actions
		r.Group(func(r chi.Router) {
			r.Use(requireSession)

			r.Post("/businesses", h.registerBusiness)

			r.Post("/media", h.createMedia)
			r.Delete("/media/{id}", h.deleteMedia)
			r.Post("/media/{id}/reservations", h.reserveMedia)

			r.Patch("/reservations/{id}/approve", h.approveReservation)
			r.Patch("/reservations/{id}/deny", h.denyReservation)

			r.Post("/campaigns", h.createCampaign)
			r.Post("/campaigns/{id}/ads", h.addAd)
			r.Delete("/campaigns/{id}/ads/{adID}", h.deleteAd)

			r.Post("/payments/intent", h.createPaymentIntent)

			r.Route("/admin", func(r chi.Router) {
				r.Use(requireRole(models.RoleAdmin))
				r.Patch("/media/{id}/status", h.setMediaStatus)
				r.Patch("/businesses/{id}/verification", h.setVerificationStatus)
			})
		})
	})

	// pages, reached through the locale middleware rewrite
	router.Route("/{locale}", func(r chi.Router) {
		r.Use(requireLocale)

		r.Get("/", h.home)
		r.Get("/browse", h.browse)
		r.Get("/media/{id}", h.mediaDetails)

		r.Group(func(r chi.Router) {
			r.Use(h.requirePageSession)

			r.Get("/dashboard", h.dashboard)
			r.Get("/dashboard/media", h.dashboardMedia)
			r.Get("/dashboard/reservations", h.dashboardReservations)
			r.Get("/dashboard/campaigns", h.dashboardCampaigns)
			r.Get("/profile", h.profile)

			r.With(requireRole(models.RoleAdmin)).Get("/admin/media", h.adminMedia)
			r.With(requireRole(models.RoleAdmin)).Get("/admin/businesses", h.adminBusinesses)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
