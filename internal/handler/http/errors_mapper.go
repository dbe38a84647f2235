// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/service"
	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:    http.StatusUnauthorized,
	service.ErrForbidden:       http.StatusForbidden,
	service.ErrNotFound:        http.StatusNotFound,
	service.ErrValidation:      http.StatusBadRequest,
	service.ErrConflict:        http.StatusConflict,
	service.ErrUpstreamFailure: http.StatusInternalServerError,
	service.ErrUnavailable:     http.StatusServiceUnavailable,

	ErrInvalidJSON:  http.StatusBadRequest,
	ErrInvalidID:    http.StatusBadRequest,
	ErrInvalidQuery: http.StatusBadRequest,
	ErrLoginFailed:  http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a JSON body.
// Client errors carry the error text; everything else only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	message := http.StatusText(status)
	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
	case status == http.StatusBadRequest || status == http.StatusConflict:
		message = err.Error()
		log.Debug().Err(err).Int("status", status).Send()
	default:
		log.Debug().Err(err).Int("status", status).Send()
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

func writeStatus(w http.ResponseWriter, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(status)}, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusNotFound)
}
