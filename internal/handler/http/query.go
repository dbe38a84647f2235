// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/adspace/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// mediaFilterFromQuery reads the browse criteria. Absent parameters stay
// zero and are dropped from the backend query.
func mediaFilterFromQuery(q url.Values) (models.MediaFilter, error) {
	var (
		filter = models.MediaFilter{
			Title:       q.Get("title"),
			AspectRatio: q.Get("aspectRatio"),
			SortBy:      q.Get("sortBy"),
			OrderBy:     q.Get("orderBy"),
		}
		err error
	)

	if filter.MinPrice, err = floatParam(q, "minPrice"); err != nil {
		return models.MediaFilter{}, err
	}
	if filter.MaxPrice, err = floatParam(q, "maxPrice"); err != nil {
		return models.MediaFilter{}, err
	}
	if filter.MinResolutionWidth, err = intParam(q, "minResolutionWidth"); err != nil {
		return models.MediaFilter{}, err
	}
	if filter.MinResolutionHeight, err = intParam(q, "minResolutionHeight"); err != nil {
		return models.MediaFilter{}, err
	}
	if raw := q.Get("locationId"); raw != "" {
		if filter.LocationID, err = uuid.Parse(raw); err != nil {
			return models.MediaFilter{}, fmt.Errorf("%w: locationId: %w", ErrInvalidQuery, err)
		}
	}
	if filter.Pageable, err = pageableFromQuery(q); err != nil {
		return models.MediaFilter{}, err
	}

	return filter, nil
}

func pageableFromQuery(q url.Values) (models.Pageable, error) {
	page, err := intParam(q, "page")
	if err != nil {
		return models.Pageable{}, err
	}
	size, err := intParam(q, "size")
	if err != nil {
		return models.Pageable{}, err
	}
	return models.Pageable{Page: page, Size: size}, nil
}

func intParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidQuery, name, err)
	}
	return v, nil
}

func floatParam(q url.Values, name string) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidQuery, name, err)
	}
	return v, nil
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %w", ErrInvalidID, name, err)
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
