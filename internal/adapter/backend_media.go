// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/url"
	"strconv"

	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
)

// GetMediaByID implements [MediaAPI].
func (b *httpBackendAdapter) GetMediaByID(ctx context.Context, id uuid.UUID) (models.Media, error) {
	var media models.Media
	resp, err := b.request(ctx).
		SetPathParam("id", id.String()).
		SetResult(&media).
		Get("/media/{id}")
	if err = do("get media", resp, err); err != nil {
		return models.Media{}, err
	}
	return media, nil
}

// GetAllFilteredActiveMedia implements [MediaAPI].
func (b *httpBackendAdapter) GetAllFilteredActiveMedia(ctx context.Context, filter models.MediaFilter) (models.Page[models.Media], error) {
	var page models.Page[models.Media]
	resp, err := b.request(ctx).
		SetQueryParamsFromValues(mediaFilterQuery(filter)).
		SetResult(&page).
		Get("/media")
	if err = do("filter media", resp, err); err != nil {
		return models.Page[models.Media]{}, err
	}
	return page, nil
}

// GetAllMedia implements [MediaAPI].
func (b *httpBackendAdapter) GetAllMedia(ctx context.Context, pageable models.Pageable, status models.MediaStatus) (models.Page[models.Media], error) {
	q := pageQuery(pageable)
	if status != "" {
		q.Set("status", string(status))
	}

	var page models.Page[models.Media]
	resp, err := b.request(ctx).
		SetQueryParamsFromValues(q).
		SetResult(&page).
		Get("/media")
	if err = do("list media", resp, err); err != nil {
		return models.Page[models.Media]{}, err
	}
	return page, nil
}

// GetMediaByBusiness implements [MediaAPI].
func (b *httpBackendAdapter) GetMediaByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Media, error) {
	var media []models.Media
	resp, err := b.request(ctx).
		SetPathParam("businessId", businessID.String()).
		SetResult(&media).
		Get("/media/business/{businessId}")
	if err = do("get business media", resp, err); err != nil {
		return nil, err
	}
	return media, nil
}

// CreateMedia implements [MediaAPI].
func (b *httpBackendAdapter) CreateMedia(ctx context.Context, media models.Media) (models.Media, error) {
	var created models.Media
	resp, err := b.jsonRequest(ctx, media).
		SetResult(&created).
		Post("/media")
	if err = do("create media", resp, err); err != nil {
		return models.Media{}, err
	}
	return created, nil
}

// UpdateMedia implements [MediaAPI].
func (b *httpBackendAdapter) UpdateMedia(ctx context.Context, id uuid.UUID, media models.Media) (models.Media, error) {
	var updated models.Media
	resp, err := b.jsonRequest(ctx, media).
		SetPathParam("id", id.String()).
		SetResult(&updated).
		Put("/media/{id}")
	if err = do("update media", resp, err); err != nil {
		return models.Media{}, err
	}
	return updated, nil
}

// DeleteMedia implements [MediaAPI].
func (b *httpBackendAdapter) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	resp, err := b.request(ctx).
		SetPathParam("id", id.String()).
		Delete("/media/{id}")
	return do("delete media", resp, err)
}

// UpdateMediaStatus implements [MediaAPI].
func (b *httpBackendAdapter) UpdateMediaStatus(ctx context.Context, id uuid.UUID, status models.MediaStatus) (models.Media, error) {
	var updated models.Media
	resp, err := b.jsonRequest(ctx, models.MediaStatusUpdate{Status: status}).
		SetPathParam("id", id.String()).
		SetResult(&updated).
		Patch("/media/{id}/status")
	if err = do("update media status", resp, err); err != nil {
		return models.Media{}, err
	}
	return updated, nil
}

// GetAllMediaLocations implements [MediaLocationAPI].
func (b *httpBackendAdapter) GetAllMediaLocations(ctx context.Context) ([]models.MediaLocation, error) {
	var locations []models.MediaLocation
	resp, err := b.request(ctx).
		SetResult(&locations).
		Get("/media-locations")
	if err = do("list media locations", resp, err); err != nil {
		return nil, err
	}
	return locations, nil
}

// mediaFilterQuery encodes filter as backend query parameters. The status
// is always ACTIVE; zero-valued fields are left out.
func mediaFilterQuery(filter models.MediaFilter) url.Values {
	q := pageQuery(filter.Pageable)
	q.Set("status", string(models.MediaActive))

	if filter.Title != "" {
		q.Set("title", utils.EscapeLike(filter.Title))
	}
	if filter.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}
	if filter.MinResolutionWidth > 0 {
		q.Set("minResolutionWidth", strconv.Itoa(filter.MinResolutionWidth))
	}
	if filter.MinResolutionHeight > 0 {
		q.Set("minResolutionHeight", strconv.Itoa(filter.MinResolutionHeight))
	}
	if filter.AspectRatio != "" {
		q.Set("aspectRatio", filter.AspectRatio)
	}
	if filter.LocationID != uuid.Nil {
		q.Set("locationId", filter.LocationID.String())
	}
	if filter.SortBy != "" {
		q.Set("sortBy", filter.SortBy)
	}
	if filter.OrderBy != "" {
		q.Set("orderBy", filter.OrderBy)
	}

	return q
}

func pageQuery(pageable models.Pageable) url.Values {
	pageable = utils.NormalizePage(pageable)

	q := url.Values{}
	q.Set("page", strconv.Itoa(pageable.Page))
	q.Set("size", strconv.Itoa(pageable.Size))
	return q
}
