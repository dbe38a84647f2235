// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/locale"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/mock"
	"github.com/MKhiriev/adspace/internal/service"
	"github.com/MKhiriev/adspace/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSessionToken = "signed-session"
	testSubject      = "auth0|alice"
)

type serviceMocks struct {
	auth        *mock.MockAuthService
	media       *mock.MockMediaService
	business    *mock.MockBusinessService
	reservation *mock.MockReservationService
	campaign    *mock.MockCampaignService
	payment     *mock.MockPaymentService
	admin       *mock.MockAdminService
}

// newTestHandler builds a Handler over service mocks with the en/fr route
// table. Requests go through the full router via serve.
func newTestHandler(t *testing.T) (*Handler, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		auth:        mock.NewMockAuthService(ctrl),
		media:       mock.NewMockMediaService(ctrl),
		business:    mock.NewMockBusinessService(ctrl),
		reservation: mock.NewMockReservationService(ctrl),
		campaign:    mock.NewMockCampaignService(ctrl),
		payment:     mock.NewMockPaymentService(ctrl),
		admin:       mock.NewMockAdminService(ctrl),
	}

	locales, err := locale.NewRouter("en", []string{"en", "fr"}, locale.DefaultPathnames)
	require.NoError(t, err)

	services := &service.Services{
		AuthService:        m.auth,
		MediaService:       m.media,
		BusinessService:    m.business,
		ReservationService: m.reservation,
		CampaignService:    m.campaign,
		PaymentService:     m.payment,
		AdminService:       m.admin,
	}
	cfg := config.App{SessionDuration: 24 * time.Hour}

	return NewHandler(services, locales, cfg, models.NewAppBuildInfo("1.2.0", "2026-10-01", "abc123"), logger.Nop()), m
}

func testSession(roles ...string) models.Session {
	return models.Session{
		ID:        "01928f6e-0000-7000-8000-000000000001",
		Subject:   testSubject,
		Email:     "alice@example.com",
		Name:      "Alice",
		Roles:     roles,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// expectSession makes the session cookie resolve to session.
func (m *serviceMocks) expectSession(session models.Session) {
	m.auth.EXPECT().ResolveSession(gomock.Any(), testSessionToken).Return(session, nil)
}

func newRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func withSessionCookie(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionToken})
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}
