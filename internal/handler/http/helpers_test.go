// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/mock"
	"github.com/MKhiriev/go-order-keeper/internal/service"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
)

// testMocks holds the service mocks behind a test Handler.
type testMocks struct {
	auth    *mock.MockAuthService
	catalog *mock.MockOrderCatalogService
	address *mock.MockAddressService
	appInfo *mock.MockAppInfoService
}

func newMockedHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		catalog: mock.NewMockOrderCatalogService(ctrl),
		address: mock.NewMockAddressService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		CatalogService: m.catalog,
		AddressService: m.address,
		AppInfoService: m.appInfo,
	}, logger.Nop())
	return h, m
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// withStore emulates the auth middleware.
func withStore(r *http.Request, storeID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.StoreIDCtxKey, storeID))
}

func serve(handler http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler(rr, injectNopLogger(r))
	return rr
}
