// Package mocks provides mock implementations for testing the gateway.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	upstream := mocks.NewMockUpstream(ctrl)
//	upstream.EXPECT().Login(gomock.Any(), gomock.Any()).Return(token, nil)
package mocks

// Generate mock for the Upstream interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=upstream_mock.go github.com/cvortex/ats-ui-api/internal/ports Upstream

// Generate mock for the CredentialStore interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_store_mock.go github.com/cvortex/ats-ui-api/internal/ports CredentialStore
