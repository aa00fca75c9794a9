// Package mocks provides mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// our persistence interfaces. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockPersister := mocks.NewMockPersister(ctrl)
//	mockPersister.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
package mocks

// Generate mock for Persister interface from internal/session package.
// This creates MockPersister with methods for all Persister interface methods:
// Load, Save
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=persister_mock.go github.com/activehq/activehq-go/internal/session Persister
